package utl

import "time"

type ResultProvider[T any] interface {
	// Result returns the successful value
	Result() T
	// SettledAt time of settlement (UTC)
	SettledAt() time.Time
}

// WithError defines an interface for outcomes that carry a value or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the error if the computation failed
	Err() error
	// IsSuccess returns true if the computation resolved
	IsSuccess() bool
}

// WithCancel extends WithError with cancellation support
type WithCancel[T any] interface {
	WithError[T]
	// IsCancel returns true if the computation was cancelled through its context
	IsCancel() bool
}

var _ WithCancel[int] = Result[int]{}
