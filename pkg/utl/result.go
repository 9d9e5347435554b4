package utl

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Result is the settled outcome of a deferred computation.
type Result[T any] struct {
	id        uuid.UUID
	settledAt time.Time
	value     T
	err       error
	isSuccess bool
	isCancel  bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		isSuccess: true,
		settledAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		settledAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Cancel[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isCancel:  true,
		settledAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Settle is Success for a nil err. A non-nil err is a Cancel only when ctx is
// done and err is a context error; any other error, including a deadline an
// item set for itself, is a Fail.
func Settle[T any](ctx context.Context, v T, err error) Result[T] {
	if err == nil {
		return Success(v)
	}
	if ctx.Err() != nil && IsCancellationError(err) {
		return Cancel[T](err)
	}
	return Fail[T](err)
}

// FailFrom carries the failure or cancellation of one result over to another type.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isCancel:  from.isCancel,
		settledAt: from.settledAt,
		id:        from.id,
	}
}

func (r Result[T]) Result() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && !r.isCancel && r.err != nil
}

func (r Result[T]) SettledAt() time.Time {
	return r.settledAt
}

// IsEmpty reports a zero Result that was never settled.
func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isCancel && !r.isSuccess
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
