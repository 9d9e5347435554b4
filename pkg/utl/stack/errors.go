package stack

import (
	"errors"
	"fmt"
)

var (
	ErrNilIterator = errors.New("stack: nil iterator")
	ErrNotSettled  = errors.New("stack: future closed without an outcome")
)

// ItemError reports which item made a run fail.
type ItemError struct {
	Index int
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// PanicError is a panic raised by an item, turned into a failure.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}
