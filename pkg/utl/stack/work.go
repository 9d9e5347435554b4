package stack

import (
	"context"
)

// Work is a unit of input for a runner: a ready value or a computation that
// produces one later.
type Work[T any] struct {
	value    T
	deferred func(ctx context.Context) (T, error)
}

func Value[T any](v T) Work[T] {
	return Work[T]{value: v}
}

// Deferred wraps fn so that it runs only when a runner reaches the item.
// A nil fn behaves like Value of the zero T.
func Deferred[T any](fn func(ctx context.Context) (T, error)) Work[T] {
	return Work[T]{deferred: fn}
}

// Values turns plain values into Work items.
func Values[T any](vs ...T) []Work[T] {
	out := make([]Work[T], len(vs))
	for i, v := range vs {
		out[i] = Value(v)
	}
	return out
}

func (w Work[T]) IsDeferred() bool {
	return w.deferred != nil
}

// Run returns the value, calling the deferred computation if there is one.
func (w Work[T]) Run(ctx context.Context) (T, error) {
	if w.deferred == nil {
		return w.value, nil
	}
	return w.deferred(ctx)
}

// Iterator turns one input into the Work to run for it. index and all give
// the position of item and the full input.
type Iterator[In, Out any] func(ctx context.Context, item In, index int, all []In) Work[Out]

// Pass is the default iterator: every item is run as it is.
func Pass[T any](_ context.Context, item Work[T], _ int, _ []Work[T]) Work[T] {
	return item
}
