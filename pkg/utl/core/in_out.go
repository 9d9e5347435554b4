package core

import (
	"context"
)

// Once returns a buffered channel already holding value and closed.
func Once[T any](value T) <-chan T {
	ch := make(chan T, 1)
	ch <- value
	close(ch)
	return ch
}

// FromChanFirstOrDefault waits for the first value of out, returning defaultV
// if out closes empty or ctx is done first.
func FromChanFirstOrDefault[T any](ctx context.Context, out <-chan T, defaultV T) T {
	select {
	case v, ok := <-out:
		if !ok {
			return defaultV
		}
		return v
	case <-ctx.Done():
		return defaultV
	}
}
