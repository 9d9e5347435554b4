package stack

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/utilitarian/pkg/utl"
	"github.com/ib-77/utilitarian/pkg/utl/core"
)

// Stack runs items strictly one after another.
func Stack[T any](ctx context.Context, items []Work[T]) <-chan utl.Result[[]T] {
	return StackWith(ctx, items, Pass[T])
}

// StackWith runs iterator over items strictly one after another. Item i+1 is
// not started before item i has settled. The first failure settles the
// future and no later item is started. Unless disabled with
// core.WithStackOptions, a done ctx stops the run between items with a
// cancelled outcome.
func StackWith[In, Out any](ctx context.Context, items []In,
	iterator Iterator[In, Out]) <-chan utl.Result[[]Out] {

	if iterator == nil {
		return core.Once(utl.Fail[[]Out](ErrNilIterator))
	}

	out := make(chan utl.Result[[]Out], 1)

	go func() {
		defer close(out)

		stopOnCancel := core.IsStopOnCancelEnabled(ctx, true)
		results := make([]Out, 0, len(items))

		for i := range items {
			if stopOnCancel && ctx.Err() != nil {
				out <- utl.Cancel[[]Out](ctx.Err())
				return
			}

			v, err := runItem(ctx, iterator, items, i)
			if err != nil {
				out <- utl.Settle[[]Out](ctx, nil, &ItemError{Index: i, Err: err})
				return
			}
			results = append(results, v)
		}

		out <- utl.Success(results)
	}()

	return out
}

// Spread runs all items concurrently.
func Spread[T any](ctx context.Context, items []Work[T]) <-chan utl.Result[[]T] {
	return SpreadWith(ctx, items, Pass[T])
}

// SpreadWith runs iterator over all items concurrently, at most
// core.GetWorkerMaxCount at a time when a limit is set. Results keep input
// order whatever order items finish in. The first failure cancels the context
// handed to the other items; items already running are waited for, items not
// yet started are skipped, and the first error settles the future.
func SpreadWith[In, Out any](ctx context.Context, items []In,
	iterator Iterator[In, Out]) <-chan utl.Result[[]Out] {

	if iterator == nil {
		return core.Once(utl.Fail[[]Out](ErrNilIterator))
	}

	out := make(chan utl.Result[[]Out], 1)

	go func() {
		defer close(out)

		results := make([]Out, len(items))
		g, gCtx := errgroup.WithContext(ctx)
		if limit := core.GetWorkerMaxCount(ctx, 0); limit > 0 {
			g.SetLimit(limit)
		}

		for i := range items {
			g.Go(func() error {
				if err := gCtx.Err(); err != nil {
					return err
				}

				v, err := runItem(gCtx, iterator, items, i)
				if err != nil {
					return &ItemError{Index: i, Err: err}
				}
				results[i] = v
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			out <- utl.Settle[[]Out](ctx, nil, err)
			return
		}

		out <- utl.Success(results)
	}()

	return out
}

// Await blocks until future settles or ctx is done.
func Await[T any](ctx context.Context, future <-chan utl.Result[T]) (T, error) {
	r := core.FromChanFirstOrDefault(ctx, future, utl.Result[T]{})
	if r.IsEmpty() {
		var zero T
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		return zero, ErrNotSettled
	}
	return utl.Unwrap(r)
}

func runItem[In, Out any](ctx context.Context, iterator Iterator[In, Out],
	items []In, i int) (v Out, err error) {

	defer func() {
		if p := recover(); p != nil {
			err = &PanicError{Value: p}
		}
	}()

	return iterator(ctx, items[i], i, items).Run(ctx)
}
