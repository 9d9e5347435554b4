package utl

import (
	"context"
	"errors"
)

// Try calls onTryExecute for a successful input and settles its (Out, error).
func Try[In, Out any](ctx context.Context, input Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) Result[Out] {

	if input.IsSuccess() {
		out, err := onTryExecute(ctx, input.Result())
		return Settle(ctx, out, err)
	}

	return FailFrom[In, Out](input)
}

// Validate keeps a successful input when validate accepts it and fails with
// errMsg otherwise. Failed and cancelled inputs pass through.
func Validate[T any](ctx context.Context, input Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) Result[T] {

	if input.IsSuccess() {
		if valid, errMsg := validate(ctx, input.Result()); !valid {
			return Fail[T](errors.New(errMsg))
		}
	}
	return input
}

func Map[In, Out any](ctx context.Context, input Result[In],
	onSuccess func(ctx context.Context, r In) Out) Result[Out] {

	if input.IsSuccess() {
		return Success(onSuccess(ctx, input.Result()))
	}

	return FailFrom[In, Out](input)
}

// Finally reduces a Result to a plain value via the matching handler.
func Finally[In, Out any](ctx context.Context, input Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	} else if input.IsCancel() {
		return onCancel(ctx, input.Err())
	} else {
		return onError(ctx, input.Err())
	}
}

// Unwrap returns the value and error of a Result in Go's usual shape.
func Unwrap[T any](r Result[T]) (T, error) {
	return r.Result(), r.Err()
}
