package solo

import (
	"context"

	"github.com/ib-77/errctx/pkg/errctx"
)

func Succeed[T any](input T) errctx.Result[T] {
	return errctx.Success(input)
}

func Fail[T any](err error) errctx.Result[T] {
	return errctx.Fail[T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) errctx.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input errctx.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) errctx.Result[T] {

	if input.IsSuccess() {
		if isValid, errMsg := validate(ctx, input.Result()); !isValid {
			return errctx.Err[T](errMsg)
		}
	}
	return input
}

func Switch[In any, Out any](ctx context.Context,
	input errctx.Result[In],
	onSuccess func(ctx context.Context, r In) errctx.Result[Out]) errctx.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return errctx.FailFrom[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input errctx.Result[In],
	onSuccess func(ctx context.Context, r In) Out) errctx.Result[Out] {

	if input.IsSuccess() {
		return errctx.Success(onSuccess(ctx, input.Result()))
	}
	return errctx.FailFrom[In, Out](input)
}

func Tee[T any](ctx context.Context,
	input errctx.Result[T],
	onSuccess func(ctx context.Context, r errctx.Result[T])) errctx.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func Try[In any, Out any](ctx context.Context, input errctx.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) errctx.Result[Out] {

	if input.IsSuccess() {
		return errctx.Try(onTryExecute(ctx, input.Result()))
	}
	return errctx.FailFrom[In, Out](input)
}

func Finally[In, Out any](ctx context.Context, input errctx.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return onError(ctx, input.Err())
}
