package chain

import (
	"context"

	"github.com/ib-77/errctx/pkg/errctx"
	"github.com/ib-77/errctx/pkg/errctx/solo"
)

// Chain carries a Result and the context.Context handed to every step.
type Chain[T any] struct {
	ctx    context.Context
	result errctx.Result[T]
}

// Start continues from an existing Result, failed or not.
func Start[T any](ctx context.Context, result errctx.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, errctx.Success(value))
}

func (c *Chain[T]) Result() errctx.Result[T] {
	return c.result
}

// Then runs a step that already reports failures as a Result.
func Then[T, U any](c *Chain[T], step func(context.Context, T) errctx.Result[U]) *Chain[U] {
	return Start(c.ctx, solo.Switch[T, U](c.ctx, c.result, step))
}

// ThenTry runs a step with the usual (U, error) signature; a non-nil error
// becomes the failure that later WithContext calls wrap.
func ThenTry[T, U any](c *Chain[T], step func(context.Context, T) (U, error)) *Chain[U] {
	return Start(c.ctx, solo.Try[T, U](c.ctx, c.result, step))
}

// Map runs a step that cannot fail.
func Map[T, U any](c *Chain[T], step func(context.Context, T) U) *Chain[U] {
	return Start(c.ctx, solo.Map[T, U](c.ctx, c.result, step))
}

// WithContext wraps a failure in an ErrorMessage carrying message.
// A successful chain is returned as is.
func (c *Chain[T]) WithContext(message string) *Chain[T] {
	return Start(c.ctx, c.result.WithContext(message))
}

// WithDynamicContext is WithContext with a message built only on failure.
func (c *Chain[T]) WithDynamicContext(message func() string) *Chain[T] {
	return Start(c.ctx, c.result.WithDynamicContext(message))
}

// Ensure runs onSuccess for a successful chain; failures pass untouched.
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return Start(c.ctx, solo.Tee[T](c.ctx, c.result,
		func(ctx context.Context, result errctx.Result[T]) {
			onSuccess(ctx, result.Result())
		}))
}

// Finally hands the value or the full error chain to the matching handler.
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	return solo.Finally[T, U](c.ctx, c.result, onSuccess, onFailure)
}
