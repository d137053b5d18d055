package errctx

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Result is a fallible value: either a success value or an error.
// Failures carry a fresh id for correlating log lines; successes have uuid.Nil.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom carries a failure over to another value type, keeping its id,
// creation time and error.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Try lifts a (value, error) pair, so Try(os.Open(name)) reads naturally.
func Try[T any](r T, err error) Result[T] {
	if IsNil(err) {
		return Success(r)
	}
	return Fail[T](err)
}

// WithContext wraps a failure in an ErrorMessage with message as its text.
// A success is returned unchanged.
func (r Result[T]) WithContext(message string) Result[T] {
	if r.isSuccess {
		return r
	}
	return r.wrap(message)
}

// WithDynamicContext is WithContext with a message computed only on failure.
func (r Result[T]) WithDynamicContext(message func() string) Result[T] {
	if r.isSuccess {
		return r
	}
	return r.wrap(message())
}

func (r Result[T]) wrap(message string) Result[T] {
	return Result[T]{
		err:       WithCause(message, r.err),
		createdAt: r.createdAt,
		id:        r.id,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

// Get unpacks the result into Go's usual (value, error) pair.
func (r Result[T]) Get() (T, error) {
	if r.isSuccess {
		return r.result, nil
	}
	return r.result, r.err
}

// ErrorMessage returns the failure as a chain node, or nil for a success or a
// failure that was never given context.
func (r Result[T]) ErrorMessage() *ErrorMessage {
	var e *ErrorMessage
	if errors.As(r.err, &e) {
		return e
	}
	return nil
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
