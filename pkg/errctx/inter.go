package errctx

import "time"

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a result or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the error if operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// Contextualizer is implemented by the fallible and optional shapes that
// can be turned into a Result carrying an ErrorMessage.
type Contextualizer[T any] interface {
	WithContext(message string) Result[T]
	WithDynamicContext(message func() string) Result[T]
}

var (
	_ WithError[int]      = Result[int]{}
	_ Contextualizer[int] = Result[int]{}
	_ Contextualizer[int] = Option[int]{}
)
