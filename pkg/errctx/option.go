package errctx

// Option is a value that may be absent.
type Option[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOK builds an Option from a comma-ok pair, e.g. a map lookup.
func FromOK[T any](v T, ok bool) Option[T] {
	return Option[T]{value: v, ok: ok}
}

// FromPtr treats a nil pointer as absent.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// WithContext turns an absent value into a failure holding a causeless
// ErrorMessage: there is no earlier error to wrap.
func (o Option[T]) WithContext(message string) Result[T] {
	if o.ok {
		return Success(o.value)
	}
	return Err[T](message)
}

// WithDynamicContext is WithContext with a message computed only when the
// value is absent.
func (o Option[T]) WithDynamicContext(message func() string) Result[T] {
	if o.ok {
		return Success(o.value)
	}
	return Err[T](message())
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Option[T]) IsSome() bool {
	return o.ok
}

func (o Option[T]) IsNone() bool {
	return !o.ok
}
