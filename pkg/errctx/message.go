package errctx

// ErrorMessage is a single link of a "caused by" chain: a human-readable
// message and an optional cause. The cause is either another ErrorMessage
// (next) or an error produced elsewhere (foreign), never both.
//
// An ErrorMessage is immutable once built, so it is safe to share between
// goroutines.
type ErrorMessage struct {
	message string
	next    *ErrorMessage
	foreign error
}

// New returns an ErrorMessage without a cause.
func New(message string) *ErrorMessage {
	return &ErrorMessage{message: message}
}

// Err returns a failed Result holding a causeless ErrorMessage, so a
// terminal failure can be returned in one step.
func Err[T any](message string) Result[T] {
	return Fail[T](New(message))
}

// WithCause wraps cause with message. A nil cause gives the same node as New.
func WithCause(message string, cause error) *ErrorMessage {
	e := &ErrorMessage{message: message}

	if IsNil(cause) {
		return e
	}

	if next, ok := cause.(*ErrorMessage); ok {
		e.next = next
	} else {
		e.foreign = cause
	}

	return e
}

func (e *ErrorMessage) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

// Cause returns the wrapped error, or nil when there is none.
func (e *ErrorMessage) Cause() error {
	if e == nil {
		return nil
	}
	if e.next != nil {
		return e.next
	}
	return e.foreign
}

func (e *ErrorMessage) Unwrap() error {
	return e.Cause()
}

// Depth counts the links of the chain, including a foreign terminal cause.
func (e *ErrorMessage) Depth() int {
	depth := 0
	for n := e; n != nil; n = n.next {
		depth++
		if n.foreign != nil {
			depth++
		}
	}
	return depth
}

// Messages lists the chain outermost first. A foreign terminal cause
// contributes its rendered text.
func (e *ErrorMessage) Messages() []string {
	out := make([]string, 0, e.Depth())
	for n := e; n != nil; n = n.next {
		out = append(out, n.message)
		if n.foreign != nil {
			out = append(out, foreignText(n.foreign))
		}
	}
	return out
}
