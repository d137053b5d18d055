package errctx

// Wrap adds message to err for code that keeps the plain error return:
//
//	if err := load(); err != nil {
//		return errctx.Wrap(err, "failed to load configuration")
//	}
//
// A nil err gives a nil error, never a typed nil.
func Wrap(err error, message string) error {
	if IsNil(err) {
		return nil
	}
	return WithCause(message, err)
}

// WrapFunc is Wrap with a message that is only built when err is non-nil.
func WrapFunc(err error, message func() string) error {
	if IsNil(err) {
		return nil
	}
	return WithCause(message(), err)
}
