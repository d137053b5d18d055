package errctx

// ErrorIfFalse succeeds with b when it is true and fails with message otherwise:
//
//	_, err := errctx.ErrorIfFalse(exists, "Expected file to exist!").Get()
func ErrorIfFalse(b bool, message string) Result[bool] {
	if b {
		return Success(b)
	}
	return Err[bool](message)
}

// ErrorIfTrue succeeds with b when it is false and fails with message otherwise.
func ErrorIfTrue(b bool, message string) Result[bool] {
	if b {
		return Err[bool](message)
	}
	return Success(b)
}

func ErrorDynIfFalse(b bool, message func() string) Result[bool] {
	if b {
		return Success(b)
	}
	return Err[bool](message())
}

func ErrorDynIfTrue(b bool, message func() string) Result[bool] {
	if b {
		return Err[bool](message())
	}
	return Success(b)
}
