package errctx

import (
	"errors"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// Messages walks any error and returns the messages of its ErrorMessage
// chain, outermost first. An error that holds no ErrorMessage yields its own
// text as the only entry.
func Messages(err error) []string {
	if IsNil(err) {
		return []string{}
	}

	var e *ErrorMessage
	if errors.As(err, &e) {
		return e.Messages()
	}

	return []string{err.Error()}
}
