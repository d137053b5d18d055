// Package errctx attaches short human-readable context to errors as they
// travel up the call stack and renders the result as a "caused by" chain.
//
// The package is built around a single type, ErrorMessage, and two ways to
// reach it:
// - WithContext: add a fixed message to a failed Result or an absent Option
// - WithDynamicContext: same, with a message func called only on failure
//
// Constructors:
// - New: causeless ErrorMessage
// - Err: failed Result holding a causeless ErrorMessage
// - WithCause: ErrorMessage wrapping any error
// - Wrap/WrapFunc: the same for plain error returns, nil-safe
//
// Rendering:
// - Error / %v: flat text, outermost message first
// - %+v: flat text, or the nested tree when built with -tags errctx_verbose_debug
// - Tree / MarshalJSON: {"message": ..., "cause": ...} all the way down
//
// Example:
//
//	cfg, err := errctx.Try(os.ReadFile(path)).
//		WithDynamicContext(func() string { return fmt.Sprintf("Failed to read file '%s'", path) }).
//		WithContext("Failed to load configuration").
//		Get()
//
// prints
//
//	Failed to load configuration
//	  caused by: Failed to read file 'config.json'
//	  caused by: open config.json: no such file or directory
package errctx
