// Package solo contains single-value, synchronous primitives over
// errctx.Result[T]. Each one acts on a success and passes a failure through
// untouched, so context added earlier is never lost.
//
// Highlights:
// - Validate/AndValidate: an invalid value fails with a causeless ErrorMessage
// - Switch: move from Result[In] to Result[Out]
// - Map: transform successful values
// - Try: call a function (Out, error) and convert error to failure
// - Tee: side effects on success
// - Finally: reduce to a concrete value via success/failure handlers
package solo
