// Package chain strings fallible steps together and lets each step say what
// it was doing, so a failure arrives at the top as a "caused by" chain:
//
//	res := chain.ThenTry(chain.FromValue(ctx, path), readFile).
//		WithDynamicContext(func() string { return "Failed to read file '" + path + "'" })
//
// Steps run only while the chain is successful. Once a step fails, later
// steps are skipped and only WithContext/WithDynamicContext touch the
// failure, each adding one ErrorMessage in front of it. The failure keeps
// its id across steps.
//
// Key operations:
// - Start/FromValue: begin from a Result[T] or a plain value
// - Then/ThenTry/Map: run the next step on success
// - WithContext/WithDynamicContext: describe the step that just ran
// - Ensure: run side effects on success without changing the result
// - Finally: collapse into a final value via success/failure handlers
package chain
