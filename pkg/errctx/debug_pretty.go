//go:build !errctx_verbose_debug

package errctx

// debugTree is false by default: %+v prints the same flat chain as Error.
// Build with -tags errctx_verbose_debug for the nested field dump.
const debugTree = false
