//go:build errctx_verbose_debug

package errctx

const debugTree = true
