package js_parser

// ParseOptions is the single configuration struct threaded by value
// into the parser, the way esbuild threads config.Options into
// newParser. There is no env-var or flag-file layer here: callers
// build one of these as a Go struct literal.
type ParseOptions struct {
	// IsModule selects module-goal parsing: import/export are permitted
	// at the top level, and a top-level "await" is parsed as an await
	// expression. No strict-mode rules are applied; inside a non-async
	// function "await" is an ordinary identifier, and it is accepted as
	// a binding name.
	IsModule bool
}
