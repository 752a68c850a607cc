package js_parser

// GrammarParams is the three-flag record threaded through every
// production. It is always passed by value and never stored in mutable
// parser- or thread-local state, so that independent parses (and
// independent productions within one parse) never see each other's
// context.
type GrammarParams struct {
	AllowIn    bool
	AllowYield bool
	AllowAwait bool
}

func (g GrammarParams) WithIn(allow bool) GrammarParams {
	g.AllowIn = allow
	return g
}

func (g GrammarParams) WithYield(allow bool) GrammarParams {
	g.AllowYield = allow
	return g
}

func (g GrammarParams) WithAwait(allow bool) GrammarParams {
	g.AllowAwait = allow
	return g
}

// ForFunctionBody replaces Yield/Await with the entered function's own
// nature rather than inheriting the enclosing production's flags: a
// function's own generator/async-ness is never inherited.
func (g GrammarParams) ForFunctionBody(isGenerator, isAsync bool) GrammarParams {
	g.AllowYield = isGenerator
	g.AllowAwait = isAsync
	return g
}
