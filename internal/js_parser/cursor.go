package js_parser

import (
	"github.com/1ntEgr8/ecmafront/internal/js_lexer"
	"github.com/1ntEgr8/ecmafront/internal/logger"
)

// tok is an immutable snapshot of js_lexer.Lexer's mutable fields at one
// token. Cursor buffers these, since the lexer itself only exposes its
// "current" token destructively through Next().
type tok struct {
	kind             js_lexer.T
	loc              logger.Loc
	rng              logger.Range
	raw              string
	identifier       string
	stringLiteral    []uint16
	number           float64
	regexFlags       string
	hasNewlineBefore bool
}

func snapshot(lexer *js_lexer.Lexer) tok {
	return tok{
		kind:             lexer.Token,
		loc:              lexer.Loc(),
		rng:              lexer.Range(),
		raw:              lexer.Raw(),
		identifier:       lexer.Identifier,
		stringLiteral:    lexer.StringLiteral,
		number:           lexer.Number,
		regexFlags:       lexer.RegexFlags,
		hasNewlineBefore: lexer.HasNewlineBefore,
	}
}

// Cursor is the buffered view over the token stream: peek/next/next_if/
// expect plus ASI, with at most two significant tokens of lookahead
// ever buffered at once.
type Cursor struct {
	lexer   *js_lexer.Lexer
	source  *logger.Source
	pending []tok
}

func NewCursor(lexer *js_lexer.Lexer, source *logger.Source) *Cursor {
	c := &Cursor{lexer: lexer, source: source}
	c.pending = append(c.pending, snapshot(lexer))
	return c
}

// ensure grows the buffer to at least n tokens, scanning further ahead
// only as each additional token is actually demanded.
func (c *Cursor) ensure(n int) {
	for len(c.pending) < n {
		c.lexer.Next()
		c.pending = append(c.pending, snapshot(c.lexer))
	}
}

// Peek returns the k-th upcoming significant token without consuming
// it; Peek(0) is the current token.
func (c *Cursor) Peek(k int) tok {
	c.ensure(k + 1)
	return c.pending[k]
}

func (c *Cursor) Cur() tok { return c.Peek(0) }

// Advance consumes and returns the current token.
func (c *Cursor) Advance() tok {
	c.ensure(1)
	t := c.pending[0]
	c.pending = c.pending[1:]
	return t
}

// NextIf consumes and returns the current token if it matches kind,
// otherwise leaves the cursor untouched.
func (c *Cursor) NextIf(kind js_lexer.T) (tok, bool) {
	if c.Cur().kind == kind {
		return c.Advance(), true
	}
	return tok{}, false
}

// Expect consumes one token iff it matches kind; otherwise it fails
// with ExpectedKind carrying a singleton expected set, or with
// AbruptEnd when the current token is end of file.
func (c *Cursor) Expect(kind js_lexer.T, context string) tok {
	cur := c.Cur()
	if cur.kind != kind {
		if cur.kind == js_lexer.TEndOfFile {
			panic(parseErrorPanic{newAbruptEnd(c.source, cur.loc)})
		}
		panic(parseErrorPanic{newExpected(c.source, []string{tokenDesc(kind)}, foundDesc(cur), cur.loc, context)})
	}
	return c.Advance()
}

// NextIfIdentifier consumes and returns the current token if it is an
// identifier with the given text. Used for contextual keywords like
// "from", "as", and "of" that are not in the reserved-word table and
// so always lex as TIdentifier.
func (c *Cursor) NextIfIdentifier(name string) (tok, bool) {
	if cur := c.Cur(); cur.kind == js_lexer.TIdentifier && cur.identifier == name {
		return c.Advance(), true
	}
	return tok{}, false
}

// ExpectIdentifier is NextIfIdentifier's failing counterpart.
func (c *Cursor) ExpectIdentifier(name string, context string) tok {
	if t, ok := c.NextIfIdentifier(name); ok {
		return t
	}
	cur := c.Cur()
	if cur.kind == js_lexer.TEndOfFile {
		panic(parseErrorPanic{newAbruptEnd(c.source, cur.loc)})
	}
	panic(parseErrorPanic{newExpected(c.source, []string{"\"" + name + "\""}, foundDesc(cur), cur.loc, context)})
}

// ExpectSemicolon implements automatic semicolon insertion: succeeds
// (possibly consuming a literal ";") when a semicolon is present, a
// line terminator precedes the next token, the next token is "}", or
// input has ended; otherwise it fails.
func (c *Cursor) ExpectSemicolon(context string) {
	if _, ok := c.NextIf(js_lexer.TSemicolon); ok {
		return
	}
	if c.PeekSemicolonInsertable() {
		return
	}
	cur := c.Cur()
	panic(parseErrorPanic{newExpected(c.source, []string{";"}, foundDesc(cur), cur.loc, context)})
}

// PeekSemicolonInsertable reports the ASI decision without consuming
// anything.
func (c *Cursor) PeekSemicolonInsertable() bool {
	cur := c.Cur()
	return cur.hasNewlineBefore || cur.kind == js_lexer.TCloseBrace || cur.kind == js_lexer.TEndOfFile
}

// RescanCurrentAsRegExp converts the current "/" or "/=" token into a
// regular expression literal. It may only be called while the current
// token is the sole buffered one (i.e. before any Peek(1)), since
// rescanning rewinds the underlying lexer.
func (c *Cursor) RescanCurrentAsRegExp() {
	if len(c.pending) != 1 {
		panic("js_parser: RescanCurrentAsRegExp called after lookahead was buffered")
	}
	c.lexer.RescanSlashAsRegExp()
	c.pending[0] = snapshot(c.lexer)
}

func foundDesc(t tok) string {
	if t.kind == js_lexer.TEndOfFile {
		return "end of file"
	}
	if t.kind == js_lexer.TIdentifier {
		return "identifier \"" + t.identifier + "\""
	}
	return "\"" + t.raw + "\""
}
