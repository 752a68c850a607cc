package js_parser

import (
	"fmt"
	"strings"

	"github.com/1ntEgr8/ecmafront/internal/logger"
)

// ParseErrorKind closes the ParseError variant set.
type ParseErrorKind uint8

const (
	AbruptEnd ParseErrorKind = iota
	ExpectedKind
	UnexpectedKind
	GeneralKind
)

// ParseError is a value, never an exception: every parse production
// that fails returns one instead of panicking across the package
// boundary. It implements the standard error interface so
// callers can use it the idiomatic Go way, but nothing in this package
// panics a *ParseError out to a caller — p.fail uses it only to unwind
// internally, and ParseScript/ParseModule recover it before returning.
type ParseError struct {
	Kind ParseErrorKind
	Pos  logger.Loc

	Expected []string // ExpectedKind
	Found    string   // ExpectedKind, UnexpectedKind
	Context  string   // ExpectedKind
	Hint     string   // UnexpectedKind
	Message  string   // GeneralKind

	source *logger.Source
}

func (e *ParseError) Error() string {
	return e.String()
}

// String renders "error at L:C: <message> (while parsing <context>)",
// a single-line diagnostic form.
func (e *ParseError) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "error at %s: %s", e.location(), e.message())
	if e.Context != "" {
		fmt.Fprintf(&sb, " (while parsing %s)", e.Context)
	}
	return sb.String()
}

func (e *ParseError) location() string {
	if e.source == nil {
		return "?:?"
	}
	loc := logger.LocationOrNil(e.source, logger.Range{Loc: e.Pos})
	if loc == nil {
		return "?:?"
	}
	return fmt.Sprintf("%d:%d", loc.Line, loc.Column)
}

func (e *ParseError) message() string {
	switch e.Kind {
	case AbruptEnd:
		return "unexpected end of input"
	case ExpectedKind:
		return fmt.Sprintf("expected %s but found %s", expectedSetText(e.Expected), e.Found)
	case UnexpectedKind:
		if e.Hint != "" {
			return fmt.Sprintf("unexpected %s: %s", e.Found, e.Hint)
		}
		return fmt.Sprintf("unexpected %s", e.Found)
	case GeneralKind:
		return e.Message
	default:
		return "parse error"
	}
}

func expectedSetText(expected []string) string {
	if len(expected) == 1 {
		return expected[0]
	}
	return "one of: " + strings.Join(expected, ", ")
}

func newAbruptEnd(source *logger.Source, pos logger.Loc) *ParseError {
	return &ParseError{Kind: AbruptEnd, Pos: pos, source: source}
}

func newExpected(source *logger.Source, expected []string, found string, pos logger.Loc, context string) *ParseError {
	return &ParseError{Kind: ExpectedKind, Expected: expected, Found: found, Pos: pos, Context: context, source: source}
}

func newUnexpected(source *logger.Source, found string, pos logger.Loc, hint string) *ParseError {
	return &ParseError{Kind: UnexpectedKind, Found: found, Pos: pos, Hint: hint, source: source}
}

func newGeneral(source *logger.Source, message string, pos logger.Loc) *ParseError {
	return &ParseError{Kind: GeneralKind, Message: message, Pos: pos, source: source}
}

// parseErrorPanic lets internal productions unwind to the one recover
// site in ParseScript/ParseModule without threading an error return
// through every recursive call, mirroring the lexer's own
// LexerPanic/recover idiom. Nothing here changes the returned value's
// shape; it is purely how this package's own call stack unwinds
// internally.
type parseErrorPanic struct{ err *ParseError }

func (p *parser) fail(err *ParseError) {
	panic(parseErrorPanic{err})
}
