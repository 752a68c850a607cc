package js_lexer

import (
	"testing"

	"github.com/1ntEgr8/ecmafront/internal/logger"
)

func lexAll(t *testing.T, contents string) []T {
	t.Helper()
	log := logger.NewDeferLog()
	source := logger.Source{Contents: contents, PrettyPath: "<test>"}

	var tokens []T
	func() {
		defer func() {
			if r := recover(); r != nil {
				if _, ok := r.(LexerPanic); !ok {
					panic(r)
				}
			}
		}()

		lexer := NewLexer(log, source)
		for {
			tokens = append(tokens, lexer.Token)
			if lexer.Token == TEndOfFile {
				break
			}
			lexer.Next()
		}
	}()
	return tokens
}

// TestKeywordRoundTrip checks that every one of the 34 reserved words
// round-trips through ParseKeyword/KeywordText and is recognized by the
// lexer as its own token kind, never TIdentifier.
func TestKeywordRoundTrip(t *testing.T) {
	for text, tok := range Keywords {
		got, ok := ParseKeyword(text)
		if !ok || got != tok {
			t.Fatalf("ParseKeyword(%q) = %v, %v; want %v, true", text, got, ok, tok)
		}
		backToText, ok := KeywordText(tok)
		if !ok || backToText != text {
			t.Fatalf("KeywordText(%v) = %q, %v; want %q, true", tok, backToText, ok, text)
		}

		tokens := lexAll(t, text)
		if len(tokens) != 2 || tokens[0] != tok || tokens[1] != TEndOfFile {
			t.Fatalf("lexing keyword %q produced %v; want [%v TEndOfFile]", text, tokens, tok)
		}
	}
}

// TestLiteralTokensAreNotKeywords checks the deliberate exclusion
// documented in token.go: true/false/null are literal tokens, never
// looked up through Keywords.
func TestLiteralTokensAreNotKeywords(t *testing.T) {
	for _, text := range []string{"true", "false", "null"} {
		if _, ok := ParseKeyword(text); ok {
			t.Fatalf("ParseKeyword(%q) unexpectedly succeeded; true/false/null are literals, not keywords", text)
		}
	}

	cases := map[string]T{"true": TTrue, "false": TFalse, "null": TNull}
	for text, want := range cases {
		tokens := lexAll(t, text)
		if len(tokens) != 2 || tokens[0] != want {
			t.Fatalf("lexing %q produced %v; want [%v TEndOfFile]", text, tokens, want)
		}
	}
}

func TestIdentifierVsKeyword(t *testing.T) {
	tokens := lexAll(t, "letter")
	if len(tokens) != 2 || tokens[0] != TIdentifier {
		t.Fatalf("lexing \"letter\" produced %v; want [TIdentifier TEndOfFile] (must not confuse with \"let\")", tokens)
	}
}

func TestPunctuatorMaximalMunch(t *testing.T) {
	cases := []struct {
		text string
		want []T
	}{
		{"=>", []T{TEqualsGreaterThan, TEndOfFile}},
		{"===", []T{TEqualsEqualsEquals, TEndOfFile}},
		{"==", []T{TEqualsEquals, TEndOfFile}},
		{"...", []T{TDotDotDot, TEndOfFile}},
		{">>>=", []T{TGreaterThanGreaterThanGreaterThanEquals, TEndOfFile}},
		{"??=", []T{TQuestionQuestionEquals, TEndOfFile}},
		{"?.", []T{TQuestionDot, TEndOfFile}},
	}
	for _, c := range cases {
		got := lexAll(t, c.text)
		if len(got) != len(c.want) {
			t.Fatalf("lexing %q produced %v; want %v", c.text, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Fatalf("lexing %q produced %v; want %v", c.text, got, c.want)
			}
		}
	}
}

func TestOptionalChainVsConditionalWithNumber(t *testing.T) {
	// "a?.5:1" must lex the "?" alone since ".5" is a number, not a
	// property access.
	tokens := lexAll(t, "a?.5:1")
	want := []T{TIdentifier, TQuestion, TNumericLiteral, TColon, TNumericLiteral, TEndOfFile}
	if len(tokens) != len(want) {
		t.Fatalf("lexing \"a?.5:1\" produced %v; want %v", tokens, want)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Fatalf("lexing \"a?.5:1\" produced %v; want %v", tokens, want)
		}
	}
}

func TestNewlineBeforeAnnotatedNotTokenized(t *testing.T) {
	log := logger.NewDeferLog()
	source := logger.Source{Contents: "a\nb", PrettyPath: "<test>"}
	lexer := NewLexer(log, source)
	if lexer.Token != TIdentifier || lexer.HasNewlineBefore {
		t.Fatalf("first token: got %v HasNewlineBefore=%v", lexer.Token, lexer.HasNewlineBefore)
	}
	lexer.Next()
	if lexer.Token != TIdentifier || !lexer.HasNewlineBefore {
		t.Fatalf("second token: got %v HasNewlineBefore=%v; want TIdentifier true", lexer.Token, lexer.HasNewlineBefore)
	}
}

func TestCommentsAreDiscarded(t *testing.T) {
	tokens := lexAll(t, "a // line comment\n/* block */ b")
	want := []T{TIdentifier, TIdentifier, TEndOfFile}
	if len(tokens) != len(want) {
		t.Fatalf("lexing with comments produced %v; want %v", tokens, want)
	}
}

func TestStringLiteralEscapes(t *testing.T) {
	log := logger.NewDeferLog()
	source := logger.Source{Contents: `"a\nbA\x42"`, PrettyPath: "<test>"}
	lexer := NewLexer(log, source)
	if lexer.Token != TStringLiteral {
		t.Fatalf("got token %v; want TStringLiteral", lexer.Token)
	}
	got := UTF16ToString(lexer.StringLiteral)
	want := "a\nbAB"
	if got != want {
		t.Fatalf("got %q; want %q", got, want)
	}
}

func TestNumberRadices(t *testing.T) {
	cases := map[string]float64{
		"0x1F": 31,
		"0o17": 15,
		"0b101": 5,
		"3.14": 3.14,
		".5":   0.5,
	}
	for text, want := range cases {
		log := logger.NewDeferLog()
		source := logger.Source{Contents: text, PrettyPath: "<test>"}
		lexer := NewLexer(log, source)
		if lexer.Token != TNumericLiteral || lexer.Number != want {
			t.Fatalf("lexing %q: got token=%v number=%v; want TNumericLiteral %v", text, lexer.Token, lexer.Number, want)
		}
	}
}

func TestUnterminatedStringIsError(t *testing.T) {
	log := logger.NewDeferLog()
	source := logger.Source{Contents: `"abc`, PrettyPath: "<test>"}

	func() {
		defer func() {
			r := recover()
			if _, ok := r.(LexerPanic); !ok {
				t.Fatalf("expected LexerPanic, got %v", r)
			}
		}()
		NewLexer(log, source)
		t.Fatalf("expected a panic for an unterminated string literal")
	}()

	if !log.HasErrors() {
		t.Fatalf("expected the log to contain an error")
	}
}
