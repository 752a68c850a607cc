package js_parser

import "github.com/1ntEgr8/ecmafront/internal/js_lexer"

// tokenNames renders a token kind for an expected-set message. Only the
// kinds productions in this package actually ask for by name are
// listed; keywords fall back to js_lexer.KeywordText.
var tokenNames = map[js_lexer.T]string{
	js_lexer.TEndOfFile:                      "end of file",
	js_lexer.TIdentifier:                     "identifier",
	js_lexer.TStringLiteral:                  "string literal",
	js_lexer.TNumericLiteral:                 "number literal",
	js_lexer.TSemicolon:                      "\";\"",
	js_lexer.TComma:                          "\",\"",
	js_lexer.TColon:                          "\":\"",
	js_lexer.TDot:                            "\".\"",
	js_lexer.TDotDotDot:                      "\"...\"",
	js_lexer.TOpenBrace:                      "\"{\"",
	js_lexer.TCloseBrace:                     "\"}\"",
	js_lexer.TOpenParen:                      "\"(\"",
	js_lexer.TCloseParen:                     "\")\"",
	js_lexer.TOpenBracket:                    "\"[\"",
	js_lexer.TCloseBracket:                   "\"]\"",
	js_lexer.TEquals:                         "\"=\"",
	js_lexer.TEqualsGreaterThan:              "\"=>\"",
	js_lexer.TQuestion:                       "\"?\"",
	js_lexer.TWhile:                          "\"while\"",
	js_lexer.TCatch:                          "\"catch\"",
}

func tokenDesc(t js_lexer.T) string {
	if s, ok := tokenNames[t]; ok {
		return s
	}
	if s, ok := js_lexer.KeywordText(t); ok {
		return "\"" + s + "\""
	}
	return "token"
}
