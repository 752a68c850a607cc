package js_parser

import (
	"github.com/1ntEgr8/ecmafront/internal/js_ast"
	"github.com/1ntEgr8/ecmafront/internal/js_lexer"
	"github.com/1ntEgr8/ecmafront/internal/logger"
)

// parseVarStmt parses a VariableStatement: the keyword is already
// consumed by the caller (parseStmt), so this parses the
// VariableDeclarationList and demands the closing semicolon.
func (p *parser) parseVarStmt(g GrammarParams, loc logger.Loc, kind js_ast.LocalKind) js_ast.Stmt {
	decls := p.parseVarDeclList(g, kind)
	p.cursor.ExpectSemicolon("variable statement")
	return js_ast.Stmt{Loc: loc, Data: &js_ast.SLocal{Decls: decls, Kind: kind}}
}

// parseVarDeclList parses one or more VariableDeclarations separated by
// ",", stopping when peek_semicolon reports a semicolon is present or
// insertable, the same stop condition boa's variable.rs uses. Any other
// separator is Expected{";" or ","}.
func (p *parser) parseVarDeclList(g GrammarParams, kind js_ast.LocalKind) []js_ast.Decl {
	var decls []js_ast.Decl
	for {
		decls = append(decls, p.parseVarDecl(g))

		if _, ok := p.cursor.NextIf(js_lexer.TComma); ok {
			continue
		}
		if p.cursor.PeekSemicolonInsertable() || p.cursor.Cur().kind == js_lexer.TSemicolon {
			break
		}
		// for-in/for-of heads stop here too: "in"/"of" following a single
		// declarator is not a separator error, it belongs to the caller.
		if p.cursor.Cur().kind == js_lexer.TIn || isForOf(p.cursor.Cur()) {
			break
		}
		cur := p.cursor.Cur()
		p.fail(newExpected(p.source, []string{";", ","}, foundDesc(cur), cur.loc, "variable declaration list"))
	}
	return decls
}

// parseVarDecl parses a VariableDeclaration: a binding target, then an
// optional Initializer with AllowIn forwarded from g.
func (p *parser) parseVarDecl(g GrammarParams) js_ast.Decl {
	binding := p.parseBindingTarget(g)
	var value js_ast.Expr
	if _, ok := p.cursor.NextIf(js_lexer.TEquals); ok {
		value = p.parseExpr(g, js_ast.LAssign)
	}
	return js_ast.Decl{Binding: binding, ValueOrNil: value}
}

// parseBindingTarget parses BindingIdentifier, ArrayBindingPattern, or
// ObjectBindingPattern. A token that is none of these fails Expected
// {identifier} in a "variable declaration" context (e.g. "var 1 = 2;");
// end of file fails AbruptEnd.
func (p *parser) parseBindingTarget(g GrammarParams) js_ast.Binding {
	cur := p.cursor.Cur()

	switch cur.kind {
	case js_lexer.TIdentifier:
		p.cursor.Advance()
		ref := p.interner.Intern(cur.identifier)
		return js_ast.Binding{Loc: cur.loc, Data: &js_ast.BIdentifier{Ref: ref}}

	case js_lexer.TOpenBracket:
		return p.parseArrayBindingPattern(g)

	case js_lexer.TOpenBrace:
		return p.parseObjectBindingPattern(g)

	default:
		if cur.kind == js_lexer.TEndOfFile {
			p.fail(newAbruptEnd(p.source, cur.loc))
		}
		p.fail(newExpected(p.source, []string{"identifier"}, foundDesc(cur), cur.loc, "variable declaration"))
		panic("unreachable")
	}
}

func (p *parser) parseArrayBindingPattern(g GrammarParams) js_ast.Binding {
	loc := p.cursor.Cur().loc
	p.cursor.Advance() // '['
	var items []js_ast.ArrayBinding
	hasSpread := false
	for p.cursor.Cur().kind != js_lexer.TCloseBracket {
		if _, ok := p.cursor.NextIf(js_lexer.TComma); ok {
			items = append(items, js_ast.ArrayBinding{Binding: js_ast.Binding{Data: &js_ast.BMissing{}}})
			continue
		}
		if _, ok := p.cursor.NextIf(js_lexer.TDotDotDot); ok {
			hasSpread = true
			b := p.parseBindingTarget(g)
			items = append(items, js_ast.ArrayBinding{Binding: b})
			break
		}
		b := p.parseBindingTarget(g)
		var def js_ast.Expr
		if _, ok := p.cursor.NextIf(js_lexer.TEquals); ok {
			def = p.parseExpr(g, js_ast.LAssign)
		}
		items = append(items, js_ast.ArrayBinding{Binding: b, DefaultValueOrNil: def})
		if _, ok := p.cursor.NextIf(js_lexer.TComma); !ok {
			break
		}
	}
	p.cursor.Expect(js_lexer.TCloseBracket, "array binding pattern")
	return js_ast.Binding{Loc: loc, Data: &js_ast.BArray{Items: items, HasSpread: hasSpread}}
}

func (p *parser) parseObjectBindingPattern(g GrammarParams) js_ast.Binding {
	loc := p.cursor.Cur().loc
	p.cursor.Advance() // '{'
	var props []js_ast.PropertyBinding
	for p.cursor.Cur().kind != js_lexer.TCloseBrace {
		if _, ok := p.cursor.NextIf(js_lexer.TDotDotDot); ok {
			b := p.parseBindingTarget(g)
			props = append(props, js_ast.PropertyBinding{Value: b, IsSpread: true})
			break
		}

		key, isComputed := p.parsePropertyKey(g)

		var value js_ast.Binding
		if _, ok := p.cursor.NextIf(js_lexer.TColon); ok {
			value = p.parseBindingTarget(g)
		} else if ident, ok := key.Data.(*js_ast.EIdentifier); ok {
			value = js_ast.Binding{Loc: key.Loc, Data: &js_ast.BIdentifier{Ref: ident.Ref}}
		} else {
			p.fail(newGeneral(p.source, "expected \":\" after computed property key in binding pattern", p.cursor.Cur().loc))
		}

		var def js_ast.Expr
		if _, ok := p.cursor.NextIf(js_lexer.TEquals); ok {
			def = p.parseExpr(g, js_ast.LAssign)
		}

		props = append(props, js_ast.PropertyBinding{Key: key, Value: value, DefaultValueOrNil: def, IsComputed: isComputed})

		if _, ok := p.cursor.NextIf(js_lexer.TComma); !ok {
			break
		}
	}
	p.cursor.Expect(js_lexer.TCloseBrace, "object binding pattern")
	return js_ast.Binding{Loc: loc, Data: &js_ast.BObject{Properties: props}}
}
