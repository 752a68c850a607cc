package js_parser

import (
	"github.com/1ntEgr8/ecmafront/internal/js_ast"
	"github.com/1ntEgr8/ecmafront/internal/js_lexer"
	"github.com/1ntEgr8/ecmafront/internal/logger"
)

// parseFunctionDecl parses a FunctionDeclaration, entered with
// "function" not yet consumed. isDecl distinguishes the statement form
// (name required) from "export default function", where module.go
// passes false and the name is optional.
func (p *parser) parseFunctionDecl(g GrammarParams, loc logger.Loc, isDecl bool) js_ast.Stmt {
	p.cursor.Advance() // 'function'
	isGenerator := false
	if _, ok := p.cursor.NextIf(js_lexer.TAsterisk); ok {
		isGenerator = true
	}

	var name *js_ast.LocRef
	if cur := p.cursor.Cur(); cur.kind == js_lexer.TIdentifier {
		ref := p.interner.Intern(cur.identifier)
		name = &js_ast.LocRef{Loc: cur.loc, Ref: ref}
		p.cursor.Advance()
	} else if isDecl {
		p.fail(newExpected(p.source, []string{"identifier"}, foundDesc(cur), cur.loc, "function declaration"))
	}

	fn := p.parseFunctionRest(g, isGenerator, false)
	fn.Name = name
	return js_ast.Stmt{Loc: loc, Data: &js_ast.SFunction{Fn: fn}}
}

// parseFunctionExpr is FunctionExpression: "function" not yet consumed,
// the name is always optional.
func (p *parser) parseFunctionExpr(g GrammarParams, loc logger.Loc) js_ast.Expr {
	return p.parseFunctionExprAsync(g, loc, false)
}

// parseFunctionExprAsync additionally accepts a leading "async" that
// its caller (parsePrimary's tryParseAsyncPrimary) already consumed.
func (p *parser) parseFunctionExprAsync(g GrammarParams, loc logger.Loc, isAsync bool) js_ast.Expr {
	p.cursor.Advance() // 'function'
	isGenerator := false
	if _, ok := p.cursor.NextIf(js_lexer.TAsterisk); ok {
		isGenerator = true
	}

	var name *js_ast.LocRef
	if cur := p.cursor.Cur(); cur.kind == js_lexer.TIdentifier {
		ref := p.interner.Intern(cur.identifier)
		name = &js_ast.LocRef{Loc: cur.loc, Ref: ref}
		p.cursor.Advance()
	}

	fn := p.parseFunctionRest(g, isGenerator, isAsync)
	fn.Name = name
	return js_ast.Expr{Loc: loc, Data: &js_ast.EFunction{Fn: fn}}
}

// parseFunctionRest parses the "(" FormalParameterList ")" Body shared
// by function declarations and function expressions. Method
// definitions (parseMethodDefinition in object.go) parse their own
// parameter list and body.
func (p *parser) parseFunctionRest(g GrammarParams, isGenerator, isAsync bool) js_ast.Fn {
	p.cursor.Expect(js_lexer.TOpenParen, "function")
	args := p.parseParamList(g, isAsync)
	p.cursor.Expect(js_lexer.TCloseParen, "function")
	body := p.parseFunctionBody(g.WithIn(true).ForFunctionBody(isGenerator, isAsync))
	return js_ast.Fn{Args: args, Body: body, IsAsync: isAsync, IsGenerator: isGenerator}
}

// parseClassDecl parses a ClassDeclaration: a minimal class form (name,
// optional "extends" clause, a brace-delimited list of method/field
// definitions) since full class semantics (private fields, decorators,
// static blocks) are not handled; this exists so the statement
// dispatch table has somewhere to send "class".
func (p *parser) parseClassDecl(g GrammarParams, loc logger.Loc, isDecl bool) js_ast.Stmt {
	class := p.parseClassTail(g, isDecl)
	return js_ast.Stmt{Loc: loc, Data: &js_ast.SClass{Class: class}}
}

func (p *parser) parseClassExpr(g GrammarParams, loc logger.Loc) js_ast.Expr {
	class := p.parseClassTail(g, false)
	return js_ast.Expr{Loc: loc, Data: &class}
}

func (p *parser) parseClassTail(g GrammarParams, nameRequired bool) js_ast.EClass {
	p.cursor.Advance() // 'class'

	var name *js_ast.LocRef
	if cur := p.cursor.Cur(); cur.kind == js_lexer.TIdentifier {
		ref := p.interner.Intern(cur.identifier)
		name = &js_ast.LocRef{Loc: cur.loc, Ref: ref}
		p.cursor.Advance()
	} else if nameRequired {
		p.fail(newExpected(p.source, []string{"identifier"}, foundDesc(cur), cur.loc, "class declaration"))
	}

	var extends js_ast.Expr
	if _, ok := p.cursor.NextIf(js_lexer.TExtends); ok {
		extends = p.parseExpr(g.WithIn(true), js_ast.LCall)
	}

	p.cursor.Expect(js_lexer.TOpenBrace, "class body")
	var props []js_ast.Property
	for p.cursor.Cur().kind != js_lexer.TCloseBrace {
		if _, ok := p.cursor.NextIf(js_lexer.TSemicolon); ok {
			continue
		}
		props = append(props, p.parseClassMember(g))
	}
	p.cursor.Advance() // '}'

	return js_ast.EClass{Name: name, ExtendsOrNil: extends, Properties: props}
}

// parseClassMember reuses parseProperty's PropertyDefinition dispatch
// (object.go), since the same tentative-name / modifier-prefix
// algorithm applies to class members as to object literal members. A
// leading contextual "static" is peeled off first.
func (p *parser) parseClassMember(g GrammarParams) js_ast.Property {
	isStatic := false
	if cur := p.cursor.Cur(); cur.kind == js_lexer.TIdentifier && cur.identifier == "static" {
		next := p.cursor.Peek(1)
		if next.kind != js_lexer.TOpenParen && next.kind != js_lexer.TEquals && next.kind != js_lexer.TSemicolon {
			isStatic = true
			p.cursor.Advance()
		}
	}
	prop := p.parseProperty(g)
	prop.IsStatic = isStatic
	return prop
}
