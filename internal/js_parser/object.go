package js_parser

import (
	"strconv"

	"github.com/1ntEgr8/ecmafront/internal/js_ast"
	"github.com/1ntEgr8/ecmafront/internal/js_lexer"
	"github.com/1ntEgr8/ecmafront/internal/logger"
)

// parseObjectLiteral parses an ObjectLiteral, entered with the opening
// "{" already consumed by the caller.
func (p *parser) parseObjectLiteral(g GrammarParams, loc logger.Loc) js_ast.Expr {
	var props []js_ast.Property
	for p.cursor.Cur().kind != js_lexer.TCloseBrace {
		props = append(props, p.parseProperty(g))

		if p.cursor.Cur().kind == js_lexer.TCloseBrace {
			break
		}
		if _, ok := p.cursor.NextIf(js_lexer.TComma); !ok {
			cur := p.cursor.Cur()
			p.fail(newExpected(p.source, []string{",", "}"}, foundDesc(cur), cur.loc, "object literal"))
		}
	}
	p.cursor.Advance() // '}'
	return js_ast.Expr{Loc: loc, Data: &js_ast.EObject{Properties: props}}
}

// parseProperty follows a tentative-name lookahead algorithm: consume a
// name-like token, then decide from what follows whether it was a key,
// a shorthand identifier, or a "get"/"set" accessor hint. Grounded on
// boa's ObjectLiteral/PropertyDefinition dispatch.
func (p *parser) parseProperty(g GrammarParams) js_ast.Property {
	if _, ok := p.cursor.NextIf(js_lexer.TDotDotDot); ok {
		value := p.parseExpr(g, js_ast.LAssign)
		return js_ast.Property{ValueOrNil: value, Kind: js_ast.PropertySpread}
	}

	isAsync, isGenerator := p.consumeMethodModifiers()

	cur := p.cursor.Cur()

	if isAsync || isGenerator {
		key, isComputed := p.parsePropertyKey(g)
		prop := p.parseMethodDefinition(g, key, isGenerator, isAsync, false)
		prop.IsComputed = isComputed
		return prop
	}

	if cur.kind == js_lexer.TOpenBracket || cur.kind == js_lexer.TStringLiteral || cur.kind == js_lexer.TNumericLiteral {
		key, isComputed := p.parsePropertyKey(g)
		return p.finishPropertyAfterKey(g, key, isComputed)
	}

	hintLoc := cur.loc
	hintText, hintOk := identifierNameText(cur)
	if !hintOk {
		p.fail(newGeneral(p.source, "expected property definition", cur.loc))
	}
	p.cursor.Advance() // consume the tentative name

	next := p.cursor.Cur()
	switch {
	case next.kind == js_lexer.TColon:
		p.cursor.Advance()
		key := p.internedKey(hintText, hintLoc)
		value := p.parseExpr(g, js_ast.LAssign)
		return js_ast.Property{Key: key, ValueOrNil: value, Kind: js_ast.PropertyNormal}

	case next.kind == js_lexer.TOpenParen:
		key := p.internedKey(hintText, hintLoc)
		return p.parseMethodDefinition(g, key, false, false, false)

	case hintText == "get" || hintText == "set":
		isGet := hintText == "get"
		realKey, _ := p.parsePropertyKey(g)
		return p.parseAccessor(g, realKey, isGet)

	case next.kind == js_lexer.TComma || next.kind == js_lexer.TCloseBrace || next.kind == js_lexer.TEquals:
		// Shorthand property: represented as a Property whose key and
		// value are the same interned identifier.
		key := p.internedKey(hintText, hintLoc)
		ident := key.Data.(*js_ast.EIdentifier)
		value := js_ast.Expr{Loc: hintLoc, Data: &js_ast.EIdentifier{Ref: ident.Ref}}
		var init js_ast.Expr
		if _, ok := p.cursor.NextIf(js_lexer.TEquals); ok {
			init = p.parseExpr(g, js_ast.LAssign)
		}
		return js_ast.Property{Key: key, ValueOrNil: value, InitializerOrNil: init, Kind: js_ast.PropertyNormal, WasShorthand: true}

	default:
		p.fail(newGeneral(p.source, "expected property definition", next.loc))
		panic("unreachable")
	}
}

// consumeMethodModifiers peeks for the "async" contextual modifier and
// the "*" generator marker that may precede a method definition's key,
// covering the Generator/Async/AsyncGenerator MethodDefinitionKind
// variants without a dedicated enum (js_ast.go's Property doc comment
// explains the Fn.IsGenerator/IsAsync representation choice).
func (p *parser) consumeMethodModifiers() (isAsync, isGenerator bool) {
	cur := p.cursor.Cur()
	if cur.kind == js_lexer.TIdentifier && cur.identifier == "async" {
		next := p.cursor.Peek(1)
		isKeyLike := next.kind == js_lexer.TColon || next.kind == js_lexer.TOpenParen ||
			next.kind == js_lexer.TComma || next.kind == js_lexer.TCloseBrace || next.kind == js_lexer.TEquals
		if !isKeyLike && !next.hasNewlineBefore {
			isAsync = true
			p.cursor.Advance()
		}
	}
	if _, ok := p.cursor.NextIf(js_lexer.TAsterisk); ok {
		isGenerator = true
	}
	return
}

func (p *parser) finishPropertyAfterKey(g GrammarParams, key js_ast.Expr, isComputed bool) js_ast.Property {
	if _, ok := p.cursor.NextIf(js_lexer.TColon); ok {
		value := p.parseExpr(g, js_ast.LAssign)
		return js_ast.Property{Key: key, ValueOrNil: value, Kind: js_ast.PropertyNormal, IsComputed: isComputed}
	}
	if p.cursor.Cur().kind == js_lexer.TOpenParen {
		prop := p.parseMethodDefinition(g, key, false, false, false)
		prop.IsComputed = isComputed
		return prop
	}
	p.fail(newGeneral(p.source, "expected property definition", p.cursor.Cur().loc))
	panic("unreachable")
}

// parseAccessor handles the "get"/"set" hint of MethodDefinition:
// getters take zero parameters, setters take exactly one.
func (p *parser) parseAccessor(g GrammarParams, key js_ast.Expr, isGet bool) js_ast.Property {
	p.cursor.Expect(js_lexer.TOpenParen, "method definition")

	var args []js_ast.Arg
	if isGet {
		if p.cursor.Cur().kind != js_lexer.TCloseParen {
			cur := p.cursor.Cur()
			p.fail(newUnexpected(p.source, foundDesc(cur), cur.loc, "getter functions must have no arguments"))
		}
	} else {
		if p.cursor.Cur().kind == js_lexer.TCloseParen {
			cur := p.cursor.Cur()
			p.fail(newUnexpected(p.source, foundDesc(cur), cur.loc, "setter functions must have one argument"))
		}
		paramG := GrammarParams{AllowIn: true}
		args = append(args, js_ast.Arg{Binding: p.parseBindingTarget(paramG)})
		if p.cursor.Cur().kind != js_lexer.TCloseParen {
			cur := p.cursor.Cur()
			p.fail(newUnexpected(p.source, foundDesc(cur), cur.loc, "setter functions must have one argument"))
		}
	}
	p.cursor.Expect(js_lexer.TCloseParen, "method definition")

	body := p.parseFunctionBody(g.ForFunctionBody(false, false))
	kind := js_ast.PropertyGet
	if !isGet {
		kind = js_ast.PropertySet
	}
	return js_ast.Property{
		Key:        key,
		ValueOrNil: js_ast.Expr{Loc: key.Loc, Data: &js_ast.EFunction{Fn: js_ast.Fn{Args: args, Body: body}}},
		Kind:       kind,
		IsMethod:   true,
	}
}

// parseMethodDefinition is the "otherwise" branch of MethodDefinition:
// the hint is the property name itself.
func (p *parser) parseMethodDefinition(g GrammarParams, key js_ast.Expr, isGenerator, isAsync, isStatic bool) js_ast.Property {
	p.cursor.Expect(js_lexer.TOpenParen, "method definition")
	args := p.parseParamList(g, isAsync)
	p.cursor.Expect(js_lexer.TCloseParen, "method definition")
	body := p.parseFunctionBody(g.ForFunctionBody(isGenerator, isAsync))
	fn := js_ast.Fn{Args: args, Body: body, IsAsync: isAsync, IsGenerator: isGenerator}
	return js_ast.Property{
		Key:        key,
		ValueOrNil: js_ast.Expr{Loc: key.Loc, Data: &js_ast.EFunction{Fn: fn}},
		Kind:       js_ast.PropertyNormal,
		IsMethod:   true,
		IsStatic:   isStatic,
	}
}

// parseParamList parses a FormalParameterList up to (but not including)
// the closing ")". Parameter initializers see AllowYield=false and
// AllowAwait set to the entered function's async-ness: inside the
// formal parameter defaults of an async function, awaiting is allowed
// but yielding is not.
func (p *parser) parseParamList(g GrammarParams, isAsync bool) []js_ast.Arg {
	paramG := GrammarParams{AllowIn: true, AllowYield: false, AllowAwait: isAsync}

	var args []js_ast.Arg
	for p.cursor.Cur().kind != js_lexer.TCloseParen {
		if _, ok := p.cursor.NextIf(js_lexer.TDotDotDot); ok {
			b := p.parseBindingTarget(paramG)
			args = append(args, js_ast.Arg{Binding: b})
			break
		}

		b := p.parseBindingTarget(paramG)
		var def js_ast.Expr
		if _, ok := p.cursor.NextIf(js_lexer.TEquals); ok {
			def = p.parseExpr(paramG, js_ast.LAssign)
		}
		args = append(args, js_ast.Arg{Binding: b, DefaultOrNil: def})

		if _, ok := p.cursor.NextIf(js_lexer.TComma); !ok {
			break
		}
	}
	return args
}

func (p *parser) parseFunctionBody(g GrammarParams) js_ast.FnBody {
	loc := p.cursor.Cur().loc
	p.fnDepth++
	block := p.parseBlockStmt(g)
	p.fnDepth--
	return js_ast.FnBody{Block: *block, Loc: loc}
}

// parsePropertyKey parses a PropertyName: a computed "[expr]", a string
// or numeric literal, or an IdentifierName (which, unlike a binding
// identifier, may be any of the 34 reserved words too).
func (p *parser) parsePropertyKey(g GrammarParams) (js_ast.Expr, bool) {
	cur := p.cursor.Cur()

	switch cur.kind {
	case js_lexer.TOpenBracket:
		p.cursor.Advance()
		expr := p.parseExpr(g.WithIn(true), js_ast.LAssign)
		p.cursor.Expect(js_lexer.TCloseBracket, "computed property key")
		return expr, true

	case js_lexer.TStringLiteral:
		p.cursor.Advance()
		name := js_lexer.UTF16ToString(cur.stringLiteral)
		return p.internedKey(name, cur.loc), false

	case js_lexer.TNumericLiteral:
		p.cursor.Advance()
		name := strconv.FormatFloat(cur.number, 'g', -1, 64)
		return p.internedKey(name, cur.loc), false

	default:
		name, ok := identifierNameText(cur)
		if !ok {
			p.fail(newExpected(p.source, []string{"property name"}, foundDesc(cur), cur.loc, "property key"))
		}
		p.cursor.Advance()
		return p.internedKey(name, cur.loc), false
	}
}

func (p *parser) internedKey(name string, loc logger.Loc) js_ast.Expr {
	ref := p.interner.Intern(name)
	return js_ast.Expr{Loc: loc, Data: &js_ast.EIdentifier{Ref: ref}}
}

// identifierNameText extends a binding identifier's text to include the
// 34 reserved words and the true/false/null literals, since any of
// those may appear as an IdentifierName in property-key position.
func identifierNameText(t tok) (string, bool) {
	switch t.kind {
	case js_lexer.TIdentifier:
		return t.identifier, true
	case js_lexer.TTrue:
		return "true", true
	case js_lexer.TFalse:
		return "false", true
	case js_lexer.TNull:
		return "null", true
	}
	if s, ok := js_lexer.KeywordText(t.kind); ok {
		return s, true
	}
	return "", false
}
