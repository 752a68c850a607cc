// Package js_parser is a recursive-descent parser with bounded (≤2
// significant token) lookahead. It turns a Cursor over js_lexer tokens
// into the closed js_ast variant set, threading GrammarParams by value
// through every production.
package js_parser

import (
	"github.com/1ntEgr8/ecmafront/internal/js_ast"
	"github.com/1ntEgr8/ecmafront/internal/js_lexer"
	"github.com/1ntEgr8/ecmafront/internal/logger"
)

// Program is the parser's top-level output: a StatementList plus the
// goal it was parsed under (ParseScript vs ParseModule).
type Program struct {
	Stmts    []js_ast.Stmt
	IsModule bool
}

type parser struct {
	cursor   *Cursor
	interner *js_ast.Interner
	source   *logger.Source
	options  ParseOptions

	// fnDepth tracks function nesting so ReturnStatement can be rejected
	// at top level ("ReturnStatement (only if inside function)").
	fnDepth int
}

// ParseScript parses source as a Script: "await" is parsed as an
// operator only inside async functions, and import/export are not
// permitted.
func ParseScript(log logger.Log, source logger.Source, options ParseOptions) (prog Program, interner *js_ast.Interner, err *ParseError) {
	options.IsModule = false
	return parseProgram(log, source, options)
}

// ParseModule parses source as a Module: import/export are permitted
// at the top level, and a top-level "await" is parsed as an await
// expression. No strict-mode rules are applied; inside a non-async
// function "await" is an ordinary identifier, and it is accepted as a
// binding name.
func ParseModule(log logger.Log, source logger.Source, options ParseOptions) (prog Program, interner *js_ast.Interner, err *ParseError) {
	options.IsModule = true
	return parseProgram(log, source, options)
}

func parseProgram(log logger.Log, source logger.Source, options ParseOptions) (prog Program, interner *js_ast.Interner, err *ParseError) {
	interner = js_ast.NewInterner()

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch v := r.(type) {
		case parseErrorPanic:
			err = v.err
		case js_lexer.LexerPanic:
			err = newGeneral(&source, "malformed token", logger.Loc{})
		default:
			panic(r)
		}
		prog = Program{}
	}()

	lexer := js_lexer.NewLexer(log, source)
	p := &parser{
		cursor:   NewCursor(&lexer, &source),
		interner: interner,
		source:   &source,
		options:  options,
	}

	g := GrammarParams{AllowIn: true, AllowYield: false, AllowAwait: options.IsModule}

	var stmts []js_ast.Stmt
	for p.cursor.Cur().kind != js_lexer.TEndOfFile {
		stmts = append(stmts, p.parseStmt(g))
	}

	return Program{Stmts: stmts, IsModule: options.IsModule}, interner, nil
}

// parseStmt is the statement-level dispatch table.
func (p *parser) parseStmt(g GrammarParams) js_ast.Stmt {
	cur := p.cursor.Cur()
	loc := cur.loc

	switch cur.kind {
	case js_lexer.TOpenBrace:
		return js_ast.Stmt{Loc: loc, Data: p.parseBlockStmt(g)}

	case js_lexer.TVar:
		p.cursor.Advance()
		return p.parseVarStmt(g, loc, js_ast.LocalVar)

	case js_lexer.TLet:
		p.cursor.Advance()
		return p.parseVarStmt(g, loc, js_ast.LocalLet)

	case js_lexer.TConst:
		p.cursor.Advance()
		return p.parseVarStmt(g, loc, js_ast.LocalConst)

	case js_lexer.TIf:
		return p.parseIfStmt(g, loc)

	case js_lexer.TFor:
		return p.parseForStmt(g, loc)

	case js_lexer.TWhile:
		return p.parseWhileStmt(g, loc)

	case js_lexer.TDo:
		return p.parseDoWhileStmt(g, loc)

	case js_lexer.TSwitch:
		return p.parseSwitchStmt(g, loc)

	case js_lexer.TTry:
		return p.parseTryStmt(g, loc)

	case js_lexer.TReturn:
		return p.parseReturnStmt(g, loc)

	case js_lexer.TThrow:
		return p.parseThrowStmt(g, loc)

	case js_lexer.TBreak:
		return p.parseBreakStmt(loc)

	case js_lexer.TContinue:
		return p.parseContinueStmt(loc)

	case js_lexer.TFunction:
		return p.parseFunctionDecl(g, loc, true)

	case js_lexer.TClass:
		return p.parseClassDecl(g, loc, true)

	case js_lexer.TImport:
		// "import(...)" and "import.meta" are expression forms, legal
		// anywhere; only the declaration forms are module-only.
		if next := p.cursor.Peek(1); next.kind == js_lexer.TOpenParen || next.kind == js_lexer.TDot {
			return p.parseExprStmt(g, loc)
		}
		return p.parseImportStmt(loc)

	case js_lexer.TExport:
		return p.parseExportStmt(g, loc)

	case js_lexer.TSemicolon:
		p.cursor.Advance()
		return js_ast.Stmt{Loc: loc, Data: &js_ast.SEmpty{}}

	case js_lexer.TDebugger:
		p.cursor.Advance()
		p.cursor.ExpectSemicolon("debugger statement")
		return js_ast.Stmt{Loc: loc, Data: &js_ast.SDebugger{}}

	case js_lexer.TIdentifier:
		// LabelledStatement: "identifier ':' Statement". Two tokens of
		// lookahead are enough to decide this.
		if p.cursor.Peek(1).kind == js_lexer.TColon {
			name := cur.identifier
			p.cursor.Advance()
			p.cursor.Advance() // ':'
			ref := p.interner.Intern(name)
			body := p.parseStmt(g)
			return js_ast.Stmt{Loc: loc, Data: &js_ast.SLabel{Name: js_ast.LocRef{Loc: loc, Ref: ref}, Stmt: body}}
		}
		return p.parseExprStmt(g, loc)

	default:
		return p.parseExprStmt(g, loc)
	}
}

func (p *parser) parseBlockStmt(g GrammarParams) *js_ast.SBlock {
	p.cursor.Expect(js_lexer.TOpenBrace, "block statement")
	var stmts []js_ast.Stmt
	for p.cursor.Cur().kind != js_lexer.TCloseBrace {
		if p.cursor.Cur().kind == js_lexer.TEndOfFile {
			p.cursor.Expect(js_lexer.TCloseBrace, "block statement")
		}
		stmts = append(stmts, p.parseStmt(g))
	}
	p.cursor.Advance() // '}'
	return &js_ast.SBlock{Stmts: stmts}
}

func (p *parser) parseExprStmt(g GrammarParams, loc logger.Loc) js_ast.Stmt {
	expr := p.parseExpr(g, js_ast.LLowest)
	p.cursor.ExpectSemicolon("expression statement")
	return js_ast.Stmt{Loc: loc, Data: &js_ast.SExpr{Value: expr}}
}

func (p *parser) parseIfStmt(g GrammarParams, loc logger.Loc) js_ast.Stmt {
	p.cursor.Advance() // 'if'
	p.cursor.Expect(js_lexer.TOpenParen, "if statement")
	test := p.parseExpr(g.WithIn(true), js_ast.LLowest)
	p.cursor.Expect(js_lexer.TCloseParen, "if statement")
	yes := p.parseStmt(g)
	var no js_ast.Stmt
	if _, ok := p.cursor.NextIf(js_lexer.TElse); ok {
		no = p.parseStmt(g)
	}
	return js_ast.Stmt{Loc: loc, Data: &js_ast.SIf{Test: test, Yes: yes, NoOrNil: no}}
}

func (p *parser) parseWhileStmt(g GrammarParams, loc logger.Loc) js_ast.Stmt {
	p.cursor.Advance() // 'while'
	p.cursor.Expect(js_lexer.TOpenParen, "while statement")
	test := p.parseExpr(g.WithIn(true), js_ast.LLowest)
	p.cursor.Expect(js_lexer.TCloseParen, "while statement")
	body := p.parseStmt(g)
	return js_ast.Stmt{Loc: loc, Data: &js_ast.SWhile{Test: test, Body: body}}
}

func (p *parser) parseDoWhileStmt(g GrammarParams, loc logger.Loc) js_ast.Stmt {
	p.cursor.Advance() // 'do'
	body := p.parseStmt(g)
	p.cursor.Expect(js_lexer.TWhile, "do-while statement")
	p.cursor.Expect(js_lexer.TOpenParen, "do-while statement")
	test := p.parseExpr(g.WithIn(true), js_ast.LLowest)
	p.cursor.Expect(js_lexer.TCloseParen, "do-while statement")
	// A "do...while(...)" statement may always elide its trailing
	// semicolon via ASI, even with no newline before the next token.
	p.cursor.NextIf(js_lexer.TSemicolon)
	return js_ast.Stmt{Loc: loc, Data: &js_ast.SDoWhile{Body: body, Test: test}}
}

func (p *parser) parseReturnStmt(g GrammarParams, loc logger.Loc) js_ast.Stmt {
	p.cursor.Advance() // 'return'
	if p.fnDepth == 0 {
		p.fail(newGeneral(p.source, "return statement is only valid inside a function", loc))
	}
	var value js_ast.Expr
	cur := p.cursor.Cur()
	if cur.kind != js_lexer.TSemicolon && cur.kind != js_lexer.TCloseBrace && cur.kind != js_lexer.TEndOfFile && !cur.hasNewlineBefore {
		value = p.parseExpr(g.WithIn(true), js_ast.LLowest)
	}
	p.cursor.ExpectSemicolon("return statement")
	return js_ast.Stmt{Loc: loc, Data: &js_ast.SReturn{ValueOrNil: value}}
}

func (p *parser) parseThrowStmt(g GrammarParams, loc logger.Loc) js_ast.Stmt {
	p.cursor.Advance() // 'throw'
	if p.cursor.Cur().hasNewlineBefore {
		p.fail(newGeneral(p.source, "no line break is allowed between \"throw\" and its expression", loc))
	}
	value := p.parseExpr(g.WithIn(true), js_ast.LLowest)
	p.cursor.ExpectSemicolon("throw statement")
	return js_ast.Stmt{Loc: loc, Data: &js_ast.SThrow{Value: value}}
}

func (p *parser) parseBreakStmt(loc logger.Loc) js_ast.Stmt {
	p.cursor.Advance() // 'break'
	label := p.parseOptionalLabel()
	p.cursor.ExpectSemicolon("break statement")
	return js_ast.Stmt{Loc: loc, Data: &js_ast.SBreak{LabelOrNil: label}}
}

func (p *parser) parseContinueStmt(loc logger.Loc) js_ast.Stmt {
	p.cursor.Advance() // 'continue'
	label := p.parseOptionalLabel()
	p.cursor.ExpectSemicolon("continue statement")
	return js_ast.Stmt{Loc: loc, Data: &js_ast.SContinue{LabelOrNil: label}}
}

func (p *parser) parseOptionalLabel() *js_ast.LocRef {
	cur := p.cursor.Cur()
	if cur.kind == js_lexer.TIdentifier && !cur.hasNewlineBefore {
		p.cursor.Advance()
		ref := p.interner.Intern(cur.identifier)
		return &js_ast.LocRef{Loc: cur.loc, Ref: ref}
	}
	return nil
}

func (p *parser) parseSwitchStmt(g GrammarParams, loc logger.Loc) js_ast.Stmt {
	p.cursor.Advance() // 'switch'
	p.cursor.Expect(js_lexer.TOpenParen, "switch statement")
	test := p.parseExpr(g.WithIn(true), js_ast.LLowest)
	p.cursor.Expect(js_lexer.TCloseParen, "switch statement")
	p.cursor.Expect(js_lexer.TOpenBrace, "switch statement")

	var cases []js_ast.Case
	sawDefault := false
	for p.cursor.Cur().kind != js_lexer.TCloseBrace {
		var value js_ast.Expr
		if _, ok := p.cursor.NextIf(js_lexer.TDefault); ok {
			if sawDefault {
				p.fail(newGeneral(p.source, "a switch statement may only have one default clause", p.cursor.Cur().loc))
			}
			sawDefault = true
		} else {
			p.cursor.Expect(js_lexer.TCase, "switch statement")
			value = p.parseExpr(g.WithIn(true), js_ast.LLowest)
		}
		p.cursor.Expect(js_lexer.TColon, "switch case")

		var body []js_ast.Stmt
		for {
			cur := p.cursor.Cur().kind
			if cur == js_lexer.TCase || cur == js_lexer.TDefault || cur == js_lexer.TCloseBrace {
				break
			}
			body = append(body, p.parseStmt(g))
		}
		cases = append(cases, js_ast.Case{ValueOrNil: value, Body: body})
	}
	p.cursor.Advance() // '}'
	return js_ast.Stmt{Loc: loc, Data: &js_ast.SSwitch{Test: test, Cases: cases}}
}

func (p *parser) parseTryStmt(g GrammarParams, loc logger.Loc) js_ast.Stmt {
	p.cursor.Advance() // 'try'
	body := p.parseBlockStmt(g).Stmts

	var catch *js_ast.Catch
	if _, ok := p.cursor.NextIf(js_lexer.TCatch); ok {
		var bindingOrNil *js_ast.Binding
		if _, ok := p.cursor.NextIf(js_lexer.TOpenParen); ok {
			b := p.parseBindingTarget(g)
			p.cursor.Expect(js_lexer.TCloseParen, "catch clause")
			bindingOrNil = &b
		}
		catchBody := p.parseBlockStmt(g).Stmts
		catch = &js_ast.Catch{BindingOrNil: bindingOrNil, Body: catchBody}
	}

	var finally *js_ast.Finally
	if _, ok := p.cursor.NextIf(js_lexer.TFinally); ok {
		finally = &js_ast.Finally{Stmts: p.parseBlockStmt(g).Stmts}
	}

	if catch == nil && finally == nil {
		p.fail(newGeneral(p.source, "expected \"catch\" or \"finally\" after \"try\" block", p.cursor.Cur().loc))
	}

	return js_ast.Stmt{Loc: loc, Data: &js_ast.STry{Body: body, Catch: catch, FinallyOrNil: finally}}
}

func (p *parser) parseForStmt(g GrammarParams, loc logger.Loc) js_ast.Stmt {
	p.cursor.Advance() // 'for'
	isAwait := false
	if g.AllowAwait {
		if cur := p.cursor.Cur(); cur.kind == js_lexer.TIdentifier && cur.identifier == "await" {
			p.cursor.Advance()
			isAwait = true
		}
	}
	p.cursor.Expect(js_lexer.TOpenParen, "for statement")

	// Grammar-parameter transformation: the head's left-hand side
	// parses with AllowIn=false so a bare "in" is never
	// swallowed as a binary operator; it is restored to true for the
	// loop's test/update/body and for the for-in/for-of right-hand side.
	headG := g.WithIn(false)

	var init js_ast.Stmt
	initLoc := p.cursor.Cur().loc

	switch p.cursor.Cur().kind {
	case js_lexer.TSemicolon:
		// no init

	case js_lexer.TVar, js_lexer.TLet, js_lexer.TConst:
		kind := js_ast.LocalVar
		switch p.cursor.Cur().kind {
		case js_lexer.TLet:
			kind = js_ast.LocalLet
		case js_lexer.TConst:
			kind = js_ast.LocalConst
		}
		p.cursor.Advance()
		decls := p.parseVarDeclList(headG, kind)

		if (p.cursor.Cur().kind == js_lexer.TIn || isForOf(p.cursor.Cur())) && len(decls) == 1 && decls[0].ValueOrNil.Data == nil {
			return p.parseForInOf(g, loc, js_ast.Stmt{Loc: initLoc, Data: &js_ast.SLocal{Decls: decls, Kind: kind}}, isAwait)
		}
		init = js_ast.Stmt{Loc: initLoc, Data: &js_ast.SLocal{Decls: decls, Kind: kind}}

	default:
		expr := p.parseExpr(headG, js_ast.LLowest)
		if p.cursor.Cur().kind == js_lexer.TIn || isForOf(p.cursor.Cur()) {
			return p.parseForInOf(g, loc, js_ast.Stmt{Loc: initLoc, Data: &js_ast.SExpr{Value: expr}}, isAwait)
		}
		init = js_ast.Stmt{Loc: initLoc, Data: &js_ast.SExpr{Value: expr}}
	}

	p.cursor.Expect(js_lexer.TSemicolon, "for statement")
	var test js_ast.Expr
	if p.cursor.Cur().kind != js_lexer.TSemicolon {
		test = p.parseExpr(g.WithIn(true), js_ast.LLowest)
	}
	p.cursor.Expect(js_lexer.TSemicolon, "for statement")
	var update js_ast.Expr
	if p.cursor.Cur().kind != js_lexer.TCloseParen {
		update = p.parseExpr(g.WithIn(true), js_ast.LLowest)
	}
	p.cursor.Expect(js_lexer.TCloseParen, "for statement")
	body := p.parseStmt(g)

	var initStmt js_ast.Stmt
	if init.Data != nil {
		initStmt = init
	}
	return js_ast.Stmt{Loc: loc, Data: &js_ast.SFor{InitOrNil: initStmt, TestOrNil: test, UpdateOrNil: update, Body: body}}
}

// isForOf reports whether the current token is the contextual "of"
// that distinguishes for-of from for-in. "of" is not one of the
// reserved words, so it always lexes as TIdentifier.
func isForOf(t tok) bool {
	return t.kind == js_lexer.TIdentifier && t.identifier == "of"
}

func (p *parser) parseForInOf(g GrammarParams, loc logger.Loc, init js_ast.Stmt, isAwait bool) js_ast.Stmt {
	isOf := isForOf(p.cursor.Cur())
	p.cursor.Advance() // 'in' or 'of'
	value := p.parseExpr(g.WithIn(true), js_ast.LAssign)
	p.cursor.Expect(js_lexer.TCloseParen, "for-in/for-of statement")
	body := p.parseStmt(g)
	if isOf {
		return js_ast.Stmt{Loc: loc, Data: &js_ast.SForOf{Init: init, Value: value, Body: body, IsAwait: isAwait}}
	}
	return js_ast.Stmt{Loc: loc, Data: &js_ast.SForIn{Init: init, Value: value, Body: body}}
}
