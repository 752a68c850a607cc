package js_parser

import (
	"github.com/1ntEgr8/ecmafront/internal/js_ast"
	"github.com/1ntEgr8/ecmafront/internal/js_lexer"
	"github.com/1ntEgr8/ecmafront/internal/logger"
)

// parseImportStmt parses every ImportDeclaration form. parseStmt
// dispatches here under either parse goal; the IsModule check below is
// what actually rejects it for ParseScript.
func (p *parser) parseImportStmt(loc logger.Loc) js_ast.Stmt {
	if !p.options.IsModule {
		p.fail(newGeneral(p.source, "import declarations are only valid inside a module", loc))
	}
	p.cursor.Advance() // 'import'

	if cur := p.cursor.Cur(); cur.kind == js_lexer.TStringLiteral {
		path := js_lexer.UTF16ToString(cur.stringLiteral)
		p.cursor.Advance()
		p.cursor.ExpectSemicolon("import statement")
		return js_ast.Stmt{Loc: loc, Data: &js_ast.SImport{Path: path}}
	}

	var defaultName *js_ast.LocRef
	var items []js_ast.ClauseItem
	var starNameLoc *logger.Loc
	var starRef js_ast.Ref

	cur := p.cursor.Cur()
	if cur.kind == js_lexer.TIdentifier {
		ref := p.interner.Intern(cur.identifier)
		defaultName = &js_ast.LocRef{Loc: cur.loc, Ref: ref}
		p.cursor.Advance()
		if _, ok := p.cursor.NextIf(js_lexer.TComma); ok {
			if p.cursor.Cur().kind == js_lexer.TAsterisk {
				starNameLoc, starRef = p.parseImportStar()
			} else {
				items = p.parseImportClause()
			}
		}
	} else if cur.kind == js_lexer.TAsterisk {
		starNameLoc, starRef = p.parseImportStar()
	} else if cur.kind == js_lexer.TOpenBrace {
		items = p.parseImportClause()
	} else {
		p.fail(newExpected(p.source, []string{"identifier", "\"{\"", "\"*\"", "string"}, foundDesc(cur), cur.loc, "import statement"))
	}

	p.cursor.ExpectIdentifier("from", "import statement")
	pathTok := p.cursor.Cur()
	if pathTok.kind != js_lexer.TStringLiteral {
		p.fail(newExpected(p.source, []string{"string"}, foundDesc(pathTok), pathTok.loc, "import statement"))
	}
	path := js_lexer.UTF16ToString(pathTok.stringLiteral)
	p.cursor.Advance()
	p.cursor.ExpectSemicolon("import statement")

	stmt := &js_ast.SImport{DefaultName: defaultName, Items: items, StarNameLoc: starNameLoc, Path: path}
	if starNameLoc != nil {
		stmt.NamespaceRef = starRef
	}
	return js_ast.Stmt{Loc: loc, Data: stmt}
}

// parseImportStar parses "* as name", entered with "*" not yet
// consumed.
func (p *parser) parseImportStar() (*logger.Loc, js_ast.Ref) {
	p.cursor.Advance() // '*'
	p.cursor.ExpectIdentifier("as", "import statement")
	nameTok := p.cursor.Expect(js_lexer.TIdentifier, "import statement")
	ref := p.interner.Intern(nameTok.identifier)
	nameLoc := nameTok.loc
	return &nameLoc, ref
}

// parseImportClause parses a named-import clause "{ a, b as c }",
// entered with "{" not yet consumed.
func (p *parser) parseImportClause() []js_ast.ClauseItem {
	p.cursor.Advance() // '{'
	var items []js_ast.ClauseItem
	for p.cursor.Cur().kind != js_lexer.TCloseBrace {
		aliasTok := p.cursor.Cur()
		alias, ok := identifierNameText(aliasTok)
		if !ok {
			p.fail(newExpected(p.source, []string{"identifier"}, foundDesc(aliasTok), aliasTok.loc, "import clause"))
		}
		p.cursor.Advance()

		nameTok := aliasTok
		if _, ok := p.cursor.NextIfIdentifier("as"); ok {
			nameTok = p.cursor.Expect(js_lexer.TIdentifier, "import clause")
		} else if aliasTok.kind != js_lexer.TIdentifier {
			p.fail(newGeneral(p.source, "expected \"as\" after reserved word \""+alias+"\" in import clause", aliasTok.loc))
		}

		ref := p.interner.Intern(nameTok.identifier)
		items = append(items, js_ast.ClauseItem{Alias: alias, AliasLoc: aliasTok.loc, Name: js_ast.LocRef{Loc: nameTok.loc, Ref: ref}})

		if _, ok := p.cursor.NextIf(js_lexer.TComma); !ok {
			break
		}
	}
	p.cursor.Expect(js_lexer.TCloseBrace, "import clause")
	return items
}

// parseExportStmt parses every ExportDeclaration form. Like
// parseImportStmt, parseStmt dispatches here under either parse goal;
// the IsModule check below is what rejects it for ParseScript.
func (p *parser) parseExportStmt(g GrammarParams, loc logger.Loc) js_ast.Stmt {
	if !p.options.IsModule {
		p.fail(newGeneral(p.source, "export declarations are only valid inside a module", loc))
	}
	p.cursor.Advance() // 'export'

	cur := p.cursor.Cur()
	switch {
	case cur.kind == js_lexer.TDefault:
		return p.parseExportDefaultStmt(g, loc)

	case cur.kind == js_lexer.TAsterisk:
		return p.parseExportStarStmt(loc)

	case cur.kind == js_lexer.TOpenBrace:
		return p.parseExportClauseStmt(loc)

	case cur.kind == js_lexer.TFunction:
		return p.setExportFlag(p.parseFunctionDecl(g, loc, true))

	case cur.kind == js_lexer.TClass:
		return p.setExportFlag(p.parseClassDecl(g, loc, true))

	case cur.kind == js_lexer.TVar:
		p.cursor.Advance()
		return p.setExportFlag(p.parseVarStmt(g, loc, js_ast.LocalVar))

	case cur.kind == js_lexer.TLet:
		p.cursor.Advance()
		return p.setExportFlag(p.parseVarStmt(g, loc, js_ast.LocalLet))

	case cur.kind == js_lexer.TConst:
		p.cursor.Advance()
		return p.setExportFlag(p.parseVarStmt(g, loc, js_ast.LocalConst))

	default:
		p.fail(newExpected(p.source, []string{"\"default\"", "\"*\"", "\"{\"", "declaration"}, foundDesc(cur), cur.loc, "export statement"))
		panic("unreachable")
	}
}

// setExportFlag marks a just-parsed declaration statement as exported.
// It is a no-op for any statement shape other than the three that
// carry an IsExport flag.
func (p *parser) setExportFlag(stmt js_ast.Stmt) js_ast.Stmt {
	switch s := stmt.Data.(type) {
	case *js_ast.SFunction:
		s.IsExport = true
	case *js_ast.SClass:
		s.IsExport = true
	case *js_ast.SLocal:
		s.IsExport = true
	}
	return stmt
}

// parseExportDefaultStmt parses "default" through the end of the
// declaration or expression, entered with "export" already consumed
// and "default" not yet consumed.
func (p *parser) parseExportDefaultStmt(g GrammarParams, loc logger.Loc) js_ast.Stmt {
	p.cursor.Advance() // 'default'
	cur := p.cursor.Cur()

	switch cur.kind {
	case js_lexer.TFunction:
		fn := p.parseFunctionDecl(g, cur.loc, false)
		return js_ast.Stmt{Loc: loc, Data: &js_ast.SExportDefault{Value: fn}}

	case js_lexer.TClass:
		class := p.parseClassDecl(g, cur.loc, false)
		return js_ast.Stmt{Loc: loc, Data: &js_ast.SExportDefault{Value: class}}

	default:
		value := p.parseExpr(g.WithIn(true), js_ast.LAssign)
		p.cursor.ExpectSemicolon("export default statement")
		return js_ast.Stmt{Loc: loc, Data: &js_ast.SExportDefault{Value: js_ast.Stmt{Loc: value.Loc, Data: &js_ast.SExpr{Value: value}}}}
	}
}

// parseExportStarStmt parses "* [as name] from 'path';", entered with
// "export" already consumed and "*" not yet consumed.
func (p *parser) parseExportStarStmt(loc logger.Loc) js_ast.Stmt {
	p.cursor.Advance() // '*'
	var alias *string
	if _, ok := p.cursor.NextIfIdentifier("as"); ok {
		nameTok := p.cursor.Expect(js_lexer.TIdentifier, "export statement")
		alias = &nameTok.identifier
	}
	p.cursor.ExpectIdentifier("from", "export statement")
	pathTok := p.cursor.Expect(js_lexer.TStringLiteral, "export statement")
	path := js_lexer.UTF16ToString(pathTok.stringLiteral)
	p.cursor.ExpectSemicolon("export statement")
	return js_ast.Stmt{Loc: loc, Data: &js_ast.SExportStar{Alias: alias, Path: path}}
}

// parseExportClauseStmt parses "{ a, b as c } [from 'path'];", entered
// with "export" already consumed and "{" not yet consumed.
func (p *parser) parseExportClauseStmt(loc logger.Loc) js_ast.Stmt {
	p.cursor.Advance() // '{'
	var items []js_ast.ClauseItem
	for p.cursor.Cur().kind != js_lexer.TCloseBrace {
		nameTok := p.cursor.Cur()
		name, ok := identifierNameText(nameTok)
		if !ok {
			p.fail(newExpected(p.source, []string{"identifier"}, foundDesc(nameTok), nameTok.loc, "export clause"))
		}
		p.cursor.Advance()

		alias := name
		aliasLoc := nameTok.loc
		if _, ok := p.cursor.NextIfIdentifier("as"); ok {
			aliasTok := p.cursor.Cur()
			a, ok := identifierNameText(aliasTok)
			if !ok {
				p.fail(newExpected(p.source, []string{"identifier"}, foundDesc(aliasTok), aliasTok.loc, "export clause"))
			}
			p.cursor.Advance()
			alias = a
			aliasLoc = aliasTok.loc
		}

		ref := p.interner.Intern(name)
		items = append(items, js_ast.ClauseItem{Alias: alias, AliasLoc: aliasLoc, Name: js_ast.LocRef{Loc: nameTok.loc, Ref: ref}})

		if _, ok := p.cursor.NextIf(js_lexer.TComma); !ok {
			break
		}
	}
	p.cursor.Expect(js_lexer.TCloseBrace, "export clause")

	var path *string
	if _, ok := p.cursor.NextIfIdentifier("from"); ok {
		pathTok := p.cursor.Expect(js_lexer.TStringLiteral, "export statement")
		s := js_lexer.UTF16ToString(pathTok.stringLiteral)
		path = &s
	}
	p.cursor.ExpectSemicolon("export statement")
	return js_ast.Stmt{Loc: loc, Data: &js_ast.SExportClause{Items: items, Path: path}}
}
