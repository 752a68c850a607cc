package js_ast

import "github.com/1ntEgr8/ecmafront/internal/logger"

// Stmt is every statement-position node: a source position plus a
// tagged payload, mirroring Expr.
type Stmt struct {
	Data S
	Loc  logger.Loc
}

// S is never called. Its only purpose is to close the statement
// variant set in Go's type system.
type S interface{ isStmt() }

func (*SBlock) isStmt()      {}
func (*SEmpty) isStmt()      {}
func (*SExpr) isStmt()       {}
func (*SIf) isStmt()         {}
func (*SFor) isStmt()        {}
func (*SForIn) isStmt()      {}
func (*SForOf) isStmt()      {}
func (*SWhile) isStmt()      {}
func (*SDoWhile) isStmt()    {}
func (*SSwitch) isStmt()     {}
func (*STry) isStmt()        {}
func (*SReturn) isStmt()     {}
func (*SThrow) isStmt()      {}
func (*SBreak) isStmt()      {}
func (*SContinue) isStmt()   {}
func (*SLocal) isStmt()      {}
func (*SFunction) isStmt()   {}
func (*SClass) isStmt()      {}
func (*SLabel) isStmt()      {}
func (*SDebugger) isStmt()   {}
func (*SDirective) isStmt()  {}
func (*SImport) isStmt()         {}
func (*SExportClause) isStmt()   {}
func (*SExportStar) isStmt()     {}
func (*SExportDefault) isStmt()  {}

type SBlock struct{ Stmts []Stmt }

type SEmpty struct{}

type SExpr struct{ Value Expr }

// SDirective is a node shape for a directive prologue entry ("use
// strict"). The parser does not produce it: a string-literal statement
// in head position is parsed as an SExpr like any other.
type SDirective struct{ Value []uint16 }

type SIf struct {
	Test    Expr
	Yes     Stmt
	NoOrNil Stmt
}

// LocalKind distinguishes VarDecl / LetDecl / ConstDecl, which share one
// parse routine and differ only in this tag plus their scoping rules
// (scope resolution itself is out of this spec's scope).
type LocalKind uint8

const (
	LocalVar LocalKind = iota
	LocalLet
	LocalConst
)

type Decl struct {
	Binding    Binding
	ValueOrNil Expr
}

type SLocal struct {
	Decls    []Decl
	Kind     LocalKind
	IsExport bool
}

type SFor struct {
	InitOrNil   Stmt // SLocal or SExpr, or nil
	TestOrNil   Expr
	UpdateOrNil Expr
	Body        Stmt
}

type SForIn struct {
	Init  Stmt // SLocal or SExpr
	Value Expr
	Body  Stmt
}

type SForOf struct {
	Init   Stmt
	Value  Expr
	Body   Stmt
	IsAwait bool
}

type SWhile struct {
	Test Expr
	Body Stmt
}

type SDoWhile struct {
	Body Stmt
	Test Expr
}

type Case struct {
	ValueOrNil Expr // nil for "default"
	Body       []Stmt
}

type SSwitch struct {
	Test  Expr
	Cases []Case
}

type Catch struct {
	BindingOrNil *Binding
	Body         []Stmt
}

type Finally struct{ Stmts []Stmt }

type STry struct {
	Body        []Stmt
	Catch       *Catch
	FinallyOrNil *Finally
}

type SReturn struct{ ValueOrNil Expr }

type SThrow struct{ Value Expr }

type SBreak struct{ LabelOrNil *LocRef }

type SContinue struct{ LabelOrNil *LocRef }

type SFunction struct {
	Fn        Fn
	IsExport  bool
}

type SClass struct {
	Class    EClass
	IsExport bool
}

type SLabel struct {
	Name LocRef
	Stmt Stmt
}

type SDebugger struct{}

// ClauseItem is one specifier inside an import or export clause's
// braces. For an import, Name is the local binding the module
// introduces and Alias is the name it was imported under ("import {
// foo as bar }" gives Alias="foo", Name="bar"). For an export, the
// roles swap: Name is the already-bound local symbol being exported
// and Alias is the external name other modules see.
type ClauseItem struct {
	Alias    string
	AliasLoc logger.Loc
	Name     LocRef
}

// SImport covers every ImportDeclaration form ("import 'path'",
// "import def from 'path'", "import * as ns from 'path'",
// "import { a, b as c } from 'path'", and combinations of a default
// with a named or namespace clause). At most one of Items and
// StarNameLoc is ever set, per the grammar. Path is kept as the raw
// module specifier text; resolving it to another parsed file is a
// module-linking concern this front end does not perform.
type SImport struct {
	DefaultName  *LocRef
	Items        []ClauseItem
	StarNameLoc  *logger.Loc
	NamespaceRef Ref
	Path         string
}

// SExportClause is "export { a, b as c };" or, when Path is non-nil,
// the re-export form "export { a, b as c } from 'path';".
type SExportClause struct {
	Items []ClauseItem
	Path  *string
}

// SExportStar is "export * from 'path';" (Alias nil) or
// "export * as ns from 'path';" (Alias naming the namespace).
type SExportStar struct {
	Alias *string
	Path  string
}

// SExportDefault is "export default <expr>;" or an export-default
// function/class declaration, which may itself be anonymous. Value
// holds whichever statement form was parsed: *SExpr, *SFunction, or
// *SClass.
type SExportDefault struct {
	Value Stmt
}
