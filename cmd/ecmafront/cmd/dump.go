package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/1ntEgr8/ecmafront/internal/js_ast"
	"github.com/1ntEgr8/ecmafront/internal/js_parser"
)

// dumpProgram renders a parsed Program as an indented tree, the way
// go-dws's "parse --dump-ast" renders its own AST for manual inspection.
func dumpProgram(w io.Writer, prog js_parser.Program, interner *js_ast.Interner) {
	fmt.Fprintf(w, "Program (module=%v, %d statement(s))\n", prog.IsModule, len(prog.Stmts))
	d := &dumper{w: w, interner: interner}
	for _, stmt := range prog.Stmts {
		d.stmt(stmt, 1)
	}
}

type dumper struct {
	w        io.Writer
	interner *js_ast.Interner
}

func (d *dumper) line(indent int, format string, args ...any) {
	fmt.Fprintf(d.w, "%s%s\n", strings.Repeat("  ", indent), fmt.Sprintf(format, args...))
}

func (d *dumper) name(ref js_ast.Ref) string {
	if !ref.IsValid() {
		return "<invalid>"
	}
	return d.interner.Resolve(ref)
}

func (d *dumper) stmt(s js_ast.Stmt, indent int) {
	switch n := s.Data.(type) {
	case *js_ast.SBlock:
		d.line(indent, "Block (%d)", len(n.Stmts))
		for _, sub := range n.Stmts {
			d.stmt(sub, indent+1)
		}
	case *js_ast.SEmpty:
		d.line(indent, "Empty")
	case *js_ast.SDebugger:
		d.line(indent, "Debugger")
	case *js_ast.SExpr:
		d.line(indent, "ExprStatement")
		d.expr(n.Value, indent+1)
	case *js_ast.SLocal:
		d.line(indent, "Local (kind=%d, %d decl(s))", n.Kind, len(n.Decls))
		for _, decl := range n.Decls {
			d.binding(decl.Binding, indent+1)
			if decl.ValueOrNil.Data != nil {
				d.expr(decl.ValueOrNil, indent+2)
			}
		}
	case *js_ast.SIf:
		d.line(indent, "If")
		d.expr(n.Test, indent+1)
		d.stmt(n.Yes, indent+1)
		if n.NoOrNil.Data != nil {
			d.stmt(n.NoOrNil, indent+1)
		}
	case *js_ast.SFor:
		d.line(indent, "For")
		if n.InitOrNil.Data != nil {
			d.stmt(n.InitOrNil, indent+1)
		}
		if n.TestOrNil.Data != nil {
			d.expr(n.TestOrNil, indent+1)
		}
		if n.UpdateOrNil.Data != nil {
			d.expr(n.UpdateOrNil, indent+1)
		}
		d.stmt(n.Body, indent+1)
	case *js_ast.SForIn:
		d.line(indent, "ForIn")
		d.stmt(n.Init, indent+1)
		d.expr(n.Value, indent+1)
		d.stmt(n.Body, indent+1)
	case *js_ast.SForOf:
		d.line(indent, "ForOf (await=%v)", n.IsAwait)
		d.stmt(n.Init, indent+1)
		d.expr(n.Value, indent+1)
		d.stmt(n.Body, indent+1)
	case *js_ast.SWhile:
		d.line(indent, "While")
		d.expr(n.Test, indent+1)
		d.stmt(n.Body, indent+1)
	case *js_ast.SDoWhile:
		d.line(indent, "DoWhile")
		d.stmt(n.Body, indent+1)
		d.expr(n.Test, indent+1)
	case *js_ast.SSwitch:
		d.line(indent, "Switch (%d case(s))", len(n.Cases))
		d.expr(n.Test, indent+1)
		for _, c := range n.Cases {
			if c.ValueOrNil.Data != nil {
				d.line(indent+1, "Case")
				d.expr(c.ValueOrNil, indent+2)
			} else {
				d.line(indent+1, "Default")
			}
			for _, sub := range c.Body {
				d.stmt(sub, indent+2)
			}
		}
	case *js_ast.STry:
		d.line(indent, "Try")
		for _, sub := range n.Body {
			d.stmt(sub, indent+1)
		}
		if n.Catch != nil {
			d.line(indent, "Catch")
			if n.Catch.BindingOrNil != nil {
				d.binding(*n.Catch.BindingOrNil, indent+1)
			}
			for _, sub := range n.Catch.Body {
				d.stmt(sub, indent+1)
			}
		}
		if n.FinallyOrNil != nil {
			d.line(indent, "Finally")
			for _, sub := range n.FinallyOrNil.Stmts {
				d.stmt(sub, indent+1)
			}
		}
	case *js_ast.SReturn:
		d.line(indent, "Return")
		if n.ValueOrNil.Data != nil {
			d.expr(n.ValueOrNil, indent+1)
		}
	case *js_ast.SThrow:
		d.line(indent, "Throw")
		d.expr(n.Value, indent+1)
	case *js_ast.SBreak:
		d.line(indent, "Break")
	case *js_ast.SContinue:
		d.line(indent, "Continue")
	case *js_ast.SFunction:
		d.line(indent, "Function %s", d.fnName(n.Fn))
		d.fn(n.Fn, indent+1)
	case *js_ast.SClass:
		d.line(indent, "Class %s", d.className(n.Class))
		for _, prop := range n.Class.Properties {
			d.property(prop, indent+1)
		}
	case *js_ast.SLabel:
		d.line(indent, "Label %s", d.name(n.Name.Ref))
		d.stmt(n.Stmt, indent+1)
	case *js_ast.SDirective:
		d.line(indent, "Directive")
	case *js_ast.SImport:
		d.line(indent, "Import %q", n.Path)
		if n.DefaultName != nil {
			d.line(indent+1, "Default %s", d.name(n.DefaultName.Ref))
		}
		if n.StarNameLoc != nil {
			d.line(indent+1, "Namespace %s", d.name(n.NamespaceRef))
		}
		for _, item := range n.Items {
			d.line(indent+1, "Item %s as %s", item.Alias, d.name(item.Name.Ref))
		}
	case *js_ast.SExportClause:
		if n.Path != nil {
			d.line(indent, "ExportClause from %q", *n.Path)
		} else {
			d.line(indent, "ExportClause")
		}
		for _, item := range n.Items {
			d.line(indent+1, "Item %s as %s", d.name(item.Name.Ref), item.Alias)
		}
	case *js_ast.SExportStar:
		if n.Alias != nil {
			d.line(indent, "ExportStar as %s from %q", *n.Alias, n.Path)
		} else {
			d.line(indent, "ExportStar from %q", n.Path)
		}
	case *js_ast.SExportDefault:
		d.line(indent, "ExportDefault")
		d.stmt(n.Value, indent+1)
	default:
		d.line(indent, "<unknown statement %T>", n)
	}
}

func (d *dumper) fnName(fn js_ast.Fn) string {
	if fn.Name == nil {
		return "<anonymous>"
	}
	return d.name(fn.Name.Ref)
}

func (d *dumper) className(class js_ast.EClass) string {
	if class.Name == nil {
		return "<anonymous>"
	}
	return d.name(class.Name.Ref)
}

func (d *dumper) fn(fn js_ast.Fn, indent int) {
	d.line(indent, "Params (%d)", len(fn.Args))
	for _, arg := range fn.Args {
		d.binding(arg.Binding, indent+1)
	}
	for _, sub := range fn.Body.Block.Stmts {
		d.stmt(sub, indent)
	}
}

func (d *dumper) property(prop js_ast.Property, indent int) {
	d.line(indent, "Property (kind=%d, method=%v, static=%v)", prop.Kind, prop.IsMethod, prop.IsStatic)
	if prop.Key.Data != nil {
		d.expr(prop.Key, indent+1)
	}
	if prop.ValueOrNil.Data != nil {
		d.expr(prop.ValueOrNil, indent+1)
	}
}

func (d *dumper) binding(b js_ast.Binding, indent int) {
	switch n := b.Data.(type) {
	case *js_ast.BIdentifier:
		d.line(indent, "Identifier %s", d.name(n.Ref))
	case *js_ast.BMissing:
		d.line(indent, "Missing")
	case *js_ast.BArray:
		d.line(indent, "ArrayPattern (%d)", len(n.Items))
		for _, item := range n.Items {
			d.binding(item.Binding, indent+1)
		}
	case *js_ast.BObject:
		d.line(indent, "ObjectPattern (%d)", len(n.Properties))
		for _, prop := range n.Properties {
			d.binding(prop.Value, indent+1)
		}
	default:
		d.line(indent, "<unknown binding %T>", n)
	}
}

func (d *dumper) expr(e js_ast.Expr, indent int) {
	switch n := e.Data.(type) {
	case *js_ast.EMissing:
		d.line(indent, "Missing")
	case *js_ast.EThis:
		d.line(indent, "This")
	case *js_ast.ESuper:
		d.line(indent, "Super")
	case *js_ast.ENull:
		d.line(indent, "Null")
	case *js_ast.EUndefined:
		d.line(indent, "Undefined")
	case *js_ast.EBoolean:
		d.line(indent, "Boolean %v", n.Value)
	case *js_ast.ENumber:
		d.line(indent, "Number %v", n.Value)
	case *js_ast.EString:
		d.line(indent, "String")
	case *js_ast.ERegExp:
		d.line(indent, "RegExp /%s/%s", n.Body, n.Flags)
	case *js_ast.ETemplate:
		d.line(indent, "Template (%d part(s))", len(n.Parts))
	case *js_ast.EIdentifier:
		d.line(indent, "Identifier %s", d.name(n.Ref))
	case *js_ast.EArray:
		d.line(indent, "Array (%d)", len(n.Items))
		for _, item := range n.Items {
			d.expr(item, indent+1)
		}
	case *js_ast.EObject:
		d.line(indent, "Object (%d)", len(n.Properties))
		for _, prop := range n.Properties {
			d.property(prop, indent+1)
		}
	case *js_ast.ESpread:
		d.line(indent, "Spread")
		d.expr(n.Value, indent+1)
	case *js_ast.EUnary:
		d.line(indent, "Unary (op=%d)", n.Op)
		d.expr(n.Value, indent+1)
	case *js_ast.EBinary:
		d.line(indent, "Binary (op=%d)", n.Op)
		d.expr(n.Left, indent+1)
		d.expr(n.Right, indent+1)
	case *js_ast.EConditional:
		d.line(indent, "Conditional")
		d.expr(n.Test, indent+1)
		d.expr(n.Yes, indent+1)
		d.expr(n.No, indent+1)
	case *js_ast.ECall:
		d.line(indent, "Call (%d arg(s), optional=%v)", len(n.Args), n.IsOptionalChain)
		d.expr(n.Target, indent+1)
		for _, arg := range n.Args {
			d.expr(arg, indent+1)
		}
	case *js_ast.ENew:
		d.line(indent, "New (%d arg(s))", len(n.Args))
		d.expr(n.Target, indent+1)
		for _, arg := range n.Args {
			d.expr(arg, indent+1)
		}
	case *js_ast.EDot:
		d.line(indent, "Dot .%s (optional=%v)", n.Name, n.IsOptionalChain)
		d.expr(n.Target, indent+1)
	case *js_ast.EIndex:
		d.line(indent, "Index (optional=%v)", n.IsOptionalChain)
		d.expr(n.Target, indent+1)
		d.expr(n.Index, indent+1)
	case *js_ast.EFunction:
		d.line(indent, "FunctionExpr %s", d.fnName(n.Fn))
		d.fn(n.Fn, indent+1)
	case *js_ast.EArrow:
		d.line(indent, "Arrow (async=%v, exprBody=%v)", n.IsAsync, n.PreferExpr)
		for _, arg := range n.Args {
			d.binding(arg.Binding, indent+1)
		}
		for _, sub := range n.Body.Block.Stmts {
			d.stmt(sub, indent+1)
		}
	case *js_ast.EClass:
		d.line(indent, "ClassExpr %s", d.className(*n))
		for _, prop := range n.Properties {
			d.property(prop, indent+1)
		}
	case *js_ast.EYield:
		d.line(indent, "Yield (star=%v)", n.IsStar)
		if n.ValueOrNil.Data != nil {
			d.expr(n.ValueOrNil, indent+1)
		}
	case *js_ast.EAwait:
		d.line(indent, "Await")
		d.expr(n.Value, indent+1)
	default:
		d.line(indent, "<unknown expression %T>", n)
	}
}
