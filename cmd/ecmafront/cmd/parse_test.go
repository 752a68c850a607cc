package cmd

import (
	"bytes"
	"testing"

	"github.com/1ntEgr8/ecmafront/internal/js_parser"
	"github.com/1ntEgr8/ecmafront/internal/logger"
	"github.com/gkampitakis/go-snaps/snaps"
)

func dumpSource(t *testing.T, contents string) string {
	t.Helper()
	log := logger.NewDeferLog()
	source := logger.Source{Contents: contents, PrettyPath: "<test>"}
	prog, interner, err := js_parser.ParseScript(log, source, js_parser.ParseOptions{})
	if err != nil {
		t.Fatalf("ParseScript(%q) returned error: %s", contents, err)
	}
	var buf bytes.Buffer
	dumpProgram(&buf, prog, interner)
	return buf.String()
}

func dumpModuleSource(t *testing.T, contents string) string {
	t.Helper()
	log := logger.NewDeferLog()
	source := logger.Source{Contents: contents, PrettyPath: "<test>"}
	prog, interner, err := js_parser.ParseModule(log, source, js_parser.ParseOptions{})
	if err != nil {
		t.Fatalf("ParseModule(%q) returned error: %s", contents, err)
	}
	var buf bytes.Buffer
	dumpProgram(&buf, prog, interner)
	return buf.String()
}

func TestDumpVarStatement(t *testing.T) {
	snaps.MatchSnapshot(t, dumpSource(t, "var x = 1;"))
}

func TestDumpIfElse(t *testing.T) {
	snaps.MatchSnapshot(t, dumpSource(t, "if (a) { b(); } else { c(); }"))
}

func TestDumpFunctionDeclaration(t *testing.T) {
	snaps.MatchSnapshot(t, dumpSource(t, "function add(a, b) { return a + b; }"))
}

func TestDumpObjectLiteral(t *testing.T) {
	snaps.MatchSnapshot(t, dumpSource(t, "var o = { a: 1, get b() { return 2; } };"))
}

func TestDumpArrowFunction(t *testing.T) {
	snaps.MatchSnapshot(t, dumpSource(t, "var f = (a, b) => a + b;"))
}

func TestDumpModuleImportExport(t *testing.T) {
	snaps.MatchSnapshot(t, dumpModuleSource(t, `
import def, { a, b as c } from "./mod.js";
import * as ns from "./ns.js";
export { def, c as renamed };
export default function f() {}
export const x = 1;
`))
}
