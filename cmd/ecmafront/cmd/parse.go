package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/1ntEgr8/ecmafront/internal/js_ast"
	"github.com/1ntEgr8/ecmafront/internal/js_parser"
	"github.com/1ntEgr8/ecmafront/internal/logger"
	"github.com/spf13/cobra"
)

var (
	parseAsModule bool
	parseDumpAST  bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse ECMAScript source and report diagnostics or dump the AST",
	Long: `Parse ECMAScript source and either confirm it parsed cleanly or dump its AST.

If no file is provided, reads from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseAsModule, "module", false, "parse as a Module instead of a Script")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the parsed statement tree")
}

func runParse(cmd *cobra.Command, args []string) error {
	prettyPath := "<stdin>"
	var contents string

	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		contents = string(data)
		prettyPath = args[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		contents = string(data)
	}

	log := logger.NewStderrLog(logger.OutputOptions{IncludeSource: true})
	source := logger.Source{Contents: contents, PrettyPath: prettyPath}

	var (
		prog     js_parser.Program
		interner *js_ast.Interner
		parseErr *js_parser.ParseError
	)
	if parseAsModule {
		prog, interner, parseErr = js_parser.ParseModule(log, source, js_parser.ParseOptions{})
	} else {
		prog, interner, parseErr = js_parser.ParseScript(log, source, js_parser.ParseOptions{})
	}

	if parseErr != nil {
		return fmt.Errorf("%s: %s", prettyPath, parseErr)
	}

	if parseDumpAST {
		dumpProgram(os.Stdout, prog, interner)
		return nil
	}

	fmt.Printf("%s: ok, %d top-level statement(s)\n", prettyPath, len(prog.Stmts))
	return nil
}
