// Package cmd wires ecmafront's subcommands, the way go-dws's cmd/dwscript/cmd
// package wires "lex"/"parse"/"run" under one cobra root.
package cmd

import (
	"github.com/spf13/cobra"
)

var Version = "0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:   "ecmafront",
	Short: "A standalone ECMAScript front end",
	Long: `ecmafront lexes and parses ECMAScript source into a structured AST,
reporting diagnostics without evaluating anything.`,
	Version: Version,
}

func Execute() error {
	return rootCmd.Execute()
}
