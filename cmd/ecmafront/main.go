package main

import (
	"fmt"
	"os"

	"github.com/1ntEgr8/ecmafront/cmd/ecmafront/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
