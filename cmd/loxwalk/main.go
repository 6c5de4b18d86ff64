// Command loxwalk is the CLI entry point: a REPL and file runner for the
// interpreter, plus `parse`/`resolve`/`version` debugging subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/loxwalk/cmd/loxwalk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
