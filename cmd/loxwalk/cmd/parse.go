package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/loxwalk/internal/lexer"
	"github.com/cwbudde/loxwalk/internal/parser"
	"github.com/cwbudde/loxwalk/internal/printer"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Scan and parse a file, printing its AST without resolving or running it",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		os.Exit(exitFileReadError)
		return nil
	}

	toks, lexErrs := lexer.New(string(content)).ScanTokens()
	if len(lexErrs) > 0 {
		for _, e := range lexErrs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		os.Exit(exitPipelineError)
		return nil
	}

	p := parser.New(toks)
	stmts := p.Parse()
	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		os.Exit(exitPipelineError)
		return nil
	}

	fmt.Print(printer.PrintProgram(stmts))
	return nil
}
