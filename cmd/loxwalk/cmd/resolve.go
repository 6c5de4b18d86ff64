package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/loxwalk/internal/lexer"
	"github.com/cwbudde/loxwalk/internal/parser"
	"github.com/cwbudde/loxwalk/internal/printer"
	"github.com/cwbudde/loxwalk/internal/resolver"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <file>",
	Short: "Scan, parse, and resolve a file, printing its AST annotated with scope distances",
	Args:  cobra.ExactArgs(1),
	RunE:  runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
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

	if errs := resolver.New().Resolve(stmts); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		os.Exit(exitPipelineError)
		return nil
	}

	fmt.Print(printer.PrintProgram(stmts))
	return nil
}
