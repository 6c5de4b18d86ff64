package cmd

import (
	"fmt"
	"io"

	"github.com/cwbudde/loxwalk/internal/ast"
	"github.com/cwbudde/loxwalk/internal/lexer"
	"github.com/cwbudde/loxwalk/internal/parser"
	"github.com/cwbudde/loxwalk/internal/resolver"
)

// frontend runs the scan → parse → resolve pipeline spec.md §1 treats as
// external collaborators to the core. It writes every diagnostic it finds
// to errOut and reports whether the result is safe to evaluate
// (spec.md §6: "the core refuses to execute if any parse error occurred",
// extended here to scan/resolve errors too).
func frontend(src string, errOut io.Writer) ([]ast.Stmt, bool) {
	toks, lexErrs := lexer.New(src).ScanTokens()
	if len(lexErrs) > 0 {
		for _, e := range lexErrs {
			fmt.Fprintln(errOut, e.Error())
		}
		return nil, false
	}

	p := parser.New(toks)
	stmts := p.Parse()
	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(errOut, e.Error())
		}
		return nil, false
	}

	if errs := resolver.New().Resolve(stmts); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(errOut, e.Error())
		}
		return nil, false
	}

	return stmts, true
}
