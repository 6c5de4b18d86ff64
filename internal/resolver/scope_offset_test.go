package resolver_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/loxwalk/internal/ast"
	"github.com/cwbudde/loxwalk/internal/lexer"
	"github.com/cwbudde/loxwalk/internal/parser"
	"github.com/cwbudde/loxwalk/internal/resolver"
)

// offset renders a ScopeOffset the way spec.md §9's GLOSSARY does: the hop
// count for 0 or 1, "deep" for anything larger, or "global" for a nil
// offset (fall through to the global root).
func offset(p *int) string {
	if p == nil {
		return "global"
	}
	switch *p {
	case 0:
		return "0"
	case 1:
		return "1"
	default:
		return "deep"
	}
}

// TestScopeOffsetsMatchExpectedShape resolves a small nested-scope program
// and diffs the resulting Var.ScopeOffset annotations against the expected
// shape with go-cmp, grounded on cue-lang-cue's use of go-cmp for
// structural AST/value comparison.
func TestScopeOffsetsMatchExpectedShape(t *testing.T) {
	src := `
var a = "global";
{
  var a = "block";
  print a;
}
print a;
`
	toks, lexErrs := lexer.New(src).ScanTokens()
	require.Empty(t, lexErrs)
	p := parser.New(toks)
	stmts := p.Parse()
	require.Empty(t, p.Errors())
	require.Empty(t, resolver.New().Resolve(stmts))

	require.Len(t, stmts, 3)
	block, ok := stmts[1].(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, block.Statements, 2)

	innerPrint, ok := block.Statements[1].(*ast.PrintStmt)
	require.True(t, ok)
	innerVar, ok := innerPrint.Expression.(*ast.Var)
	require.True(t, ok)

	outerPrint, ok := stmts[2].(*ast.PrintStmt)
	require.True(t, ok)
	outerVar, ok := outerPrint.Expression.(*ast.Var)
	require.True(t, ok)

	got := []string{offset(innerVar.ScopeOffset), offset(outerVar.ScopeOffset)}
	want := []string{"0", "global"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("scope offsets mismatch (-want +got):\n%s", diff)
	}
}
