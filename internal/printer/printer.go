// Package printer renders an AST back to a readable, fully-parenthesized
// textual form. It is an out-of-core debugging collaborator (spec.md §1):
// the interpreter never calls it, only the CLI's `parse`/`resolve` commands
// do, grounded on the teacher's pkg/printer.
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/loxwalk/internal/ast"
)

// Print renders a single expression.
func Print(e ast.Expr) string {
	var sb strings.Builder
	printExpr(&sb, e)
	return sb.String()
}

// PrintStmt renders a single statement.
func PrintStmt(s ast.Stmt) string {
	var sb strings.Builder
	printStmt(&sb, s, 0)
	return sb.String()
}

// PrintProgram renders a full statement list, ending each top-level
// statement with a newline; block, function, class, if and while statements
// span several lines.
func PrintProgram(stmts []ast.Stmt) string {
	var sb strings.Builder
	for _, s := range stmts {
		printStmt(&sb, s, 0)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func printExpr(sb *strings.Builder, e ast.Expr) {
	switch n := e.(type) {
	case *ast.Literal:
		sb.WriteString(literalString(n.Value))
	case *ast.Grouping:
		parenthesize(sb, "group", n.Expression)
	case *ast.Unary:
		parenthesize(sb, n.Operator.Lexeme, n.Right)
	case *ast.Binary:
		parenthesize(sb, n.Operator.Lexeme, n.Left, n.Right)
	case *ast.Logical:
		parenthesize(sb, n.Operator.Lexeme, n.Left, n.Right)
	case *ast.Var:
		sb.WriteString(n.Name.Lexeme)
		writeOffset(sb, n.ScopeOffset)
	case *ast.Assign:
		sb.WriteString("(assign ")
		sb.WriteString(n.Name.Lexeme)
		writeOffset(sb, n.ScopeOffset)
		sb.WriteByte(' ')
		printExpr(sb, n.Value)
		sb.WriteByte(')')
	case *ast.Call:
		sb.WriteString("(call ")
		printExpr(sb, n.Callee)
		for _, a := range n.Arguments {
			sb.WriteByte(' ')
			printExpr(sb, a)
		}
		sb.WriteByte(')')
	case *ast.Get:
		sb.WriteString("(get ")
		printExpr(sb, n.Object)
		sb.WriteByte(' ')
		sb.WriteString(n.Name.Lexeme)
		sb.WriteByte(')')
	case *ast.Set:
		sb.WriteString("(set ")
		printExpr(sb, n.Object)
		sb.WriteByte(' ')
		sb.WriteString(n.Name.Lexeme)
		sb.WriteByte(' ')
		printExpr(sb, n.Value)
		sb.WriteByte(')')
	case *ast.This:
		sb.WriteString("this")
		writeOffset(sb, n.ScopeOffset)
	case *ast.Super:
		sb.WriteString("(super ")
		sb.WriteString(n.Method.Lexeme)
		sb.WriteByte(')')
		writeOffset(sb, n.ScopeOffset)
	default:
		fmt.Fprintf(sb, "<unknown expr %T>", e)
	}
}

func writeOffset(sb *strings.Builder, offset *int) {
	if offset == nil {
		sb.WriteString("@global")
		return
	}
	fmt.Fprintf(sb, "@%d", *offset)
}

func literalString(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case string:
		return strconv.Quote(val)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func parenthesize(sb *strings.Builder, name string, exprs ...ast.Expr) {
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, e := range exprs {
		sb.WriteByte(' ')
		printExpr(sb, e)
	}
	sb.WriteByte(')')
}

func printStmt(sb *strings.Builder, s ast.Stmt, indent int) {
	pad := strings.Repeat("  ", indent)
	switch n := s.(type) {
	case *ast.ExprStmt:
		sb.WriteString(pad)
		printExpr(sb, n.Expression)
		sb.WriteByte(';')
	case *ast.PrintStmt:
		sb.WriteString(pad + "(print ")
		printExpr(sb, n.Expression)
		sb.WriteByte(')')
	case *ast.VarStmt:
		sb.WriteString(pad + "(var " + n.Name.Lexeme)
		if n.Initializer != nil {
			sb.WriteByte(' ')
			printExpr(sb, n.Initializer)
		}
		sb.WriteByte(')')
	case *ast.BlockStmt:
		sb.WriteString(pad + "{\n")
		for _, st := range n.Statements {
			printStmt(sb, st, indent+1)
			sb.WriteByte('\n')
		}
		sb.WriteString(pad + "}")
	case *ast.IfStmt:
		sb.WriteString(pad + "(if ")
		printExpr(sb, n.Condition)
		sb.WriteByte('\n')
		printStmt(sb, n.ThenBranch, indent+1)
		if n.ElseBranch != nil {
			sb.WriteByte('\n')
			printStmt(sb, n.ElseBranch, indent+1)
		}
		sb.WriteByte(')')
	case *ast.WhileStmt:
		sb.WriteString(pad + "(while ")
		printExpr(sb, n.Condition)
		sb.WriteByte('\n')
		printStmt(sb, n.Body, indent+1)
		sb.WriteByte(')')
	case *ast.FunctionStmt:
		sb.WriteString(pad + "(fun " + n.Name.Lexeme + "(")
		for i, p := range n.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(p.Lexeme)
		}
		sb.WriteString(")\n")
		for _, st := range n.Body {
			printStmt(sb, st, indent+1)
			sb.WriteByte('\n')
		}
		sb.WriteString(pad + ")")
	case *ast.ReturnStmt:
		sb.WriteString(pad + "(return")
		if n.Value != nil {
			sb.WriteByte(' ')
			printExpr(sb, n.Value)
		}
		sb.WriteByte(')')
	case *ast.ClassStmt:
		sb.WriteString(pad + "(class " + n.Name.Lexeme)
		if n.Superclass != nil {
			sb.WriteString(" < " + n.Superclass.Name.Lexeme)
		}
		sb.WriteByte('\n')
		for _, m := range n.Methods {
			printStmt(sb, m, indent+1)
			sb.WriteByte('\n')
		}
		sb.WriteString(pad + ")")
	default:
		fmt.Fprintf(sb, "%s<unknown stmt %T>", pad, s)
	}
}
