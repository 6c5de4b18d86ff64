package interpreter

import (
	"fmt"

	"github.com/cwbudde/loxwalk/internal/ast"
	"github.com/cwbudde/loxwalk/internal/value"
)

func (in *Interpreter) execStmt(s ast.Stmt) (control, error) {
	switch n := s.(type) {
	case *ast.ExprStmt:
		_, err := in.evalExpr(n.Expression)
		return noSignal, err
	case *ast.PrintStmt:
		return in.execPrint(n)
	case *ast.VarStmt:
		return in.execVar(n)
	case *ast.BlockStmt:
		in.env.Push()
		defer in.env.Pop()
		return in.execStmts(n.Statements)
	case *ast.IfStmt:
		return in.execIf(n)
	case *ast.WhileStmt:
		return in.execWhile(n)
	case *ast.FunctionStmt:
		in.execFunctionDecl(n)
		return noSignal, nil
	case *ast.ReturnStmt:
		return in.execReturn(n)
	case *ast.ClassStmt:
		return noSignal, in.execClass(n)
	default:
		panic("interpreter: unhandled statement type")
	}
}

// execStmts runs a statement list in the current frame, stopping early on
// the first return signal or error (spec.md §4.4, §4.5: "execute body
// sequentially ... on a return signal ... stop execution").
func (in *Interpreter) execStmts(stmts []ast.Stmt) (control, error) {
	for _, s := range stmts {
		ctrl, err := in.execStmt(s)
		if err != nil {
			return noSignal, err
		}
		if ctrl.kind != ctrlNone {
			return ctrl, nil
		}
	}
	return noSignal, nil
}

func (in *Interpreter) execPrint(n *ast.PrintStmt) (control, error) {
	v, err := in.evalExpr(n.Expression)
	if err != nil {
		return noSignal, err
	}
	fmt.Fprintln(in.out, v.String())
	return noSignal, nil
}

func (in *Interpreter) execVar(n *ast.VarStmt) (control, error) {
	v := value.Nil
	if n.Initializer != nil {
		var err error
		v, err = in.evalExpr(n.Initializer)
		if err != nil {
			return noSignal, err
		}
	}
	in.env.Define(n.Name.Lexeme, v)
	return noSignal, nil
}

func (in *Interpreter) execIf(n *ast.IfStmt) (control, error) {
	cond, err := in.evalExpr(n.Condition)
	if err != nil {
		return noSignal, err
	}
	if value.IsTruthy(cond) {
		return in.execStmt(n.ThenBranch)
	}
	if n.ElseBranch != nil {
		return in.execStmt(n.ElseBranch)
	}
	return noSignal, nil
}

func (in *Interpreter) execWhile(n *ast.WhileStmt) (control, error) {
	for {
		cond, err := in.evalExpr(n.Condition)
		if err != nil {
			return noSignal, err
		}
		if !value.IsTruthy(cond) {
			return noSignal, nil
		}
		ctrl, err := in.execStmt(n.Body)
		if err != nil {
			return noSignal, err
		}
		if ctrl.kind != ctrlNone {
			return ctrl, nil
		}
	}
}

// execFunctionDecl implements spec.md §4.4's FunctionStmt case: freeze the
// current scope chain as the new function's closure, then bind the
// function under its own name so later statements (and itself, for
// recursion) can call it.
func (in *Interpreter) execFunctionDecl(n *ast.FunctionStmt) {
	closureID := in.env.RetainCurrent()
	fn := &value.Function{Declaration: n, ClosureID: closureID, IsInitializer: false}
	in.env.Define(n.Name.Lexeme, fn)
}

func (in *Interpreter) execReturn(n *ast.ReturnStmt) (control, error) {
	v := value.Nil
	if n.Value != nil {
		var err error
		v, err = in.evalExpr(n.Value)
		if err != nil {
			return noSignal, err
		}
	}
	return control{kind: ctrlReturn, value: v}, nil
}

// execClass implements spec.md §4.4's ClassStmt case.
func (in *Interpreter) execClass(n *ast.ClassStmt) error {
	var superclass *value.Class
	if n.Superclass != nil {
		scVal, err := in.evalExpr(n.Superclass)
		if err != nil {
			return err
		}
		sc, ok := scVal.(*value.Class)
		if !ok {
			return in.runtimeErr(n.Superclass.Name.Line, "Superclass must be a class.")
		}
		superclass = sc
	}

	// Reserve the slot before methods are built, so a method body that
	// references its own class by name resolves correctly.
	in.env.Define(n.Name.Lexeme, value.Nil)

	pushedSuper := false
	if superclass != nil {
		in.env.Push()
		in.env.Define("super", superclass)
		pushedSuper = true
	}

	closureID := in.env.RetainCurrent()

	methods := make(map[string]*value.Function, len(n.Methods))
	for _, m := range n.Methods {
		methods[m.Name.Lexeme] = &value.Function{
			Declaration:   m,
			ClosureID:     closureID,
			IsInitializer: m.Name.Lexeme == "init",
		}
	}

	if pushedSuper {
		in.env.Pop()
	}

	class := &value.Class{Name: n.Name.Lexeme, Superclass: superclass, Methods: methods}
	if !in.env.Assign(n.Name.Lexeme, class, distance(0)) {
		return in.runtimeErr(n.Name.Line, "internal error: class slot not defined")
	}
	return nil
}
