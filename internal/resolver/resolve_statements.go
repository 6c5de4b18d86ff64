package resolver

import "github.com/cwbudde/loxwalk/internal/ast"

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.ExprStmt:
		r.resolveExpr(n.Expression)
	case *ast.PrintStmt:
		r.resolveExpr(n.Expression)
	case *ast.VarStmt:
		r.declare(n.Name)
		if n.Initializer != nil {
			r.resolveExpr(n.Initializer)
		}
		r.define(n.Name)
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(n.Statements)
		r.endScope()
	case *ast.IfStmt:
		r.resolveExpr(n.Condition)
		r.resolveStmt(n.ThenBranch)
		if n.ElseBranch != nil {
			r.resolveStmt(n.ElseBranch)
		}
	case *ast.WhileStmt:
		r.resolveExpr(n.Condition)
		r.resolveStmt(n.Body)
	case *ast.FunctionStmt:
		// Declared in the enclosing scope before its body is resolved, so a
		// function can call itself recursively.
		r.declare(n.Name)
		r.define(n.Name)
		r.resolveFunction(n, funcFunction)
	case *ast.ReturnStmt:
		r.resolveReturn(n)
	case *ast.ClassStmt:
		r.resolveClass(n)
	default:
		panic("resolver: unhandled statement type")
	}
}

func (r *Resolver) resolveReturn(n *ast.ReturnStmt) {
	if r.currentFunction == funcNone {
		r.errorAt(n.Keyword, "Can't return from top-level code.")
	}
	if n.Value != nil {
		if r.currentFunction == funcInitializer {
			r.errorAt(n.Keyword, "Can't return a value from an initializer.")
		}
		r.resolveExpr(n.Value)
	}
}

// resolveFunction resolves a function or method body in its own scope,
// binding parameters before the body so recursive and self-referential
// calls see them (spec.md §4.2).
func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, kind functionKind) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, p := range fn.Params {
		r.declare(p)
		r.define(p)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}
