package resolver

import "github.com/cwbudde/loxwalk/internal/ast"

func (r *Resolver) resolveExpr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.Literal:
		// nothing to resolve
	case *ast.Grouping:
		r.resolveExpr(n.Expression)
	case *ast.Unary:
		r.resolveExpr(n.Right)
	case *ast.Binary:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)
	case *ast.Logical:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)
	case *ast.Var:
		r.resolveVar(n)
	case *ast.Assign:
		r.resolveExpr(n.Value)
		r.resolveLocal(n.Name, func(d *int) { n.ScopeOffset = d })
	case *ast.Call:
		r.resolveExpr(n.Callee)
		for _, a := range n.Arguments {
			r.resolveExpr(a)
		}
	case *ast.Get:
		r.resolveExpr(n.Object)
	case *ast.Set:
		r.resolveExpr(n.Value)
		r.resolveExpr(n.Object)
	case *ast.This:
		r.resolveThis(n)
	case *ast.Super:
		r.resolveSuper(n)
	default:
		panic("resolver: unhandled expression type")
	}
}

// resolveVar implements spec.md §4.2's self-initializer check: `var x = x;`
// inside a scope reads the not-yet-defined local, which is a resolution
// error rather than silently falling through to an outer `x`.
func (r *Resolver) resolveVar(n *ast.Var) {
	if r.scopeDepth() > 0 {
		if defined, ok := r.scopes[r.scopeDepth()-1][n.Name.Lexeme]; ok && !defined {
			r.errorAt(n.Name, "Can't read local variable in its own initializer.")
		}
	}
	r.resolveLocal(n.Name, func(d *int) { n.ScopeOffset = d })
}

func (r *Resolver) resolveThis(n *ast.This) {
	if r.currentClass == classNone {
		r.errorAt(n.Keyword, "Can't use 'this' outside of a class.")
		return
	}
	r.resolveLocal(n.Keyword, func(d *int) { n.ScopeOffset = d })
}

func (r *Resolver) resolveSuper(n *ast.Super) {
	switch r.currentClass {
	case classNone:
		r.errorAt(n.Keyword, "Can't use 'super' outside of a class.")
		return
	case classClass:
		r.errorAt(n.Keyword, "Can't use 'super' in a class with no superclass.")
		return
	}
	r.resolveLocal(n.Keyword, func(d *int) { n.ScopeOffset = d })
}
