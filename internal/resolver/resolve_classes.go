package resolver

import "github.com/cwbudde/loxwalk/internal/ast"

// resolveClass implements spec.md §4.2's class-resolution algorithm:
// declare the class name, reject self-inheritance, open a `super` scope
// when there is a superclass, open one `this` scope shared by all methods, and
// resolve each method with the right functionKind so `init` gets
// initializer-only return-value rules.
func (r *Resolver) resolveClass(n *ast.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(n.Name)
	r.define(n.Name)

	if n.Superclass != nil {
		if n.Superclass.Name.Lexeme == n.Name.Lexeme {
			r.errorAt(n.Superclass.Name, n.Name.Lexeme+" class can't inherit from itself.")
		}
		r.currentClass = classSubclass
		r.resolveExpr(n.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range n.Methods {
		kind := funcMethod
		if method.Name.Lexeme == "init" {
			kind = funcInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope() // this

	if n.Superclass != nil {
		r.endScope() // super
	}

	r.currentClass = enclosingClass
}
