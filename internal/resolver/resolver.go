// Package resolver implements the static scope-resolution pass (spec.md
// §4.2): a single pre-execution walk over the AST that annotates every
// Var/Assign/This/Super node with its lexical scope distance and validates
// this/super/return context rules.
//
// The pass is split one file per AST construct family — resolve_statements,
// resolve_expressions, resolve_classes — mirroring the teacher's semantic
// analyzer's analyze_statements.go/analyze_expressions.go/
// analyze_classes_inheritance.go split, even though this resolver performs
// scope resolution only, never type inference.
package resolver

import (
	"fmt"

	"github.com/cwbudde/loxwalk/internal/ast"
	"github.com/cwbudde/loxwalk/internal/token"
)

// functionKind tracks what kind of function body is currently being
// resolved, so `return` can be validated (spec.md §4.2).
type functionKind int

const (
	funcNone functionKind = iota
	funcFunction
	funcMethod
	funcInitializer
)

// classKind tracks whether `this`/`super` are in scope.
type classKind int

const (
	classNone classKind = iota
	classClass
	classSubclass
)

// Error is a single resolution failure (spec.md §7, taxonomy item 3).
type Error struct {
	Token   token.Token
	Message string
}

func (e *Error) Error() string {
	if e.Token.Type == token.EOF {
		return fmt.Sprintf("[line %d] Error at end: %s", e.Token.Line, e.Message)
	}
	return fmt.Sprintf("[line %d] Error at '%s': %s", e.Token.Line, e.Token.Lexeme, e.Message)
}

// scope maps a locally-declared name to whether its initializer has
// finished resolving yet (spec.md §4.2: "declare with defined = false").
type scope map[string]bool

// Resolver performs the resolution pass. Create one with New, call Resolve
// once, and discard it — it holds no state useful across calls.
type Resolver struct {
	scopes          []scope
	currentFunction functionKind
	currentClass    classKind
	errs            []*Error
}

// New creates a Resolver ready to resolve a top-level statement list.
func New() *Resolver {
	return &Resolver{}
}

// Resolve walks stmts, annotating ScopeOffset fields in place, and returns
// every resolution error found. A non-empty result means the program must
// not be evaluated (spec.md §7: "Resolution errors abort the whole program
// before execution begins").
func (r *Resolver) Resolve(stmts []ast.Stmt) []*Error {
	r.resolveStmts(stmts)
	return r.errs
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, scope{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) scopeDepth() int { return len(r.scopes) }

// declare introduces name in the innermost scope as not-yet-defined. At the
// top level (no open scope) this is a no-op: globals are resolved at run
// time, not annotated (spec.md §4.2: "Global ... redefinition is allowed").
func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	top := r.scopes[len(r.scopes)-1]
	if _, exists := top[name.Lexeme]; exists {
		r.errorAt(name, "Already a variable with this name in this scope.")
	}
	top[name.Lexeme] = false
}

// define marks name, already declared in the innermost scope, as fully
// initialized and safe to reference from nested expressions.
func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal walks the scope stack from innermost outward looking for
// name. When found at depth d, it calls set(d); otherwise it calls set(nil),
// meaning "fall through to the global root" (spec.md §4.2, §9 GLOSSARY).
func (r *Resolver) resolveLocal(name token.Token, set func(*int)) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			d := len(r.scopes) - 1 - i
			set(&d)
			return
		}
	}
	set(nil)
}

func (r *Resolver) errorAt(tok token.Token, message string) {
	r.errs = append(r.errs, &Error{Token: tok, Message: message})
}
