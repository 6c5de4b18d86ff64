package value

import "github.com/cwbudde/loxwalk/internal/ast"

// Function is a user-defined function or method value (spec.md §4.5). It
// wraps the FunctionStmt the parser built plus the closure it captured.
//
// ClosureID names the retained environment node the function closes over:
// the node that was current at its declaration, or, for a bound method, the
// frame holding `this`. internal/interpreter checks it out with
// environment.Checkout when the function is called. Only the NodeID is stored here, not the
// Environment itself, so this package never imports internal/environment.
type Function struct {
	Declaration   *ast.FunctionStmt
	ClosureID     NodeID
	IsInitializer bool // true for a class's `init` method (spec.md §4.6)
}

func (*Function) Type() string { return "function" }

func (f *Function) String() string {
	return "<fn " + f.Declaration.Name.Lexeme + ">"
}

// Arity is the number of declared parameters.
func (f *Function) Arity() int { return len(f.Declaration.Params) }

// NativeFn is the Go function a NativeFunction wraps (SPEC_FULL.md §4,
// "native function error wrapping").
type NativeFn func(args []Value) (Value, error)

// NativeFunction is a built-in callable implemented in Go, such as clock()
// (spec.md §6).
type NativeFunction struct {
	Name  string
	Arity int
	Fn    NativeFn
}

func (*NativeFunction) Type() string { return "native function" }

func (n *NativeFunction) String() string {
	return "<native fn " + n.Name + ">"
}
