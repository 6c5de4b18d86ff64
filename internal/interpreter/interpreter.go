// Package interpreter implements the AST-walking evaluator (spec.md
// §4.3-§4.6): expression and statement execution, the user-function call
// protocol, and the class/instance/method-binding protocol.
//
// Grounded on the teacher's internal/interp package for its visitor-style
// type-switch dispatch shape (interpreter.go, evaluator.go) and
// internal/interp/runtime/callstack.go for call-stack overflow detection,
// both retargeted from DWScript's statically-typed evaluation to this
// language's dynamically-typed one.
package interpreter

import (
	"fmt"
	"io"

	"github.com/cwbudde/loxwalk/internal/ast"
	"github.com/cwbudde/loxwalk/internal/config"
	"github.com/cwbudde/loxwalk/internal/diagnostics"
	"github.com/cwbudde/loxwalk/internal/environment"
	"github.com/cwbudde/loxwalk/internal/nativefn"
	"github.com/cwbudde/loxwalk/internal/value"
)

// DefaultMaxCallDepth bounds user-function recursion (SPEC_FULL.md §2,
// internal/config's "max call-stack depth" setting); callers may override
// it via WithMaxCallDepth.
const DefaultMaxCallDepth = 1024

// Interpreter owns the environment tree and executes a resolved AST against
// it. Create one with New per program run; it is not safe for concurrent
// use (spec.md §5: single-threaded, synchronous).
type Interpreter struct {
	env       *environment.Tree
	out       io.Writer
	errOut    io.Writer
	calls     *CallStack
	statCount int64 // for internal/metrics (SPEC_FULL.md §3)
	callCount int64
	allowFn   func(name string) bool
}

// Option configures an Interpreter at construction time.
type Option func(*Interpreter)

// WithOutput sets the sink PrintStmt writes to. Defaults to io.Discard.
func WithOutput(w io.Writer) Option {
	return func(in *Interpreter) { in.out = w }
}

// WithErrorOutput sets the sink error reporting writes to. Defaults to
// io.Discard; the CLI normally points this at stderr.
func WithErrorOutput(w io.Writer) Option {
	return func(in *Interpreter) { in.errOut = w }
}

// WithMaxCallDepth overrides DefaultMaxCallDepth.
func WithMaxCallDepth(depth int) Option {
	return func(in *Interpreter) { in.calls = NewCallStack(depth) }
}

// WithConfig applies an internal/config.Config: its MaxCallDepth and
// NativeFnAllowlist both take effect.
func WithConfig(cfg *config.Config) Option {
	return func(in *Interpreter) {
		if cfg.MaxCallDepth > 0 {
			in.calls = NewCallStack(cfg.MaxCallDepth)
		}
		in.allowFn = cfg.Allows
	}
}

// New creates an Interpreter with a fresh environment tree and the standard
// native-function globals installed (spec.md §6).
func New(opts ...Option) *Interpreter {
	in := &Interpreter{
		env:     environment.New(),
		out:     io.Discard,
		errOut:  io.Discard,
		calls:   NewCallStack(DefaultMaxCallDepth),
		allowFn: func(string) bool { return true },
	}
	for _, opt := range opts {
		opt(in)
	}
	nativefn.DefineGlobalsFiltered(in.env, in.allowFn)
	return in
}

// EvalExpression evaluates a single expression without executing it as a
// statement. The REPL uses this to auto-print a bare expression's value
// (SPEC_FULL.md §4's "REPL multi-statement single-line evaluation") without
// requiring an explicit `print`.
func (in *Interpreter) EvalExpression(e ast.Expr) (value.Value, error) {
	return in.evalExpr(e)
}

// StatementCount and CallCount expose simple counters for
// internal/metrics; they are not part of the language semantics.
func (in *Interpreter) StatementCount() int64 { return in.statCount }
func (in *Interpreter) CallCount() int64      { return in.callCount }

// Run executes stmts in order and stops at the first one that raises a
// runtime error, returning it (spec.md §7: a runtime error "ends the
// program" — statements after the one that failed never run). The file
// runner calls this once with an entire program's statements, so a
// mid-file error ends the run; the REPL calls this once per input line
// that is not a single bare expression (those go through EvalExpression),
// so an error aborts only that line — its outer read loop moves on to the
// next line regardless of the result.
func (in *Interpreter) Run(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := in.RunStatement(s); err != nil {
			return err
		}
	}
	return nil
}

// RunStatement executes a single top-level statement, reporting any
// resulting runtime error to the configured error sink and returning it.
// A `return` signal reaching top level is a programming error in the
// resolver (spec.md §7: "leaking past the top level is a resolution-time
// error") and is reported as an internal error rather than silently
// dropped.
func (in *Interpreter) RunStatement(s ast.Stmt) error {
	in.statCount++
	ctrl, err := in.execStmt(s)
	if err != nil {
		if d, ok := err.(*diagnostics.Diagnostic); ok {
			fmt.Fprintln(in.errOut, d.Error())
		} else {
			fmt.Fprintln(in.errOut, err.Error())
		}
		return err
	}
	if ctrl.kind == ctrlReturn {
		err := in.runtimeErr(0, "return statement reached top level unresolved")
		fmt.Fprintln(in.errOut, err.Error())
		return err
	}
	return nil
}

// ctrlKind distinguishes "ran to completion" from "hit a return" without
// using an error or a panic for ordinary control flow (spec.md §9: "Return
// as control flow ... an explicit result sum").
type ctrlKind int

const (
	ctrlNone ctrlKind = iota
	ctrlReturn
)

// control is the non-error half of every statement execution's result: it
// is always ctrlNone except while a `return` signal is unwinding to its
// enclosing call frame.
type control struct {
	kind  ctrlKind
	value value.Value
}

var noSignal = control{kind: ctrlNone}

func (in *Interpreter) runtimeErr(line int, format string, args ...any) *diagnostics.Diagnostic {
	return &diagnostics.Diagnostic{
		Phase:   diagnostics.PhaseRuntime,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	}
}

func distance(n int) *int { return &n }
