package interpreter_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/loxwalk/internal/interpreter"
	"github.com/cwbudde/loxwalk/internal/lexer"
	"github.com/cwbudde/loxwalk/internal/parser"
	"github.com/cwbudde/loxwalk/internal/resolver"
)

// run executes src end to end through the full pipeline and returns
// (stdout, stderr). It fails the test immediately on scan/parse/resolve
// errors, since those are never the thing under test here.
func run(t *testing.T, src string) (string, string) {
	t.Helper()
	toks, lexErrs := lexer.New(src).ScanTokens()
	require.Empty(t, lexErrs)

	p := parser.New(toks)
	stmts := p.Parse()
	require.Empty(t, p.Errors())

	resErrs := resolver.New().Resolve(stmts)
	require.Empty(t, resErrs)

	var stdout, stderr bytes.Buffer
	in := interpreter.New(interpreter.WithOutput(&stdout), interpreter.WithErrorOutput(&stderr))
	_ = in.Run(stmts)
	return stdout.String(), stderr.String()
}

func TestClosureKeepsBindingResolvedAtDeclaration(t *testing.T) {
	out, _ := run(t, `
		var a = "global";
		{
			fun showA() { print a; }
			showA();
			var a = "block";
			showA();
		}
	`)
	assert.Equal(t, "global\nglobal\n", out)
}

func TestInheritanceWithSuper(t *testing.T) {
	out, _ := run(t, `
		class A { speak() { print "A"; } }
		class B < A { speak() { super.speak(); print "B"; } }
		B().speak();
	`)
	assert.Equal(t, "A\nB\n", out)
}

func TestInitializerReturnsInstance(t *testing.T) {
	out, _ := run(t, `
		class C { init() { return; } }
		print C();
	`)
	assert.Equal(t, "C instance\n", out)
}

func TestArithmeticTypeError(t *testing.T) {
	out, errOut := run(t, `print 1 + "a";`)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "[line 1]")
	assert.Contains(t, errOut, "numbers or two strings")
}

func TestFibonacciRecursion(t *testing.T) {
	out, _ := run(t, `
		fun fib(n) { if (n < 2) return n; return fib(n - 1) + fib(n - 2); }
		print fib(10);
	`)
	assert.Equal(t, "55\n", out)
}

func TestDivisionIsLhsOverRhs(t *testing.T) {
	out, _ := run(t, `print 6 / 2;`)
	assert.Equal(t, "3\n", out)
}

func TestDivisionBoundaryBehaviors(t *testing.T) {
	out, _ := run(t, `
		print 1 / 0;
		print -1 / 0;
		print 0 / 0;
	`)
	assert.Equal(t, "inf\n-inf\nnan\n", out)
}

func TestEmptyStringAndZeroAreTruthy(t *testing.T) {
	out, _ := run(t, `
		if ("") print "empty string truthy"; else print "falsey";
		if (0) print "zero truthy"; else print "falsey";
	`)
	assert.Equal(t, "empty string truthy\nzero truthy\n", out)
}

func TestArityMismatchIsARuntimeError(t *testing.T) {
	_, errOut := run(t, `
		fun f(a) { print a; }
		f(1, 2);
	`)
	assert.Contains(t, errOut, "Expected 1 arguments but got 2.")
}

func TestUndefinedPropertyIsARuntimeError(t *testing.T) {
	_, errOut := run(t, `
		class C {}
		print C().missing;
	`)
	assert.Contains(t, errOut, "Undefined property 'missing'.")
}

func TestBoundMethodIdentityIsStable(t *testing.T) {
	out, _ := run(t, `
		class C { method() { return 1; } }
		var c = C();
		var m1 = c.method;
		var m2 = c.method;
		print m1 == m2;
	`)
	assert.Equal(t, "true\n", out)
}

func TestFieldAssignmentPersists(t *testing.T) {
	out, _ := run(t, `
		class Point { }
		var p = Point();
		p.x = 3;
		p.y = 4;
		print p.x + p.y;
	`)
	assert.Equal(t, "7\n", out)
}

// TestRunStopsAtFirstRuntimeError verifies spec.md §7's file-mode abort
// semantics: a runtime error ends the program, so no statement after the
// one that failed ever runs.
func TestRunStopsAtFirstRuntimeError(t *testing.T) {
	out, errOut := run(t, `
		print 1;
		print 1 / "x";
		print 2;
	`)
	assert.Equal(t, "1\n", out)
	assert.NotContains(t, out, "2")
	assert.Contains(t, errOut, "numbers")
}

func TestRunReturnsTheFirstError(t *testing.T) {
	toks, lexErrs := lexer.New(`print nil + 1; print 1 + "a";`).ScanTokens()
	require.Empty(t, lexErrs)
	p := parser.New(toks)
	stmts := p.Parse()
	require.Empty(t, p.Errors())
	require.Empty(t, resolver.New().Resolve(stmts))

	var stdout, stderr bytes.Buffer
	in := interpreter.New(interpreter.WithOutput(&stdout), interpreter.WithErrorOutput(&stderr))
	err := in.Run(stmts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Operand")
}
