package interpreter_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/loxwalk/internal/interpreter"
	"github.com/cwbudde/loxwalk/internal/lexer"
	"github.com/cwbudde/loxwalk/internal/parser"
	"github.com/cwbudde/loxwalk/internal/resolver"
)

// TestEndToEndFixtures runs four end-to-end programs (closure, inheritance
// with super, initializer, recursion), modeled on spec.md §8's concrete
// scenarios, through the full scan/parse/resolve/evaluate pipeline and
// snapshot-tests stdout and stderr,
// grounded on the teacher's internal/interp/fixture_test.go use of go-snaps
// for whole-program output assertions.
func TestEndToEndFixtures(t *testing.T) {
	fixtures := []struct {
		name string
		src  string
	}{
		{
			name: "closure_over_function_local",
			src: `
var globalValue = "global";
fun makeCounter() {
  var local = globalValue;
  fun counter() {
    print local;
  }
  return counter;
}
var c = makeCounter();
c();
c();
`,
		},
		{
			name: "inheritance_with_super",
			src: `
class A {
  greet() {
    print "A";
  }
}
class B < A {
  greet() {
    super.greet();
    print "B";
  }
}
B().greet();
`,
		},
		{
			name: "initializer_returns_instance",
			src: `
class C {
  init() {
    this.value = 1;
  }
}
print C().init();
`,
		},
		{
			name: "fibonacci_recursion",
			src: `
fun fib(n) {
  if (n < 2) return n;
  return fib(n - 1) + fib(n - 2);
}
print fib(10);
`,
		},
	}

	for _, f := range fixtures {
		t.Run(f.name, func(t *testing.T) {
			toks, lexErrs := lexer.New(f.src).ScanTokens()
			require.Empty(t, lexErrs)

			p := parser.New(toks)
			stmts := p.Parse()
			require.Empty(t, p.Errors())

			require.Empty(t, resolver.New().Resolve(stmts))

			var stdout, stderr bytes.Buffer
			in := interpreter.New(
				interpreter.WithOutput(&stdout),
				interpreter.WithErrorOutput(&stderr),
			)
			_ = in.Run(stmts)

			snaps.MatchSnapshot(t, fmt.Sprintf("%s_stdout", f.name), stdout.String())
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_stderr", f.name), stderr.String())
		})
	}
}
