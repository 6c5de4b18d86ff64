package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/loxwalk/internal/lexer"
	"github.com/cwbudde/loxwalk/internal/parser"
	"github.com/cwbudde/loxwalk/internal/resolver"
)

func resolveSource(t *testing.T, src string) []*resolver.Error {
	t.Helper()
	toks, lexErrs := lexer.New(src).ScanTokens()
	require.Empty(t, lexErrs)
	p := parser.New(toks)
	stmts := p.Parse()
	require.Empty(t, p.Errors())
	return resolver.New().Resolve(stmts)
}

func TestResolveLocalInOwnInitializerIsAnError(t *testing.T) {
	errs := resolveSource(t, `{ var a = "outer"; { var a = a; } }`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "own initializer")
}

func TestDuplicateLocalDeclarationIsAnError(t *testing.T) {
	errs := resolveSource(t, `{ var a = 1; var a = 2; }`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "Already a variable")
}

func TestGlobalRedeclarationIsAllowed(t *testing.T) {
	errs := resolveSource(t, `var a = 1; var a = 2;`)
	assert.Empty(t, errs)
}

func TestReturnOutsideFunctionIsAnError(t *testing.T) {
	errs := resolveSource(t, `return 1;`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "top-level code")
}

func TestReturnValueInInitializerIsAnError(t *testing.T) {
	errs := resolveSource(t, `class C { init() { return 1; } }`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "initializer")
}

func TestBareReturnInInitializerIsAllowed(t *testing.T) {
	errs := resolveSource(t, `class C { init() { return; } }`)
	assert.Empty(t, errs)
}

func TestThisOutsideClassIsAnError(t *testing.T) {
	errs := resolveSource(t, `print this;`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "'this' outside")
}

func TestSuperWithoutSuperclassIsAnError(t *testing.T) {
	errs := resolveSource(t, `class A { speak() { super.speak(); } }`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "no superclass")
}

func TestSelfInheritanceIsAnError(t *testing.T) {
	errs := resolveSource(t, `class A < A {}`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "can't inherit from itself")
}

func TestValidSubclassResolvesCleanly(t *testing.T) {
	errs := resolveSource(t, `
		class A { speak() { print "A"; } }
		class B < A { speak() { super.speak(); print "B"; } }
		B().speak();
	`)
	assert.Empty(t, errs)
}
