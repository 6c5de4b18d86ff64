package nativefn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/loxwalk/internal/environment"
	"github.com/cwbudde/loxwalk/internal/nativefn"
	"github.com/cwbudde/loxwalk/internal/value"
)

func TestDefineGlobalsRegistersClockAndLox(t *testing.T) {
	tree := environment.New()
	nativefn.DefineGlobals(tree)

	clock, ok := tree.Get("clock", nil)
	require.True(t, ok)
	fn, ok := clock.(*value.NativeFunction)
	require.True(t, ok)
	assert.Equal(t, 0, fn.Arity)

	result, err := fn.Fn(nil)
	require.NoError(t, err)
	assert.IsType(t, value.Number(0), result)

	loxFn, ok := tree.Get("lox", nil)
	require.True(t, ok)
	banner, err := loxFn.(*value.NativeFunction).Fn(nil)
	require.NoError(t, err)
	assert.IsType(t, value.Str(""), banner)
	assert.NotEmpty(t, string(banner.(value.Str)))
}

func TestNamesIsSortedAndComplete(t *testing.T) {
	names := nativefn.Names()
	assert.Equal(t, []string{"clock", "lox"}, names)
}
