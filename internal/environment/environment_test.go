package environment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/loxwalk/internal/environment"
	"github.com/cwbudde/loxwalk/internal/value"
)

func distance(n int) *int { return &n }

func TestDefineAndGetGlobal(t *testing.T) {
	tree := environment.New()
	tree.Define("x", value.Number(1))

	got, ok := tree.Get("x", nil)
	require.True(t, ok)
	assert.Equal(t, value.Number(1), got)
}

func TestBlockShadowsOuterBinding(t *testing.T) {
	tree := environment.New()
	tree.Define("x", value.Str("outer"))

	tree.Push()
	tree.Define("x", value.Str("inner"))

	got, ok := tree.Get("x", distance(0))
	require.True(t, ok)
	assert.Equal(t, value.Str("inner"), got)

	got, ok = tree.Get("x", distance(1))
	require.True(t, ok)
	assert.Equal(t, value.Str("outer"), got)

	tree.Pop()
	got, ok = tree.Get("x", distance(0))
	require.True(t, ok)
	assert.Equal(t, value.Str("outer"), got)
}

func TestAssignFailsWithoutPriorDefine(t *testing.T) {
	tree := environment.New()
	ok := tree.Assign("missing", value.Number(1), nil)
	assert.False(t, ok)
}

func TestRetainedFrameSurvivesPop(t *testing.T) {
	tree := environment.New()
	tree.Push()
	tree.Define("captured", value.Number(42))
	closureID := tree.RetainCurrent()
	tree.Pop()

	restore := tree.Checkout(closureID)
	got, ok := tree.Get("captured", distance(0))
	require.True(t, ok)
	assert.Equal(t, value.Number(42), got)
	restore()
}

func TestUnretainedFrameIsClearedOnPop(t *testing.T) {
	tree := environment.New()
	id := tree.Push()
	tree.Define("local", value.Number(7))
	tree.Pop()

	restore := tree.Checkout(id)
	defer restore()
	_, ok := tree.Get("local", distance(0))
	assert.False(t, ok, "an unretained frame's bindings should be dropped after Pop")
}

func TestCheckoutRestoresPreviousCurrent(t *testing.T) {
	tree := environment.New()
	other := tree.Push()
	tree.Pop()
	before := tree.Current()

	restore := tree.Checkout(other)
	assert.Equal(t, other, tree.Current())
	restore()
	assert.Equal(t, before, tree.Current())
}

func TestPopOnGlobalRootIsANoOp(t *testing.T) {
	tree := environment.New()
	tree.Define("x", value.Number(1))

	assert.NotPanics(t, func() { tree.Pop() })

	assert.Equal(t, tree.Global(), tree.Current())
	got, ok := tree.Get("x", nil)
	require.True(t, ok)
	assert.Equal(t, value.Number(1), got)
}

func TestGetWithOutOfRangeDistancePanics(t *testing.T) {
	tree := environment.New()
	tree.Push()

	assert.Panics(t, func() { tree.Get("x", distance(5)) })
}

func TestAssignWithOutOfRangeDistancePanics(t *testing.T) {
	tree := environment.New()

	assert.Panics(t, func() { tree.Assign("x", value.Number(1), distance(1)) })
}
