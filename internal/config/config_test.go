package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/loxwalk/internal/config"
)

func TestDefaultAllowsEverything(t *testing.T) {
	cfg := config.Default()
	assert.True(t, cfg.Allows("clock"))
	assert.True(t, cfg.Allows("anything"))
}

func TestAllowlistRestrictsToListedNames(t *testing.T) {
	cfg := config.Default()
	cfg.NativeFnAllowlist = []string{"clock"}
	assert.True(t, cfg.Allows("clock"))
	assert.False(t, cfg.Allows("lox"))
}

func TestLoadWithNoFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.MaxCallDepth)
	assert.False(t, cfg.Watch)
}
