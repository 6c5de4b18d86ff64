// Package config loads loxwalk's CLI configuration: which native functions
// are enabled, a REPL history path setting, the maximum call-stack depth,
// and whether `--watch` is on by default.
//
// Grounded on the pairing of spf13/viper with spf13/cobra for
// config-file-plus-flags (kubernetes-kube-state-metrics's
// internal/wrapper.go), generalized from Kubernetes' YAML option file to a
// small interpreter config.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds every knob the CLI reads from flags, environment, and an
// optional config file (in that precedence order, per viper's defaults).
type Config struct {
	// NativeFnAllowlist restricts which native functions a program may
	// call. An empty list means "no restriction" — every function
	// internal/nativefn registers is callable.
	NativeFnAllowlist []string `mapstructure:"native_fn_allowlist"`

	// ReplHistoryPath is loaded from configuration and carried on Config,
	// but nothing reads it: the REPL neither loads nor saves line history.
	ReplHistoryPath string `mapstructure:"repl_history_path"`

	// MaxCallDepth bounds user-function recursion before the evaluator
	// reports a stack overflow (spec.md §7).
	MaxCallDepth int `mapstructure:"max_call_depth"`

	// Watch re-runs the target file whenever it changes on disk.
	Watch bool `mapstructure:"watch"`

	// MetricsAddr, if non-empty, exposes Prometheus counters over HTTP at
	// this address (internal/metrics).
	MetricsAddr string `mapstructure:"metrics_addr"`
}

// Default returns the configuration used when no file or flags override it.
func Default() *Config {
	return &Config{
		ReplHistoryPath: "",
		MaxCallDepth:    1024,
		Watch:           false,
		MetricsAddr:     "",
	}
}

// Load reads configuration from an optional file plus the LOXWALK_*
// environment namespace, falling back to Default for anything unset.
// configFile may be empty, in which case only environment overrides apply.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("loxwalk")
	v.AutomaticEnv()

	cfg := Default()
	v.SetDefault("native_fn_allowlist", cfg.NativeFnAllowlist)
	v.SetDefault("repl_history_path", cfg.ReplHistoryPath)
	v.SetDefault("max_call_depth", cfg.MaxCallDepth)
	v.SetDefault("watch", cfg.Watch)
	v.SetDefault("metrics_addr", cfg.MetricsAddr)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", configFile, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}
	return cfg, nil
}

// Allows reports whether name may be called, given the allowlist. An empty
// allowlist permits everything.
func (c *Config) Allows(name string) bool {
	if len(c.NativeFnAllowlist) == 0 {
		return true
	}
	for _, n := range c.NativeFnAllowlist {
		if n == name {
			return true
		}
	}
	return false
}
