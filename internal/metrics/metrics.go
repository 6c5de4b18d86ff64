// Package metrics exposes optional Prometheus counters for the CLI's
// `--metrics-addr` flag (SPEC_FULL.md §3). None of this is part of the
// language or its evaluator; the interpreter runs identically with or
// without a Registry attached.
//
// Grounded on kubernetes-kube-state-metrics's pkg/app/server.go, which
// builds its own prometheus.Registry and registers counters/gauges via
// promauto.With(registry) rather than the global default registry.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the counters loxwalk reports, each on its own
// prometheus.Registry instance rather than the package-global one, so a
// host embedding the interpreter can run many independent instances.
type Registry struct {
	reg *prometheus.Registry

	StatementsTotal  prometheus.Counter
	CallsTotal       prometheus.Counter
	RuntimeErrors    prometheus.Counter
	ScriptRunsTotal  prometheus.Counter
	ScriptRunSeconds prometheus.Histogram
}

// New creates a Registry with every loxwalk counter registered.
func New() *Registry {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Registry{
		reg: reg,
		StatementsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "loxwalk_statements_total",
			Help: "Total number of top-level statements executed.",
		}),
		CallsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "loxwalk_calls_total",
			Help: "Total number of user-function calls made.",
		}),
		RuntimeErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "loxwalk_runtime_errors_total",
			Help: "Total number of runtime errors raised.",
		}),
		ScriptRunsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "loxwalk_script_runs_total",
			Help: "Total number of scripts run by the CLI.",
		}),
		ScriptRunSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "loxwalk_script_run_seconds",
			Help:    "Wall-clock duration of a script run.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// Handler returns an http.Handler serving this Registry's metrics in the
// Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
