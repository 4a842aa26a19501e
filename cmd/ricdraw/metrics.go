package main

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360studio/ricdraw/compiler"
)

// runMetrics counts compilation outcomes of a batch or watch run. The
// registry is private to the run and written as a node-exporter textfile.
type runMetrics struct {
	registry    *prometheus.Registry
	diagrams    *prometheus.CounterVec
	errors      *prometheus.CounterVec
	individuals prometheus.Counter
	facts       prometheus.Counter
	repaired    prometheus.Counter
	lastRun     prometheus.Gauge
}

func newRunMetrics() *runMetrics {
	m := &runMetrics{
		registry: prometheus.NewRegistry(),
		diagrams: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ricdraw",
			Name:      "diagrams_total",
			Help:      "Diagrams compiled, by result.",
		}, []string{"result"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ricdraw",
			Name:      "compile_errors_total",
			Help:      "Failed compilations, by error kind.",
		}, []string{"kind"}),
		individuals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ricdraw",
			Name:      "individuals_total",
			Help:      "Individuals emitted.",
		}),
		facts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ricdraw",
			Name:      "facts_total",
			Help:      "Facts, annotations and equalities emitted.",
		}),
		repaired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ricdraw",
			Name:      "repaired_endpoints_total",
			Help:      "Floating connector ends attached from geometry.",
		}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ricdraw",
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the run finished.",
		}),
	}
	m.registry.MustRegister(m.diagrams, m.errors, m.individuals, m.facts, m.repaired, m.lastRun)
	return m
}

func (m *runMetrics) observe(res *compiler.Result, err error) {
	if err != nil {
		m.diagrams.WithLabelValues("error").Inc()
		m.errors.WithLabelValues(string(compiler.Kind(err))).Inc()
		return
	}
	m.diagrams.WithLabelValues("ok").Inc()
	m.individuals.Add(float64(res.Stats.Individuals))
	m.facts.Add(float64(res.Stats.Facts))
	m.repaired.Add(float64(res.Stats.Repaired))
}

// writeTextfile writes the metrics in the text exposition format.
func (m *runMetrics) writeTextfile(path string) error {
	m.lastRun.SetToCurrentTime()
	return prometheus.WriteToTextfile(path, m.registry)
}
