// Package metrics defines the Prometheus instruments published by the
// model loader. All instruments are registered against the registerer
// passed to New, so every App instance gets its own isolated set.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Load stage labels used by the load_failures counter.
const (
	StageParse      = "parse"
	StageValidate   = "validate"
	StageBuild      = "build"
	StageCheckpoint = "checkpoint"
)

// Metrics contains all Prometheus metrics for the model loader.
type Metrics struct {
	// Binding store metrics
	FilesParsed    prometheus.Counter
	BindingsMerged prometheus.Counter
	LoadFailures   *prometheus.CounterVec

	// Graph metrics
	ComponentsBuilt prometheus.Counter

	// Checkpoint probe metrics
	CheckpointProbes *prometheus.CounterVec
	ProbeDuration    prometheus.Histogram
}

// New creates all metrics and registers them with the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		FilesParsed: factory.NewCounter(prometheus.CounterOpts{
			Name: "sggo_config_files_parsed_total",
			Help: "Total number of binding files parsed and merged",
		}),
		BindingsMerged: factory.NewCounter(prometheus.CounterOpts{
			Name: "sggo_bindings_merged_total",
			Help: "Total number of bindings in the merged store",
		}),
		LoadFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sggo_load_failures_total",
			Help: "Total number of failed loads by stage",
		}, []string{"stage"}),

		ComponentsBuilt: factory.NewCounter(prometheus.CounterOpts{
			Name: "sggo_components_built_total",
			Help: "Total number of component instances constructed",
		}),

		CheckpointProbes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sggo_checkpoint_probes_total",
			Help: "Total number of checkpoint reachability probes by result",
		}, []string{"result"}),
		ProbeDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "sggo_checkpoint_probe_duration_seconds",
			Help:    "Duration of checkpoint reachability probes",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~10s
		}),
	}
}

// AddFilesParsed records files merged into the binding store.
func (m *Metrics) AddFilesParsed(n int) {
	m.FilesParsed.Add(float64(n))
}

// AddBindingsMerged records the size of the merged binding store.
func (m *Metrics) AddBindingsMerged(n int) {
	m.BindingsMerged.Add(float64(n))
}

// RecordLoadFailure increments the failure counter for one load stage.
func (m *Metrics) RecordLoadFailure(stage string) {
	m.LoadFailures.WithLabelValues(stage).Inc()
}

// AddComponentsBuilt records constructed component instances.
func (m *Metrics) AddComponentsBuilt(n int) {
	m.ComponentsBuilt.Add(float64(n))
}

// RecordCheckpointProbe records one probe result and its duration.
func (m *Metrics) RecordCheckpointProbe(ok bool, durationSeconds float64) {
	result := "ok"
	if !ok {
		result = "failed"
	}
	m.CheckpointProbes.WithLabelValues(result).Inc()
	m.ProbeDuration.Observe(durationSeconds)
}
