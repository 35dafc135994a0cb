package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"flatland/internal/domain"
)

// Metrics provides observability for a flatland run.
type Metrics struct {
	registry *prometheus.Registry

	InhabitantsAdded prometheus.Counter
	RunFailures      *prometheus.CounterVec
	MergedIntervals  prometheus.Gauge
	ShadowLength     prometheus.Gauge
	RunDuration      prometheus.Histogram
}

// New creates a Metrics instance with all metrics registered on its own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	m := &Metrics{
		registry: reg,
		InhabitantsAdded: factory.NewCounter(prometheus.CounterOpts{
			Name: "flatland_inhabitants_added_total",
			Help: "Total number of inhabitants placed in the world",
		}),
		RunFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "flatland_run_failures_total",
			Help: "Total number of runs stopped by an error, by kind",
		}, []string{"kind"}),
		MergedIntervals: factory.NewGauge(prometheus.GaugeOpts{
			Name: "flatland_merged_intervals",
			Help: "Disjoint shadow intervals after merging",
		}),
		ShadowLength: factory.NewGauge(prometheus.GaugeOpts{
			Name: "flatland_shadow_length",
			Help: "Total ground length covered by shadows",
		}),
		RunDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "flatland_run_duration_seconds",
			Help:    "Duration of a full survey run",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
	}
	// Every kind is exported, even at zero.
	for _, k := range domain.Kinds() {
		m.RunFailures.WithLabelValues(k.Error())
	}
	return m
}

// ObserveAdded records one inhabitant placed in the world.
func (m *Metrics) ObserveAdded() { m.InhabitantsAdded.Inc() }

// ObserveFailure records a run stopped by an error of the given kind.
func (m *Metrics) ObserveFailure(kind domain.Kind) {
	m.RunFailures.WithLabelValues(kind.Error()).Inc()
}

// ObserveMerged records the merged interval count.
func (m *Metrics) ObserveMerged(n int) { m.MergedIntervals.Set(float64(n)) }

// ObserveTotal records the final shadow length.
func (m *Metrics) ObserveTotal(total float64) { m.ShadowLength.Set(total) }

// ObserveRun records the duration of a run.
// Call with time.Now() at the start of the run.
func (m *Metrics) ObserveRun(start time.Time) {
	m.RunDuration.Observe(time.Since(start).Seconds())
}

// WriteTextfile writes every metric to path in the text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

var _ domain.Recorder = (*Metrics)(nil)

// Nop discards every observation.
type Nop struct{}

func (Nop) ObserveAdded()              {}
func (Nop) ObserveFailure(domain.Kind) {}
func (Nop) ObserveMerged(int)          {}
func (Nop) ObserveTotal(float64)       {}

var _ domain.Recorder = Nop{}
