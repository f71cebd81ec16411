package scheduler

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus collectors the Engine records phase timing
// and pipeline-health data into. A nil *Metrics is valid everywhere here and
// simply drops observations, so callers without a registry pay nothing.
type Metrics struct {
	phaseDuration     *prometheus.HistogramVec
	repairIterations  prometheus.Histogram
	hardeningAccepted prometheus.Histogram
	unplacedClasses   *prometheus.CounterVec
	runsTotal         *prometheus.CounterVec
}

// NewMetrics registers the timetable collectors into registry. A nil
// registry creates a private one so the collectors are still usable
// without exposing them over HTTP.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	phaseDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "timetable_phase_duration_seconds",
		Help:    "Duration of each pipeline phase",
		Buckets: prometheus.DefBuckets,
	}, []string{"phase", "year"})

	repairIterations := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "timetable_repair_iterations",
		Help:    "Iterations consumed by the repair stage per run",
		Buckets: prometheus.LinearBuckets(0, 200, 10),
	})

	hardeningAccepted := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "timetable_hardening_accepted_moves",
		Help:    "Accepted moves during simulated hardening per run",
		Buckets: prometheus.LinearBuckets(0, 250, 10),
	})

	unplacedClasses := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_unplaced_classes_total",
		Help: "Classes that could not be placed, by year",
	}, []string{"year"})

	runsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_runs_total",
		Help: "Completed Engine.Generate invocations",
	}, []string{"outcome"})

	registry.MustRegister(phaseDuration, repairIterations, hardeningAccepted, unplacedClasses, runsTotal)

	return &Metrics{
		phaseDuration:     phaseDuration,
		repairIterations:  repairIterations,
		hardeningAccepted: hardeningAccepted,
		unplacedClasses:   unplacedClasses,
		runsTotal:         runsTotal,
	}
}

func (m *Metrics) observePhase(phase, year string, seconds float64) {
	if m == nil {
		return
	}
	m.phaseDuration.WithLabelValues(phase, year).Observe(seconds)
}

func (m *Metrics) observeRepair(iterations int) {
	if m == nil {
		return
	}
	m.repairIterations.Observe(float64(iterations))
}

func (m *Metrics) observeHardening(accepted int) {
	if m == nil {
		return
	}
	m.hardeningAccepted.Observe(float64(accepted))
}

func (m *Metrics) addUnplaced(year string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.unplacedClasses.WithLabelValues(year).Add(float64(n))
}

func (m *Metrics) incRun(outcome string) {
	if m == nil {
		return
	}
	m.runsTotal.WithLabelValues(outcome).Inc()
}
