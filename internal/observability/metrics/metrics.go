package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/phoenixdev-512/Automated-Data-Integrity-Anomaly-Protocol/internal/domain"
)

const (
	metricPrefix = "sentinel_"

	StatusSuccess = "success"
	StatusError   = "error"
)

// Metrics bundles reconciliation run metrics.
type Metrics struct {
	RunsTotal      *prometheus.CounterVec
	RunDuration    prometheus.Histogram
	RecordsLoaded  *prometheus.GaugeVec
	Findings       *prometheus.GaugeVec
	RevenueAtRisk  prometheus.Gauge
	RevenueLeakage prometheus.Gauge
	LastRunTime    prometheus.Gauge
}

// New constructs metrics and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "runs_total",
				Help: "Total reconciliation runs by status",
			},
			[]string{"status"},
		),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    metricPrefix + "run_duration_seconds",
			Help:    "Reconciliation run duration in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		RecordsLoaded: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: metricPrefix + "records_loaded",
				Help: "Records loaded in the last run by source",
			},
			[]string{"source"},
		),
		Findings: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: metricPrefix + "findings",
				Help: "Billed transactions in the last run by classification",
			},
			[]string{"classification"},
		),
		RevenueAtRisk: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: metricPrefix + "revenue_at_risk",
			Help: "Sum of billed amounts with no settlement in the last run",
		}),
		RevenueLeakage: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: metricPrefix + "revenue_leakage",
			Help: "Sum of signed variances in the last run",
		}),
		LastRunTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: metricPrefix + "last_run_timestamp_seconds",
			Help: "Unix time of the last completed run",
		}),
	}
	reg.MustRegister(
		m.RunsTotal,
		m.RunDuration,
		m.RecordsLoaded,
		m.Findings,
		m.RevenueAtRisk,
		m.RevenueLeakage,
		m.LastRunTime,
	)
	return m
}

// ObserveLoad records how many records each source produced.
func (m *Metrics) ObserveLoad(billed, settlements int) {
	if m == nil {
		return
	}
	m.RecordsLoaded.WithLabelValues(domain.SourceBilling).Set(float64(billed))
	m.RecordsLoaded.WithLabelValues(domain.SourceSettlement).Set(float64(settlements))
}

// ObserveRun records the outcome of a run. fs is nil for failed runs.
func (m *Metrics) ObserveRun(fs *domain.FindingSet, elapsed time.Duration, finishedAt time.Time) {
	if m == nil {
		return
	}
	m.RunDuration.Observe(elapsed.Seconds())
	if fs == nil {
		m.RunsTotal.WithLabelValues(StatusError).Inc()
		return
	}
	m.RunsTotal.WithLabelValues(StatusSuccess).Inc()
	m.Findings.WithLabelValues(string(domain.ClassificationMissing)).Set(float64(len(fs.Missing)))
	m.Findings.WithLabelValues(string(domain.ClassificationVariance)).Set(float64(len(fs.Variances)))
	m.Findings.WithLabelValues(string(domain.ClassificationMatched)).Set(float64(fs.MatchedCount))
	m.RevenueAtRisk.Set(fs.RevenueAtRisk().InexactFloat64())
	m.RevenueLeakage.Set(fs.RevenueLeakage().InexactFloat64())
	m.LastRunTime.Set(float64(finishedAt.Unix()))
}

// WriteTextfile exports everything gathered by g in the node_exporter
// textfile collector format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
