package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ewaste",
		Subsystem: "ledger_scan",
		Name:      "scans_total",
		Help:      "Count of full ledger scans.",
	}, []string{"status"})
	scanDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ewaste",
		Subsystem: "ledger_scan",
		Name:      "scan_duration_seconds",
		Help:      "Duration of full ledger scans.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"status"})
	scanItems = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "ewaste",
		Subsystem: "ledger_scan",
		Name:      "last_scan_items",
		Help:      "Item count covered by the most recent scan.",
	})
	scanSkippedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ewaste",
		Subsystem: "ledger_scan",
		Name:      "skipped_reads_total",
		Help:      "Count of per-item reads skipped due to errors during scans.",
	})
)

// Scan tracks metrics for full ledger scans.
type Scan struct{}

// NewScan creates a Scan metrics collector.
func NewScan() *Scan {
	return &Scan{}
}

// ObserveScan records a completed scan with the item range it covered.
func (m Scan) ObserveScan(err error, items uint64, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	scansTotal.WithLabelValues(status).Inc()
	scanDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	scanItems.Set(float64(items))
}

// ObserveSkippedRead records a per-item read that the scan skipped.
func (m Scan) ObserveSkippedRead() {
	scanSkippedTotal.Inc()
}
