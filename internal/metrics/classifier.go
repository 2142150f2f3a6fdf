package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	classifierRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ewaste",
		Subsystem: "classifier",
		Name:      "requests_total",
		Help:      "Count of image classification requests.",
	}, []string{"status"})
	classifierRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ewaste",
		Subsystem: "classifier",
		Name:      "request_duration_seconds",
		Help:      "Duration of image classification requests.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 20, 30},
	}, []string{"status"})
	classifierMismatchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ewaste",
		Subsystem: "classifier",
		Name:      "mismatches_total",
		Help:      "Count of classifications rejected by the label gate.",
	})
)

// Classifier tracks metrics for the external image classification service.
type Classifier struct{}

// NewClassifier creates a Classifier metrics collector.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Observe records a classification request outcome and duration.
func (m Classifier) Observe(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	classifierRequestsTotal.WithLabelValues(status).Inc()
	classifierRequestDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// ObserveMismatch records a label gate rejection.
func (m Classifier) ObserveMismatch() {
	classifierMismatchesTotal.Inc()
}
