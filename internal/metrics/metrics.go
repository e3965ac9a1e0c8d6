package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	aiRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lifeos",
			Subsystem: "ai",
			Name:      "requests_total",
			Help:      "Generation requests by normalized outcome.",
		},
		[]string{"outcome"},
	)

	aiDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "lifeos",
			Subsystem: "ai",
			Name:      "request_duration_seconds",
			Help:      "Duration of generation requests.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
		},
	)

	aiRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lifeos",
			Subsystem: "ai",
			Name:      "rejected_total",
			Help:      "Requests rejected because the call site already had one in flight.",
		},
		[]string{"site"},
	)

	storeWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lifeos",
			Subsystem: "store",
			Name:      "writes_total",
			Help:      "Whole-state writes by result.",
		},
		[]string{"result"},
	)

	lifeScore = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "lifeos",
			Name:      "life_score",
			Help:      "Current derived life score.",
		},
	)

	streak = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "lifeos",
			Name:      "streak",
			Help:      "Current consistency streak.",
		},
	)
)

func init() {
	Registry.MustRegister(aiRequests, aiDuration, aiRejected, storeWrites, lifeScore, streak)
}

// Handler exposes the application registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func RecordAIRequest(outcome string, seconds float64) {
	aiRequests.WithLabelValues(outcome).Inc()
	aiDuration.Observe(seconds)
}

func RecordRejected(site string) {
	aiRejected.WithLabelValues(site).Inc()
}

func RecordStoreWrite(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	storeWrites.WithLabelValues(result).Inc()
}

func SetProgress(score, days int) {
	lifeScore.Set(float64(score))
	streak.Set(float64(days))
}
