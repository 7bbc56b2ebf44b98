package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "exercise_tracker"

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests handled, by method, route and status code.",
	}, []string{"method", "route", "status"})
	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
	usersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Users created through get-or-create.",
	})
	exercisesRecorded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exercises_recorded_total",
		Help:      "Exercises persisted.",
	})
	logEntriesReturned = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "log_entries_returned",
		Help:      "Number of entries returned per log query.",
		Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 1000},
	})
)

func init() {
	prometheus.MustRegister(httpRequests, httpDuration, usersCreated, exercisesRecorded, logEntriesReturned)
}

// RecordHTTPRequest counts a finished request and observes its latency.
func RecordHTTPRequest(method, route, status string, seconds float64) {
	httpRequests.WithLabelValues(method, route, status).Inc()
	httpDuration.WithLabelValues(method, route).Observe(seconds)
}

// RecordUserCreated counts a newly created user.
func RecordUserCreated() {
	usersCreated.Inc()
}

// RecordExerciseRecorded counts a persisted exercise.
func RecordExerciseRecorded() {
	exercisesRecorded.Inc()
}

// ObserveLogEntries records the size of a returned log.
func ObserveLogEntries(n int) {
	logEntriesReturned.Observe(float64(n))
}
