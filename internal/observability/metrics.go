// Package observability registers the service's Prometheus collectors.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "fitness_tracker"

var (
	insightsComputed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "insights",
		Name:      "computed_total",
		Help:      "Number of composite insight results computed.",
	})
	insightsDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "insights",
		Name:      "compute_duration_seconds",
		Help:      "Time spent computing insights, excluding the fetch.",
		Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5},
	})
	insightsWorkouts = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "insights",
		Name:      "workouts_scanned",
		Help:      "Number of workouts fetched per insights request.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
	})
	workoutsLogged = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "workouts",
		Name:      "logged_total",
		Help:      "Number of workouts logged or overwritten.",
	})
	keySetFetches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "auth",
		Name:      "jwks_fetch_total",
		Help:      "JWKS fetches from the identity provider by result.",
	}, []string{"result"})
	exportsCreated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "export",
		Name:      "created_total",
		Help:      "Workout history exports by result.",
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(
		insightsComputed,
		insightsDuration,
		insightsWorkouts,
		workoutsLogged,
		keySetFetches,
		exportsCreated,
	)
}

// RecordInsightsComputed observes one insights computation.
func RecordInsightsComputed(workouts int, took time.Duration) {
	insightsComputed.Inc()
	insightsWorkouts.Observe(float64(workouts))
	insightsDuration.Observe(took.Seconds())
}

func RecordWorkoutLogged() {
	workoutsLogged.Inc()
}

// RecordKeySetFetch counts a JWKS fetch attempt.
func RecordKeySetFetch(err error) {
	keySetFetches.WithLabelValues(result(err)).Inc()
}

func RecordExport(err error) {
	exportsCreated.WithLabelValues(result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
