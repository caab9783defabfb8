package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	StatsReports       prometheus.Counter
	StatsFetchFailures prometheus.Counter
	StatsDuration      prometheus.Histogram
	ResultsRecorded    prometheus.Counter
	SlackNotifSent     prometheus.Counter
	SlackNotifFailed   prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}
