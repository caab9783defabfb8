package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		StatsReports: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pickleball_stats_reports_total",
			Help: "The total number of statistics reports computed.",
		}),
		StatsFetchFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pickleball_stats_fetch_failures_total",
			Help: "The total number of reports computed from an empty snapshot because a fetch failed.",
		}),
		StatsDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pickleball_stats_duration_seconds",
			Help:    "The duration of fetching and aggregating one statistics report.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
		ResultsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pickleball_results_recorded_total",
			Help: "The total number of game results upserted.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pickleball_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pickleball_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pickleball_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.StatsReports,
		s.StatsFetchFailures,
		s.StatsDuration,
		s.ResultsRecorded,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncStatsReports() {
	s.StatsReports.Inc()
}

func (s *Service) IncStatsFetchFailures() {
	s.StatsFetchFailures.Inc()
}

func (s *Service) ObserveStatsDuration(duration float64) {
	s.StatsDuration.Observe(duration)
}

func (s *Service) IncResultsRecorded() {
	s.ResultsRecorded.Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
