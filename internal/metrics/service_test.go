package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, reg *prometheus.Registry) string {
	t.Helper()
	rr := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/metrics", nil)
	require.NoError(t, err)
	NewMetricsHandler(reg).ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	return rr.Body.String()
}

func TestService_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)

	svc.IncStatsReports()
	svc.IncStatsReports()
	svc.IncStatsFetchFailures()
	svc.IncResultsRecorded()
	svc.IncSlackNotifSent()
	svc.IncSlackNotifFailed()
	svc.ObserveStatsDuration(0.02)
	svc.SetStartupTime(1.5)

	body := scrape(t, reg)
	assert.Contains(t, body, "pickleball_stats_reports_total 2")
	assert.Contains(t, body, "pickleball_stats_fetch_failures_total 1")
	assert.Contains(t, body, "pickleball_results_recorded_total 1")
	assert.Contains(t, body, "pickleball_slack_notifications_sent_total 1")
	assert.Contains(t, body, "pickleball_slack_notifications_failed_total 1")
	assert.Contains(t, body, "pickleball_stats_duration_seconds_count 1")
	assert.Contains(t, body, "pickleball_startup_duration_seconds 1.5")
}

func TestMock_RecordsCalls(t *testing.T) {
	m := NewMock()
	m.IncStatsReports()
	m.IncStatsFetchFailures()
	m.ObserveStatsDuration(0.1)
	m.IncResultsRecorded()

	assert.Equal(t, 1, m.StatsReports())
	assert.Equal(t, 1, m.StatsFetchFailures())
	assert.Equal(t, []float64{0.1}, m.StatsDurations())
	assert.Equal(t, 1, m.ResultsRecorded())
}
