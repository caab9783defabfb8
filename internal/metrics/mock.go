package metrics

import "sync"

var _ Metrics = (*Mock)(nil)

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                 sync.Mutex
	statsReports       int
	statsFetchFailures int
	statsDurations     []float64
	resultsRecorded    int
	slackNotifSent     int
	slackNotifFailed   int
	startupTime        float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		statsDurations: make([]float64, 0),
	}
}

func (m *Mock) IncStatsReports() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statsReports++
}

func (m *Mock) IncStatsFetchFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statsFetchFailures++
}

func (m *Mock) ObserveStatsDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statsDurations = append(m.statsDurations, duration)
}

func (m *Mock) IncResultsRecorded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resultsRecorded++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// StatsReports returns the number of times IncStatsReports was called.
func (m *Mock) StatsReports() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.statsReports
}

// StatsFetchFailures returns the number of times IncStatsFetchFailures was called.
func (m *Mock) StatsFetchFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.statsFetchFailures
}

// StatsDurations returns every observed report duration.
func (m *Mock) StatsDurations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.statsDurations...)
}

// ResultsRecorded returns the number of times IncResultsRecorded was called.
func (m *Mock) ResultsRecorded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resultsRecorded
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
