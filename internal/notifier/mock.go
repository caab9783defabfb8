package notifier

import (
	"context"
	"sync"

	"github.com/mauv0809/pickle-club/internal/stats"
)

var _ Notifier = (*Mock)(nil)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	SendAttendanceStatusFunc func(ctx context.Context, status stats.AttendanceStatus, absent []stats.MemberRow, dryRun bool) error
	SendRankingFunc          func(ctx context.Context, list stats.MemberList, dryRun bool) error

	// Call records
	SendAttendanceStatusCalls []struct {
		Status stats.AttendanceStatus
		Absent []stats.MemberRow
		DryRun bool
	}
	SendRankingCalls []struct {
		List   stats.MemberList
		DryRun bool
	}
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendAttendanceStatusCalls = nil
	m.SendRankingCalls = nil
}

func (m *Mock) SendAttendanceStatus(ctx context.Context, status stats.AttendanceStatus, absent []stats.MemberRow, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendAttendanceStatusCalls = append(m.SendAttendanceStatusCalls, struct {
		Status stats.AttendanceStatus
		Absent []stats.MemberRow
		DryRun bool
	}{status, absent, dryRun})
	if m.SendAttendanceStatusFunc != nil {
		return m.SendAttendanceStatusFunc(ctx, status, absent, dryRun)
	}
	return nil
}

func (m *Mock) SendRanking(ctx context.Context, list stats.MemberList, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendRankingCalls = append(m.SendRankingCalls, struct {
		List   stats.MemberList
		DryRun bool
	}{list, dryRun})
	if m.SendRankingFunc != nil {
		return m.SendRankingFunc(ctx, list, dryRun)
	}
	return nil
}
