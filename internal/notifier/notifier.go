package notifier

import (
	"context"

	"github.com/mauv0809/pickle-club/internal/stats"
)

// Notifier defines a high-level interface for sending notifications about club statistics.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// Attendance status for the current month, with absent members listed.
	SendAttendanceStatus(ctx context.Context, status stats.AttendanceStatus, absent []stats.MemberRow, dryRun bool) error
	// Rating leaderboard
	SendRanking(ctx context.Context, list stats.MemberList, dryRun bool) error
}
