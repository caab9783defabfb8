package stats

import (
	"time"

	"github.com/mauv0809/pickle-club/internal/club"
)

// Snapshot is the in-memory input to every aggregation.
type Snapshot struct {
	Members []club.Member
	Courts  []club.Court
	Results []club.GameResult
}

// MemberStats is the derived per-member view. It is never persisted.
type MemberStats struct {
	Wins                   int        `json:"wins"`
	Losses                 int        `json:"losses"`
	Participation          int        `json:"participation"`
	ThisMonthParticipation int        `json:"this_month_participation"`
	Rating                 float64    `json:"rating"`
	AbsentThisMonth        bool       `json:"absent_this_month"`
	LastAttendance         *time.Time `json:"last_attendance,omitempty"`
}

// MonthlyAttendance is one year-month bucket of the attendance trend.
type MonthlyAttendance struct {
	Month        string `json:"month"`
	Label        string `json:"label,omitempty"`
	Participants int    `json:"participants"`
	TotalGames   int    `json:"total_games"`
}

// CourtParticipation summarises activity on one court.
type CourtParticipation struct {
	CourtID           string `json:"court_id"`
	Name              string `json:"name"`
	Participants      int    `json:"participants"`
	TotalGames        int    `json:"total_games"`
	ParticipationDays int    `json:"participation_days"`
}

// MemberActivity summarises one member's recorded games.
type MemberActivity struct {
	MemberID          string `json:"member_id"`
	Name              string `json:"name"`
	Department        string `json:"department,omitempty"`
	TotalGames        int    `json:"total_games"`
	Wins              int    `json:"wins"`
	Losses            int    `json:"losses"`
	WinRate           int    `json:"win_rate"`
	ParticipationDays int    `json:"participation_days"`
	CourtsUsed        int    `json:"courts_used"`
}

// OverallSummary is the club-wide headline record.
type OverallSummary struct {
	TotalMembers           int     `json:"total_members"`
	ActiveMembers          int     `json:"active_members"`
	TotalCourts            int     `json:"total_courts"`
	ActiveCourts           int     `json:"active_courts"`
	TotalGames             int     `json:"total_games"`
	TotalWins              int     `json:"total_wins"`
	TotalLosses            int     `json:"total_losses"`
	TotalParticipationDays int     `json:"total_participation_days"`
	AverageGamesPerMember  float64 `json:"average_games_per_member"`
	OverallWinRate         int     `json:"overall_win_rate"`
}

// AttendanceStatus compares this month's attendance with the club quota.
type AttendanceStatus struct {
	TotalMembers int    `json:"total_members"`
	Attended     int    `json:"attended"`
	Absent       int    `json:"absent"`
	Quota        int    `json:"quota"`
	Shortfall    int    `json:"shortfall"`
	Message      string `json:"message"`
}

// Report is everything the dashboard shows, computed from one snapshot.
// Degraded is set when the snapshot could not be fetched and the report was
// computed from empty collections.
type Report struct {
	GeneratedAt time.Time              `json:"generated_at"`
	Month       string                 `json:"month"`
	Degraded    bool                   `json:"degraded"`
	MemberStats map[string]MemberStats `json:"member_stats"`
	Monthly     []MonthlyAttendance    `json:"monthly_attendance"`
	Courts      []CourtParticipation   `json:"court_participation"`
	Activity    []MemberActivity       `json:"member_activity"`
	Overall     OverallSummary         `json:"overall"`
	Attendance  AttendanceStatus       `json:"attendance"`
}

// MemberList is the ranked member table for one sort mode.
type MemberList struct {
	Mode       SortMode          `json:"mode"`
	Header     string            `json:"header"`
	Degraded   bool              `json:"degraded"`
	Rows       []MemberRow       `json:"rows"`
	Attendance *AttendanceStatus `json:"attendance,omitempty"`
}
