package stats

import (
	"sort"
	"time"

	"github.com/mauv0809/pickle-club/internal/club"
)

const monthKeyLayout = "2006-01"

// MonthBounds returns the first and last calendar day of the month containing now.
func MonthBounds(now time.Time) (first, last time.Time) {
	y, m, _ := now.Date()
	first = time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, -1)
}

func within(date, first, last time.Time) bool {
	return !date.Before(first) && !date.After(last)
}

// counts clamps malformed negative counts to zero so one bad row cannot
// drag the aggregates of the others below zero.
func counts(r club.GameResult) (wins, losses int) {
	return max(r.Wins, 0), max(r.Losses, 0)
}

// ComputeMemberStats derives MemberStats for every member in members.
// Rows for unknown members are ignored. now fixes the "current month".
func ComputeMemberStats(members []club.Member, results []club.GameResult, now time.Time) map[string]MemberStats {
	first, last := MonthBounds(now)

	byID := make(map[string]*MemberStats, len(members))
	for _, m := range members {
		byID[m.ID] = &MemberStats{}
	}

	for _, r := range results {
		st, ok := byID[r.MemberID]
		if !ok {
			continue
		}
		wins, losses := counts(r)
		st.Wins += wins
		st.Losses += losses
		st.Participation++

		if r.GameDate.IsZero() {
			continue
		}
		if within(r.GameDate, first, last) {
			st.ThisMonthParticipation++
		}
		if st.LastAttendance == nil || r.GameDate.After(*st.LastAttendance) {
			d := r.GameDate
			st.LastAttendance = &d
		}
	}

	out := make(map[string]MemberStats, len(byID))
	for id, st := range byID {
		st.AbsentThisMonth = st.ThisMonthParticipation == 0
		st.Rating = Rating(st.Wins, st.Losses, st.Participation)
		out[id] = *st
	}
	return out
}

// MonthlyTrend buckets results by year-month, oldest first.
func MonthlyTrend(results []club.GameResult) []MonthlyAttendance {
	type bucket struct {
		members map[string]struct{}
		games   int
	}
	buckets := make(map[string]*bucket)
	for _, r := range results {
		if r.GameDate.IsZero() {
			continue
		}
		key := r.GameDate.Format(monthKeyLayout)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{members: make(map[string]struct{})}
			buckets[key] = b
		}
		if r.MemberID != "" {
			b.members[r.MemberID] = struct{}{}
		}
		b.games++
	}

	out := make([]MonthlyAttendance, 0, len(buckets))
	for key, b := range buckets {
		out = append(out, MonthlyAttendance{
			Month:        key,
			Participants: len(b.members),
			TotalGames:   b.games,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// CourtReport lists every court with its activity, busiest first by distinct
// playing days. Courts keep their input order on ties.
func CourtReport(results []club.GameResult, courts []club.Court) []CourtParticipation {
	type acc struct {
		members map[string]struct{}
		dates   map[time.Time]struct{}
		games   int
	}
	index := make(map[string]int, len(courts))
	accs := make([]acc, len(courts))
	for i, c := range courts {
		index[c.ID] = i
		accs[i] = acc{members: map[string]struct{}{}, dates: map[time.Time]struct{}{}}
	}

	for _, r := range results {
		if r.CourtID == "" || r.GameDate.IsZero() {
			continue
		}
		i, ok := index[r.CourtID]
		if !ok {
			continue
		}
		if r.MemberID != "" {
			accs[i].members[r.MemberID] = struct{}{}
		}
		accs[i].dates[r.GameDate] = struct{}{}
		accs[i].games++
	}

	out := make([]CourtParticipation, len(courts))
	for i, c := range courts {
		out[i] = CourtParticipation{
			CourtID:           c.ID,
			Name:              c.Name,
			Participants:      len(accs[i].members),
			TotalGames:        accs[i].games,
			ParticipationDays: len(accs[i].dates),
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ParticipationDays > out[j].ParticipationDays })
	return out
}

// ActivityReport lists members with at least one result, most games first.
func ActivityReport(results []club.GameResult, members []club.Member) []MemberActivity {
	type acc struct {
		games, wins, losses int
		dates               map[time.Time]struct{}
		courts              map[string]struct{}
	}
	index := make(map[string]int, len(members))
	accs := make([]acc, len(members))
	for i, m := range members {
		index[m.ID] = i
		accs[i] = acc{dates: map[time.Time]struct{}{}, courts: map[string]struct{}{}}
	}

	for _, r := range results {
		i, ok := index[r.MemberID]
		if !ok {
			continue
		}
		wins, losses := counts(r)
		accs[i].games++
		accs[i].wins += wins
		accs[i].losses += losses
		if !r.GameDate.IsZero() {
			accs[i].dates[r.GameDate] = struct{}{}
		}
		if r.CourtID != "" {
			accs[i].courts[r.CourtID] = struct{}{}
		}
	}

	out := []MemberActivity{}
	for i, m := range members {
		a := accs[i]
		if a.games == 0 {
			continue
		}
		out = append(out, MemberActivity{
			MemberID:          m.ID,
			Name:              m.Name,
			Department:        m.Department,
			TotalGames:        a.games,
			Wins:              a.wins,
			Losses:            a.losses,
			WinRate:           WinPercent(a.wins, a.losses),
			ParticipationDays: len(a.dates),
			CourtsUsed:        len(a.courts),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalGames > out[j].TotalGames })
	return out
}

// Overall computes the club-wide summary. Active members are the distinct
// member ids seen in results. Active courts are the courts in courts that
// appear in at least one result.
func Overall(results []club.GameResult, members []club.Member, courts []club.Court) OverallSummary {
	known := make(map[string]struct{}, len(courts))
	for _, c := range courts {
		known[c.ID] = struct{}{}
	}
	activeMembers := map[string]struct{}{}
	activeCourts := map[string]struct{}{}
	dates := map[time.Time]struct{}{}

	sum := OverallSummary{
		TotalMembers: len(members),
		TotalCourts:  len(courts),
	}
	for _, r := range results {
		if r.MemberID != "" {
			activeMembers[r.MemberID] = struct{}{}
		}
		if _, ok := known[r.CourtID]; ok {
			activeCourts[r.CourtID] = struct{}{}
		}
		if !r.GameDate.IsZero() {
			dates[r.GameDate] = struct{}{}
		}
		wins, losses := counts(r)
		sum.TotalGames++
		sum.TotalWins += wins
		sum.TotalLosses += losses
	}

	sum.ActiveMembers = len(activeMembers)
	sum.ActiveCourts = len(activeCourts)
	sum.TotalParticipationDays = len(dates)
	if sum.ActiveMembers > 0 {
		sum.AverageGamesPerMember = round1(float64(sum.TotalGames) / float64(sum.ActiveMembers))
	}
	sum.OverallWinRate = WinPercent(sum.TotalWins, sum.TotalLosses)
	return sum
}
