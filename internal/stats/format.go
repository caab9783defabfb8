package stats

import (
	"fmt"
	"time"

	"github.com/mauv0809/pickle-club/internal/club"
	"golang.org/x/text/language"
)

type vocabulary struct {
	weekdays      [7]string
	winSuffix     string
	lossSuffix    string
	tiers         [5]string
	placeholder   string
	neverAttended string
	unknownName   string
	noDepartment  string
	monthLabel    func(t time.Time) string
	attendance    string
	ordinal       func(rank int) string
	headers       map[SortMode]string
	highlights    map[SortMode]string
}

var korean = vocabulary{
	weekdays:      [7]string{"일", "월", "화", "수", "목", "금", "토"},
	winSuffix:     "승",
	lossSuffix:    "패",
	tiers:         [5]string{"입문", "초급", "중급", "고급", "전문가"},
	placeholder:   "-",
	neverAttended: "미참석",
	unknownName:   "Unknown",
	noDepartment:  "No Department",
	monthLabel: func(t time.Time) string {
		return fmt.Sprintf("%d년 %d월", t.Year(), int(t.Month()))
	},
	attendance: "이번달 %d명이 참석을 해야 하는데 현재 %d명이 참석을 해서 %d명이 부족합니다.",
	ordinal:    func(rank int) string { return fmt.Sprintf("%d위", rank) },
	headers: map[SortMode]string{
		SortByGames:   "참여일수",
		SortByWinRate: "승률",
		SortByWins:    "승수",
	},
	highlights: map[SortMode]string{
		SortByGames: "%d 일",
		SortByWins:  "%d 승",
	},
}

var english = vocabulary{
	weekdays:      [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	winSuffix:     "W",
	lossSuffix:    "L",
	tiers:         [5]string{"Novice", "Beginner", "Intermediate", "Advanced", "Expert"},
	placeholder:   "-",
	neverAttended: "Never attended",
	unknownName:   "Unknown",
	noDepartment:  "No Department",
	monthLabel: func(t time.Time) string {
		return t.Format("January 2006")
	},
	attendance: "%d members should attend this month; %d have attended so far, %d short.",
	ordinal:    englishOrdinal,
	headers: map[SortMode]string{
		SortByGames:   "Participation days",
		SortByWinRate: "Win rate",
		SortByWins:    "Wins",
	},
	highlights: map[SortMode]string{
		SortByGames: "%d days",
		SortByWins:  "%d wins",
	},
}

func englishOrdinal(rank int) string {
	suffix := "th"
	switch rank % 100 {
	case 11, 12, 13:
	default:
		switch rank % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", rank, suffix)
}

// Formatter turns derived data into display strings. It aggregates nothing.
type Formatter struct {
	tag   language.Tag
	words vocabulary
}

// NewFormatter returns a formatter for tag. Korean is used for Korean tags,
// English for everything else.
func NewFormatter(tag language.Tag) *Formatter {
	f := &Formatter{tag: tag, words: english}
	if f.isKorean() {
		f.words = korean
	}
	return f
}

func (f *Formatter) isKorean() bool {
	base, _ := f.tag.Base()
	return base.String() == "ko"
}

// Language is the tag the formatter was built for.
func (f *Formatter) Language() language.Tag {
	return f.tag
}

// WinRecord renders e.g. "75%(3승/1패)".
func (f *Formatter) WinRecord(wins, losses int) string {
	return fmt.Sprintf("%d%%(%d%s/%d%s)", WinPercent(wins, losses), wins, f.words.winSuffix, losses, f.words.lossSuffix)
}

// Date renders a calendar date as "MM/DD(weekday)", or a placeholder for the zero date.
func (f *Formatter) Date(d time.Time) string {
	if d.IsZero() {
		return f.words.placeholder
	}
	return fmt.Sprintf("%02d/%02d(%s)", int(d.Month()), d.Day(), f.words.weekdays[d.Weekday()])
}

// LastAttendance renders the most recent attendance date.
func (f *Formatter) LastAttendance(d *time.Time) string {
	if d == nil || d.IsZero() {
		return f.words.neverAttended
	}
	return f.Date(*d)
}

// TierLabel is the localized name of a tier.
func (f *Formatter) TierLabel(t Tier) string {
	if t < TierNovice || t > TierExpert {
		return f.words.placeholder
	}
	return f.words.tiers[t]
}

// RatingView is a rating prepared for display.
type RatingView struct {
	Score   string `json:"score"`
	Tier    Tier   `json:"tier"`
	Label   string `json:"label"`
	Rank    int    `json:"rank"`
	Ordinal string `json:"ordinal"`
}

// Rating renders a score with exactly two decimals, its tier and its rank.
func (f *Formatter) Rating(score float64, rank int) RatingView {
	tier := TierFor(score)
	return RatingView{
		Score:   fmt.Sprintf("%.2f", score),
		Tier:    tier,
		Label:   f.TierLabel(tier),
		Rank:    rank,
		Ordinal: f.words.ordinal(rank),
	}
}

// MonthLabel renders a "YYYY-MM" month key, or returns it unchanged if it
// does not parse.
func (f *Formatter) MonthLabel(key string) string {
	t, err := time.Parse(monthKeyLayout, key)
	if err != nil {
		return key
	}
	return f.words.monthLabel(t)
}

// DisplayName renders "name(department)" with fallbacks for blanks.
func (f *Formatter) DisplayName(m club.Member) string {
	name, dept := m.Name, m.Department
	if name == "" {
		name = f.words.unknownName
	}
	if dept == "" {
		dept = f.words.noDepartment
	}
	return fmt.Sprintf("%s(%s)", name, dept)
}

// AttendanceMessage phrases an attendance status as a sentence.
func (f *Formatter) AttendanceMessage(s AttendanceStatus) string {
	return fmt.Sprintf(f.words.attendance, s.Quota, s.Attended, s.Shortfall)
}

// Header is the title of the mode-dependent column of the member table.
func (f *Formatter) Header(mode SortMode) string {
	if h, ok := f.words.headers[mode]; ok {
		return h
	}
	return "DUPR"
}

// Highlight renders the mode-dependent column of the member table.
func (f *Formatter) Highlight(mode SortMode, st MemberStats) string {
	switch mode {
	case SortByGames:
		return fmt.Sprintf(f.words.highlights[SortByGames], st.Participation)
	case SortByWinRate:
		return fmt.Sprintf("%d%%", WinPercent(st.Wins, st.Losses))
	case SortByWins:
		return fmt.Sprintf(f.words.highlights[SortByWins], st.Wins)
	default:
		return fmt.Sprintf("%.2f (%s)", st.Rating, f.TierLabel(TierFor(st.Rating)))
	}
}

// MemberRow is one line of the ranked member table.
type MemberRow struct {
	Position       int         `json:"position"`
	MemberID       string      `json:"member_id"`
	DisplayName    string      `json:"display_name"`
	Highlight      string      `json:"highlight"`
	Rating         RatingView  `json:"rating"`
	Stats          MemberStats `json:"stats"`
	WinRecord      string      `json:"win_record"`
	LastAttendance string      `json:"last_attendance"`
	Absent         bool        `json:"absent"`
}

// MemberRows renders an already sorted member list. Position is the row's
// place in that list. The rating rank is the member's place by rating score
// across the whole list, shared between equal scores.
func (f *Formatter) MemberRows(sorted []club.Member, statsByID map[string]MemberStats, mode SortMode) []MemberRow {
	ranks := ratingRanks(sorted, statsByID)
	rows := make([]MemberRow, len(sorted))
	for i, m := range sorted {
		st := statsByID[m.ID]
		rows[i] = MemberRow{
			Position:       i + 1,
			MemberID:       m.ID,
			DisplayName:    f.DisplayName(m),
			Highlight:      f.Highlight(mode, st),
			Rating:         f.Rating(st.Rating, ranks[m.ID]),
			Stats:          st,
			WinRecord:      f.WinRecord(st.Wins, st.Losses),
			LastAttendance: f.LastAttendance(st.LastAttendance),
			Absent:         st.AbsentThisMonth,
		}
	}
	return rows
}

// ratingRanks assigns competition ranks ("1, 2, 2, 4") by rating.
func ratingRanks(members []club.Member, statsByID map[string]MemberStats) map[string]int {
	ranks := make(map[string]int, len(members))
	for _, m := range members {
		r := statsByID[m.ID].Rating
		rank := 1
		for _, other := range members {
			if statsByID[other.ID].Rating > r {
				rank++
			}
		}
		ranks[m.ID] = rank
	}
	return ranks
}

// ResultRow is one line of the game result table.
type ResultRow struct {
	MemberID  string `json:"member_id"`
	CourtID   string `json:"court_id"`
	GameDate  string `json:"game_date"`
	Wins      int    `json:"wins"`
	Losses    int    `json:"losses"`
	Date      string `json:"date"`
	WinRecord string `json:"win_record"`
	Member    string `json:"member"`
	Court     string `json:"court"`
}

// ResultRows renders results in their given order. Names of members or
// courts that no longer exist render as a placeholder.
func (f *Formatter) ResultRows(results []club.GameResult, members []club.Member, courts []club.Court) []ResultRow {
	memberNames := make(map[string]string, len(members))
	for _, m := range members {
		memberNames[m.ID] = m.Name
	}
	courtNames := make(map[string]string, len(courts))
	for _, c := range courts {
		courtNames[c.ID] = c.Name
	}
	name := func(names map[string]string, id string) string {
		if n, ok := names[id]; ok && n != "" {
			return n
		}
		return f.words.placeholder
	}

	rows := make([]ResultRow, len(results))
	for i, r := range results {
		date := ""
		if !r.GameDate.IsZero() {
			date = r.GameDate.Format(club.DateLayout)
		}
		rows[i] = ResultRow{
			MemberID:  r.MemberID,
			CourtID:   r.CourtID,
			GameDate:  date,
			Wins:      r.Wins,
			Losses:    r.Losses,
			Date:      f.Date(r.GameDate),
			WinRecord: f.WinRecord(r.Wins, r.Losses),
			Member:    name(memberNames, r.MemberID),
			Court:     name(courtNames, r.CourtID),
		}
	}
	return rows
}
