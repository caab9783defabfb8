package stats

import (
	"strings"
	"testing"

	"github.com/mauv0809/pickle-club/internal/club"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestFormatter_Korean(t *testing.T) {
	f := NewFormatter(language.Korean)

	assert.Equal(t, "75%(3승/1패)", f.WinRecord(3, 1))
	assert.Equal(t, "0%(0승/0패)", f.WinRecord(0, 0))
	assert.Equal(t, "01/05(금)", f.Date(day(2024, 1, 5)))
	assert.Equal(t, "미참석", f.LastAttendance(nil))
	assert.Equal(t, "2024년 1월", f.MonthLabel("2024-01"))
	assert.Equal(t, "bad", f.MonthLabel("bad"))
	assert.Equal(t, "Ara(Dev)", f.DisplayName(club.Member{Name: "Ara", Department: "Dev"}))
	assert.Equal(t, "Unknown(No Department)", f.DisplayName(club.Member{}))
	assert.Equal(t, "참여일수", f.Header(SortByGames))
	assert.Equal(t, "DUPR", f.Header(SortByAbsence))

	view := f.Rating(4.6, 1)
	assert.Equal(t, RatingView{Score: "4.60", Tier: TierExpert, Label: "전문가", Rank: 1, Ordinal: "1위"}, view)
}

func TestFormatter_English(t *testing.T) {
	f := NewFormatter(language.English)

	assert.Equal(t, "75%(3W/1L)", f.WinRecord(3, 1))
	assert.Equal(t, "01/05(Fri)", f.Date(day(2024, 1, 5)))
	assert.Equal(t, "January 2024", f.MonthLabel("2024-01"))
	assert.Equal(t, "Never attended", f.LastAttendance(nil))
	assert.Equal(t, "Beginner", f.TierLabel(TierBeginner))

	for rank, want := range map[int]string{1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th", 22: "22nd", 103: "103rd"} {
		assert.Equal(t, want, f.Rating(0, rank).Ordinal)
	}
}

func TestFormatter_Highlight(t *testing.T) {
	f := NewFormatter(language.Korean)
	st := MemberStats{Wins: 3, Losses: 1, Participation: 4, Rating: 3.54}

	assert.Equal(t, "4 일", f.Highlight(SortByGames, st))
	assert.Equal(t, "75%", f.Highlight(SortByWinRate, st))
	assert.Equal(t, "3 승", f.Highlight(SortByWins, st))
	assert.Equal(t, "3.54 (고급)", f.Highlight(SortByRating, st))
}

func TestFormatter_MemberRows(t *testing.T) {
	f := NewFormatter(language.Korean)
	last := day(2024, 1, 20)
	members := []club.Member{{ID: "a", Name: "Ara"}, {ID: "b", Name: "Bora"}, {ID: "c", Name: "Chae"}, {ID: "d", Name: "Dana"}}
	statsByID := map[string]MemberStats{
		"a": {Rating: 3.0, AbsentThisMonth: true},
		"b": {Rating: 4.6, Wins: 9, Losses: 1, LastAttendance: &last},
		"c": {Rating: 3.0},
		"d": {Rating: 1.0},
	}

	rows := f.MemberRows(members, statsByID, SortByName)
	require.Len(t, rows, 4)

	assert.Equal(t, 1, rows[0].Position)
	assert.Equal(t, 2, rows[0].Rating.Rank)
	assert.True(t, rows[0].Absent)
	assert.Equal(t, "미참석", rows[0].LastAttendance)

	assert.Equal(t, 1, rows[1].Rating.Rank)
	assert.Equal(t, "01/20(토)", rows[1].LastAttendance)
	assert.Equal(t, "90%(9승/1패)", rows[1].WinRecord)

	assert.Equal(t, 2, rows[2].Rating.Rank)
	assert.Equal(t, 4, rows[3].Rating.Rank)
}

func TestFormatter_ResultRows(t *testing.T) {
	f := NewFormatter(language.Korean)
	members := []club.Member{{ID: "m1", Name: "Ara"}}
	courts := []club.Court{{ID: "c1", Name: "North"}}
	results := []club.GameResult{
		result("m1", "c1", day(2024, 1, 5), 3, 1),
		result("gone", "removed", day(2024, 1, 4), 0, 2),
	}

	rows := f.ResultRows(results, members, courts)
	require.Len(t, rows, 2)
	assert.Equal(t, ResultRow{
		MemberID:  "m1",
		CourtID:   "c1",
		GameDate:  "2024-01-05",
		Wins:      3,
		Losses:    1,
		Date:      "01/05(금)",
		WinRecord: "75%(3승/1패)",
		Member:    "Ara",
		Court:     "North",
	}, rows[0])
	assert.Equal(t, "-", rows[1].Member)
	assert.Equal(t, "-", rows[1].Court)
}

func TestFormatter_RatingExplanation(t *testing.T) {
	ko := NewFormatter(language.Korean).RatingExplanation()
	assert.True(t, strings.HasPrefix(ko, "DUPR 점수 산정 로직"))
	assert.Contains(t, ko, "• 90-100%: 4.5-5.0")
	assert.Contains(t, ko, "전문가 (4.0+)")

	en := NewFormatter(language.English).RatingExplanation()
	assert.Contains(t, en, "Participation bonus: 0.01 per recorded result, at most 0.2")
	assert.Contains(t, en, "Expert (4.0+)")
}
