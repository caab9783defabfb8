package stats

import (
	"sort"
	"strings"

	"github.com/mauv0809/pickle-club/internal/club"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLanguage is the club's display and collation language.
var DefaultLanguage = language.Korean

// SortMode selects how the member table is ordered.
type SortMode string

const (
	SortByName    SortMode = "name"
	SortByRating  SortMode = "rating"
	SortByGames   SortMode = "games"
	SortByWinRate SortMode = "winrate"
	SortByWins    SortMode = "wins"
	SortByAbsence SortMode = "absent"
)

// ParseSortMode maps a selector to a mode. Unknown selectors sort by name.
// "dupr" is accepted as an alias of "rating".
func ParseSortMode(s string) SortMode {
	switch mode := SortMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case SortByName, SortByRating, SortByGames, SortByWinRate, SortByWins, SortByAbsence:
		return mode
	case "dupr":
		return SortByRating
	default:
		return SortByName
	}
}

// Sorter orders members using the collation rules of one language.
type Sorter struct {
	tag language.Tag
}

// NewSorter returns a Sorter collating names in tag.
func NewSorter(tag language.Tag) Sorter {
	return Sorter{tag: tag}
}

// SortMembers orders members with the club's default collation.
func SortMembers(members []club.Member, statsByID map[string]MemberStats, mode SortMode) []club.Member {
	return NewSorter(DefaultLanguage).Members(members, statsByID, mode)
}

// Members returns a sorted copy of members. Numeric modes sort descending.
// Every mode breaks ties by ascending name, and members without stats rank
// as if all their counts were zero.
func (s Sorter) Members(members []club.Member, statsByID map[string]MemberStats, mode SortMode) []club.Member {
	out := make([]club.Member, len(members))
	copy(out, members)

	// Collators keep internal buffers and are not safe for concurrent use.
	col := collate.New(s.tag)
	byName := func(a, b club.Member) bool {
		return col.CompareString(a.Name, b.Name) < 0
	}

	desc := func(a, b float64, ma, mb club.Member) bool {
		if a != b {
			return a > b
		}
		return byName(ma, mb)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		sa, sb := statsByID[a.ID], statsByID[b.ID]
		switch mode {
		case SortByRating:
			return desc(sa.Rating, sb.Rating, a, b)
		case SortByGames:
			return desc(float64(sa.Participation), float64(sb.Participation), a, b)
		case SortByWinRate:
			return desc(WinRate(sa.Wins, sa.Losses), WinRate(sb.Wins, sb.Losses), a, b)
		case SortByWins:
			return desc(float64(sa.Wins), float64(sb.Wins), a, b)
		case SortByAbsence:
			if sa.AbsentThisMonth != sb.AbsentThisMonth {
				return sa.AbsentThisMonth
			}
			return byName(a, b)
		default:
			return byName(a, b)
		}
	})
	return out
}

// SortResults returns a copy of results ordered newest date first, then by
// the row's own win rate, highest first.
func SortResults(results []club.GameResult) []club.GameResult {
	out := make([]club.GameResult, len(results))
	copy(out, results)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.GameDate.Equal(b.GameDate) {
			return a.GameDate.After(b.GameDate)
		}
		return WinRate(a.Wins, a.Losses) > WinRate(b.Wins, b.Losses)
	})
	return out
}
