package stats

import (
	"fmt"
	"strings"
)

type band struct {
	from, to  int
	low, high float64
}

var bands = []band{
	{90, 100, 4.5, 5.0},
	{80, 90, 3.5, 4.5},
	{70, 80, 2.5, 3.5},
	{60, 70, 1.5, 2.5},
	{50, 60, 0.5, 1.5},
	{0, 50, 0, 0.5},
}

var tierFloors = []struct {
	tier  Tier
	floor float64
}{
	{TierExpert, 4.0},
	{TierAdvanced, 3.0},
	{TierIntermediate, 2.0},
	{TierBeginner, 1.0},
	{TierNovice, 0},
}

// RatingExplanation describes how ratings and tiers are derived.
func (f *Formatter) RatingExplanation() string {
	ko := f.isKorean()
	var b strings.Builder

	if ko {
		b.WriteString("DUPR 점수 산정 로직\n\n기본 점수:\n")
	} else {
		b.WriteString("Rating calculation\n\nBase score by win rate:\n")
	}
	for _, bd := range bands {
		fmt.Fprintf(&b, "• %d-%d%%: %.1f-%.1f\n", bd.from, bd.to, bd.low, bd.high)
	}

	if ko {
		b.WriteString("\n등급:\n")
	} else {
		b.WriteString("\nTiers:\n")
	}
	for _, t := range tierFloors {
		fmt.Fprintf(&b, "• %s (%.1f+)\n", f.TierLabel(t.tier), t.floor)
	}

	if ko {
		fmt.Fprintf(&b, "\n참여도 보정: 경기 결과 기록 1회당 %.2f점, 최대 %.1f점\n", bonusPerResult, maxBonus)
		fmt.Fprintf(&b, "DUPR = 기본점수 + 참여도보정 (최대 %.1f), 소수점 둘째자리까지 반올림\n", MaxRating)
	} else {
		fmt.Fprintf(&b, "\nParticipation bonus: %.2f per recorded result, at most %.1f\n", bonusPerResult, maxBonus)
		fmt.Fprintf(&b, "Rating = base + bonus, at most %.1f, rounded to two decimals\n", MaxRating)
	}
	return b.String()
}
