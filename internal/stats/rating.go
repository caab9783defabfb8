package stats

import (
	"fmt"
	"math"
)

// MaxRating is the top of the rating scale.
const MaxRating = 5.0

const (
	bonusPerResult = 0.01
	maxBonus       = 0.2
)

// Rating maps cumulative wins, losses and participation (result rows, not
// games) to a 0-5 score rounded to two decimals.
//
// The win rate selects one of six linear bands. Each band from 50% upward
// spans a tenth of win rate and a full point of score. A participation bonus
// of 0.01 per recorded result, capped at 0.2, is added on top. The sum never
// exceeds MaxRating.
func Rating(wins, losses, participation int) float64 {
	if participation <= 0 || wins+losses <= 0 {
		return 0
	}
	winRate := WinRate(wins, losses)

	var base float64
	switch {
	case winRate >= 0.9:
		base = 4.5 + (winRate-0.9)*5
	case winRate >= 0.8:
		base = 3.5 + (winRate-0.8)*10
	case winRate >= 0.7:
		base = 2.5 + (winRate-0.7)*10
	case winRate >= 0.6:
		base = 1.5 + (winRate-0.6)*10
	case winRate >= 0.5:
		base = 0.5 + (winRate-0.5)*10
	default:
		base = winRate
	}

	return round2(math.Min(base+participationBonus(participation), MaxRating))
}

func participationBonus(participation int) float64 {
	return math.Min(float64(participation)*bonusPerResult, maxBonus)
}

// WinRate is wins/(wins+losses), or 0 when no games were played.
// Negative counts are treated as zero.
func WinRate(wins, losses int) float64 {
	wins, losses = max(wins, 0), max(losses, 0)
	if wins+losses == 0 {
		return 0
	}
	return float64(wins) / float64(wins+losses)
}

// WinPercent is the win rate as a whole percentage.
func WinPercent(wins, losses int) int {
	return int(math.Round(WinRate(wins, losses) * 100))
}

// Tier is a coarse skill band derived from a rating.
type Tier int

const (
	TierNovice Tier = iota
	TierBeginner
	TierIntermediate
	TierAdvanced
	TierExpert
)

var tierKeys = [...]string{"novice", "beginner", "intermediate", "advanced", "expert"}

func (t Tier) String() string {
	if t < TierNovice || t > TierExpert {
		return "unknown"
	}
	return tierKeys[t]
}

func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Tier) UnmarshalText(text []byte) error {
	for i, key := range tierKeys {
		if key == string(text) {
			*t = Tier(i)
			return nil
		}
	}
	return fmt.Errorf("unknown tier %q", text)
}

// TierFor returns the tier of a rating. Thresholds are inclusive lower bounds.
func TierFor(rating float64) Tier {
	switch {
	case rating >= 4.0:
		return TierExpert
	case rating >= 3.0:
		return TierAdvanced
	case rating >= 2.0:
		return TierIntermediate
	case rating >= 1.0:
		return TierBeginner
	default:
		return TierNovice
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
