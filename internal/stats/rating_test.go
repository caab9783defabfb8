package stats

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestRating(t *testing.T) {
	tests := []struct {
		name                        string
		wins, losses, participation int
		want                        float64
	}{
		{"no participation", 5, 5, 0, 0},
		{"no games", 0, 0, 3, 0},
		{"ninety percent", 9, 1, 10, 4.60},
		{"fifty percent band floor", 1, 1, 2, 0.52},
		{"below fifty", 1, 3, 1, 0.26},
		{"eighty percent", 4, 1, 5, 3.55},
		{"bonus capped", 0, 1000, 1000, 0.2},
		{"perfect record clamps to max", 10, 0, 1000, MaxRating},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Rating(tt.wins, tt.losses, tt.participation), 1e-9)
		})
	}
}

func TestWinRate(t *testing.T) {
	assert.Equal(t, 0.0, WinRate(0, 0))
	assert.Equal(t, 0.75, WinRate(3, 1))
	assert.Equal(t, 0.0, WinRate(-2, -1))
	assert.Equal(t, 67, WinPercent(2, 1))
}

func TestTierFor(t *testing.T) {
	assert.Equal(t, TierExpert, TierFor(4.0))
	assert.Equal(t, TierAdvanced, TierFor(3.99))
	assert.Equal(t, TierIntermediate, TierFor(2.0))
	assert.Equal(t, TierBeginner, TierFor(1.0))
	assert.Equal(t, TierNovice, TierFor(0.99))

	data, err := json.Marshal(TierIntermediate)
	require.NoError(t, err)
	assert.Equal(t, `"intermediate"`, string(data))

	var tier Tier
	require.NoError(t, json.Unmarshal([]byte(`"expert"`), &tier))
	assert.Equal(t, TierExpert, tier)
	assert.Error(t, json.Unmarshal([]byte(`"grandmaster"`), &tier))
}

func TestRatingProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		wins := rapid.IntRange(0, 500).Draw(t, "wins")
		losses := rapid.IntRange(0, 500).Draw(t, "losses")
		participation := rapid.IntRange(0, 2000).Draw(t, "participation")

		r := Rating(wins, losses, participation)
		if r < 0 || r > MaxRating {
			t.Fatalf("rating %v out of range for %d/%d/%d", r, wins, losses, participation)
		}
		if participation == 0 && r != 0 {
			t.Fatalf("rating %v without participation", r)
		}
		if participation > 0 && wins+losses > 0 {
			if next := Rating(wins+1, losses, participation); next < r {
				t.Fatalf("extra win lowered rating: %v -> %v", r, next)
			}
		}
	})
}
