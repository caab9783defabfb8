package club

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
)

const (
	minSuggestionScore = 0.3
	maxSuggestions     = 5
)

// MemberSuggestion is a member whose name resembles a search query.
type MemberSuggestion struct {
	Member     Member   `json:"member"`
	Confidence float64  `json:"confidence"`
	Reasons    []string `json:"reasons"`
}

// MemberFinder looks members up by approximate name.
type MemberFinder struct {
	store ClubStore
	limit int
}

// NewMemberFinder creates a finder that searches up to limit members.
func NewMemberFinder(store ClubStore, limit int) *MemberFinder {
	return &MemberFinder{store: store, limit: limit}
}

// Find returns the members best matching query, highest confidence first.
// An exact (normalized) name match is always ranked first.
func (f *MemberFinder) Find(ctx context.Context, query string) ([]MemberSuggestion, error) {
	q := normalizeName(query)
	if q == "" {
		return []MemberSuggestion{}, nil
	}
	members, err := f.store.FetchMembers(ctx, f.limit)
	if err != nil {
		return nil, err
	}

	suggestions := []MemberSuggestion{}
	for _, m := range members {
		name := normalizeName(m.Name)
		score := nameSimilarity(q, name)
		if score < minSuggestionScore {
			continue
		}
		suggestions = append(suggestions, MemberSuggestion{
			Member:     m,
			Confidence: score,
			Reasons:    matchReasons(q, name),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Confidence > suggestions[j].Confidence
	})
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	log.Debug("Member search", "query", query, "suggestions", len(suggestions))
	return suggestions, nil
}

func normalizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// nameSimilarity averages whole-string, prefix and token similarity.
func nameSimilarity(query, name string) float64 {
	if query == name {
		return 1.0
	}
	scores := []float64{
		stringSimilarity(query, name),
		tokenSimilarity(query, name),
	}
	if strings.Contains(name, query) {
		scores = append(scores, 0.9)
	}
	total := 0.0
	for _, s := range scores {
		total += s
	}
	return total / float64(len(scores))
}

func stringSimilarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	ra, rb := []rune(a), []rune(b)
	maxLen := max(len(ra), len(rb))
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(levenshtein(ra, rb))/float64(maxLen)
}

func tokenSimilarity(a, b string) float64 {
	ta, tb := strings.Fields(a), strings.Fields(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0.0
	}
	matches := 0
	for _, x := range ta {
		for _, y := range tb {
			if stringSimilarity(x, y) > 0.8 {
				matches++
				break
			}
		}
	}
	return float64(matches) / float64(max(len(ta), len(tb)))
}

func levenshtein(a, b []rune) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func matchReasons(query, name string) []string {
	var reasons []string
	switch {
	case query == name:
		reasons = append(reasons, "Exact name match")
	case stringSimilarity(query, name) > 0.8:
		reasons = append(reasons, "Very similar name")
	}
	if query != name && strings.Contains(name, query) {
		reasons = append(reasons, "Name contains query")
	}
	if tokenSimilarity(query, name) > 0.5 {
		reasons = append(reasons, "Matching name components")
	}
	if len(reasons) == 0 {
		reasons = append(reasons, "Partial name similarity")
	}
	return reasons
}
