// Package suggest scores and orders fuzzy matches for presentation.
package suggest

import (
	"sort"
	"unicode"

	"github.com/kaarrot/polski-ls/internal/utils"
	"github.com/kaarrot/polski-ls/pkg/dictionary"
)

// Suggestion is a ranked completion candidate with its capitalization already
// adjusted to the query.
type Suggestion struct {
	Word  string
	Score float64
}

// Score rates a fuzzy match for ranking. Base 100, minus a distance penalty,
// plus first-letter and common-prefix bonuses and a flat common-word bonus.
func Score(query, candidate []rune, distance uint8, common bool) float64 {
	score := 100.0

	switch distance {
	case 0:
	case 1:
		score -= 20.0
	case 2:
		score -= 50.0
	default:
		score -= 100.0
	}

	// Skipped entirely when either side is empty.
	if len(query) > 0 && len(candidate) > 0 {
		if utils.FoldEqual(query[0], candidate[0]) {
			score += 50.0
		} else {
			score -= 30.0
		}
	}

	// Counted only up to the first mismatch.
	prefixLen := 0
	for prefixLen < len(query) && prefixLen < len(candidate) &&
		utils.FoldEqual(query[prefixLen], candidate[prefixLen]) {
		prefixLen++
	}
	score += float64(prefixLen) * 8.0

	if common {
		score += 35.0
	}

	return score
}

// TransferCase uppercases the first rune of suggestion when the original
// starts uppercase, leaving the rest unchanged.
func TransferCase(original []rune, suggestion string) string {
	if len(original) == 0 || !unicode.IsUpper(original[0]) {
		return suggestion
	}
	runes := []rune(suggestion)
	if len(runes) == 0 {
		return suggestion
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Rank scores every match against the query and sorts descending. The sort is
// stable: exact score ties keep the input order, so the matcher's
// (distance, commonality) order decides them.
func Rank(query []rune, matches []dictionary.Match) []Suggestion {
	suggestions := make([]Suggestion, 0, len(matches))
	for _, m := range matches {
		suggestions = append(suggestions, Suggestion{
			Word:  TransferCase(query, string(m.Word)),
			Score: Score(query, m.Word, m.Distance, m.Common),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	return suggestions
}

// MaxEditDistance is the fixed distance budget: short queries tolerate a
// single edit, longer ones two.
func MaxEditDistance(queryLen int) uint8 {
	if queryLen <= 3 {
		return 1
	}
	return 2
}
