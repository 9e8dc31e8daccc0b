// Package fuzzy implements the bounded edit distance used for dictionary
// matching.
package fuzzy

import "github.com/kaarrot/polski-ls/internal/utils"

// MaxDistance is the saturation cap for Distance. Dictionary words are far
// shorter than this; values at or above the cap are indistinguishable.
const MaxDistance uint8 = 255

// Distance returns the Levenshtein edit distance between two rune sequences,
// saturating at MaxDistance. Substitution costs 0 when the runes case-fold
// equal, insertions and deletions always cost 1.
//
// Classic dynamic program with two rolling rows: O(len(a)*len(b)) time,
// O(min length) extra space.
func Distance(a, b []rune) uint8 {
	// Rows span the shorter sequence. Costs are symmetric, so swapping the
	// arguments never changes the distance.
	if len(b) > len(a) {
		a, b = b, a
	}

	m, n := len(a), len(b)

	if m == 0 {
		return clamp(n)
	}
	if n == 0 {
		return clamp(m)
	}

	prev := make([]int, n+1)
	curr := make([]int, n+1)
	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 1
			if utils.FoldEqual(a[i-1], b[j-1]) {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return clamp(prev[n])
}

func clamp(d int) uint8 {
	if d > int(MaxDistance) {
		return MaxDistance
	}
	return uint8(d)
}
