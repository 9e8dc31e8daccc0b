// Package utils holds small rune, file and TOML helpers shared across packages.
package utils

import "unicode"

// FoldEqual reports whether two runes are equal ignoring case.
func FoldEqual(a, b rune) bool {
	if a == b {
		return true
	}
	return unicode.ToLower(a) == unicode.ToLower(b)
}

// Fold lowercases a rune sequence into a string, used as a case-insensitive
// lookup key.
func Fold(word []rune) string {
	folded := make([]rune, len(word))
	for i, r := range word {
		folded[i] = unicode.ToLower(r)
	}
	return string(folded)
}

// AllDigits reports whether every rune in word is an ASCII digit.
func AllDigits(word []rune) bool {
	for _, r := range word {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(word) > 0
}
