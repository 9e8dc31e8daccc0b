// Package tokenize splits rune sequences into maximal word-character runs.
package tokenize

import (
	"iter"
	"unicode"
)

// Word is a single token: its runes plus the half-open [Start, End) rune
// offsets it spans in the source.
type Word struct {
	Runes []rune
	Start int
	End   int
}

// IsWordChar reports whether r belongs to a word. Alphanumerics count, plus
// the Polish diacritics in both cases.
func IsWordChar(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	switch r {
	case 'ą', 'ć', 'ę', 'ł', 'ń', 'ó', 'ś', 'ź', 'ż',
		'Ą', 'Ć', 'Ę', 'Ł', 'Ń', 'Ó', 'Ś', 'Ź', 'Ż':
		return true
	}
	return false
}

// Scan yields each word in source left to right. Non-word runs are skipped;
// no empty words are produced. The sequence is restartable.
func Scan(source []rune) iter.Seq[Word] {
	return func(yield func(Word) bool) {
		i := 0
		for i < len(source) {
			if !IsWordChar(source[i]) {
				i++
				continue
			}
			start := i
			for i < len(source) && IsWordChar(source[i]) {
				i++
			}
			w := Word{Runes: source[start:i], Start: start, End: i}
			if !yield(w) {
				return
			}
		}
	}
}

// Words collects every word in source into a slice.
func Words(source []rune) []Word {
	var words []Word
	for w := range Scan(source) {
		words = append(words, w)
	}
	return words
}

// WordAt returns the boundaries of the word containing or touching the given
// rune offset, scanning backward for the start and forward for the end.
// Returns start == end when no word is there.
func WordAt(source []rune, offset int) (start, end int) {
	start = min(offset, len(source))
	end = start
	for start > 0 && IsWordChar(source[start-1]) {
		start--
	}
	for end < len(source) && IsWordChar(source[end]) {
		end++
	}
	return start, end
}

// PrefixStart returns the start offset of the word run ending at cursor,
// used to extract the partially typed word for completion.
func PrefixStart(source []rune, cursor int) int {
	start := min(cursor, len(source))
	for start > 0 && IsWordChar(source[start-1]) {
		start--
	}
	return start
}
