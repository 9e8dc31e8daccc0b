// Package textpos converts between flat rune offsets and the (line, column)
// positions editors exchange, where columns count UTF-16 code units.
package textpos

import (
	"sort"
	"unicode/utf16"
)

// Position is a zero-based line/column pair. Character counts UTF-16 code
// units, not runes, to match the editor wire format.
type Position struct {
	Line      uint32
	Character uint32
}

// Range is a half-open [Start, End) span of positions.
type Range struct {
	Start Position
	End   Position
}

// LineIndex is a pre-built index of line start offsets for O(log n) position
// conversion. lineStarts[0] is always 0; each later entry is the offset just
// after a '\n'.
type LineIndex struct {
	lineStarts []int
}

// NewLineIndex scans source once and records every line start.
func NewLineIndex(source []rune) *LineIndex {
	lineStarts := []int{0}
	for idx, r := range source {
		if r == '\n' {
			lineStarts = append(lineStarts, idx+1)
		}
	}
	return &LineIndex{lineStarts: lineStarts}
}

// LineCount returns the number of lines in the indexed source.
func (x *LineIndex) LineCount() int {
	return len(x.lineStarts)
}

// PositionFor converts a rune offset to a Position. The column is the sum of
// UTF-16 unit widths from the line start up to offset.
func (x *LineIndex) PositionFor(source []rune, offset int) Position {
	// Greatest line whose start is <= offset.
	line := sort.Search(len(x.lineStarts), func(i int) bool {
		return x.lineStarts[i] > offset
	}) - 1
	if line < 0 {
		line = 0
	}

	lineStart := x.lineStarts[line]
	end := min(offset, len(source))

	cols := 0
	for _, r := range source[lineStart:end] {
		cols += utf16Width(r)
	}

	return Position{Line: uint32(line), Character: uint32(cols)}
}

// RangeFor converts a half-open rune-offset span to a position Range.
func (x *LineIndex) RangeFor(source []rune, start, end int) Range {
	return Range{
		Start: x.PositionFor(source, start),
		End:   x.PositionFor(source, end),
	}
}

// OffsetFor converts a Position back to a rune offset. Total by design:
// a line past the document clamps to the last offset, a column past the line
// clamps to the line end including its terminator. Requests may legitimately
// race a document replacement.
func (x *LineIndex) OffsetFor(source []rune, pos Position) int {
	line := int(pos.Line)
	if line >= len(x.lineStarts) {
		return max(len(source)-1, 0)
	}

	lineStart := x.lineStarts[line]
	lineEnd := len(source)
	if line+1 < len(x.lineStarts) {
		lineEnd = x.lineStarts[line+1]
	}

	target := int(pos.Character)
	if target > lineEnd-lineStart {
		return lineEnd
	}
	return lineStart + target
}

// OutOfBounds reports whether pos refers past the indexed source: an unknown
// line, or a column beyond the line's content length (trailing '\n' excluded).
// Guards position requests racing a concurrent document replacement.
func (x *LineIndex) OutOfBounds(source []rune, pos Position) bool {
	line := int(pos.Line)
	if line >= len(x.lineStarts) {
		return true
	}

	lineStart := x.lineStarts[line]
	lineEnd := len(source)
	if line+1 < len(x.lineStarts) {
		lineEnd = x.lineStarts[line+1]
	}

	lineLen := lineEnd - lineStart
	if lineLen > 0 && lineEnd-1 < len(source) && source[lineEnd-1] == '\n' {
		lineLen--
	}
	return int(pos.Character) > lineLen
}

func utf16Width(r rune) int {
	if utf16.RuneLen(r) == 2 {
		return 2
	}
	return 1
}
