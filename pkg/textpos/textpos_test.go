package textpos

import "testing"

func TestOffsetForSingleLine(t *testing.T) {
	source := []rune("hello world")
	index := NewLineIndex(source)

	got := index.OffsetFor(source, Position{Line: 0, Character: 6})
	if got != 6 {
		t.Errorf("expected offset 6, got %d", got)
	}
}

func TestOffsetForMultipleLines(t *testing.T) {
	source := []rune("hello\nworld\ntest")
	index := NewLineIndex(source)

	// Line 1, char 2 -> offset 8 (after "hello\nwo")
	got := index.OffsetFor(source, Position{Line: 1, Character: 2})
	if got != 8 {
		t.Errorf("expected offset 8, got %d", got)
	}
}

func TestPositionFor(t *testing.T) {
	source := []rune("hello\nworld")
	index := NewLineIndex(source)

	pos := index.PositionFor(source, 8)
	if pos.Line != 1 || pos.Character != 2 {
		t.Errorf("expected 1:2, got %d:%d", pos.Line, pos.Character)
	}
}

func TestPositionForLineStart(t *testing.T) {
	source := []rune("ab\ncd")
	index := NewLineIndex(source)

	pos := index.PositionFor(source, 3)
	if pos.Line != 1 || pos.Character != 0 {
		t.Errorf("expected 1:0, got %d:%d", pos.Line, pos.Character)
	}
}

func TestPositionForUTF16Width(t *testing.T) {
	// The emoji occupies two UTF-16 units, so 'x' at rune offset 1 sits at
	// column 2 on the wire.
	source := []rune("\U0001F600x")
	index := NewLineIndex(source)

	pos := index.PositionFor(source, 1)
	if pos.Character != 2 {
		t.Errorf("expected column 2 after surrogate pair, got %d", pos.Character)
	}
}

func TestRangeFor(t *testing.T) {
	source := []rune("ala\nma kota")
	index := NewLineIndex(source)

	r := index.RangeFor(source, 7, 11) // "kota"
	if r.Start.Line != 1 || r.Start.Character != 3 {
		t.Errorf("unexpected start: %+v", r.Start)
	}
	if r.End.Line != 1 || r.End.Character != 7 {
		t.Errorf("unexpected end: %+v", r.End)
	}
}

func TestOffsetForClampsMissingLine(t *testing.T) {
	source := []rune("hello")
	index := NewLineIndex(source)

	got := index.OffsetFor(source, Position{Line: 9, Character: 0})
	if got != 4 {
		t.Errorf("expected last offset 4, got %d", got)
	}
}

func TestOffsetForClampsLongColumn(t *testing.T) {
	source := []rune("ab\ncd")
	index := NewLineIndex(source)

	// Column past end of line 0 clamps to the line end including '\n'.
	got := index.OffsetFor(source, Position{Line: 0, Character: 80})
	if got != 3 {
		t.Errorf("expected clamp to 3, got %d", got)
	}
}

func TestRoundTripWithinLine(t *testing.T) {
	source := []rune("dzień\ndobry\nświat")
	index := NewLineIndex(source)

	for offset := range source {
		pos := index.PositionFor(source, offset)
		if index.OutOfBounds(source, pos) {
			continue // clamped positions are not required to round-trip
		}
		if got := index.OffsetFor(source, pos); got != offset {
			t.Errorf("offset %d round-tripped to %d via %d:%d", offset, got, pos.Line, pos.Character)
		}
	}
}

func TestOutOfBounds(t *testing.T) {
	source := []rune("ab\ncd\n")
	index := NewLineIndex(source)

	cases := []struct {
		pos  Position
		want bool
	}{
		{Position{Line: 0, Character: 0}, false},
		{Position{Line: 0, Character: 2}, false}, // at line end, '\n' excluded
		{Position{Line: 0, Character: 3}, true},
		{Position{Line: 1, Character: 2}, false},
		{Position{Line: 5, Character: 0}, true},
	}
	for _, tc := range cases {
		if got := index.OutOfBounds(source, tc.pos); got != tc.want {
			t.Errorf("OutOfBounds(%d:%d) = %v, want %v", tc.pos.Line, tc.pos.Character, got, tc.want)
		}
	}
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument("ala\nma\nkota")
	if len(doc.Source) != 11 {
		t.Fatalf("expected 11 runes, got %d", len(doc.Source))
	}
	if doc.Index.LineCount() != 3 {
		t.Errorf("expected 3 lines, got %d", doc.Index.LineCount())
	}
}
