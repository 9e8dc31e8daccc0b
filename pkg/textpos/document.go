package textpos

// Document pairs a document's full rune content with its line index. Built
// once per edit and never mutated; the session layer swaps whole snapshots so
// readers never see a mismatched pair.
type Document struct {
	Source []rune
	Index  *LineIndex
}

// NewDocument builds a snapshot from the full document text.
func NewDocument(text string) *Document {
	source := []rune(text)
	return &Document{
		Source: source,
		Index:  NewLineIndex(source),
	}
}
