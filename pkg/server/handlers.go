package server

import (
	"fmt"
	"time"

	"github.com/kaarrot/polski-ls/internal/utils"
	"github.com/kaarrot/polski-ls/pkg/suggest"
	"github.com/kaarrot/polski-ls/pkg/textpos"
	"github.com/kaarrot/polski-ls/pkg/tokenize"
)

const (
	diagnosticSource = "polski-ls"
	severityHint     = "hint"
	kindQuickFix     = "quickfix"

	// Words shorter than this are never flagged; too many false positives.
	minDiagnosticLen = 3
)

// diagnosticsFor flags every unknown word in the snapshot. Purely-numeric
// and very short words are skipped.
func (s *Server) diagnosticsFor(id, uri string, doc *textpos.Document) DiagnosticsNote {
	s.dictMu.RLock()
	defer s.dictMu.RUnlock()

	diagnostics := []Diagnostic{}
	for word := range tokenize.Scan(doc.Source) {
		if len(word.Runes) < minDiagnosticLen {
			continue
		}
		if utils.AllDigits(word.Runes) {
			continue
		}
		if s.dict.Contains(word.Runes) {
			continue
		}

		diagnostics = append(diagnostics, Diagnostic{
			Range:    wireRange(doc.Index.RangeFor(doc.Source, word.Start, word.End)),
			Severity: severityHint,
			Source:   diagnosticSource,
			Message:  fmt.Sprintf("Unknown word: '%s'", string(word.Runes)),
		})
	}

	s.log.Debugf("%d diagnostics for %s", len(diagnostics), uri)
	return DiagnosticsNote{
		ID:          id,
		URI:         uri,
		Diagnostics: diagnostics,
		Count:       len(diagnostics),
	}
}

// completionFor ranks fuzzy matches for the partially typed word ending at
// the cursor. Unknown documents, stale positions and short prefixes all yield
// an empty list, never an error.
func (s *Server) completionFor(request Request) CompletionResponse {
	empty := CompletionResponse{ID: request.ID, Items: []CompletionItem{}}

	doc, ok := s.document(request.URI)
	if !ok {
		return empty
	}

	pos := textpos.Position{Line: request.Line, Character: request.Character}

	// The position may race a document replacement (completion arriving
	// before the matching change). Stale requests get nothing.
	if doc.Index.OutOfBounds(doc.Source, pos) {
		return empty
	}

	cursor := doc.Index.OffsetFor(doc.Source, pos)
	start := tokenize.PrefixStart(doc.Source, cursor)
	prefix := doc.Source[start:cursor]

	if len(prefix) < s.cfg.Server.MinPrefix {
		return empty
	}

	began := time.Now()

	maxDistance := suggest.MaxEditDistance(len(prefix))
	s.dictMu.RLock()
	matches := s.dict.FuzzyMatch(prefix, maxDistance, s.cfg.Server.MaxCandidates)
	s.dictMu.RUnlock()

	ranked := suggest.Rank(prefix, matches)
	if len(ranked) > s.cfg.Server.MaxResults {
		ranked = ranked[:s.cfg.Server.MaxResults]
	}

	wordRange := Range{
		Start: wirePosition(doc.Index.PositionFor(doc.Source, start)),
		End:   Position{Line: request.Line, Character: request.Character},
	}

	items := make([]CompletionItem, len(ranked))
	for i, sug := range ranked {
		items[i] = CompletionItem{
			Label:      sug.Word,
			NewText:    sug.Word,
			Range:      wordRange,
			FilterText: string(prefix),
			SortText:   fmt.Sprintf("%05d", i+1),
		}
	}

	return CompletionResponse{
		ID:        request.ID,
		Items:     items,
		Count:     len(items),
		TimeTaken: time.Since(began).Milliseconds(),
	}
}

// actionsFor offers quick fixes for the unknown word under the cursor: adding
// it to the dictionary, then up to MaxActions replacements in match order.
func (s *Server) actionsFor(request Request) ActionsResponse {
	empty := ActionsResponse{ID: request.ID, Actions: []CodeAction{}}

	doc, ok := s.document(request.URI)
	if !ok {
		return empty
	}

	pos := textpos.Position{Line: request.Line, Character: request.Character}
	cursor := doc.Index.OffsetFor(doc.Source, pos)

	start, end := tokenize.WordAt(doc.Source, cursor)
	if start == end {
		return empty
	}
	word := doc.Source[start:end]
	wordString := string(word)

	s.dictMu.RLock()
	defer s.dictMu.RUnlock()

	if s.dict.Contains(word) {
		return empty
	}

	maxDistance := suggest.MaxEditDistance(len(word))
	matches := s.dict.FuzzyMatch(word, maxDistance, s.cfg.Server.MaxActions)

	wordRange := wireRange(doc.Index.RangeFor(doc.Source, start, end))

	actions := []CodeAction{{
		Title:   fmt.Sprintf("Add '%s' to dictionary", wordString),
		Kind:    kindQuickFix,
		Command: CmdAddToDictionary,
		Word:    wordString,
		Range:   wordRange,
	}}

	for _, m := range matches {
		replacement := suggest.TransferCase(word, string(m.Word))
		actions = append(actions, CodeAction{
			Title:   fmt.Sprintf("Change to '%s'", replacement),
			Kind:    kindQuickFix,
			NewText: replacement,
			Range:   wordRange,
		})
	}

	return ActionsResponse{
		ID:      request.ID,
		Actions: actions,
		Count:   len(actions),
	}
}

func wirePosition(p textpos.Position) Position {
	return Position{Line: p.Line, Character: p.Character}
}

func wireRange(r textpos.Range) Range {
	return Range{Start: wirePosition(r.Start), End: wirePosition(r.End)}
}
