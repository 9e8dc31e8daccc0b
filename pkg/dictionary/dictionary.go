// Package dictionary holds the word list and answers exact and fuzzy lookups
// against it.
package dictionary

import (
	"sort"

	charmlog "github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/kaarrot/polski-ls/internal/logger"
	"github.com/kaarrot/polski-ls/internal/utils"
	"github.com/kaarrot/polski-ls/pkg/fuzzy"
)

// Match is a single fuzzy match result.
type Match struct {
	Word     []rune
	Distance uint8
	Common   bool
}

// Dictionary is the minimal lookup surface the session layer depends on.
// A trie or BK-tree backed store can replace Store behind it without touching
// callers.
type Dictionary interface {
	// Contains checks if a word exists in the dictionary (case-insensitive).
	Contains(word []rune) bool

	// FuzzyMatch finds words within maxDistance edits of query, sorted by
	// distance ascending then common-first, truncated to maxResults.
	FuzzyMatch(query []rune, maxDistance uint8, maxResults int) []Match
}

type entry struct {
	runes  []rune
	common bool
}

// Store is the in-memory dictionary: an insertion-ordered word list plus a
// case-folded patricia index for exact lookups. Mutations must be serialized
// by the caller against concurrent reads.
type Store struct {
	words    []entry
	index    *patricia.Trie
	userPath string
	log      *charmlog.Logger
}

// NewStore creates an empty dictionary.
func NewStore() *Store {
	return &Store{
		index: patricia.NewTrie(),
		log:   logger.New("dict"),
	}
}

// Len returns the number of stored words.
func (s *Store) Len() int {
	return len(s.words)
}

// Contains reports whether word is in the dictionary, ignoring case.
func (s *Store) Contains(word []rune) bool {
	if len(word) == 0 {
		return false
	}
	return s.index.Get(patricia.Prefix(utils.Fold(word))) != nil
}

// AddWord appends a word unless it is already present (case-insensitive).
// Returns whether the store changed.
func (s *Store) AddWord(word string, common bool) bool {
	runes := []rune(word)
	if len(runes) == 0 || s.Contains(runes) {
		return false
	}
	s.words = append(s.words, entry{runes: runes, common: common})
	s.index.Insert(patricia.Prefix(utils.Fold(runes)), len(s.words))
	return true
}

// FuzzyMatch scans every entry and keeps those within maxDistance edits of
// query. Brute force over the whole list; fine at tens of thousands of words,
// the scalability ceiling lives here.
func (s *Store) FuzzyMatch(query []rune, maxDistance uint8, maxResults int) []Match {
	var results []Match
	for _, e := range s.words {
		distance := fuzzy.Distance(query, e.runes)
		if distance <= maxDistance {
			results = append(results, Match{
				Word:     e.runes,
				Distance: distance,
				Common:   e.common,
			})
		}
	}

	// Stable keeps store order for full ties.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Distance != results[j].Distance {
			return results[i].Distance < results[j].Distance
		}
		return results[i].Common && !results[j].Common
	})

	if maxResults >= 0 && len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}
