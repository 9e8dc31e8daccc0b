package dictionary

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kaarrot/polski-ls/internal/utils"
)

// Word-list text format: one entry per line, '#' starts a comment line,
// a leading '*' marks the word as common and is stripped.
const (
	commentMarker = "#"
	commonMarker  = "*"
)

// UserDictFile is the file user-added words are appended to under the config
// dir.
const UserDictFile = "slownik.txt"

// ErrNoUserDict is returned by AddUserWord when no user dictionary path is
// configured. The in-memory add still happened.
var ErrNoUserDict = errors.New("user dictionary path not configured")

//go:embed data/slowa.txt
var embeddedWordList string

// LoadWordList parses word-list text into the store. Load order determines
// insertion order; duplicates are dropped via AddWord.
func (s *Store) LoadWordList(content string) {
	for line := range strings.Lines(content) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, commentMarker) {
			continue
		}
		if word, ok := strings.CutPrefix(trimmed, commonMarker); ok {
			s.AddWord(word, true)
		} else {
			s.AddWord(trimmed, false)
		}
	}
}

// NewEmbedded builds a store from the embedded baseline word list.
func NewEmbedded() *Store {
	s := NewStore()
	s.LoadWordList(embeddedWordList)
	return s
}

// WithUserExtensions builds the baseline store and layers every *.txt file
// from configDir on top, in sorted order. User additions will be appended to
// slownik.txt there.
func WithUserExtensions(configDir string) *Store {
	s := NewEmbedded()
	if configDir == "" {
		s.log.Warn("No config directory; user words will not persist")
		return s
	}

	s.userPath = filepath.Join(configDir, UserDictFile)

	if err := utils.EnsureDir(configDir); err != nil {
		s.log.Warnf("Cannot create config directory %s: %v", configDir, err)
		return s
	}

	entries, err := os.ReadDir(configDir)
	if err != nil {
		s.log.Warnf("Cannot read config directory %s: %v", configDir, err)
		return s
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".txt" {
			files = append(files, filepath.Join(configDir, e.Name()))
		}
	}
	sort.Strings(files)

	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			s.log.Warnf("Skipping user dict %s: %v", path, err)
			continue
		}
		s.log.Debugf("Loading user dict: %s", path)
		s.LoadWordList(string(content))
	}
	return s
}

// AddUserWord adds a word to the in-memory store and appends it to the user
// dictionary file. The in-memory add always takes effect; only persistence
// can fail, and the store stays correct when it does. Adding a word already
// present is a no-op success.
func (s *Store) AddUserWord(word string) error {
	if !s.AddWord(word, false) {
		s.log.Debugf("Word %q already in dictionary", word)
		return nil
	}

	if s.userPath == "" {
		return ErrNoUserDict
	}

	if err := utils.EnsureDir(filepath.Dir(s.userPath)); err != nil {
		return fmt.Errorf("creating user dict directory: %w", err)
	}

	file, err := os.OpenFile(s.userPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening user dict %s: %w", s.userPath, err)
	}
	defer file.Close()

	if _, err := fmt.Fprintln(file, word); err != nil {
		return fmt.Errorf("writing user dict %s: %w", s.userPath, err)
	}

	s.log.Debugf("Saved %q to %s", word, s.userPath)
	return nil
}

// SetUserDictPath overrides the persistence target, mainly for tests.
func (s *Store) SetUserDictPath(path string) {
	s.userPath = path
}
