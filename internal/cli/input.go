// Package cli handles cmd line input for DBG and testing the dictionary and
// ranking without an editor attached.
package cli

import (
	"bufio"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/kaarrot/polski-ls/internal/logger"
	"github.com/kaarrot/polski-ls/pkg/dictionary"
	"github.com/kaarrot/polski-ls/pkg/suggest"
)

// InputHandler reads words from stdin and prints spell-check verdicts with
// ranked suggestions.
type InputHandler struct {
	dict         *dictionary.Store
	log          *log.Logger
	suggestLimit int
	minLength    int
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(dict *dictionary.Store, minLength, limit int) *InputHandler {
	return &InputHandler{
		dict:         dict,
		log:          logger.NewWithConfig("cli", log.GetLevel(), false, false, log.TextFormatter),
		suggestLimit: limit,
		minLength:    minLength,
	}
}

// Start begins the interface loop. It continuously reads a line from stdin
// and passes the trimmed input to handleInput(). Terminates on read error or
// EOF.
func (h *InputHandler) Start() error {
	h.log.Print("polski-ls CLI")
	h.log.Print("type a word and press Enter to check it (Ctrl+C to exit):")
	reader := bufio.NewReader(os.Stdin)

	for {
		h.log.Print("> ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		h.handleInput(input)
	}
}

// handleInput checks a single word and prints ranked suggestions when it is
// unknown.
func (h *InputHandler) handleInput(input string) {
	h.requestCount++
	word := []rune(input)

	if len(word) < h.minLength {
		h.log.Errorf("Word too short: %s", input)
		return
	}

	if h.dict.Contains(word) {
		h.log.Printf("'%s' is in the dictionary", input)
		return
	}

	start := time.Now()
	matches := h.dict.FuzzyMatch(word, suggest.MaxEditDistance(len(word)), 200)
	ranked := suggest.Rank(word, matches)
	elapsed := time.Since(start)

	h.log.Debugf("Took [ %v ] for '%s'", elapsed, input)

	if len(ranked) == 0 {
		h.log.Warnf("'%s' is unknown, no suggestions found", input)
		return
	}

	if len(ranked) > h.suggestLimit {
		ranked = ranked[:h.suggestLimit]
	}

	h.log.Printf("'%s' is unknown, %d suggestions:", input, len(ranked))
	for i, s := range ranked {
		h.log.Printf("%2d. %-30s (score: %6.1f)", i+1, s.Word, s.Score)
	}
}
