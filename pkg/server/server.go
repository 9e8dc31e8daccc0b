package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/kaarrot/polski-ls/internal/logger"
	"github.com/kaarrot/polski-ls/pkg/config"
	"github.com/kaarrot/polski-ls/pkg/dictionary"
	"github.com/kaarrot/polski-ls/pkg/textpos"
)

// Server handles the IPC session: open documents, the shared dictionary and
// the request loop. Documents and dictionary each sit behind their own
// RWMutex; reads run in parallel, mutations take the write lock.
type Server struct {
	cfg *config.Config
	log *log.Logger

	dictMu sync.RWMutex
	dict   *dictionary.Store

	docsMu sync.RWMutex
	docs   map[string]*textpos.Document

	dec *msgpack.Decoder
	out *bufio.Writer

	writeMu sync.Mutex
}

// NewServer creates a session server using stdin/stdout for IPC.
func NewServer(dict *dictionary.Store, cfg *config.Config) *Server {
	return NewServerIO(dict, cfg, os.Stdin, os.Stdout)
}

// NewServerIO creates a session server over explicit streams.
func NewServerIO(dict *dictionary.Store, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		cfg:  cfg,
		log:  logger.New("ipc"),
		dict: dict,
		docs: make(map[string]*textpos.Document),
		dec:  msgpack.NewDecoder(bufio.NewReader(r)),
		out:  bufio.NewWriter(w),
	}
}

// Start begins the request loop. Returns nil on clean EOF.
func (s *Server) Start() error {
	s.log.Debug("Starting server loop")

	s.send(AckResponse{Status: "ready"})

	for {
		var request Request
		if err := s.dec.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches an incoming request by method.
func (s *Server) handleRequest(request Request) {
	s.log.Debug("request", "id", request.ID, "method", request.Method)

	switch request.Method {
	case "open", "change":
		s.send(s.applySync(request))
	case "close":
		s.closeDocument(request.URI)
		s.send(AckResponse{ID: request.ID, Status: "ok"})
	case "complete":
		s.send(s.completionFor(request))
	case "actions":
		s.send(s.actionsFor(request))
	case "add_word":
		s.handleAddWord(request)
	case "health":
		s.send(AckResponse{ID: request.ID, Status: "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown method: %s", request.Method), 400)
	}
}

// applySync builds a fresh snapshot from the full text and swaps it in, then
// reports diagnostics for it. The snapshot is complete before publication, so
// readers never see a line index paired with mismatched content.
func (s *Server) applySync(request Request) DiagnosticsNote {
	doc := textpos.NewDocument(request.Text)

	s.docsMu.Lock()
	s.docs[request.URI] = doc
	s.docsMu.Unlock()

	return s.diagnosticsFor(request.ID, request.URI, doc)
}

func (s *Server) closeDocument(uri string) {
	s.docsMu.Lock()
	delete(s.docs, uri)
	s.docsMu.Unlock()
}

func (s *Server) document(uri string) (*textpos.Document, bool) {
	s.docsMu.RLock()
	defer s.docsMu.RUnlock()
	doc, ok := s.docs[uri]
	return doc, ok
}

func (s *Server) handleAddWord(request Request) {
	if request.Word == "" {
		s.sendError(request.ID, "Missing 'w' parameter", 400)
		return
	}

	s.dictMu.Lock()
	err := s.dict.AddUserWord(request.Word)
	s.dictMu.Unlock()

	if err != nil {
		// The in-memory dictionary is updated regardless; only persistence
		// failed, so the session stays correct.
		s.log.Errorf("Persisting %q: %v", request.Word, err)
		s.send(AckResponse{ID: request.ID, Status: "error", Error: err.Error()})
	} else {
		s.send(AckResponse{ID: request.ID, Status: "ok"})
	}

	// Refresh diagnostics so the word stops being flagged.
	if doc, ok := s.document(request.URI); ok {
		s.send(s.diagnosticsFor(request.ID, request.URI, doc))
	}
}

// send marshals the response and writes it to the client.
func (s *Server) send(response any) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	data, err := msgpack.Marshal(response)
	if err != nil {
		s.log.Errorf("Marshaling response: %v", err)
		return
	}
	if _, err := s.out.Write(data); err != nil {
		s.log.Errorf("Writing response: %v", err)
		return
	}
	if err := s.out.Flush(); err != nil {
		s.log.Errorf("Flushing response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
