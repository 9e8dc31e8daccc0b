/*
Package server implements msgpack IPC for the Polish spell-check and
completion engine.

The protocol is a request/response loop over stdin/stdout using binary
msgpack encoding. Each request carries an ID and a method name; document
sync methods ("open", "change", "close") reply with diagnostics for the new
snapshot, while "complete", "actions" and "add_word" query the engine.

A completion request looks like:

	{"id": "req_001", "m": "complete", "uri": "file:///list.txt", "ln": 0, "col": 7}

and is answered with ranked suggestions:

	{"id": "req_001", "s": [{"w": "dzień", ...}, {"w": "dziś", ...}], "c": 2, "t": 0}

Positions on the wire are zero-based (line, column) pairs with columns in
UTF-16 code units, matching what editors exchange.

Document sync is full-text: every "open" and "change" carries the complete
document, from which a fresh snapshot is built and swapped in atomically.
Stale requests racing a swap get empty results rather than errors.
*/
package server

// CmdAddToDictionary is the command editors invoke to persist a word.
const CmdAddToDictionary = "polski-ls.addToDictionary"

// Request is the single incoming message shape; Method selects the
// operation and decides which other fields matter.
type Request struct {
	ID        string `msgpack:"id"`
	Method    string `msgpack:"m"`
	URI       string `msgpack:"uri,omitempty"`
	Text      string `msgpack:"text,omitempty"`
	Line      uint32 `msgpack:"ln,omitempty"`
	Character uint32 `msgpack:"col,omitempty"`
	Word      string `msgpack:"w,omitempty"`
}

// Position - zero-based line and UTF-16 column
type Position struct {
	Line      uint32 `msgpack:"ln"`
	Character uint32 `msgpack:"col"`
}

// Range - half-open [start, end) span
type Range struct {
	Start Position `msgpack:"start"`
	End   Position `msgpack:"end"`
}

// Diagnostic - one unknown-word finding
type Diagnostic struct {
	Range    Range  `msgpack:"r"`
	Severity string `msgpack:"sev"`
	Source   string `msgpack:"src"`
	Message  string `msgpack:"msg"`
}

// DiagnosticsNote - full set of diagnostics for a document snapshot
type DiagnosticsNote struct {
	ID          string       `msgpack:"id"`
	URI         string       `msgpack:"uri"`
	Diagnostics []Diagnostic `msgpack:"d"`
	Count       int          `msgpack:"c"`
}

// CompletionItem - one ranked suggestion with its replacement edit
type CompletionItem struct {
	Label      string `msgpack:"w"`
	NewText    string `msgpack:"txt"`
	Range      Range  `msgpack:"r"`
	FilterText string `msgpack:"f"`
	SortText   string `msgpack:"s"`
}

// CompletionResponse - completion response
type CompletionResponse struct {
	ID        string           `msgpack:"id"`
	Items     []CompletionItem `msgpack:"s"`
	Count     int              `msgpack:"c"`
	TimeTaken int64            `msgpack:"t"`
}

// CodeAction - either an add-to-dictionary command or a replacement edit
type CodeAction struct {
	Title   string `msgpack:"title"`
	Kind    string `msgpack:"kind"`
	Command string `msgpack:"cmd,omitempty"`
	Word    string `msgpack:"w,omitempty"`
	NewText string `msgpack:"txt,omitempty"`
	Range   Range  `msgpack:"r"`
}

// ActionsResponse - code action response
type ActionsResponse struct {
	ID      string       `msgpack:"id"`
	Actions []CodeAction `msgpack:"a"`
	Count   int          `msgpack:"c"`
}

// AckResponse - status reply for sync and mutation methods
type AckResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Error  string `msgpack:"error,omitempty"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
