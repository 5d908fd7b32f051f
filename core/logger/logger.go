// Package logger is a standardized audit logging framework for the shell.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"time"
)

// EventKind classifies how a line was dispatched.
type EventKind string

const (
	// KindBuiltin is a command that ran inside the shell process.
	KindBuiltin EventKind = "builtin"
	// KindExec is an external command launched as a child process.
	KindExec EventKind = "exec"
	// KindNotFound is a command that resolved to nothing on the search path.
	KindNotFound EventKind = "not_found"
)

// Event is one dispatched command.
type Event struct {
	TimestampMicros int64     `json:"timestamp_micros"`
	SessionID       string    `json:"session_id"`
	Kind            EventKind `json:"kind"`
	Path            string    `json:"path,omitempty"`
	Argv            []string  `json:"argv,omitempty"`
	ExitStatus      int       `json:"exit_status"`
}

// Recorder is a callback that stores events in an external datastore.
type Recorder func(e *Event) error

// Logger captures one audit event per dispatched command.
type Logger struct {
	Record Recorder

	sessionID string
}

// NewJSONLinesLogger creates a Logger that exports events in newline
// delimited JSON object format.
func NewJSONLinesLogger(w io.Writer) *Logger {
	return &Logger{
		Record: func(e *Event) error {
			entry, err := json.Marshal(e)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(entry))
			return err
		},
		sessionID: fmt.Sprintf("%d", rand.Uint64()),
	}
}

// NewNopLogger creates a Logger that discards all events.
func NewNopLogger() *Logger {
	return &Logger{
		Record: func(e *Event) error { return nil },
	}
}

// Command records a single dispatched command and its exit status.
func (l *Logger) Command(kind EventKind, path string, argv []string, exitStatus int) error {
	return l.Record(&Event{
		TimestampMicros: time.Now().UnixMicro(),
		SessionID:       l.sessionID,
		Kind:            kind,
		Path:            path,
		Argv:            argv,
		ExitStatus:      exitStatus,
	})
}
