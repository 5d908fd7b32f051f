package logger

import (
	"encoding/json"
	"io"
)

// ReadJSONLinesLog parses a newline delimited JSON audit log.
func ReadJSONLinesLog(r io.Reader, handler func(e *Event)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var event Event
		if err := decoder.Decode(&event); err != nil {
			return err
		}
		handler(&event)
	}
	return nil
}

// Report summarizes an audit log: how many commands ran, which ones, and
// how often they failed.
type Report struct {
	Events   int `json:"events"`
	Sessions int `json:"sessions"`
	Failures int `json:"failures"`

	Builtins map[string]int `json:"builtins,omitempty"`
	Commands map[string]int `json:"commands,omitempty"`
	NotFound map[string]int `json:"not_found,omitempty"`

	sessions map[string]bool
}

func (r *Report) increment(counter *map[string]int, key string) {
	if *counter == nil {
		*counter = make(map[string]int)
	}
	(*counter)[key]++
}

// Update folds one event into the report.
func (r *Report) Update(e *Event) {
	r.Events++

	if r.sessions == nil {
		r.sessions = make(map[string]bool)
	}
	if !r.sessions[e.SessionID] {
		r.sessions[e.SessionID] = true
		r.Sessions++
	}

	if e.ExitStatus != 0 {
		r.Failures++
	}

	name := e.Path
	if len(e.Argv) > 0 {
		name = e.Argv[0]
	}

	switch e.Kind {
	case KindBuiltin:
		r.increment(&r.Builtins, name)
	case KindExec:
		r.increment(&r.Commands, name)
	case KindNotFound:
		r.increment(&r.NotFound, name)
	}
}
