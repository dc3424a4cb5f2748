package logger

import (
	"encoding/json"
	"io"
	"time"
)

// LogEntry is one decoded line of the event log.
type LogEntry struct {
	Time     time.Time `json:"time"`
	Session  string    `json:"session"`
	Event    string    `json:"event"`
	Argv     []string  `json:"argv,omitempty"`
	ExitCode *int      `json:"exit_code,omitempty"`
	Signal   string    `json:"signal,omitempty"`
	Error    string    `json:"error,omitempty"`
	Reason   string    `json:"reason,omitempty"`
}

// Program is the command name of the entry, empty if it has none.
func (le *LogEntry) Program() string {
	if len(le.Argv) == 0 {
		return ""
	}
	return le.Argv[0]
}

// ReadJSONLinesLog parses a newline delimited JSON log.
func ReadJSONLinesLog(r io.Reader, handler func(le *LogEntry)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var logEntry LogEntry
		if err := decoder.Decode(&logEntry); err != nil {
			return err
		}

		handler(&logEntry)
	}
	return nil
}

// Report summarizes an event log.
type Report struct {
	LogEntries int `json:"log_entries"`

	Sessions     map[string]int `json:"sessions"`
	Builtins     map[string]int `json:"builtins"`
	Programs     map[string]int `json:"programs"`
	FailedExits  map[string]int `json:"failed_exits"`
	Signaled     map[string]int `json:"signaled"`
	LaunchErrors map[string]int `json:"launch_errors"`
	EndReasons   map[string]int `json:"end_reasons"`
}

func NewReport() *Report {
	return &Report{
		Sessions:     make(map[string]int),
		Builtins:     make(map[string]int),
		Programs:     make(map[string]int),
		FailedExits:  make(map[string]int),
		Signaled:     make(map[string]int),
		LaunchErrors: make(map[string]int),
		EndReasons:   make(map[string]int),
	}
}

// Update adds the entry to the report.
func (r *Report) Update(le *LogEntry) {
	r.LogEntries++
	r.Sessions[le.Session]++

	switch le.Event {
	case EventBuiltin:
		r.Builtins[le.Program()]++
	case EventLaunch:
		r.Programs[le.Program()]++
		switch {
		case le.Signal != "":
			r.Signaled[le.Program()]++
		case le.ExitCode != nil && *le.ExitCode != 0:
			r.FailedExits[le.Program()]++
		}
	case EventLaunchError:
		r.LaunchErrors[le.Program()]++
	case EventSessionEnd:
		r.EndReasons[le.Reason]++
	}
}
