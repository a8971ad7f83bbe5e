package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

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

// Report holds statistics about the logged events.
type Report struct {
	LogEntries     int        `json:"log_entries"`
	InvalidEntries StrCounter `json:"unknown_log_entries,omitempty"`
	Sessions       StrCounter `json:"sessions"`

	Compile CompileReport `json:"compile_report"`
	Check   CheckReport   `json:"check_report"`
}

func (r *Report) Update(le *LogEntry) {
	r.LogEntries++
	if le.SessionID != "" {
		r.Sessions.Increment(le.SessionID)
	}

	switch {
	case le.Compile != nil:
		r.Compile.update(le.Compile)
	case le.CheckCase != nil:
		r.Check.update(le.CheckCase)
	default:
		r.InvalidEntries.Increment(fmt.Sprintf("entry@%d", le.TimestampMicros))
	}
}

type CompileReport struct {
	Count    int        `json:"count"`
	Failures int        `json:"failures"`
	Sources  StrCounter `json:"sources"`
	// Names of programs in successfully compiled trees.
	Programs StrCounter `json:"programs"`
	// Failure kinds and the token that triggered them.
	Errors *PathCounter `json:"errors"`
}

func (r *CompileReport) update(c *Compile) {
	if r.Errors == nil {
		r.Errors = NewPathCounter("code", "token")
	}

	r.Count++
	r.Sources.Increment(c.Source)
	if c.Failed() {
		r.Failures++
		offending := ""
		if c.ErrorPos < len(c.Tokens) {
			offending = c.Tokens[c.ErrorPos].String()
		}
		r.Errors.Increment(c.ErrorCode, offending)
		return
	}

	for _, program := range c.Programs {
		r.Programs.Increment(program)
	}
}

type CheckReport struct {
	Passed int `json:"passed"`
	Failed int `json:"failed"`
	// Failing cases by suite.
	Failures *PathCounter `json:"failures"`
}

func (r *CheckReport) update(c *CheckCase) {
	if r.Failures == nil {
		r.Failures = NewPathCounter("suite", "case")
	}

	if c.Passed {
		r.Passed++
		return
	}
	r.Failed++
	r.Failures.Increment(c.Suite, c.Case)
}

// StrCounter counts the number of strings seen.
type StrCounter struct {
	counts map[string]int
}

// Increment adds one to the given key.
func (s *StrCounter) Increment(key string) {
	if s.counts == nil {
		s.counts = make(map[string]int)
	}

	s.counts[key]++
}

// Get returns the count for key.
func (s *StrCounter) Get(key string) int {
	return s.counts[key]
}

// MarshalJSON writes the counts as an object keyed by string.
func (s StrCounter) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.counts)
}

// NewPathCounter creates a counter over combinations of the named columns.
func NewPathCounter(cols ...string) *PathCounter {
	return &PathCounter{cols: cols}
}

// PathCounter counts the number of times each combination of values was seen,
// e.g. failures by error code and offending token.
type PathCounter struct {
	cols []string
	keys StrCounter
}

// pathSep joins column values into a single counter key.
const pathSep = "\x1f"

// Increment adds one to the given combination, which must have a value for
// every column.
func (ctr *PathCounter) Increment(vals ...string) {
	if len(vals) != len(ctr.cols) {
		panic(fmt.Sprintf("PathCounter: got %d values for %d columns", len(vals), len(ctr.cols)))
	}

	ctr.keys.Increment(strings.Join(vals, pathSep))
}

// Get returns the count for the combination of values.
func (ctr *PathCounter) Get(vals ...string) int {
	if ctr == nil {
		return 0
	}
	return ctr.keys.Get(strings.Join(vals, pathSep))
}

// MarshalJSON writes one row per combination, most frequent first. Each row
// holds the count and the value of every column.
func (ctr *PathCounter) MarshalJSON() ([]byte, error) {
	type row struct {
		key    string
		count  int
		fields map[string]interface{}
	}

	var rows []row
	for key, count := range ctr.keys.counts {
		fields := map[string]interface{}{"count": count}
		for i, val := range strings.Split(key, pathSep) {
			fields[ctr.cols[i]] = val
		}
		rows = append(rows, row{key: key, count: count, fields: fields})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count == rows[j].count {
			return rows[i].key < rows[j].key
		}
		return rows[i].count > rows[j].count
	})

	out := make([]map[string]interface{}, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.fields)
	}
	return json.Marshal(out)
}
