package logger

import (
	"errors"

	"github.com/josephlewis42/cmdexpr/core/compiler"
	"github.com/josephlewis42/cmdexpr/core/expr"
	"github.com/josephlewis42/cmdexpr/core/token"
)

// LogEntry is a single line of the event log. Exactly one event field is set.
type LogEntry struct {
	TimestampMicros int64  `json:"timestamp_micros"`
	SessionID       string `json:"session_id,omitempty"`

	Compile   *Compile   `json:"compile,omitempty"`
	CheckCase *CheckCase `json:"check_case,omitempty"`
}

// LogType is an event that can be stored in a LogEntry.
type LogType interface {
	attach(le *LogEntry)
}

// Compile records one compilation and its outcome.
type Compile struct {
	// Source names the front end that requested the compilation.
	Source string        `json:"source"`
	Tokens []token.Token `json:"tokens"`

	// Programs holds the program name of every command in the tree.
	Programs []string `json:"programs,omitempty"`
	Tree     string   `json:"tree,omitempty"`

	ErrorCode    string `json:"error_code,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
	ErrorPos     int    `json:"error_pos,omitempty"`
}

func (c *Compile) attach(le *LogEntry) {
	le.Compile = c
}

// Failed reports whether the compilation produced an error.
func (c *Compile) Failed() bool {
	return c.ErrorMessage != ""
}

// NewCompile builds a Compile event from the result of compiling tokens.
func NewCompile(source string, tokens []token.Token, tree expr.Node, err error) *Compile {
	event := &Compile{
		Source: source,
		Tokens: tokens,
	}

	if err != nil {
		event.ErrorMessage = err.Error()
		event.ErrorCode = "split_error"

		var syntaxErr *compiler.SyntaxError
		if errors.As(err, &syntaxErr) {
			event.ErrorCode = syntaxErr.Code()
			event.ErrorPos = syntaxErr.Pos
		}
		return event
	}

	event.Tree = tree.String()
	for _, cmd := range expr.Commands(tree) {
		event.Programs = append(event.Programs, cmd.Program)
	}
	return event
}

// CheckCase records the outcome of one case of a check suite.
type CheckCase struct {
	Suite  string `json:"suite"`
	Case   string `json:"case"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

func (c *CheckCase) attach(le *LogEntry) {
	le.CheckCase = c
}
