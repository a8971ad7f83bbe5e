package compiler

import (
	"errors"
	"fmt"

	"github.com/josephlewis42/cmdexpr/core/token"
)

// Failure kinds, use errors.Is to match a *SyntaxError against them.
var (
	ErrEmptyInput            = errors.New("empty input, no program name")
	ErrLeadingOperator       = errors.New("segment starts with an operator instead of a program")
	ErrDanglingOperator      = errors.New("operator has no operand")
	ErrMisplacedNull         = errors.New("null is only allowed directly after < or >")
	ErrArgumentAfterRedirect = errors.New("argument after redirect")
	ErrWrongOperandKind      = errors.New("<<< needs a variable operand")
	ErrUnboundVariable       = errors.New("unbound variable")
)

var errorCodes = map[error]string{
	ErrEmptyInput:            "empty_input",
	ErrLeadingOperator:       "leading_operator",
	ErrDanglingOperator:      "dangling_operator",
	ErrMisplacedNull:         "misplaced_null",
	ErrArgumentAfterRedirect: "argument_after_redirect",
	ErrWrongOperandKind:      "wrong_operand_kind",
	ErrUnboundVariable:       "unbound_variable",
}

// SyntaxError reports the grammar rule a token sequence violated.
type SyntaxError struct {
	// Kind is one of the Err* values in this package.
	Kind error
	// Pos is the index of the offending token, or the number of tokens if the
	// input ended early.
	Pos int
	// Token is the offending token, nil if the input ended early.
	Token *token.Token
}

func (e *SyntaxError) Error() string {
	if e.Token == nil {
		return fmt.Sprintf("syntax error at end of input (token %d): %v", e.Pos, e.Kind)
	}
	return fmt.Sprintf("syntax error at token %d %s: %v", e.Pos, e.Token, e.Kind)
}

func (e *SyntaxError) Unwrap() error {
	return e.Kind
}

// Code is a stable short name for the failure kind, suitable for logs.
func (e *SyntaxError) Code() string {
	if code, ok := errorCodes[e.Kind]; ok {
		return code
	}
	return "unknown"
}

func newSyntaxError(kind error, tokens []token.Token, pos int) *SyntaxError {
	se := &SyntaxError{Kind: kind, Pos: pos}
	if pos < len(tokens) {
		tok := tokens[pos]
		se.Token = &tok
	}
	return se
}
