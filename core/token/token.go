// Package token holds the lexical units of the pipeline language and the
// classifier that assigns each one a grammar category.
package token

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Kind is the lexical shape of a token as the host wrote it.
type Kind int

const (
	// Identifier is a bare, unquoted word.
	Identifier Kind = iota
	// Literal is a quoted string, it may contain spaces or operator text.
	Literal
	// Variable is a bare word naming an externally supplied byte buffer.
	Variable
)

func (k Kind) String() string {
	switch k {
	case Identifier:
		return "Identifier"
	case Literal:
		return "Literal"
	case Variable:
		return "Variable"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Identifier, Literal, Variable:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("unknown token kind %d", int(k))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	for _, candidate := range []Kind{Identifier, Literal, Variable} {
		if candidate.String() == string(text) {
			*k = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown token kind %q", text)
}

// Token is an atomic lexical unit. The zero value is an empty Identifier.
type Token struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

// Ident creates a bare Identifier token.
func Ident(text string) Token {
	return Token{Kind: Identifier, Text: text}
}

// Lit creates a quoted Literal token.
func Lit(text string) Token {
	return Token{Kind: Literal, Text: text}
}

// Var creates a Variable token referring to the named byte buffer.
func Var(name string) Token {
	return Token{Kind: Variable, Text: name}
}

// IsBare reports whether the token was written without quotes.
func (t Token) IsBare() bool {
	return t.Kind != Literal
}

// String renders the token the way it would appear in an embedding.
//
// Literals are wrapped in double quotes, or single quotes if the text holds a
// double quote. Split reads the result back as the same token unless the text
// holds both quote characters, a backslash or an unprintable rune; those fall
// back to Go quoting, which Split rejects.
func (t Token) String() string {
	switch t.Kind {
	case Literal:
		return quoteLiteral(t.Text)
	case Variable:
		return "$" + t.Text
	default:
		return t.Text
	}
}

func quoteLiteral(text string) string {
	unprintable := strings.IndexFunc(text, func(r rune) bool {
		return !unicode.IsPrint(r)
	}) >= 0

	switch {
	case unprintable, strings.Contains(text, `\`):
		return strconv.Quote(text)
	case !strings.Contains(text, `"`):
		return `"` + text + `"`
	case !strings.Contains(text, "'"):
		return "'" + text + "'"
	default:
		return strconv.Quote(text)
	}
}

// Operator text reserved by the grammar.
const (
	OpPipe            = "|"
	OpRedirectIn      = "<"
	OpRedirectOut     = ">"
	OpRedirectInBytes = "<<<"
	KeywordNull       = "null"
)
