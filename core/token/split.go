package token

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	shlex "github.com/anmitsu/go-shlex"
)

var (
	ErrUnterminatedQuote = errors.New("unterminated quote")
	ErrAdjacentQuote     = errors.New("quoted text must be a whole word")
	ErrEscape            = errors.New("escapes are not supported in quoted text")
	ErrEmptyVariable     = errors.New("empty variable name")
	ErrInvalidUTF8       = errors.New("invalid UTF-8")
)

// Split breaks a line of embedding syntax into tokens.
//
// Words wrapped in single or double quotes become Literals with the quotes
// removed, words starting with $ become Variables and everything else is an
// Identifier. No expansion of any kind is performed and operators must be
// separated by whitespace.
//
// Quotes may only wrap a whole word and quoted text can't contain a
// backslash or its own quote character. Lines breaking those rules are
// rejected rather than guessed at.
func Split(line string) ([]Token, error) {
	if !utf8.ValidString(line) {
		return nil, fmt.Errorf("split %q: %w", line, ErrInvalidUTF8)
	}

	// Non-POSIX mode keeps the quotes so literals can be told apart from
	// identifiers.
	words, err := shlex.Split(line, false)
	if errors.Is(err, shlex.ErrNoClosing) {
		return nil, fmt.Errorf("split %q: %w", line, ErrUnterminatedQuote)
	}
	if err != nil {
		return nil, fmt.Errorf("split %q: %w", line, err)
	}

	if err := checkWordBoundaries(line, words); err != nil {
		return nil, fmt.Errorf("split %q: %w", line, err)
	}

	out := make([]Token, 0, len(words))
	for _, word := range words {
		tok, err := parseWord(word)
		if err != nil {
			return nil, fmt.Errorf("split %q: %w", line, err)
		}
		out = append(out, tok)
	}
	return out, nil
}

// checkWordBoundaries makes sure every word was separated from its neighbors
// by whitespace. The lexer ends a word at a closing quote even when more text
// follows it, so "a"b comes back as two words.
func checkWordBoundaries(line string, words []string) error {
	rest := line
	for _, word := range words {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		if !strings.HasPrefix(rest, word) {
			return fmt.Errorf("%w: near %s", ErrAdjacentQuote, word)
		}
		rest = rest[len(word):]

		if next, _ := utf8.DecodeRuneInString(rest); rest != "" && !unicode.IsSpace(next) {
			return fmt.Errorf("%w: near %s", ErrAdjacentQuote, word)
		}
	}
	return nil
}

func parseWord(word string) (Token, error) {
	switch {
	case strings.HasPrefix(word, `"`), strings.HasPrefix(word, "'"):
		quote := word[:1]
		if len(word) < 2 || !strings.HasSuffix(word, quote) {
			return Token{}, fmt.Errorf("%w: %s", ErrUnterminatedQuote, word)
		}

		text := word[1 : len(word)-1]
		switch {
		case strings.Contains(text, quote):
			return Token{}, fmt.Errorf("%w: %s", ErrAdjacentQuote, word)
		case strings.Contains(text, `\`):
			return Token{}, fmt.Errorf("%w: %s", ErrEscape, word)
		}
		return Lit(text), nil

	case strings.ContainsAny(word, `"'`):
		return Token{}, fmt.Errorf("%w: %s", ErrAdjacentQuote, word)

	case strings.HasPrefix(word, "$"):
		name := strings.TrimPrefix(word, "$")
		if name == "" {
			return Token{}, ErrEmptyVariable
		}
		return Var(name), nil

	default:
		return Ident(word), nil
	}
}
