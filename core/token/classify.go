package token

import "fmt"

// Category is the grammar category of a classified token.
type Category int

const (
	Word Category = iota
	Pipe
	RedirectIn
	RedirectOut
	RedirectInBytes
	Null
)

func (c Category) String() string {
	switch c {
	case Word:
		return "Word"
	case Pipe:
		return "Pipe"
	case RedirectIn:
		return "RedirectIn"
	case RedirectOut:
		return "RedirectOut"
	case RedirectInBytes:
		return "RedirectInBytes"
	case Null:
		return "Null"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// IsOperator reports whether the category is a pipe or redirect operator.
func (c Category) IsOperator() bool {
	switch c {
	case Pipe, RedirectIn, RedirectOut, RedirectInBytes:
		return true
	default:
		return false
	}
}

// IsRedirect reports whether the category starts a redirect.
func (c Category) IsRedirect() bool {
	return c == RedirectIn || c == RedirectOut || c == RedirectInBytes
}

var operators = map[string]Category{
	OpPipe:            Pipe,
	OpRedirectIn:      RedirectIn,
	OpRedirectOut:     RedirectOut,
	OpRedirectInBytes: RedirectInBytes,
}

// Classify assigns tok a category from its shape alone. prev is the token
// directly before tok, or nil at the start of the input; it only matters for
// the null sentinel.
//
// Classification never fails. Misplaced tokens are rejected by the compiler.
func Classify(prev *Token, tok Token) Category {
	if tok.Kind == Literal {
		return Word
	}

	if tok.Kind == Identifier {
		if op, ok := operators[tok.Text]; ok {
			return op
		}
	}

	if tok.Kind == Identifier && tok.Text == KeywordNull && prev != nil {
		switch Classify(nil, *prev) {
		case RedirectIn, RedirectOut:
			return Null
		}
	}

	return Word
}

// ClassifyAll classifies every token in order.
func ClassifyAll(tokens []Token) []Category {
	out := make([]Category, len(tokens))
	for i, tok := range tokens {
		var prev *Token
		if i > 0 {
			prev = &tokens[i-1]
		}
		out[i] = Classify(prev, tok)
	}
	return out
}
