package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	redirIn := Ident("<")
	redirOut := Ident(">")
	redirBytes := Ident("<<<")
	quotedRedir := Lit(">")
	word := Ident("cat")

	cases := map[string]struct {
		prev     *Token
		tok      Token
		expected Category
	}{
		"bare word":             {nil, Ident("cat"), Word},
		"literal":               {nil, Lit("arg with spaces"), Word},
		"variable":              {nil, Var("buf"), Word},
		"pipe":                  {&word, Ident("|"), Pipe},
		"redirect in":           {&word, Ident("<"), RedirectIn},
		"redirect out":          {&word, Ident(">"), RedirectOut},
		"redirect bytes":        {&word, Ident("<<<"), RedirectInBytes},
		"quoted pipe":           {&word, Lit("|"), Word},
		"quoted redirect":       {&word, Lit("<<<"), Word},
		"null after in":         {&redirIn, Ident("null"), Null},
		"null after out":        {&redirOut, Ident("null"), Null},
		"null at start":         {nil, Ident("null"), Word},
		"null after word":       {&word, Ident("null"), Word},
		"null after bytes":      {&redirBytes, Ident("null"), Word},
		"quoted null after out": {&redirOut, Lit("null"), Word},
		"null after quoted op":  {&quotedRedir, Ident("null"), Word},
		"null variable":         {&redirOut, Var("null"), Word},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.prev, tc.tok))
		})
	}
}

func TestClassifyAll(t *testing.T) {
	tokens := []Token{
		Ident("bin"), Ident("null"), Ident("<"), Ident("null"),
		Ident(">"), Lit("null"), Ident("|"), Ident("b"), Ident("<<<"), Var("v"),
	}

	actual := ClassifyAll(tokens)

	assert.Equal(t, []Category{
		Word, Word, RedirectIn, Null,
		RedirectOut, Word, Pipe, Word, RedirectInBytes, Word,
	}, actual)
}

func TestCategoryPredicates(t *testing.T) {
	assert.False(t, Word.IsOperator())
	assert.False(t, Null.IsOperator())
	assert.True(t, Pipe.IsOperator())
	assert.False(t, Pipe.IsRedirect())
	assert.True(t, RedirectInBytes.IsRedirect())
}

func TestSplit(t *testing.T) {
	cases := map[string]struct {
		line     string
		expected []Token
	}{
		"bare": {
			line:     "bin arg1 arg2",
			expected: []Token{Ident("bin"), Ident("arg1"), Ident("arg2")},
		},
		"double quoted": {
			line:     `bin "arg1a arg1b" arg2`,
			expected: []Token{Ident("bin"), Lit("arg1a arg1b"), Ident("arg2")},
		},
		"single quoted null": {
			line:     `bin > 'null'`,
			expected: []Token{Ident("bin"), Ident(">"), Lit("null")},
		},
		"variable": {
			line:     `cat <<< $input`,
			expected: []Token{Ident("cat"), Ident("<<<"), Var("input")},
		},
		"pipeline": {
			line:     `a | b`,
			expected: []Token{Ident("a"), Ident("|"), Ident("b")},
		},
		"empty": {
			line:     "",
			expected: []Token{},
		},
		"other quote inside": {
			line:     `echo "it's" 'say "hi"'`,
			expected: []Token{Ident("echo"), Lit("it's"), Lit(`say "hi"`)},
		},
		"empty literal": {
			line:     `echo ""`,
			expected: []Token{Ident("echo"), Lit("")},
		},
		"unicode": {
			line:     "echo \tünï \"çødé\"",
			expected: []Token{Ident("echo"), Ident("ünï"), Lit("çødé")},
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			actual, err := Split(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestSplitErrors(t *testing.T) {
	cases := map[string]struct {
		line     string
		expected error
	}{
		"empty variable":           {`cat <<< $`, ErrEmptyVariable},
		"unterminated double":      {`a "x y`, ErrUnterminatedQuote},
		"unterminated single":      {`a 'x`, ErrUnterminatedQuote},
		"escaped quote":            {`a "x\"y"`, ErrAdjacentQuote},
		"quote inside word":        {`a"b c"`, ErrAdjacentQuote},
		"text after closing quote": {`"a"b`, ErrAdjacentQuote},
		"quote at end of word":     {`ab" c`, ErrAdjacentQuote},
		"stray single quote":       {`it's`, ErrAdjacentQuote},
		"variable with quote":      {`$na"me"`, ErrAdjacentQuote},
		"backslash in literal":     {`cat "a\b"`, ErrEscape},
		"backslash single quoted":  {`cat 'a\b'`, ErrEscape},
		"invalid utf8":             {"a \xff", ErrInvalidUTF8},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			actual, err := Split(tc.line)
			assert.ErrorIs(t, err, tc.expected)
			assert.Nil(t, actual)
		})
	}
}

func TestSplitBackslashInIdentifier(t *testing.T) {
	actual, err := Split(`type C:\tmp\x`)
	require.NoError(t, err)
	assert.Equal(t, []Token{Ident("type"), Ident(`C:\tmp\x`)}, actual)
}

func TestStringSplitRoundTrip(t *testing.T) {
	tokens := []Token{
		Ident("cat"),
		Ident("|"),
		Var("buf"),
		Lit(""),
		Lit("a b"),
		Lit("null"),
		Lit("<<<"),
		Lit("it's"),
		Lit(`say "hi"`),
		Lit("çødé"),
	}

	for _, tok := range tokens {
		t.Run(tok.String(), func(t *testing.T) {
			actual, err := Split(tok.String())
			require.NoError(t, err)
			assert.Equal(t, []Token{tok}, actual)
		})
	}
}

// Literals that can't be written without escapes don't survive the trip, but
// Split rejects them instead of returning a different token.
func TestStringSplitLossy(t *testing.T) {
	for _, tok := range []Token{
		Lit(`a\b`),
		Lit(`both " and '`),
		Lit("tab\there"),
	} {
		t.Run(tok.Text, func(t *testing.T) {
			_, err := Split(tok.String())
			assert.Error(t, err)
		})
	}
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "bin", Ident("bin").String())
	assert.Equal(t, `"a b"`, Lit("a b").String())
	assert.Equal(t, `'say "hi"'`, Lit(`say "hi"`).String())
	assert.Equal(t, `"a\\b"`, Lit(`a\b`).String())
	assert.Equal(t, "$buf", Var("buf").String())
	assert.Equal(t, "Literal", Literal.String())
}

func TestKindText(t *testing.T) {
	for _, kind := range []Kind{Identifier, Literal, Variable} {
		text, err := kind.MarshalText()
		require.NoError(t, err)

		var actual Kind
		require.NoError(t, actual.UnmarshalText(text))
		assert.Equal(t, kind, actual)
	}

	var k Kind
	assert.Error(t, k.UnmarshalText([]byte("Bogus")))
	_, err := Kind(42).MarshalText()
	assert.Error(t, err)
}
