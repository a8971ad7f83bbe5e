package render

import (
	"errors"
	"testing"

	"github.com/josephlewis42/cmdexpr/core/compiler"
	"github.com/josephlewis42/cmdexpr/core/config"
	"github.com/josephlewis42/cmdexpr/core/expr"
	"github.com/josephlewis42/cmdexpr/core/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldColor(t *testing.T) {
	assert.True(t, ShouldColor(config.ColorAlways))
	assert.False(t, ShouldColor(config.ColorNever))
}

func TestTree(t *testing.T) {
	tree := expr.NewPipe(expr.NewCommand("a"), expr.NewCommand("b"))

	compact := &Printer{}
	assert.Equal(t, `Pipe(Cmd(["a"]), Cmd(["b"]))`, compact.Tree(tree))

	pretty := &Printer{Pretty: true}
	assert.Equal(t, "Pipe(Cmd([\"a\"]), \n     Cmd([\"b\"])\n)", pretty.Tree(tree))
}

func TestError(t *testing.T) {
	cases := map[string]struct {
		line     string
		expected string
	}{
		"dangling": {
			line:     `a <`,
			expected: "syntax error: operator has no operand\n  a <\n    ^",
		},
		"argument after redirect": {
			line:     `cat > "out file" extra`,
			expected: "syntax error: argument after redirect\n  cat > \"out file\" extra\n                   ^",
		},
		"non-ascii tokens": {
			line:     `grün "çødé" > out x`,
			expected: "syntax error: argument after redirect\n  grün \"çødé\" > out x\n                    ^",
		},
		"dangling pipe": {
			line:     `a |`,
			expected: "syntax error: operator has no operand\n  a |\n    ^",
		},
	}

	p := &Printer{}
	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			tokens, err := token.Split(tc.line)
			require.NoError(t, err)
			_, err = compiler.Compile(tokens, nil)
			require.Error(t, err)

			assert.Equal(t, tc.expected, p.Error(tokens, err))
		})
	}
}

func TestErrorEndOfInput(t *testing.T) {
	p := &Printer{}
	err := &compiler.SyntaxError{Kind: compiler.ErrDanglingOperator, Pos: 2}
	tokens := []token.Token{token.Ident("a"), token.Ident("<")}

	assert.Equal(t, "syntax error: operator has no operand\n  a <\n      ^", p.Error(tokens, err))
}

func TestErrorOther(t *testing.T) {
	p := &Printer{}
	assert.Equal(t, "error: boom", p.Error(nil, errors.New("boom")))
}

func TestSprintfColor(t *testing.T) {
	plain := &Printer{}
	assert.Equal(t, "x", plain.Sprintf(ColorBoldRed, "x"))

	colored := &Printer{Color: true}
	assert.NotEqual(t, "x", colored.Sprintf(ColorBoldRed, "x"))
	assert.Contains(t, colored.Sprintf(ColorBoldRed, "x"), "x")
}
