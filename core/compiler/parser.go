package compiler

import (
	"github.com/josephlewis42/cmdexpr/core/expr"
	"github.com/josephlewis42/cmdexpr/core/token"
)

// parseState tracks what a segment is currently accumulating.
type parseState int

const (
	// stateCommand collects the program and its arguments.
	stateCommand parseState = iota
	// stateRedirects wraps the closed command in redirects. Once entered, no
	// more arguments are accepted for the segment.
	stateRedirects
)

type parser struct {
	tokens     []token.Token
	categories []token.Category
	pos        int
	vars       Resolver
}

func (p *parser) done() bool {
	return p.pos >= len(p.tokens)
}

func (p *parser) peek() (token.Token, token.Category) {
	return p.tokens[p.pos], p.categories[p.pos]
}

func (p *parser) fail(kind error, pos int) error {
	return newSyntaxError(kind, p.tokens, pos)
}

// pipeline compiles a segment and, if a pipe follows, the rest of the tokens
// as its right hand side.
func (p *parser) pipeline() (expr.Node, error) {
	left, err := p.segment()
	if err != nil {
		return nil, err
	}

	if p.done() {
		return left, nil
	}

	// segment only stops early on a pipe.
	pipePos := p.pos
	p.pos++
	if p.done() {
		return nil, p.fail(ErrDanglingOperator, pipePos)
	}

	right, err := p.pipeline()
	if err != nil {
		return nil, err
	}
	return expr.NewPipe(left, right), nil
}

// segment compiles a command and its redirects, stopping before a pipe or at
// the end of input.
func (p *parser) segment() (expr.Node, error) {
	program, category := p.peek()
	switch {
	case category.IsOperator():
		return nil, p.fail(ErrLeadingOperator, p.pos)
	case category == token.Null:
		return nil, p.fail(ErrMisplacedNull, p.pos)
	}
	p.pos++

	var (
		state = stateCommand
		args  []string
		node  expr.Node
	)

	for !p.done() {
		tok, category := p.peek()

		switch {
		case category == token.Pipe:
			if node == nil {
				node = expr.NewCommand(program.Text, args...)
			}
			return node, nil

		case category == token.Null:
			return nil, p.fail(ErrMisplacedNull, p.pos)

		case category == token.Word:
			if state == stateRedirects {
				return nil, p.fail(ErrArgumentAfterRedirect, p.pos)
			}
			args = append(args, tok.Text)
			p.pos++

		case category.IsRedirect():
			if state == stateCommand {
				node = expr.NewCommand(program.Text, args...)
				state = stateRedirects
			}
			kind, err := p.redirect()
			if err != nil {
				return nil, err
			}
			node = expr.NewRedirect(kind, node)
		}
	}

	if node == nil {
		node = expr.NewCommand(program.Text, args...)
	}
	return node, nil
}

// redirect consumes a redirect operator and its operand.
func (p *parser) redirect() (expr.RedirectKind, error) {
	opPos := p.pos
	_, op := p.peek()
	p.pos++

	if p.done() {
		return nil, p.fail(ErrDanglingOperator, opPos)
	}

	operand, category := p.peek()
	if category.IsOperator() {
		return nil, p.fail(ErrDanglingOperator, opPos)
	}
	operandPos := p.pos
	p.pos++

	switch op {
	case token.RedirectIn:
		if category == token.Null {
			return expr.StdinNull{}, nil
		}
		return expr.StdinPath{Path: operand.Text}, nil

	case token.RedirectOut:
		if category == token.Null {
			return expr.StdoutNull{}, nil
		}
		return expr.StdoutPath{Path: operand.Text}, nil

	default: // token.RedirectInBytes
		switch {
		case operand.Kind == token.Variable:
			// Checked below.
		case operand.Kind == token.Identifier && operand.Text == token.KeywordNull:
			return nil, p.fail(ErrMisplacedNull, operandPos)
		default:
			return nil, p.fail(ErrWrongOperandKind, operandPos)
		}

		if p.vars == nil {
			return nil, p.fail(ErrUnboundVariable, operandPos)
		}
		val, ok := p.vars.Lookup(operand.Text)
		if !ok {
			return nil, p.fail(ErrUnboundVariable, operandPos)
		}
		return expr.NewStdinBytes(val), nil
	}
}
