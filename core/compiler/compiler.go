// Package compiler turns a token sequence describing a pipeline into an
// expression tree.
//
// The grammar, lowest precedence first:
//
//	pipeline := segment ( '|' segment )*
//	segment  := command redirect*
//	command  := word word*
//	redirect := '<' ( 'null' | word ) | '>' ( 'null' | word ) | '<<<' variable
//
// Pipes associate to the right. Redirects bind to the nearest command before
// them and wrap it in the order they are read, so the last redirect becomes
// the outermost node.
package compiler

import (
	"github.com/josephlewis42/cmdexpr/core/expr"
	"github.com/josephlewis42/cmdexpr/core/token"
)

// Resolver supplies the bytes behind variables used with <<<.
type Resolver interface {
	Lookup(name string) ([]byte, bool)
}

// Vars is a Resolver backed by a map.
type Vars map[string][]byte

// Lookup implements Resolver.
func (v Vars) Lookup(name string) ([]byte, bool) {
	val, ok := v[name]
	return val, ok
}

// VarsFromStrings converts string values into a Vars.
func VarsFromStrings(in map[string]string) Vars {
	out := make(Vars, len(in))
	for k, v := range in {
		out[k] = []byte(v)
	}
	return out
}

// Compile builds the expression tree for tokens. vars may be nil if the
// tokens contain no <<< redirects.
//
// Any failure is returned as a *SyntaxError and no partial tree is produced.
func Compile(tokens []token.Token, vars Resolver) (expr.Node, error) {
	if len(tokens) == 0 {
		return nil, newSyntaxError(ErrEmptyInput, tokens, 0)
	}

	p := &parser{
		tokens:     tokens,
		categories: token.ClassifyAll(tokens),
		vars:       vars,
	}
	return p.pipeline()
}

// MustCompile is like Compile but panics on failure. It's intended for
// pipelines declared in package level variables.
func MustCompile(tokens []token.Token, vars Resolver) expr.Node {
	node, err := Compile(tokens, vars)
	if err != nil {
		panic(err)
	}
	return node
}

// CompileString splits line with token.Split then compiles the result.
func CompileString(line string, vars Resolver) (expr.Node, error) {
	tokens, err := token.Split(line)
	if err != nil {
		return nil, err
	}
	return Compile(tokens, vars)
}
