// Package expr defines the expression tree produced by the compiler and
// consumed by a process execution engine.
//
// A tree is built once, bottom-up, and never mutated afterwards. Every node
// exclusively owns its children and the words or bytes it carries.
package expr

import "context"

// Node is a command expression. The concrete type is one of *Command, *Pipe
// or *Redirect.
type Node interface {
	// String renders the node in the compact debug format, for example
	// Pipe(Cmd(["a"]), Cmd(["b"])).
	String() string

	isNode()
}

// Command runs Program with Args and inherited stdio.
type Command struct {
	Program string
	Args    []string
}

// NewCommand creates a command leaf, args are copied.
func NewCommand(program string, args ...string) *Command {
	return &Command{
		Program: program,
		Args:    append([]string(nil), args...),
	}
}

// Argv returns the program followed by its arguments.
func (c *Command) Argv() []string {
	return append([]string{c.Program}, c.Args...)
}

// Pipe connects the standard output of Left to the standard input of Right.
type Pipe struct {
	Left  Node
	Right Node
}

// NewPipe creates a pipe between two nodes.
func NewPipe(left, right Node) *Pipe {
	return &Pipe{Left: left, Right: right}
}

// Redirect applies a stdin or stdout override to Inner.
type Redirect struct {
	Kind  RedirectKind
	Inner Node
}

// NewRedirect wraps inner in a redirect.
func NewRedirect(kind RedirectKind, inner Node) *Redirect {
	return &Redirect{Kind: kind, Inner: inner}
}

func (*Command) isNode()  {}
func (*Pipe) isNode()     {}
func (*Redirect) isNode() {}

// RedirectKind is the source or sink of a redirect. The concrete type is one
// of StdinPath, StdinNull, StdinBytes, StdoutPath or StdoutNull.
type RedirectKind interface {
	String() string

	// Stdin reports whether the redirect replaces standard input, otherwise
	// it replaces standard output.
	Stdin() bool

	isRedirectKind()
}

// StdinPath reads standard input from a file.
type StdinPath struct{ Path string }

// StdinNull reads standard input from the null device.
type StdinNull struct{}

// StdinBytes supplies standard input inline.
type StdinBytes struct{ Bytes []byte }

// NewStdinBytes copies b into a StdinBytes redirect.
func NewStdinBytes(b []byte) StdinBytes {
	return StdinBytes{Bytes: append([]byte{}, b...)}
}

// StdoutPath writes standard output to a file.
type StdoutPath struct{ Path string }

// StdoutNull discards standard output.
type StdoutNull struct{}

func (StdinPath) Stdin() bool  { return true }
func (StdinNull) Stdin() bool  { return true }
func (StdinBytes) Stdin() bool { return true }
func (StdoutPath) Stdin() bool { return false }
func (StdoutNull) Stdin() bool { return false }

func (StdinPath) isRedirectKind()  {}
func (StdinNull) isRedirectKind()  {}
func (StdinBytes) isRedirectKind() {}
func (StdoutPath) isRedirectKind() {}
func (StdoutNull) isRedirectKind() {}

// Engine runs compiled trees. Implementations live outside this module.
//
// A Command runs the program with inherited stdio. A Pipe runs both sides
// concurrently with Left's stdout connected to Right's stdin. A Redirect
// applies its override to whatever Inner runs, outer overrides applied
// before inner ones.
type Engine interface {
	Run(ctx context.Context, node Node) error
}
