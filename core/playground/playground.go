// Package playground is an interactive prompt that compiles each line it reads
// and prints the resulting tree.
package playground

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/josephlewis42/cmdexpr/core/compiler"
	"github.com/josephlewis42/cmdexpr/core/config"
	"github.com/josephlewis42/cmdexpr/core/logger"
	"github.com/josephlewis42/cmdexpr/core/render"
	"github.com/josephlewis42/cmdexpr/core/token"
)

const (
	DefaultPrompt = "cmdexpr> "

	// BuiltinPrefix starts a line that runs a builtin rather than compiling.
	BuiltinPrefix = ":"
)

type Playground struct {
	Stdout io.Writer
	Stderr io.Writer

	Vars    compiler.Vars
	Printer *render.Printer
	Events  *logger.SessionLogger

	history []string

	// Set to true to quit the playground
	Quit bool
}

// New creates a playground seeded from the configuration.
func New(stdout, stderr io.Writer, cfg *config.Configuration, events *logger.SessionLogger) *Playground {
	return &Playground{
		Stdout:  stdout,
		Stderr:  stderr,
		Vars:    cfg.Resolver(),
		Printer: render.FromConfig(cfg),
		Events:  events,
	}
}

// Run reads lines until the input is closed or a builtin quits.
func (p *Playground) Run(stdin io.ReadCloser, isTerminal bool) error {
	cfg := &readline.Config{
		Prompt: DefaultPrompt,
		Stdin:  readline.NewCancelableStdin(stdin),
		Stdout: p.Stdout,
		Stderr: p.Stderr,
		FuncIsTerminal: func() bool {
			return isTerminal
		},
	}

	if err := cfg.Init(); err != nil {
		return err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return err
	}
	defer rl.Close()

	for !p.Quit {
		line, err := rl.Readline()

		switch {
		case err == io.EOF:
			return nil // Input closed, quit.

		case err == readline.ErrInterrupt:
			// Interrupt clears line.
			continue

		case err != nil:
			log.Printf("Error readline: %v", err)
			continue

		case len(strings.TrimSpace(line)) == 0:
			continue // empty line

		default:
			p.Eval(line)
		}
	}
	return nil
}

// Eval runs a single line, either a builtin or a pipeline to compile.
// It returns the exit status, zero on success.
func (p *Playground) Eval(line string) int {
	p.history = append(p.history, line)

	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, BuiltinPrefix) {
		return p.runBuiltin(strings.Fields(strings.TrimPrefix(trimmed, BuiltinPrefix)))
	}

	return p.compile(line)
}

func (p *Playground) compile(line string) int {
	tokens, err := token.Split(line)
	if err != nil {
		fmt.Fprintln(p.Stderr, p.Printer.Error(nil, err))
		return 1
	}

	tree, err := compiler.Compile(tokens, p.Vars)
	if p.Events != nil {
		if logErr := p.Events.Record(logger.NewCompile("playground", tokens, tree, err)); logErr != nil {
			log.Printf("Error recording event: %v", logErr)
		}
	}

	if err != nil {
		fmt.Fprintln(p.Stderr, p.Printer.Error(tokens, err))
		return 1
	}

	fmt.Fprintln(p.Stdout, p.Printer.Tree(tree))
	return 0
}

func (p *Playground) runBuiltin(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(p.Stderr, "missing builtin name, try :help")
		return 1
	}

	builtin, ok := AllBuiltins[args[0]]
	if !ok {
		fmt.Fprintf(p.Stderr, "%s%s: unknown builtin, try :help\n", BuiltinPrefix, args[0])
		return 1
	}

	return builtin.Main(p, args)
}
