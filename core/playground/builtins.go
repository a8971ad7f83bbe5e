package playground

import (
	"encoding/hex"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/josephlewis42/cmdexpr/core/token"
	"github.com/pborman/getopt/v2"
)

// AllBuiltins holds a list of all registered playground builtins
var AllBuiltins = make(map[string]Builtin)

type Builtin interface {
	Main(p *Playground, args []string) int
}

type BuiltinFunc func(p *Playground, args []string) int

func (f BuiltinFunc) Main(p *Playground, args []string) int {
	return f(p, args)
}

var _ Builtin = (BuiltinFunc)(nil)

// ListBuiltins returns the sorted names of all builtins.
func ListBuiltins() []string {
	var out []string
	for k := range AllBuiltins {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

type simpleCommand struct {
	// Use holds a one line usage string
	Use string
	// Short holds a one line description of the command.
	Short string

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *simpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}

	return s.flags
}

// PrintHelp writes help for the command to the given writer.
func (s *simpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// Run parses the flags and, if successful, calls the callback with the
// remaining positional arguments.
func (s *simpleCommand) Run(p *Playground, args []string, callback func(args []string) int) int {
	opts := s.Flags()
	showHelp := opts.BoolLong("help", 'h', "show this help and exit")

	if err := opts.Getopt(args, nil); err != nil {
		fmt.Fprintf(p.Stderr, "error: %s\n\n", err)
		s.PrintHelp(p.Stderr)
		return 1
	}

	if *showHelp {
		s.PrintHelp(p.Stdout)
		return 0
	}

	return callback(opts.Args())
}

// Let binds a variable for use with <<<.
func Let(p *Playground, args []string) int {
	cmd := &simpleCommand{
		Use:   ":let [-x] NAME VALUE...",
		Short: "Bind NAME to the VALUE words joined by spaces.",
	}
	isHex := cmd.Flags().Bool('x', "VALUE is hex encoded bytes")

	return cmd.Run(p, args, func(args []string) int {
		if len(args) < 1 {
			cmd.PrintHelp(p.Stderr)
			return 1
		}

		name := args[0]
		value := []byte(strings.Join(args[1:], " "))
		if *isHex {
			decoded, err := hex.DecodeString(string(value))
			if err != nil {
				fmt.Fprintf(p.Stderr, "let: %v\n", err)
				return 1
			}
			value = decoded
		}

		if p.Vars == nil {
			p.Vars = make(map[string][]byte)
		}
		p.Vars[name] = value
		return 0
	})
}

// Unset removes variables.
func Unset(p *Playground, args []string) int {
	cmd := &simpleCommand{
		Use:   ":unset NAME...",
		Short: "Remove variable bindings.",
	}

	return cmd.Run(p, args, func(args []string) int {
		for _, name := range args {
			delete(p.Vars, name)
		}
		return 0
	})
}

// Vars lists the bound variables.
func Vars(p *Playground, args []string) int {
	cmd := &simpleCommand{
		Use:   ":vars",
		Short: "List variables and their byte values.",
	}

	return cmd.Run(p, args, func(args []string) int {
		var names []string
		for name := range p.Vars {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			fmt.Fprintf(p.Stdout, "$%s = %q\n", name, p.Vars[name])
		}
		return 0
	})
}

// Format shows or changes how trees are printed.
func Format(p *Playground, args []string) int {
	cmd := &simpleCommand{
		Use:   ":format [compact|pretty]",
		Short: "Show or set the tree output format.",
	}

	return cmd.Run(p, args, func(args []string) int {
		switch {
		case len(args) == 0 && p.Printer.Pretty:
			fmt.Fprintln(p.Stdout, "pretty")
		case len(args) == 0:
			fmt.Fprintln(p.Stdout, "compact")
		case args[0] == "pretty":
			p.Printer.Pretty = true
		case args[0] == "compact":
			p.Printer.Pretty = false
		default:
			fmt.Fprintf(p.Stderr, "format: unknown format %q\n", args[0])
			return 1
		}
		return 0
	})
}

// Tokens shows how a line is split and classified without compiling it.
// Arguments are passed through untouched so they may look like flags.
func Tokens(p *Playground, args []string) int {
	tokens, err := token.Split(strings.Join(args[1:], " "))
	if err != nil {
		fmt.Fprintf(p.Stderr, "tokens: %v\n", err)
		return 1
	}

	tw := tabwriter.NewWriter(p.Stdout, 0, 8, 2, ' ', 0)
	defer tw.Flush()

	for i, category := range token.ClassifyAll(tokens) {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i, tokens[i], tokens[i].Kind, category)
	}
	return 0
}

// History prints or clears the lines entered so far.
func History(p *Playground, args []string) int {
	cmd := &simpleCommand{
		Use:   ":history [-c]",
		Short: "Display or clear the history list.",
	}
	clear := cmd.Flags().Bool('c', "clear the history by deleting all entries")

	return cmd.Run(p, args, func(args []string) int {
		if *clear {
			p.history = nil
			return 0
		}

		for i, line := range p.history {
			fmt.Fprintf(p.Stdout, "%5d  %s\n", i+1, line)
		}
		return 0
	})
}

// Help lists the builtins.
func Help(p *Playground, args []string) int {
	fmt.Fprintln(p.Stdout, "Enter a pipeline to compile it, e.g. cat < in | sort > out")
	fmt.Fprintln(p.Stdout, "Builtins:")
	for _, name := range ListBuiltins() {
		fmt.Fprintf(p.Stdout, "  %s%s\n", BuiltinPrefix, name)
	}
	return 0
}

// Quit exits the playground.
func Quit(p *Playground, args []string) int {
	p.Quit = true
	return 0
}

func init() {
	AllBuiltins["let"] = BuiltinFunc(Let)
	AllBuiltins["unset"] = BuiltinFunc(Unset)
	AllBuiltins["vars"] = BuiltinFunc(Vars)
	AllBuiltins["format"] = BuiltinFunc(Format)
	AllBuiltins["tokens"] = BuiltinFunc(Tokens)
	AllBuiltins["history"] = BuiltinFunc(History)
	AllBuiltins["help"] = BuiltinFunc(Help)
	AllBuiltins["quit"] = BuiltinFunc(Quit)
	AllBuiltins["exit"] = BuiltinFunc(Quit)
}
