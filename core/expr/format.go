package expr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

func (c *Command) String() string {
	quoted := make([]string, 0, len(c.Args)+1)
	for _, word := range c.Argv() {
		quoted = append(quoted, strconv.Quote(word))
	}
	return fmt.Sprintf("Cmd([%s])", strings.Join(quoted, ", "))
}

func (p *Pipe) String() string {
	return fmt.Sprintf("Pipe(%s, %s)", p.Left, p.Right)
}

func (r *Redirect) String() string {
	return fmt.Sprintf("Io(%s, %s)", r.Kind, r.Inner)
}

func (s StdinPath) String() string  { return fmt.Sprintf("StdinPath(%q)", s.Path) }
func (StdinNull) String() string    { return "StdinNull" }
func (s StdoutPath) String() string { return fmt.Sprintf("StdoutPath(%q)", s.Path) }
func (StdoutNull) String() string   { return "StdoutNull" }

func (s StdinBytes) String() string {
	vals := make([]string, 0, len(s.Bytes))
	for _, b := range s.Bytes {
		vals = append(vals, strconv.Itoa(int(b)))
	}
	return fmt.Sprintf("StdinBytes([%s])", strings.Join(vals, ", "))
}

// Pretty renders the node across multiple lines, children aligned under the
// opening parenthesis of their parent:
//
//	Pipe(Cmd(["a"]),
//	     Cmd(["b"])
//	)
//
// Removing every newline and the indentation following it yields String().
func Pretty(node Node) string {
	sb := &strings.Builder{}
	writePretty(sb, node, 0)
	return sb.String()
}

func writePretty(sb *strings.Builder, node Node, indent int) {
	switch n := node.(type) {
	case *Pipe:
		const open = "Pipe("
		childIndent := indent + len(open)
		sb.WriteString(open)
		writePretty(sb, n.Left, childIndent)
		sb.WriteString(", \n")
		sb.WriteString(strings.Repeat(" ", childIndent))
		writePretty(sb, n.Right, childIndent)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", indent))
		sb.WriteString(")")
	case *Redirect:
		const open = "Io("
		childIndent := indent + len(open)
		sb.WriteString(open)
		sb.WriteString(n.Kind.String())
		sb.WriteString(", \n")
		sb.WriteString(strings.Repeat(" ", childIndent))
		writePretty(sb, n.Inner, childIndent)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", indent))
		sb.WriteString(")")
	default:
		sb.WriteString(node.String())
	}
}

var prettyBreak = regexp.MustCompile("\n *")

// Compact collapses output from Pretty back into the single line form.
func Compact(pretty string) string {
	return prettyBreak.ReplaceAllString(pretty, "")
}
