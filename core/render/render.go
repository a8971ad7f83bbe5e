// Package render formats compiled trees and compilation failures for people.
package render

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/josephlewis42/cmdexpr/core/compiler"
	"github.com/josephlewis42/cmdexpr/core/config"
	"github.com/josephlewis42/cmdexpr/core/expr"
	"github.com/josephlewis42/cmdexpr/core/token"
)

var (
	ColorBoldBlue  = []color.Attribute{color.FgBlue, color.Bold}
	ColorBoldGreen = []color.Attribute{color.FgGreen, color.Bold}
	ColorBoldCyan  = []color.Attribute{color.FgCyan, color.Bold}
	ColorBoldRed   = []color.Attribute{color.FgRed, color.Bold}
)

// ShouldColor resolves a color setting (always, auto or never). auto follows
// whether stdout is a terminal.
func ShouldColor(setting string) bool {
	switch setting {
	case config.ColorNever:
		return false
	case config.ColorAlways:
		return true
	default:
		return !color.NoColor
	}
}

// Printer renders output in the configured format.
type Printer struct {
	Pretty bool
	Color  bool
}

// FromConfig creates a Printer following the configuration.
func FromConfig(cfg *config.Configuration) *Printer {
	return &Printer{
		Pretty: cfg.Pretty(),
		Color:  ShouldColor(cfg.Color),
	}
}

// Sprintf formats the string and colors it if enabled.
func (p *Printer) Sprintf(attrs []color.Attribute, format string, a ...interface{}) string {
	if !p.Color {
		return fmt.Sprintf(format, a...)
	}

	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprintf(format, a...)
}

// Tree renders a compiled tree.
func (p *Printer) Tree(node expr.Node) string {
	if p.Pretty {
		return expr.Pretty(node)
	}
	return node.String()
}

// Error renders a compilation failure. Syntax errors point at the offending
// token:
//
//	syntax error: operator has no operand
//	  a <
//	    ^
func (p *Printer) Error(tokens []token.Token, err error) string {
	var syntaxErr *compiler.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return p.Sprintf(ColorBoldRed, "error:") + " " + err.Error()
	}

	sb := &strings.Builder{}
	sb.WriteString(p.Sprintf(ColorBoldRed, "syntax error:"))
	fmt.Fprintf(sb, " %v\n", syntaxErr.Kind)

	rendered := make([]string, len(tokens))
	column := 0
	for i, tok := range tokens {
		rendered[i] = tok.String()
		if i < syntaxErr.Pos {
			column += utf8.RuneCountInString(rendered[i]) + 1
		}
	}

	fmt.Fprintf(sb, "  %s\n", strings.Join(rendered, " "))
	sb.WriteString("  ")
	sb.WriteString(strings.Repeat(" ", column))
	sb.WriteString(p.Sprintf(ColorBoldCyan, "^"))
	return sb.String()
}
