// Package suite runs YAML files of pipeline compilation cases, used to check
// embeddings before they ship.
package suite

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/josephlewis42/cmdexpr/core/compiler"
	"github.com/josephlewis42/cmdexpr/core/expr"
	"github.com/josephlewis42/cmdexpr/core/logger"
	"github.com/josephlewis42/cmdexpr/core/token"
	"gopkg.in/yaml.v2"
)

// Suite is a named list of cases sharing a set of variables.
type Suite struct {
	Name      string            `yaml:"name"`
	Variables map[string]string `yaml:"variables"`
	Cases     []Case            `yaml:"cases"`
}

// Case is a single line to compile along with the expected outcome. Exactly
// one of Tree or Error must be set.
type Case struct {
	Name string `yaml:"name"`
	Line string `yaml:"line"`
	// Tree is the expected compact rendering of the compiled tree.
	Tree string `yaml:"tree,omitempty"`
	// Error is the expected failure code, e.g. dangling_operator.
	Error string `yaml:"error,omitempty"`
}

// Result is the outcome of running a Case.
type Result struct {
	Case   Case
	Passed bool
	// Actual is the rendered tree or the failure code that was produced.
	Actual string
	Event  *logger.Compile
}

// Load reads a suite from YAML.
func Load(r io.Reader) (*Suite, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var out Suite
	if err := yaml.UnmarshalStrict(data, &out); err != nil {
		return nil, err
	}

	for i, c := range out.Cases {
		if (c.Tree == "") == (c.Error == "") {
			return nil, fmt.Errorf("case %d (%q): exactly one of tree or error must be set", i, c.Name)
		}
	}

	return &out, nil
}

// Run compiles every case. extra variables are visible to all cases but the
// suite's own variables take precedence.
func (s *Suite) Run(extra map[string]string) []Result {
	vars := compiler.VarsFromStrings(extra)
	for k, v := range compiler.VarsFromStrings(s.Variables) {
		vars[k] = v
	}

	out := make([]Result, 0, len(s.Cases))
	for _, c := range s.Cases {
		out = append(out, runCase(c, vars))
	}
	return out
}

func runCase(c Case, vars compiler.Resolver) Result {
	tokens, err := token.Split(c.Line)
	var tree expr.Node
	if err == nil {
		tree, err = compiler.Compile(tokens, vars)
	}

	result := Result{
		Case:  c,
		Event: logger.NewCompile("check", tokens, tree, err),
	}

	var syntaxErr *compiler.SyntaxError
	switch {
	case errors.As(err, &syntaxErr):
		result.Actual = syntaxErr.Code()
		result.Passed = c.Error == result.Actual
	case err != nil:
		result.Actual = err.Error()
	default:
		result.Actual = tree.String()
		result.Passed = c.Tree == result.Actual
	}

	return result
}

// Failed counts the results that didn't pass.
func Failed(results []Result) int {
	count := 0
	for _, r := range results {
		if !r.Passed {
			count++
		}
	}
	return count
}
