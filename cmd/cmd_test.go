package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(args ...string) (string, string, error) {
	compilePretty, compileCompact = false, false

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// Commands share package level flag state so they run as one sequence.
func TestCommands(t *testing.T) {
	dir := t.TempDir()

	t.Run("init", func(t *testing.T) {
		_, stderr, err := executeCommand("init", "--config", dir)
		require.NoError(t, err)
		assert.Contains(t, stderr, "Writing config.yaml")
		assert.FileExists(t, filepath.Join(dir, "config.yaml"))

		// Keep output free of escape codes regardless of the terminal.
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("output_format: compact\ncolor: never\napp_log: app.log\n"), 0600))
	})

	t.Run("compile", func(t *testing.T) {
		stdout, _, err := executeCommand("compile", "--config", dir, "--compact", "--var", "in=ab", "--", `cat <<< $in | wc -l > null`)
		require.NoError(t, err)
		assert.Equal(t, "Pipe(Io(StdinBytes([97, 98]), Cmd([\"cat\"])), Io(StdoutNull, Cmd([\"wc\", \"-l\"])))\n", stdout)
	})

	t.Run("compile pretty", func(t *testing.T) {
		stdout, _, err := executeCommand("compile", "--config", dir, "--pretty", "--", "a | b")
		require.NoError(t, err)
		assert.Equal(t, "Pipe(Cmd([\"a\"]), \n     Cmd([\"b\"])\n)\n", stdout)
	})

	t.Run("compile failure", func(t *testing.T) {
		stdout, stderr, err := executeCommand("compile", "--config", dir, "--", "a <")
		assert.ErrorIs(t, err, errCompileFailed)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "syntax error: operator has no operand")
	})

	t.Run("check", func(t *testing.T) {
		stdout, _, err := executeCommand("check", "--config", dir, filepath.Join("..", "core", "suite", "testdata", "pipelines.yaml"))
		require.NoError(t, err)
		assert.Contains(t, stdout, "pipelines (")
		assert.Contains(t, stdout, "PASS pipelines/program only")
		assert.NotContains(t, stdout, "FAIL")
	})

	t.Run("check failure", func(t *testing.T) {
		suitePath := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(suitePath, []byte("name: bad\ncases:\n  - name: wrong\n    line: a\n    tree: Cmd([\"b\"])\n"), 0600))

		stdout, _, err := executeCommand("check", "--config", dir, suitePath)
		assert.EqualError(t, err, "1 case(s) failed")
		assert.Contains(t, stdout, "bad (1 cases)\n")
		assert.Contains(t, stdout, `FAIL bad/wrong: want Cmd(["b"]), got Cmd(["a"])`)
	})

	t.Run("events report", func(t *testing.T) {
		stdout, _, err := executeCommand("events", "report", "--config", dir)
		require.NoError(t, err)
		assert.Contains(t, stdout, "compile_report:")
		assert.Contains(t, stdout, "check_report:")
		assert.Contains(t, stdout, "failed: 1")
		assert.Contains(t, stdout, "dangling_operator")
	})

	t.Run("builtins", func(t *testing.T) {
		stdout, _, err := executeCommand("builtins")
		require.NoError(t, err)
		assert.Contains(t, stdout, ":let\n")
		assert.Contains(t, stdout, ":quit\n")
	})
}
