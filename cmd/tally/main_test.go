package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	out := &bytes.Buffer{}
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestVersionCommand(t *testing.T) {
	assert.Contains(t, execute(t, "", "version"), "tally version ")
}

func TestRunCommand_JSON(t *testing.T) {
	out := execute(t, "+\n", "run", "--json", "--config", "")
	assert.Contains(t, out, `"count":1`)
}

func TestTreeCommand(t *testing.T) {
	out := execute(t, "", "tree", "--replay", "off")
	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	assert.Contains(t, out, "switch: off")
}

func TestKeysCommand(t *testing.T) {
	out := execute(t, "", "keys")
	assert.Contains(t, out, "Keys")
}
