package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algostep/catalog"
	"github.com/katalvlaran/algostep/event"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	var out bytes.Buffer
	err := run(ctx, append([]string{"-v", "0"}, args...), strings.NewReader(stdin), &out)

	return out.String(), err
}

func TestRun_Continuous(t *testing.T) {
	out, err := runCLI(t, "", "--topic", "search", "--algorithm", "binary", "--speed", "0", "--size", "8", "--seed", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "running Binary Search (search/binary)")
	assert.Contains(t, out, "complete in")
	assert.Contains(t, out, "status: found")
}

func TestRun_Scenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bubble.yaml")
	require.NoError(t, os.WriteFile(path, []byte("array: [5, 3, 8, 1]\n"), 0o600))

	out, err := runCLI(t, "", "--scenario", path, "--speed", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "6 comparisons, 4 swaps")
	assert.Contains(t, out, "status: sorted 4 values")
	assert.Contains(t, out, "[1 3 5 8]")
}

func TestRun_StepMode(t *testing.T) {
	out, err := runCLI(t, "\n\n\n", "--mode", "step", "--speed", "0", "--topic", "dp", "--algorithm", "fibonacci", "--size", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "running Fibonacci Sequence (dp/fibonacci)")
	assert.Contains(t, out, "status: F(")
}

func TestRun_Interactive(t *testing.T) {
	stdin := strings.Join([]string{
		"list dp",
		"select dp fibonacci",
		"info",
		"speed x",
		"teleport",
		"select sorting sleep",
		"step",
		"quit",
	}, "\n")
	out, err := runCLI(t, stdin, "-i", "--speed", "0")
	require.NoError(t, err)

	assert.Contains(t, out, "bellmanFord")
	assert.Contains(t, out, "Fibonacci Sequence (dp/fibonacci)")
	assert.Contains(t, out, "error: usage: speed <ms>")
	assert.Contains(t, out, `unknown command "teleport"`)
	assert.Contains(t, out, "status: Cannot run sorting/sleep")
}

func TestRun_InvalidFlags(t *testing.T) {
	_, err := runCLI(t, "", "--topic", "music")
	assert.ErrorIs(t, err, catalog.ErrUnknownTopic)

	_, err = runCLI(t, "", "--no-such-flag")
	assert.Error(t, err)

	_, err = runCLI(t, "", "--scenario", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRenderer_BufferEvents(t *testing.T) {
	var out bytes.Buffer
	r := newRenderer(&out, func() []int { return []int{3, 5} })
	r.OnRunStart("sorting", "bubble")
	r.OnCheckpoint(event.Compared(0, 1))
	r.OnCheckpoint(event.Visited(2, "visit"))
	r.OnCounterChange(1, 0)
	r.OnComplete(1500 * time.Millisecond)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "running Bubble Sort (sorting/bubble)", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "[3 5]"))
	assert.NotContains(t, lines[2], "[3 5]")
	assert.Equal(t, "complete in 1.5s: 1 comparisons, 0 swaps", lines[3])
}

func TestCompleter_TopicsAndIDs(t *testing.T) {
	line := []rune("select gr")
	got, _ := completer().Do(line, len(line))
	require.Len(t, got, 1)
	assert.True(t, strings.HasPrefix(string(got[0]), "aphs"))

	line = []rune("select dp bell")
	got, _ = completer().Do(line, len(line))
	require.Len(t, got, 1)
	assert.True(t, strings.HasPrefix(string(got[0]), "manFord"))
}
