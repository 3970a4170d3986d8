package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waitingArea = `L.LL.LL.LL
LLLLLLL.LL
L.L.L..L..
LLLL.LL.LL
L.LL.LL.LL
L.LLLLL.LL
..L.L.....
LLLLLLLLLL
L.LLLLLL.L
L.LLLLL.LL
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRunPrintsBothParts(t *testing.T) {
	path := writeFile(t, t.TempDir(), "hall.txt", waitingArea)

	var stdout, stderr bytes.Buffer
	code := run([]string{path}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "Part 1: 37\nPart 2: 26\n", stdout.String())
}

func TestRunSelectsRulesAndPrintsGrid(t *testing.T) {
	path := writeFile(t, t.TempDir(), "hall.txt", waitingArea)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-rules", "visible", "-print", path}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "Part 2: 26", lines[0])
	assert.Equal(t, 26, strings.Count(stdout.String(), "#"))
}

func TestRunMultipleFilesWithConfig(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", waitingArea)
	b := writeFile(t, dir, "b.txt", "L\n")
	cfg := writeFile(t, dir, "seats.yaml", "rules: [adjacent]\nworkers: 2\nlog_level: warn\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", cfg, a, b}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, a+":\nPart 1: 37\n"+b+":\nPart 1: 1\n", stdout.String())
	assert.Empty(t, stderr.String(), "warn level should silence info records")
}

func TestRunReportsBadLayout(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", waitingArea)
	bad := writeFile(t, dir, "bad.txt", "LL\nL\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{good, bad}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stdout.String(), "Part 1: 37")
	assert.Contains(t, stderr.String(), "bad.txt")
}

func TestRunRoundLimit(t *testing.T) {
	path := writeFile(t, t.TempDir(), "hall.txt", waitingArea)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-max-rounds", "2", path}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "did not stabilize")
}

func TestRunUsageErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run(nil, &stdout, &stderr))
	assert.Equal(t, 2, run([]string{"-rules", "knight", "x.txt"}, &stdout, &stderr))
	assert.Equal(t, 2, run([]string{"-no-such-flag"}, &stdout, &stderr))
}

func TestRunRejectsRepeatedRule(t *testing.T) {
	path := writeFile(t, t.TempDir(), "hall.txt", waitingArea)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-rules", "adjacent,Adjacent", path}, &stdout, &stderr)

	assert.Equal(t, 2, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "more than once")
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"adjacent", "visible"}, splitList(" adjacent, ,visible "))
	assert.Nil(t, splitList(""))
}
