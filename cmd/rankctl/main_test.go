package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rankspace/ranked"
)

// run executes a fresh command tree and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestCount(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"count", "comb", "--n", "52", "--r", "5"}, "2598960"},
		{[]string{"count", "perm", "--n", "4"}, "24"},
		{[]string{"count", "kperm", "--n", "5", "--r", "2"}, "20"},
		{[]string{"count", "repperm", "--n", "3", "--r", "3"}, "27"},
		{[]string{"count", "msperm", "--freq", "2,1,2"}, "30"},
		{[]string{"count", "repcomb", "--n", "3", "--r", "4"}, "15"},
		{[]string{"count", "mscomb", "--freq", "2,0,1,3", "--r", "3"}, "6"},
		{[]string{"count", "subsets", "--n", "5", "--from", "2", "--to", "3"}, "20"},
		{[]string{"count", "subsets", "--n", "4", "--from", "3"}, "5"},
		{[]string{"count", "perm", "--n", "30"}, "265252859812191058636308480000000"},
	}
	for _, tc := range cases {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			out, _, err := run(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want+"\n", out)
		})
	}
}

func TestCount_Errors(t *testing.T) {
	_, _, err := run(t, "count", "bogus", "--n", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown family")

	_, _, err = run(t, "count", "comb", "--n", "3", "--r", "4")
	assert.ErrorIs(t, err, ranked.ErrInvalidDomainSize)
}

func TestRank(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"rank", "perm", "3", "2", "1", "0"}, "23"},
		{[]string{"rank", "kperm", "--n", "8", "4", "6", "2", "0"}, "1000"},
		{[]string{"rank", "comb", "--n", "8", "1", "2", "3", "4"}, "35"},
	}
	for _, tc := range cases {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			out, _, err := run(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want+"\n", out)
		})
	}

	_, _, err := run(t, "rank", "comb", "--n", "3", "0", "0")
	assert.ErrorIs(t, err, ranked.ErrOutOfRange)
	_, _, err = run(t, "rank", "subsets", "0")
	assert.Error(t, err)
}

func TestUnrank(t *testing.T) {
	out, _, err := run(t, "unrank", "perm", "--n", "4", "23")
	require.NoError(t, err)
	assert.Equal(t, "[3 2 1 0]\n", out)

	out, _, err = run(t, "unrank", "comb", "--source", "Red,Green,Blue", "--r", "2", "2")
	require.NoError(t, err)
	assert.Equal(t, "[Green Blue]\n", out)

	_, _, err = run(t, "unrank", "comb", "--n", "3", "--r", "2", "3")
	assert.ErrorIs(t, err, ranked.ErrOutOfRange)

	_, _, err = run(t, "unrank", "comb", "--n", "3", "--r", "2", "x")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	out, _, err := run(t, "list", "comb", "--source", "Red,Green,Blue", "--r", "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"[Red Green]", "[Red Blue]", "[Green Blue]"}, lines(out))

	out, _, err = run(t, "list", "perm", "--n", "3", "--step", "2", "--start", "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"[0 2 1]", "[1 2 0]", "[2 1 0]"}, lines(out))

	out, stderr, err := run(t, "list", "perm", "--n", "4", "--limit", "5")
	require.NoError(t, err)
	assert.Len(t, lines(out), 5)
	assert.Contains(t, stderr, "output truncated")

	_, _, err = run(t, "list", "perm", "--n", "3", "--step", "0")
	assert.ErrorIs(t, err, ranked.ErrInvalidStep)

	_, _, err = run(t, "list", "comb", "--n", "4", "--source", "a,b,c", "--r", "1")
	assert.Error(t, err)
}

func TestSample(t *testing.T) {
	out, _, err := run(t, "sample", "perm", "--n", "3", "--count", "6", "--distinct")
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"[0 1 2]", "[0 2 1]", "[1 0 2]", "[1 2 0]", "[2 0 1]", "[2 1 0]"},
		lines(out))

	a, _, err := run(t, "sample", "comb", "--n", "20", "--r", "3", "--count", "10", "--seed", "42", "--workers", "3")
	require.NoError(t, err)
	b, _, err := run(t, "sample", "comb", "--n", "20", "--r", "3", "--count", "10", "--seed", "42", "--workers", "3")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, lines(a), 10)

	_, _, err = run(t, "sample", "perm", "--n", "3", "--count", "7", "--distinct")
	assert.Error(t, err)
}

func TestChunk(t *testing.T) {
	out, _, err := run(t, "chunk", "subsets", "--n", "10", "--workers", "3")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"worker 0: 342",
		"worker 1: 341",
		"worker 2: 341",
		"total: 1024",
	}, lines(out))

	_, _, err = run(t, "chunk", "perm", "--n", "12", "--max", "1000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "above --max")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rankctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n  format: json\nlimit: 2\nworkers: 2\n"), 0o600))

	out, stderr, err := run(t, "--config", path, "list", "perm", "--n", "3")
	require.NoError(t, err)
	assert.Len(t, lines(out), 2)
	assert.Contains(t, stderr, `"msg":"configuration loaded"`)

	out, _, err = run(t, "--config", path, "chunk", "comb", "--n", "6", "--r", "3")
	require.NoError(t, err)
	assert.Equal(t, []string{"worker 0: 10", "worker 1: 10", "total: 20"}, lines(out))
}

func TestConfigFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := run(t, "--config", filepath.Join(dir, "missing.yaml"), "count", "perm", "--n", "3")
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("workers: 0\n"), 0o600))
	_, _, err = run(t, "--config", bad, "count", "perm", "--n", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workers")

	_, _, err = run(t, "--log-level", "loud", "count", "perm", "--n", "3")
	assert.Error(t, err)
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 9\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	want := DefaultConfig()
	want.Seed = 9
	assert.Equal(t, want, cfg)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(LogConfig{Level: "WARN", Format: "json"}, &buf)
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"level":"warn"`)

	_, err = NewLogger(LogConfig{Level: "info", Format: "xml"}, &buf)
	assert.Error(t, err)
}
