package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/automaton/pkg/adapters/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const div3YAML = `name: div3
states: [q0, q1, q2]
sigma: ["0", "1"]
start: q0
final: [q0]
transitions:
  - {from: q0, to: q0, on: "0"}
  - {from: q0, to: q1, on: "1"}
  - {from: q1, to: q2, on: "0"}
  - {from: q1, to: q0, on: "1"}
  - {from: q2, to: q1, on: "0"}
  - {from: q2, to: q2, on: "1"}
cases:
  - {input: "", accept: true}
  - {input: "11", accept: true}
`

const islandYAML = `states: [a, b]
sigma: ["x"]
start: a
final: [a]
transitions:
  - {from: a, to: a, on: "x"}
`

func setupDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestList(t *testing.T) {
	dir := setupDir(t, map[string]string{"div3.yaml": div3YAML, "island.yml": islandYAML})

	out, err := execute(t, "", "list", "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "div3\nisland\n", out)
}

func TestShow(t *testing.T) {
	dir := setupDir(t, map[string]string{"div3.yaml": div3YAML})

	out, err := execute(t, "", "show", "div3", "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "Q={q0q1q2}\nSigma = {0 1}\ndelta =\n\t0\t1\nq0\tq0\tq1\nq1\tq2\tq0\nq2\tq1\tq2\nq0 = q0\nF = {q0}\n", out)

	out, err = execute(t, "", "show", "div3", "--dir", dir, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "div3"`)

	_, err = execute(t, "", "show", "div3", "--dir", dir, "--format", "xml")
	assert.Error(t, err)

	_, err = execute(t, "", "show", "nope", "--dir", dir)
	assert.Error(t, err)
}

func TestAccepts(t *testing.T) {
	dir := setupDir(t, map[string]string{"div3.yaml": div3YAML})

	out, err := execute(t, "", "accepts", "div3", "110", "101", "", "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "\"110\"\tACCEPT\n\"101\"\tREJECT\n\"\"\tACCEPT\n", out)

	out, err = execute(t, "", "accepts", "div3", "12", "--trace", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "path: q0 -> q1")
	assert.Contains(t, out, "reason: no transition")

	_, err = execute(t, "", "accepts", "div3", "1", "--strict", "--dir", dir)
	assert.ErrorIs(t, err, errRejected)
}

func TestRun(t *testing.T) {
	dir := setupDir(t, map[string]string{"div3.yaml": div3YAML})

	out, err := execute(t, "11\n10\nquit\n:quit\n110\n", "run", "div3", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "\"11\"\tACCEPT")
	assert.Contains(t, out, "\"10\"\tREJECT")
	assert.Contains(t, out, "\"quit\"\tREJECT", "bare words are tested as input")
	assert.NotContains(t, out, "\"110\"", "input after :quit is ignored")
}

func TestSwap(t *testing.T) {
	dir := setupDir(t, map[string]string{"div3.yaml": div3YAML})

	out, err := execute(t, "", "swap", "div3", "0", "1", "--save", "div3swapped", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "q0\tq1\tq0\n")

	out, err = execute(t, "", "accepts", "div3swapped", "001", "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "\"001\"\tACCEPT\n", out)

	out, err = execute(t, "", "show", "div3", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "q0\tq0\tq1\n", "the source is untouched")

	_, err = execute(t, "", "swap", "div3", "01", "1", "--dir", dir)
	assert.Error(t, err)
}

func TestGraph(t *testing.T) {
	dir := setupDir(t, map[string]string{"div3.yaml": div3YAML})

	out, err := execute(t, "", "graph", "div3", "--input", "1", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "graph LR")
	assert.Contains(t, out, "class s1 current;")
}

func TestValidate(t *testing.T) {
	dir := setupDir(t, map[string]string{"div3.yaml": div3YAML, "island.yml": islandYAML})

	out, err := execute(t, "", "validate", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "✅ div3 (3 states, 2 cases)")
	assert.Contains(t, out, "unreachable state b")

	bad := setupDir(t, map[string]string{"bad.yaml": "states: [a]\nsigma: [\"x\"]\nstart: ghost\n"})
	out, err = execute(t, "", "validate", "--dir", bad)
	require.Error(t, err)
	assert.Contains(t, out, "❌ bad")
}

func TestPushAndRedisSource(t *testing.T) {
	mr := miniredis.RunT(t)
	dir := setupDir(t, map[string]string{"div3.yaml": div3YAML})

	out, err := execute(t, "", "push", "--dir", dir, "--redis", mr.Addr())
	require.NoError(t, err)
	assert.Equal(t, "pushed div3\n", out)

	store := redis.New(mr.Addr(), "", 0)
	defer store.Close()
	names, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"div3"}, names)

	out, err = execute(t, "", "accepts", "div3", "11", "--source", "redis", "--redis", mr.Addr())
	require.NoError(t, err)
	assert.Equal(t, "\"11\"\tACCEPT\n", out)
}

func TestUnknownSource(t *testing.T) {
	_, err := execute(t, "", "list", "--source", "ftp")
	assert.ErrorContains(t, err, "unknown source")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "automaton version "))
}
