package schema_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/automaton/pkg/dfa"
	"github.com/aretw0/automaton/pkg/domain"
	"github.com/aretw0/automaton/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const div3YAML = `
name: div3
description: binary numbers divisible by three
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
  - {input: "110", accept: true}
  - {input: "101", accept: false}
`

func TestDecode_YAML(t *testing.T) {
	def, err := schema.Decode([]byte(div3YAML), ".yaml")
	require.NoError(t, err)

	assert.Equal(t, "div3", def.Name)
	assert.Equal(t, []string{"q0", "q1", "q2"}, def.States)
	assert.Equal(t, []string{"0", "1"}, def.Sigma)
	assert.Len(t, def.Transitions, 6)
	assert.Len(t, def.Cases, 3)
}

func TestDecode_JSON(t *testing.T) {
	data := []byte(`{"name":"one","states":["s"],"sigma":["a"],"start":"s","final":["s"],
		"transitions":[{"from":"s","to":"s","on":"a"}]}`)

	def, err := schema.Decode(data, ".JSON")
	require.NoError(t, err)
	assert.Equal(t, "one", def.Name)
	assert.Equal(t, domain.Transition{From: "s", To: "s", On: "a"}, def.Transitions[0])

	_, err = schema.Decode([]byte(`{"name":`), ".json")
	assert.ErrorIs(t, err, domain.ErrMalformed)
}

func TestDecodeFile_DefaultsName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "parity.yml")
	content := "states: [even]\nsigma: [\"1\"]\nstart: even\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	def, err := schema.DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "parity", def.Name)
}

func TestDecodeMap(t *testing.T) {
	def, err := schema.DecodeMap(map[string]any{
		"name":   "m",
		"states": []any{"a", "b"},
		"sigma":  []any{"x"},
		"start":  "a",
		"final":  []any{"b"},
		"transitions": []any{
			map[string]any{"from": "a", "to": "b", "on": "x"},
		},
	})
	require.NoError(t, err)

	d, err := schema.Build(def)
	require.NoError(t, err)
	assert.True(t, d.Accepts("x"))
	assert.False(t, d.Accepts("xx"))
}

func TestBuild_DivisibleBy3(t *testing.T) {
	def, err := schema.Decode([]byte(div3YAML), ".yaml")
	require.NoError(t, err)

	d, err := schema.Build(def)
	require.NoError(t, err)

	assert.True(t, d.Accepts("110"))
	assert.False(t, d.Accepts("101"))
	assert.NoError(t, schema.Check(def, d))
}

func TestValidate_ReportsEverything(t *testing.T) {
	def := &domain.Definition{
		States: []string{"a", "a", ""},
		Sigma:  []string{"0", "xy"},
		Start:  "nope",
		Final:  []string{"ghost"},
		Transitions: []domain.Transition{
			{From: "a", To: "b", On: "0"},
			{From: "a", To: "a", On: "1"},
			{From: "a", To: "a", On: "0"},
		},
	}

	err := schema.Validate(def)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformed)

	problems := schema.ValidationErrors(err)
	fields := make([]string, 0, len(problems))
	for _, p := range problems {
		var ve *schema.ValidationError
		require.True(t, errors.As(p, &ve))
		fields = append(fields, ve.Field)
	}
	assert.Equal(t, []string{
		"states[1]",
		"states[2]",
		"sigma[1]",
		"start",
		"final[0]",
		"transitions[0].to",
		"transitions[1].on",
		"transitions[2]",
	}, fields)

	_, err = schema.Build(def)
	assert.ErrorIs(t, err, domain.ErrMalformed)
}

func TestValidate_NamesOutsideTextForm(t *testing.T) {
	def := &domain.Definition{
		States: []string{"a", "-", "{}", "b c"},
		Sigma:  []string{"0", " "},
		Transitions: []domain.Transition{
			{From: "a", To: "a", On: "\t"},
		},
	}

	problems := schema.ValidationErrors(schema.Validate(def))
	reasons := make(map[string]string, len(problems))
	for _, p := range problems {
		var ve *schema.ValidationError
		require.True(t, errors.As(p, &ve))
		reasons[ve.Field] = ve.Reason
	}
	assert.Equal(t, map[string]string{
		"states[1]":         "state name is reserved",
		"states[2]":         "state name is reserved",
		"states[3]":         "state name cannot contain whitespace",
		"sigma[1]":          "symbol cannot be whitespace",
		"transitions[0].on": "symbol cannot be whitespace",
	}, reasons)
}

func TestValidate_Nondeterminism(t *testing.T) {
	def := &domain.Definition{
		States: []string{"a", "b"},
		Sigma:  []string{"0"},
		Transitions: []domain.Transition{
			{From: "a", To: "a", On: "0"},
			{From: "a", To: "b", On: "0"},
		},
	}
	err := schema.Validate(def)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nondeterministic")

	def.Transitions[1].To = "a"
	assert.NoError(t, schema.Validate(def), "repeating the same move is harmless")
}

func TestExport_RoundTrip(t *testing.T) {
	def, err := schema.Decode([]byte(div3YAML), ".yaml")
	require.NoError(t, err)
	d, err := schema.Build(def)
	require.NoError(t, err)

	exported := schema.Export("div3", d)
	assert.Equal(t, def.States, exported.States)
	assert.Equal(t, def.Sigma, exported.Sigma)
	assert.Equal(t, def.Start, exported.Start)
	assert.Equal(t, def.Final, exported.Final)
	assert.ElementsMatch(t, def.Transitions, exported.Transitions)

	rebuilt, err := schema.Build(exported)
	require.NoError(t, err)
	assert.True(t, dfa.Equal(d, rebuilt))

	for _, ext := range []string{".yaml", ".json"} {
		data, err := schema.Encode(exported, ext)
		require.NoError(t, err)
		back, err := schema.Decode(data, ext)
		require.NoError(t, err)
		assert.Equal(t, exported, back, ext)
	}
}

func TestCheck_Failures(t *testing.T) {
	def, err := schema.Decode([]byte(div3YAML), ".yaml")
	require.NoError(t, err)
	d, err := schema.Build(def)
	require.NoError(t, err)

	def.Cases = append(def.Cases, domain.Case{Input: "1", Accept: true})
	err = schema.Check(def, d)
	require.Error(t, err)

	var failure *schema.CaseFailure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, "1", failure.Input)
	assert.True(t, failure.Want)
	assert.False(t, failure.Got)
}

func TestParseSymbol(t *testing.T) {
	sym, err := schema.ParseSymbol("λ")
	require.NoError(t, err)
	assert.Equal(t, dfa.Symbol('λ'), sym)

	_, err = schema.ParseSymbol("")
	assert.ErrorIs(t, err, domain.ErrMalformed)
	_, err = schema.ParseSymbol("ab")
	assert.ErrorIs(t, err, domain.ErrMalformed)
	_, err = schema.ParseSymbol(" ")
	assert.ErrorIs(t, err, domain.ErrMalformed)
}
