package tui

import (
	"bytes"
	"testing"

	"github.com/aretw0/automaton/pkg/dfa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdown(t *testing.T) {
	d := dfa.New()
	require.NoError(t, d.AddState("even"))
	require.NoError(t, d.AddState("odd"))
	d.AddSigma('1')
	d.AddSigma('0')
	require.NoError(t, d.SetStart("even"))
	require.NoError(t, d.SetFinal("even"))
	require.NoError(t, d.AddTransition("even", "odd", '1'))

	want := "# parity\n\n" +
		"| state | `1` | `0` |\n" +
		"|---|---|---|\n" +
		"| → even ★ | odd | - |\n" +
		"| odd | - | - |\n"
	assert.Equal(t, want, Markdown("parity", d))
}

func TestMarkdown_EscapesPipes(t *testing.T) {
	d := dfa.New()
	require.NoError(t, d.AddState("a|b"))
	d.AddSigma('|')
	d.AddSigma('`')
	require.NoError(t, d.AddTransition("a|b", "a|b", '|'))

	want := "| state | `\\|` | `` ` `` |\n" +
		"|---|---|---|\n" +
		"| a\\|b | a\\|b | - |\n"
	assert.Equal(t, want, Markdown("", d))
}

func TestMarkdown_Empty(t *testing.T) {
	assert.Contains(t, Markdown("", dfa.New()), "_No states._")
}

func TestNewRenderer(t *testing.T) {
	render := NewRenderer()
	out, err := render(Markdown("parity", dfa.New()))
	require.NoError(t, err)
	assert.Contains(t, out, "parity")
}

func TestPrintBannerAndVerdict(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "1.2.3\n")
	assert.Contains(t, buf.String(), "v1.2.3")

	assert.Contains(t, Verdict(true), "ACCEPT")
	assert.Contains(t, Verdict(false), "REJECT")
}
