package dfa_test

import (
	"testing"

	"github.com/aretw0/automaton/pkg/dfa"
	"github.com/aretw0/automaton/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// divisibleBy3 accepts binary numbers whose value is a multiple of three.
func divisibleBy3(t *testing.T) *dfa.DFA {
	t.Helper()

	d := dfa.New()
	for _, name := range []string{"q0", "q1", "q2"} {
		require.NoError(t, d.AddState(name))
	}
	d.AddSigma('0')
	d.AddSigma('1')
	require.NoError(t, d.SetStart("q0"))
	require.NoError(t, d.SetFinal("q0"))

	edges := []struct {
		from, to string
		on       dfa.Symbol
	}{
		{"q0", "q0", '0'},
		{"q0", "q1", '1'},
		{"q1", "q2", '0'},
		{"q1", "q0", '1'},
		{"q2", "q1", '0'},
		{"q2", "q2", '1'},
	}
	for _, e := range edges {
		require.NoError(t, d.AddTransition(e.from, e.to, e.on))
	}
	return d
}

func TestAddState(t *testing.T) {
	d := dfa.New()

	require.NoError(t, d.AddState("a"))
	err := d.AddState("a")
	assert.ErrorIs(t, err, domain.ErrDuplicateState)
	assert.Equal(t, []string{"a"}, d.States())

	assert.ErrorIs(t, d.AddState(""), domain.ErrMalformed)

	s, err := d.State("a")
	require.NoError(t, err)
	assert.Equal(t, "a", s.Name)
	assert.False(t, s.Final)
	assert.False(t, s.Start)
	assert.Empty(t, s.Transitions)

	_, err = d.State("missing")
	assert.ErrorIs(t, err, domain.ErrStateNotFound)
}

func TestAddState_NamesOutsideTextForm(t *testing.T) {
	d := dfa.New()
	for _, name := range []string{"-", "{}", "s 1", "s\t1", "s\n1", " "} {
		assert.ErrorIs(t, d.AddState(name), domain.ErrMalformed, "%q", name)
	}
	assert.Zero(t, d.Len())

	for _, name := range []string{"-a", "a{}", "}", "ε"} {
		assert.NoError(t, d.AddState(name), "%q", name)
	}
}

func TestAddSigma_Whitespace(t *testing.T) {
	d := dfa.New()
	for _, s := range []dfa.Symbol{' ', '\t', '\n', '\u00a0'} {
		assert.ErrorIs(t, d.AddSigma(s), domain.ErrMalformed, "%q", string(s))
	}
	assert.Empty(t, d.Sigma())
	assert.NoError(t, d.AddSigma('-'))
}

func TestAddSigma_Idempotent(t *testing.T) {
	once := dfa.New()
	once.AddSigma('x')

	twice := dfa.New()
	twice.AddSigma('x')
	twice.AddSigma('x')

	assert.Equal(t, once.Sigma(), twice.Sigma())
	assert.Equal(t, []dfa.Symbol{'x'}, twice.Sigma())
}

func TestSetStart_FirstWins(t *testing.T) {
	d := dfa.New()
	require.NoError(t, d.AddState("a"))
	require.NoError(t, d.AddState("b"))

	assert.ErrorIs(t, d.SetStart("missing"), domain.ErrStateNotFound)
	_, ok := d.Start()
	assert.False(t, ok, "failed SetStart must not designate anything")

	require.NoError(t, d.SetStart("a"))
	require.NoError(t, d.SetStart("a"), "repeating the same start is allowed")

	err := d.SetStart("b")
	assert.ErrorIs(t, err, domain.ErrStartAlreadySet)

	start, ok := d.Start()
	assert.True(t, ok)
	assert.Equal(t, "a", start)
	assert.True(t, d.IsStart("a"))
	assert.False(t, d.IsStart("b"))
}

func TestSetFinal(t *testing.T) {
	d := dfa.New()
	require.NoError(t, d.AddState("a"))
	require.NoError(t, d.AddState("b"))

	assert.ErrorIs(t, d.SetFinal("missing"), domain.ErrStateNotFound)

	require.NoError(t, d.SetFinal("b"))
	require.NoError(t, d.SetFinal("a"))
	require.NoError(t, d.SetFinal("b"))

	assert.Equal(t, []string{"b", "a"}, d.Finals(), "finals keep marking order without duplicates")
	assert.True(t, d.IsFinal("a"))
	assert.False(t, d.IsFinal("missing"))

	s, err := d.State("b")
	require.NoError(t, err)
	assert.True(t, s.Final)
}

func TestAddTransition_Rejections(t *testing.T) {
	d := dfa.New()
	require.NoError(t, d.AddState("a"))
	require.NoError(t, d.AddState("b"))
	d.AddSigma('0')

	tests := []struct {
		name     string
		from, to string
		on       dfa.Symbol
		want     error
	}{
		{"unknown source", "x", "b", '0', domain.ErrStateNotFound},
		{"unknown target", "a", "x", '0', domain.ErrStateNotFound},
		{"symbol outside alphabet", "a", "b", '1', domain.ErrUnknownSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := d.String()
			err := d.AddTransition(tt.from, tt.to, tt.on)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, before, d.String(), "a rejected transition must not change the automaton")
		})
	}
}

func TestAddTransition_LastWriteWins(t *testing.T) {
	d := dfa.New()
	require.NoError(t, d.AddState("a"))
	require.NoError(t, d.AddState("b"))
	d.AddSigma('0')

	require.NoError(t, d.AddTransition("a", "a", '0'))
	require.NoError(t, d.AddTransition("a", "b", '0'))

	next, ok := d.Next("a", '0')
	assert.True(t, ok)
	assert.Equal(t, "b", next)

	s, err := d.State("a")
	require.NoError(t, err)
	assert.Equal(t, map[dfa.Symbol]string{'0': "b"}, s.Transitions)
}

func TestAddTransition_ReachesTarget(t *testing.T) {
	d := divisibleBy3(t)

	for _, from := range d.States() {
		for _, sym := range d.Sigma() {
			to, ok := d.Next(from, sym)
			require.True(t, ok)

			run, err := d.TraceFrom(from, sym.String())
			require.NoError(t, err)
			assert.Equal(t, to, run.Last(), "%s on %s", from, sym)
		}
	}
}

func TestState_SnapshotIsDetached(t *testing.T) {
	d := divisibleBy3(t)

	s, err := d.State("q0")
	require.NoError(t, err)
	s.Transitions['0'] = "q2"
	s.Final = false

	next, _ := d.Next("q0", '0')
	assert.Equal(t, "q0", next)
	assert.True(t, d.IsFinal("q0"))
}
