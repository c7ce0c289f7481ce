package dsl

import (
	"testing"

	"github.com/aretw0/automaton/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_DivisibleBy3(t *testing.T) {
	b := New("div3").Sigma('0', '1').Describe("multiples of three")

	b.Add("q0").Start().Final().
		On('0', "q0").
		On('1', "q1").
		Add("q1").
		On('0', "q2").
		On('1', "q0").
		Add("q2").
		On('0', "q1").
		On('1', "q2")

	d, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"q0", "q1", "q2"}, d.States())
	assert.True(t, d.Accepts("110"))
	assert.False(t, d.Accepts("101"))
	assert.True(t, d.Accepts(""))
}

func TestBuilder_AddReturnsExisting(t *testing.T) {
	b := New("x")
	first := b.Add("s")
	second := b.Add("s")

	assert.Same(t, first, second)
	assert.Equal(t, []string{"s"}, b.Definition().States)
}

func TestBuilder_ForwardReferenceAndErrors(t *testing.T) {
	b := New("bad").Sigma('a')
	b.Add("s").Start().On('a', "later")

	_, err := b.Build()
	assert.ErrorIs(t, err, domain.ErrMalformed, "target never added")

	b.Add("later").Final()
	d, err := b.Build()
	require.NoError(t, err)
	assert.True(t, d.Accepts("a"))
}

func TestBuilder_DefinitionIsDetached(t *testing.T) {
	b := New("c").Sigma('a').Case("a", true)
	b.Add("s").Start().Final().On('a', "s")

	def := b.Definition()
	def.States[0] = "mutated"
	def.Cases[0].Accept = false

	again := b.Definition()
	assert.Equal(t, "s", again.States[0])
	assert.True(t, again.Cases[0].Accept)
	assert.Equal(t, "c", again.Name)
}
