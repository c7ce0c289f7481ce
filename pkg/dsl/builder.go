package dsl

import (
	"fmt"

	"github.com/aretw0/automaton/pkg/dfa"
	"github.com/aretw0/automaton/pkg/domain"
	"github.com/aretw0/automaton/pkg/schema"
)

// Builder manages the automaton construction.
type Builder struct {
	def   domain.Definition
	nodes map[string]*StateBuilder
}

// New creates a new automaton builder.
func New(name string) *Builder {
	return &Builder{
		def:   domain.Definition{Name: name},
		nodes: make(map[string]*StateBuilder),
	}
}

// Sigma appends symbols to the alphabet.
func (b *Builder) Sigma(symbols ...dfa.Symbol) *Builder {
	for _, s := range symbols {
		b.def.Sigma = append(b.def.Sigma, s.String())
	}
	return b
}

// Describe sets the human-readable description.
func (b *Builder) Describe(text string) *Builder {
	b.def.Description = text
	return b
}

// Case records a sample input and its expected verdict.
func (b *Builder) Case(input string, accept bool) *Builder {
	b.def.Cases = append(b.def.Cases, domain.Case{Input: input, Accept: accept})
	return b
}

// Add creates a new state in the automaton.
// If the state already exists, it returns the existing builder.
func (b *Builder) Add(name string) *StateBuilder {
	if sb, ok := b.nodes[name]; ok {
		return sb
	}
	sb := &StateBuilder{name: name, builder: b}
	b.nodes[name] = sb
	b.def.States = append(b.def.States, name)
	return sb
}

// Definition returns a copy of the definition built so far.
func (b *Builder) Definition() *domain.Definition {
	def := b.def
	def.States = append([]string(nil), b.def.States...)
	def.Sigma = append([]string(nil), b.def.Sigma...)
	def.Final = append([]string(nil), b.def.Final...)
	def.Transitions = append([]domain.Transition(nil), b.def.Transitions...)
	def.Cases = append([]domain.Case(nil), b.def.Cases...)
	return &def
}

// Build validates the definition and compiles it into an automaton.
func (b *Builder) Build() (*dfa.DFA, error) {
	d, err := schema.Build(b.Definition())
	if err != nil {
		return nil, fmt.Errorf("failed to build %s: %w", b.def.Name, err)
	}
	return d, nil
}
