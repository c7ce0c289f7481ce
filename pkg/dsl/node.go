package dsl

import (
	"github.com/aretw0/automaton/pkg/dfa"
	"github.com/aretw0/automaton/pkg/domain"
)

// StateBuilder provides a fluent API for configuring a state.
type StateBuilder struct {
	name    string
	builder *Builder
}

// Start designates this state as the start state.
func (s *StateBuilder) Start() *StateBuilder {
	s.builder.def.Start = s.name
	return s
}

// Final marks this state as accepting.
func (s *StateBuilder) Final() *StateBuilder {
	s.builder.def.Final = append(s.builder.def.Final, s.name)
	return s
}

// On adds a transition from this state to target on symbol.
func (s *StateBuilder) On(symbol dfa.Symbol, target string) *StateBuilder {
	s.builder.def.Transitions = append(s.builder.def.Transitions, domain.Transition{
		From: s.name,
		To:   target,
		On:   symbol.String(),
	})
	return s
}

// Add is a shortcut to the parent builder, allowing one chain per automaton.
func (s *StateBuilder) Add(name string) *StateBuilder {
	return s.builder.Add(name)
}
