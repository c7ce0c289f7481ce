/*
Package dfa implements a deterministic finite automaton: the five-tuple of
states, alphabet, transition function, start state and accepting states.

States live in an insertion-ordered arena and transitions point at arena
indices, so self-loops and back-edges need no shared ownership. The
transition function is partial: a missing (state, symbol) entry rejects.

# Construction

	d := dfa.New()
	_ = d.AddState("q0")
	_ = d.AddState("q1")
	d.AddSigma('0')
	d.AddSigma('1')
	_ = d.SetStart("q0")
	_ = d.SetFinal("q0")
	_ = d.AddTransition("q0", "q1", '1')

Construction errors wrap the sentinels in package domain and leave the
automaton unchanged. Only one start state may be designated: the first call
wins and a different name is refused with domain.ErrStartAlreadySet.

# Acceptance

Accepts walks the input from the start state. The empty string is accepted
iff the start state is final. Trace returns the same walk as a Run, with the
visited path and the reason for a rejection.

# Transform and rendering

Swap returns a new, independent automaton with two symbols interchanged in
every transition. String renders the canonical text form and Parse reads it
back.

A DFA is not safe for concurrent mutation. Once built it may be queried
from several goroutines.
*/
package dfa
