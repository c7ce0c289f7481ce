package dfa

import (
	"maps"
	"slices"
)

// Swap returns a new automaton in which every transition labeled a is
// labeled b and vice versa. States, start, final states and the alphabet are
// carried over unchanged. If a or b is not in the alphabet the result is a
// plain copy.
//
// The result shares no mutable data with d.
func (d *DFA) Swap(a, b Symbol) *DFA {
	if !d.sigma.has(a) || !d.sigma.has(b) {
		return d.Clone()
	}
	return d.relabel(func(s Symbol) Symbol {
		switch s {
		case a:
			return b
		case b:
			return a
		}
		return s
	})
}

// Clone returns a deep copy of d.
func (d *DFA) Clone() *DFA {
	return d.relabel(func(s Symbol) Symbol { return s })
}

func (d *DFA) relabel(label func(Symbol) Symbol) *DFA {
	out := New()
	// Arena order is preserved, so source indices are valid in out.
	for i, s := range d.states {
		out.index[s.name] = i
		out.states = append(out.states, newState(s.name))
	}
	for _, sym := range d.sigma.items {
		out.sigma.add(sym)
	}
	out.start = d.start
	for _, i := range d.finals.items {
		out.finals.add(i)
	}
	for i, s := range d.states {
		for sym, target := range s.delta {
			out.states[i].delta[label(sym)] = target
		}
	}
	return out
}

// Equal reports whether a and b are structurally equivalent: same states in
// the same order, same alphabet, same start, same final set and the same
// transition function.
func Equal(a, b *DFA) bool {
	if !slices.Equal(a.States(), b.States()) || !slices.Equal(a.Sigma(), b.Sigma()) {
		return false
	}
	if a.start != b.start {
		return false
	}
	if a.finals.len() != b.finals.len() {
		return false
	}
	for _, i := range a.finals.items {
		if !b.finals.has(i) {
			return false
		}
	}
	for i := range a.states {
		if !maps.Equal(a.states[i].delta, b.states[i].delta) {
			return false
		}
	}
	return true
}
