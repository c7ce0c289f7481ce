package dfa

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aretw0/automaton/pkg/domain"
)

const noState = -1

// DFA is a deterministic finite automaton under construction or ready for queries.
type DFA struct {
	states []*state
	index  map[string]int
	sigma  orderedSet[Symbol]
	finals orderedSet[int]
	start  int
}

// New creates an empty automaton with no states, no alphabet and no start state.
func New() *DFA {
	return &DFA{
		index: make(map[string]int),
		start: noState,
	}
}

// CheckName reports whether name can be used as a state name. Names must be
// non-empty, free of whitespace and distinct from the "-" and "{}" markers of
// the canonical text form.
func CheckName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: state name cannot be empty", domain.ErrMalformed)
	case name == undefined || name == noStart:
		return fmt.Errorf("%w: state name %q is reserved", domain.ErrMalformed, name)
	case strings.IndexFunc(name, unicode.IsSpace) >= 0:
		return fmt.Errorf("%w: state name %q contains whitespace", domain.ErrMalformed, name)
	}
	return nil
}

// AddState registers a new non-final state with no transitions.
func (d *DFA) AddState(name string) error {
	if err := CheckName(name); err != nil {
		return err
	}
	if _, ok := d.index[name]; ok {
		return fmt.Errorf("%w: %q", domain.ErrDuplicateState, name)
	}
	d.index[name] = len(d.states)
	d.states = append(d.states, newState(name))
	return nil
}

// AddSigma adds a symbol to the alphabet. Adding a known symbol is a no-op.
// Whitespace symbols are refused with domain.ErrMalformed.
func (d *DFA) AddSigma(s Symbol) error {
	if err := CheckSymbol(s); err != nil {
		return err
	}
	d.sigma.add(s)
	return nil
}

// SetStart designates the start state. The first designation wins:
// naming a different state afterwards returns domain.ErrStartAlreadySet.
func (d *DFA) SetStart(name string) error {
	i, err := d.lookup(name)
	if err != nil {
		return err
	}
	if d.start != noState && d.start != i {
		return fmt.Errorf("%w: %q is the start state, refusing %q", domain.ErrStartAlreadySet, d.states[d.start].name, name)
	}
	d.start = i
	return nil
}

// SetFinal marks a state as accepting. Marking it again only re-confirms membership.
func (d *DFA) SetFinal(name string) error {
	i, err := d.lookup(name)
	if err != nil {
		return err
	}
	d.finals.add(i)
	return nil
}

// AddTransition sets delta(from, on) = to, overwriting any previous target.
// Both states must exist and the symbol must be in the alphabet.
func (d *DFA) AddTransition(from, to string, on Symbol) error {
	src, err := d.lookup(from)
	if err != nil {
		return err
	}
	dst, err := d.lookup(to)
	if err != nil {
		return err
	}
	if !d.sigma.has(on) {
		return fmt.Errorf("%w: %q", domain.ErrUnknownSymbol, string(on))
	}
	d.states[src].delta[on] = dst
	return nil
}

func (d *DFA) lookup(name string) (int, error) {
	i, ok := d.index[name]
	if !ok {
		return noState, fmt.Errorf("%w: %q", domain.ErrStateNotFound, name)
	}
	return i, nil
}

// Sigma returns the alphabet in insertion order.
func (d *DFA) Sigma() []Symbol {
	return d.sigma.values()
}

// HasSymbol reports whether s is in the alphabet.
func (d *DFA) HasSymbol(s Symbol) bool {
	return d.sigma.has(s)
}

// States returns the state names in insertion order.
func (d *DFA) States() []string {
	names := make([]string, len(d.states))
	for i, s := range d.states {
		names[i] = s.name
	}
	return names
}

// Len returns the number of states.
func (d *DFA) Len() int {
	return len(d.states)
}

// Finals returns the accepting state names in the order they were marked.
func (d *DFA) Finals() []string {
	names := make([]string, 0, d.finals.len())
	for _, i := range d.finals.items {
		names = append(names, d.states[i].name)
	}
	return names
}

// Start returns the start state name, if one is set.
func (d *DFA) Start() (string, bool) {
	if d.start == noState {
		return "", false
	}
	return d.states[d.start].name, true
}

// State returns a snapshot of the named state.
func (d *DFA) State(name string) (State, error) {
	i, err := d.lookup(name)
	if err != nil {
		return State{}, err
	}
	s := d.states[i]
	snap := State{
		Name:        s.name,
		Final:       d.finals.has(i),
		Start:       d.start == i,
		Transitions: make(map[Symbol]string, len(s.delta)),
	}
	for sym, t := range s.delta {
		snap.Transitions[sym] = d.states[t].name
	}
	return snap, nil
}

// IsFinal reports whether the named state is accepting. Unknown names are not final.
func (d *DFA) IsFinal(name string) bool {
	i, ok := d.index[name]
	return ok && d.finals.has(i)
}

// IsStart reports whether the named state is the start state.
func (d *DFA) IsStart(name string) bool {
	i, ok := d.index[name]
	return ok && d.start == i
}

// Next returns delta(from, on), if defined.
func (d *DFA) Next(from string, on Symbol) (string, bool) {
	i, ok := d.index[from]
	if !ok {
		return "", false
	}
	t, ok := d.states[i].delta[on]
	if !ok {
		return "", false
	}
	return d.states[t].name, true
}
