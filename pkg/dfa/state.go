package dfa

// State is a read-only snapshot of one state of an automaton.
// Mutating it has no effect on the automaton it came from.
type State struct {
	Name  string
	Final bool
	Start bool
	// Transitions maps each symbol with a defined move to the target state name.
	Transitions map[Symbol]string
}

// state is the arena entry. Targets are arena indices, never pointers.
type state struct {
	name  string
	delta map[Symbol]int
}

func newState(name string) *state {
	return &state{
		name:  name,
		delta: make(map[Symbol]int),
	}
}
