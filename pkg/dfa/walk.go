package dfa

import (
	"fmt"
	"unicode/utf8"

	"github.com/aretw0/automaton/pkg/domain"
)

// Status is the outcome of a walk over the input tape.
type Status int

const (
	// Running means symbols are still being consumed. A returned Run is never Running.
	Running Status = iota
	Accepted
	Rejected
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Run is the record of one walk.
type Run struct {
	// Path holds the visited states, beginning with the state the walk started from.
	Path []string
	// Consumed counts the input symbols that had a transition.
	Consumed int
	Status   Status
	// Err explains a rejection that happened before the input was exhausted:
	// domain.ErrNoStartState or domain.ErrNoTransition. It is nil when the
	// whole input was consumed.
	Err error
}

// Accepted reports whether the walk ended on an accepting state.
func (r Run) Accepted() bool {
	return r.Status == Accepted
}

// Last returns the state the walk stopped on, or "" if it never started.
func (r Run) Last() string {
	if len(r.Path) == 0 {
		return ""
	}
	return r.Path[len(r.Path)-1]
}

// Accepts decides membership of input in the language of the automaton.
// It never fails: a missing start state or a missing transition rejects.
func (d *DFA) Accepts(input string) bool {
	return d.Trace(input).Accepted()
}

// Trace walks input from the start state.
func (d *DFA) Trace(input string) Run {
	if d.start == noState {
		return Run{Status: Rejected, Err: domain.ErrNoStartState}
	}
	return d.walk(d.start, input)
}

// TraceFrom walks input from an arbitrary state.
func (d *DFA) TraceFrom(from, input string) (Run, error) {
	i, err := d.lookup(from)
	if err != nil {
		return Run{}, err
	}
	return d.walk(i, input), nil
}

func (d *DFA) walk(cur int, input string) Run {
	run := Run{
		Path:   []string{d.states[cur].name},
		Status: Running,
	}
	for len(input) > 0 {
		r, size := utf8.DecodeRuneInString(input)
		input = input[size:]
		if r == utf8.RuneError && size == 1 {
			run.Status = Rejected
			run.Err = fmt.Errorf("%w: invalid UTF-8 at symbol %d", domain.ErrMalformed, run.Consumed)
			return run
		}
		next, ok := d.states[cur].delta[Symbol(r)]
		if !ok {
			run.Status = Rejected
			run.Err = fmt.Errorf("%w: from %q on %q", domain.ErrNoTransition, d.states[cur].name, string(r))
			return run
		}
		cur = next
		run.Consumed++
		run.Path = append(run.Path, d.states[cur].name)
	}
	// Length-0 base case: the verdict depends only on where the walk stopped.
	if d.finals.has(cur) {
		run.Status = Accepted
	} else {
		run.Status = Rejected
	}
	return run
}

// Reachable returns the states reachable from the start state in
// breadth-first order, following symbols in alphabet order.
func (d *DFA) Reachable() []string {
	if d.start == noState {
		return nil
	}
	seen := make([]bool, len(d.states))
	seen[d.start] = true
	queue := []int{d.start}
	var names []string

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		names = append(names, d.states[cur].name)

		for _, sym := range d.sigma.items {
			next, ok := d.states[cur].delta[sym]
			if ok && !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return names
}
