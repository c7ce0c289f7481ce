package schema

import (
	"fmt"
	"unicode/utf8"

	"github.com/aretw0/automaton/pkg/dfa"
	"github.com/aretw0/automaton/pkg/domain"
)

// ParseSymbol converts a one-character, non-whitespace string into a symbol.
func ParseSymbol(s string) (dfa.Symbol, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: symbol %q must be exactly one character", domain.ErrMalformed, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if err := dfa.CheckSymbol(dfa.Symbol(r)); err != nil {
		return 0, err
	}
	return dfa.Symbol(r), nil
}

// Validate checks a definition for structural problems.
// Returns an *AggregateError with every failure found, or nil.
func Validate(def *domain.Definition) error {
	if def == nil {
		return &AggregateError{Errors: []error{&ValidationError{Field: "definition", Reason: "required"}}}
	}

	var errs []error
	fail := func(field, reason string, value any) {
		errs = append(errs, &ValidationError{Field: field, Reason: reason, Value: value})
	}

	states := make(map[string]bool, len(def.States))
	for i, name := range def.States {
		field := fmt.Sprintf("states[%d]", i)
		if err := dfa.CheckName(name); err != nil {
			fail(field, nameReason(name), name)
			continue
		}
		if states[name] {
			fail(field, "duplicate state", name)
		}
		states[name] = true
	}

	sigma := make(map[dfa.Symbol]bool, len(def.Sigma))
	for i, s := range def.Sigma {
		sym, err := ParseSymbol(s)
		if err != nil {
			fail(fmt.Sprintf("sigma[%d]", i), symbolReason(s), s)
			continue
		}
		sigma[sym] = true
	}

	if def.Start != "" && !states[def.Start] {
		fail("start", "unknown state", def.Start)
	}

	for i, name := range def.Final {
		if !states[name] {
			fail(fmt.Sprintf("final[%d]", i), "unknown state", name)
		}
	}

	type move struct {
		from string
		on   dfa.Symbol
	}
	seen := make(map[move]string, len(def.Transitions))
	for i, t := range def.Transitions {
		field := fmt.Sprintf("transitions[%d]", i)
		if !states[t.From] {
			fail(field+".from", "unknown state", t.From)
		}
		if !states[t.To] {
			fail(field+".to", "unknown state", t.To)
		}
		sym, err := ParseSymbol(t.On)
		if err != nil {
			fail(field+".on", symbolReason(t.On), t.On)
			continue
		}
		if !sigma[sym] {
			fail(field+".on", "symbol not in sigma", t.On)
			continue
		}
		m := move{from: t.From, on: sym}
		if prev, ok := seen[m]; ok && prev != t.To {
			fail(field, fmt.Sprintf("nondeterministic: %s already moves to %s on %s", t.From, prev, t.On), t.To)
		}
		seen[m] = t.To
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

func nameReason(name string) string {
	switch name {
	case "":
		return "state name cannot be empty"
	case "-", "{}":
		return "state name is reserved"
	}
	return "state name cannot contain whitespace"
}

func symbolReason(s string) string {
	if utf8.RuneCountInString(s) != 1 {
		return "symbol must be exactly one character"
	}
	return "symbol cannot be whitespace"
}
