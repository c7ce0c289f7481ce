package schema

import (
	"errors"
	"fmt"

	"github.com/aretw0/automaton/pkg/dfa"
	"github.com/aretw0/automaton/pkg/domain"
)

// Build validates def and constructs the automaton it describes.
func Build(def *domain.Definition) (*dfa.DFA, error) {
	if err := Validate(def); err != nil {
		return nil, err
	}

	d := dfa.New()
	for _, name := range def.States {
		if err := d.AddState(name); err != nil {
			return nil, fmt.Errorf("build %s: %w", def.Name, err)
		}
	}
	for _, s := range def.Sigma {
		sym, _ := ParseSymbol(s)
		if err := d.AddSigma(sym); err != nil {
			return nil, fmt.Errorf("build %s: %w", def.Name, err)
		}
	}
	if def.Start != "" {
		if err := d.SetStart(def.Start); err != nil {
			return nil, fmt.Errorf("build %s: %w", def.Name, err)
		}
	}
	for _, name := range def.Final {
		if err := d.SetFinal(name); err != nil {
			return nil, fmt.Errorf("build %s: %w", def.Name, err)
		}
	}
	for _, t := range def.Transitions {
		sym, _ := ParseSymbol(t.On)
		if err := d.AddTransition(t.From, t.To, sym); err != nil {
			return nil, fmt.Errorf("build %s: %w", def.Name, err)
		}
	}
	return d, nil
}

// Export produces the definition of d. Transitions are listed per state in
// state order, then in alphabet order.
func Export(name string, d *dfa.DFA) *domain.Definition {
	def := &domain.Definition{
		Name:   name,
		States: d.States(),
		Final:  d.Finals(),
	}
	for _, sym := range d.Sigma() {
		def.Sigma = append(def.Sigma, sym.String())
	}
	if start, ok := d.Start(); ok {
		def.Start = start
	}
	for _, from := range def.States {
		for _, sym := range d.Sigma() {
			if to, ok := d.Next(from, sym); ok {
				def.Transitions = append(def.Transitions, domain.Transition{From: from, To: to, On: sym.String()})
			}
		}
	}
	return def
}

// CaseFailure reports a sample input whose verdict differs from the expected one.
type CaseFailure struct {
	Input string
	Want  bool
	Got   bool
}

func (f *CaseFailure) Error() string {
	return fmt.Sprintf("input %q: want accept=%t, got %t", f.Input, f.Want, f.Got)
}

// Check runs the sample cases of def against d. All failures are joined.
func Check(def *domain.Definition, d *dfa.DFA) error {
	var errs []error
	for _, c := range def.Cases {
		if got := d.Accepts(c.Input); got != c.Accept {
			errs = append(errs, &CaseFailure{Input: c.Input, Want: c.Accept, Got: got})
		}
	}
	return errors.Join(errs...)
}
