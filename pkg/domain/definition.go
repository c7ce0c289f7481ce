package domain

// Definition is the document form of an automaton, as stored by loaders and stores.
// Symbols are single-character strings so that YAML and JSON keep them verbatim.
type Definition struct {
	Name        string `json:"name" yaml:"name" mapstructure:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`

	// States lists state names in declaration order, which is also rendering order.
	States []string `json:"states" yaml:"states" mapstructure:"states"`
	Sigma  []string `json:"sigma" yaml:"sigma" mapstructure:"sigma"`
	Start  string   `json:"start,omitempty" yaml:"start,omitempty" mapstructure:"start"`
	Final  []string `json:"final,omitempty" yaml:"final,omitempty" mapstructure:"final"`

	Transitions []Transition `json:"transitions,omitempty" yaml:"transitions,omitempty" mapstructure:"transitions"`

	// Cases are sample inputs with their expected verdicts.
	Cases []Case `json:"cases,omitempty" yaml:"cases,omitempty" mapstructure:"cases"`
}

// Transition is one entry of the transition function.
type Transition struct {
	From string `json:"from" yaml:"from" mapstructure:"from"`
	To   string `json:"to" yaml:"to" mapstructure:"to"`
	On   string `json:"on" yaml:"on" mapstructure:"on"`
}

// Case pairs an input string with the verdict the automaton must give.
type Case struct {
	Input  string `json:"input" yaml:"input" mapstructure:"input"`
	Accept bool   `json:"accept" yaml:"accept" mapstructure:"accept"`
}

// Clone returns a deep copy of d.
func (d *Definition) Clone() *Definition {
	if d == nil {
		return nil
	}
	c := *d
	c.States = cloneSlice(d.States)
	c.Sigma = cloneSlice(d.Sigma)
	c.Final = cloneSlice(d.Final)
	c.Transitions = cloneSlice(d.Transitions)
	c.Cases = cloneSlice(d.Cases)
	return &c
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
