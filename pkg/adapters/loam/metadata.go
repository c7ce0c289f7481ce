package loam

import "github.com/aretw0/automaton/pkg/domain"

// Metadata represents the frontmatter (or JSON/YAML body) of a definition document.
// It uses "mapstructure" tags to match the keys of definition files.
type Metadata struct {
	Name        string              `json:"name" mapstructure:"name"`
	Description string              `json:"description" mapstructure:"description"`
	States      []string            `json:"states" mapstructure:"states"`
	Sigma       []string            `json:"sigma" mapstructure:"sigma"`
	Start       string              `json:"start" mapstructure:"start"`
	Final       []string            `json:"final" mapstructure:"final"`
	Transitions []domain.Transition `json:"transitions" mapstructure:"transitions"`
	Cases       []domain.Case       `json:"cases" mapstructure:"cases"`
}

func (m Metadata) definition(name, content string) *domain.Definition {
	def := &domain.Definition{
		Name:        name,
		Description: m.Description,
		States:      m.States,
		Sigma:       m.Sigma,
		Start:       m.Start,
		Final:       m.Final,
		Transitions: m.Transitions,
		Cases:       m.Cases,
	}
	// The markdown body doubles as the description.
	if def.Description == "" {
		def.Description = content
	}
	return def
}
