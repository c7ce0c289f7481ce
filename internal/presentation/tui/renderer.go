package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/automaton/pkg/dfa"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)

	return func(markdown string) (string, error) {
		if err != nil {
			return "", err
		}
		return r.Render(markdown)
	}
}

// Markdown describes d as a markdown document with its transition table.
// Start is marked with an arrow and final states with a star.
func Markdown(name string, d *dfa.DFA) string {
	var sb strings.Builder
	if name != "" {
		fmt.Fprintf(&sb, "# %s\n\n", name)
	}

	sigma := d.Sigma()
	sb.WriteString("| state |")
	for _, sym := range sigma {
		fmt.Fprintf(&sb, " %s |", codeCell(sym))
	}
	sb.WriteString("\n|---|")
	sb.WriteString(strings.Repeat("---|", len(sigma)))
	sb.WriteString("\n")

	for _, name := range d.States() {
		label := name
		if d.IsStart(name) {
			label = "→ " + label
		}
		if d.IsFinal(name) {
			label += " ★"
		}
		fmt.Fprintf(&sb, "| %s |", escapeCell(label))
		for _, sym := range sigma {
			to, ok := d.Next(name, sym)
			if !ok {
				to = "-"
			}
			fmt.Fprintf(&sb, " %s |", escapeCell(to))
		}
		sb.WriteString("\n")
	}

	if len(d.States()) == 0 {
		sb.WriteString("\n_No states._\n")
	}
	return sb.String()
}

var cellEscaper = strings.NewReplacer(`|`, `\|`)

func escapeCell(s string) string {
	return cellEscaper.Replace(s)
}

// codeCell wraps a symbol in a code span; a backtick needs a double fence.
func codeCell(sym dfa.Symbol) string {
	if sym == '`' {
		return "`` ` ``"
	}
	return "`" + escapeCell(sym.String()) + "`"
}
