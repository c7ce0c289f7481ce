package dfa

import (
	"strings"
)

// undefined marks a missing transition in the delta table.
const undefined = "-"

// noStart marks a missing start state.
const noStart = "{}"

// String renders the canonical text form:
//
//	Q={q0q1}
//	Sigma = {0 1}
//	delta =
//		0	1
//	q0	q0	q1
//	q1	-	q0
//	q0 = q0
//	F = {q0}
//
// States, symbols and final states keep insertion order. A missing start
// renders as "{}".
func (d *DFA) String() string {
	var sb strings.Builder

	sb.WriteString("Q={")
	for _, s := range d.states {
		sb.WriteString(s.name)
	}
	sb.WriteString("}\n")

	sb.WriteString("Sigma = {")
	sb.WriteString(joinSymbols(d.sigma.items, " "))
	sb.WriteString("}\n")

	sb.WriteString("delta =\n\t")
	sb.WriteString(joinSymbols(d.sigma.items, "\t"))
	sb.WriteString("\n")

	for _, s := range d.states {
		sb.WriteString(s.name)
		for _, sym := range d.sigma.items {
			sb.WriteString("\t")
			if t, ok := s.delta[sym]; ok {
				sb.WriteString(d.states[t].name)
			} else {
				sb.WriteString(undefined)
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("q0 = ")
	if start, ok := d.Start(); ok {
		sb.WriteString(start)
	} else {
		sb.WriteString(noStart)
	}
	sb.WriteString("\n")

	sb.WriteString("F = {")
	sb.WriteString(strings.Join(d.Finals(), " "))
	sb.WriteString("}\n")

	return sb.String()
}

func joinSymbols(syms []Symbol, sep string) string {
	parts := make([]string, len(syms))
	for i, s := range syms {
		parts[i] = s.String()
	}
	return strings.Join(parts, sep)
}
