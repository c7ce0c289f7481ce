package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/automaton/pkg/dfa"
)

// GraphOverlay contains run data to visualize on the graph.
type GraphOverlay struct {
	VisitedStates []string
	CurrentState  string
}

// RunOverlay builds the overlay of a finished walk.
func RunOverlay(run dfa.Run) *GraphOverlay {
	return &GraphOverlay{
		VisitedStates: run.Path,
		CurrentState:  run.Last(),
	}
}

// GenerateMermaid produces a Mermaid flowchart of d.
// It applies semantic styling:
// - Final: (((Double circle)))
// - Start: ((Circle))
// - Default: [Rectangle]
// Parallel edges are merged into one arrow labelled with every symbol, in
// alphabet order. States not reachable from the start state are dimmed.
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid(d *dfa.DFA, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	// Mermaid IDs are derived from declaration order, so state names never need escaping.
	states := d.States()
	ids := make(map[string]string, len(states))
	for i, name := range states {
		ids[name] = fmt.Sprintf("s%d", i)
	}

	start, hasStart := d.Start()
	if hasStart {
		sb.WriteString(fmt.Sprintf("    entry(( )) --> %s\n", ids[start]))
	}

	for _, name := range states {
		opener, closer := "[", "]"
		switch {
		case d.IsFinal(name):
			opener, closer = "(((", ")))"
		case d.IsStart(name):
			opener, closer = "((", "))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", ids[name], opener, escapeLabel(name), closer))
	}

	for _, from := range states {
		var targets []string
		labels := make(map[string][]string)
		for _, sym := range d.Sigma() {
			to, ok := d.Next(from, sym)
			if !ok {
				continue
			}
			if _, seen := labels[to]; !seen {
				targets = append(targets, to)
			}
			labels[to] = append(labels[to], escapeLabel(sym.String()))
		}
		for _, to := range targets {
			sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", ids[from], strings.Join(labels[to], ","), ids[to]))
		}
	}

	reachable := make(map[string]bool)
	for _, name := range d.Reachable() {
		reachable[name] = true
	}
	var unreachable []string
	for _, name := range states {
		if !reachable[name] {
			unreachable = append(unreachable, ids[name])
		}
	}
	if hasStart && len(unreachable) > 0 {
		sb.WriteString("    classDef unreachable stroke-dasharray:5 5,color:#999;\n")
		sb.WriteString(fmt.Sprintf("    class %s unreachable;\n", strings.Join(unreachable, ",")))
	}

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, name := range overlay.VisitedStates {
			id, ok := ids[name]
			if ok && !visitedSet[id] {
				visitedSet[id] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", id))
			}
		}

		if id, ok := ids[overlay.CurrentState]; ok {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", id))
		}
	}

	return sb.String()
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "#quot;")
}
