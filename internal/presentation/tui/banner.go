package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner writes the ASCII art banner and the release to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{`    _         _                        _`, "#818cf8"},
		{`   / \  _   _| |_ ___  _ __ ___   __ _| |_ ___  _ __`, "#a78bfa"},
		{`  / _ \| | | | __/ _ \| '_ ' _ \ / _' | __/ _ \| '_ \`, "#c084fc"},
		{` / ___ \ |_| | || (_) | | | | | | (_| | || (_) | | | |`, "#e879f9"},
		{`/_/   \_\__,_|\__\___/|_| |_| |_|\__,_|\__\___/|_| |_|`, "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	if v := strings.TrimSpace(version); v != "" {
		fmt.Fprintln(w, termenv.String("  v"+v).Faint())
	}
	fmt.Fprintln(w)
}

// Verdict colors an acceptance decision for the terminal.
func Verdict(accepted bool) string {
	p := termenv.ColorProfile()
	if accepted {
		return termenv.String("ACCEPT").Foreground(p.Color("#22c55e")).Bold().String()
	}
	return termenv.String("REJECT").Foreground(p.Color("#ef4444")).Bold().String()
}
