package dfa

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/automaton/pkg/domain"
)

// Parse reads the canonical text form produced by String.
//
// State names come from the delta rows, because the Q line concatenates
// them without separators; the Q line must match that concatenation.
func Parse(text string) (*DFA, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	if len(lines) < 6 {
		return nil, fmt.Errorf("%w: expected at least 6 lines, got %d", domain.ErrMalformed, len(lines))
	}

	p := &parser{lines: lines}

	qcat, err := p.braced(0, "Q={")
	if err != nil {
		return nil, err
	}

	sigmaField, err := p.braced(1, "Sigma = {")
	if err != nil {
		return nil, err
	}
	sigma, err := p.symbols(1, strings.Fields(sigmaField))
	if err != nil {
		return nil, err
	}

	if lines[2] != "delta =" {
		return nil, p.errorf(2, "expected %q", "delta =")
	}
	header, ok := strings.CutPrefix(lines[3], "\t")
	if !ok {
		return nil, p.errorf(3, "delta header must start with a tab")
	}
	var columns []string
	if header != "" {
		columns = strings.Split(header, "\t")
	}
	cols, err := p.symbols(3, columns)
	if err != nil {
		return nil, err
	}
	if joinSymbols(cols, " ") != joinSymbols(sigma, " ") {
		return nil, p.errorf(3, "delta columns %q do not match sigma", header)
	}

	d := New()
	for _, s := range sigma {
		if err := d.AddSigma(s); err != nil {
			return nil, p.errorf(1, "%v", err)
		}
	}

	startLine := len(lines) - 2
	rows := lines[4:startLine]
	for i, row := range rows {
		name, _, _ := strings.Cut(row, "\t")
		if err := d.AddState(name); err != nil {
			return nil, p.errorf(4+i, "%v", err)
		}
	}
	if got := strings.Join(d.States(), ""); got != qcat {
		return nil, p.errorf(0, "Q={%s} does not match delta rows %q", qcat, got)
	}

	for i, row := range rows {
		cells := strings.Split(row, "\t")
		if len(cells) != len(sigma)+1 {
			return nil, p.errorf(4+i, "expected %d cells, got %d", len(sigma)+1, len(cells))
		}
		for j, target := range cells[1:] {
			if target == undefined {
				continue
			}
			if err := d.AddTransition(cells[0], target, sigma[j]); err != nil {
				return nil, p.errorf(4+i, "%v", err)
			}
		}
	}

	start, ok := strings.CutPrefix(lines[startLine], "q0 = ")
	if !ok {
		return nil, p.errorf(startLine, "expected start line %q", "q0 = ")
	}
	if start != noStart {
		if err := d.SetStart(start); err != nil {
			return nil, p.errorf(startLine, "%v", err)
		}
	}

	finals, err := p.braced(startLine+1, "F = {")
	if err != nil {
		return nil, err
	}
	for _, name := range strings.Fields(finals) {
		if err := d.SetFinal(name); err != nil {
			return nil, p.errorf(startLine+1, "%v", err)
		}
	}

	return d, nil
}

type parser struct {
	lines []string
}

func (p *parser) errorf(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", domain.ErrMalformed, line+1, fmt.Sprintf(format, args...))
}

func (p *parser) braced(line int, prefix string) (string, error) {
	inner, ok := strings.CutPrefix(p.lines[line], prefix)
	if !ok {
		return "", p.errorf(line, "expected prefix %q", prefix)
	}
	inner, ok = strings.CutSuffix(inner, "}")
	if !ok {
		return "", p.errorf(line, "missing closing brace")
	}
	return inner, nil
}

func (p *parser) symbols(line int, fields []string) ([]Symbol, error) {
	syms := make([]Symbol, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) != 1 {
			return nil, p.errorf(line, "symbol %q is not a single character", f)
		}
		r, _ := utf8.DecodeRuneInString(f)
		syms = append(syms, Symbol(r))
	}
	return syms, nil
}
