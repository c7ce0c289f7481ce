package dfa

import (
	"fmt"
	"unicode"

	"github.com/aretw0/automaton/pkg/domain"
)

// Symbol is a single input character.
type Symbol rune

func (s Symbol) String() string {
	return string(s)
}

// CheckSymbol refuses whitespace, which separates symbols in the canonical text form.
func CheckSymbol(s Symbol) error {
	if unicode.IsSpace(rune(s)) {
		return fmt.Errorf("%w: symbol %q is whitespace", domain.ErrMalformed, string(s))
	}
	return nil
}

// orderedSet keeps first-insertion order and answers membership in O(1).
// The zero value is ready to use.
type orderedSet[T comparable] struct {
	items []T
	index map[T]struct{}
}

func (s *orderedSet[T]) add(v T) bool {
	if s.has(v) {
		return false
	}
	if s.index == nil {
		s.index = make(map[T]struct{})
	}
	s.index[v] = struct{}{}
	s.items = append(s.items, v)
	return true
}

func (s *orderedSet[T]) has(v T) bool {
	_, ok := s.index[v]
	return ok
}

func (s *orderedSet[T]) len() int {
	return len(s.items)
}

func (s *orderedSet[T]) values() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
