package schema

import (
	"fmt"

	"github.com/aretw0/automaton/pkg/domain"
)

// ValidationError represents a single problem found in a definition.
type ValidationError struct {
	Field  string // e.g. "states[2]" or "transitions[0].on"
	Reason string // Human-readable reason for failure
	Value  any    // The offending value, if any
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s (got %q)", e.Field, e.Reason, fmt.Sprint(e.Value))
}

// Unwrap lets callers match every validation problem with domain.ErrMalformed.
func (e *ValidationError) Unwrap() error {
	return domain.ErrMalformed
}

// AggregateError represents multiple validation failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// ValidationErrors returns all validation errors if err is an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	if aggr, ok := err.(*AggregateError); ok {
		return aggr.Errors
	}
	return nil
}
