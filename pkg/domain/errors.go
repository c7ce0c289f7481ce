package domain

import "errors"

// ErrDuplicateState is returned when a state name is added twice.
var ErrDuplicateState = errors.New("duplicate state")

// ErrStateNotFound is returned when an operation names a state the automaton does not have.
var ErrStateNotFound = errors.New("state not found")

// ErrUnknownSymbol is returned when a symbol outside the alphabet is used.
var ErrUnknownSymbol = errors.New("unknown symbol")

// ErrNoStartState is reported when a walk is requested before a start state is set.
var ErrNoStartState = errors.New("no start state")

// ErrStartAlreadySet is returned when a second, different start state is designated.
var ErrStartAlreadySet = errors.New("start state already set")

// ErrNoTransition is reported when the walk reaches a (state, symbol) pair with no move.
var ErrNoTransition = errors.New("no transition")

// ErrMalformed is returned when a textual or document description cannot be read.
var ErrMalformed = errors.New("malformed automaton description")

// ErrAutomatonNotFound is returned when a definition cannot be found in the store.
var ErrAutomatonNotFound = errors.New("automaton not found")
