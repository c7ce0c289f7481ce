package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventAccept EventType = "accept"
	EventSwap   EventType = "swap"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Automaton string    `json:"automaton"`
}

// AcceptEvent records one acceptance decision.
type AcceptEvent struct {
	EventBase
	Input    string   `json:"input"`
	Path     []string `json:"path,omitempty"`
	Accepted bool     `json:"accepted"`
	// Reason is empty when the walk consumed the whole input.
	Reason string `json:"reason,omitempty"`
}

// SwapEvent records a symbol-swap transform.
type SwapEvent struct {
	EventBase
	A string `json:"a"`
	B string `json:"b"`
}

// LifecycleHooks defines callbacks for catalog observability.
type LifecycleHooks struct {
	OnAccept func(context.Context, *AcceptEvent)
	OnSwap   func(context.Context, *SwapEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnAccept: chain(h.OnAccept, other.OnAccept),
		OnSwap:   chain(h.OnSwap, other.OnSwap),
	}
}

func chain[E any](first, second func(context.Context, E)) func(context.Context, E) {
	switch {
	case first == nil:
		return second
	case second == nil:
		return first
	}
	return func(ctx context.Context, e E) {
		first(ctx, e)
		second(ctx, e)
	}
}
