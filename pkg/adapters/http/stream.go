package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/aretw0/automaton/pkg/domain"
)

// allAutomata is the subscription key of clients that want every event.
const allAutomata = ""

// StreamManager fans catalog events out to SSE subscribers.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan<- string]struct{} // Automaton -> Set of Channels
}

func NewStreamManager() *StreamManager {
	return &StreamManager{
		subscribers: make(map[string]map[chan<- string]struct{}),
	}
}

// Subscribe registers a channel for the events of automaton ("" for all).
// The returned function unsubscribes and closes the channel.
func (sm *StreamManager) Subscribe(automaton string) (chan string, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan string, 10)
	if _, ok := sm.subscribers[automaton]; !ok {
		sm.subscribers[automaton] = make(map[chan<- string]struct{})
	}
	sm.subscribers[automaton][ch] = struct{}{}

	return ch, func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		if subs, ok := sm.subscribers[automaton]; ok {
			delete(subs, ch)
			close(ch)
			if len(subs) == 0 {
				delete(sm.subscribers, automaton)
			}
		}
	}
}

// Broadcast sends msg to the subscribers of automaton and to those of every automaton.
func (sm *StreamManager) Broadcast(automaton string, msg string) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	keys := []string{automaton}
	if automaton != allAutomata {
		keys = append(keys, allAutomata)
	}
	for _, key := range keys {
		for ch := range sm.subscribers[key] {
			select {
			case ch <- msg:
			default:
				// Drop message if channel is full (slow client)
				slog.Warn("SSE: Client buffer full, dropping message", "automaton", automaton)
			}
		}
	}
}

// Hooks returns lifecycle hooks that broadcast every event as JSON.
func (sm *StreamManager) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnAccept: func(_ context.Context, e *domain.AcceptEvent) {
			sm.publish(e.Automaton, e)
		},
		OnSwap: func(_ context.Context, e *domain.SwapEvent) {
			sm.publish(e.Automaton, e)
		},
	}
}

func (sm *StreamManager) publish(automaton string, event any) {
	data, err := json.Marshal(event)
	if err != nil {
		slog.Error("SSE: event encode failed", "error", err)
		return
	}
	sm.Broadcast(automaton, string(data))
}
