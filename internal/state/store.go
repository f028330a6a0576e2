package state

import (
	"sync"

	"tailor-backend/internal/models"
)

// Observer is called with the new state after every dispatch
type Observer func(models.AppState)

// Store holds the current AppState and serializes dispatches so actions
// apply one at a time in dispatch order. It is constructor-injected
// wherever state access is needed; there is no package-level instance.
type Store struct {
	mu        sync.RWMutex
	state     models.AppState
	observers []Observer
}

func NewStore(initial models.AppState) *Store {
	return &Store{state: initial}
}

// State returns the current state snapshot
func (s *Store) State() models.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies the transition function and notifies observers with
// the resulting state. Observers run synchronously under the dispatch
// lock, so they see states in dispatch order.
func (s *Store) Dispatch(a Action) models.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Transition(s.state, a)
	for _, o := range s.observers {
		o(s.state)
	}
	return s.state
}

// Subscribe registers an observer for subsequent dispatches
func (s *Store) Subscribe(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}
