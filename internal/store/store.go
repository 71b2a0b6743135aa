// Package store owns the editor state and applies intents to it one at a
// time, notifying observers with each fully-formed next state.
package store

import (
	"sync"

	"github.com/alexisbeaulieu97/buildify/internal/document"
	"github.com/alexisbeaulieu97/buildify/internal/logger"
)

// Observer receives the state produced by every dispatched intent.
type Observer func(State)

type subscription struct {
	id int
	fn Observer
}

// Store serialises intents against a single State.
type Store struct {
	mu        sync.Mutex
	state     State
	observers []subscription
	nextID    int
	log       *logger.Logger
}

// New creates a store seeded with initial.
func New(initial State, log *logger.Logger) *Store {
	return &Store{
		state: initial,
		log:   log.With("component", "store"),
	}
}

// NewDefault creates a store seeded with DefaultState.
func NewDefault(log *logger.Logger) *Store {
	return New(DefaultState(), log)
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CurrentScreen returns the selected screen of the current state.
func (s *Store) CurrentScreen() (document.Screen, bool) {
	return s.State().CurrentScreen()
}

// Dispatch applies intent and returns the resulting state. Observers run
// after the state has been committed, outside the lock.
func (s *Store) Dispatch(intent Intent) State {
	if intent == nil {
		return s.State()
	}

	s.mu.Lock()
	next := Reduce(s.state, intent)
	s.state = next
	observers := make([]Observer, len(s.observers))
	for i, sub := range s.observers {
		observers[i] = sub.fn
	}
	s.mu.Unlock()

	s.logIntent(intent, next)

	for _, fn := range observers {
		fn(next)
	}
	return next
}

// Subscribe registers fn and returns a function that removes it again.
func (s *Store) Subscribe(fn Observer) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, subscription{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.observers {
			if sub.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// AddToCurrentScreen appends node to the selected screen.
func (s *Store) AddToCurrentScreen(node document.Node) State {
	return s.Dispatch(AddComponent{ScreenID: s.State().SelectedScreenID, Node: node})
}

// ReorderCurrentScreen replaces the selected screen's top-level order.
func (s *Store) ReorderCurrentScreen(order []document.Node) State {
	return s.Dispatch(ReorderComponents{ScreenID: s.State().SelectedScreenID, Order: order})
}

func (s *Store) logIntent(intent Intent, next State) {
	if !s.log.DebugEnabled() {
		return
	}

	fields := map[string]any{
		"intent": intent.IntentName(),
		"screen": next.SelectedScreenID,
	}
	switch in := intent.(type) {
	case AddComponent:
		fields["node"] = in.Node.ID
		fields["kind"] = in.Node.Kind
	case UpdateComponentProps:
		fields["node"] = in.ComponentID
	case RemoveComponent:
		fields["node"] = in.ComponentID
	case ReorderComponents:
		fields["count"] = len(in.Order)
	case ReplaceDocument:
		fields["document"] = in.Document.ID
	}
	s.log.WithFields(fields).Debug("intent applied")
}
