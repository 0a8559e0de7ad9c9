package store

import (
	"sync"

	"ms-events/internal/models"
)

// EventStore is the process-wide in-memory event collection. It starts empty,
// grows by append only, and lives for the lifetime of the process. Constructed
// once in main and injected into the event service.
type EventStore struct {
	mu     sync.RWMutex
	events []models.Event
}

func NewEventStore() *EventStore {
	return &EventStore{}
}

// List returns a copy of the current records so callers can scan them without
// holding the store's lock.
func (s *EventStore) List() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Event, len(s.events))
	copy(out, s.events)
	return out
}

func (s *EventStore) Append(event models.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *EventStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

// Reset clears the store. Test helper only, there is no production caller.
func (s *EventStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
}
