package repository

import (
	"context"
	"sync"

	"github.com/okian/clincher/internal/domain/roster"
)

// RosterStore implements Store with an in-memory, mutex-guarded
// roster. Reads return copies so callers can never mutate the stored
// roster in place.
type RosterStore struct {
	mu      sync.RWMutex
	list    []roster.Contender
	byID    map[string]int
	version uint64
}

// NewRosterStore creates a store seeded with the given roster. The
// roster is assumed validated; use roster.Validate before seeding.
func NewRosterStore(list []roster.Contender) *RosterStore {
	s := &RosterStore{}
	s.swap(list)
	return s
}

func (s *RosterStore) swap(list []roster.Contender) {
	s.list = append([]roster.Contender(nil), list...)
	s.byID = make(map[string]int, len(list))
	for i, c := range list {
		s.byID[c.ID] = i
	}
	s.version++
}

// List returns every contender in roster order.
func (s *RosterStore) List(_ context.Context) []roster.Contender {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]roster.Contender(nil), s.list...)
}

// Get returns the contender with the given id, or ErrNotFound.
func (s *RosterStore) Get(_ context.Context, id string) (roster.Contender, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return roster.Contender{}, ErrNotFound
	}
	return s.list[i], nil
}

// Tracked returns the title-fight contenders in roster order.
func (s *RosterStore) Tracked(_ context.Context) []roster.Contender {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return roster.Tracked(s.list)
}

// Replace swaps the entire roster after validating it and bumps the
// store version.
func (s *RosterStore) Replace(_ context.Context, list []roster.Contender) error {
	if err := roster.Validate(list); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.swap(list)
	return nil
}

// Version returns the replace counter.
func (s *RosterStore) Version(_ context.Context) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Count returns the number of contenders.
func (s *RosterStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.list)
}
