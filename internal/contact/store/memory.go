package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"contacthub/internal/contact/models"
	"contacthub/internal/sentinel"
)

// InMemory stores contacts in memory for tests and local runs without a
// database.
type InMemory struct {
	mu       sync.RWMutex
	contacts map[uuid.UUID]*models.Contact
}

// NewInMemory creates an in-memory contact store.
func NewInMemory() *InMemory {
	return &InMemory{contacts: make(map[uuid.UUID]*models.Contact)}
}

// Get retrieves a contact by ID.
func (s *InMemory) Get(_ context.Context, id uuid.UUID) (*models.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.contacts[id]; ok {
		return c.Clone(), nil
	}
	return nil, sentinel.ErrNotFound
}

// List returns all contacts ordered by name for stable output.
func (s *InMemory) List(_ context.Context) ([]*models.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		out = append(out, c.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Create stores a new contact.
func (s *InMemory) Create(_ context.Context, contact *models.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.contacts[contact.ID]; exists {
		return sentinel.ErrAlreadyUsed
	}
	s.contacts[contact.ID] = contact.Clone()
	return nil
}

// Update replaces the stored record.
func (s *InMemory) Update(_ context.Context, id uuid.UUID, contact *models.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.contacts[id]; !ok {
		return sentinel.ErrNotFound
	}
	replacement := contact.Clone()
	replacement.ID = id
	s.contacts[id] = replacement
	return nil
}

// Delete removes the stored record.
func (s *InMemory) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.contacts[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.contacts, id)
	return nil
}

// FindByNameAndCategory retrieves a contact by its uniqueness key.
func (s *InMemory) FindByNameAndCategory(_ context.Context, name string, category models.Category) (*models.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.contacts {
		if c.Name == name && c.Category == category {
			return c.Clone(), nil
		}
	}
	return nil, sentinel.ErrNotFound
}

// Count returns the total number of contacts.
func (s *InMemory) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contacts), nil
}
