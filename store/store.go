// ABOUTME: In-memory contact store holding the session's contacts and categories
// ABOUTME: Every mutation of session data goes through a Store
package store

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/harperreed/rolodex/models"
)

var (
	ErrContactNotFound = errors.New("contact not found")
	ErrAmbiguousID     = errors.New("id prefix matches more than one contact")
)

// Store keeps contacts and categories in insertion order. Category order is
// the display and layout order.
type Store struct {
	mu         sync.RWMutex
	contacts   []models.Contact
	categories []string
}

// New returns a store seeded with the given categories. Blank and duplicate
// names are dropped.
func New(categories ...string) *Store {
	s := &Store{}
	for _, name := range categories {
		s.addCategoryLocked(name)
	}
	return s
}

// FromSnapshot builds a store holding a copy of snap.
func FromSnapshot(snap models.Snapshot) *Store {
	s := &Store{}
	s.Replace(snap)
	return s
}

// Replace swaps the whole state for snap. Contacts are not validated; missing
// ids are generated and empty priorities default to Medium.
func (s *Store) Replace(snap models.Snapshot) {
	contacts := make([]models.Contact, 0, len(snap.Contacts))
	for _, c := range snap.Contacts {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		if c.Priority == "" {
			c.Priority = models.DefaultPriority
		}
		contacts = append(contacts, c)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.contacts = contacts
	s.categories = nil
	for _, name := range snap.Categories {
		s.addCategoryLocked(name)
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.Snapshot{
		Contacts:   append([]models.Contact{}, s.contacts...),
		Categories: append([]string{}, s.categories...),
	}
}

// Len reports the number of contacts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contacts)
}
