// ABOUTME: Contact operations on the in-memory store
// ABOUTME: Handles add, update, remove, lookup, search, and category moves
package store

import (
	"strings"

	"github.com/google/uuid"
	"github.com/harperreed/rolodex/models"
)

// Add appends contact when its required fields are present. Otherwise the
// store is unchanged and the validation error is returned.
func (s *Store) Add(contact models.Contact) (models.Contact, error) {
	if err := contact.Validate(); err != nil {
		return models.Contact{}, err
	}
	if contact.ID == uuid.Nil {
		contact.ID = uuid.New()
	}
	if contact.Priority == "" {
		contact.Priority = models.DefaultPriority
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.contacts = append(s.contacts, contact)
	return contact, nil
}

// Update replaces the contact with the given id in place, keeping its id and
// position.
func (s *Store) Update(id uuid.UUID, contact models.Contact) (models.Contact, error) {
	if err := contact.Validate(); err != nil {
		return models.Contact{}, err
	}
	if contact.Priority == "" {
		contact.Priority = models.DefaultPriority
	}
	contact.ID = id

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return models.Contact{}, ErrContactNotFound
	}
	s.contacts[i] = contact
	return contact, nil
}

// Remove filters out every contact matching pred and reports how many went.
func (s *Store) Remove(pred func(models.Contact) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.contacts[:0]
	removed := 0
	for _, c := range s.contacts {
		if pred(c) {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	// zero the tail so dropped contacts are not retained by the backing array
	for i := len(kept); i < len(s.contacts); i++ {
		s.contacts[i] = models.Contact{}
	}
	s.contacts = kept
	return removed
}

// Delete removes the contact with the given id.
func (s *Store) Delete(id uuid.UUID) error {
	if s.Remove(func(c models.Contact) bool { return c.ID == id }) == 0 {
		return ErrContactNotFound
	}
	return nil
}

func (s *Store) Get(id uuid.UUID) (models.Contact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexLocked(id)
	if i < 0 {
		return models.Contact{}, false
	}
	return s.contacts[i], true
}

// Contacts returns a copy of all contacts in insertion order.
func (s *Store) Contacts() []models.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Contact{}, s.contacts...)
}

// Find returns contacts whose name contains query (case-insensitive) and,
// when category is non-empty, whose category equals it. limit <= 0 means no
// limit.
func (s *Store) Find(query, category string, limit int) []models.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(query)
	var found []models.Contact
	for _, c := range s.contacts {
		if category != "" && c.Category != category {
			continue
		}
		if !strings.Contains(strings.ToLower(c.Name), needle) {
			continue
		}
		found = append(found, c)
		if limit > 0 && len(found) >= limit {
			break
		}
	}
	return found
}

// Move reassigns a contact's category. It reports false when the contact is
// already in that category.
func (s *Store) Move(id uuid.UUID, category string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return false, ErrContactNotFound
	}
	if s.contacts[i].Category == category {
		return false, nil
	}
	s.contacts[i].Category = category
	return true, nil
}

// Resolve finds a contact by full id or by a unique id prefix.
func (s *Store) Resolve(ref string) (models.Contact, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if id, err := uuid.Parse(ref); err == nil {
		if c, ok := s.Get(id); ok {
			return c, nil
		}
		return models.Contact{}, ErrContactNotFound
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var match []models.Contact
	for _, c := range s.contacts {
		if ref != "" && strings.HasPrefix(c.ID.String(), ref) {
			match = append(match, c)
		}
	}
	switch len(match) {
	case 0:
		return models.Contact{}, ErrContactNotFound
	case 1:
		return match[0], nil
	}
	return models.Contact{}, ErrAmbiguousID
}

func (s *Store) indexLocked(id uuid.UUID) int {
	for i, c := range s.contacts {
		if c.ID == id {
			return i
		}
	}
	return -1
}
