// ABOUTME: Category operations on the in-memory store
// ABOUTME: Add, rename with cascade, and delete with blanking of contact references
package store

import "strings"

// Categories returns a copy of the category list in display order.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.categories...)
}

// HasCategory reports whether name is a known category.
func (s *Store) HasCategory(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categoryIndexLocked(name) >= 0
}

// AddCategory appends name. Blank or duplicate names are ignored.
func (s *Store) AddCategory(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addCategoryLocked(name)
}

// RenameCategory renames oldName in place and moves every contact filed under
// it. It is a no-op when newName is blank or already taken, or when oldName
// does not exist.
func (s *Store) RenameCategory(oldName, newName string) bool {
	if strings.TrimSpace(newName) == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.categoryIndexLocked(newName) >= 0 {
		return false
	}
	i := s.categoryIndexLocked(oldName)
	if i < 0 {
		return false
	}

	s.categories[i] = newName
	for j := range s.contacts {
		if s.contacts[j].Category == oldName {
			s.contacts[j].Category = newName
		}
	}
	return true
}

// DeleteCategory drops name from the list and blanks it on every contact
// referencing it. Contacts themselves are kept.
func (s *Store) DeleteCategory(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.categoryIndexLocked(name)
	if i < 0 {
		return false
	}

	s.categories = append(s.categories[:i], s.categories[i+1:]...)
	for j := range s.contacts {
		if s.contacts[j].Category == name {
			s.contacts[j].Category = ""
		}
	}
	return true
}

func (s *Store) addCategoryLocked(name string) bool {
	if strings.TrimSpace(name) == "" || s.categoryIndexLocked(name) >= 0 {
		return false
	}
	s.categories = append(s.categories, name)
	return true
}

func (s *Store) categoryIndexLocked(name string) int {
	for i, c := range s.categories {
		if c == name {
			return i
		}
	}
	return -1
}
