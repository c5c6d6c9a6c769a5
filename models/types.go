// ABOUTME: Data models for the contact map
// ABOUTME: Defines Contact, Priority, and the Snapshot exchanged on export/import
package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNameRequired  = errors.New("name is required")
	ErrPhoneRequired = errors.New("phone is required")
)

// Priority drives both card color and stack order within a category.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"

	DefaultPriority = PriorityMedium
)

// Priorities returns the known priorities in display order.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// Rank orders priorities for stacking. Unknown values rank after Low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

func (p Priority) Valid() bool {
	return p.Rank() < 3
}

// ParsePriority matches case-insensitively and falls back to the default.
func ParsePriority(s string) Priority {
	for _, p := range Priorities() {
		if strings.EqualFold(strings.TrimSpace(s), string(p)) {
			return p
		}
	}
	return DefaultPriority
}

type Contact struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Phone    string    `json:"phone"`
	Location string    `json:"location"`
	Website  string    `json:"website"`
	Category string    `json:"category"`
	Priority Priority  `json:"priority"`
}

// Validate performs the required-field checks. Nothing else is validated.
func (c Contact) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(c.Phone) == "" {
		return ErrPhoneRequired
	}
	return nil
}

// Snapshot is the full exportable session state.
type Snapshot struct {
	Contacts   []Contact `json:"contacts"`
	Categories []string  `json:"categories"`
}

// DefaultCategories seeds a fresh session.
func DefaultCategories() []string {
	return []string{"Friends", "Family", "Work"}
}
