// ABOUTME: Contact editor form with an explicit Idle/Editing mode
// ABOUTME: Submit appends a new contact or replaces the one being edited
package editor

import (
	"errors"

	"github.com/google/uuid"
	"github.com/harperreed/rolodex/models"
	"github.com/harperreed/rolodex/store"
)

// Mode is either Idle or Editing a specific contact. The zero value is Idle.
type Mode struct {
	editing uuid.UUID
}

func Idle() Mode { return Mode{} }

func Editing(id uuid.UUID) Mode { return Mode{editing: id} }

// EditingID reports the contact being edited, if any.
func (m Mode) EditingID() (uuid.UUID, bool) {
	return m.editing, m.editing != uuid.Nil
}

func (m Mode) IsEditing() bool { return m.editing != uuid.Nil }

// Form holds the draft contact bound to the editor panel.
type Form struct {
	Draft models.Contact
	Mode  Mode
}

func NewForm() Form {
	return Form{Draft: blankDraft()}
}

func blankDraft() models.Contact {
	return models.Contact{Priority: models.DefaultPriority}
}

// Begin loads contact into the draft and enters Editing mode.
func (f *Form) Begin(contact models.Contact) {
	f.Draft = contact
	f.Mode = Editing(contact.ID)
}

// Reset clears the draft and returns to Idle.
func (f *Form) Reset() {
	f.Draft = blankDraft()
	f.Mode = Idle()
}

// Submit saves the draft. On success the form resets. On a validation error
// nothing changes. If the contact being edited no longer exists the form
// drops back to Idle and keeps the draft so it can be re-added.
func (f *Form) Submit(s *store.Store) (models.Contact, error) {
	var (
		saved models.Contact
		err   error
	)
	if id, ok := f.Mode.EditingID(); ok {
		saved, err = s.Update(id, f.Draft)
	} else {
		draft := f.Draft
		draft.ID = uuid.Nil
		saved, err = s.Add(draft)
	}

	if errors.Is(err, store.ErrContactNotFound) {
		f.Mode = Idle()
		return models.Contact{}, err
	}
	if err != nil {
		return models.Contact{}, err
	}

	f.Reset()
	return saved, nil
}
