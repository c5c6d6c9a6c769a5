// ABOUTME: Tests for contact and category MCP tool handlers
// ABOUTME: Validates tool input/output, confirmations, and error handling
package handlers

import (
	"context"
	"testing"

	"github.com/harperreed/rolodex/editor"
	"github.com/harperreed/rolodex/layout"
	"github.com/harperreed/rolodex/models"
	"github.com/harperreed/rolodex/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestSession(t *testing.T, categories ...string) *editor.Session {
	t.Helper()
	return editor.NewSession(store.New(categories...), layout.ThemeLight)
}

func TestAddContactHandler(t *testing.T) {
	sess := setupTestSession(t, "Work")
	handler := NewContactHandlers(sess)

	_, out, err := handler.AddContact(context.Background(), nil, AddContactInput{
		Name:     "John Doe",
		Phone:    "555-1234",
		Website:  "john.dev",
		Category: "Work",
		Priority: "high",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "John Doe", out.Name)
	assert.Equal(t, "High", out.Priority)
	assert.Equal(t, "https://john.dev", out.WebsiteURL)
	assert.Equal(t, 1, sess.Store().Len())
}

func TestAddContactValidation(t *testing.T) {
	sess := setupTestSession(t, "Work")
	handler := NewContactHandlers(sess)

	_, _, err := handler.AddContact(context.Background(), nil, AddContactInput{Name: "No Phone"})
	assert.Error(t, err)

	_, _, err = handler.AddContact(context.Background(), nil, AddContactInput{Name: "Ann", Phone: "1", Category: "Nowhere"})
	assert.Error(t, err)

	assert.Equal(t, 0, sess.Store().Len())
}

func TestFindContactsHandler(t *testing.T) {
	sess := setupTestSession(t, "Work", "Family")
	handler := NewContactHandlers(sess)
	ctx := context.Background()

	for _, in := range []AddContactInput{
		{Name: "Ann", Phone: "1", Category: "Work", Priority: "High"},
		{Name: "Anna", Phone: "2", Category: "Family", Priority: "Low"},
		{Name: "Bob", Phone: "3", Category: "Work", Priority: "High"},
	} {
		_, _, err := handler.AddContact(ctx, nil, in)
		require.NoError(t, err)
	}

	_, out, err := handler.FindContacts(ctx, nil, FindContactsInput{Query: "ann"})
	require.NoError(t, err)
	assert.Len(t, out.Contacts, 2)

	_, out, err = handler.FindContacts(ctx, nil, FindContactsInput{Category: "Work", Priority: "high"})
	require.NoError(t, err)
	assert.Len(t, out.Contacts, 2)

	_, out, err = handler.FindContacts(ctx, nil, FindContactsInput{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, out.Contacts, 1)

	_, out, err = handler.FindContacts(ctx, nil, FindContactsInput{Query: "zed"})
	require.NoError(t, err)
	assert.NotNil(t, out.Contacts)
	assert.Empty(t, out.Contacts)
}

func TestUpdateContactHandler(t *testing.T) {
	sess := setupTestSession(t, "Work", "Family")
	handler := NewContactHandlers(sess)
	ctx := context.Background()

	_, ann, err := handler.AddContact(ctx, nil, AddContactInput{Name: "Ann", Phone: "1", Category: "Work"})
	require.NoError(t, err)

	_, out, err := handler.UpdateContact(ctx, nil, UpdateContactInput{ID: ann.ID, Phone: "99", Category: "Family"})
	require.NoError(t, err)
	assert.Equal(t, ann.ID, out.ID)
	assert.Equal(t, "Ann", out.Name)
	assert.Equal(t, "99", out.Phone)
	assert.Equal(t, "Family", out.Category)
	assert.Equal(t, 1, sess.Store().Len())
	assert.False(t, sess.Form().Mode.IsEditing())

	_, _, err = handler.UpdateContact(ctx, nil, UpdateContactInput{})
	assert.Error(t, err)

	_, _, err = handler.UpdateContact(ctx, nil, UpdateContactInput{ID: "ffffffff"})
	assert.ErrorIs(t, err, store.ErrContactNotFound)
}

func TestContactToolsLeaveOpenEditAlone(t *testing.T) {
	sess := setupTestSession(t, "Work")
	handler := NewContactHandlers(sess)
	ctx := context.Background()

	_, ann, err := handler.AddContact(ctx, nil, AddContactInput{Name: "Ann", Phone: "1"})
	require.NoError(t, err)
	_, bob, err := handler.AddContact(ctx, nil, AddContactInput{Name: "Bob", Phone: "2"})
	require.NoError(t, err)

	bobContact, err := sess.Store().Resolve(bob.ID)
	require.NoError(t, err)
	require.NoError(t, sess.BeginEdit(bobContact.ID))
	sess.SetDraft(models.Contact{Name: "Bob typed", Phone: "2"})

	_, _, err = handler.AddContact(ctx, nil, AddContactInput{Name: "Cy", Phone: "3"})
	require.NoError(t, err)
	_, out, err := handler.UpdateContact(ctx, nil, UpdateContactInput{ID: ann.ID, Phone: "99"})
	require.NoError(t, err)
	assert.Equal(t, "Ann", out.Name)

	form := sess.Form()
	id, ok := form.Mode.EditingID()
	require.True(t, ok)
	assert.Equal(t, bobContact.ID, id)
	assert.Equal(t, "Bob typed", form.Draft.Name)

	saved, err := sess.Submit()
	require.NoError(t, err)
	assert.Equal(t, bobContact.ID, saved.ID)
	assert.Equal(t, 3, sess.Store().Len())
}

func TestGetContactByPrefix(t *testing.T) {
	sess := setupTestSession(t, "Work")
	handler := NewContactHandlers(sess)
	ctx := context.Background()

	_, ann, err := handler.AddContact(ctx, nil, AddContactInput{Name: "Ann", Phone: "1", Location: "Paris"})
	require.NoError(t, err)

	_, got, err := handler.GetContact(ctx, nil, ContactIDInput{ID: ann.ID[:8]})
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Name)
	assert.Contains(t, got.MapURL, "Paris")
}

func TestDeleteContactRequiresConfirm(t *testing.T) {
	sess := setupTestSession(t, "Work")
	handler := NewContactHandlers(sess)
	ctx := context.Background()

	_, ann, err := handler.AddContact(ctx, nil, AddContactInput{Name: "Ann", Phone: "1"})
	require.NoError(t, err)

	_, out, err := handler.DeleteContact(ctx, nil, DeleteContactInput{ID: ann.ID})
	require.NoError(t, err)
	assert.False(t, out.Deleted)
	assert.Contains(t, out.Message, editor.PromptDeleteContact)
	assert.Equal(t, 1, sess.Store().Len())

	_, out, err = handler.DeleteContact(ctx, nil, DeleteContactInput{ID: ann.ID, Confirm: true})
	require.NoError(t, err)
	assert.True(t, out.Deleted)
	assert.Equal(t, 0, sess.Store().Len())

	_, _, err = handler.DeleteContact(ctx, nil, DeleteContactInput{ID: ann.ID, Confirm: true})
	assert.Error(t, err)
}

func TestMoveContactHandler(t *testing.T) {
	sess := setupTestSession(t, "Work", "Family")
	handler := NewContactHandlers(sess)
	ctx := context.Background()

	_, ann, err := handler.AddContact(ctx, nil, AddContactInput{Name: "Ann", Phone: "1", Category: "Work"})
	require.NoError(t, err)

	_, out, err := handler.MoveContact(ctx, nil, MoveContactInput{ID: ann.ID, Category: "Family"})
	require.NoError(t, err)
	assert.True(t, out.Moved)
	assert.Equal(t, "Family", out.Contact.Category)

	_, out, err = handler.MoveContact(ctx, nil, MoveContactInput{ID: ann.ID, Category: "Family"})
	require.NoError(t, err)
	assert.False(t, out.Moved)

	_, _, err = handler.MoveContact(ctx, nil, MoveContactInput{ID: ann.ID, Category: "Nowhere"})
	assert.Error(t, err)
}

func TestCategoryHandlers(t *testing.T) {
	sess := setupTestSession(t, "Work")
	contacts := NewContactHandlers(sess)
	handler := NewCategoryHandlers(sess)
	ctx := context.Background()

	_, _, err := contacts.AddContact(ctx, nil, AddContactInput{Name: "Ann", Phone: "1", Category: "Work"})
	require.NoError(t, err)

	_, out, err := handler.AddCategory(ctx, nil, CategoryNameInput{Name: " Family "})
	require.NoError(t, err)
	require.Len(t, out.Categories, 2)
	assert.Equal(t, "Family", out.Categories[1].Name)

	_, _, err = handler.AddCategory(ctx, nil, CategoryNameInput{Name: "Work"})
	assert.Error(t, err)
	_, _, err = handler.AddCategory(ctx, nil, CategoryNameInput{Name: "  "})
	assert.Error(t, err)

	_, out, err = handler.RenameCategory(ctx, nil, RenameCategoryInput{From: "Work", To: "Job"})
	require.NoError(t, err)
	assert.Equal(t, "Job", out.Categories[0].Name)
	assert.Equal(t, 1, out.Categories[0].Value)
	assert.Equal(t, "Job", sess.Store().Contacts()[0].Category)

	_, _, err = handler.RenameCategory(ctx, nil, RenameCategoryInput{From: "Job", To: "Family"})
	assert.Error(t, err)

	_, del, err := handler.DeleteCategory(ctx, nil, DeleteCategoryInput{Name: "Job"})
	require.NoError(t, err)
	assert.False(t, del.Deleted)

	_, del, err = handler.DeleteCategory(ctx, nil, DeleteCategoryInput{Name: "Job", Confirm: true})
	require.NoError(t, err)
	assert.True(t, del.Deleted)
	assert.Equal(t, "", sess.Store().Contacts()[0].Category)

	_, list, err := handler.ListCategories(ctx, nil, ListCategoriesInput{})
	require.NoError(t, err)
	require.Len(t, list.Categories, 1)
	assert.Equal(t, "Family", list.Categories[0].Name)

	_, _, err = handler.DeleteCategory(ctx, nil, DeleteCategoryInput{Name: "Job", Confirm: true})
	assert.Error(t, err)
}
