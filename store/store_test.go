// ABOUTME: Tests for the in-memory contact store
// ABOUTME: Covers contact CRUD, category cascade rules, and property checks
package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/harperreed/rolodex/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func newContact(name, phone, category string, priority models.Priority) models.Contact {
	return models.Contact{Name: name, Phone: phone, Category: category, Priority: priority}
}

func TestAddAssignsIDAndDefaults(t *testing.T) {
	s := New("Work")

	added, err := s.Add(models.Contact{Name: "Ann", Phone: "555", Category: "Work"})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, added.ID)
	assert.Equal(t, models.PriorityMedium, added.Priority)
	assert.Equal(t, 1, s.Len())

	got, ok := s.Get(added.ID)
	require.True(t, ok)
	assert.Equal(t, added, got)
}

func TestAddMissingRequiredFieldsIsNoop(t *testing.T) {
	s := New()

	_, err := s.Add(models.Contact{Phone: "555"})
	assert.ErrorIs(t, err, models.ErrNameRequired)

	_, err = s.Add(models.Contact{Name: "Ann"})
	assert.ErrorIs(t, err, models.ErrPhoneRequired)

	assert.Equal(t, 0, s.Len())
}

func TestDuplicateNamePhoneAreIndependent(t *testing.T) {
	s := New("Work")
	first, err := s.Add(newContact("Ann", "555", "Work", models.PriorityHigh))
	require.NoError(t, err)
	second, err := s.Add(newContact("Ann", "555", "Work", models.PriorityLow))
	require.NoError(t, err)

	require.NoError(t, s.Delete(second.ID))

	remaining := s.Contacts()
	require.Len(t, remaining, 1)
	assert.Equal(t, first.ID, remaining[0].ID)
}

func TestUpdateKeepsPositionAndID(t *testing.T) {
	s := New("Work", "Family")
	a, _ := s.Add(newContact("Ann", "1", "Work", models.PriorityHigh))
	b, _ := s.Add(newContact("Bob", "2", "Work", models.PriorityLow))

	updated, err := s.Update(a.ID, newContact("Annie", "1", "Family", models.PriorityLow))
	require.NoError(t, err)
	assert.Equal(t, a.ID, updated.ID)

	all := s.Contacts()
	require.Len(t, all, 2)
	assert.Equal(t, "Annie", all[0].Name)
	assert.Equal(t, b.ID, all[1].ID)

	_, err = s.Update(uuid.New(), newContact("X", "9", "", ""))
	assert.ErrorIs(t, err, ErrContactNotFound)

	_, err = s.Update(a.ID, newContact("", "1", "", ""))
	assert.ErrorIs(t, err, models.ErrNameRequired)
}

func TestRemoveByPredicate(t *testing.T) {
	s := New("Work")
	_, _ = s.Add(newContact("Ann", "1", "Work", models.PriorityHigh))
	_, _ = s.Add(newContact("Bob", "2", "Work", models.PriorityLow))
	_, _ = s.Add(newContact("Cat", "3", "", models.PriorityLow))

	removed := s.Remove(func(c models.Contact) bool { return c.Priority == models.PriorityLow })
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, s.Len())
	assert.ErrorIs(t, s.Delete(uuid.New()), ErrContactNotFound)
}

func TestFind(t *testing.T) {
	s := New("Work", "Family")
	_, _ = s.Add(newContact("Ann Lee", "1", "Work", ""))
	_, _ = s.Add(newContact("Bob", "2", "Family", ""))
	_, _ = s.Add(newContact("Joann", "3", "Family", ""))

	assert.Len(t, s.Find("ANN", "", 0), 2)
	assert.Len(t, s.Find("ann", "Family", 0), 1)
	assert.Len(t, s.Find("", "", 1), 1)
}

func TestMove(t *testing.T) {
	s := New("Work", "Family")
	a, _ := s.Add(newContact("Ann", "1", "Work", ""))

	moved, err := s.Move(a.ID, "Work")
	require.NoError(t, err)
	assert.False(t, moved)

	moved, err = s.Move(a.ID, "Family")
	require.NoError(t, err)
	assert.True(t, moved)

	got, _ := s.Get(a.ID)
	assert.Equal(t, "Family", got.Category)

	_, err = s.Move(uuid.New(), "Work")
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestAddCategory(t *testing.T) {
	s := New()
	assert.True(t, s.AddCategory("Work"))
	assert.False(t, s.AddCategory("Work"))
	assert.False(t, s.AddCategory("  "))
	assert.Equal(t, []string{"Work"}, s.Categories())
}

func TestRenameCategoryCascades(t *testing.T) {
	s := New("Work", "Family")
	a, _ := s.Add(newContact("Ann", "1", "Work", ""))
	b, _ := s.Add(newContact("Bob", "2", "Family", ""))

	assert.False(t, s.RenameCategory("Work", "Family"), "duplicate target")
	assert.False(t, s.RenameCategory("Work", ""), "blank target")
	assert.False(t, s.RenameCategory("Nope", "Other"), "unknown source")

	require.True(t, s.RenameCategory("Work", "Office"))
	assert.Equal(t, []string{"Office", "Family"}, s.Categories())

	gotA, _ := s.Get(a.ID)
	gotB, _ := s.Get(b.ID)
	assert.Equal(t, "Office", gotA.Category)
	assert.Equal(t, "Family", gotB.Category)
}

func TestDeleteCategoryBlanksContacts(t *testing.T) {
	s := New("Work", "Family")
	a, _ := s.Add(newContact("Ann", "1", "Work", ""))
	b, _ := s.Add(newContact("Bob", "2", "Family", ""))

	require.True(t, s.DeleteCategory("Work"))
	assert.False(t, s.DeleteCategory("Work"))
	assert.Equal(t, []string{"Family"}, s.Categories())
	assert.Equal(t, 2, s.Len())

	gotA, _ := s.Get(a.ID)
	gotB, _ := s.Get(b.ID)
	assert.Equal(t, "", gotA.Category)
	assert.Equal(t, "Family", gotB.Category)
}

func TestReplaceFillsIDsAndDedupesCategories(t *testing.T) {
	s := New("Old")
	s.Replace(models.Snapshot{
		Contacts:   []models.Contact{{Name: "Ann", Phone: "1"}},
		Categories: []string{"Work", "Work", ""},
	})

	snap := s.Snapshot()
	require.Len(t, snap.Contacts, 1)
	assert.NotEqual(t, uuid.Nil, snap.Contacts[0].ID)
	assert.Equal(t, models.PriorityMedium, snap.Contacts[0].Priority)
	assert.Equal(t, []string{"Work"}, snap.Categories)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New("Work")
	_, _ = s.Add(newContact("Ann", "1", "Work", ""))

	snap := s.Snapshot()
	snap.Contacts[0].Name = "Changed"
	snap.Categories[0] = "Changed"

	assert.Equal(t, "Ann", s.Contacts()[0].Name)
	assert.Equal(t, "Work", s.Categories()[0])
}

func drawContact(t *rapid.T, categories []string) models.Contact {
	return models.Contact{
		Name:     rapid.StringMatching(`[A-Za-z ]{0,8}`).Draw(t, "name"),
		Phone:    rapid.StringMatching(`[0-9]{0,4}`).Draw(t, "phone"),
		Category: rapid.SampledFrom(append([]string{""}, categories...)).Draw(t, "category"),
		Priority: rapid.SampledFrom(models.Priorities()).Draw(t, "priority"),
	}
}

func TestPropertyAddAppearsOnceOrNoop(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := New(models.DefaultCategories()...)
		contacts := rapid.SliceOfN(rapid.Custom(func(t *rapid.T) models.Contact {
			return drawContact(t, models.DefaultCategories())
		}), 0, 20).Draw(t, "contacts")

		for _, c := range contacts {
			before := s.Len()
			added, err := s.Add(c)
			if c.Validate() != nil {
				if err == nil || s.Len() != before {
					t.Fatalf("invalid contact %+v changed the store", c)
				}
				continue
			}
			if err != nil {
				t.Fatalf("valid contact rejected: %v", err)
			}
			count := 0
			for _, got := range s.Contacts() {
				if got.ID == added.ID {
					count++
				}
			}
			if count != 1 {
				t.Fatalf("expected contact once, found %d times", count)
			}
		}
	})
}

func TestPropertyCategoryCascade(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		categories := models.DefaultCategories()
		s := New(categories...)
		contacts := rapid.SliceOfN(rapid.Custom(func(t *rapid.T) models.Contact {
			c := drawContact(t, categories)
			c.Name, c.Phone = "n", "p"
			return c
		}), 0, 20).Draw(t, "contacts")
		for _, c := range contacts {
			if _, err := s.Add(c); err != nil {
				t.Fatalf("add: %v", err)
			}
		}
		before := s.Contacts()
		target := rapid.SampledFrom(categories).Draw(t, "target")

		if rapid.Bool().Draw(t, "rename") {
			if !s.RenameCategory(target, "Renamed") {
				t.Fatalf("rename of %q refused", target)
			}
			for i, c := range s.Contacts() {
				want := before[i].Category
				if want == target {
					want = "Renamed"
				}
				if c.Category != want {
					t.Fatalf("contact %d category %q, want %q", i, c.Category, want)
				}
			}
			return
		}

		if !s.DeleteCategory(target) {
			t.Fatalf("delete of %q refused", target)
		}
		if s.HasCategory(target) {
			t.Fatalf("category %q still listed", target)
		}
		for i, c := range s.Contacts() {
			want := before[i].Category
			if want == target {
				want = ""
			}
			if c.Category != want {
				t.Fatalf("contact %d category %q, want %q", i, c.Category, want)
			}
		}
	})
}

func TestResolveByPrefix(t *testing.T) {
	s := New()
	s.Replace(models.Snapshot{Contacts: []models.Contact{
		{ID: uuid.MustParse("aaaa1111-0000-0000-0000-000000000000"), Name: "Ann", Phone: "1"},
		{ID: uuid.MustParse("aaaa2222-0000-0000-0000-000000000000"), Name: "Bob", Phone: "2"},
	}})

	got, err := s.Resolve("aaaa1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Name)

	got, err = s.Resolve("AAAA2222-0000-0000-0000-000000000000")
	require.NoError(t, err)
	assert.Equal(t, "Bob", got.Name)

	_, err = s.Resolve("aaaa")
	assert.ErrorIs(t, err, ErrAmbiguousID)

	_, err = s.Resolve("ffff")
	assert.ErrorIs(t, err, ErrContactNotFound)

	_, err = s.Resolve("")
	assert.ErrorIs(t, err, ErrContactNotFound)

	_, err = s.Resolve(uuid.NewString())
	assert.ErrorIs(t, err, ErrContactNotFound)
}
