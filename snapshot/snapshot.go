// ABOUTME: JSON snapshot export and import for the contact session
// ABOUTME: Encodes {contacts, categories}, tolerates missing keys, rejects malformed input
package snapshot

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/harperreed/rolodex/models"
)

// DefaultFileName is the name offered for exported snapshots.
const DefaultFileName = "contacts.json"

var (
	ErrMalformed   = errors.New("malformed snapshot")
	ErrNotJSONFile = errors.New("snapshot file must have a .json extension")
)

type document struct {
	Contacts   []models.Contact `json:"contacts"`
	Categories []string         `json:"categories"`
}

// Encode writes snap as a single JSON document.
func Encode(w io.Writer, snap models.Snapshot) error {
	doc := document{Contacts: snap.Contacts, Categories: snap.Categories}
	if doc.Contacts == nil {
		doc.Contacts = []models.Contact{}
	}
	if doc.Categories == nil {
		doc.Categories = []string{}
	}
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

// Decode reads a snapshot. Absent keys become empty lists. Contact objects
// are taken as they are; no field checks happen here.
func Decode(r io.Reader) (models.Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to read snapshot: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return models.Snapshot{}, fmt.Errorf("%w: empty document", ErrMalformed)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	snap := models.Snapshot{Contacts: doc.Contacts, Categories: doc.Categories}
	if snap.Contacts == nil {
		snap.Contacts = []models.Contact{}
	}
	if snap.Categories == nil {
		snap.Categories = []string{}
	}
	return snap, nil
}

// ReadFile imports a snapshot from a .json file.
func ReadFile(path string) (models.Snapshot, error) {
	if !strings.EqualFold(filepath.Ext(path), ".json") {
		return models.Snapshot{}, ErrNotJSONFile
	}

	f, err := os.Open(path)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// WriteFile exports snap to path, replacing it atomically.
func WriteFile(path string, snap models.Snapshot) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := Encode(tmp, snap); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// Load reads path, falling back to a fresh snapshot with the given default
// categories when the file does not exist yet.
func Load(path string, defaults []string) (models.Snapshot, error) {
	snap, err := ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return models.Snapshot{
			Contacts:   []models.Contact{},
			Categories: append([]string{}, defaults...),
		}, nil
	}
	return snap, err
}
