package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/entrhq/rolodex/pkg/book"
)

const snapshotVersion = "1.0"

// snapshotContact is one contact entry in the snapshot file.
type snapshotContact struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones,omitempty"`
	Birthday string   `json:"birthday,omitempty"`
}

// snapshot is the top-level structure of the snapshot file. Contacts are
// stored in address book iteration order so a load reproduces it.
type snapshot struct {
	Version  string            `json:"version"`
	Contacts []snapshotContact `json:"contacts"`
}

// FileStore implements Store using a JSON snapshot file.
type FileStore struct {
	path string
}

// NewFileStore creates a file-based snapshot store.
// If path is empty, defaults to ~/.rolodex/addressbook.json
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("store: get user home directory: %w", err)
		}
		path = filepath.Join(homeDir, ".rolodex", "addressbook.json")
	}
	return &FileStore{path: path}, nil
}

// Path returns the snapshot file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the snapshot. A missing file yields an empty address book; a
// corrupt or invalid file is an error so a later save cannot silently
// replace data the user still has on disk.
func (s *FileStore) Load() (*book.AddressBook, error) {
	b := book.NewAddressBook()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return b, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: read snapshot %s: %w", s.path, err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("store: decode snapshot %s: %w", s.path, err)
	}

	for _, c := range snap.Contacts {
		r, err := book.NewRecord(c.Name)
		if err != nil {
			return nil, fmt.Errorf("store: snapshot contact %q: %w", c.Name, err)
		}
		for _, p := range c.Phones {
			if err := r.AddPhone(p); err != nil {
				return nil, fmt.Errorf("store: snapshot contact %q: %w", c.Name, err)
			}
		}
		if c.Birthday != "" {
			if err := r.SetBirthday(c.Birthday); err != nil {
				return nil, fmt.Errorf("store: snapshot contact %q: %w", c.Name, err)
			}
		}
		b.Add(r)
	}

	return b, nil
}

// Save writes the address book atomically via a temporary file.
func (s *FileStore) Save(b *book.AddressBook) error {
	records := b.Records()
	snap := snapshot{
		Version:  snapshotVersion,
		Contacts: make([]snapshotContact, 0, len(records)),
	}
	for _, r := range records {
		c := snapshotContact{
			Name:   r.Name(),
			Phones: r.Phones(),
		}
		if bd, ok := r.Birthday(); ok {
			c.Birthday = bd.String()
		}
		snap.Contacts = append(snap.Contacts, c)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("store: create snapshot directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("store: write temp snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("store: atomic rename %s: %w", s.path, err)
	}
	return nil
}
