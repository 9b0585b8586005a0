// Package store persists the address book to a single snapshot file between
// runs. The snapshot format is private to rolodex and not intended as an
// interchange format.
package store

import (
	"github.com/entrhq/rolodex/pkg/book"
)

// Store provides persistence for the address book.
type Store interface {
	// Load reads the snapshot from disk. A missing snapshot yields an
	// empty address book, not an error.
	Load() (*book.AddressBook, error)

	// Save writes the full address book to disk.
	Save(b *book.AddressBook) error
}
