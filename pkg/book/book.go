// Package book implements the contact data model: validated name, phone and
// birthday fields, individual contact records, and the address book that
// owns them.
package book

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gobwas/glob"
)

// AddressBook maps contact names to records. Iteration follows insertion
// order. Every map key equals its record's name.
//
// Command handlers run on a single loop, but the book is still guarded by a
// read-write mutex because signal-triggered snapshot saves run on their own
// goroutine.
type AddressBook struct {
	mu      sync.RWMutex
	records map[string]*Record
	order   []string
}

// NewAddressBook creates an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{
		records: make(map[string]*Record),
	}
}

// Add inserts the record under its name, overwriting any existing entry.
// An overwrite keeps the original position in iteration order.
func (b *AddressBook) Add(r *Record) {
	b.mu.Lock()
	defer b.mu.Unlock()

	name := r.Name()
	if _, exists := b.records[name]; !exists {
		b.order = append(b.order, name)
	}
	b.records[name] = r
}

// Find returns the record for the given name, if present.
func (b *AddressBook) Find(name string) (*Record, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	r, ok := b.records[name]
	return r, ok
}

// Delete removes the entry for name. Deleting an absent name is a no-op.
func (b *AddressBook) Delete(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Records returns all records in insertion order.
func (b *AddressBook) Records() []*Record {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

// Len returns the number of contacts.
func (b *AddressBook) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.records)
}

// Search returns the records whose names match the glob pattern,
// case-insensitively, in insertion order.
func (b *AddressBook) Search(pattern string) ([]*Record, error) {
	g, err := glob.Compile(strings.ToLower(pattern))
	if err != nil {
		return nil, fmt.Errorf("book: invalid pattern %q: %w", pattern, err)
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	var out []*Record
	for _, name := range b.order {
		if g.Match(strings.ToLower(name)) {
			out = append(out, b.records[name])
		}
	}
	return out, nil
}
