package book

import (
	"fmt"
	"strings"
)

// Record holds one contact: a fixed name, its phone numbers in insertion
// order, and an optional birthday. Duplicate phone numbers are allowed;
// lookups and removals match the first exact occurrence.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a record for the given contact name.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the contact's name.
func (r *Record) Name() string {
	return r.name.String()
}

// AddPhone validates and appends a phone number. No uniqueness check.
func (r *Record) AddPhone(value string) error {
	p, err := NewPhone(value)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// EditPhone replaces the first phone equal to oldValue with newValue.
// The phone list is left unchanged when the old number is absent or the
// new number fails validation.
func (r *Record) EditPhone(oldValue, newValue string) error {
	idx := r.indexOf(oldValue)
	if idx < 0 {
		return fmt.Errorf("phone number %q: %w", oldValue, ErrNotFound)
	}
	p, err := NewPhone(newValue)
	if err != nil {
		return err
	}
	r.phones[idx] = p
	return nil
}

// FindPhone reports whether the record holds the given phone number.
func (r *Record) FindPhone(value string) (string, bool) {
	if idx := r.indexOf(value); idx >= 0 {
		return r.phones[idx].String(), true
	}
	return "", false
}

// RemovePhone removes the first phone equal to value.
func (r *Record) RemovePhone(value string) error {
	idx := r.indexOf(value)
	if idx < 0 {
		return fmt.Errorf("phone number %q: %w", value, ErrNotFound)
	}
	r.phones = append(r.phones[:idx], r.phones[idx+1:]...)
	return nil
}

func (r *Record) indexOf(value string) int {
	for i, p := range r.phones {
		if p.String() == value {
			return i
		}
	}
	return -1
}

// Phones returns the phone numbers in insertion order.
func (r *Record) Phones() []string {
	out := make([]string, len(r.phones))
	for i, p := range r.phones {
		out[i] = p.String()
	}
	return out
}

// SetBirthday validates and stores the birthday, replacing any existing one.
func (r *Record) SetBirthday(value string) error {
	b, err := NewBirthday(value)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// Birthday returns the stored birthday, if any.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

func (r *Record) String() string {
	phones := "No phones"
	if len(r.phones) > 0 {
		phones = strings.Join(r.Phones(), "; ")
	}
	birthday := "No birthday"
	if r.birthday != nil {
		birthday = r.birthday.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s", r.Name(), phones, birthday)
}
