package book

import (
	"time"
)

const (
	// BirthdayLayout is the textual format for birthdays (DD.MM.YYYY).
	BirthdayLayout = "02.01.2006"

	// PhoneDigits is the exact number of decimal digits in a phone number.
	PhoneDigits = 10
)

// Name is a contact's identity key. It is validated once at construction
// and never changes for the lifetime of its record.
type Name struct {
	value string
}

// NewName creates a validated name. Empty input is rejected.
func NewName(value string) (Name, error) {
	if value == "" {
		return Name{}, &ValidationError{Field: "name", Reason: "name is required"}
	}
	return Name{value: value}, nil
}

func (n Name) String() string {
	return n.value
}

// Phone is a phone number of exactly ten decimal digits. Invalid values are
// rejected at construction, not at use.
type Phone struct {
	value string
}

// NewPhone creates a validated phone number.
func NewPhone(value string) (Phone, error) {
	if err := ValidatePhone(value); err != nil {
		return Phone{}, err
	}
	return Phone{value: value}, nil
}

// ValidatePhone checks that value is exactly ten decimal digits.
func ValidatePhone(value string) error {
	if len(value) != PhoneDigits {
		return &ValidationError{Field: "phone", Reason: "phone number must contain exactly 10 digits"}
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return &ValidationError{Field: "phone", Reason: "phone number must contain exactly 10 digits"}
		}
	}
	return nil
}

func (p Phone) String() string {
	return p.value
}

// Birthday is a calendar date in DD.MM.YYYY form. The canonical formatted
// string is stored rather than a date value, so consumers re-parse via Date.
type Birthday struct {
	value string
}

// NewBirthday parses value as DD.MM.YYYY and rejects dates in the future.
func NewBirthday(value string) (Birthday, error) {
	return newBirthdayAt(value, time.Now())
}

func newBirthdayAt(value string, now time.Time) (Birthday, error) {
	d, err := time.Parse(BirthdayLayout, value)
	if err != nil {
		return Birthday{}, &ValidationError{Field: "birthday", Reason: "invalid date format, use DD.MM.YYYY"}
	}
	if d.After(now) {
		return Birthday{}, &ValidationError{Field: "birthday", Reason: "birthday cannot be in the future"}
	}
	return Birthday{value: d.Format(BirthdayLayout)}, nil
}

func (b Birthday) String() string {
	return b.value
}

// Date re-parses the stored text. The value is canonical so the parse
// cannot fail after construction.
func (b Birthday) Date() time.Time {
	d, _ := time.Parse(BirthdayLayout, b.value)
	return d
}
