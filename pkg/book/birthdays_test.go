package book

import (
	"testing"
	"time"
)

// monday2024 is a fixed reference date: Monday, 10 June 2024.
var monday2024 = time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

func withBirthday(t *testing.T, b *AddressBook, name, birthday string) {
	t.Helper()
	r := addContact(t, b, name)
	if err := r.SetBirthday(birthday); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpcomingWeekday(t *testing.T) {
	b := NewAddressBook()
	withBirthday(t, b, "John", "12.06.1990") // Wednesday this year

	got := b.Upcoming(monday2024, 7)
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	if got[0].Name != "John" || got[0].CongratulationDate != "2024.06.12" {
		t.Errorf("unexpected result: %+v", got[0])
	}
}

func TestUpcomingWeekendShift(t *testing.T) {
	tests := []struct {
		name     string
		birthday string
		want     string
	}{
		{name: "saturday shifts to monday", birthday: "15.06.1991", want: "2024.06.17"},
		{name: "sunday shifts to monday", birthday: "16.06.1991", want: "2024.06.17"},
		{name: "friday stays", birthday: "14.06.1991", want: "2024.06.14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewAddressBook()
			withBirthday(t, b, "Jane", tt.birthday)

			got := b.Upcoming(monday2024, 7)
			if len(got) != 1 {
				t.Fatalf("expected 1 result, got %d", len(got))
			}
			if got[0].CongratulationDate != tt.want {
				t.Errorf("congratulation date: got %q, want %q", got[0].CongratulationDate, tt.want)
			}
		})
	}
}

func TestUpcomingExclusions(t *testing.T) {
	b := NewAddressBook()
	withBirthday(t, b, "TooFar", "25.06.1980")      // 15 days out
	withBirthday(t, b, "AlreadyPassed", "01.06.1990") // rolls to next year
	addContact(t, b, "NoBirthday", "1234567890")

	if got := b.Upcoming(monday2024, 7); len(got) != 0 {
		t.Errorf("expected no results, got %+v", got)
	}
}

func TestUpcomingBirthdayToday(t *testing.T) {
	b := NewAddressBook()
	withBirthday(t, b, "John", "10.06.1980")

	got := b.Upcoming(monday2024, 0)
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	if got[0].CongratulationDate != "2024.06.10" {
		t.Errorf("unexpected date: %q", got[0].CongratulationDate)
	}
}

func TestUpcomingLeapDayNormalizes(t *testing.T) {
	// 29.02 projected into a non-leap year normalizes to March 1. In 2025
	// that is a Saturday, so the congratulation shifts to Monday March 3.
	today := time.Date(2025, time.February, 24, 0, 0, 0, 0, time.UTC)

	b := NewAddressBook()
	withBirthday(t, b, "Leap", "29.02.2000")

	got := b.Upcoming(today, 7)
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	if got[0].CongratulationDate != "2025.03.03" {
		t.Errorf("unexpected date: %q", got[0].CongratulationDate)
	}
}

func TestUpcomingKeepsInsertionOrder(t *testing.T) {
	b := NewAddressBook()
	withBirthday(t, b, "Zed", "14.06.1970") // later date, added first
	withBirthday(t, b, "Amy", "11.06.1985")

	got := b.Upcoming(monday2024, 7)
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].Name != "Zed" || got[1].Name != "Amy" {
		t.Errorf("results not in insertion order: %+v", got)
	}
}
