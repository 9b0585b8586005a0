package book

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewName(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		expectError bool
	}{
		{name: "valid name", value: "John"},
		{name: "empty name", value: "", expectError: true},
		{name: "single character", value: "J"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := NewName(tt.value)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Errorf("expected ValidationError, got %T", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n.String() != tt.value {
				t.Errorf("name mismatch: got %q, want %q", n.String(), tt.value)
			}
		})
	}
}

func TestNewPhone(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		expectError bool
	}{
		{name: "valid phone", value: "1234567890"},
		{name: "all zeros", value: "0000000000"},
		{name: "too short", value: "123456789", expectError: true},
		{name: "too long", value: "12345678901", expectError: true},
		{name: "empty", value: "", expectError: true},
		{name: "contains letter", value: "12345abcde", expectError: true},
		{name: "contains dash", value: "123-456-78", expectError: true},
		{name: "contains space", value: "123 456 78", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPhone(tt.value)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if !strings.Contains(err.Error(), "10 digits") {
					t.Errorf("unexpected error text: %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.String() != tt.value {
				t.Errorf("phone did not round-trip: got %q, want %q", p.String(), tt.value)
			}
		})
	}
}

func TestNewBirthday(t *testing.T) {
	now := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		value       string
		expectError bool
		errorMsg    string
	}{
		{name: "valid date", value: "12.06.1990"},
		{name: "today", value: "10.06.2024"},
		{name: "leap day", value: "29.02.2000"},
		{name: "future date", value: "11.06.2024", expectError: true, errorMsg: "future"},
		{name: "future year", value: "01.01.2100", expectError: true, errorMsg: "future"},
		{name: "wrong separator", value: "12/06/1990", expectError: true, errorMsg: "DD.MM.YYYY"},
		{name: "missing zero padding", value: "1.6.1990", expectError: true, errorMsg: "DD.MM.YYYY"},
		{name: "day out of range", value: "31.02.1990", expectError: true, errorMsg: "DD.MM.YYYY"},
		{name: "leap day in non-leap year", value: "29.02.1999", expectError: true, errorMsg: "DD.MM.YYYY"},
		{name: "not a date", value: "birthday", expectError: true, errorMsg: "DD.MM.YYYY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := newBirthdayAt(tt.value, now)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errorMsg, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if b.String() != tt.value {
				t.Errorf("birthday mismatch: got %q, want %q", b.String(), tt.value)
			}
			if b.Date().Format(BirthdayLayout) != tt.value {
				t.Errorf("Date did not re-parse to the stored value: got %v", b.Date())
			}
		})
	}
}
