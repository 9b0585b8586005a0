package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/rolodex/pkg/book"
	"github.com/entrhq/rolodex/pkg/commands"
	"github.com/entrhq/rolodex/pkg/view"
)

func runSession(t *testing.T, b *book.AddressBook, input string) string {
	t.Helper()

	var out bytes.Buffer
	d := commands.NewDispatcher(b, view.NewConsoleView(view.WithWriter(&out)))
	e := NewExecutor(d, WithReader(strings.NewReader(input)), WithWriter(&out))

	require.NoError(t, e.Run(context.Background()))
	return out.String()
}

func TestRunQuitsOnExit(t *testing.T) {
	out := runSession(t, book.NewAddressBook(), "hello\nexit\n")

	assert.Contains(t, out, "Welcome to the assistant bot!")
	assert.Contains(t, out, "How can I help you?")
	assert.Contains(t, out, "Good bye!")
}

func TestRunQuitsOnEOF(t *testing.T) {
	out := runSession(t, book.NewAddressBook(), "hello\n")
	assert.Contains(t, out, "How can I help you?")
}

func TestRunMutatesBook(t *testing.T) {
	b := book.NewAddressBook()
	out := runSession(t, b, "add John 1234567890\nadd-birthday John 12.06.1990\nclose\n")

	assert.Contains(t, out, "Contact added.")
	assert.Contains(t, out, "Birthday added.")

	r, ok := b.Find("John")
	require.True(t, ok)
	assert.Equal(t, []string{"1234567890"}, r.Phones())
}

func TestRunSurvivesBadInput(t *testing.T) {
	out := runSession(t, book.NewAddressBook(), "bogus\nadd onlyname\nexit\n")

	assert.Contains(t, out, "Invalid command.")
	assert.Contains(t, out, "Invalid input. Usage: add <name> <phone>")
	assert.Contains(t, out, "Good bye!")
}

func TestRunStopsWhenContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	d := commands.NewDispatcher(book.NewAddressBook(), view.NewConsoleView(view.WithWriter(&out)))
	e := NewExecutor(d, WithReader(strings.NewReader("hello\n")), WithWriter(&out))

	assert.ErrorIs(t, e.Run(ctx), context.Canceled)
}
