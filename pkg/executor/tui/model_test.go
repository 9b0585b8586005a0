package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/rolodex/pkg/book"
)

func newTestModel(t *testing.T) *model {
	t.Helper()
	m := newModel(NewExecutor(book.NewAddressBook(), WithSnapshotPath("/tmp/addressbook.json")))
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func submit(t *testing.T, m *model, line string) tea.Cmd {
	t.Helper()
	m.input.SetValue(line)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func TestTranscriptShowsResults(t *testing.T) {
	tr := &transcript{}

	tr.ShowMessage("hello")
	tr.ShowAll(nil)
	tr.ShowBirthdays([]book.UpcomingBirthday{{Name: "John", CongratulationDate: "2024.06.12"}})

	out := tr.String()
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "No contacts available.")
	assert.Contains(t, out, "2024.06.12")
}

func TestModelDispatchesSubmittedLine(t *testing.T) {
	m := newTestModel(t)

	cmd := submit(t, m, "add John 1234567890")
	assert.Nil(t, cmd)

	out := m.transcript.String()
	assert.Contains(t, out, "> add John 1234567890")
	assert.Contains(t, out, "Contact added.")

	r, ok := m.book.Find("John")
	require.True(t, ok)
	assert.Equal(t, []string{"1234567890"}, r.Phones())

	assert.Empty(t, m.input.Value(), "input resets after submit")
}

func TestModelIgnoresBlankLines(t *testing.T) {
	m := newTestModel(t)
	before := len(m.transcript.lines)

	submit(t, m, "   ")
	assert.Len(t, m.transcript.lines, before)
}

func TestModelQuitsOnExitCommand(t *testing.T) {
	m := newTestModel(t)

	cmd := submit(t, m, "exit")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Contains(t, m.transcript.String(), "Good bye!")
}

func TestModelViewContainsChrome(t *testing.T) {
	m := newTestModel(t)

	out := m.View()
	assert.True(t, strings.Contains(out, "rolodex"))
	assert.Contains(t, out, "/tmp/addressbook.json")
}
