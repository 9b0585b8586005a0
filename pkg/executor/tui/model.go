package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/entrhq/rolodex/pkg/book"
	"github.com/entrhq/rolodex/pkg/commands"
)

// model is the Bubble Tea state for the full-screen front end: a viewport
// holding the session transcript above a single-line command input.
type model struct {
	dispatcher *commands.Dispatcher
	transcript *transcript
	book       *book.AddressBook

	snapshotPath string

	viewport viewport.Model
	input    textinput.Model

	width  int
	height int
	ready  bool
}

func newModel(e *Executor) *model {
	tr := &transcript{}
	tr.append("Welcome to the assistant bot!")
	tr.append(mutedStyle.Render("Type 'help' to list commands. Type 'close' or 'exit' to end the session."))
	tr.append("")

	opts := []commands.Option{commands.WithDefaultDays(e.days)}
	if e.log != nil {
		opts = append(opts, commands.WithLogger(e.log))
	}

	input := textinput.New()
	input.Placeholder = "Enter a command..."
	input.Prompt = "> "
	input.CharLimit = 256
	input.Focus()

	return &model{
		dispatcher:   commands.NewDispatcher(e.book, tr, opts...),
		transcript:   tr,
		book:         e.book,
		snapshotPath: e.snapshotPath,
		input:        input,
	}
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd {
	return textinput.Blink
}
