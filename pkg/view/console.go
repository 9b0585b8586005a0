package view

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/entrhq/rolodex/pkg/book"
)

var (
	nameStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	dateStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	emptyStyle = lipgloss.NewStyle().Faint(true)
)

// ConsoleView renders to a terminal writer.
type ConsoleView struct {
	writer io.Writer
}

// ConsoleOption is a function that configures a ConsoleView.
type ConsoleOption func(*ConsoleView)

// WithWriter sets a custom output writer (default is os.Stdout).
func WithWriter(w io.Writer) ConsoleOption {
	return func(v *ConsoleView) {
		v.writer = w
	}
}

// NewConsoleView creates a console renderer.
func NewConsoleView(opts ...ConsoleOption) *ConsoleView {
	v := &ConsoleView{writer: os.Stdout}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *ConsoleView) ShowContact(r *book.Record) {
	phones := "No phones"
	if ps := r.Phones(); len(ps) > 0 {
		phones = strings.Join(ps, "; ")
	}
	birthday := "No birthday"
	if bd, ok := r.Birthday(); ok {
		birthday = dateStyle.Render(bd.String())
	}

	fmt.Fprintf(v.writer, "%s %s\n", labelStyle.Render("Contact name:"), nameStyle.Render(r.Name()))
	fmt.Fprintf(v.writer, "%s %s\n", labelStyle.Render("Phones:"), phones)
	fmt.Fprintf(v.writer, "%s %s\n", labelStyle.Render("Birthday:"), birthday)
}

func (v *ConsoleView) ShowMessage(msg string) {
	fmt.Fprintln(v.writer, msg)
}

func (v *ConsoleView) ShowAll(records []*book.Record) {
	if len(records) == 0 {
		fmt.Fprintln(v.writer, emptyStyle.Render("No contacts available."))
		return
	}
	for _, r := range records {
		v.ShowContact(r)
	}
}

func (v *ConsoleView) ShowBirthdays(items []book.UpcomingBirthday) {
	if len(items) == 0 {
		fmt.Fprintln(v.writer, emptyStyle.Render("No upcoming birthdays."))
		return
	}
	for _, item := range items {
		fmt.Fprintf(v.writer, "%s - %s\n", nameStyle.Render(item.Name), dateStyle.Render(item.CongratulationDate))
	}
}
