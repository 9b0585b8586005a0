// Package tui provides the full-screen terminal front end. It routes input
// lines through the same command dispatcher as the plain loop, rendering
// results into a scrolling transcript.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/entrhq/rolodex/pkg/book"
	"github.com/entrhq/rolodex/pkg/logging"
)

// Executor runs the Bubble Tea program over an address book.
type Executor struct {
	book         *book.AddressBook
	snapshotPath string
	days         int
	log          *logging.Logger
}

// Option is a function that configures an Executor.
type Option func(*Executor)

// WithSnapshotPath sets the snapshot path shown in the status bar.
func WithSnapshotPath(path string) Option {
	return func(e *Executor) {
		e.snapshotPath = path
	}
}

// WithDefaultDays sets the default birthday lookahead.
func WithDefaultDays(days int) Option {
	return func(e *Executor) {
		e.days = days
	}
}

// WithLogger sets the session logger.
func WithLogger(l *logging.Logger) Option {
	return func(e *Executor) {
		e.log = l
	}
}

// NewExecutor creates a full-screen executor for the given address book.
func NewExecutor(b *book.AddressBook, opts ...Option) *Executor {
	e := &Executor{
		book: b,
		days: book.DefaultWindowDays,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run starts the program and blocks until the user quits or the context is
// canceled.
func (e *Executor) Run(ctx context.Context) error {
	p := tea.NewProgram(newModel(e), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
