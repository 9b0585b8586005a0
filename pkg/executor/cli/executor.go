// Package cli provides the line-oriented front end: a blocking
// read-evaluate loop over the command dispatcher.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/entrhq/rolodex/pkg/commands"
)

const prompt = "Enter a command: "

// Executor runs a turn-by-turn conversation through terminal input/output.
type Executor struct {
	dispatcher *commands.Dispatcher
	reader     *bufio.Reader
	writer     io.Writer
}

// Option is a function that configures an Executor.
type Option func(*Executor)

// WithReader sets a custom input reader (default is os.Stdin).
func WithReader(r io.Reader) Option {
	return func(e *Executor) {
		e.reader = bufio.NewReader(r)
	}
}

// WithWriter sets a custom output writer (default is os.Stdout).
func WithWriter(w io.Writer) Option {
	return func(e *Executor) {
		e.writer = w
	}
}

// NewExecutor creates a REPL executor over the given dispatcher.
func NewExecutor(d *commands.Dispatcher, opts ...Option) *Executor {
	e := &Executor{
		dispatcher: d,
		reader:     bufio.NewReader(os.Stdin),
		writer:     os.Stdout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run starts the loop. It returns when the user exits, input ends, or the
// context is canceled between turns.
func (e *Executor) Run(ctx context.Context) error {
	fmt.Fprintln(e.writer, "Welcome to the assistant bot!")
	fmt.Fprintln(e.writer, "Type 'help' to list commands. Type 'close' or 'exit' to end the session.")
	fmt.Fprintln(e.writer)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprint(e.writer, prompt)
		line, err := e.reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(e.writer)
				return nil
			}
			return fmt.Errorf("cli: read input: %w", err)
		}

		if err := e.dispatcher.Dispatch(line); err != nil {
			if errors.Is(err, commands.ErrQuit) {
				return nil
			}
			return err
		}
	}
}
