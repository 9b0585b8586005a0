// Package commands parses user input lines and routes them to handlers
// operating on the address book. Validation and lookup failures become
// user-facing messages at this boundary; the loop never dies on bad input.
package commands

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/atotto/clipboard"

	"github.com/entrhq/rolodex/pkg/book"
	"github.com/entrhq/rolodex/pkg/logging"
	"github.com/entrhq/rolodex/pkg/view"
)

// ErrQuit is returned by Dispatch when the user asks to end the session.
var ErrQuit = errors.New("commands: quit")

// Handler processes one command against the dispatcher's address book.
type Handler func(d *Dispatcher, args []string) error

// Command is a registered command.
type Command struct {
	Name        string  // Command verb
	Description string  // Short description for help
	Usage       string  // Usage line shown on argument errors
	MinArgs     int     // Minimum number of arguments
	MaxArgs     int     // Maximum number of arguments (-1 for unlimited)
	Handler     Handler // Handler function
}

// commandRegistry holds all registered commands
var commandRegistry = make(map[string]*Command)

func register(cmd *Command) {
	commandRegistry[cmd.Name] = cmd
}

// Dispatcher routes parsed input lines to command handlers.
type Dispatcher struct {
	book        *book.AddressBook
	view        view.View
	log         *logging.Logger
	defaultDays int

	// Injection points for tests.
	now            func() time.Time
	writeClipboard func(string) error
}

// Option is a function that configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the session logger for dispatched commands.
func WithLogger(l *logging.Logger) Option {
	return func(d *Dispatcher) {
		d.log = l
	}
}

// WithDefaultDays sets the birthday lookahead used when the birthdays
// command is given no argument.
func WithDefaultDays(days int) Option {
	return func(d *Dispatcher) {
		d.defaultDays = days
	}
}

// NewDispatcher creates a dispatcher over the given address book, rendering
// results through v.
func NewDispatcher(b *book.AddressBook, v view.View, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		book:           b,
		view:           v,
		defaultDays:    book.DefaultWindowDays,
		now:            time.Now,
		writeClipboard: clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Parse splits an input line into a lowercased command verb and its
// positional arguments.
func Parse(line string) (string, []string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil
	}
	return strings.ToLower(parts[0]), parts[1:]
}

// Commands returns all registered commands sorted by name.
func Commands() []*Command {
	out := make([]*Command, 0, len(commandRegistry))
	for _, cmd := range commandRegistry {
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Dispatch executes one input line. Errors from handlers are converted to
// messages; the only error Dispatch itself returns is ErrQuit.
func (d *Dispatcher) Dispatch(line string) error {
	name, args := Parse(line)
	if name == "" {
		return nil
	}

	if d.log != nil {
		d.log.Debugf("dispatch %q with %d args", name, len(args))
	}

	cmd, ok := commandRegistry[name]
	if !ok {
		d.view.ShowMessage("Invalid command. Type 'help' to list commands.")
		return nil
	}

	if len(args) < cmd.MinArgs || (cmd.MaxArgs != -1 && len(args) > cmd.MaxArgs) {
		d.view.ShowMessage(fmt.Sprintf("Invalid input. Usage: %s", cmd.Usage))
		return nil
	}

	if err := cmd.Handler(d, args); err != nil {
		if errors.Is(err, ErrQuit) {
			return ErrQuit
		}
		if d.log != nil {
			d.log.Warnf("command %q failed: %v", name, err)
		}
		d.view.ShowMessage(userMessage(err))
	}
	return nil
}

// userMessage converts a handler error into the text shown to the user.
func userMessage(err error) string {
	var verr *book.ValidationError
	if errors.As(err, &verr) {
		return capitalize(verr.Reason) + "."
	}
	if errors.Is(err, book.ErrNotFound) {
		return "Not found."
	}
	return capitalize(err.Error()) + "."
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
