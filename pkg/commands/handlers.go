package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/entrhq/rolodex/pkg/book"
)

func init() {
	register(&Command{
		Name:        "hello",
		Description: "Greet the assistant",
		Usage:       "hello",
		MinArgs:     0,
		MaxArgs:     0,
		Handler:     handleHello,
	})

	register(&Command{
		Name:        "add",
		Description: "Add a contact, or another phone to an existing one",
		Usage:       "add <name> <phone>",
		MinArgs:     2,
		MaxArgs:     2,
		Handler:     handleAdd,
	})

	register(&Command{
		Name:        "change",
		Description: "Replace one of a contact's phone numbers",
		Usage:       "change <name> <old_phone> <new_phone>",
		MinArgs:     3,
		MaxArgs:     3,
		Handler:     handleChange,
	})

	register(&Command{
		Name:        "phone",
		Description: "Show a single contact",
		Usage:       "phone <name>",
		MinArgs:     1,
		MaxArgs:     1,
		Handler:     handlePhone,
	})

	register(&Command{
		Name:        "all",
		Description: "Show every contact",
		Usage:       "all",
		MinArgs:     0,
		MaxArgs:     0,
		Handler:     handleAll,
	})

	register(&Command{
		Name:        "add-birthday",
		Description: "Set a contact's birthday (DD.MM.YYYY)",
		Usage:       "add-birthday <name> <DD.MM.YYYY>",
		MinArgs:     2,
		MaxArgs:     2,
		Handler:     handleAddBirthday,
	})

	register(&Command{
		Name:        "show-birthday",
		Description: "Show a contact's birthday",
		Usage:       "show-birthday <name>",
		MinArgs:     1,
		MaxArgs:     1,
		Handler:     handleShowBirthday,
	})

	register(&Command{
		Name:        "birthdays",
		Description: "Show birthdays coming up in the next days",
		Usage:       "birthdays [days]",
		MinArgs:     0,
		MaxArgs:     1,
		Handler:     handleBirthdays,
	})

	register(&Command{
		Name:        "search",
		Description: "Find contacts by name glob pattern",
		Usage:       "search <pattern>",
		MinArgs:     1,
		MaxArgs:     1,
		Handler:     handleSearch,
	})

	register(&Command{
		Name:        "copy",
		Description: "Copy a contact's first phone number to the clipboard",
		Usage:       "copy <name>",
		MinArgs:     1,
		MaxArgs:     1,
		Handler:     handleCopy,
	})

	register(&Command{
		Name:        "remove-phone",
		Description: "Remove one of a contact's phone numbers",
		Usage:       "remove-phone <name> <phone>",
		MinArgs:     2,
		MaxArgs:     2,
		Handler:     handleRemovePhone,
	})

	register(&Command{
		Name:        "delete",
		Description: "Delete a contact",
		Usage:       "delete <name>",
		MinArgs:     1,
		MaxArgs:     1,
		Handler:     handleDelete,
	})

	register(&Command{
		Name:        "help",
		Description: "List available commands",
		Usage:       "help",
		MinArgs:     0,
		MaxArgs:     0,
		Handler:     handleHelp,
	})

	for _, name := range []string{"close", "exit"} {
		register(&Command{
			Name:        name,
			Description: "Save and end the session",
			Usage:       name,
			MinArgs:     0,
			MaxArgs:     0,
			Handler:     handleClose,
		})
	}
}

func handleHello(d *Dispatcher, _ []string) error {
	d.view.ShowMessage("How can I help you?")
	return nil
}

// handleAdd creates the contact on first use and appends a phone on every
// later one. The record is only inserted once the phone validates, so a
// typo cannot leave behind an empty contact.
func handleAdd(d *Dispatcher, args []string) error {
	name, phone := args[0], args[1]

	if r, ok := d.book.Find(name); ok {
		if err := r.AddPhone(phone); err != nil {
			return err
		}
		d.view.ShowMessage("Contact updated.")
		return nil
	}

	r, err := book.NewRecord(name)
	if err != nil {
		return err
	}
	if err := r.AddPhone(phone); err != nil {
		return err
	}
	d.book.Add(r)
	d.view.ShowMessage("Contact added.")
	return nil
}

func handleChange(d *Dispatcher, args []string) error {
	name, oldPhone, newPhone := args[0], args[1], args[2]

	r, ok := d.book.Find(name)
	if !ok {
		d.view.ShowMessage("Contact not found.")
		return nil
	}

	if err := r.EditPhone(oldPhone, newPhone); err != nil {
		if errors.Is(err, book.ErrNotFound) {
			d.view.ShowMessage("Old phone number not found in contact.")
			return nil
		}
		return err
	}

	d.view.ShowMessage("Phone number changed.")
	return nil
}

func handlePhone(d *Dispatcher, args []string) error {
	r, ok := d.book.Find(args[0])
	if !ok {
		d.view.ShowMessage("Contact not found.")
		return nil
	}
	d.view.ShowContact(r)
	return nil
}

func handleAll(d *Dispatcher, _ []string) error {
	d.view.ShowAll(d.book.Records())
	return nil
}

func handleAddBirthday(d *Dispatcher, args []string) error {
	name, birthday := args[0], args[1]

	r, ok := d.book.Find(name)
	if !ok {
		d.view.ShowMessage("Contact not found.")
		return nil
	}
	if err := r.SetBirthday(birthday); err != nil {
		return err
	}
	d.view.ShowMessage("Birthday added.")
	return nil
}

func handleShowBirthday(d *Dispatcher, args []string) error {
	r, ok := d.book.Find(args[0])
	if !ok {
		d.view.ShowMessage("Contact not found.")
		return nil
	}
	bd, ok := r.Birthday()
	if !ok {
		d.view.ShowMessage("No birthday set.")
		return nil
	}
	d.view.ShowMessage(bd.String())
	return nil
}

func handleBirthdays(d *Dispatcher, args []string) error {
	days := d.defaultDays
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			d.view.ShowMessage("Invalid number of days.")
			return nil
		}
		days = n
	}
	d.view.ShowBirthdays(d.book.Upcoming(d.now(), days))
	return nil
}

func handleSearch(d *Dispatcher, args []string) error {
	matches, err := d.book.Search(args[0])
	if err != nil {
		d.view.ShowMessage("Invalid search pattern.")
		return nil
	}
	if len(matches) == 0 {
		d.view.ShowMessage("No contacts match.")
		return nil
	}
	d.view.ShowAll(matches)
	return nil
}

func handleCopy(d *Dispatcher, args []string) error {
	r, ok := d.book.Find(args[0])
	if !ok {
		d.view.ShowMessage("Contact not found.")
		return nil
	}
	phones := r.Phones()
	if len(phones) == 0 {
		d.view.ShowMessage("No phone numbers to copy.")
		return nil
	}
	if err := d.writeClipboard(phones[0]); err != nil {
		d.view.ShowMessage(fmt.Sprintf("Could not copy to clipboard: %v", err))
		return nil
	}
	d.view.ShowMessage(fmt.Sprintf("Copied %s to clipboard.", phones[0]))
	return nil
}

func handleRemovePhone(d *Dispatcher, args []string) error {
	name, phone := args[0], args[1]

	r, ok := d.book.Find(name)
	if !ok {
		d.view.ShowMessage("Contact not found.")
		return nil
	}
	if err := r.RemovePhone(phone); err != nil {
		if errors.Is(err, book.ErrNotFound) {
			d.view.ShowMessage("Phone number not found.")
			return nil
		}
		return err
	}
	d.view.ShowMessage("Phone number removed.")
	return nil
}

func handleDelete(d *Dispatcher, args []string) error {
	d.book.Delete(args[0])
	d.view.ShowMessage("Contact deleted.")
	return nil
}

func handleHelp(d *Dispatcher, _ []string) error {
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, cmd := range Commands() {
		b.WriteString(fmt.Sprintf("  %-45s %s\n", cmd.Usage, cmd.Description))
	}
	d.view.ShowMessage(strings.TrimRight(b.String(), "\n"))
	return nil
}

func handleClose(d *Dispatcher, _ []string) error {
	d.view.ShowMessage("Good bye!")
	return ErrQuit
}
