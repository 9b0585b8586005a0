package tui

import (
	"fmt"
	"strings"

	"github.com/entrhq/rolodex/pkg/book"
)

// transcript collects rendered output lines for the viewport. It implements
// view.View, so the command dispatcher writes straight into the session
// transcript.
type transcript struct {
	lines []string
}

func (tr *transcript) append(text string) {
	tr.lines = append(tr.lines, strings.Split(text, "\n")...)
}

func (tr *transcript) String() string {
	return strings.Join(tr.lines, "\n")
}

func (tr *transcript) ShowContact(r *book.Record) {
	phones := "No phones"
	if ps := r.Phones(); len(ps) > 0 {
		phones = strings.Join(ps, "; ")
	}
	birthday := "No birthday"
	if bd, ok := r.Birthday(); ok {
		birthday = dateStyle.Render(bd.String())
	}

	tr.append(fmt.Sprintf("%s | %s | %s", contactNameStyle.Render(r.Name()), phones, birthday))
}

func (tr *transcript) ShowMessage(msg string) {
	tr.append(msg)
}

func (tr *transcript) ShowAll(records []*book.Record) {
	if len(records) == 0 {
		tr.append(mutedStyle.Render("No contacts available."))
		return
	}
	for _, r := range records {
		tr.ShowContact(r)
	}
}

func (tr *transcript) ShowBirthdays(items []book.UpcomingBirthday) {
	if len(items) == 0 {
		tr.append(mutedStyle.Render("No upcoming birthdays."))
		return
	}
	for _, item := range items {
		tr.append(fmt.Sprintf("%s - %s", contactNameStyle.Render(item.Name), dateStyle.Render(item.CongratulationDate)))
	}
}
