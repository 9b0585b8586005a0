// Package view abstracts how contacts and messages are presented, so front
// ends can swap renderers without touching command logic.
package view

import (
	"github.com/entrhq/rolodex/pkg/book"
)

// View renders command results for the user.
type View interface {
	// ShowContact displays a single contact.
	ShowContact(r *book.Record)

	// ShowMessage displays a plain message.
	ShowMessage(msg string)

	// ShowAll displays every contact, or an empty-state message.
	ShowAll(records []*book.Record)

	// ShowBirthdays displays the upcoming birthdays report, or an
	// empty-state message.
	ShowBirthdays(items []book.UpcomingBirthday)
}
