package book

import (
	"time"
)

// DefaultWindowDays is the birthday lookahead used when none is given.
const DefaultWindowDays = 7

// CongratulationLayout is the textual format for congratulation dates.
const CongratulationLayout = "2006.01.02"

// UpcomingBirthday is one row of the birthdays report: who to congratulate
// and on which (weekend-adjusted) date.
type UpcomingBirthday struct {
	Name               string
	CongratulationDate string
}

// Upcoming returns the contacts whose birthdays fall within [today,
// today+days]. Each birthday is projected into the current year (or the next
// one if it already passed) and shifted to the following Monday when it
// lands on a weekend. Results keep address book iteration order and are not
// sorted by date.
//
// A Feb 29 birthday projected into a non-leap year normalizes to March 1.
func (b *AddressBook) Upcoming(today time.Time, days int) []UpcomingBirthday {
	today = midnight(today)
	end := today.AddDate(0, 0, days)

	var out []UpcomingBirthday
	for _, r := range b.Records() {
		bd, ok := r.Birthday()
		if !ok {
			continue
		}

		d := bd.Date()
		next := time.Date(today.Year(), d.Month(), d.Day(), 0, 0, 0, 0, today.Location())
		if next.Before(today) {
			next = time.Date(today.Year()+1, d.Month(), d.Day(), 0, 0, 0, 0, today.Location())
		}
		next = adjustForWeekend(next)

		if !next.Before(today) && !next.After(end) {
			out = append(out, UpcomingBirthday{
				Name:               r.Name(),
				CongratulationDate: next.Format(CongratulationLayout),
			})
		}
	}
	return out
}

// adjustForWeekend moves Saturday and Sunday dates to the next Monday.
func adjustForWeekend(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	}
	return d
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
