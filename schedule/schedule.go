package schedule

import (
	"strings"
	"time"
)

// Cell values the sheet uses for a free/taken slot. Anything else in a cell
// (an occupant's name, a note) is carried verbatim and treated as not free
// but not formally booked either.
const (
	StatusBooked    = "BOOKED"
	StatusNotBooked = "NOT BOOKED"
)

// SlotLength is the width of a single bookable window.
const SlotLength = 30 * time.Minute

const (
	timeLayout = "3:04 pm"
	dateLayout = "1/2/2006"
)

// Schedule maps a time label ("8:30 am") to a map of date labels
// ("9/18/2025") to the raw status cell for that slot.
type Schedule map[string]map[string]string

// TimeLabel formats t the way the sheet labels its time rows.
func TimeLabel(t time.Time) string {
	return t.Format(timeLayout)
}

// DateLabel formats t the way the sheet labels its date columns.
func DateLabel(t time.Time) string {
	return t.Format(dateLayout)
}

// StatusAt returns the status cell for the slot containing t. A missing time
// row, missing date column or empty cell all read as NOT BOOKED; the sheet
// only records the slots somebody has touched.
func (s Schedule) StatusAt(t time.Time) string {
	days, ok := s[TimeLabel(t)]
	if !ok {
		return StatusNotBooked
	}
	status, ok := days[DateLabel(t)]
	if !ok || status == "" {
		return StatusNotBooked
	}
	return status
}

// BookedCount tallies the day's occupancy: how many of the schedule's time
// rows read BOOKED under dateLabel, out of the total number of rows.
func (s Schedule) BookedCount(dateLabel string) (booked, total int) {
	for _, days := range s {
		total++
		if days[dateLabel] == StatusBooked {
			booked++
		}
	}
	return booked, total
}

// Booker is one row of the booking roster: who is responsible for booking
// the room for a given time.
type Booker struct {
	Time string
	Name string
}

// Assigned reports whether the roster row actually names somebody.
func (b Booker) Assigned() bool {
	return strings.TrimSpace(b.Name) != ""
}

// Bookers is the fixed-size roster in sheet order.
type Bookers []Booker

// AssignedCount returns how many roster rows name a booker.
func (bs Bookers) AssignedCount() int {
	n := 0
	for _, b := range bs {
		if b.Assigned() {
			n++
		}
	}
	return n
}
