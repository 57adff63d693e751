package schedule

import "time"

// maxScanSlots caps the booked-until scan at a full day. The scan normally
// ends at the first non-booked cell; the cap keeps a malformed sheet (every
// cell BOOKED forever) from looping unbounded.
const maxScanSlots = 48

// SlotStart rounds now down to the start of its 30-minute slot,
// preserving the location.
func SlotStart(now time.Time) time.Time {
	minute := 0
	if now.Minute() >= 30 {
		minute = 30
	}
	return time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), minute, 0, 0, now.Location())
}

// SlotStatus describes the slot containing a point in time.
type SlotStatus struct {
	// Slot is the start of the 30-minute window.
	Slot time.Time
	// Value is the raw status cell, defaulted to NOT BOOKED on a miss.
	Value string
	// Booked is true only for a literal BOOKED cell.
	Booked bool
	// BookedUntil is the end of the contiguous booked run, i.e. the start
	// of the first non-booked slot after Slot. Zero unless Booked.
	BookedUntil time.Time
}

// ResolveCurrent looks up the slot containing now and, if it is booked,
// walks forward slot by slot to find where the booked run ends. Stepping
// with real time arithmetic means a run crossing midnight picks up the
// next day's date label rather than drifting.
func ResolveCurrent(now time.Time, sched Schedule) SlotStatus {
	slot := SlotStart(now)
	value := sched.StatusAt(slot)
	status := SlotStatus{
		Slot:   slot,
		Value:  value,
		Booked: value == StatusBooked,
	}
	if !status.Booked {
		return status
	}

	next := slot
	for i := 0; i < maxScanSlots; i++ {
		next = next.Add(SlotLength)
		if sched.StatusAt(next) != StatusBooked {
			break
		}
	}
	status.BookedUntil = next
	return status
}
