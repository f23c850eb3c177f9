package scheduling

import (
	"time"

	"designdesk/internal/domain"
)

// IsAvailable reports whether the candidate interval [start, end) is free on
// the given staff member's calendar. Cancelled appointments and appointments
// assigned to other staff never block. excludeID, when non-empty, skips that
// appointment so an edit can be re-validated against everything except its
// own prior occupancy.
//
// Overlap is the standard half-open test: a conflict exists when
// start < other.End && end > other.Start. Intervals that merely touch at a
// boundary are not conflicts, so back-to-back bookings are allowed.
func IsAvailable(start, end time.Time, staffID string, appointments []*domain.Appointment, excludeID string) bool {
	for _, a := range appointments {
		if !a.Active() || a.AssignedStaffID != staffID {
			continue
		}
		if excludeID != "" && a.ID == excludeID {
			continue
		}
		if start.Before(a.End) && end.After(a.Start) {
			return false
		}
	}
	return true
}
