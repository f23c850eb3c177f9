package scheduling

import (
	"designdesk/internal/domain"
)

// Visible applies role-based visibility to the appointment set. It must run
// before any availability computation scoped to "the calendar the viewer is
// looking at", so a manager acting as themselves is not polluted by staff
// they are merely viewing.
//
// Policy, in order: a viewer whose role has VisibilityAll and an explicit
// staff filter sees only that staff member's appointments; a viewer with
// VisibilitySelf sees only their own regardless of any filter argument; a
// viewer with VisibilityAll and no filter sees everything.
func Visible(appointments []*domain.Appointment, viewer *domain.Staff, filterStaffID string) []*domain.Appointment {
	scope := viewer.Role.Scope()

	var keepStaffID string
	switch {
	case scope == domain.VisibilityAll && filterStaffID != "":
		keepStaffID = filterStaffID
	case scope == domain.VisibilitySelf:
		keepStaffID = viewer.ID
	default:
		return appointments
	}

	out := make([]*domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.AssignedStaffID == keepStaffID {
			out = append(out, a)
		}
	}
	return out
}
