package domain

import (
	"context"
	"time"
)

// Category classifies an appointment. The set is closed; RuleFor switches
// exhaustively over it, so adding a category is a compile-checked update.
type Category string

const (
	CategoryConsultation       Category = "consultation"
	CategorySurvey             Category = "survey"
	CategoryDesignMeeting      Category = "design_meeting"
	CategoryDesignPresentation Category = "design_presentation"
	CategoryFollowUp           Category = "follow_up"
	CategoryInternalMeeting    Category = "internal_meeting"
	CategoryOther              Category = "other"
)

// ParseCategory returns the Category for the given string, or false if unknown.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryConsultation, CategorySurvey, CategoryDesignMeeting,
		CategoryDesignPresentation, CategoryFollowUp, CategoryInternalMeeting,
		CategoryOther:
		return Category(s), true
	}
	return "", false
}

// Status is the lifecycle state of an appointment. Scheduling logic only
// distinguishes active (anything but cancelled) from cancelled.
type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// ParseStatus returns the Status for the given string, or false if unknown.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusScheduled, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return Status(s), true
	}
	return "", false
}

// CategoryRule holds the per-category scheduling defaults and requirements.
// It is the single source of truth for both default-value generation and
// validation.
type CategoryRule struct {
	DurationMinutes    int
	DefaultTitle       string // empty for CategoryOther: user must supply
	DefaultDescription string
	DefaultLocation    string
	LocationRequired   bool
	CustomerRequired   bool
}

// RuleFor returns the scheduling rule for the given category. Unknown
// categories fall back to the CategoryOther rule.
func RuleFor(c Category) CategoryRule {
	switch c {
	case CategoryConsultation:
		return CategoryRule{
			DurationMinutes:    60,
			DefaultTitle:       "Consultation",
			DefaultDescription: "Initial consultation with the customer",
			DefaultLocation:    "Showroom",
			CustomerRequired:   true,
		}
	case CategorySurvey:
		return CategoryRule{
			DurationMinutes:    60,
			DefaultTitle:       "Site survey",
			DefaultDescription: "Measure and photograph the site",
			LocationRequired:   true,
			CustomerRequired:   true,
		}
	case CategoryDesignMeeting:
		return CategoryRule{
			DurationMinutes:    90,
			DefaultTitle:       "Design meeting",
			DefaultDescription: "Review design options with the customer",
			DefaultLocation:    "Showroom",
			CustomerRequired:   true,
		}
	case CategoryDesignPresentation:
		return CategoryRule{
			DurationMinutes:    120,
			DefaultTitle:       "Design presentation",
			DefaultDescription: "Present the final design and quote",
			DefaultLocation:    "Showroom",
			CustomerRequired:   true,
		}
	case CategoryFollowUp:
		return CategoryRule{
			DurationMinutes:    5,
			DefaultTitle:       "Follow-up call",
			DefaultDescription: "Follow up on the previous appointment",
			CustomerRequired:   true,
		}
	case CategoryInternalMeeting:
		return CategoryRule{
			DurationMinutes:    60,
			DefaultTitle:       "Internal meeting",
			DefaultDescription: "Internal team meeting",
			DefaultLocation:    "Office",
		}
	case CategoryOther:
		return CategoryRule{DurationMinutes: 60}
	}
	return CategoryRule{DurationMinutes: 60}
}

// Appointment represents a scheduled appointment on a staff member's calendar.
// Start/End are half-open: [Start, End). Two active appointments for the same
// staff member may touch at a boundary but never overlap.
type Appointment struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Category         Category  `json:"category"`
	Start            time.Time `json:"start"`
	End              time.Time `json:"end"`
	Location         string    `json:"location"`
	CustomerID       string    `json:"customer_id"`
	AssignedStaffID  string    `json:"assigned_staff_id"`
	CreatedByStaffID string    `json:"created_by_staff_id"`
	Status           Status    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Active reports whether the appointment blocks its staff member's calendar.
func (a *Appointment) Active() bool {
	return a.Status != StatusCancelled
}

// NewAppointment returns a new Appointment in StatusScheduled. ID is typically
// set by the repository on create.
func NewAppointment(category Category, title, description, location, customerID, assignedStaffID, createdByStaffID string, start, end, createdAt, updatedAt time.Time) *Appointment {
	return &Appointment{
		Title:            title,
		Description:      description,
		Category:         category,
		Start:            start,
		End:              end,
		Location:         location,
		CustomerID:       customerID,
		AssignedStaffID:  assignedStaffID,
		CreatedByStaffID: createdByStaffID,
		Status:           StatusScheduled,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}

// BusinessHours is the daily local-time window in which appointments may be
// scheduled, applied uniformly every non-Sunday day. Sunday is fully
// unavailable regardless of these values.
type BusinessHours struct {
	StartHour int `json:"start_hour"`
	EndHour   int `json:"end_hour"`
}

// DefaultBusinessHours is the studio's standard 09:00-17:00 window.
var DefaultBusinessHours = BusinessHours{StartHour: 9, EndHour: 17}

// SlotProposal is the pre-filled parameter set for a new appointment of a
// given category, produced by the scheduling facade.
type SlotProposal struct {
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
}

// AppointmentRepository defines the interface for appointment storage.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *Appointment) error
	GetByID(ctx context.Context, id string) (*Appointment, error)
	Update(ctx context.Context, appt *Appointment) error
	SetStatus(ctx context.Context, id string, status Status) error
	// ListActiveByStaff returns non-cancelled appointments assigned to the
	// staff member whose interval intersects [from, to).
	ListActiveByStaff(ctx context.Context, staffID string, from, to time.Time) ([]*Appointment, error)
	// ListInRange returns all appointments (any staff, any status) whose
	// interval intersects [from, to).
	ListInRange(ctx context.Context, from, to time.Time) ([]*Appointment, error)
	// ListActiveEndedBefore returns IDs of active appointments whose end time
	// is before the cutoff. Used by the completion sweep.
	ListActiveEndedBefore(ctx context.Context, cutoff time.Time) ([]string, error)
	SetStatuses(ctx context.Context, ids []string, status Status) error
}

// ScheduleService defines the business logic for appointment scheduling.
type ScheduleService interface {
	// ProposeDefaults resolves an anchor time, fills category defaults, and
	// substitutes the next free slot when the anchored interval is not
	// schedulable. Returns ErrNoSlotAvailable when the search horizon is
	// exhausted.
	ProposeDefaults(ctx context.Context, category Category, anchor time.Time, quickAdd bool, staffID string) (*SlotProposal, error)
	// Validate checks the appointment against the category rules, interval
	// sanity, and the assigned staff member's calendar. All violations are
	// collected; a nil error means the appointment is schedulable.
	Validate(ctx context.Context, appt *Appointment) error
	CreateAppointment(ctx context.Context, appt *Appointment) error
	UpdateAppointment(ctx context.Context, appt *Appointment) error
	CancelAppointment(ctx context.Context, id, staffID string) error
	GetAppointment(ctx context.Context, id string) (*Appointment, error)
	// ListCalendar returns the appointments in [from, to) visible to the
	// viewer, applying role-based visibility before anything else uses them.
	ListCalendar(ctx context.Context, viewer *Staff, filterStaffID string, from, to time.Time) ([]*Appointment, error)
}
