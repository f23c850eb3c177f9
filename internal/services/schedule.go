package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"designdesk/internal/domain"
	"designdesk/internal/scheduling"
)

type scheduleService struct {
	apptRepo       domain.AppointmentRepository
	staffRepo      domain.StaffRepository
	hours          domain.BusinessHours
	horizonDays    int
	contextTimeout time.Duration
	now            func() time.Time // injectable for tests
}

// NewScheduleService creates a ScheduleService with the given repositories,
// business hours, and per-call timeout.
func NewScheduleService(apptRepo domain.AppointmentRepository, staffRepo domain.StaffRepository, hours domain.BusinessHours, timeout time.Duration) domain.ScheduleService {
	return &scheduleService{
		apptRepo:       apptRepo,
		staffRepo:      staffRepo,
		hours:          hours,
		horizonDays:    scheduling.DefaultHorizonDays,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

// ProposeDefaults resolves the anchor, fills category defaults, and falls back
// to the slot search when the anchored interval is not schedulable.
//
// Quick add ignores any clicked date and anchors to now. A date-click anchor
// in the past falls forward to the next business day's opening. Both paths
// then share the same slot-finder-driven fallback.
func (s *scheduleService) ProposeDefaults(ctx context.Context, category domain.Category, anchor time.Time, quickAdd bool, staffID string) (*domain.SlotProposal, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if staffID == "" {
		return nil, fmt.Errorf("staff id is required")
	}

	now := s.now()
	var start time.Time
	if quickAdd {
		// Ceiling, not nearest: a quick-add proposal must never start
		// before now.
		start = scheduling.CeilToQuarterHour(now)
	} else {
		if anchor.Before(now) {
			anchor = scheduling.NextBusinessDayStart(now, s.hours)
		}
		start = scheduling.RoundToQuarterHour(anchor)
	}
	end := scheduling.ComputeEnd(start, category)

	from := now
	if start.Before(from) {
		from = start
	}
	to := start.AddDate(0, 0, s.horizonDays+1)
	appointments, err := s.apptRepo.ListActiveByStaff(ctx, staffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	if !scheduling.FitsBusinessDay(start, end, s.hours) || !scheduling.IsAvailable(start, end, staffID, appointments, "") {
		start, end, err = scheduling.SuggestNextSlot(start, category, staffID, appointments, s.hours, s.horizonDays)
		if err != nil {
			// ErrNoSlotAvailable is fatal to the suggestion flow; it must
			// reach the caller undisguised.
			return nil, err
		}
	}

	rule := domain.RuleFor(category)
	return &domain.SlotProposal{
		Start:       start,
		End:         end,
		Title:       rule.DefaultTitle,
		Description: rule.DefaultDescription,
		Location:    rule.DefaultLocation,
	}, nil
}

// Validate checks the appointment and collects every violation instead of
// stopping at the first, so a UI can display them together. Check order:
// title, customer, location, interval, availability. Availability is skipped
// when the interval itself is invalid.
func (s *scheduleService) Validate(ctx context.Context, appt *domain.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	violations := checkRequiredFields(appt)

	if appt.Start.Before(appt.End) {
		appointments, err := s.apptRepo.ListActiveByStaff(ctx, appt.AssignedStaffID, appt.Start, appt.End)
		if err != nil {
			return fmt.Errorf("list appointments: %w", err)
		}
		if !scheduling.IsAvailable(appt.Start, appt.End, appt.AssignedStaffID, appointments, appt.ID) {
			violations = append(violations, domain.Violation{
				Code:    domain.ViolationSchedulingConflict,
				Message: "the time slot conflicts with another appointment for this staff member",
			})
		}
	} else {
		violations = append(violations, domain.Violation{
			Code:    domain.ViolationInvalidInterval,
			Field:   "end",
			Message: "end must be after start",
		})
	}

	if len(violations) > 0 {
		return &domain.ValidationError{Violations: violations}
	}
	return nil
}

func checkRequiredFields(appt *domain.Appointment) []domain.Violation {
	var violations []domain.Violation
	rule := domain.RuleFor(appt.Category)

	if rule.DefaultTitle == "" && strings.TrimSpace(appt.Title) == "" {
		violations = append(violations, domain.Violation{
			Code:    domain.ViolationMissingRequiredField,
			Field:   "title",
			Message: "title is required for this category",
		})
	}
	if rule.CustomerRequired && appt.CustomerID == "" {
		violations = append(violations, domain.Violation{
			Code:    domain.ViolationMissingRequiredField,
			Field:   "customer_id",
			Message: "a customer is required for this category",
		})
	}
	if rule.LocationRequired && strings.TrimSpace(appt.Location) == "" {
		violations = append(violations, domain.Violation{
			Code:    domain.ViolationMissingRequiredField,
			Field:   "location",
			Message: "a location is required for this category",
		})
	}
	return violations
}

func (s *scheduleService) CreateAppointment(ctx context.Context, appt *domain.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if appt.AssignedStaffID == "" {
		return fmt.Errorf("assigned staff is required")
	}
	rule := domain.RuleFor(appt.Category)
	if strings.TrimSpace(appt.Title) == "" {
		appt.Title = rule.DefaultTitle
	}

	if err := s.Validate(ctx, appt); err != nil {
		return err
	}

	now := s.now()
	appt.Status = domain.StatusScheduled
	appt.CreatedAt = now
	appt.UpdatedAt = now
	if err := s.apptRepo.Create(ctx, appt); err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}
	return nil
}

// UpdateAppointment mutates time, category, location, and assignment through
// the same validation path as creation, re-running the availability check
// against everything except the appointment's own prior occupancy.
func (s *scheduleService) UpdateAppointment(ctx context.Context, appt *domain.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	existing, err := s.apptRepo.GetByID(ctx, appt.ID)
	if err != nil {
		return err
	}
	appt.CreatedByStaffID = existing.CreatedByStaffID
	appt.CreatedAt = existing.CreatedAt

	if err := s.Validate(ctx, appt); err != nil {
		return err
	}

	appt.UpdatedAt = s.now()
	if err := s.apptRepo.Update(ctx, appt); err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	return nil
}

// CancelAppointment marks the appointment cancelled, removing it from
// conflict consideration. Staff with self-only visibility may cancel only
// appointments they are assigned to or created.
func (s *scheduleService) CancelAppointment(ctx context.Context, id, staffID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	staff, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return err
	}
	if staff.Role.Scope() != domain.VisibilityAll &&
		appt.AssignedStaffID != staffID && appt.CreatedByStaffID != staffID {
		return domain.ErrForbidden
	}
	if err := s.apptRepo.SetStatus(ctx, id, domain.StatusCancelled); err != nil {
		return fmt.Errorf("cancel appointment: %w", err)
	}
	return nil
}

func (s *scheduleService) GetAppointment(ctx context.Context, id string) (*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.apptRepo.GetByID(ctx, id)
}

// ListCalendar returns the appointments in [from, to) visible to the viewer.
// The visibility filter runs before anything downstream uses the set.
func (s *scheduleService) ListCalendar(ctx context.Context, viewer *domain.Staff, filterStaffID string, from, to time.Time) ([]*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if viewer == nil {
		return nil, domain.ErrForbidden
	}
	appointments, err := s.apptRepo.ListInRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	visible := scheduling.Visible(appointments, viewer, filterStaffID)
	if visible == nil {
		visible = []*domain.Appointment{}
	}
	return visible, nil
}
