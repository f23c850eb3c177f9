package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"designdesk/internal/delivery/http/helpers"
	"designdesk/internal/delivery/http/middleware"
	"designdesk/internal/domain"
)

// ProposeDefaultsRequest is the request body for POST /appointments/proposals.
// Anchor is optional; when omitted or quick_add is true, the proposal anchors
// on the current time. StaffID defaults to the authenticated staff member.
type ProposeDefaultsRequest struct {
	Category string     `json:"category"`
	Anchor   *time.Time `json:"anchor"`
	QuickAdd bool       `json:"quick_add"`
	StaffID  string     `json:"staff_id"`
}

// Validate implements Validator.
func (p ProposeDefaultsRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(p.Category) == "" {
		errs = append(errs, "category is required")
	}
	return errs
}

// ProposeDefaultsSuccessResponse is the success response envelope for POST /appointments/proposals (200).
type ProposeDefaultsSuccessResponse struct {
	Data  *domain.SlotProposal `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// CreateAppointmentRequest is the request body for POST /appointments.
type CreateAppointmentRequest struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	Location        string    `json:"location"`
	CustomerID      string    `json:"customer_id"`
	AssignedStaffID string    `json:"assigned_staff_id"`
}

// Validate implements Validator. Field-level rules beyond presence are
// enforced by the scheduling service, which reports them as violations.
func (c CreateAppointmentRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Category) == "" {
		errs = append(errs, "category is required")
	}
	if c.Start.IsZero() {
		errs = append(errs, "start is required")
	}
	if c.End.IsZero() {
		errs = append(errs, "end is required")
	}
	return errs
}

// AppointmentSuccessResponse is the success response envelope for endpoints returning a single appointment.
type AppointmentSuccessResponse struct {
	Data  *domain.Appointment `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// UpdateAppointmentRequest is the request body for PATCH /appointments/{appointmentID}.
// All fields optional; omitted fields are unchanged.
type UpdateAppointmentRequest struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	Start           *time.Time `json:"start"`
	End             *time.Time `json:"end"`
	Location        *string    `json:"location"`
	CustomerID      *string    `json:"customer_id"`
	AssignedStaffID *string    `json:"assigned_staff_id"`
}

// Validate implements Validator.
func (u UpdateAppointmentRequest) Validate() []string {
	var errs []string
	if u.AssignedStaffID != nil && strings.TrimSpace(*u.AssignedStaffID) == "" {
		errs = append(errs, "assigned_staff_id cannot be empty")
	}
	return errs
}

// CancelAppointmentResponse is the data payload for POST /appointments/{appointmentID}/cancel (200).
type CancelAppointmentResponse struct {
	Status string `json:"status"`
}

// CancelAppointmentSuccessResponse is the success response envelope for POST /appointments/{appointmentID}/cancel (200).
type CancelAppointmentSuccessResponse struct {
	Data  CancelAppointmentResponse `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

// ListCalendarSuccessResponse is the success response envelope for GET /calendar (200).
type ListCalendarSuccessResponse struct {
	Data  []*domain.Appointment `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

type ScheduleController struct {
	Logger  *slog.Logger
	Service domain.ScheduleService
}

func NewScheduleController(logger *slog.Logger, svc domain.ScheduleService) *ScheduleController {
	return &ScheduleController{
		Logger:  logger,
		Service: svc,
	}
}

// ProposeDefaults godoc
// @Summary Propose defaults for a new appointment
// @Description Resolves an anchor time, fills category defaults (duration, title, location), and substitutes the next free slot when the anchored time is not schedulable. quick_add anchors on now; a past anchor falls forward to the next business day. Requires authentication.
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ProposeDefaultsRequest true "Proposal parameters"
// @Success 200 {object} controllers.ProposeDefaultsSuccessResponse "data contains the proposed slot and defaults"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (no free slot within the horizon)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /appointments/proposals [post]
func (c *ScheduleController) ProposeDefaults(w http.ResponseWriter, r *http.Request) {
	var req ProposeDefaultsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	callerID, ok := middleware.StaffIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	category, ok := domain.ParseCategory(req.Category)
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "unknown category: "+req.Category)
		return
	}
	staffID := req.StaffID
	if staffID == "" {
		staffID = callerID
	}
	var anchor time.Time
	if req.Anchor != nil {
		anchor = *req.Anchor
	}
	proposal, err := c.Service.ProposeDefaults(r.Context(), category, anchor, req.QuickAdd, staffID)
	if err != nil {
		if errors.Is(err, domain.ErrNoSlotAvailable) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "no free slot within the scheduling horizon")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, proposal)
}

// CreateAppointment godoc
// @Summary Create an appointment
// @Description Creates an appointment after validating category rules, interval sanity, and the assigned staff member's calendar. Validation failures return 422 with the full list of violations. assigned_staff_id defaults to the authenticated staff member. Requires authentication.
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateAppointmentRequest true "Appointment data"
// @Success 201 {object} controllers.AppointmentSuccessResponse "data contains the created appointment"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 422 {object} helpers.APIResponse "error.code: validation_failed with violations"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /appointments [post]
func (c *ScheduleController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	callerID, ok := middleware.StaffIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	category, ok := domain.ParseCategory(req.Category)
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "unknown category: "+req.Category)
		return
	}
	assigned := req.AssignedStaffID
	if assigned == "" {
		assigned = callerID
	}
	appt := &domain.Appointment{
		Title:            req.Title,
		Description:      req.Description,
		Category:         category,
		Start:            req.Start,
		End:              req.End,
		Location:         req.Location,
		CustomerID:       req.CustomerID,
		AssignedStaffID:  assigned,
		CreatedByStaffID: callerID,
	}
	if err := c.Service.CreateAppointment(r.Context(), appt); err != nil {
		if verr, ok := domain.AsValidationError(err); ok {
			helpers.WriteValidationError(w, verr)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, appt)
}

// GetAppointment godoc
// @Summary Get an appointment by ID
// @Description Returns a single appointment. Requires authentication.
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param appointmentID path string true "Appointment ID"
// @Success 200 {object} controllers.AppointmentSuccessResponse "data contains the appointment"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /appointments/{appointmentID} [get]
func (c *ScheduleController) GetAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID := r.PathValue("appointmentID")
	if appointmentID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing appointmentID")
		return
	}
	appt, err := c.Service.GetAppointment(r.Context(), appointmentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "appointment not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, appt)
}

// UpdateAppointment godoc
// @Summary Update an appointment
// @Description Updates appointment fields. Omitted fields are unchanged. The updated appointment is re-validated against category rules and the assigned staff member's calendar; the appointment's own slot does not conflict with itself. Requires authentication.
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param appointmentID path string true "Appointment ID"
// @Param body body UpdateAppointmentRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.AppointmentSuccessResponse "data contains the updated appointment"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 422 {object} helpers.APIResponse "error.code: validation_failed with violations"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /appointments/{appointmentID} [patch]
func (c *ScheduleController) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID := r.PathValue("appointmentID")
	if appointmentID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing appointmentID")
		return
	}
	var req UpdateAppointmentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	appt, err := c.Service.GetAppointment(r.Context(), appointmentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "appointment not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if req.Title != nil {
		appt.Title = *req.Title
	}
	if req.Description != nil {
		appt.Description = *req.Description
	}
	if req.Start != nil {
		appt.Start = *req.Start
	}
	if req.End != nil {
		appt.End = *req.End
	}
	if req.Location != nil {
		appt.Location = *req.Location
	}
	if req.CustomerID != nil {
		appt.CustomerID = *req.CustomerID
	}
	if req.AssignedStaffID != nil {
		appt.AssignedStaffID = *req.AssignedStaffID
	}
	if err := c.Service.UpdateAppointment(r.Context(), appt); err != nil {
		if verr, ok := domain.AsValidationError(err); ok {
			helpers.WriteValidationError(w, verr)
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "appointment not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, appt)
}

// CancelAppointment godoc
// @Summary Cancel an appointment
// @Description Cancels an appointment. Admins and managers can cancel any appointment; other roles only those they are assigned to or created. Cancelled appointments stop blocking the calendar. Requires authentication.
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param appointmentID path string true "Appointment ID"
// @Success 200 {object} controllers.CancelAppointmentSuccessResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /appointments/{appointmentID}/cancel [post]
func (c *ScheduleController) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID := r.PathValue("appointmentID")
	if appointmentID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing appointmentID")
		return
	}
	callerID, ok := middleware.StaffIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Service.CancelAppointment(r.Context(), appointmentID, callerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "appointment not found")
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "forbidden")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, CancelAppointmentResponse{Status: "cancelled"})
}

// ListCalendar godoc
// @Summary List appointments in a date range
// @Description Returns the appointments in [from, to) visible to the authenticated staff member. Admins and managers see every staff member's appointments and may filter by staff_id; other roles see only their own regardless of the filter. Requires authentication.
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param from query string true "Range start (RFC 3339)"
// @Param to query string true "Range end (RFC 3339, exclusive)"
// @Param staff_id query string false "Filter by assigned staff member (admin and manager only)"
// @Success 200 {object} controllers.ListCalendarSuccessResponse "data is an array of appointments"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /calendar [get]
func (c *ScheduleController) ListCalendar(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.StaffIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	role, ok := middleware.StaffRoleFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	from, err := time.Parse(time.RFC3339, r.URL.Query().Get("from"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "from must be an RFC 3339 timestamp")
		return
	}
	to, err := time.Parse(time.RFC3339, r.URL.Query().Get("to"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "to must be an RFC 3339 timestamp")
		return
	}
	if !from.Before(to) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "from must be before to")
		return
	}
	viewer := &domain.Staff{ID: callerID, Role: role}
	appointments, err := c.Service.ListCalendar(r.Context(), viewer, r.URL.Query().Get("staff_id"), from, to)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "forbidden")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if appointments == nil {
		appointments = []*domain.Appointment{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, appointments)
}
