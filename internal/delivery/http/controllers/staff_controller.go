package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"designdesk/internal/delivery/http/helpers"
	"designdesk/internal/delivery/http/middleware"
	"designdesk/internal/domain"
)

// ListStaffSuccessResponse is the success response envelope for GET /staff (200).
type ListStaffSuccessResponse struct {
	Data  []*domain.Staff   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// StaffSuccessResponse is the success response envelope for GET /staff/me (200).
type StaffSuccessResponse struct {
	Data  *domain.Staff     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type StaffController struct {
	Logger  *slog.Logger
	Service domain.StaffService
}

func NewStaffController(logger *slog.Logger, svc domain.StaffService) *StaffController {
	return &StaffController{
		Logger:  logger,
		Service: svc,
	}
}

// ListStaff godoc
// @Summary List staff members
// @Description Returns every staff member, for assignment pickers and calendar filters. Requires authentication.
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListStaffSuccessResponse "data is an array of staff members"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /staff [get]
func (c *StaffController) ListStaff(w http.ResponseWriter, r *http.Request) {
	list, err := c.Service.ListStaff(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, list)
}

// GetCurrentStaff godoc
// @Summary Get the authenticated staff member
// @Description Returns the profile of the staff member identified by the Bearer token.
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.StaffSuccessResponse "data contains the staff member"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /staff/me [get]
func (c *StaffController) GetCurrentStaff(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.StaffIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	staff, err := c.Service.GetStaff(r.Context(), callerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "staff member not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, staff)
}
