package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "designdesk/internal/delivery/http/helpers"
	"designdesk/internal/domain"
)

// SignInRequest is the request body for POST /auth/sign-in
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (s SignInRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.Email) == "" {
		errs = append(errs, "email is required")
	}
	if s.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// SignInResponse is the response body for POST /auth/sign-in
type SignInResponse struct {
	Token     string        `json:"token"`
	TokenType string        `json:"token_type"`
	Staff     *domain.Staff `json:"staff"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// SignIn godoc
// @Summary Sign in
// @Description Authenticate with email and password. Returns a JWT containing staff id and role, plus the staff profile.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body SignInRequest true "Sign-in credentials"
// @Success 200 {object} helpers.APIResponse "data contains token, token_type, and staff"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/sign-in [post]
func (c *AuthController) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	token, staff, err := c.Service.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid credentials")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}

	h.WriteJSONSuccess(w, http.StatusOK, SignInResponse{Token: token, TokenType: "Bearer", Staff: staff})
}
