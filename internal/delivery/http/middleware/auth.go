package middleware

import (
	"context"
	"net/http"
	"strings"

	h "designdesk/internal/delivery/http/helpers"
	"designdesk/internal/domain"
)

type contextKey string

const (
	staffIDKey   contextKey = "staffID"
	staffRoleKey contextKey = "staffRole"
)

// SetStaff returns a context with the authenticated staff ID and role set.
// Used by auth middleware.
func SetStaff(ctx context.Context, staffID string, role domain.Role) context.Context {
	ctx = context.WithValue(ctx, staffIDKey, staffID)
	return context.WithValue(ctx, staffRoleKey, role)
}

// StaffIDFromContext returns the authenticated staff ID from the context, if present.
func StaffIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(staffIDKey).(string)
	return id, ok
}

// StaffRoleFromContext returns the authenticated staff role from the context, if present.
func StaffRoleFromContext(ctx context.Context) (domain.Role, bool) {
	role, ok := ctx.Value(staffRoleKey).(domain.Role)
	return role, ok
}

// RequireAuth returns a wrapper that validates the Bearer token and sets the
// staff ID and role in the request context.
// If the token is missing or invalid, it responds with 401 and does not call next.
func RequireAuth(verifier domain.TokenVerifier) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing token")
				return
			}
			staffID, role, err := verifier.Verify(token)
			if err != nil {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			r = r.WithContext(SetStaff(r.Context(), staffID, role))
			next(w, r)
		}
	}
}
