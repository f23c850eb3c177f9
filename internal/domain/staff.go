package domain

import (
	"context"
	"time"
)

// Role is a staff member's application role. The set is closed; Scope
// switches exhaustively over it, so a new role must declare its visibility.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleManager   Role = "manager"
	RoleDesigner  Role = "designer"
	RoleAssistant Role = "assistant"
)

// ParseRole returns the Role for the given string, or false if unknown.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleDesigner, RoleAssistant:
		return Role(s), true
	}
	return "", false
}

// VisibilityScope is what a role is allowed to see on the calendar.
type VisibilityScope int

const (
	// VisibilitySelf restricts the viewer to their own appointments.
	VisibilitySelf VisibilityScope = iota
	// VisibilityAll allows viewing every staff member's appointments and
	// filtering by an explicit staff id.
	VisibilityAll
)

// Scope returns the calendar visibility for the role. Unknown roles get the
// restrictive default.
func (r Role) Scope() VisibilityScope {
	switch r {
	case RoleAdmin, RoleManager:
		return VisibilityAll
	case RoleDesigner, RoleAssistant:
		return VisibilitySelf
	}
	return VisibilitySelf
}

// Staff represents a staff member of the studio.
type Staff struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StaffRepository defines the interface for staff storage.
type StaffRepository interface {
	GetByID(ctx context.Context, id string) (*Staff, error)
	GetByEmail(ctx context.Context, email string) (*Staff, error)
	List(ctx context.Context) ([]*Staff, error)
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated staff member.
type TokenIssuer interface {
	Issue(staffID string, role Role, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated staff ID and role.
type TokenVerifier interface {
	Verify(token string) (staffID string, role Role, err error)
}

// AuthService defines the business logic for staff sign-in.
type AuthService interface {
	SignIn(ctx context.Context, email, password string) (token string, staff *Staff, err error)
}

// StaffService defines the business logic for the staff directory.
type StaffService interface {
	GetStaff(ctx context.Context, id string) (*Staff, error)
	ListStaff(ctx context.Context) ([]*Staff, error)
}
