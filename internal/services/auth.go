package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"designdesk/internal/domain"
)

type authService struct {
	staffRepo      domain.StaffRepository
	hasher         domain.PasswordHasher
	tokenIssuer    domain.TokenIssuer
	tokenExpiry    time.Duration
	contextTimeout time.Duration
}

// NewAuthService creates an AuthService backed by the staff directory and the
// given hashing and token ports.
func NewAuthService(staffRepo domain.StaffRepository, hasher domain.PasswordHasher, tokenIssuer domain.TokenIssuer, tokenExpiry, timeout time.Duration) domain.AuthService {
	return &authService{
		staffRepo:      staffRepo,
		hasher:         hasher,
		tokenIssuer:    tokenIssuer,
		tokenExpiry:    tokenExpiry,
		contextTimeout: timeout,
	}
}

// SignIn verifies the staff member's credentials and issues a token carrying
// their id and role. Unknown emails and wrong passwords both map to
// ErrInvalidCredentials so the response does not leak which one failed.
func (s *authService) SignIn(ctx context.Context, email, password string) (string, *domain.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	email = strings.TrimSpace(strings.ToLower(email))
	staff, err := s.staffRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get staff: %w", err)
	}
	if err := s.hasher.Compare(staff.PasswordHash, staff.Salt, password); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	token, err := s.tokenIssuer.Issue(staff.ID, staff.Role, s.tokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, staff, nil
}
