package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"designdesk/internal/domain"
)

type jwtClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

type jwtSigner struct {
	secret []byte
}

// NewJWTSigner returns a signer that issues and verifies HS256 JWTs
// carrying the staff ID as subject and the role as a custom claim.
// It satisfies both domain.TokenIssuer and domain.TokenVerifier.
func NewJWTSigner(secret string) *jwtSigner {
	return &jwtSigner{secret: []byte(secret)}
}

func (s *jwtSigner) Issue(staffID string, role domain.Role, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   staffID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Role: string(role),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (s *jwtSigner) Verify(tokenString string) (string, domain.Role, error) {
	claims := &jwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", "", fmt.Errorf("invalid token")
	}
	role, ok := domain.ParseRole(claims.Role)
	if !ok {
		return "", "", fmt.Errorf("invalid role claim: %q", claims.Role)
	}
	return claims.Subject, role, nil
}
