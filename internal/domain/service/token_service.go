package service

import (
	"time"

	"rently/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTypeAccess marks tokens accepted by the API.
const TokenTypeAccess = "access"

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	AccountID uuid.UUID   `json:"-"`
	Email     string      `json:"email"`
	Role      entity.Role `json:"role"`
	Type      string      `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and validates signed access tokens.
type TokenService interface {
	// IssueAccessToken signs a token for the account identity.
	IssueAccessToken(accountID uuid.UUID, email string, role entity.Role) (string, error)

	// ValidateToken checks signature, expiry and token type.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenTTL returns the lifetime of issued tokens.
	AccessTokenTTL() time.Duration
}
