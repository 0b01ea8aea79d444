package middleware

import (
	"slices"
	"strings"

	deliverycontext "rently/internal/delivery/context"
	"rently/internal/delivery/http/response"
	"rently/internal/domain/entity"
	"rently/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the caller on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(authHeader[len(bearerPrefix):]))
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		ctx := deliverycontext.WithCaller(c.Request().Context(), deliverycontext.Caller{
			AccountID: claims.AccountID,
			Role:      claims.Role,
		})
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole rejects callers whose role is not listed. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := GetRole(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if !slices.Contains(roles, role) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied for role '"+role.String()+"'")
			}

			return next(c)
		}
	}
}

// GetAccountID returns the authenticated account ID set by Authenticate.
func GetAccountID(c echo.Context) (uuid.UUID, bool) {
	caller, ok := deliverycontext.CallerFromContext(c.Request().Context())

	return caller.AccountID, ok
}

// GetRole returns the authenticated role set by Authenticate.
func GetRole(c echo.Context) (entity.Role, bool) {
	caller, ok := deliverycontext.CallerFromContext(c.Request().Context())

	return caller.Role, ok && caller.Role.IsValid()
}
