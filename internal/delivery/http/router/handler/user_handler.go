package handler

import (
	"log/slog"
	"net/http"
	"time"

	"rently/internal/delivery/http/middleware"
	"rently/internal/delivery/http/response"
	"rently/internal/domain/entity"
	"rently/internal/errors"
	"rently/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// UserHandler serves the signed-in account's own data.
type UserHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// UserInfoResponse is the profile returned to clients. It has no password field.
type UserInfoResponse struct {
	ID               uuid.UUID   `json:"id"`
	Slug             string      `json:"slug"`
	FirstName        string      `json:"firstName"`
	LastName         string      `json:"lastName"`
	Email            string      `json:"email"`
	PhoneNumber      *string     `json:"phoneNumber"`
	AvatarURL        *string     `json:"avatarUrl"`
	Role             entity.Role `json:"role"`
	Address          *string     `json:"address"`
	City             *string     `json:"city"`
	PostalCode       *string     `json:"postalCode"`
	EmailVerified    bool        `json:"emailVerified"`
	PrivacyConsent   bool        `json:"privacyConsent"`
	MarketingConsent bool        `json:"marketingConsent"`
	IsActive         bool        `json:"isActive"`
	LastLoginAt      *time.Time  `json:"lastLoginAt"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

func newUserInfoResponse(account *entity.Account) *UserInfoResponse {
	info := &UserInfoResponse{
		ID:        account.ID,
		Slug:      account.Slug,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Email:     account.Email,
		Role:      account.Role,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}

	if profile := account.Profile; profile != nil {
		info.PhoneNumber = profile.PhoneNumber
		info.AvatarURL = profile.AvatarURL
		info.Address = profile.Address
		info.City = profile.City
		info.PostalCode = profile.PostalCode
		info.EmailVerified = profile.EmailVerified
		info.PrivacyConsent = profile.PrivacyConsent
		info.MarketingConsent = profile.MarketingConsent
		info.IsActive = profile.IsActive
		info.LastLoginAt = profile.LastLoginAt
	}

	return info
}

// GetUserInfo returns the caller's profile
func (h *UserHandler) GetUserInfo(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	account, err := h.profileUC.GetUserInfo(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserInfoResponse(account))
}

// GetNavigation returns the menu for the caller's role
func (h *UserHandler) GetNavigation(c echo.Context) error {
	role, ok := middleware.GetRole(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid role in token")
	}

	navigation, err := h.profileUC.GetNavigation(role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, navigation)
}

// GetAccount returns any account's profile. Routed for administrators only.
func (h *UserHandler) GetAccount(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequestWithDetails(c, "INVALID_INPUT", "Invalid account ID", "id must be a UUID")
	}

	account, err := h.profileUC.GetUserInfo(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserInfoResponse(account))
}
