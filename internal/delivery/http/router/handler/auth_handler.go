package handler

import (
	"log/slog"
	"net/http"

	"rently/internal/delivery/http/response"
	"rently/internal/domain/entity"
	domainerrors "rently/internal/domain/errors"
	"rently/internal/errors"
	"rently/internal/infra/metrics"
	"rently/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	operationRegister = "register"
	operationLogin    = "login"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC  usecase.AuthUsecase
	Metrics *metrics.Metrics `optional:"true"`
	Logger  *slog.Logger
}

// AuthHandler serves account registration and login.
type AuthHandler struct {
	authUC  usecase.AuthUsecase
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:  params.AuthUC,
		metrics: params.Metrics,
		logger:  params.Logger,
	}
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	FirstName        string      `json:"firstName" validate:"required,max=100"`
	LastName         string      `json:"lastName" validate:"required,max=100"`
	Email            string      `json:"email" validate:"required,email,max=255"`
	Password         string      `json:"password" validate:"required"`
	Role             entity.Role `json:"role" validate:"required,account_role"`
	PrivacyConsent   bool        `json:"privacyConsent" validate:"eq=true"`
	MarketingConsent bool        `json:"marketingConsent"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register handles account registration
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		h.metrics.RecordAuthAttempt(operationRegister, metrics.OutcomeInvalidInput)

		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		h.metrics.RecordAuthAttempt(operationRegister, metrics.OutcomeInvalidInput)

		return errors.WithStack(err)
	}

	output, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:            req.Email,
		Password:         req.Password,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Role:             req.Role,
		PrivacyConsent:   req.PrivacyConsent,
		MarketingConsent: req.MarketingConsent,
	})
	h.metrics.RecordAuthAttempt(operationRegister, attemptOutcome(err))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// Login handles email/password sign-in
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		h.metrics.RecordAuthAttempt(operationLogin, metrics.OutcomeInvalidInput)

		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		h.metrics.RecordAuthAttempt(operationLogin, metrics.OutcomeInvalidInput)

		return errors.WithStack(err)
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	h.metrics.RecordAuthAttempt(operationLogin, attemptOutcome(err))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

func attemptOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, domainerrors.ErrDuplicateAccount):
		return metrics.OutcomeDuplicate
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return metrics.OutcomeInvalidCredentials
	case errors.Is(err, domainerrors.ErrValidationFailed):
		return metrics.OutcomeInvalidInput
	default:
		return metrics.OutcomeError
	}
}
