// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "rently/internal/delivery/context"
	"rently/internal/domain/entity"
	domainerrors "rently/internal/domain/errors"
	"rently/internal/domain/repository"
	"rently/internal/domain/service"
	"rently/internal/errors"
	"rently/internal/usecase"
	"rently/internal/validation"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

// credentialService implements the CredentialUsecase interface.
type credentialService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	validate    *validator.Validate
	logger      *slog.Logger
	now         func() time.Time
}

// CredentialServiceParams holds dependencies for CredentialService, injected by Fx.
type CredentialServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewCredentialService is the constructor for credentialService.
func NewCredentialService(params CredentialServiceParams) usecase.CredentialUsecase {
	return &credentialService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		validate:    validation.New(),
		logger:      params.Logger,
		now:         time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *credentialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates the input, rejects taken emails and stores a new account with a hashed password.
func (srv *credentialService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AccountView, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("registration input is required"))
	}

	normalized := *input
	normalized.Email = normalizeEmail(input.Email)
	normalized.FirstName = strings.TrimSpace(input.FirstName)
	normalized.LastName = strings.TrimSpace(input.LastName)

	if err := srv.validate.Struct(&normalized); err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(validation.Describe(err)))
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", normalized.Email), slog.String("role", normalized.Role.String()))

	existing, err := srv.accountRepo.FindByEmail(ctx, normalized.Email)
	switch {
	case errors.Is(err, repository.ErrAccountNotFound):
	case err != nil:
		return nil, asStorageError(err, "find account by email")
	case existing != nil:
		srv.log(ctx).Info("Registration rejected, email already registered", slog.String("email", normalized.Email))

		return nil, errors.Wrap(domainerrors.ErrDuplicateAccount, "register")
	}

	hash, err := srv.hasher.Hash(normalized.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrPasswordHashFailed.WithDetails(err.Error()))
	}

	now := srv.now()
	account := &entity.Account{
		Email:        normalized.Email,
		PasswordHash: &hash,
		FirstName:    normalized.FirstName,
		LastName:     normalized.LastName,
		Role:         normalized.Role,
		Slug:         buildSlug(normalized.FirstName, normalized.LastName, now),
		Profile: &entity.AccountProfile{
			PrivacyConsent:   normalized.PrivacyConsent,
			MarketingConsent: normalized.MarketingConsent,
			IsActive:         true,
		},
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, domainerrors.ErrDuplicateAccount) {
			srv.log(ctx).Info("Registration lost a race on email", slog.String("email", normalized.Email))

			return nil, errors.Wrap(domainerrors.ErrDuplicateAccount, "register")
		}

		return nil, asStorageError(err, "create account")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("accountID", account.ID), slog.String("role", account.Role.String()))

	return usecase.NewAccountView(account), nil
}

// Login verifies an email/password pair. It performs no writes.
func (srv *credentialService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AccountView, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("login input is required"))
	}

	normalized := usecase.LoginInput{
		Email:    normalizeEmail(input.Email),
		Password: input.Password,
	}
	if err := srv.validate.Struct(&normalized); err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(validation.Describe(err)))
	}

	account, err := srv.accountRepo.FindByEmail(ctx, normalized.Email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		srv.log(ctx).Info("Login rejected", slog.String("email", normalized.Email), slog.String("reason", "unknown email"))

		return nil, errInvalidCredentials()
	}
	if err != nil {
		return nil, asStorageError(err, "find account by email")
	}

	if !account.HasPassword() {
		srv.log(ctx).Info("Login rejected", slog.String("email", normalized.Email), slog.String("reason", "no password set"))

		return nil, errInvalidCredentials()
	}

	if !srv.hasher.Check(normalized.Password, *account.PasswordHash) {
		srv.log(ctx).Info("Login rejected", slog.String("email", normalized.Email), slog.String("reason", "password mismatch"))

		return nil, errInvalidCredentials()
	}

	srv.log(ctx).Debug("Credentials verified", slog.Any("accountID", account.ID))

	return usecase.NewAccountView(account), nil
}

// errInvalidCredentials builds the single rejection used by every login failure.
func errInvalidCredentials() error {
	return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
}

// asStorageError keeps an existing StorageError and wraps anything else.
func asStorageError(err error, operation string) error {
	if domainerrors.IsStorageError(err) {
		return errors.Wrap(err, operation)
	}

	return errors.WithStack(domainerrors.NewStorageError(err, operation))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
