package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "rently/internal/delivery/context"
	domainerrors "rently/internal/domain/errors"
	"rently/internal/domain/repository"
	"rently/internal/domain/service"
	"rently/internal/errors"
	"rently/internal/usecase"

	"go.uber.org/fx"
)

const (
	registerSuccessMessage = "User successfully registered"
	loginSuccessMessage    = "Login successful"
	tokenTypeBearer        = "Bearer"
)

// authService wraps the credential core with the session side effects of sign-up and sign-in.
type authService struct {
	credentials  usecase.CredentialUsecase
	accountRepo  repository.AccountRepository
	tokenService service.TokenService
	publisher    service.EventPublisher
	profileCache service.ProfileCache
	logger       *slog.Logger
	now          func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Credentials  usecase.CredentialUsecase
	AccountRepo  repository.AccountRepository
	TokenService service.TokenService
	Publisher    service.EventPublisher
	ProfileCache service.ProfileCache
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		credentials:  params.Credentials,
		accountRepo:  params.AccountRepo,
		tokenService: params.TokenService,
		publisher:    params.Publisher,
		profileCache: params.ProfileCache,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the account and announces it. Publishing is best effort.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	view, err := srv.credentials.Register(ctx, input)
	if err != nil {
		return nil, err
	}

	event := &service.AccountEvent{
		RequestID:        deliverycontext.GetRequestIDFromContext(ctx),
		EventType:        service.AccountEventRegistered,
		AccountID:        view.ID.String(),
		Email:            view.Email,
		Role:             view.Role.String(),
		MarketingConsent: input.MarketingConsent,
		OccurredAt:       srv.now().UTC(),
	}
	if err := srv.publisher.PublishAccountEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish account event",
			slog.String("eventType", event.EventType),
			slog.Any("accountID", view.ID),
			slog.Any("error", err),
		)
	}

	return &usecase.RegisterOutput{
		Message: registerSuccessMessage,
		User:    view,
	}, nil
}

// Login verifies the credentials and issues an access token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	view, err := srv.credentials.Login(ctx, input)
	if err != nil {
		return nil, err
	}

	accessToken, err := srv.tokenService.IssueAccessToken(view.ID, view.Email, view.Role)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Any("accountID", view.ID), slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrTokenIssueFailed.WithDetails(err.Error()))
	}

	if err := srv.accountRepo.TouchLastLogin(ctx, view.ID, srv.now().UTC()); err != nil {
		srv.log(ctx).Warn("Failed to record last login", slog.Any("accountID", view.ID), slog.Any("error", err))
	}

	if err := srv.profileCache.Delete(ctx, view.ID); err != nil {
		srv.log(ctx).Warn("Failed to evict cached profile", slog.Any("accountID", view.ID), slog.Any("error", err))
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("accountID", view.ID), slog.String("role", view.Role.String()))

	return &usecase.LoginOutput{
		Message:     loginSuccessMessage,
		AccessToken: accessToken,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   int64(srv.tokenService.AccessTokenTTL().Seconds()),
		User:        view,
	}, nil
}
