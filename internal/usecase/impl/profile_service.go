package impl

import (
	"context"
	"log/slog"

	deliverycontext "rently/internal/delivery/context"
	"rently/internal/domain/entity"
	domainerrors "rently/internal/domain/errors"
	"rently/internal/domain/repository"
	"rently/internal/domain/service"
	"rently/internal/errors"
	"rently/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type profileService struct {
	accountRepo  repository.AccountRepository
	profileCache service.ProfileCache
	logger       *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	ProfileCache service.ProfileCache
	Logger       *slog.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		accountRepo:  params.AccountRepo,
		profileCache: params.ProfileCache,
		logger:       params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetUserInfo reads through the profile cache. Cache failures degrade to the store.
func (srv *profileService) GetUserInfo(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	cached, err := srv.profileCache.Get(ctx, accountID)
	if err != nil {
		srv.log(ctx).Warn("Profile cache read failed", slog.Any("accountID", accountID), slog.Any("error", err))
	}
	if cached != nil {
		return cached, nil
	}

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "get user info")
	}
	if err != nil {
		return nil, asStorageError(err, "find account by id")
	}

	if err := srv.profileCache.Set(ctx, account); err != nil {
		srv.log(ctx).Warn("Profile cache write failed", slog.Any("accountID", accountID), slog.Any("error", err))
	}

	return account, nil
}

// GetNavigation returns the menu for role.
func (srv *profileService) GetNavigation(role entity.Role) (*entity.Navigation, error) {
	navigation, ok := entity.NavigationFor(role)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown role " + role.String()))
	}

	return navigation, nil
}
