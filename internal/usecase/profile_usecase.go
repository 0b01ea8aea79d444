package usecase

import (
	"context"

	"rently/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase serves the signed-in account's own data.
type ProfileUsecase interface {
	// GetUserInfo returns the account with its profile. Callers must not expose PasswordHash.
	GetUserInfo(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)

	// GetNavigation returns the menu for role.
	GetNavigation(role entity.Role) (*entity.Navigation, error)
}
