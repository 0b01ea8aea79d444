package service

import (
	"context"

	"rently/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileCache is a read-through cache of account profiles.
// Cached entries never contain the password hash.
type ProfileCache interface {
	// Get returns nil without error on a miss.
	Get(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	Set(ctx context.Context, account *entity.Account) error
	Delete(ctx context.Context, id uuid.UUID) error
}
