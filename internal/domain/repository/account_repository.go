// Package repository defines the persistence contracts the use cases depend on.
package repository

import (
	"context"
	"time"

	"rently/internal/domain/entity"
	domainerrors "rently/internal/domain/errors"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned by lookups that match no account.
var ErrAccountNotFound = domainerrors.ErrAccountNotFound

// AccountRepository is the durable keyed store of accounts, keyed by id and by lower-cased email.
type AccountRepository interface {
	// FindByEmail returns ErrAccountNotFound when absent. The credential service owns email
	// normalization (trimmed, lower-cased) and passes normalized emails; implementations still
	// compare case-insensitively, matching the unique index on lower(email).
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByID returns ErrAccountNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// Create persists account and fills in ID, CreatedAt and UpdatedAt.
	// A second account with the same email is rejected with domainerrors.ErrDuplicateAccount.
	Create(ctx context.Context, account *entity.Account) error

	// TouchLastLogin records a successful sign-in time.
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}
