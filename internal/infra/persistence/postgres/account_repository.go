// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"
	"time"

	"rently/internal/domain/entity"
	domainerrors "rently/internal/domain/errors"
	"rently/internal/domain/repository"
	"rently/internal/errors"
	"rently/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// accountRepository implements repository.AccountRepository using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository returns the repository as a repository.AccountRepository interface.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByEmail retrieves an account by email, folding case like the
// users_email_lower_key index.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("lower(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		Take(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewStorageError(err, "find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// FindByID retrieves an account by its id.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewStorageError(err, "find account by id")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account and writes the generated id and timestamps back onto it.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)
	if accountM.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return domainerrors.NewStorageError(err, "generate account id")
		}
		accountM.ID = id
	}

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateAccount.WrapMessage("email already exists")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.NewStorageError(err, "account violates a check constraint")
		}

		return domainerrors.NewStorageError(err, "create account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// TouchLastLogin stamps last_login_at for the account.
func (repo *accountRepository) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Update("last_login_at", at)
	if result.Error != nil {
		return domainerrors.NewStorageError(result.Error, "touch last login")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}
