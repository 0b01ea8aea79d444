// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"rently/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open a new account.
type RegisterInput struct {
	Email            string      `validate:"required,email,max=255"`
	Password         string      `validate:"required"`
	FirstName        string      `validate:"required,max=100"`
	LastName         string      `validate:"required,max=100"`
	Role             entity.Role `validate:"required,account_role"`
	PrivacyConsent   bool        `validate:"eq=true"`
	MarketingConsent bool
}

// LoginInput defines the data required for an account to sign in.
type LoginInput struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// --- Output DTOs ---

// AccountView is the public projection of an account. It has no field for the password hash.
type AccountView struct {
	ID        uuid.UUID   `json:"id"`
	Email     string      `json:"email"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Role      entity.Role `json:"role"`
}

// NewAccountView projects an account into its public view.
func NewAccountView(account *entity.Account) *AccountView {
	if account == nil {
		return nil
	}

	return &AccountView{
		ID:        account.ID,
		Email:     account.Email,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Role:      account.Role,
	}
}

// CredentialUsecase creates accounts and verifies email/password pairs.
// It holds no session state; issuing tokens is left to AuthUsecase.
type CredentialUsecase interface {
	// Register returns domainerrors.ErrDuplicateAccount when the email is taken.
	Register(ctx context.Context, input *RegisterInput) (*AccountView, error)

	// Login returns domainerrors.ErrInvalidCredentials for an unknown email, an account
	// without a password and a wrong password alike.
	Login(ctx context.Context, input *LoginInput) (*AccountView, error)
}
