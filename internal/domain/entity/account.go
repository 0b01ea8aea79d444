// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the identity record a person signs in with.
// It carries only what every account has from the moment it is registered.
type Account struct {
	ID           uuid.UUID       // Assigned by the store on creation.
	Email        string          // Lower-cased, unique across accounts.
	PasswordHash *string         // Nil for accounts that were created without a password.
	FirstName    string          // Given name.
	LastName     string          // Family name.
	Role         Role            // One of tenant, landlord or admin.
	Slug         string          // URL-friendly handle; not guaranteed unique.
	Profile      *AccountProfile // Progressively filled profile data. Nil means nothing beyond the identity is known.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPassword reports whether the account can authenticate with a password.
func (a *Account) HasPassword() bool {
	return a != nil && a.PasswordHash != nil && *a.PasswordHash != ""
}

// AccountProfile holds optional personal data, consent flags and activity markers.
type AccountProfile struct {
	PhoneNumber      *string
	AvatarURL        *string
	Address          *string
	City             *string
	PostalCode       *string
	EmailVerified    bool
	PrivacyConsent   bool
	MarketingConsent bool
	IsActive         bool
	CreatedByAdmin   bool
	LastLoginAt      *time.Time
}
