package cache

import (
	"time"

	"rently/internal/domain/entity"

	"github.com/google/uuid"
)

// cachedAccount is the cache document. It deliberately has no password hash field.
type cachedAccount struct {
	ID               uuid.UUID  `json:"id"`
	Email            string     `json:"email"`
	HasPassword      bool       `json:"has_password"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	Role             string     `json:"role"`
	Slug             string     `json:"slug"`
	PhoneNumber      *string    `json:"phone_number,omitempty"`
	AvatarURL        *string    `json:"avatar_url,omitempty"`
	Address          *string    `json:"address,omitempty"`
	City             *string    `json:"city,omitempty"`
	PostalCode       *string    `json:"postal_code,omitempty"`
	EmailVerified    bool       `json:"email_verified"`
	PrivacyConsent   bool       `json:"privacy_consent"`
	MarketingConsent bool       `json:"marketing_consent"`
	IsActive         bool       `json:"is_active"`
	CreatedByAdmin   bool       `json:"created_by_admin"`
	LastLoginAt      *time.Time `json:"last_login_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func newCachedAccount(a *entity.Account) *cachedAccount {
	c := &cachedAccount{
		ID:          a.ID,
		Email:       a.Email,
		HasPassword: a.HasPassword(),
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Role:        a.Role.String(),
		Slug:        a.Slug,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}

	if p := a.Profile; p != nil {
		c.PhoneNumber = p.PhoneNumber
		c.AvatarURL = p.AvatarURL
		c.Address = p.Address
		c.City = p.City
		c.PostalCode = p.PostalCode
		c.EmailVerified = p.EmailVerified
		c.PrivacyConsent = p.PrivacyConsent
		c.MarketingConsent = p.MarketingConsent
		c.IsActive = p.IsActive
		c.CreatedByAdmin = p.CreatedByAdmin
		c.LastLoginAt = p.LastLoginAt
	}

	return c
}

// toEntity rebuilds an account for read paths. PasswordHash is always nil.
func (c *cachedAccount) toEntity() *entity.Account {
	return &entity.Account{
		ID:        c.ID,
		Email:     c.Email,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Role:      entity.Role(c.Role),
		Slug:      c.Slug,
		Profile: &entity.AccountProfile{
			PhoneNumber:      c.PhoneNumber,
			AvatarURL:        c.AvatarURL,
			Address:          c.Address,
			City:             c.City,
			PostalCode:       c.PostalCode,
			EmailVerified:    c.EmailVerified,
			PrivacyConsent:   c.PrivacyConsent,
			MarketingConsent: c.MarketingConsent,
			IsActive:         c.IsActive,
			CreatedByAdmin:   c.CreatedByAdmin,
			LastLoginAt:      c.LastLoginAt,
		},
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
