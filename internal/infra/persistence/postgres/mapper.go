package postgres

import (
	"rently/internal/domain/entity"
	"rently/internal/infra/persistence/model"
)

// toAccountDomain maps the persistence model to the domain entity. Profile is always populated
// because every stored row carries the profile columns.
func toAccountDomain(m *model.AccountModel) *entity.Account {
	if m == nil {
		return nil
	}

	return &entity.Account{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Role:         entity.Role(m.Role),
		Slug:         m.Slug,
		Profile: &entity.AccountProfile{
			PhoneNumber:      m.PhoneNumber,
			AvatarURL:        m.AvatarURL,
			Address:          m.Address,
			City:             m.City,
			PostalCode:       m.PostalCode,
			EmailVerified:    m.EmailVerified,
			PrivacyConsent:   m.PrivacyConsent,
			MarketingConsent: m.MarketingConsent,
			IsActive:         m.IsActive,
			CreatedByAdmin:   m.CreatedByAdmin,
			LastLoginAt:      m.LastLoginAt,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromAccountDomain(a *entity.Account) *model.AccountModel {
	m := &model.AccountModel{
		ID:           a.ID,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		Role:         a.Role.String(),
		Slug:         a.Slug,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}

	if p := a.Profile; p != nil {
		m.PhoneNumber = p.PhoneNumber
		m.AvatarURL = p.AvatarURL
		m.Address = p.Address
		m.City = p.City
		m.PostalCode = p.PostalCode
		m.EmailVerified = p.EmailVerified
		m.PrivacyConsent = p.PrivacyConsent
		m.MarketingConsent = p.MarketingConsent
		m.IsActive = p.IsActive
		m.CreatedByAdmin = p.CreatedByAdmin
		m.LastLoginAt = p.LastLoginAt
	}

	return m
}
