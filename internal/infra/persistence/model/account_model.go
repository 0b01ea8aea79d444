package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountModel mirrors the 'users' table. IDs are UUIDv7 generated by the application
// so inserts need no RETURNING clause. Email uniqueness is enforced by a unique index on lower(email).
type AccountModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email            string    `gorm:"type:varchar(255);not null"`
	PasswordHash     *string   `gorm:"column:password_hash;type:varchar(255)"`
	FirstName        string    `gorm:"column:first_name;type:varchar(100);not null"`
	LastName         string    `gorm:"column:last_name;type:varchar(100);not null"`
	Role             string    `gorm:"type:varchar(20);not null"`
	Slug             string    `gorm:"type:varchar(255);not null"`
	PhoneNumber      *string   `gorm:"column:phone_number;type:varchar(32)"`
	AvatarURL        *string   `gorm:"column:avatar_url;type:text"`
	Address          *string   `gorm:"type:varchar(255)"`
	City             *string   `gorm:"type:varchar(100)"`
	PostalCode       *string   `gorm:"column:postal_code;type:varchar(20)"`
	EmailVerified    bool      `gorm:"column:email_verified;not null"`
	PrivacyConsent   bool      `gorm:"column:privacy_consent;not null"`
	MarketingConsent bool      `gorm:"column:marketing_consent;not null"`
	IsActive         bool      `gorm:"column:is_active;not null"`
	CreatedByAdmin   bool      `gorm:"column:created_by_admin;not null"`
	LastLoginAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "users"
}
