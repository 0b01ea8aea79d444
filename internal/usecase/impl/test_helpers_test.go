package impl

import (
	"io"
	"log/slog"
	"time"

	"rently/internal/domain/entity"

	"github.com/google/uuid"
)

var fixedNow = time.Date(2024, time.June, 10, 8, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func stringPtr(s string) *string {
	return &s
}

func newTestAccount(role entity.Role) *entity.Account {
	return &entity.Account{
		ID:           uuid.MustParse("0190f3a4-7b1e-7c3a-9d2e-1f2a3b4c5d6e"),
		Email:        "john@example.com",
		PasswordHash: stringPtr("$2a$10$storedhash"),
		FirstName:    "John",
		LastName:     "Doe",
		Role:         role,
		Slug:         "john-doe-1718008200000",
		Profile: &entity.AccountProfile{
			PrivacyConsent: true,
			IsActive:       true,
		},
		CreatedAt: fixedNow,
		UpdatedAt: fixedNow,
	}
}
