package postgres

import (
	"rently/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes
const (
	uniqueViolationCode = "23505"
	checkViolationCode  = "23514"
)

// isUniqueConstraintViolation covers both GORM's translated error and the raw driver error,
// since error translation depends on how the *gorm.DB was opened.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return hasPgCode(err, uniqueViolationCode)
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return hasPgCode(err, checkViolationCode)
}

func hasPgCode(err error, code string) bool {
	pgErr, ok := errors.AsType[*pgconn.PgError](err)

	return ok && pgErr.Code == code
}
