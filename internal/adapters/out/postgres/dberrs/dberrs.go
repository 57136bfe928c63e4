// Package dberrs turns storage failures into the errs taxonomy so that
// handlers and the HTTP layer never inspect driver types.
package dberrs

import (
	"errors"

	"freight/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

// Translate maps uniqueness and referential violations to a ConflictError on
// paramName/value and a violated check constraint to ValueIsInvalidError.
// Any other error is returned unchanged.
func Translate(err error, paramName string, value any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errs.NewConflictErrorWithCause(paramName, value, err)
	}
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation, foreignKeyViolation:
			return errs.NewConflictErrorWithCause(paramName, value, err)
		case checkViolation:
			return errs.NewValueIsInvalidErrorWithCause(paramName, err)
		}
	}

	return err
}

// NotFound converts gorm.ErrRecordNotFound into an ObjectNotFoundError.
func NotFound(err error, paramName string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(paramName, id)
	}
	return err
}
