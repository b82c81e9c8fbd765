package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Store-level failures surfaced to callers. Both the Postgres repositories and
// the in-memory store report these sentinels.
var (
	ErrNotFound        = errors.New("record not found")
	ErrUnknownCategory = errors.New("category does not exist")
	ErrInvalidQuestion = errors.New("question violates table constraints")
)

const (
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
)

// translate maps driver errors onto the sentinels above and leaves anything
// else untouched.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return ErrUnknownCategory
		case pgCheckViolation, pgNotNullViolation:
			return ErrInvalidQuestion
		}
	}
	return err
}
