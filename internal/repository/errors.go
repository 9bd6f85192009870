package repository

import (
	"database/sql"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	"github.com/ostrenko/circulation-service/internal/errs"
)

// ErrDuplicateFine signals a unique-constraint hit on (loan_id, fined_for_date).
// The accrual engine swallows it: the fine for that period already exists.
var ErrDuplicateFine = errors.New("fine already exists for period")

func wrapNoRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return errs.ErrNotFound
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	return false
}
