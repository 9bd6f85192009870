package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ostrenko/circulation-service/internal/model"
)

const fineColumns = "id, fine_uid, loan_id, username, amount, reason, fined_for_date, is_paid, paid_at"

// CreateFine inserts one billable period. A duplicate (loan_id,
// fined_for_date) comes back as ErrDuplicateFine. The insert uses ON CONFLICT
// DO NOTHING so the hit does not poison the enclosing transaction.
func (s store) CreateFine(ctx context.Context, loanID *int, username string, amount int64, reason string, finedForDate time.Time) (model.Fine, error) {
	q, args, err := qb.Insert(finesTableName).
		Columns("fine_uid", "loan_id", "username", "amount", "reason", "fined_for_date").
		Values(uuid.New(), loanID, username, amount, reason, finedForDate.Format(time.DateOnly)).
		Suffix("on conflict (loan_id, fined_for_date) do nothing returning " + fineColumns).
		ToSql()
	if err != nil {
		return model.Fine{}, err
	}
	var fine model.Fine
	if err := sqlx.GetContext(ctx, s.ext, &fine, q, args...); err != nil {
		// DO NOTHING surfaces the conflict as an empty RETURNING set.
		if errors.Is(err, sql.ErrNoRows) || isUniqueViolation(err) {
			return model.Fine{}, ErrDuplicateFine
		}
		s.log.Error("CreateFine", zap.String("q", q), zap.Any("args", args))
		return model.Fine{}, err
	}
	return fine, nil
}

func (s store) LatestFinedForDate(ctx context.Context, loanID int) (*time.Time, error) {
	q, args, err := qb.Select("max(fined_for_date)").
		From(finesTableName).
		Where(sq.Eq{"loan_id": loanID}).
		ToSql()
	if err != nil {
		return nil, err
	}
	var latest *time.Time
	if err := sqlx.GetContext(ctx, s.ext, &latest, q, args...); err != nil {
		return nil, err
	}
	return latest, nil
}

func (s store) ListFines(ctx context.Context, username string) ([]model.Fine, error) {
	q, args, err := qb.Select("id", "fine_uid", "loan_id", "username", "amount", "reason", "fined_for_date", "is_paid", "paid_at").
		From(finesTableName).
		Where(sq.Eq{"username": username}).
		OrderBy("fined_for_date desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var fines []model.Fine
	if err := sqlx.SelectContext(ctx, s.ext, &fines, q, args...); err != nil {
		return nil, err
	}
	return fines, nil
}

func (s store) MarkFinePaid(ctx context.Context, fineUid string, paidAt time.Time) (model.Fine, error) {
	q, args, err := qb.Update(finesTableName).
		Set("is_paid", true).
		Set("paid_at", sq.Expr("coalesce(paid_at, ?)", paidAt)).
		Where(sq.Eq{"fine_uid": fineUid}).
		Suffix("returning " + fineColumns).
		ToSql()
	if err != nil {
		return model.Fine{}, err
	}
	var fine model.Fine
	if err := sqlx.GetContext(ctx, s.ext, &fine, q, args...); err != nil {
		return model.Fine{}, wrapNoRows(err)
	}
	return fine, nil
}
