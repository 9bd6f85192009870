package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/ostrenko/circulation-service/internal/model"
)

const loanColumns = "id, loan_uid, username, copy_id, status, borrowed_at, due_date, returned_at, renewal_requested"

func (s store) CreateLoan(ctx context.Context, username string, copyID int, dueDate time.Time) (model.Loan, error) {
	q, args, err := qb.Insert(loansTableName).
		Columns("loan_uid", "username", "copy_id", "status", "borrowed_at", "due_date").
		Values(uuid.New(), username, copyID, model.LoanActive, time.Now().UTC(), dueDate).
		Suffix("returning " + loanColumns).
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}
	var loan model.Loan
	if err := sqlx.GetContext(ctx, s.ext, &loan, q, args...); err != nil {
		s.log.Error("CreateLoan", zap.String("q", q), zap.Any("args", args))
		return model.Loan{}, err
	}
	return loan, nil
}

func (s store) getLoan(ctx context.Context, pred interface{}, forUpdate bool) (model.Loan, error) {
	q := qb.Select("id", "loan_uid", "username", "copy_id", "status", "borrowed_at", "due_date", "returned_at", "renewal_requested").
		From(loansTableName).
		Where(pred)
	if forUpdate {
		q = q.Suffix("for update")
	}
	query, args, err := q.ToSql()
	if err != nil {
		return model.Loan{}, err
	}
	var loan model.Loan
	if err := sqlx.GetContext(ctx, s.ext, &loan, query, args...); err != nil {
		return model.Loan{}, wrapNoRows(err)
	}
	return loan, nil
}

func (s store) GetLoan(ctx context.Context, loanUid string) (model.Loan, error) {
	return s.getLoan(ctx, sq.Eq{"loan_uid": loanUid}, false)
}

func (s store) GetLoanForUpdate(ctx context.Context, loanUid string) (model.Loan, error) {
	return s.getLoan(ctx, sq.Eq{"loan_uid": loanUid}, true)
}

func (s store) CountLoansByStatus(ctx context.Context, username string, statuses ...model.LoanStatus) (int, error) {
	q, args, err := qb.Select("count(*)").
		From(loansTableName).
		Where(sq.Eq{"username": username, "status": statuses}).
		ToSql()
	if err != nil {
		return 0, err
	}
	var count int
	if err := sqlx.GetContext(ctx, s.ext, &count, q, args...); err != nil {
		return 0, err
	}
	return count, nil
}

func (s store) SetLoanStatus(ctx context.Context, loanID int, status model.LoanStatus) error {
	q, args, err := qb.Update(loansTableName).
		Set("status", status).
		Where(sq.Eq{"id": loanID}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, q, args...)
	return err
}

func (s store) MarkLoanReturned(ctx context.Context, loanID int, returnedAt time.Time) error {
	q, args, err := qb.Update(loansTableName).
		Set("status", model.LoanReturned).
		Set("returned_at", returnedAt).
		Where(sq.Eq{"id": loanID}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, q, args...)
	return err
}

func (s store) SetRenewalRequested(ctx context.Context, loanID int, requested bool) error {
	q, args, err := qb.Update(loansTableName).
		Set("renewal_requested", requested).
		Where(sq.Eq{"id": loanID}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, q, args...)
	return err
}

func (s store) SetDueDate(ctx context.Context, loanID int, dueDate time.Time) error {
	q, args, err := qb.Update(loansTableName).
		Set("due_date", dueDate).
		Where(sq.Eq{"id": loanID}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, q, args...)
	return err
}

func (s store) ListLoans(ctx context.Context, username string) ([]model.Loan, error) {
	q, args, err := qb.Select("id", "loan_uid", "username", "copy_id", "status", "borrowed_at", "due_date", "returned_at", "renewal_requested").
		From(loansTableName).
		Where(sq.Eq{"username": username}).
		OrderBy("borrowed_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var loans []model.Loan
	if err := sqlx.SelectContext(ctx, s.ext, &loans, q, args...); err != nil {
		return nil, err
	}
	return loans, nil
}

func (s store) ListPendingReturns(ctx context.Context) ([]model.Loan, error) {
	q, args, err := qb.Select("id", "loan_uid", "username", "copy_id", "status", "borrowed_at", "due_date", "returned_at", "renewal_requested").
		From(loansTableName).
		Where(sq.Eq{"status": model.LoanPendingReturn}).
		OrderBy("borrowed_at").
		ToSql()
	if err != nil {
		return nil, err
	}
	var loans []model.Loan
	if err := sqlx.SelectContext(ctx, s.ext, &loans, q, args...); err != nil {
		return nil, err
	}
	return loans, nil
}

// ListOverdueCandidates returns loan uids with due_date before today and a
// live status. Each uid is then processed in its own transaction.
func (s store) ListOverdueCandidates(ctx context.Context, today time.Time) ([]string, error) {
	q, args, err := qb.Select("loan_uid").
		From(loansTableName).
		Where(sq.Lt{"due_date": today}).
		Where(sq.Eq{"status": []model.LoanStatus{model.LoanActive, model.LoanOverdue}}).
		OrderBy("due_date").
		ToSql()
	if err != nil {
		return nil, err
	}
	var uids []string
	if err := sqlx.SelectContext(ctx, s.ext, &uids, q, args...); err != nil {
		return nil, err
	}
	return uids, nil
}
