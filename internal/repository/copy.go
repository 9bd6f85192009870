package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/ostrenko/circulation-service/internal/model"
)

const copyColumns = "id, barcode, book_id, status"

func (s store) CreateCopy(ctx context.Context, bookID int, barcode string) (model.BookCopy, error) {
	q, args, err := qb.Insert(bookCopiesTableName).
		Columns("barcode", "book_id", "status").
		Values(barcode, bookID, model.CopyAvailable).
		Suffix("returning " + copyColumns).
		ToSql()
	if err != nil {
		return model.BookCopy{}, err
	}
	var cp model.BookCopy
	if err := sqlx.GetContext(ctx, s.ext, &cp, q, args...); err != nil {
		s.log.Error("CreateCopy", zap.String("q", q), zap.Any("args", args))
		return model.BookCopy{}, err
	}
	return cp, nil
}

func (s store) getCopy(ctx context.Context, pred interface{}, forUpdate bool) (model.BookCopy, error) {
	q := qb.Select("id", "barcode", "book_id", "status").
		From(bookCopiesTableName).
		Where(pred)
	if forUpdate {
		q = q.Suffix("for update")
	}
	query, args, err := q.ToSql()
	if err != nil {
		return model.BookCopy{}, err
	}
	var cp model.BookCopy
	if err := sqlx.GetContext(ctx, s.ext, &cp, query, args...); err != nil {
		return model.BookCopy{}, wrapNoRows(err)
	}
	return cp, nil
}

func (s store) GetCopyByBarcode(ctx context.Context, barcode string) (model.BookCopy, error) {
	return s.getCopy(ctx, sq.Eq{"barcode": barcode}, false)
}

func (s store) GetCopyByBarcodeForUpdate(ctx context.Context, barcode string) (model.BookCopy, error) {
	return s.getCopy(ctx, sq.Eq{"barcode": barcode}, true)
}

func (s store) GetCopyForUpdate(ctx context.Context, copyID int) (model.BookCopy, error) {
	return s.getCopy(ctx, sq.Eq{"id": copyID}, true)
}

// FindAvailableCopyForUpdate locks one AVAILABLE copy of the book. SKIP LOCKED
// keeps two concurrent reservers from contending for the same row.
func (s store) FindAvailableCopyForUpdate(ctx context.Context, bookID int) (model.BookCopy, error) {
	query, args, err := qb.Select("id", "barcode", "book_id", "status").
		From(bookCopiesTableName).
		Where(sq.Eq{"book_id": bookID, "status": model.CopyAvailable}).
		OrderBy("id").
		Limit(1).
		Suffix("for update skip locked").
		ToSql()
	if err != nil {
		return model.BookCopy{}, err
	}
	var cp model.BookCopy
	if err := sqlx.GetContext(ctx, s.ext, &cp, query, args...); err != nil {
		return model.BookCopy{}, wrapNoRows(err)
	}
	return cp, nil
}

func (s store) SetCopyStatus(ctx context.Context, copyID int, status model.CopyStatus) error {
	q, args, err := qb.Update(bookCopiesTableName).
		Set("status", status).
		Where(sq.Eq{"id": copyID}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, q, args...)
	return err
}

func (s store) ListCopies(ctx context.Context, bookID int) ([]model.BookCopy, error) {
	q, args, err := qb.Select("id", "barcode", "book_id", "status").
		From(bookCopiesTableName).
		Where(sq.Eq{"book_id": bookID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	var copies []model.BookCopy
	if err := sqlx.SelectContext(ctx, s.ext, &copies, q, args...); err != nil {
		return nil, err
	}
	return copies, nil
}

func (s store) DeleteCopy(ctx context.Context, copyID int) error {
	q, args, err := qb.Delete(bookCopiesTableName).
		Where(sq.Eq{"id": copyID}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, q, args...)
	return err
}

func (s store) DeleteLoansByCopy(ctx context.Context, copyID int) error {
	q, args, err := qb.Delete(loansTableName).
		Where(sq.Eq{"copy_id": copyID}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, q, args...)
	return err
}

func (s store) DeleteFinesByCopy(ctx context.Context, copyID int) error {
	q := `delete from fines where loan_id in (select id from loans where copy_id = $1)`
	_, err := s.ext.ExecContext(ctx, q, copyID)
	return err
}

// DetachReservationsFromCopy clears assigned_copy_id on terminal reservations
// that still point at the copy, so the copy row can go away.
func (s store) DetachReservationsFromCopy(ctx context.Context, copyID int) error {
	q, args, err := qb.Update(reservationsTableName).
		Set("assigned_copy_id", nil).
		Where(sq.Eq{"assigned_copy_id": copyID}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, q, args...)
	return err
}
