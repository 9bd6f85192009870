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

func (s store) CreateReservation(ctx context.Context, username string, bookID int, status model.ReservationStatus, assignedCopyID *int, expiresAt *time.Time) (model.Reservation, error) {
	q, args, err := qb.Insert(reservationsTableName).
		Columns("reservation_uid", "username", "book_id", "status", "assigned_copy_id", "reserved_at", "expires_at").
		Values(uuid.New(), username, bookID, status, assignedCopyID, time.Now().UTC(), expiresAt).
		Suffix("returning id, reservation_uid, username, book_id, status, assigned_copy_id, reserved_at, expires_at").
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	var res model.Reservation
	if err := sqlx.GetContext(ctx, s.ext, &res, q, args...); err != nil {
		s.log.Error("CreateReservation", zap.String("q", q), zap.Any("args", args))
		return model.Reservation{}, err
	}
	return res, nil
}

func (s store) getReservation(ctx context.Context, pred interface{}, forUpdate bool) (model.Reservation, error) {
	q := qb.Select("id", "reservation_uid", "username", "book_id", "status", "assigned_copy_id", "reserved_at", "expires_at").
		From(reservationsTableName).
		Where(pred)
	if forUpdate {
		q = q.Suffix("for update")
	}
	query, args, err := q.ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	var res model.Reservation
	if err := sqlx.GetContext(ctx, s.ext, &res, query, args...); err != nil {
		return model.Reservation{}, wrapNoRows(err)
	}
	return res, nil
}

func (s store) GetReservation(ctx context.Context, reservationUid string) (model.Reservation, error) {
	return s.getReservation(ctx, sq.Eq{"reservation_uid": reservationUid}, false)
}

func (s store) GetReservationForUpdate(ctx context.Context, reservationUid string) (model.Reservation, error) {
	return s.getReservation(ctx, sq.Eq{"reservation_uid": reservationUid}, true)
}

func (s store) HasLiveReservation(ctx context.Context, username string, bookID int) (bool, error) {
	q, args, err := qb.Select("count(*)").
		From(reservationsTableName).
		Where(sq.Eq{
			"username": username,
			"book_id":  bookID,
			"status":   []model.ReservationStatus{model.ReservationActive, model.ReservationAwaitingPickup},
		}).
		ToSql()
	if err != nil {
		return false, err
	}
	var count int
	if err := sqlx.GetContext(ctx, s.ext, &count, q, args...); err != nil {
		return false, err
	}
	return count > 0, nil
}

// NextActiveReservationForUpdate locks the queue head for the book. Plain FOR
// UPDATE, not SKIP LOCKED: promotion must stay strictly FIFO, so a second
// promoter waits rather than skipping to the next row.
func (s store) NextActiveReservationForUpdate(ctx context.Context, bookID int) (model.Reservation, error) {
	query, args, err := qb.Select("id", "reservation_uid", "username", "book_id", "status", "assigned_copy_id", "reserved_at", "expires_at").
		From(reservationsTableName).
		Where(sq.Eq{"book_id": bookID, "status": model.ReservationActive}).
		OrderBy("reserved_at").
		Limit(1).
		Suffix("for update").
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	var res model.Reservation
	if err := sqlx.GetContext(ctx, s.ext, &res, query, args...); err != nil {
		return model.Reservation{}, wrapNoRows(err)
	}
	return res, nil
}

func (s store) AwaitingPickupForUser(ctx context.Context, username string, copyID int) (model.Reservation, error) {
	return s.getReservation(ctx, sq.Eq{
		"username":         username,
		"assigned_copy_id": copyID,
		"status":           model.ReservationAwaitingPickup,
	}, true)
}

func (s store) PromoteReservation(ctx context.Context, reservationID, copyID int, expiresAt time.Time) error {
	q, args, err := qb.Update(reservationsTableName).
		Set("status", model.ReservationAwaitingPickup).
		Set("assigned_copy_id", copyID).
		Set("expires_at", expiresAt).
		Where(sq.Eq{"id": reservationID}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, q, args...)
	return err
}

func (s store) SetReservationStatus(ctx context.Context, reservationID int, status model.ReservationStatus) error {
	q, args, err := qb.Update(reservationsTableName).
		Set("status", status).
		Where(sq.Eq{"id": reservationID}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, q, args...)
	return err
}

func (s store) DeleteReservation(ctx context.Context, reservationID int) error {
	q, args, err := qb.Delete(reservationsTableName).
		Where(sq.Eq{"id": reservationID}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, q, args...)
	return err
}

func (s store) ListReservations(ctx context.Context, username string) ([]model.Reservation, error) {
	q, args, err := qb.Select("id", "reservation_uid", "username", "book_id", "status", "assigned_copy_id", "reserved_at", "expires_at").
		From(reservationsTableName).
		Where(sq.Eq{"username": username}).
		OrderBy("reserved_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Reservation
	if err := sqlx.SelectContext(ctx, s.ext, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// ListExpiredAwaitingPickup returns uids of holds whose pickup window lapsed.
// The sweep re-reads each row under lock in its own transaction.
func (s store) ListExpiredAwaitingPickup(ctx context.Context, now time.Time) ([]string, error) {
	q, args, err := qb.Select("reservation_uid").
		From(reservationsTableName).
		Where(sq.Eq{"status": model.ReservationAwaitingPickup}).
		Where(sq.Lt{"expires_at": now}).
		OrderBy("expires_at").
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
