// Package reservation implements the per-title FIFO queue: reserve, cancel
// and the hourly pickup-window expiry sweep. Promotion always takes the
// ACTIVE reservation with the smallest reservedAt.
package reservation

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ostrenko/circulation-service/internal/errs"
	"github.com/ostrenko/circulation-service/internal/model"
	"github.com/ostrenko/circulation-service/internal/notify"
	"github.com/ostrenko/circulation-service/internal/repository"
)

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	notifier notify.Notifier
	now      func() time.Time
}

func NewService(repo repository.Repository, notifier notify.Notifier, log *zap.Logger) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Reserve claims a title. With an AVAILABLE copy the reservation starts in
// AWAITING_PICKUP and the copy is held; otherwise it queues as ACTIVE.
func (s *Service) Reserve(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error) {
	var (
		res    model.Reservation
		events []notify.Event
	)
	err := s.repo.WithinTx(ctx, func(ctx context.Context, st repository.Store) error {
		if err := st.EnsureUser(ctx, req.Username, model.RoleMember); err != nil {
			return err
		}
		book, err := st.GetBook(ctx, req.BookUid)
		if err != nil {
			return err
		}
		live, err := st.HasLiveReservation(ctx, req.Username, book.ID)
		if err != nil {
			return err
		}
		if live {
			return errors.Wrap(errs.ErrConflict, "user already has a live reservation for this book")
		}

		cp, err := st.FindAvailableCopyForUpdate(ctx, book.ID)
		switch {
		case err == nil:
			// Hold the copy for the pickup window.
			if err := st.SetCopyStatus(ctx, cp.ID, model.CopyMaintenance); err != nil {
				return err
			}
			expiresAt := s.now().Add(model.PickupWindow)
			res, err = st.CreateReservation(ctx, req.Username, book.ID, model.ReservationAwaitingPickup, &cp.ID, &expiresAt)
			if err != nil {
				return err
			}
			events = append(events, notify.ToUser(req.Username, notify.KindPickupReady,
				fmt.Sprintf("copy %s of %q is held for you until %s", cp.Barcode, book.Title, expiresAt.Format(time.RFC3339))))
		case errors.Is(err, errs.ErrNotFound):
			res, err = st.CreateReservation(ctx, req.Username, book.ID, model.ReservationActive, nil, nil)
			if err != nil {
				return err
			}
		default:
			return err
		}
		return nil
	})
	if err != nil {
		return model.Reservation{}, err
	}
	s.notifier.Notify(ctx, events...)
	return res, nil
}

// Cancel deletes a reservation. Allowed for the owner or a librarian. A
// cancelled hold passes its copy to the next queued reader, or frees it.
func (s *Service) Cancel(ctx context.Context, reservationUid, requestor string, role model.Role) error {
	var events []notify.Event
	err := s.repo.WithinTx(ctx, func(ctx context.Context, st repository.Store) error {
		res, err := st.GetReservationForUpdate(ctx, reservationUid)
		if err != nil {
			return err
		}
		if res.Username != requestor && role != model.RoleLibrarian {
			return errors.Wrap(errs.ErrForbidden, "not the reservation owner")
		}
		if err := st.DeleteReservation(ctx, res.ID); err != nil {
			return err
		}
		if res.Status == model.ReservationAwaitingPickup && res.AssignedCopyID != nil {
			return s.promoteOrFree(ctx, st, res.BookID, *res.AssignedCopyID, &events)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.notifier.Notify(ctx, events...)
	return nil
}

// ExpirySweep expires every lapsed pickup hold. One transaction per
// reservation: a failure on one hold neither rolls back nor blocks the rest.
func (s *Service) ExpirySweep(ctx context.Context) {
	now := s.now()
	uids, err := s.repo.ListExpiredAwaitingPickup(ctx, now)
	if err != nil {
		s.log.Error("expiry sweep: list candidates", zap.Error(err))
		return
	}
	for _, uid := range uids {
		var events []notify.Event
		err := s.repo.WithinTx(ctx, func(ctx context.Context, st repository.Store) error {
			res, err := st.GetReservationForUpdate(ctx, uid)
			if err != nil {
				return err
			}
			// Re-check under lock: the hold may have been fulfilled or
			// cancelled since the candidate scan.
			if res.Status != model.ReservationAwaitingPickup ||
				res.ExpiresAt == nil || !res.ExpiresAt.Before(now) {
				return nil
			}
			if err := st.SetReservationStatus(ctx, res.ID, model.ReservationExpired); err != nil {
				return err
			}
			events = append(events, notify.ToUser(res.Username, notify.KindPickupExpired,
				fmt.Sprintf("reservation %s expired, the hold was released", res.ReservationUid)))
			if res.AssignedCopyID != nil {
				return s.promoteOrFree(ctx, st, res.BookID, *res.AssignedCopyID, &events)
			}
			return nil
		})
		if err != nil {
			s.log.Error("expiry sweep: reservation", zap.String("reservationUid", uid), zap.Error(err))
			continue
		}
		s.notifier.Notify(ctx, events...)
	}
}

// promoteOrFree passes the copy to the earliest ACTIVE reservation for the
// book, or marks it AVAILABLE when the queue is empty. The copy is re-read
// under lock first: an operator may have marked it LOST while it was held,
// and such a copy must not re-enter circulation.
func (s *Service) promoteOrFree(ctx context.Context, st repository.Store, bookID, copyID int, events *[]notify.Event) error {
	cp, err := st.GetCopyForUpdate(ctx, copyID)
	if err != nil {
		return err
	}
	if cp.Status != model.CopyMaintenance {
		return nil
	}
	next, err := st.NextActiveReservationForUpdate(ctx, bookID)
	switch {
	case err == nil:
		if err := st.PromoteReservation(ctx, next.ID, copyID, s.now().Add(model.PickupWindow)); err != nil {
			return err
		}
		*events = append(*events, notify.ToUser(next.Username, notify.KindPickupReady,
			fmt.Sprintf("reservation %s is ready for pickup", next.ReservationUid)))
		return nil
	case errors.Is(err, errs.ErrNotFound):
		return st.SetCopyStatus(ctx, copyID, model.CopyAvailable)
	default:
		return err
	}
}

func (s *Service) ListReservations(ctx context.Context, username string) ([]model.Reservation, error) {
	return s.repo.ListReservations(ctx, username)
}
