// Package loan implements the checkout / return / renewal workflow. Every
// operation runs as one transaction; copy status and loan rows never flip
// independently. Notifications are dispatched only after commit.
package loan

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

// WithClock overrides the service clock.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// CreateLoan checks out the copy with the given barcode. The copy must be
// AVAILABLE, or held in MAINTENANCE for this exact user by an AWAITING_PICKUP
// reservation (which is then fulfilled).
func (s *Service) CreateLoan(ctx context.Context, req model.CreateLoanRequest) (model.Loan, error) {
	var loan model.Loan
	err := s.repo.WithinTx(ctx, func(ctx context.Context, st repository.Store) error {
		if err := st.EnsureUser(ctx, req.Username, model.RoleMember); err != nil {
			return err
		}
		cp, err := st.GetCopyByBarcodeForUpdate(ctx, req.Barcode)
		if err != nil {
			return err
		}

		active, err := st.CountLoansByStatus(ctx, req.Username, model.LoanActive)
		if err != nil {
			return err
		}
		if active >= model.BorrowLimit {
			return errors.Wrapf(errs.ErrConflict, "borrowing limit %d reached", model.BorrowLimit)
		}
		overdue, err := st.CountLoansByStatus(ctx, req.Username, model.LoanOverdue)
		if err != nil {
			return err
		}
		if overdue > 0 {
			return errors.Wrap(errs.ErrConflict, "user has an overdue loan")
		}

		switch cp.Status {
		case model.CopyAvailable:
		case model.CopyMaintenance:
			// A held copy can only go to the user it is held for.
			res, err := st.AwaitingPickupForUser(ctx, req.Username, cp.ID)
			if err != nil {
				if errors.Is(err, errs.ErrNotFound) {
					return errors.Wrap(errs.ErrConflict, "copy is held for another reader")
				}
				return err
			}
			if err := st.SetReservationStatus(ctx, res.ID, model.ReservationFulfilled); err != nil {
				return err
			}
		default:
			return errors.Wrapf(errs.ErrConflict, "copy is %s", cp.Status)
		}

		if err := st.SetCopyStatus(ctx, cp.ID, model.CopyBorrowed); err != nil {
			return err
		}
		loan, err = st.CreateLoan(ctx, req.Username, cp.ID, s.now().Add(model.LoanPeriod))
		return err
	})
	if err != nil {
		return model.Loan{}, err
	}
	return loan, nil
}

// InitiateReturn moves the loan to PENDING_RETURN and parks the copy in
// MAINTENANCE until a librarian confirms it.
func (s *Service) InitiateReturn(ctx context.Context, loanUid, username string) (model.Loan, error) {
	var (
		loan   model.Loan
		events []notify.Event
	)
	err := s.repo.WithinTx(ctx, func(ctx context.Context, st repository.Store) error {
		var err error
		loan, err = st.GetLoanForUpdate(ctx, loanUid)
		if err != nil {
			return err
		}
		if loan.Username != username {
			return errors.Wrap(errs.ErrForbidden, "loan belongs to another user")
		}
		if loan.Status != model.LoanActive && loan.Status != model.LoanOverdue {
			return errors.Wrapf(errs.ErrConflict, "loan is %s", loan.Status)
		}
		if err := st.SetCopyStatus(ctx, loan.CopyID, model.CopyMaintenance); err != nil {
			return err
		}
		if err := st.SetLoanStatus(ctx, loan.ID, model.LoanPendingReturn); err != nil {
			return err
		}
		loan.Status = model.LoanPendingReturn
		events = append(events, notify.ToLibrarians(notify.KindReturnRequested,
			fmt.Sprintf("loan %s returned by %s, awaiting confirmation", loan.LoanUid, username)))
		return nil
	})
	if err != nil {
		return model.Loan{}, err
	}
	s.notifier.Notify(ctx, events...)
	return loan, nil
}

// ConfirmReturn closes the loan, then either hands the copy to the earliest
// queued reservation or frees it. Exactly one of the two outcomes holds.
func (s *Service) ConfirmReturn(ctx context.Context, loanUid string) (model.Loan, error) {
	var (
		loan   model.Loan
		events []notify.Event
	)
	err := s.repo.WithinTx(ctx, func(ctx context.Context, st repository.Store) error {
		var err error
		loan, err = st.GetLoanForUpdate(ctx, loanUid)
		if err != nil {
			return err
		}
		if loan.Status != model.LoanPendingReturn {
			return errors.Wrapf(errs.ErrConflict, "loan is %s", loan.Status)
		}
		returnedAt := s.now()
		if err := st.MarkLoanReturned(ctx, loan.ID, returnedAt); err != nil {
			return err
		}
		loan.Status = model.LoanReturned
		loan.ReturnedAt = &returnedAt

		cp, err := st.GetCopyForUpdate(ctx, loan.CopyID)
		if err != nil {
			return err
		}
		// An operator may have marked the copy LOST while the return was
		// pending; it must not be handed out or freed then.
		if cp.Status != model.CopyMaintenance {
			return nil
		}

		next, err := st.NextActiveReservationForUpdate(ctx, cp.BookID)
		switch {
		case err == nil:
			if err := st.PromoteReservation(ctx, next.ID, cp.ID, s.now().Add(model.PickupWindow)); err != nil {
				return err
			}
			// Copy stays MAINTENANCE: it is held for the promoted reader.
			events = append(events, notify.ToUser(next.Username, notify.KindPickupReady,
				fmt.Sprintf("reservation %s is ready for pickup, copy %s", next.ReservationUid, cp.Barcode)))
		case errors.Is(err, errs.ErrNotFound):
			if err := st.SetCopyStatus(ctx, cp.ID, model.CopyAvailable); err != nil {
				return err
			}
		default:
			return err
		}
		return nil
	})
	if err != nil {
		return model.Loan{}, err
	}
	s.notifier.Notify(ctx, events...)
	return loan, nil
}

// RequestRenewal flags the loan for librarian review.
func (s *Service) RequestRenewal(ctx context.Context, loanUid, username string) (model.Loan, error) {
	var (
		loan   model.Loan
		events []notify.Event
	)
	err := s.repo.WithinTx(ctx, func(ctx context.Context, st repository.Store) error {
		var err error
		loan, err = st.GetLoanForUpdate(ctx, loanUid)
		if err != nil {
			return err
		}
		if loan.Username != username {
			return errors.Wrap(errs.ErrForbidden, "loan belongs to another user")
		}
		if loan.Status != model.LoanActive || loan.RenewalRequested {
			return errors.Wrap(errs.ErrConflict, "loan not renewable")
		}
		if err := st.SetRenewalRequested(ctx, loan.ID, true); err != nil {
			return err
		}
		loan.RenewalRequested = true
		events = append(events, notify.ToLibrarians(notify.KindRenewalRequest,
			fmt.Sprintf("renewal requested for loan %s by %s", loan.LoanUid, username)))
		return nil
	})
	if err != nil {
		return model.Loan{}, err
	}
	s.notifier.Notify(ctx, events...)
	return loan, nil
}

// ApproveRenewal extends the due date by one loan period from the current due
// date, not from now.
func (s *Service) ApproveRenewal(ctx context.Context, loanUid string) (model.Loan, error) {
	var (
		loan   model.Loan
		events []notify.Event
	)
	err := s.repo.WithinTx(ctx, func(ctx context.Context, st repository.Store) error {
		var err error
		loan, err = st.GetLoanForUpdate(ctx, loanUid)
		if err != nil {
			return err
		}
		if !loan.RenewalRequested {
			return errors.Wrap(errs.ErrConflict, "no renewal requested")
		}
		newDue := loan.DueDate.Add(model.LoanPeriod)
		if err := st.SetDueDate(ctx, loan.ID, newDue); err != nil {
			return err
		}
		if err := st.SetRenewalRequested(ctx, loan.ID, false); err != nil {
			return err
		}
		loan.DueDate = newDue
		loan.RenewalRequested = false
		events = append(events, notify.ToUser(loan.Username, notify.KindRenewalApproved,
			fmt.Sprintf("loan %s renewed until %s", loan.LoanUid, newDue.Format(time.DateOnly))))
		return nil
	})
	if err != nil {
		return model.Loan{}, err
	}
	s.notifier.Notify(ctx, events...)
	return loan, nil
}

func (s *Service) RejectRenewal(ctx context.Context, loanUid string) (model.Loan, error) {
	var (
		loan   model.Loan
		events []notify.Event
	)
	err := s.repo.WithinTx(ctx, func(ctx context.Context, st repository.Store) error {
		var err error
		loan, err = st.GetLoanForUpdate(ctx, loanUid)
		if err != nil {
			return err
		}
		if !loan.RenewalRequested {
			return errors.Wrap(errs.ErrConflict, "no renewal requested")
		}
		if err := st.SetRenewalRequested(ctx, loan.ID, false); err != nil {
			return err
		}
		loan.RenewalRequested = false
		events = append(events, notify.ToUser(loan.Username, notify.KindRenewalRejected,
			fmt.Sprintf("renewal for loan %s was rejected", loan.LoanUid)))
		return nil
	})
	if err != nil {
		return model.Loan{}, err
	}
	s.notifier.Notify(ctx, events...)
	return loan, nil
}

func (s *Service) ListLoans(ctx context.Context, username string) ([]model.Loan, error) {
	return s.repo.ListLoans(ctx, username)
}

func (s *Service) ListPendingReturns(ctx context.Context) ([]model.Loan, error) {
	return s.repo.ListPendingReturns(ctx)
}
