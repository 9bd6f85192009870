package loan_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ostrenko/circulation-service/internal/errs"
	"github.com/ostrenko/circulation-service/internal/model"
	"github.com/ostrenko/circulation-service/internal/notify"
	"github.com/ostrenko/circulation-service/internal/repository"
	mock_repository "github.com/ostrenko/circulation-service/internal/repository/mocks"
	"github.com/ostrenko/circulation-service/internal/service/loan"
)

type captureNotifier struct {
	mu     sync.Mutex
	events []notify.Event
}

func (n *captureNotifier) Notify(_ context.Context, events ...notify.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, events...)
}

func newService(t *testing.T, now time.Time) (*loan.Service, *mock_repository.MockRepository, *mock_repository.MockStore, *captureNotifier) {
	t.Helper()
	c := gomock.NewController(t)
	repo := mock_repository.NewMockRepository(c)
	st := mock_repository.NewMockStore(c)
	notifier := &captureNotifier{}
	svc := loan.NewService(repo, notifier, zap.NewNop()).
		WithClock(func() time.Time { return now })

	repo.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, repository.Store) error) error {
			return fn(ctx, st)
		}).
		AnyTimes()
	return svc, repo, st, notifier
}

func TestService_CreateLoan(t *testing.T) {
	t.Parallel()
	var (
		ctx = context.Background()
		now = time.Date(2026, 1, 6, 12, 0, 0, 0, time.UTC)
		req = model.CreateLoanRequest{Barcode: "BC-1A2B3C4D", Username: "reader"}
	)

	t.Run("available copy is checked out for two weeks", func(t *testing.T) {
		t.Parallel()
		svc, _, st, _ := newService(t, now)
		cp := model.BookCopy{ID: 3, Barcode: req.Barcode, BookID: 1, Status: model.CopyAvailable}

		st.EXPECT().EnsureUser(ctx, "reader", model.RoleMember).Return(nil)
		st.EXPECT().GetCopyByBarcodeForUpdate(ctx, req.Barcode).Return(cp, nil)
		st.EXPECT().CountLoansByStatus(ctx, "reader", model.LoanActive).Return(1, nil)
		st.EXPECT().CountLoansByStatus(ctx, "reader", model.LoanOverdue).Return(0, nil)
		st.EXPECT().SetCopyStatus(ctx, cp.ID, model.CopyBorrowed).Return(nil)
		st.EXPECT().CreateLoan(ctx, "reader", cp.ID, now.Add(model.LoanPeriod)).
			Return(model.Loan{LoanUid: "l1", Username: "reader", Status: model.LoanActive}, nil)

		got, err := svc.CreateLoan(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "l1", got.LoanUid)
	})

	t.Run("borrowing limit reached", func(t *testing.T) {
		t.Parallel()
		svc, _, st, _ := newService(t, now)
		cp := model.BookCopy{ID: 3, Barcode: req.Barcode, Status: model.CopyAvailable}

		st.EXPECT().EnsureUser(ctx, "reader", model.RoleMember).Return(nil)
		st.EXPECT().GetCopyByBarcodeForUpdate(ctx, req.Barcode).Return(cp, nil)
		st.EXPECT().CountLoansByStatus(ctx, "reader", model.LoanActive).Return(model.BorrowLimit, nil)

		_, err := svc.CreateLoan(ctx, req)
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("overdue loan blocks new checkouts", func(t *testing.T) {
		t.Parallel()
		svc, _, st, _ := newService(t, now)
		cp := model.BookCopy{ID: 3, Barcode: req.Barcode, Status: model.CopyAvailable}

		st.EXPECT().EnsureUser(ctx, "reader", model.RoleMember).Return(nil)
		st.EXPECT().GetCopyByBarcodeForUpdate(ctx, req.Barcode).Return(cp, nil)
		st.EXPECT().CountLoansByStatus(ctx, "reader", model.LoanActive).Return(0, nil)
		st.EXPECT().CountLoansByStatus(ctx, "reader", model.LoanOverdue).Return(1, nil)

		_, err := svc.CreateLoan(ctx, req)
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("held copy goes to its reservation owner and fulfills the hold", func(t *testing.T) {
		t.Parallel()
		svc, _, st, _ := newService(t, now)
		cp := model.BookCopy{ID: 3, Barcode: req.Barcode, Status: model.CopyMaintenance}
		res := model.Reservation{ID: 5, Username: "reader", Status: model.ReservationAwaitingPickup}

		st.EXPECT().EnsureUser(ctx, "reader", model.RoleMember).Return(nil)
		st.EXPECT().GetCopyByBarcodeForUpdate(ctx, req.Barcode).Return(cp, nil)
		st.EXPECT().CountLoansByStatus(ctx, "reader", model.LoanActive).Return(0, nil)
		st.EXPECT().CountLoansByStatus(ctx, "reader", model.LoanOverdue).Return(0, nil)
		st.EXPECT().AwaitingPickupForUser(ctx, "reader", cp.ID).Return(res, nil)
		st.EXPECT().SetReservationStatus(ctx, res.ID, model.ReservationFulfilled).Return(nil)
		st.EXPECT().SetCopyStatus(ctx, cp.ID, model.CopyBorrowed).Return(nil)
		st.EXPECT().CreateLoan(ctx, "reader", cp.ID, now.Add(model.LoanPeriod)).
			Return(model.Loan{LoanUid: "l2"}, nil)

		got, err := svc.CreateLoan(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "l2", got.LoanUid)
	})

	t.Run("copy held for another reader is a conflict", func(t *testing.T) {
		t.Parallel()
		svc, _, st, _ := newService(t, now)
		cp := model.BookCopy{ID: 3, Barcode: req.Barcode, Status: model.CopyMaintenance}

		st.EXPECT().EnsureUser(ctx, "reader", model.RoleMember).Return(nil)
		st.EXPECT().GetCopyByBarcodeForUpdate(ctx, req.Barcode).Return(cp, nil)
		st.EXPECT().CountLoansByStatus(ctx, "reader", model.LoanActive).Return(0, nil)
		st.EXPECT().CountLoansByStatus(ctx, "reader", model.LoanOverdue).Return(0, nil)
		st.EXPECT().AwaitingPickupForUser(ctx, "reader", cp.ID).
			Return(model.Reservation{}, errors.Wrap(errs.ErrNotFound, "reservation"))

		_, err := svc.CreateLoan(ctx, req)
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("borrowed copy is a conflict", func(t *testing.T) {
		t.Parallel()
		svc, _, st, _ := newService(t, now)
		cp := model.BookCopy{ID: 3, Barcode: req.Barcode, Status: model.CopyBorrowed}

		st.EXPECT().EnsureUser(ctx, "reader", model.RoleMember).Return(nil)
		st.EXPECT().GetCopyByBarcodeForUpdate(ctx, req.Barcode).Return(cp, nil)
		st.EXPECT().CountLoansByStatus(ctx, "reader", model.LoanActive).Return(0, nil)
		st.EXPECT().CountLoansByStatus(ctx, "reader", model.LoanOverdue).Return(0, nil)

		_, err := svc.CreateLoan(ctx, req)
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("unknown barcode", func(t *testing.T) {
		t.Parallel()
		svc, _, st, _ := newService(t, now)

		st.EXPECT().EnsureUser(ctx, "reader", model.RoleMember).Return(nil)
		st.EXPECT().GetCopyByBarcodeForUpdate(ctx, req.Barcode).
			Return(model.BookCopy{}, errors.Wrap(errs.ErrNotFound, "copy"))

		_, err := svc.CreateLoan(ctx, req)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestService_InitiateReturn(t *testing.T) {
	t.Parallel()
	var (
		ctx = context.Background()
		now = time.Date(2026, 1, 20, 12, 0, 0, 0, time.UTC)
	)

	t.Run("active loan goes to pending return and librarians are notified", func(t *testing.T) {
		t.Parallel()
		svc, _, st, notifier := newService(t, now)
		ln := model.Loan{ID: 7, LoanUid: "l1", Username: "reader", CopyID: 3, Status: model.LoanActive}

		st.EXPECT().GetLoanForUpdate(ctx, "l1").Return(ln, nil)
		st.EXPECT().SetCopyStatus(ctx, ln.CopyID, model.CopyMaintenance).Return(nil)
		st.EXPECT().SetLoanStatus(ctx, ln.ID, model.LoanPendingReturn).Return(nil)

		got, err := svc.InitiateReturn(ctx, "l1", "reader")
		require.NoError(t, err)
		assert.Equal(t, model.LoanPendingReturn, got.Status)
		require.Len(t, notifier.events, 1)
		assert.Equal(t, notify.KindReturnRequested, notifier.events[0].Kind)
		assert.Equal(t, model.RoleLibrarian, notifier.events[0].Role)
	})

	t.Run("someone else's loan is forbidden", func(t *testing.T) {
		t.Parallel()
		svc, _, st, notifier := newService(t, now)
		ln := model.Loan{ID: 7, LoanUid: "l1", Username: "reader", Status: model.LoanActive}

		st.EXPECT().GetLoanForUpdate(ctx, "l1").Return(ln, nil)

		_, err := svc.InitiateReturn(ctx, "l1", "intruder")
		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Empty(t, notifier.events)
	})

	t.Run("already pending return is a conflict", func(t *testing.T) {
		t.Parallel()
		svc, _, st, _ := newService(t, now)
		ln := model.Loan{ID: 7, LoanUid: "l1", Username: "reader", Status: model.LoanPendingReturn}

		st.EXPECT().GetLoanForUpdate(ctx, "l1").Return(ln, nil)

		_, err := svc.InitiateReturn(ctx, "l1", "reader")
		require.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestService_ConfirmReturn(t *testing.T) {
	t.Parallel()
	var (
		ctx = context.Background()
		now = time.Date(2026, 1, 20, 12, 0, 0, 0, time.UTC)
	)

	t.Run("empty queue frees the copy", func(t *testing.T) {
		t.Parallel()
		svc, _, st, notifier := newService(t, now)
		ln := model.Loan{ID: 7, LoanUid: "l1", Username: "reader", CopyID: 3, Status: model.LoanPendingReturn}
		cp := model.BookCopy{ID: 3, BookID: 1, Barcode: "BC-1A2B3C4D", Status: model.CopyMaintenance}

		st.EXPECT().GetLoanForUpdate(ctx, "l1").Return(ln, nil)
		st.EXPECT().MarkLoanReturned(ctx, ln.ID, now).Return(nil)
		st.EXPECT().GetCopyForUpdate(ctx, cp.ID).Return(cp, nil)
		st.EXPECT().NextActiveReservationForUpdate(ctx, cp.BookID).
			Return(model.Reservation{}, errors.Wrap(errs.ErrNotFound, "reservation"))
		st.EXPECT().SetCopyStatus(ctx, cp.ID, model.CopyAvailable).Return(nil)

		got, err := svc.ConfirmReturn(ctx, "l1")
		require.NoError(t, err)
		assert.Equal(t, model.LoanReturned, got.Status)
		require.NotNil(t, got.ReturnedAt)
		assert.Equal(t, now, *got.ReturnedAt)
		assert.Empty(t, notifier.events)
	})

	t.Run("queued reservation is promoted and keeps the copy held", func(t *testing.T) {
		t.Parallel()
		svc, _, st, notifier := newService(t, now)
		ln := model.Loan{ID: 7, LoanUid: "l1", Username: "reader", CopyID: 3, Status: model.LoanPendingReturn}
		cp := model.BookCopy{ID: 3, BookID: 1, Barcode: "BC-1A2B3C4D", Status: model.CopyMaintenance}
		next := model.Reservation{ID: 9, ReservationUid: "r1", Username: "waiting", BookID: 1, Status: model.ReservationActive}

		st.EXPECT().GetLoanForUpdate(ctx, "l1").Return(ln, nil)
		st.EXPECT().MarkLoanReturned(ctx, ln.ID, now).Return(nil)
		st.EXPECT().GetCopyForUpdate(ctx, cp.ID).Return(cp, nil)
		st.EXPECT().NextActiveReservationForUpdate(ctx, cp.BookID).Return(next, nil)
		st.EXPECT().PromoteReservation(ctx, next.ID, cp.ID, now.Add(model.PickupWindow)).Return(nil)

		_, err := svc.ConfirmReturn(ctx, "l1")
		require.NoError(t, err)
		require.Len(t, notifier.events, 1)
		assert.Equal(t, notify.KindPickupReady, notifier.events[0].Kind)
		assert.Equal(t, "waiting", notifier.events[0].Recipient)
	})

	t.Run("lost copy closes the loan without re-entering circulation", func(t *testing.T) {
		t.Parallel()
		svc, _, st, notifier := newService(t, now)
		ln := model.Loan{ID: 7, LoanUid: "l1", Username: "reader", CopyID: 3, Status: model.LoanPendingReturn}
		cp := model.BookCopy{ID: 3, BookID: 1, Barcode: "BC-1A2B3C4D", Status: model.CopyLost}

		st.EXPECT().GetLoanForUpdate(ctx, "l1").Return(ln, nil)
		st.EXPECT().MarkLoanReturned(ctx, ln.ID, now).Return(nil)
		st.EXPECT().GetCopyForUpdate(ctx, cp.ID).Return(cp, nil)

		got, err := svc.ConfirmReturn(ctx, "l1")
		require.NoError(t, err)
		assert.Equal(t, model.LoanReturned, got.Status)
		assert.Empty(t, notifier.events)
	})

	t.Run("loan not pending return is a conflict", func(t *testing.T) {
		t.Parallel()
		svc, _, st, _ := newService(t, now)
		ln := model.Loan{ID: 7, LoanUid: "l1", Status: model.LoanActive}

		st.EXPECT().GetLoanForUpdate(ctx, "l1").Return(ln, nil)

		_, err := svc.ConfirmReturn(ctx, "l1")
		require.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestService_Renewal(t *testing.T) {
	t.Parallel()
	var (
		ctx = context.Background()
		now = time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
		due = time.Date(2026, 1, 14, 12, 0, 0, 0, time.UTC)
	)

	t.Run("request flags the loan once", func(t *testing.T) {
		t.Parallel()
		svc, _, st, notifier := newService(t, now)
		ln := model.Loan{ID: 7, LoanUid: "l1", Username: "reader", Status: model.LoanActive, DueDate: due}

		st.EXPECT().GetLoanForUpdate(ctx, "l1").Return(ln, nil)
		st.EXPECT().SetRenewalRequested(ctx, ln.ID, true).Return(nil)

		got, err := svc.RequestRenewal(ctx, "l1", "reader")
		require.NoError(t, err)
		assert.True(t, got.RenewalRequested)
		require.Len(t, notifier.events, 1)
		assert.Equal(t, notify.KindRenewalRequest, notifier.events[0].Kind)
	})

	t.Run("second request is a conflict", func(t *testing.T) {
		t.Parallel()
		svc, _, st, _ := newService(t, now)
		ln := model.Loan{ID: 7, LoanUid: "l1", Username: "reader", Status: model.LoanActive, RenewalRequested: true}

		st.EXPECT().GetLoanForUpdate(ctx, "l1").Return(ln, nil)

		_, err := svc.RequestRenewal(ctx, "l1", "reader")
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("approve extends from the current due date", func(t *testing.T) {
		t.Parallel()
		svc, _, st, notifier := newService(t, now)
		ln := model.Loan{ID: 7, LoanUid: "l1", Username: "reader", Status: model.LoanActive, DueDate: due, RenewalRequested: true}

		st.EXPECT().GetLoanForUpdate(ctx, "l1").Return(ln, nil)
		st.EXPECT().SetDueDate(ctx, ln.ID, due.Add(model.LoanPeriod)).Return(nil)
		st.EXPECT().SetRenewalRequested(ctx, ln.ID, false).Return(nil)

		got, err := svc.ApproveRenewal(ctx, "l1")
		require.NoError(t, err)
		assert.Equal(t, due.Add(model.LoanPeriod), got.DueDate)
		assert.False(t, got.RenewalRequested)
		require.Len(t, notifier.events, 1)
		assert.Equal(t, notify.KindRenewalApproved, notifier.events[0].Kind)
	})

	t.Run("approve without a request is a conflict", func(t *testing.T) {
		t.Parallel()
		svc, _, st, _ := newService(t, now)
		ln := model.Loan{ID: 7, LoanUid: "l1", Status: model.LoanActive, DueDate: due}

		st.EXPECT().GetLoanForUpdate(ctx, "l1").Return(ln, nil)

		_, err := svc.ApproveRenewal(ctx, "l1")
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("reject clears the flag and keeps the due date", func(t *testing.T) {
		t.Parallel()
		svc, _, st, notifier := newService(t, now)
		ln := model.Loan{ID: 7, LoanUid: "l1", Username: "reader", Status: model.LoanActive, DueDate: due, RenewalRequested: true}

		st.EXPECT().GetLoanForUpdate(ctx, "l1").Return(ln, nil)
		st.EXPECT().SetRenewalRequested(ctx, ln.ID, false).Return(nil)

		got, err := svc.RejectRenewal(ctx, "l1")
		require.NoError(t, err)
		assert.Equal(t, due, got.DueDate)
		assert.False(t, got.RenewalRequested)
		require.Len(t, notifier.events, 1)
		assert.Equal(t, notify.KindRenewalRejected, notifier.events[0].Kind)
	})
}
