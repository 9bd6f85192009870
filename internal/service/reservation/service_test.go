package reservation_test

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
	"github.com/ostrenko/circulation-service/internal/service/reservation"
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

func newService(t *testing.T, now time.Time) (*reservation.Service, *mock_repository.MockRepository, *mock_repository.MockStore, *captureNotifier) {
	t.Helper()
	c := gomock.NewController(t)
	repo := mock_repository.NewMockRepository(c)
	st := mock_repository.NewMockStore(c)
	notifier := &captureNotifier{}
	svc := reservation.NewService(repo, notifier, zap.NewNop()).
		WithClock(func() time.Time { return now })

	repo.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, repository.Store) error) error {
			return fn(ctx, st)
		}).
		AnyTimes()
	return svc, repo, st, notifier
}

func TestService_Reserve(t *testing.T) {
	t.Parallel()
	var (
		ctx  = context.Background()
		now  = time.Date(2026, 1, 6, 12, 0, 0, 0, time.UTC)
		req  = model.CreateReservationRequest{BookUid: "b9f6fa0a-0000-4000-8000-000000000001", Username: "reader"}
		book = model.Book{ID: 1, BookUid: req.BookUid, Title: "The Go Programming Language"}
	)

	t.Run("available copy becomes an immediate hold", func(t *testing.T) {
		t.Parallel()
		svc, _, st, notifier := newService(t, now)
		cp := model.BookCopy{ID: 3, BookID: book.ID, Barcode: "BC-1A2B3C4D", Status: model.CopyAvailable}
		expiresAt := now.Add(model.PickupWindow)

		st.EXPECT().EnsureUser(ctx, "reader", model.RoleMember).Return(nil)
		st.EXPECT().GetBook(ctx, req.BookUid).Return(book, nil)
		st.EXPECT().HasLiveReservation(ctx, "reader", book.ID).Return(false, nil)
		st.EXPECT().FindAvailableCopyForUpdate(ctx, book.ID).Return(cp, nil)
		st.EXPECT().SetCopyStatus(ctx, cp.ID, model.CopyMaintenance).Return(nil)
		st.EXPECT().
			CreateReservation(ctx, "reader", book.ID, model.ReservationAwaitingPickup, &cp.ID, &expiresAt).
			Return(model.Reservation{
				ReservationUid: "r1",
				Username:       "reader",
				Status:         model.ReservationAwaitingPickup,
				AssignedCopyID: &cp.ID,
				ExpiresAt:      &expiresAt,
			}, nil)

		got, err := svc.Reserve(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, model.ReservationAwaitingPickup, got.Status)
		require.Len(t, notifier.events, 1)
		assert.Equal(t, notify.KindPickupReady, notifier.events[0].Kind)
		assert.Equal(t, "reader", notifier.events[0].Recipient)
	})

	t.Run("no copy available queues the reservation", func(t *testing.T) {
		t.Parallel()
		svc, _, st, notifier := newService(t, now)

		st.EXPECT().EnsureUser(ctx, "reader", model.RoleMember).Return(nil)
		st.EXPECT().GetBook(ctx, req.BookUid).Return(book, nil)
		st.EXPECT().HasLiveReservation(ctx, "reader", book.ID).Return(false, nil)
		st.EXPECT().FindAvailableCopyForUpdate(ctx, book.ID).
			Return(model.BookCopy{}, errors.Wrap(errs.ErrNotFound, "copy"))
		st.EXPECT().
			CreateReservation(ctx, "reader", book.ID, model.ReservationActive, nil, nil).
			Return(model.Reservation{ReservationUid: "r2", Status: model.ReservationActive}, nil)

		got, err := svc.Reserve(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, model.ReservationActive, got.Status)
		assert.Empty(t, notifier.events)
	})

	t.Run("second live reservation for the same book is a conflict", func(t *testing.T) {
		t.Parallel()
		svc, _, st, _ := newService(t, now)

		st.EXPECT().EnsureUser(ctx, "reader", model.RoleMember).Return(nil)
		st.EXPECT().GetBook(ctx, req.BookUid).Return(book, nil)
		st.EXPECT().HasLiveReservation(ctx, "reader", book.ID).Return(true, nil)

		_, err := svc.Reserve(ctx, req)
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("unknown book", func(t *testing.T) {
		t.Parallel()
		svc, _, st, _ := newService(t, now)

		st.EXPECT().EnsureUser(ctx, "reader", model.RoleMember).Return(nil)
		st.EXPECT().GetBook(ctx, req.BookUid).
			Return(model.Book{}, errors.Wrap(errs.ErrNotFound, "book"))

		_, err := svc.Reserve(ctx, req)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestService_Cancel(t *testing.T) {
	t.Parallel()
	var (
		ctx = context.Background()
		now = time.Date(2026, 1, 6, 12, 0, 0, 0, time.UTC)
	)

	t.Run("queued reservation is simply removed", func(t *testing.T) {
		t.Parallel()
		svc, _, st, notifier := newService(t, now)
		res := model.Reservation{ID: 5, ReservationUid: "r1", Username: "reader", BookID: 1, Status: model.ReservationActive}

		st.EXPECT().GetReservationForUpdate(ctx, "r1").Return(res, nil)
		st.EXPECT().DeleteReservation(ctx, res.ID).Return(nil)

		require.NoError(t, svc.Cancel(ctx, "r1", "reader", model.RoleMember))
		assert.Empty(t, notifier.events)
	})

	t.Run("cancelled hold promotes the next queued reader", func(t *testing.T) {
		t.Parallel()
		svc, _, st, notifier := newService(t, now)
		copyID := 3
		res := model.Reservation{
			ID: 5, ReservationUid: "r1", Username: "reader", BookID: 1,
			Status: model.ReservationAwaitingPickup, AssignedCopyID: &copyID,
		}
		next := model.Reservation{ID: 6, ReservationUid: "r2", Username: "waiting", BookID: 1, Status: model.ReservationActive}

		st.EXPECT().GetReservationForUpdate(ctx, "r1").Return(res, nil)
		st.EXPECT().DeleteReservation(ctx, res.ID).Return(nil)
		st.EXPECT().GetCopyForUpdate(ctx, copyID).
			Return(model.BookCopy{ID: copyID, BookID: 1, Status: model.CopyMaintenance}, nil)
		st.EXPECT().NextActiveReservationForUpdate(ctx, res.BookID).Return(next, nil)
		st.EXPECT().PromoteReservation(ctx, next.ID, copyID, now.Add(model.PickupWindow)).Return(nil)

		require.NoError(t, svc.Cancel(ctx, "r1", "reader", model.RoleMember))
		require.Len(t, notifier.events, 1)
		assert.Equal(t, notify.KindPickupReady, notifier.events[0].Kind)
		assert.Equal(t, "waiting", notifier.events[0].Recipient)
	})

	t.Run("cancelled hold with empty queue frees the copy", func(t *testing.T) {
		t.Parallel()
		svc, _, st, _ := newService(t, now)
		copyID := 3
		res := model.Reservation{
			ID: 5, ReservationUid: "r1", Username: "reader", BookID: 1,
			Status: model.ReservationAwaitingPickup, AssignedCopyID: &copyID,
		}

		st.EXPECT().GetReservationForUpdate(ctx, "r1").Return(res, nil)
		st.EXPECT().DeleteReservation(ctx, res.ID).Return(nil)
		st.EXPECT().GetCopyForUpdate(ctx, copyID).
			Return(model.BookCopy{ID: copyID, BookID: 1, Status: model.CopyMaintenance}, nil)
		st.EXPECT().NextActiveReservationForUpdate(ctx, res.BookID).
			Return(model.Reservation{}, errors.Wrap(errs.ErrNotFound, "reservation"))
		st.EXPECT().SetCopyStatus(ctx, copyID, model.CopyAvailable).Return(nil)

		require.NoError(t, svc.Cancel(ctx, "r1", "reader", model.RoleMember))
	})

	t.Run("cancelled hold on a lost copy does not free it", func(t *testing.T) {
		t.Parallel()
		svc, _, st, notifier := newService(t, now)
		copyID := 3
		res := model.Reservation{
			ID: 5, ReservationUid: "r1", Username: "reader", BookID: 1,
			Status: model.ReservationAwaitingPickup, AssignedCopyID: &copyID,
		}

		st.EXPECT().GetReservationForUpdate(ctx, "r1").Return(res, nil)
		st.EXPECT().DeleteReservation(ctx, res.ID).Return(nil)
		st.EXPECT().GetCopyForUpdate(ctx, copyID).
			Return(model.BookCopy{ID: copyID, BookID: 1, Status: model.CopyLost}, nil)

		require.NoError(t, svc.Cancel(ctx, "r1", "reader", model.RoleMember))
		assert.Empty(t, notifier.events)
	})

	t.Run("librarian may cancel any reservation", func(t *testing.T) {
		t.Parallel()
		svc, _, st, _ := newService(t, now)
		res := model.Reservation{ID: 5, ReservationUid: "r1", Username: "reader", BookID: 1, Status: model.ReservationActive}

		st.EXPECT().GetReservationForUpdate(ctx, "r1").Return(res, nil)
		st.EXPECT().DeleteReservation(ctx, res.ID).Return(nil)

		require.NoError(t, svc.Cancel(ctx, "r1", "admin", model.RoleLibrarian))
	})

	t.Run("other member is forbidden", func(t *testing.T) {
		t.Parallel()
		svc, _, st, _ := newService(t, now)
		res := model.Reservation{ID: 5, ReservationUid: "r1", Username: "reader", BookID: 1, Status: model.ReservationActive}

		st.EXPECT().GetReservationForUpdate(ctx, "r1").Return(res, nil)

		err := svc.Cancel(ctx, "r1", "intruder", model.RoleMember)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestService_ExpirySweep(t *testing.T) {
	t.Parallel()
	var (
		ctx = context.Background()
		now = time.Date(2026, 1, 6, 12, 0, 0, 0, time.UTC)
	)

	t.Run("lapsed hold expires and the copy moves on", func(t *testing.T) {
		t.Parallel()
		svc, repo, st, notifier := newService(t, now)
		copyID := 3
		expired := now.Add(-time.Hour)
		res := model.Reservation{
			ID: 5, ReservationUid: "r1", Username: "sleeper", BookID: 1,
			Status: model.ReservationAwaitingPickup, AssignedCopyID: &copyID, ExpiresAt: &expired,
		}
		next := model.Reservation{ID: 6, ReservationUid: "r2", Username: "waiting", BookID: 1, Status: model.ReservationActive}

		repo.EXPECT().ListExpiredAwaitingPickup(ctx, now).Return([]string{"r1"}, nil)
		st.EXPECT().GetReservationForUpdate(ctx, "r1").Return(res, nil)
		st.EXPECT().SetReservationStatus(ctx, res.ID, model.ReservationExpired).Return(nil)
		st.EXPECT().GetCopyForUpdate(ctx, copyID).
			Return(model.BookCopy{ID: copyID, BookID: 1, Status: model.CopyMaintenance}, nil)
		st.EXPECT().NextActiveReservationForUpdate(ctx, res.BookID).Return(next, nil)
		st.EXPECT().PromoteReservation(ctx, next.ID, copyID, now.Add(model.PickupWindow)).Return(nil)

		svc.ExpirySweep(ctx)

		require.Len(t, notifier.events, 2)
		assert.Equal(t, notify.KindPickupExpired, notifier.events[0].Kind)
		assert.Equal(t, "sleeper", notifier.events[0].Recipient)
		assert.Equal(t, notify.KindPickupReady, notifier.events[1].Kind)
		assert.Equal(t, "waiting", notifier.events[1].Recipient)
	})

	t.Run("expired hold on a lost copy keeps it out of circulation", func(t *testing.T) {
		t.Parallel()
		svc, repo, st, notifier := newService(t, now)
		copyID := 3
		expired := now.Add(-time.Hour)
		res := model.Reservation{
			ID: 5, ReservationUid: "r1", Username: "sleeper", BookID: 1,
			Status: model.ReservationAwaitingPickup, AssignedCopyID: &copyID, ExpiresAt: &expired,
		}

		repo.EXPECT().ListExpiredAwaitingPickup(ctx, now).Return([]string{"r1"}, nil)
		st.EXPECT().GetReservationForUpdate(ctx, "r1").Return(res, nil)
		st.EXPECT().SetReservationStatus(ctx, res.ID, model.ReservationExpired).Return(nil)
		st.EXPECT().GetCopyForUpdate(ctx, copyID).
			Return(model.BookCopy{ID: copyID, BookID: 1, Status: model.CopyLost}, nil)

		svc.ExpirySweep(ctx)

		require.Len(t, notifier.events, 1)
		assert.Equal(t, notify.KindPickupExpired, notifier.events[0].Kind)
	})

	t.Run("hold fulfilled since the scan is skipped", func(t *testing.T) {
		t.Parallel()
		svc, repo, st, notifier := newService(t, now)
		res := model.Reservation{ID: 5, ReservationUid: "r1", Username: "reader", BookID: 1, Status: model.ReservationFulfilled}

		repo.EXPECT().ListExpiredAwaitingPickup(ctx, now).Return([]string{"r1"}, nil)
		st.EXPECT().GetReservationForUpdate(ctx, "r1").Return(res, nil)

		svc.ExpirySweep(ctx)
		assert.Empty(t, notifier.events)
	})

	t.Run("one broken reservation does not stop the sweep", func(t *testing.T) {
		t.Parallel()
		svc, repo, st, notifier := newService(t, now)
		copyID := 3
		expired := now.Add(-time.Hour)
		res := model.Reservation{
			ID: 6, ReservationUid: "r2", Username: "sleeper", BookID: 1,
			Status: model.ReservationAwaitingPickup, AssignedCopyID: &copyID, ExpiresAt: &expired,
		}

		repo.EXPECT().ListExpiredAwaitingPickup(ctx, now).Return([]string{"r1", "r2"}, nil)
		st.EXPECT().GetReservationForUpdate(ctx, "r1").
			Return(model.Reservation{}, errors.New("db down"))
		st.EXPECT().GetReservationForUpdate(ctx, "r2").Return(res, nil)
		st.EXPECT().SetReservationStatus(ctx, res.ID, model.ReservationExpired).Return(nil)
		st.EXPECT().GetCopyForUpdate(ctx, copyID).
			Return(model.BookCopy{ID: copyID, BookID: 1, Status: model.CopyMaintenance}, nil)
		st.EXPECT().NextActiveReservationForUpdate(ctx, res.BookID).
			Return(model.Reservation{}, errors.Wrap(errs.ErrNotFound, "reservation"))
		st.EXPECT().SetCopyStatus(ctx, copyID, model.CopyAvailable).Return(nil)

		svc.ExpirySweep(ctx)
		require.Len(t, notifier.events, 1)
		assert.Equal(t, notify.KindPickupExpired, notifier.events[0].Kind)
	})
}
