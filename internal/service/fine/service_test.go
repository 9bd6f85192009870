package fine_test

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

	"github.com/ostrenko/circulation-service/internal/model"
	"github.com/ostrenko/circulation-service/internal/notify"
	"github.com/ostrenko/circulation-service/internal/repository"
	mock_repository "github.com/ostrenko/circulation-service/internal/repository/mocks"
	"github.com/ostrenko/circulation-service/internal/service/fine"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptrTime(t time.Time) *time.Time { return &t }

func TestNormalizeDate(t *testing.T) {
	t.Parallel()
	msk := time.FixedZone("MSK", 3*60*60)

	assert.Equal(t, date(2026, 1, 20), fine.NormalizeDate(time.Date(2026, 1, 20, 23, 59, 59, 0, time.UTC)))
	// 01:30 MSK is still the previous day in UTC.
	assert.Equal(t, date(2026, 1, 19), fine.NormalizeDate(time.Date(2026, 1, 20, 1, 30, 0, 0, msk)))
}

func TestFineDates(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		dueDate      time.Time
		returnedAt   *time.Time
		latestFined  *time.Time
		intervalDays int
		today        time.Time
		want         []time.Time
	}{
		{
			name:         "six days overdue, nothing billed yet",
			dueDate:      date(2026, 1, 14),
			intervalDays: 1,
			today:        date(2026, 1, 20),
			want: []time.Time{
				date(2026, 1, 15), date(2026, 1, 16), date(2026, 1, 17),
				date(2026, 1, 18), date(2026, 1, 19), date(2026, 1, 20),
			},
		},
		{
			name:         "due today, nothing owed",
			dueDate:      date(2026, 1, 20),
			intervalDays: 1,
			today:        date(2026, 1, 20),
			want:         nil,
		},
		{
			name:         "one day overdue",
			dueDate:      date(2026, 1, 19),
			intervalDays: 1,
			today:        date(2026, 1, 20),
			want:         []time.Time{date(2026, 1, 20)},
		},
		{
			name:         "catch-up after missed runs",
			dueDate:      date(2026, 1, 14),
			latestFined:  ptrTime(date(2026, 1, 17)),
			intervalDays: 1,
			today:        date(2026, 1, 20),
			want:         []time.Time{date(2026, 1, 18), date(2026, 1, 19), date(2026, 1, 20)},
		},
		{
			name:         "billed through today already",
			dueDate:      date(2026, 1, 14),
			latestFined:  ptrTime(date(2026, 1, 20)),
			intervalDays: 1,
			today:        date(2026, 1, 20),
			want:         nil,
		},
		{
			name:         "returned loan stops accruing at returnedAt",
			dueDate:      date(2026, 1, 14),
			returnedAt:   ptrTime(date(2026, 1, 18)),
			intervalDays: 1,
			today:        date(2026, 1, 25),
			want: []time.Time{
				date(2026, 1, 15), date(2026, 1, 16), date(2026, 1, 17), date(2026, 1, 18),
			},
		},
		{
			name:         "weekly interval",
			dueDate:      date(2026, 1, 14),
			intervalDays: 7,
			today:        date(2026, 2, 4),
			want:         []time.Time{date(2026, 1, 15), date(2026, 1, 22), date(2026, 1, 29)},
		},
		{
			name:         "weekly interval resumes one interval past the last bill",
			dueDate:      date(2026, 1, 14),
			latestFined:  ptrTime(date(2026, 1, 15)),
			intervalDays: 7,
			today:        date(2026, 2, 4),
			want:         []time.Time{date(2026, 1, 22), date(2026, 1, 29)},
		},
		{
			name:         "non-positive interval falls back to daily",
			dueDate:      date(2026, 1, 18),
			intervalDays: 0,
			today:        date(2026, 1, 20),
			want:         []time.Time{date(2026, 1, 19), date(2026, 1, 20)},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := fine.FineDates(tt.dueDate, tt.returnedAt, tt.latestFined, tt.intervalDays, tt.today)
			assert.Equal(t, tt.want, got)
		})
	}
}

type captureNotifier struct {
	mu     sync.Mutex
	events []notify.Event
}

func (n *captureNotifier) Notify(_ context.Context, events ...notify.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, events...)
}

func newAccrualService(t *testing.T, settings model.FineSettings, now time.Time) (*fine.Service, *mock_repository.MockRepository, *mock_repository.MockStore, *captureNotifier) {
	t.Helper()
	c := gomock.NewController(t)
	repo := mock_repository.NewMockRepository(c)
	st := mock_repository.NewMockStore(c)
	notifier := &captureNotifier{}
	svc := fine.NewService(repo,
		notifier,
		func(context.Context) model.FineSettings { return settings },
		zap.NewNop(),
	).WithClock(func() time.Time { return now })

	repo.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, repository.Store) error) error {
			return fn(ctx, st)
		}).
		AnyTimes()
	return svc, repo, st, notifier
}

func TestService_RunAccrual(t *testing.T) {
	t.Parallel()
	var (
		ctx      = context.Background()
		now      = time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)
		settings = model.FineSettings{
			Enabled:          true,
			FineAmountPerDay: 5000,
			IntervalUnit:     model.IntervalDaily,
		}
	)

	t.Run("active loan flips overdue and gets one fine per day", func(t *testing.T) {
		t.Parallel()
		svc, repo, st, notifier := newAccrualService(t, settings, now)

		loan := model.Loan{
			ID:       7,
			LoanUid:  "9c27f1e3-0000-4000-8000-000000000007",
			Username: "reader",
			Status:   model.LoanActive,
			DueDate:  date(2026, 1, 14),
		}
		repo.EXPECT().ListOverdueCandidates(ctx, date(2026, 1, 20)).Return([]string{loan.LoanUid}, nil)
		st.EXPECT().GetLoanForUpdate(ctx, loan.LoanUid).Return(loan, nil)
		st.EXPECT().SetLoanStatus(ctx, loan.ID, model.LoanOverdue).Return(nil)
		st.EXPECT().LatestFinedForDate(ctx, loan.ID).Return(nil, nil)
		for d := 15; d <= 20; d++ {
			st.EXPECT().
				CreateFine(ctx, &loan.ID, "reader", int64(5000), gomock.Any(), date(2026, 1, d)).
				Return(model.Fine{}, nil)
		}

		svc.RunAccrual(ctx)

		require.Len(t, notifier.events, 1)
		assert.Equal(t, notify.KindLoanOverdue, notifier.events[0].Kind)
		assert.Equal(t, "reader", notifier.events[0].Recipient)
	})

	t.Run("duplicate fine is skipped, the rest are written", func(t *testing.T) {
		t.Parallel()
		svc, repo, st, _ := newAccrualService(t, settings, now)

		loan := model.Loan{
			ID:       8,
			LoanUid:  "9c27f1e3-0000-4000-8000-000000000008",
			Username: "reader",
			Status:   model.LoanOverdue,
			DueDate:  date(2026, 1, 18),
		}
		repo.EXPECT().ListOverdueCandidates(ctx, date(2026, 1, 20)).Return([]string{loan.LoanUid}, nil)
		st.EXPECT().GetLoanForUpdate(ctx, loan.LoanUid).Return(loan, nil)
		st.EXPECT().LatestFinedForDate(ctx, loan.ID).Return(nil, nil)
		st.EXPECT().
			CreateFine(ctx, &loan.ID, "reader", int64(5000), gomock.Any(), date(2026, 1, 19)).
			Return(model.Fine{}, repository.ErrDuplicateFine)
		st.EXPECT().
			CreateFine(ctx, &loan.ID, "reader", int64(5000), gomock.Any(), date(2026, 1, 20)).
			Return(model.Fine{}, nil)

		svc.RunAccrual(ctx)
	})

	t.Run("loan returned since the scan is left alone", func(t *testing.T) {
		t.Parallel()
		svc, repo, st, notifier := newAccrualService(t, settings, now)

		loan := model.Loan{
			ID:       9,
			LoanUid:  "9c27f1e3-0000-4000-8000-000000000009",
			Username: "reader",
			Status:   model.LoanReturned,
			DueDate:  date(2026, 1, 14),
		}
		repo.EXPECT().ListOverdueCandidates(ctx, date(2026, 1, 20)).Return([]string{loan.LoanUid}, nil)
		st.EXPECT().GetLoanForUpdate(ctx, loan.LoanUid).Return(loan, nil)

		svc.RunAccrual(ctx)
		assert.Empty(t, notifier.events)
	})

	t.Run("fines disabled still flips the status", func(t *testing.T) {
		t.Parallel()
		disabled := settings
		disabled.Enabled = false
		svc, repo, st, notifier := newAccrualService(t, disabled, now)

		loan := model.Loan{
			ID:       10,
			LoanUid:  "9c27f1e3-0000-4000-8000-000000000010",
			Username: "reader",
			Status:   model.LoanActive,
			DueDate:  date(2026, 1, 19),
		}
		repo.EXPECT().ListOverdueCandidates(ctx, date(2026, 1, 20)).Return([]string{loan.LoanUid}, nil)
		st.EXPECT().GetLoanForUpdate(ctx, loan.LoanUid).Return(loan, nil)
		st.EXPECT().SetLoanStatus(ctx, loan.ID, model.LoanOverdue).Return(nil)

		svc.RunAccrual(ctx)
		require.Len(t, notifier.events, 1)
		assert.Equal(t, notify.KindLoanOverdue, notifier.events[0].Kind)
	})

	t.Run("one failing loan does not stop the batch", func(t *testing.T) {
		t.Parallel()
		svc, repo, st, _ := newAccrualService(t, settings, now)

		good := model.Loan{
			ID:       11,
			LoanUid:  "9c27f1e3-0000-4000-8000-000000000011",
			Username: "reader",
			Status:   model.LoanOverdue,
			DueDate:  date(2026, 1, 19),
		}
		repo.EXPECT().ListOverdueCandidates(ctx, date(2026, 1, 20)).
			Return([]string{"broken-uid", good.LoanUid}, nil)
		st.EXPECT().GetLoanForUpdate(ctx, "broken-uid").
			Return(model.Loan{}, errors.New("db down"))
		st.EXPECT().GetLoanForUpdate(ctx, good.LoanUid).Return(good, nil)
		st.EXPECT().LatestFinedForDate(ctx, good.ID).Return(nil, nil)
		st.EXPECT().
			CreateFine(ctx, &good.ID, "reader", int64(5000), gomock.Any(), date(2026, 1, 20)).
			Return(model.Fine{}, nil)

		svc.RunAccrual(ctx)
	})
}

func TestService_CreateFine(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)
	svc, _, st, _ := newAccrualService(t, model.FineSettings{}, now)

	st.EXPECT().EnsureUser(ctx, "reader", model.RoleMember).Return(nil)
	st.EXPECT().
		CreateFine(ctx, nil, "reader", int64(1500), "damaged cover", date(2026, 1, 20)).
		Return(model.Fine{FineUid: "f1", Username: "reader", Amount: 1500}, nil)

	got, err := svc.CreateFine(ctx, model.CreateFineRequest{
		Username: "reader",
		Amount:   1500,
		Reason:   "damaged cover",
	})
	require.NoError(t, err)
	assert.Equal(t, "f1", got.FineUid)
}
