// Package fine implements interval-based, catch-up, idempotent fine accrual.
// The engine is driven by the daily scheduler tick; (loanId, finedForDate) is
// the idempotency key, so re-running the job, missing days, or racing a
// manual fine write never produces duplicate charges.
package fine

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ostrenko/circulation-service/internal/model"
	"github.com/ostrenko/circulation-service/internal/notify"
	"github.com/ostrenko/circulation-service/internal/repository"
)

// SettingsProvider supplies a read-only configuration snapshot per run.
type SettingsProvider func(ctx context.Context) model.FineSettings

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	notifier notify.Notifier
	settings SettingsProvider
	now      func() time.Time
}

func NewService(repo repository.Repository, notifier notify.Notifier, settings SettingsProvider, log *zap.Logger) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		notifier: notifier,
		settings: settings,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// RunAccrual processes every overdue loan, each in its own transaction, so
// one loan's failure cannot abort or block the batch.
func (s *Service) RunAccrual(ctx context.Context) {
	settings := s.settings(ctx)
	today := NormalizeDate(s.now())

	uids, err := s.repo.ListOverdueCandidates(ctx, today)
	if err != nil {
		s.log.Error("fine accrual: list candidates", zap.Error(err))
		return
	}

	for _, uid := range uids {
		events, err := s.accrueLoan(ctx, uid, settings, today)
		if err != nil {
			s.log.Error("fine accrual: loan", zap.String("loanUid", uid), zap.Error(err))
			continue
		}
		s.notifier.Notify(ctx, events...)
	}
}

func (s *Service) accrueLoan(ctx context.Context, loanUid string, settings model.FineSettings, today time.Time) ([]notify.Event, error) {
	var events []notify.Event
	err := s.repo.WithinTx(ctx, func(ctx context.Context, st repository.Store) error {
		loan, err := st.GetLoanForUpdate(ctx, loanUid)
		if err != nil {
			return err
		}
		// Re-check under lock: the loan may have been returned since the scan.
		if loan.Status != model.LoanActive && loan.Status != model.LoanOverdue {
			return nil
		}
		if !NormalizeDate(loan.DueDate).Before(today) {
			return nil
		}

		if loan.Status != model.LoanOverdue {
			if err := st.SetLoanStatus(ctx, loan.ID, model.LoanOverdue); err != nil {
				return err
			}
			events = append(events, notify.ToUser(loan.Username, notify.KindLoanOverdue,
				fmt.Sprintf("loan %s is overdue since %s", loan.LoanUid, loan.DueDate.Format(time.DateOnly))))
		}

		if !settings.Enabled {
			return nil
		}

		latest, err := st.LatestFinedForDate(ctx, loan.ID)
		if err != nil {
			return err
		}

		intervalDays := settings.ResolvedIntervalDays()
		amount := settings.AmountPerInterval()
		for _, date := range FineDates(loan.DueDate, loan.ReturnedAt, latest, intervalDays, today) {
			reason := fmt.Sprintf("overdue fine for %s, loan %s", date.Format(time.DateOnly), loan.LoanUid)
			if _, err := st.CreateFine(ctx, &loan.ID, loan.Username, amount, reason, date); err != nil {
				if errors.Is(err, repository.ErrDuplicateFine) {
					// Expected on catch-up re-runs: the period is billed already.
					s.log.Debug("fine exists for period",
						zap.String("loanUid", loan.LoanUid),
						zap.Time("finedForDate", date))
					continue
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

// CreateFine records a manual penalty, not bound to a billing interval.
func (s *Service) CreateFine(ctx context.Context, req model.CreateFineRequest) (model.Fine, error) {
	var fine model.Fine
	err := s.repo.WithinTx(ctx, func(ctx context.Context, st repository.Store) error {
		if err := st.EnsureUser(ctx, req.Username, model.RoleMember); err != nil {
			return err
		}
		var err error
		fine, err = st.CreateFine(ctx, nil, req.Username, req.Amount, req.Reason, NormalizeDate(s.now()))
		return err
	})
	if err != nil {
		return model.Fine{}, err
	}
	return fine, nil
}

func (s *Service) ListFines(ctx context.Context, username string) ([]model.Fine, error) {
	return s.repo.ListFines(ctx, username)
}

// PayFine marks a fine paid. Repeated calls keep the first paidAt.
func (s *Service) PayFine(ctx context.Context, fineUid string) (model.Fine, error) {
	return s.repo.MarkFinePaid(ctx, fineUid, s.now())
}

// NormalizeDate truncates to UTC midnight.
func NormalizeDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FineDates returns every finedForDate owed for a loan, oldest first.
//
// The window starts the day after the due date, or one interval past the
// latest billed period; it ends at returnedAt when set, else today. A missed
// run is caught up on the next one: every elapsed interval gets exactly one
// date.
func FineDates(dueDate time.Time, returnedAt, latestFined *time.Time, intervalDays int, today time.Time) []time.Time {
	if intervalDays <= 0 {
		intervalDays = 1
	}
	due := NormalizeDate(dueDate)
	end := NormalizeDate(today)
	if returnedAt != nil {
		end = NormalizeDate(*returnedAt)
	}
	if !end.After(due) {
		return nil
	}

	var start time.Time
	if latestFined != nil {
		start = NormalizeDate(*latestFined).AddDate(0, 0, intervalDays)
	} else {
		start = due.AddDate(0, 0, 1)
	}
	if start.After(end) {
		return nil
	}

	intervals := int(end.Sub(start).Hours())/(24*intervalDays) + 1
	dates := make([]time.Time, 0, intervals)
	for i := 0; i < intervals; i++ {
		date := start.AddDate(0, 0, i*intervalDays)
		if date.After(end) {
			break
		}
		dates = append(dates, date)
	}
	return dates
}
