// Package copy owns the per-physical-copy status state machine and the
// explicit cascade executed when a copy is removed from the collection.
package copy

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ostrenko/circulation-service/internal/errs"
	"github.com/ostrenko/circulation-service/internal/model"
	"github.com/ostrenko/circulation-service/internal/repository"
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository
}

func NewService(repo repository.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

// AddCopy registers a new physical copy of an existing title.
func (s *Service) AddCopy(ctx context.Context, bookUid string) (model.BookCopy, error) {
	book, err := s.repo.GetBook(ctx, bookUid)
	if err != nil {
		return model.BookCopy{}, err
	}
	return s.repo.CreateCopy(ctx, book.ID, model.NewBarcode())
}

// SetStatus applies an operator-triggered side transition: LOST, MAINTENANCE
// or back to AVAILABLE. A BORROWED copy is untouchable here; it has to come
// back through the return workflow first.
func (s *Service) SetStatus(ctx context.Context, barcode string, to model.CopyStatus) (model.BookCopy, error) {
	switch to {
	case model.CopyAvailable, model.CopyMaintenance, model.CopyLost:
	default:
		return model.BookCopy{}, errors.Wrap(errs.ErrConflict, "status not operator-assignable")
	}

	var cp model.BookCopy
	err := s.repo.WithinTx(ctx, func(ctx context.Context, st repository.Store) error {
		var err error
		cp, err = st.GetCopyByBarcodeForUpdate(ctx, barcode)
		if err != nil {
			return err
		}
		if cp.Status == model.CopyBorrowed {
			return errors.Wrap(errs.ErrConflict, "copy is borrowed")
		}
		if err := st.SetCopyStatus(ctx, cp.ID, to); err != nil {
			return err
		}
		cp.Status = to
		return nil
	})
	if err != nil {
		return model.BookCopy{}, err
	}
	return cp, nil
}

// cascadeStep is one dependent-deletion stage, executed in order inside the
// deleting transaction.
type cascadeStep struct {
	name string
	run  func(ctx context.Context, st repository.Store, copyID int) error
}

var deleteCascade = []cascadeStep{
	{name: "fines", run: func(ctx context.Context, st repository.Store, copyID int) error {
		return st.DeleteFinesByCopy(ctx, copyID)
	}},
	{name: "loans", run: func(ctx context.Context, st repository.Store, copyID int) error {
		return st.DeleteLoansByCopy(ctx, copyID)
	}},
	{name: "reservation assignments", run: func(ctx context.Context, st repository.Store, copyID int) error {
		return st.DetachReservationsFromCopy(ctx, copyID)
	}},
	{name: "copy", run: func(ctx context.Context, st repository.Store, copyID int) error {
		return st.DeleteCopy(ctx, copyID)
	}},
}

// DeleteCopy removes a copy that is neither borrowed nor held, cascading its
// dependent rows in one transaction.
func (s *Service) DeleteCopy(ctx context.Context, barcode string) error {
	return s.repo.WithinTx(ctx, func(ctx context.Context, st repository.Store) error {
		cp, err := st.GetCopyByBarcodeForUpdate(ctx, barcode)
		if err != nil {
			return err
		}
		if cp.Status == model.CopyBorrowed || cp.Status == model.CopyMaintenance {
			return errors.Wrapf(errs.ErrConflict, "copy is %s", cp.Status)
		}
		for _, step := range deleteCascade {
			if err := step.run(ctx, st, cp.ID); err != nil {
				return errors.Wrapf(err, "cascade %s", step.name)
			}
		}
		s.log.Info("copy deleted", zap.String("barcode", barcode))
		return nil
	})
}
