package book

import (
	"context"

	"go.uber.org/zap"

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

// CreateBook registers a title and, optionally, its first physical copies in
// one transaction.
func (s *Service) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	var book model.Book
	err := s.repo.WithinTx(ctx, func(ctx context.Context, st repository.Store) error {
		var err error
		book, err = st.CreateBook(ctx, req.Title, req.Author, req.CategoryID)
		if err != nil {
			return err
		}
		for i := 0; i < req.Copies; i++ {
			if _, err := st.CreateCopy(ctx, book.ID, model.NewBarcode()); err != nil {
				return err
			}
		}
		book.AvailableCount = req.Copies
		return nil
	})
	if err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func (s *Service) GetBook(ctx context.Context, bookUid string) (model.Book, error) {
	return s.repo.GetBook(ctx, bookUid)
}

func (s *Service) ListBooks(ctx context.Context, filter model.BookFilter) (model.ListBooks, error) {
	return s.repo.ListBooks(ctx, filter)
}

func (s *Service) ListCopies(ctx context.Context, bookUid string) ([]model.BookCopy, error) {
	book, err := s.repo.GetBook(ctx, bookUid)
	if err != nil {
		return nil, err
	}
	return s.repo.ListCopies(ctx, book.ID)
}
