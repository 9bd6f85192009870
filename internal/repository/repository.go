package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/ostrenko/circulation-service/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

// Store is the row-level access surface. Methods run against the pool, or
// against the enclosing transaction when obtained through WithinTx. All
// multi-step mutations go through WithinTx so that preconditions are checked
// on the transaction's own reads.
type Store interface {
	EnsureUser(ctx context.Context, username string, role model.Role) error
	GetUserRole(ctx context.Context, username string) (model.Role, error)

	CreateBook(ctx context.Context, title, author string, categoryID *int) (model.Book, error)
	GetBook(ctx context.Context, bookUid string) (model.Book, error)
	GetBookByID(ctx context.Context, id int) (model.Book, error)
	ListBooks(ctx context.Context, filter model.BookFilter) (model.ListBooks, error)

	CreateCopy(ctx context.Context, bookID int, barcode string) (model.BookCopy, error)
	GetCopyByBarcode(ctx context.Context, barcode string) (model.BookCopy, error)
	GetCopyByBarcodeForUpdate(ctx context.Context, barcode string) (model.BookCopy, error)
	GetCopyForUpdate(ctx context.Context, copyID int) (model.BookCopy, error)
	FindAvailableCopyForUpdate(ctx context.Context, bookID int) (model.BookCopy, error)
	SetCopyStatus(ctx context.Context, copyID int, status model.CopyStatus) error
	ListCopies(ctx context.Context, bookID int) ([]model.BookCopy, error)
	DeleteCopy(ctx context.Context, copyID int) error
	DeleteLoansByCopy(ctx context.Context, copyID int) error
	DeleteFinesByCopy(ctx context.Context, copyID int) error
	DetachReservationsFromCopy(ctx context.Context, copyID int) error

	CreateLoan(ctx context.Context, username string, copyID int, dueDate time.Time) (model.Loan, error)
	GetLoan(ctx context.Context, loanUid string) (model.Loan, error)
	GetLoanForUpdate(ctx context.Context, loanUid string) (model.Loan, error)
	CountLoansByStatus(ctx context.Context, username string, statuses ...model.LoanStatus) (int, error)
	SetLoanStatus(ctx context.Context, loanID int, status model.LoanStatus) error
	MarkLoanReturned(ctx context.Context, loanID int, returnedAt time.Time) error
	SetRenewalRequested(ctx context.Context, loanID int, requested bool) error
	SetDueDate(ctx context.Context, loanID int, dueDate time.Time) error
	ListLoans(ctx context.Context, username string) ([]model.Loan, error)
	ListPendingReturns(ctx context.Context) ([]model.Loan, error)
	ListOverdueCandidates(ctx context.Context, today time.Time) ([]string, error)

	CreateReservation(ctx context.Context, username string, bookID int, status model.ReservationStatus, assignedCopyID *int, expiresAt *time.Time) (model.Reservation, error)
	GetReservation(ctx context.Context, reservationUid string) (model.Reservation, error)
	GetReservationForUpdate(ctx context.Context, reservationUid string) (model.Reservation, error)
	HasLiveReservation(ctx context.Context, username string, bookID int) (bool, error)
	NextActiveReservationForUpdate(ctx context.Context, bookID int) (model.Reservation, error)
	AwaitingPickupForUser(ctx context.Context, username string, copyID int) (model.Reservation, error)
	PromoteReservation(ctx context.Context, reservationID, copyID int, expiresAt time.Time) error
	SetReservationStatus(ctx context.Context, reservationID int, status model.ReservationStatus) error
	DeleteReservation(ctx context.Context, reservationID int) error
	ListReservations(ctx context.Context, username string) ([]model.Reservation, error)
	ListExpiredAwaitingPickup(ctx context.Context, now time.Time) ([]string, error)

	CreateFine(ctx context.Context, loanID *int, username string, amount int64, reason string, finedForDate time.Time) (model.Fine, error)
	LatestFinedForDate(ctx context.Context, loanID int) (*time.Time, error)
	ListFines(ctx context.Context, username string) ([]model.Fine, error)
	MarkFinePaid(ctx context.Context, fineUid string, paidAt time.Time) (model.Fine, error)
}

// Repository is the pool-bound Store plus transaction control.
type Repository interface {
	Store
	WithinTx(ctx context.Context, fn func(ctx context.Context, s Store) error) error
}

type repository struct {
	store
	db *sqlx.DB
}

// store runs queries against either the pool or one transaction.
type store struct {
	ext sqlx.ExtContext
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		store: store{ext: db, log: log.Named("repo")},
		db:    db,
	}, nil
}

const (
	usersTableName        = `users`
	booksTableName        = `books`
	bookCopiesTableName   = `book_copies`
	loansTableName        = `loans`
	reservationsTableName = `reservations`
	finesTableName        = `fines`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// WithinTx runs fn inside one transaction; fn sees a Store bound to it.
// Rollback on error, commit otherwise.
func (r *repository) WithinTx(ctx context.Context, fn func(ctx context.Context, s Store) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	txStore := store{ext: tx, log: r.log}
	if err := fn(ctx, txStore); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (s store) EnsureUser(ctx context.Context, username string, role model.Role) error {
	q, args, err := qb.Insert(usersTableName).
		Columns("username", "role").
		Values(username, role).
		Suffix("on conflict (username) do nothing").
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.ext.ExecContext(ctx, q, args...)
	return err
}

func (s store) GetUserRole(ctx context.Context, username string) (model.Role, error) {
	q, args, err := qb.Select("role").
		From(usersTableName).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return "", err
	}
	var role model.Role
	if err := sqlx.GetContext(ctx, s.ext, &role, q, args...); err != nil {
		return "", wrapNoRows(err)
	}
	return role, nil
}
