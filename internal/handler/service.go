package handler

import (
	"context"

	"github.com/ostrenko/circulation-service/internal/model"
	bookService "github.com/ostrenko/circulation-service/internal/service/book"
	copyService "github.com/ostrenko/circulation-service/internal/service/copy"
	fineService "github.com/ostrenko/circulation-service/internal/service/fine"
	loanService "github.com/ostrenko/circulation-service/internal/service/loan"
	reservationService "github.com/ostrenko/circulation-service/internal/service/reservation"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookService interface {
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	GetBook(ctx context.Context, bookUid string) (model.Book, error)
	ListBooks(ctx context.Context, filter model.BookFilter) (model.ListBooks, error)
	ListCopies(ctx context.Context, bookUid string) ([]model.BookCopy, error)
}

type CopyService interface {
	AddCopy(ctx context.Context, bookUid string) (model.BookCopy, error)
	SetStatus(ctx context.Context, barcode string, to model.CopyStatus) (model.BookCopy, error)
	DeleteCopy(ctx context.Context, barcode string) error
}

type LoanService interface {
	CreateLoan(ctx context.Context, req model.CreateLoanRequest) (model.Loan, error)
	InitiateReturn(ctx context.Context, loanUid, username string) (model.Loan, error)
	ConfirmReturn(ctx context.Context, loanUid string) (model.Loan, error)
	RequestRenewal(ctx context.Context, loanUid, username string) (model.Loan, error)
	ApproveRenewal(ctx context.Context, loanUid string) (model.Loan, error)
	RejectRenewal(ctx context.Context, loanUid string) (model.Loan, error)
	ListLoans(ctx context.Context, username string) ([]model.Loan, error)
	ListPendingReturns(ctx context.Context) ([]model.Loan, error)
}

type ReservationService interface {
	Reserve(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error)
	Cancel(ctx context.Context, reservationUid, requestor string, role model.Role) error
	ExpirySweep(ctx context.Context)
	ListReservations(ctx context.Context, username string) ([]model.Reservation, error)
}

type FineService interface {
	RunAccrual(ctx context.Context)
	CreateFine(ctx context.Context, req model.CreateFineRequest) (model.Fine, error)
	ListFines(ctx context.Context, username string) ([]model.Fine, error)
	PayFine(ctx context.Context, fineUid string) (model.Fine, error)
}

var (
	_ BookService        = (*bookService.Service)(nil)
	_ CopyService        = (*copyService.Service)(nil)
	_ LoanService        = (*loanService.Service)(nil)
	_ ReservationService = (*reservationService.Service)(nil)
	_ FineService        = (*fineService.Service)(nil)
)
