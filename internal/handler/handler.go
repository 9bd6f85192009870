package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/ostrenko/circulation-service/internal/errs"
	"github.com/ostrenko/circulation-service/pkg/validate"
	_ "github.com/ostrenko/circulation-service/swagger"
)

type Handler struct {
	bookSvc        BookService
	copySvc        CopyService
	loanSvc        LoanService
	reservationSvc ReservationService
	fineSvc        FineService
	log            *zap.Logger
}

func New(bookSvc BookService, copySvc CopyService, loanSvc LoanService, reservationSvc ReservationService, fineSvc FineService, log *zap.Logger) *Handler {
	return &Handler{
		bookSvc:        bookSvc,
		copySvc:        copySvc,
		loanSvc:        loanSvc,
		reservationSvc: reservationSvc,
		fineSvc:        fineSvc,
		log:            log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(requestLoggerConfig(h.log)),
		middleware.RequestID(),
		newRateLimiterMW(apiRPS),
		identityMW,
	)

	api.GET("/books", h.ListBooks)
	api.GET("/books/:bookUid", h.GetBook)
	api.POST("/books", h.CreateBook, librarianMW)
	api.GET("/books/:bookUid/copies", h.ListCopies, librarianMW)
	api.POST("/books/:bookUid/copies", h.AddCopy, librarianMW)
	api.POST("/copies/:barcode/status", h.SetCopyStatus, librarianMW)
	api.DELETE("/copies/:barcode", h.DeleteCopy, librarianMW)

	api.POST("/loans", h.CreateLoan)
	api.GET("/loans", h.ListLoans)
	api.GET("/loans/pending", h.ListPendingReturns, librarianMW)
	api.POST("/loans/:loanUid/return", h.InitiateReturn)
	api.POST("/loans/:loanUid/return/confirm", h.ConfirmReturn, librarianMW)
	api.POST("/loans/:loanUid/renewal", h.RequestRenewal)
	api.POST("/loans/:loanUid/renewal/approve", h.ApproveRenewal, librarianMW)
	api.POST("/loans/:loanUid/renewal/reject", h.RejectRenewal, librarianMW)

	api.POST("/reservations", h.CreateReservation)
	api.GET("/reservations", h.GetReservations)
	api.DELETE("/reservations/:reservationUid", h.CancelReservation)

	api.GET("/fines", h.ListFines)
	api.POST("/fines", h.CreateFine, librarianMW)
	api.POST("/fines/:fineUid/pay", h.PayFine, librarianMW)

	api.POST("/jobs/fine-accrual", h.RunFineAccrual, librarianMW)
	api.POST("/jobs/reservation-expiry", h.RunReservationExpirySweep, librarianMW)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps the error taxonomy onto status codes. Only typed business
// errors leak detail; everything else is a 500.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
