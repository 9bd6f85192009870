package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ostrenko/circulation-service/internal/model"
)

// CreateLoan godoc
// @Summary  Check out a copy by barcode
// @Tags     loans
// @Param    request body model.CreateLoanRequest true "loan"
// @Success  201 {object} model.Loan
// @Router   /api/v1/loans [post]
func (h *Handler) CreateLoan(c echo.Context) error {
	var req model.CreateLoanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.Username = userName(c)
	if err := c.Validate(req); err != nil {
		return err
	}
	loan, err := h.loanSvc.CreateLoan(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, loan)
}

func (h *Handler) ListLoans(c echo.Context) error {
	loans, err := h.loanSvc.ListLoans(c.Request().Context(), userName(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) ListPendingReturns(c echo.Context) error {
	loans, err := h.loanSvc.ListPendingReturns(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) InitiateReturn(c echo.Context) error {
	loan, err := h.loanSvc.InitiateReturn(c.Request().Context(), c.Param("loanUid"), userName(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) ConfirmReturn(c echo.Context) error {
	loan, err := h.loanSvc.ConfirmReturn(c.Request().Context(), c.Param("loanUid"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) RequestRenewal(c echo.Context) error {
	loan, err := h.loanSvc.RequestRenewal(c.Request().Context(), c.Param("loanUid"), userName(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) ApproveRenewal(c echo.Context) error {
	loan, err := h.loanSvc.ApproveRenewal(c.Request().Context(), c.Param("loanUid"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) RejectRenewal(c echo.Context) error {
	loan, err := h.loanSvc.RejectRenewal(c.Request().Context(), c.Param("loanUid"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}
