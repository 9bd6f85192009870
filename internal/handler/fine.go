package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ostrenko/circulation-service/internal/model"
)

func (h *Handler) ListFines(c echo.Context) error {
	username := userName(c)
	// Librarians can inspect any reader's fines.
	if v := c.QueryParam("username"); v != "" {
		if userRole(c) != model.RoleLibrarian {
			return echo.NewHTTPError(http.StatusForbidden, "librarian role required")
		}
		username = v
	}
	fines, err := h.fineSvc.ListFines(c.Request().Context(), username)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, fines)
}

func (h *Handler) CreateFine(c echo.Context) error {
	var req model.CreateFineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	fine, err := h.fineSvc.CreateFine(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, fine)
}

func (h *Handler) PayFine(c echo.Context) error {
	fine, err := h.fineSvc.PayFine(c.Request().Context(), c.Param("fineUid"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, fine)
}

// RunFineAccrual triggers the daily job out of band.
func (h *Handler) RunFineAccrual(c echo.Context) error {
	h.fineSvc.RunAccrual(c.Request().Context())
	return c.NoContent(http.StatusAccepted)
}
