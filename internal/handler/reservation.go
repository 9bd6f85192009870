package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ostrenko/circulation-service/internal/model"
)

// CreateReservation godoc
// @Summary  Reserve a title
// @Tags     reservations
// @Param    request body model.CreateReservationRequest true "reservation"
// @Success  201 {object} model.Reservation
// @Router   /api/v1/reservations [post]
func (h *Handler) CreateReservation(c echo.Context) error {
	var req model.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.Username = userName(c)
	if err := c.Validate(req); err != nil {
		return err
	}
	res, err := h.reservationSvc.Reserve(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *Handler) GetReservations(c echo.Context) error {
	items, err := h.reservationSvc.ListReservations(c.Request().Context(), userName(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CancelReservation(c echo.Context) error {
	err := h.reservationSvc.Cancel(c.Request().Context(), c.Param("reservationUid"), userName(c), userRole(c))
	if err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// RunReservationExpirySweep triggers the hourly job out of band.
func (h *Handler) RunReservationExpirySweep(c echo.Context) error {
	h.reservationSvc.ExpirySweep(c.Request().Context())
	return c.NoContent(http.StatusAccepted)
}
