package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ostrenko/circulation-service/internal/model"
)

// CreateBook godoc
// @Summary  Register a title with optional initial copies
// @Tags     books
// @Param    request body model.CreateBookRequest true "book"
// @Success  201 {object} model.Book
// @Router   /api/v1/books [post]
func (h *Handler) CreateBook(c echo.Context) error {
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	book, err := h.bookSvc.CreateBook(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) GetBook(c echo.Context) error {
	book, err := h.bookSvc.GetBook(c.Request().Context(), c.Param("bookUid"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) ListBooks(c echo.Context) error {
	filter := model.BookFilter{
		Search:       c.QueryParam("search"),
		Availability: model.Availability(c.QueryParam("availability")),
	}
	if v := c.QueryParam("categoryId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "categoryId must be an integer")
		}
		filter.CategoryID = &id
	}
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.Size, _ = strconv.Atoi(c.QueryParam("size"))

	switch filter.Availability {
	case model.AvailabilityAny, model.AvailabilityAvailable, model.AvailabilityBorrowed:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown availability filter")
	}

	books, err := h.bookSvc.ListBooks(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) ListCopies(c echo.Context) error {
	copies, err := h.bookSvc.ListCopies(c.Request().Context(), c.Param("bookUid"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, copies)
}

func (h *Handler) AddCopy(c echo.Context) error {
	cp, err := h.copySvc.AddCopy(c.Request().Context(), c.Param("bookUid"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, cp)
}

func (h *Handler) SetCopyStatus(c echo.Context) error {
	var req struct {
		Status model.CopyStatus `json:"status" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	cp, err := h.copySvc.SetStatus(c.Request().Context(), c.Param("barcode"), req.Status)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, cp)
}

func (h *Handler) DeleteCopy(c echo.Context) error {
	if err := h.copySvc.DeleteCopy(c.Request().Context(), c.Param("barcode")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
