package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hustlib/lending-service/internal/model"
)

func (h *Handler) ListMyLoans(c echo.Context) error {
	name, err := userName(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	items, err := h.svc.ListLoansByPatron(c.Request().Context(), name)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListOverdueLoans(c echo.Context) error {
	items, err := h.svc.ListOverdueLoans(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListCopyLoans(c echo.Context) error {
	items, err := h.svc.ListLoansByCopy(c.Request().Context(), c.Param("copyUid"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ExtendDueDate(c echo.Context) error {
	var req model.ExtendDueDateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	loan, err := h.svc.ExtendDueDate(c.Request().Context(), c.Param("loanUid"), req.DueDate.Time)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) ListCopies(c echo.Context) error {
	items, err := h.svc.ListCopies(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateCopy(c echo.Context) error {
	var req model.CreateCopyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	cp, err := h.svc.CreateCopy(c.Request().Context(), req.Title)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, cp)
}

func (h *Handler) ListFines(c echo.Context) error {
	items, err := h.svc.ListFines(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListMyFines(c echo.Context) error {
	name, err := userName(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	items, err := h.svc.ListFinesByPatron(c.Request().Context(), name)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) UpdateFine(c echo.Context) error {
	var req model.UpdateFineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	fine, err := h.svc.UpdateFine(c.Request().Context(), c.Param("fineUid"), req.Amount, req.Description)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, fine)
}
