package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) Subscribe(c echo.Context) error {
	name, err := userName(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	sub, err := h.svc.Subscribe(c.Request().Context(), name, c.Param("copyUid"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, sub)
}

func (h *Handler) Unsubscribe(c echo.Context) error {
	name, err := userName(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	if err := h.svc.Unsubscribe(c.Request().Context(), name, c.Param("subscriptionUid")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) ListMySubscriptions(c echo.Context) error {
	name, err := userName(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	items, err := h.svc.ListSubscriptionsByPatron(c.Request().Context(), name)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

type notifyResponse struct {
	Notified int `json:"notified"`
}

func (h *Handler) NotifyCopy(c echo.Context) error {
	n, err := h.svc.NotifyForCopy(c.Request().Context(), c.Param("copyUid"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, notifyResponse{Notified: n})
}

func (h *Handler) NotifyAll(c echo.Context) error {
	n, err := h.svc.NotifyAll(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, notifyResponse{Notified: n})
}
