package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/hustlib/lending-service/internal/errs"
	"github.com/hustlib/lending-service/internal/model"
	"github.com/hustlib/lending-service/pkg/auth"
	mw "github.com/hustlib/lending-service/pkg/middleware"
	"github.com/hustlib/lending-service/pkg/validate"
)

type Handler struct {
	svc LendingService
	log *zap.Logger
}

func New(svc LendingService, log *zap.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log,
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

	base := e.Group("", mw.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(mw.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		mw.NewRateLimiter(apiRPS),
		mw.AuthContext,
	)

	api.POST("/requests/borrowing", h.CreateBorrowingRequest)
	api.POST("/requests/returning", h.CreateReturningRequest)
	api.GET("/requests", h.ListRequests, mw.StaffOnly)
	api.GET("/requests/my", h.ListMyRequests)
	api.GET("/requests/:requestUid", h.GetRequest, mw.StaffOnly)
	api.POST("/requests/:requestUid/process", h.ProcessRequest, mw.StaffOnly)
	api.POST("/requests/:requestUid/cancel", h.CancelRequest)

	api.GET("/loans/my", h.ListMyLoans)
	api.GET("/loans/overdue", h.ListOverdueLoans, mw.StaffOnly)
	api.POST("/loans/:loanUid/extend", h.ExtendDueDate, mw.StaffOnly)

	api.GET("/copies", h.ListCopies)
	api.POST("/copies", h.CreateCopy, mw.StaffOnly)
	api.GET("/copies/:copyUid/loans", h.ListCopyLoans, mw.StaffOnly)
	api.POST("/copies/:copyUid/subscribe", h.Subscribe)
	api.POST("/copies/:copyUid/notify", h.NotifyCopy, mw.StaffOnly)
	api.POST("/notify", h.NotifyAll, mw.StaffOnly)

	api.GET("/subscriptions/my", h.ListMySubscriptions)
	api.POST("/subscriptions/:subscriptionUid/unsubscribe", h.Unsubscribe)

	api.GET("/fines", h.ListFines, mw.StaffOnly)
	api.GET("/fines/my", h.ListMyFines)
	api.PATCH("/fines/:fineUid", h.UpdateFine, mw.StaffOnly)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps the domain taxonomy onto status codes. Conflict and
// invalid-state both surface as 409, with the wrapped message telling
// them apart.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrInvalidState):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrCorrupt):
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func userName(c echo.Context) (string, error) {
	return auth.UserName(c.Request().Context())
}

func (h *Handler) CreateBorrowingRequest(c echo.Context) error {
	return h.createRequest(c, h.svc.CreateBorrowingRequest)
}

func (h *Handler) CreateReturningRequest(c echo.Context) error {
	return h.createRequest(c, h.svc.CreateReturningRequest)
}

func (h *Handler) createRequest(c echo.Context, create func(ctx context.Context, username, copyUid string) (model.RequestView, error)) error {
	var req model.CreateRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	name, err := userName(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	rv, err := create(c.Request().Context(), name, req.CopyUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, rv)
}

func (h *Handler) ProcessRequest(c echo.Context) error {
	requestUid := c.Param("requestUid")
	var req model.ProcessRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	rv, err := h.svc.ProcessRequest(c.Request().Context(), requestUid, *req.Approve)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rv)
}

func (h *Handler) CancelRequest(c echo.Context) error {
	name, err := userName(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	if err := h.svc.CancelRequest(c.Request().Context(), name, c.Param("requestUid")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) GetRequest(c echo.Context) error {
	rv, err := h.svc.GetRequest(c.Request().Context(), c.Param("requestUid"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rv)
}

func (h *Handler) ListRequests(c echo.Context) error {
	items, err := h.svc.ListRequests(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListMyRequests(c echo.Context) error {
	name, err := userName(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	items, err := h.svc.ListRequestsByPatron(c.Request().Context(), name)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}
