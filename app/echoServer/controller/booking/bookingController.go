package booking

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	bs "equiploan/service/booking"
)

type Controller struct {
	Svc bs.Service
	V   *validator.Validate
	Log *slog.Logger
}

func statusFor(code bs.ErrCode) int {
	switch code {
	case bs.ErrAuthFailed:
		return http.StatusUnauthorized
	case bs.ErrNotAllowed:
		return http.StatusForbidden
	case bs.ErrItemNotFound, bs.ErrReservationNotFound:
		return http.StatusNotFound
	case bs.ErrInvalidInterval, bs.ErrStartInPast, bs.ErrEndInPast:
		return http.StatusBadRequest
	case bs.ErrConflict, bs.ErrBadTransition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *Controller) fail(c echo.Context, op string, err error) error {
	code := bs.Code(err)
	if code == "" {
		h.Log.Error(op, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(statusFor(code), echo.Map{"message": string(code)})
}

// POST /v1/reserve
func (h *Controller) Reserve(c echo.Context) error {
	var req ReserveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	start, err := parseBoundaryTime(req.StartTime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid start_time"})
	}
	end, err := parseBoundaryTime(req.EndTime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid end_time"})
	}

	r, err := h.Svc.Reserve(c.Request().Context(), req.Username, req.Password, req.Item, start, end)
	if err != nil {
		return h.fail(c, "reserve", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"reservation": r})
}

// POST /v1/cancel
func (h *Controller) Cancel(c echo.Context) error {
	req, ok := h.bindReservationReq(c)
	if !ok {
		return nil
	}
	r, err := h.Svc.Cancel(c.Request().Context(), req.Username, req.Password, req.ReservationID)
	if err != nil {
		return h.fail(c, "cancel", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"reservation": r})
}

// POST /v1/admin/lend
func (h *Controller) Lend(c echo.Context) error {
	req, ok := h.bindReservationReq(c)
	if !ok {
		return nil
	}
	r, err := h.Svc.Lend(c.Request().Context(), req.Username, req.Password, req.ReservationID)
	if err != nil {
		return h.fail(c, "lend", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"reservation": r})
}

// POST /v1/admin/return
func (h *Controller) Return(c echo.Context) error {
	req, ok := h.bindReservationReq(c)
	if !ok {
		return nil
	}
	r, err := h.Svc.Return(c.Request().Context(), req.Username, req.Password, req.ReservationID)
	if err != nil {
		return h.fail(c, "return", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"reservation": r})
}

// GET /v1/items/available?start=...&end=...
func (h *Controller) Available(c echo.Context) error {
	start, err := parseBoundaryTime(c.QueryParam("start"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid start"})
	}
	end, err := parseBoundaryTime(c.QueryParam("end"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid end"})
	}
	if !start.Before(end) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid range"})
	}
	items, err := h.Svc.ListAvailable(c.Request().Context(), start, end)
	if err != nil {
		return h.fail(c, "available", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// POST /v1/admin/overdue
func (h *Controller) Overdue(c echo.Context) error {
	req, ok := h.bindAdminReq(c)
	if !ok {
		return nil
	}
	rows, err := h.Svc.ListOverdue(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return h.fail(c, "overdue", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"overdue_reservations": rows})
}

// POST /v1/admin/pending
func (h *Controller) Pending(c echo.Context) error {
	req, ok := h.bindAdminReq(c)
	if !ok {
		return nil
	}
	rows, err := h.Svc.ListPending(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return h.fail(c, "pending", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"pending_reservations": rows})
}

// GET /v1/reservations (JWT)
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.ListAll(c.Request().Context())
	if err != nil {
		return h.fail(c, "list reservations", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

func (h *Controller) bindReservationReq(c echo.Context) (ReservationReq, bool) {
	var req ReservationReq
	if err := c.Bind(&req); err != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
		return req, false
	}
	if err := h.V.Struct(req); err != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
		return req, false
	}
	return req, true
}

func (h *Controller) bindAdminReq(c echo.Context) (AdminReq, bool) {
	var req AdminReq
	if err := c.Bind(&req); err != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
		return req, false
	}
	if err := h.V.Struct(req); err != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
		return req, false
	}
	return req, true
}
