package item

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	is "equiploan/service/item"
)

type Controller struct {
	Svc is.Service
	V   *validator.Validate
	Log *slog.Logger
}

type AddItemReq struct {
	Username        string `json:"username" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ItemName        string `json:"new_item_name" validate:"required"`
	ItemDescription string `json:"new_item_description"`
}

type RemoveItemReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	ItemName string `json:"item_name" validate:"required"`
}

// POST /v1/admin/items  (admin)
func (h *Controller) Add(c echo.Context) error {
	var req AddItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	it, err := h.Svc.Add(c.Request().Context(), req.Username, req.Password, req.ItemName, req.ItemDescription)
	if err != nil {
		switch is.Code(err) {
		case is.ErrAuthFailed:
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "authentication failed"})
		case is.ErrNotAllowed:
			return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
		case is.ErrNameTaken:
			return c.JSON(http.StatusConflict, echo.Map{"message": "item name already exists"})
		case is.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		default:
			h.Log.Error("item add", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"item_name":        it.Name,
		"item_description": it.Description,
		"item_status":      it.Status,
	})
}

// POST /v1/admin/items/remove  (admin)
func (h *Controller) Remove(c echo.Context) error {
	var req RemoveItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	if err := h.Svc.Remove(c.Request().Context(), req.Username, req.Password, req.ItemName); err != nil {
		switch is.Code(err) {
		case is.ErrAuthFailed:
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "authentication failed"})
		case is.ErrNotAllowed:
			return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
		case is.ErrItemNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "item not found"})
		default:
			h.Log.Error("item remove", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"item_name": req.ItemName})
}

// GET /v1/items (JWT)
func (h *Controller) List(c echo.Context) error {
	items, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("item list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
