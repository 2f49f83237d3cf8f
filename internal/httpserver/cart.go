package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/visionx-optics/visionx-server/internal/logging"
	mwauth "github.com/visionx-optics/visionx-server/internal/middleware/auth"
	"github.com/visionx-optics/visionx-server/internal/service"
	"github.com/visionx-optics/visionx-server/internal/transport"
)

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	items, err := h.Svc.List(ctx, mwauth.UserID(c))
	if err != nil {
		l.Error("get_cart_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list cart")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	var req transport.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	line, err := h.Svc.Add(ctx, mwauth.UserID(c), req.ItemID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
		}
		l.Error("add_to_cart_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add to cart")
	}
	return c.JSON(http.StatusOK, line)
}

func (h *CartHTTP) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.Remove(ctx, mwauth.UserID(c), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "cart line not found")
		}
		l.Error("remove_from_cart_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot remove cart line")
	}
	return c.NoContent(http.StatusNoContent)
}
