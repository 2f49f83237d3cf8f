package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/visionx-optics/visionx-server/internal/logging"
	mwauth "github.com/visionx-optics/visionx-server/internal/middleware/auth"
	"github.com/visionx-optics/visionx-server/internal/repo"
	"github.com/visionx-optics/visionx-server/internal/service"
	"github.com/visionx-optics/visionx-server/internal/transport"
)

type BillingHTTP struct {
	Svc      *service.BillingService
	Activity *service.ActivityService
}

func (h *BillingHTTP) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "billing.checkout")

	var req transport.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("checkout_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	sale, err := h.Svc.Checkout(ctx, mwauth.UserID(c), req.CustomerID)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrInsufficientStock):
			return echo.NewHTTPError(http.StatusConflict, "insufficient stock")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return echo.NewHTTPError(http.StatusBadRequest, "cart is empty")
		default:
			l.Error("checkout_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "checkout failed")
		}
	}

	h.Activity.Record(ctx, mwauth.UserID(c), "sale_recorded", fmt.Sprintf("sale %d, total %.2f", sale.ID, sale.Total))
	return c.JSON(http.StatusCreated, sale)
}

func (h *BillingHTTP) ListSales(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "billing.list")

	sales, err := h.Svc.Sales(ctx)
	if err != nil {
		l.Error("list_sales_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list sales")
	}
	return c.JSON(http.StatusOK, sales)
}
