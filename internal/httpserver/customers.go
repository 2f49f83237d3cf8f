package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/visionx-optics/visionx-server/internal/logging"
	mwauth "github.com/visionx-optics/visionx-server/internal/middleware/auth"
	"github.com/visionx-optics/visionx-server/internal/service"
	"github.com/visionx-optics/visionx-server/internal/transport"
)

type CustomerHTTP struct {
	Svc      *service.CustomerService
	Activity *service.ActivityService
}

func (h *CustomerHTTP) ListCustomers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customers.list")

	customers, err := h.Svc.List(ctx)
	if err != nil {
		l.Error("list_customers_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list customers")
	}
	return c.JSON(http.StatusOK, customers)
}

func (h *CustomerHTTP) CreateCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customers.create")

	var req transport.CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_customer_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	customer, err := h.Svc.Create(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
		}
		l.Error("create_customer_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create customer")
	}

	h.Activity.Record(ctx, mwauth.UserID(c), "customer_created", fmt.Sprintf("customer %d (%s)", customer.ID, customer.Name))
	return c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHTTP) DeleteCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customers.delete")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "customer not found")
		}
		l.Error("delete_customer_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete customer")
	}

	h.Activity.Record(ctx, mwauth.UserID(c), "customer_deleted", fmt.Sprintf("customer %d", id))
	return c.NoContent(http.StatusNoContent)
}
