package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/visionx-optics/visionx-server/internal/logging"
	mwauth "github.com/visionx-optics/visionx-server/internal/middleware/auth"
	"github.com/visionx-optics/visionx-server/internal/service"
	"github.com/visionx-optics/visionx-server/internal/transport"
)

type PrescriptionHTTP struct {
	Svc      *service.PrescriptionService
	Activity *service.ActivityService
}

func (h *PrescriptionHTTP) ListPrescriptions(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "prescriptions.list")

	out, err := h.Svc.List(ctx)
	if err != nil {
		l.Error("list_prescriptions_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list prescriptions")
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PrescriptionHTTP) CreatePrescription(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "prescriptions.create")

	var req transport.CreatePrescriptionRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_prescription_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	p, err := h.Svc.Create(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
		}
		l.Error("create_prescription_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create prescription")
	}

	h.Activity.Record(ctx, mwauth.UserID(c), "prescription_created", fmt.Sprintf("prescription %d for customer %d", p.ID, p.CustomerID))
	return c.JSON(http.StatusCreated, p)
}
