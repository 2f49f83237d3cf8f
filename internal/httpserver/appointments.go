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

type AppointmentHTTP struct {
	Svc      *service.AppointmentService
	Activity *service.ActivityService
}

func (h *AppointmentHTTP) ListAppointments(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "appointments.list")

	rows, err := h.Svc.List(ctx)
	if err != nil {
		l.Error("list_appointments_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list appointments")
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *AppointmentHTTP) CreateAppointment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "appointments.create")

	var req transport.CreateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_appointment_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	appt, err := h.Svc.Create(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
		}
		l.Error("create_appointment_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create appointment")
	}

	h.Activity.Record(ctx, mwauth.UserID(c), "appointment_created", fmt.Sprintf("appointment %d for customer %d", appt.ID, appt.CustomerID))
	return c.JSON(http.StatusCreated, appt)
}

func (h *AppointmentHTTP) PatchAppointment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "appointments.patch")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req transport.PatchAppointmentRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_appointment_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	appt, err := h.Svc.SetStatus(ctx, id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			return echo.NewHTTPError(http.StatusBadRequest, "unknown status")
		case errors.Is(err, service.ErrInvalidTransition):
			return echo.NewHTTPError(http.StatusBadRequest, "illegal status transition")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
		default:
			l.Error("patch_appointment_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot update appointment")
		}
	}

	h.Activity.Record(ctx, mwauth.UserID(c), "appointment_status_changed", fmt.Sprintf("appointment %d -> %s", id, req.Status))
	return c.JSON(http.StatusOK, appt)
}
