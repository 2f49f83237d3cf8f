package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/visionx-optics/visionx-server/internal/logging"
	mwauth "github.com/visionx-optics/visionx-server/internal/middleware/auth"
	"github.com/visionx-optics/visionx-server/internal/service"
)

// PatientHTTP serves the self-scoped portal. A patient with no matching
// Customer row gets empty lists, not errors.
type PatientHTTP struct {
	Svc *service.PatientService
}

func (h *PatientHTTP) MyAppointments(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "patient.appointments")

	appts, err := h.Svc.MyAppointments(ctx, mwauth.UserID(c))
	if err != nil {
		l.Error("patient_appointments_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list appointments")
	}
	return c.JSON(http.StatusOK, appts)
}

func (h *PatientHTTP) MyTests(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "patient.tests")

	tests, err := h.Svc.MyTests(ctx, mwauth.UserID(c))
	if err != nil {
		l.Error("patient_tests_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list tests")
	}
	return c.JSON(http.StatusOK, tests)
}

func (h *PatientHTTP) MyPrescriptions(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "patient.prescriptions")

	prescriptions, err := h.Svc.MyPrescriptions(ctx, mwauth.UserID(c))
	if err != nil {
		l.Error("patient_prescriptions_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list prescriptions")
	}
	return c.JSON(http.StatusOK, prescriptions)
}
