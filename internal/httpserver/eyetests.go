package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/visionx-optics/visionx-server/internal/ai"
	"github.com/visionx-optics/visionx-server/internal/logging"
	mwauth "github.com/visionx-optics/visionx-server/internal/middleware/auth"
	"github.com/visionx-optics/visionx-server/internal/service"
	"github.com/visionx-optics/visionx-server/internal/transport"
)

type EyeTestHTTP struct {
	Svc      *service.EyeTestService
	Activity *service.ActivityService
}

func (h *EyeTestHTTP) ListEyeTests(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "eyetests.list")

	rows, err := h.Svc.List(ctx)
	if err != nil {
		l.Error("list_eye_tests_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list eye tests")
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *EyeTestHTTP) RecordTest(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "eyetests.record")

	var req transport.CreateEyeTestRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("record_test_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	test, err := h.Svc.Record(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
		}
		l.Error("record_test_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot store eye test")
	}

	h.Activity.Record(ctx, mwauth.UserID(c), "eye_test_recorded", fmt.Sprintf("test %d for customer %d", test.ID, test.CustomerID))
	return c.JSON(http.StatusCreated, test)
}

// Diagnose runs the AI collaborator server-side. A collaborator failure
// is surfaced as 502 with a retry hint and persists nothing.
func (h *EyeTestHTTP) Diagnose(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "eyetests.diagnose")

	var req transport.DiagnoseRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("diagnose_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	test, result, err := h.Svc.Diagnose(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
		case errors.Is(err, ai.ErrUnavailable):
			return echo.NewHTTPError(http.StatusBadGateway, "diagnosis failed, try again")
		default:
			l.Error("diagnose_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot store diagnosis")
		}
	}

	h.Activity.Record(ctx, mwauth.UserID(c), "ai_diagnosis_stored", fmt.Sprintf("test %d for customer %d", test.ID, test.CustomerID))
	return c.JSON(http.StatusCreated, echo.Map{
		"id":      test.ID,
		"results": result,
	})
}
