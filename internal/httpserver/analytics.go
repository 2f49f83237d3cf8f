package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/visionx-optics/visionx-server/internal/logging"
	"github.com/visionx-optics/visionx-server/internal/service"
)

type AnalyticsHTTP struct {
	Svc *service.AnalyticsService
}

func (h *AnalyticsHTTP) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "analytics.dashboard")

	stats, err := h.Svc.Dashboard(ctx)
	if err != nil {
		l.Error("dashboard_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot compute stats")
	}
	return c.JSON(http.StatusOK, echo.Map{"stats": stats})
}

func (h *AnalyticsHTTP) EyeConditions(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "analytics.eye_conditions")

	stats, err := h.Svc.EyeConditions(ctx)
	if err != nil {
		l.Error("eye_conditions_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot compute stats")
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *AnalyticsHTTP) Demographics(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "analytics.demographics")

	demo, err := h.Svc.Demographics(ctx)
	if err != nil {
		l.Error("demographics_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot compute stats")
	}
	return c.JSON(http.StatusOK, demo)
}
