package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/visionx-optics/visionx-server/internal/logging"
	"github.com/visionx-optics/visionx-server/internal/service"
)

type ActivityHTTP struct {
	Svc *service.ActivityService
}

func (h *ActivityHTTP) RecentActivity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "activity.recent")

	rows, err := h.Svc.Recent(ctx, 100)
	if err != nil {
		l.Error("recent_activity_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list activity")
	}
	return c.JSON(http.StatusOK, rows)
}
