package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/visionx-optics/visionx-server/internal/logging"
	mwauth "github.com/visionx-optics/visionx-server/internal/middleware/auth"
	"github.com/visionx-optics/visionx-server/internal/service"
)

type NotificationHTTP struct {
	Svc *service.NotificationService
}

func (h *NotificationHTTP) ListNotifications(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "notifications.list")

	out, err := h.Svc.List(ctx, mwauth.UserID(c))
	if err != nil {
		l.Error("list_notifications_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list notifications")
	}
	return c.JSON(http.StatusOK, out)
}

func (h *NotificationHTTP) MarkRead(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "notifications.mark_read")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.MarkRead(ctx, mwauth.UserID(c), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "notification not found")
		}
		l.Error("mark_read_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update notification")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
