package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/visionx-optics/visionx-server/internal/logging"
	"github.com/visionx-optics/visionx-server/internal/service"
	"github.com/visionx-optics/visionx-server/internal/transport"
)

type ChatHTTP struct {
	Svc *service.ChatService
}

func (h *ChatHTTP) Chat(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "chat")

	var req transport.ChatRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("chat_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	reply, err := h.Svc.Reply(ctx, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, "empty message")
		}
		l.Error("chat_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "chat failed")
	}
	return c.JSON(http.StatusOK, transport.ChatResponse{Reply: reply})
}
