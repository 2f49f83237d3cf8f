package httpserver

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/visionx-optics/visionx-server/internal/logging"
)

// UploadHTTP stores eye images under a flat directory with generated
// names; the directory is served as static files.
type UploadHTTP struct {
	Dir string
}

func (h *UploadHTTP) Upload(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "upload")

	file, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file")
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read file")
	}
	defer src.Close()

	if err := os.MkdirAll(h.Dir, 0o755); err != nil {
		l.Error("upload_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot store file")
	}

	name := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(file.Filename))
	dst, err := os.Create(filepath.Join(h.Dir, name))
	if err != nil {
		l.Error("upload_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot store file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		l.Error("upload_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot store file")
	}

	return c.JSON(http.StatusCreated, echo.Map{"url": "/uploads/" + name})
}
