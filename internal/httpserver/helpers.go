package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}
	return uint(id), nil
}
