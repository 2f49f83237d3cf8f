package auth

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/visionx-optics/visionx-server/internal/tokens"
)

// Middleware guards every route except login. Role gates run after the
// token check, operation by operation: a patient authenticates fine and
// is rejected per-operation with 403.
type Middleware struct {
	Secret []byte
}

func New(secret []byte) *Middleware {
	return &Middleware{Secret: secret}
}

type ValidatorFunc func(claims *tokens.AccessClaims) error

func (m *Middleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return m.requireAuthWithValidator(next, nil)
}

func (m *Middleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return m.requireAuthWithValidator(next, func(claims *tokens.AccessClaims) error {
		if claims.Role != "admin" {
			return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
		}
		return nil
	})
}

func (m *Middleware) RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return m.requireAuthWithValidator(next, func(claims *tokens.AccessClaims) error {
			if claims.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
			}
			return nil
		})
	}
}

func (m *Middleware) requireAuthWithValidator(next echo.HandlerFunc, validator ValidatorFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := bearerToken(c)
		if raw == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		}

		claims, err := tokens.AccessClaimsFromToken(raw, m.Secret)
		if err != nil || claims == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
		}

		if validator != nil {
			if err := validator(claims); err != nil {
				return err
			}
		}

		setUserContext(c, claims)
		return next(c)
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func setUserContext(c echo.Context, claims *tokens.AccessClaims) {
	id, _ := strconv.ParseUint(claims.Subject, 10, 64)
	c.Set("user_id", uint(id))
	c.Set("role", claims.Role)
}

func UserID(c echo.Context) uint {
	if v, ok := c.Get("user_id").(uint); ok {
		return v
	}
	return 0
}

func Role(c echo.Context) string {
	if v, ok := c.Get("role").(string); ok {
		return v
	}
	return ""
}
