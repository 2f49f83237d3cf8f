package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visionx-optics/visionx-server/internal/tokens"
)

var testSecret = []byte("test-jwt-secret")

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func doRequest(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return rec, mw(okHandler)(c)
}

func TestRequireAuth_MissingToken(t *testing.T) {
	t.Parallel()

	m := New(testSecret)

	_, err := doRequest(t, m.RequireAuth, "")
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
	assert.Equal(t, "Unauthorized", he.Message)
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	t.Parallel()

	m := New(testSecret)

	_, err := doRequest(t, m.RequireAuth, "Basic dXNlcjpwYXNz")
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
	assert.Equal(t, "Unauthorized", he.Message)
}

func TestRequireAuth_GarbageToken(t *testing.T) {
	t.Parallel()

	m := New(testSecret)

	_, err := doRequest(t, m.RequireAuth, "Bearer not-a-jwt")
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
	assert.Equal(t, "Invalid token", he.Message)
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	t.Parallel()

	m := New(testSecret)

	forged, err := tokens.SignAccessToken(1, "admin", "Mallory", []byte("other-secret"))
	require.NoError(t, err)

	_, mwErr := doRequest(t, m.RequireAuth, "Bearer "+forged)
	he, ok := mwErr.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
	assert.Equal(t, "Invalid token", he.Message)
}

func TestRequireAuth_ValidTokenSetsContext(t *testing.T) {
	t.Parallel()

	m := New(testSecret)

	token, err := tokens.SignAccessToken(42, "staff", "Sam", testSecret)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.RequireAuth(func(c echo.Context) error {
		assert.EqualValues(t, 42, UserID(c))
		assert.Equal(t, "staff", Role(c))
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin_RejectsNonAdmin(t *testing.T) {
	t.Parallel()

	m := New(testSecret)

	token, err := tokens.SignAccessToken(7, "patient", "Pat", testSecret)
	require.NoError(t, err)

	_, mwErr := doRequest(t, m.RequireAdmin, "Bearer "+token)
	he, ok := mwErr.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Code)
	assert.Equal(t, "Forbidden", he.Message)
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	t.Parallel()

	m := New(testSecret)

	token, err := tokens.SignAccessToken(1, "admin", "Root", testSecret)
	require.NoError(t, err)

	rec, err := doRequest(t, m.RequireAdmin, "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_PatientOnly(t *testing.T) {
	t.Parallel()

	m := New(testSecret)
	mw := m.RequireRole("patient")

	staffToken, err := tokens.SignAccessToken(2, "staff", "Sam", testSecret)
	require.NoError(t, err)
	_, mwErr := doRequest(t, mw, "Bearer "+staffToken)
	he, ok := mwErr.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Code)

	patientToken, err := tokens.SignAccessToken(3, "patient", "Pat", testSecret)
	require.NoError(t, err)
	rec, err := doRequest(t, mw, "Bearer "+patientToken)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
