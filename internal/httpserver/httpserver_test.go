package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/visionx-optics/visionx-server/internal/db"
	"github.com/visionx-optics/visionx-server/internal/hash"
	"github.com/visionx-optics/visionx-server/internal/models"
	"github.com/visionx-optics/visionx-server/internal/repo"
	"github.com/visionx-optics/visionx-server/internal/service"
)

type testEnv struct {
	T    *testing.T
	E    *echo.Echo
	Repo *repo.GormRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	return &testEnv{
		T:    t,
		E:    echo.New(),
		Repo: repo.New(gdb),
	}
}

func (env *testEnv) activity() *service.ActivityService {
	return &service.ActivityService{Repo: env.Repo}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func (env *testEnv) seedUser(email, password, role string) *models.User {
	env.T.Helper()

	h, err := hash.HashPassword(password)
	require.NoError(env.T, err)

	u := &models.User{Name: "Test User", Email: email, PasswordHash: h, Role: role}
	require.NoError(env.T, env.Repo.CreateUser(context.Background(), u))
	return u
}

func asUser(c echo.Context, userID uint, role string) {
	c.Set("user_id", userID)
	c.Set("role", role)
}
