package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visionx-optics/visionx-server/internal/ai"
	"github.com/visionx-optics/visionx-server/internal/models"
	"github.com/visionx-optics/visionx-server/internal/service"
)

func testAIClient(t *testing.T, baseURL string) *ai.Client {
	t.Helper()
	c, err := ai.NewClient(ai.Config{BaseURL: baseURL, APIKey: "test-key", Model: "test-model"}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	return c
}

func TestDiagnose_CollaboratorFailureIsBadGateway(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	customer := models.Customer{Name: "Subject", Email: "s@example.com"}
	require.NoError(t, env.Repo.CreateCustomer(ctx, &customer))

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	down.Close()

	h := &EyeTestHTTP{
		Svc:      &service.EyeTestService{Repo: env.Repo, AI: testAIClient(t, down.URL)},
		Activity: env.activity(),
	}

	_, c := env.doJSONRequest(http.MethodPost, "/api/eye-tests/diagnose", map[string]any{
		"customer_id": customer.ID,
		"image":       "aGVsbG8=",
	})
	asUser(c, 1, "staff")

	err := h.Diagnose(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, he.Code)
	assert.Equal(t, "diagnosis failed, try again", he.Message)

	// Nothing persisted on failure.
	stored, err2 := env.Repo.ListEyeTestsByCustomer(ctx, customer.ID)
	require.NoError(t, err2)
	assert.Empty(t, stored)
}

func TestDiagnose_StoresAndReturnsResult(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	customer := models.Customer{Name: "Subject", Email: "ok@example.com"}
	require.NoError(t, env.Repo.CreateCustomer(ctx, &customer))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"summary\":\"moderate hyperopia\",\"pd\":\"64mm\",\"confidence_level\":90}"}}]}`))
	}))
	defer srv.Close()

	h := &EyeTestHTTP{
		Svc:      &service.EyeTestService{Repo: env.Repo, AI: testAIClient(t, srv.URL)},
		Activity: env.activity(),
	}

	rec, c := env.doJSONRequest(http.MethodPost, "/api/eye-tests/diagnose", map[string]any{
		"customer_id": customer.ID,
		"image":       "aGVsbG8=",
		"mime_type":   "image/png",
	})
	asUser(c, 1, "staff")

	require.NoError(t, h.Diagnose(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		ID      uint                `json:"id"`
		Results ai.DiagnosisResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "moderate hyperopia", resp.Results.Summary)

	stored, err := env.Repo.ListEyeTestsByCustomer(ctx, customer.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
}
