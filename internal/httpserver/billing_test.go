package httpserver

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visionx-optics/visionx-server/internal/models"
	"github.com/visionx-optics/visionx-server/internal/service"
)

func TestCheckout_CreatesSaleAndNotifies(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	item := models.InventoryItem{Category: "frame", Brand: "Ray-Ban", Model: "Wayfarer", Price: 100, Stock: 5, Details: "{}"}
	require.NoError(t, env.Repo.CreateItem(ctx, &item))
	require.NoError(t, env.Repo.CreateCartLine(ctx, &models.CartItem{UserID: 1, ItemID: item.ID, Quantity: 2}))

	h := &BillingHTTP{Svc: &service.BillingService{Repo: env.Repo}, Activity: env.activity()}

	rec, c := env.doJSONRequest(http.MethodPost, "/api/billing", map[string]uint{"customer_id": 9})
	asUser(c, 1, "staff")
	require.NoError(t, h.Checkout(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	got, err := env.Repo.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, got.Stock)

	notifications, err := env.Repo.ListNotifications(ctx, 1)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Order placed", notifications[0].Title)

	activity, err := env.Repo.RecentActivity(ctx, 10)
	require.NoError(t, err)
	require.Len(t, activity, 1)
	assert.Equal(t, "sale_recorded", activity[0].Action)
}

func TestCheckout_InsufficientStockIsConflict(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	item := models.InventoryItem{Category: "frame", Brand: "Persol", Model: "649", Price: 200, Stock: 1, Details: "{}"}
	require.NoError(t, env.Repo.CreateItem(ctx, &item))
	require.NoError(t, env.Repo.CreateCartLine(ctx, &models.CartItem{UserID: 1, ItemID: item.ID, Quantity: 3}))

	h := &BillingHTTP{Svc: &service.BillingService{Repo: env.Repo}, Activity: env.activity()}

	_, c := env.doJSONRequest(http.MethodPost, "/api/billing", map[string]uint{"customer_id": 9})
	asUser(c, 1, "staff")

	err := h.Checkout(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)

	// Nothing sold, nothing cleared.
	got, err2 := env.Repo.GetItem(ctx, item.ID)
	require.NoError(t, err2)
	assert.EqualValues(t, 1, got.Stock)
}

func TestCheckout_EmptyCartIsBadRequest(t *testing.T) {
	env := newTestEnv(t)

	h := &BillingHTTP{Svc: &service.BillingService{Repo: env.Repo}, Activity: env.activity()}

	_, c := env.doJSONRequest(http.MethodPost, "/api/billing", map[string]uint{"customer_id": 9})
	asUser(c, 1, "staff")

	err := h.Checkout(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}
