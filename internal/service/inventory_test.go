package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visionx-optics/visionx-server/internal/models"
	"github.com/visionx-optics/visionx-server/internal/transport"
)

func TestInventoryService_Create_DetailsRoundTrip(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &InventoryService{Repo: r}
	ctx := context.Background()

	details := `{"color":"tortoise","material":"acetate","sizes":[52,54],"uv":{"rating":"400"}}`
	item, err := svc.Create(ctx, transport.CreateInventoryRequest{
		Category: "frame",
		Brand:    "Persol",
		Model:    "649",
		Price:    219.00,
		Stock:    6,
		Details:  json.RawMessage(details),
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, item.ID)
	require.NoError(t, err)

	var want, have map[string]any
	require.NoError(t, json.Unmarshal([]byte(details), &want))
	require.NoError(t, json.Unmarshal([]byte(got.Details), &have))
	assert.Equal(t, want, have)
}

func TestInventoryService_Create_Validation(t *testing.T) {
	t.Parallel()

	svc := &InventoryService{Repo: newTestRepo(t)}
	ctx := context.Background()

	_, err := svc.Create(ctx, transport.CreateInventoryRequest{Category: "hat", Price: 10})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, transport.CreateInventoryRequest{Category: "frame", Price: -1})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, transport.CreateInventoryRequest{Category: "frame", Price: 10, Details: json.RawMessage(`{"bad"`)})
	require.ErrorIs(t, err, ErrValidation)
}

func TestInventoryService_Create_EmptyDetailsBecomesObject(t *testing.T) {
	t.Parallel()

	svc := &InventoryService{Repo: newTestRepo(t)}

	item, err := svc.Create(context.Background(), transport.CreateInventoryRequest{Category: "lens", Brand: "Zeiss", Price: 99})
	require.NoError(t, err)
	assert.Equal(t, "{}", item.Details)
}

func TestInventoryService_Patch_PartialUpdate(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &InventoryService{Repo: r}
	ctx := context.Background()

	item, err := svc.Create(ctx, transport.CreateInventoryRequest{
		Category: "sunglasses",
		Brand:    "Oakley",
		Model:    "Holbrook",
		Price:    129.99,
		Stock:    8,
	})
	require.NoError(t, err)

	newPrice := 99.99
	newStock := uint(20)
	patched, err := svc.Patch(ctx, transport.PatchInventoryRequest{Price: &newPrice, Stock: &newStock}, item.ID)
	require.NoError(t, err)

	assert.Equal(t, 99.99, patched.Price)
	assert.EqualValues(t, 20, patched.Stock)
	assert.Equal(t, "Oakley", patched.Brand)
	assert.Equal(t, "Holbrook", patched.Model)
}

func TestInventoryService_Patch_RejectsNegativePrice(t *testing.T) {
	t.Parallel()

	svc := &InventoryService{Repo: newTestRepo(t)}

	bad := -5.0
	_, err := svc.Patch(context.Background(), transport.PatchInventoryRequest{Price: &bad}, 1)
	require.ErrorIs(t, err, ErrValidation)
}

func TestInventoryService_SearchItems_SQLFallbackWithoutCluster(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &InventoryService{Repo: r}
	ctx := context.Background()

	require.NoError(t, r.CreateItem(ctx, &models.InventoryItem{Category: "frame", Brand: "Ray-Ban", Model: "Wayfarer", Price: 149.99, Details: "{}"}))
	require.NoError(t, r.CreateItem(ctx, &models.InventoryItem{Category: "lens", Brand: "Essilor", Model: "Varilux", Price: 249.50, Details: "{}"}))

	items, err := svc.SearchItems(ctx, "Ray")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Ray-Ban", items[0].Brand)

	items, err = svc.SearchItems(ctx, "lens")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Essilor", items[0].Brand)
}
