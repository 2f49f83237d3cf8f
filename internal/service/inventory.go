package service

import (
	"context"
	"encoding/json"

	"github.com/visionx-optics/visionx-server/internal/logging"
	"github.com/visionx-optics/visionx-server/internal/models"
	"github.com/visionx-optics/visionx-server/internal/repo"
	"github.com/visionx-optics/visionx-server/internal/search"
	"github.com/visionx-optics/visionx-server/internal/transport"
)

var validCategories = map[string]bool{
	"frame":      true,
	"sunglasses": true,
	"lens":       true,
	"accessory":  true,
}

// InventoryService keeps the elasticsearch index in step with the table.
// Index writes are best-effort; the table is authoritative.
type InventoryService struct {
	Repo   *repo.GormRepo
	Search *search.Client
}

func (s *InventoryService) List(ctx context.Context) ([]models.InventoryItem, error) {
	return s.Repo.ListItems(ctx)
}

func (s *InventoryService) Get(ctx context.Context, id uint) (*models.InventoryItem, error) {
	return s.Repo.GetItem(ctx, id)
}

func (s *InventoryService) Create(ctx context.Context, req transport.CreateInventoryRequest) (*models.InventoryItem, error) {
	l := logging.FromContext(ctx).With("svc", "inventory.create")

	if !validCategories[req.Category] {
		return nil, ErrValidation
	}
	if req.Price < 0 {
		return nil, ErrValidation
	}

	details := "{}"
	if len(req.Details) > 0 {
		if !json.Valid(req.Details) {
			return nil, ErrValidation
		}
		details = string(req.Details)
	}

	item := models.InventoryItem{
		Category: req.Category,
		Brand:    req.Brand,
		Model:    req.Model,
		Price:    req.Price,
		Stock:    req.Stock,
		ImageURL: req.ImageURL,
		Details:  details,
	}
	if err := s.Repo.CreateItem(ctx, &item); err != nil {
		return nil, err
	}

	if err := s.Search.IndexItem(ctx, item); err != nil {
		l.Warn("search index failed", "item_id", item.ID, "error", err)
	}
	return &item, nil
}

func (s *InventoryService) Patch(ctx context.Context, req transport.PatchInventoryRequest, id uint) (*models.InventoryItem, error) {
	l := logging.FromContext(ctx).With("svc", "inventory.patch")

	if req.Price != nil && *req.Price < 0 {
		return nil, ErrValidation
	}
	if req.Details != nil && !json.Valid(*req.Details) {
		return nil, ErrValidation
	}

	item, err := s.Repo.PatchItem(ctx, req, id)
	if err != nil {
		return nil, err
	}

	if err := s.Search.IndexItem(ctx, *item); err != nil {
		l.Warn("search index failed", "item_id", item.ID, "error", err)
	}
	return item, nil
}

func (s *InventoryService) Delete(ctx context.Context, id uint) error {
	l := logging.FromContext(ctx).With("svc", "inventory.delete")

	if err := s.Repo.DeleteItem(ctx, id); err != nil {
		return err
	}
	if err := s.Search.DeleteItem(ctx, id); err != nil {
		l.Warn("search delete failed", "item_id", id, "error", err)
	}
	return nil
}

// SearchItems prefers the full-text index and falls back to a LIKE scan
// when no cluster is configured or the query fails.
func (s *InventoryService) SearchItems(ctx context.Context, q string) ([]models.InventoryItem, error) {
	l := logging.FromContext(ctx).With("svc", "inventory.search")

	if s.Search != nil {
		items, err := s.Search.Search(ctx, q, 50)
		if err == nil {
			return items, nil
		}
		l.Warn("search fell back to sql scan", "error", err)
	}
	return s.Repo.SearchItemsLike(ctx, q)
}
