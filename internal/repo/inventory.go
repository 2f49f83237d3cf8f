package repo

import (
	"context"

	"github.com/visionx-optics/visionx-server/internal/models"
	"github.com/visionx-optics/visionx-server/internal/transport"
	"gorm.io/gorm"
)

func (r *GormRepo) ListItems(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetItem(ctx context.Context, id uint) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := r.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) CreateItem(ctx context.Context, item *models.InventoryItem) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

func (r *GormRepo) PatchItem(ctx context.Context, req transport.PatchInventoryRequest, id uint) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := r.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}

	if req.Brand != nil {
		item.Brand = *req.Brand
	}
	if req.Model != nil {
		item.Model = *req.Model
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Stock != nil {
		item.Stock = *req.Stock
	}
	if req.ImageURL != nil {
		item.ImageURL = *req.ImageURL
	}
	if req.Details != nil {
		item.Details = string(*req.Details)
	}

	if err := r.DB.WithContext(ctx).Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) DeleteItem(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.InventoryItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SearchItemsLike is the fallback scan used when elasticsearch is not
// configured.
func (r *GormRepo) SearchItemsLike(ctx context.Context, q string) ([]models.InventoryItem, error) {
	pattern := "%" + q + "%"
	var items []models.InventoryItem
	if err := r.DB.WithContext(ctx).
		Where("brand LIKE ? OR model LIKE ? OR type LIKE ?", pattern, pattern, pattern).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) CountLowStock(ctx context.Context, threshold uint) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.InventoryItem{}).Where("stock < ?", threshold).Count(&n).Error
	return n, err
}
