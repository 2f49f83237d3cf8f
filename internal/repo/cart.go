package repo

import (
	"context"

	"github.com/visionx-optics/visionx-server/internal/models"
	"gorm.io/gorm"
)

func (r *GormRepo) ListCart(ctx context.Context, userID uint) ([]models.CartItem, error) {
	items := []models.CartItem{}
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) FindCartLine(ctx context.Context, userID, itemID uint) (*models.CartItem, error) {
	var line models.CartItem
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *GormRepo) CreateCartLine(ctx context.Context, line *models.CartItem) error {
	return r.DB.WithContext(ctx).Create(line).Error
}

func (r *GormRepo) SaveCartLine(ctx context.Context, line *models.CartItem) error {
	return r.DB.WithContext(ctx).Save(line).Error
}

func (r *GormRepo) DeleteCartLine(ctx context.Context, userID, lineID uint) error {
	res := r.DB.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, lineID).
		Delete(&models.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) ClearCart(ctx context.Context, userID uint) error {
	return r.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
