package repo

import (
	"context"

	"github.com/visionx-optics/visionx-server/internal/models"
	"gorm.io/gorm"
)

func (r *GormRepo) ListNotifications(ctx context.Context, userID uint) ([]models.Notification, error) {
	out := []models.Notification{}
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormRepo) CreateNotification(ctx context.Context, n *models.Notification) error {
	return r.DB.WithContext(ctx).Create(n).Error
}

// MarkNotificationRead flips the read flag; it never flips back.
func (r *GormRepo) MarkNotificationRead(ctx context.Context, userID, id uint) error {
	res := r.DB.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
