package repo

import (
	"context"

	"github.com/visionx-optics/visionx-server/internal/models"
)

type ActivityRow struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"user_id"`
	UserName  string `json:"user_name"`
	Action    string `json:"action"`
	Details   string `json:"details"`
	CreatedAt string `json:"timestamp"`
}

func (r *GormRepo) AppendActivity(ctx context.Context, entry *models.ActivityLog) error {
	return r.DB.WithContext(ctx).Create(entry).Error
}

func (r *GormRepo) RecentActivity(ctx context.Context, limit int) ([]ActivityRow, error) {
	rows := []ActivityRow{}
	err := r.DB.WithContext(ctx).
		Table("activity_logs").
		Select("activity_logs.id, activity_logs.user_id, users.name AS user_name, activity_logs.action, activity_logs.details, activity_logs.created_at").
		Joins("JOIN users ON users.id = activity_logs.user_id").
		Order("activity_logs.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
