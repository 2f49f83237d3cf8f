package service

import (
	"context"

	"github.com/visionx-optics/visionx-server/internal/models"
	"github.com/visionx-optics/visionx-server/internal/repo"
)

type NotificationService struct {
	Repo *repo.GormRepo
}

func (s *NotificationService) List(ctx context.Context, userID uint) ([]models.Notification, error) {
	return s.Repo.ListNotifications(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, id uint) error {
	return s.Repo.MarkNotificationRead(ctx, userID, id)
}
