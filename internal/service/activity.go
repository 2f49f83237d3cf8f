package service

import (
	"context"
	"fmt"

	"github.com/visionx-optics/visionx-server/internal/events"
	"github.com/visionx-optics/visionx-server/internal/logging"
	"github.com/visionx-optics/visionx-server/internal/models"
	"github.com/visionx-optics/visionx-server/internal/repo"
)

// ActivityService appends the audit trail and mirrors each entry to the
// kafka audit topic. The mirror is best-effort; the DB row is the record.
type ActivityService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

func (s *ActivityService) Record(ctx context.Context, userID uint, action, details string) {
	l := logging.FromContext(ctx).With("svc", "activity.record")

	entry := models.ActivityLog{UserID: userID, Action: action, Details: details}
	if err := s.Repo.AppendActivity(ctx, &entry); err != nil {
		l.Error("activity append failed", "action", action, "error", err)
	}

	event := map[string]interface{}{
		"type":    action,
		"user_id": userID,
		"details": details,
	}
	if err := s.Producer.PublishEvent(ctx, fmt.Sprint(userID), event); err != nil {
		l.Error("audit event publish failed", "action", action, "error", err)
	}
}

func (s *ActivityService) Recent(ctx context.Context, limit int) ([]repo.ActivityRow, error) {
	return s.Repo.RecentActivity(ctx, limit)
}
