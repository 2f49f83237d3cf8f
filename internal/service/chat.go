package service

import (
	"context"
	"strings"

	"github.com/visionx-optics/visionx-server/internal/ai"
	"github.com/visionx-optics/visionx-server/internal/logging"
)

type ChatService struct {
	AI *ai.Client
}

// Reply asks the assistant and degrades to the static fallback on any
// collaborator failure, so the widget always gets an answer.
func (s *ChatService) Reply(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrValidation
	}

	reply, err := s.AI.Chat(ctx, message)
	if err != nil {
		logging.FromContext(ctx).Warn("chat fell back to static reply", "error", err)
		return ai.ChatFallback, nil
	}
	if reply == "" {
		return ai.ChatFallback, nil
	}
	return reply, nil
}
