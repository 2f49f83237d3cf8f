package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visionx-optics/visionx-server/internal/ai"
)

func newTestAI(t *testing.T, baseURL string) *ai.Client {
	t.Helper()
	c, err := ai.NewClient(ai.Config{BaseURL: baseURL, APIKey: "test-key", Model: "test-model"}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	return c
}

func replyServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestChatService_Reply(t *testing.T) {
	t.Parallel()

	srv := replyServer(t, "Rest your eyes every 20 minutes.")
	defer srv.Close()

	svc := &ChatService{AI: newTestAI(t, srv.URL)}
	reply, err := svc.Reply(context.Background(), "my eyes feel tired")
	require.NoError(t, err)
	assert.Equal(t, "Rest your eyes every 20 minutes.", reply)
}

func TestChatService_Reply_FallsBackWhenCollaboratorFails(t *testing.T) {
	t.Parallel()

	srv := replyServer(t, "unused")
	srv.Close()

	svc := &ChatService{AI: newTestAI(t, srv.URL)}
	reply, err := svc.Reply(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, ai.ChatFallback, reply)
}

func TestChatService_Reply_FallsBackOnEmptyReply(t *testing.T) {
	t.Parallel()

	srv := replyServer(t, "")
	defer srv.Close()

	svc := &ChatService{AI: newTestAI(t, srv.URL)}
	reply, err := svc.Reply(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, ai.ChatFallback, reply)
}

func TestChatService_Reply_RejectsBlankMessage(t *testing.T) {
	t.Parallel()

	svc := &ChatService{}
	_, err := svc.Reply(context.Background(), "   ")
	require.ErrorIs(t, err, ErrValidation)
}
