package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"

	"dressapi/models"
)

const (
	TypeChatLog   = "chat:log"
	TypeChatPrune = "chat:prune"
)

// Persisted exchanges older than this are pruned by the scheduled task.
const chatLogRetention = 30 * 24 * time.Hour

type ChatLogPayload struct {
	UserMessage string `json:"user_message"`
	BotResponse string `json:"bot_response"`
}

// NewChatLogTask enqueues one exchange for persistence off the request path.
func NewChatLogTask(userMessage, botResponse string) (*asynq.Task, error) {
	payload, err := json.Marshal(ChatLogPayload{UserMessage: userMessage, BotResponse: botResponse})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeChatLog, payload), nil
}

func NewChatPruneTask() *asynq.Task {
	return asynq.NewTask(TypeChatPrune, []byte{})
}

func HandleChatLogTask(ctx context.Context, t *asynq.Task, db *gorm.DB) error {
	var payload ChatLogPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		// malformed payload will never succeed, do not retry
		sentry.CaptureException(err)
		return fmt.Errorf("chat log payload: %v: %w", err, asynq.SkipRetry)
	}
	entry := models.ChatLog{
		UserMessage: payload.UserMessage,
		BotResponse: payload.BotResponse,
	}
	if err := db.WithContext(ctx).Create(&entry).Error; err != nil {
		sentry.CaptureException(err)
		return fmt.Errorf("failed to persist chat log: %w", err)
	}
	return nil
}

func HandleChatPruneTask(ctx context.Context, t *asynq.Task, db *gorm.DB) error {
	cutoff := time.Now().UTC().Add(-chatLogRetention)
	result := db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&models.ChatLog{})
	if result.Error != nil {
		sentry.CaptureException(result.Error)
		return result.Error
	}
	fmt.Printf("[Queue] Pruned %v chat log rows older than %s\n", result.RowsAffected, cutoff.Format("2006-01-02"))
	return nil
}
