package models

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatTurn is one message of an in-memory session. Turns are append-only
// and live only as long as the process.
type ChatTurn struct {
	Role      string    `json:"role"` // user, assistant
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatLog is the persisted record of one exchange, written off the
// request path by the worker.
type ChatLog struct {
	JsonModel
	UserMessage string `gorm:"type:text" json:"user_message"`
	BotResponse string `gorm:"type:text" json:"bot_response"`
}
