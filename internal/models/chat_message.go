package models

// ChatSender identifies who authored a chat message.
type ChatSender string

const (
	ChatSenderUser      ChatSender = "user"
	ChatSenderAssistant ChatSender = "assistant"
)

// ChatMessage is one entry in a user's append-only assistant conversation.
type ChatMessage struct {
	Base
	UserID string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Sender ChatSender `gorm:"not null" json:"sender"`
	Text   string     `gorm:"type:text;not null" json:"text"`
}
