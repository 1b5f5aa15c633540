package entities

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one entry in a crop's assistant history. Append-only.
type ChatMessage struct {
	MessageID uint      `gorm:"primaryKey" json:"message_id"`
	CropID    string    `gorm:"index" json:"crop_id"`
	Role      string    `json:"role"` // user|assistant
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
