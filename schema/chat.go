package schema

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is a single entry of a request's append-only message log.
// The id is server-assigned and increases monotonically within the log;
// together with the server timestamp it defines the display order.
type ChatMessage struct {
	ID         int64     `json:"id" gorm:"primary_key"`
	RequestID  uuid.UUID `json:"request_id" gorm:"type:uuid;index"`
	SenderID   uuid.UUID `json:"sender_id" gorm:"type:uuid"`
	SenderRole string    `json:"sender_role"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}
