package store

import (
	"github.com/google/uuid"

	"github.com/community-help/portal-api/schema"
)

// AppendChatMessage persists a chat message with a server-assigned id and
// timestamp, and returns the persisted record. The stored copy is the
// canonical one echoed back to the room; client-supplied timestamps are
// never trusted.
func (s *CommunityStore) AppendChatMessage(helpID, senderID uuid.UUID, senderRole, text string) (*schema.ChatMessage, error) {
	msg := schema.ChatMessage{
		RequestID:  helpID,
		SenderID:   senderID,
		SenderRole: senderRole,
		Text:       text,
	}

	if err := s.ormDB.Create(&msg).Error; err != nil {
		return nil, err
	}

	return &msg, nil
}

// ListChatMessages returns the full message history of a request in display
// order: created_at ascending, ties broken by id ascending.
func (s *CommunityStore) ListChatMessages(helpID uuid.UUID) ([]schema.ChatMessage, error) {
	messages := []schema.ChatMessage{}

	if err := s.ormDB.
		Where("request_id = ?", helpID).
		Order("created_at asc, id asc").
		Find(&messages).Error; err != nil {
		return nil, err
	}

	return messages, nil
}
