package chat

import (
	"fmt"

	"github.com/google/uuid"
)

// RoomName derives the chat room identity of a help request. The mapping
// is deterministic and never recycled: one room per request id, reused for
// the whole lifetime of the request.
func RoomName(requestID uuid.UUID) string {
	return fmt.Sprintf("request_%s", requestID)
}
