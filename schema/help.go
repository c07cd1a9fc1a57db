package schema

import (
	"time"

	"github.com/google/uuid"
)

const (
	HELP_PENDING     = "Pending"
	HELP_ACCEPTED    = "Accepted"
	HELP_IN_PROGRESS = "In-progress"
	HELP_COMPLETED   = "Completed"
	HELP_REJECTED    = "Rejected"
)

// helpStatuses is the closed set of statuses a request may carry.
var helpStatuses = map[string]struct{}{
	HELP_PENDING:     {},
	HELP_ACCEPTED:    {},
	HELP_IN_PROGRESS: {},
	HELP_COMPLETED:   {},
	HELP_REJECTED:    {},
}

// ValidHelpStatus reports whether s is a known request status.
func ValidHelpStatus(s string) bool {
	_, ok := helpStatuses[s]
	return ok
}

// TerminalHelpStatus reports whether no further lifecycle transition is
// defined from s.
func TerminalHelpStatus(s string) bool {
	return s == HELP_COMPLETED || s == HELP_REJECTED
}

type HelpRequest struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	ResidentID  uuid.UUID  `json:"resident_id" gorm:"type:uuid"`
	HelperID    *uuid.UUID `json:"helper_id" gorm:"type:uuid"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Status      string     `json:"status" sql:"default:'Pending'"`
	Attachments string     `json:"attachments,omitempty"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// HelperAssigned reports whether a helper has claimed this request. The
// chat channel of a request exists iff this returns true.
func (r *HelpRequest) HelperAssigned() bool {
	return r.HelperID != nil
}

// IsParticipant reports whether userID is the resident or the bound helper
// of this request.
func (r *HelpRequest) IsParticipant(userID uuid.UUID) bool {
	if r.ResidentID == userID {
		return true
	}
	return r.HelperID != nil && *r.HelperID == userID
}

// IsBoundHelper reports whether userID is the helper assigned to this
// request.
func (r *HelpRequest) IsBoundHelper(userID uuid.UUID) bool {
	return r.HelperID != nil && *r.HelperID == userID
}
