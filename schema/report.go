package schema

import (
	"time"

	"github.com/google/uuid"
)

const (
	REPORT_PENDING      = "Pending"
	REPORT_UNDER_REVIEW = "Under Review"
	REPORT_RESOLVED     = "Resolved"
	REPORT_DISMISSED    = "Dismissed"
)

var reportStatuses = map[string]struct{}{
	REPORT_PENDING:      {},
	REPORT_UNDER_REVIEW: {},
	REPORT_RESOLVED:     {},
	REPORT_DISMISSED:    {},
}

// ValidReportStatus reports whether s is a known report status.
func ValidReportStatus(s string) bool {
	_, ok := reportStatuses[s]
	return ok
}

// UserReport is a complaint filed by one user against another, optionally
// tied to a help request.
type UserReport struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	ReporterID     uuid.UUID  `json:"reporter_id" gorm:"type:uuid"`
	ReportedUserID uuid.UUID  `json:"reported_user_id" gorm:"type:uuid"`
	RequestID      *uuid.UUID `json:"request_id,omitempty" gorm:"type:uuid"`
	IssueType      string     `json:"issue_type"`
	Description    string     `json:"description"`
	Status         string     `json:"status" sql:"default:'Pending'"`
	AdminNotes     string     `json:"admin_notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
