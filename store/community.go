package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/community-help/portal-api/schema"
)

// UserStats summarizes registered residents and helpers.
type UserStats struct {
	TotalUsers     int64 `json:"total_users"`
	TotalResidents int64 `json:"total_residents"`
	TotalHelpers   int64 `json:"total_helpers"`
}

// HelpStats summarizes help requests per status.
type HelpStats struct {
	TotalRequests int64 `json:"total_requests"`
	Pending       int64 `json:"pending"`
	Accepted      int64 `json:"accepted"`
	InProgress    int64 `json:"in_progress"`
	Completed     int64 `json:"completed"`
	Rejected      int64 `json:"rejected"`
}

// ReportStats summarizes user reports per status.
type ReportStats struct {
	TotalReports int64 `json:"total_reports"`
	Pending      int64 `json:"pending"`
	UnderReview  int64 `json:"under_review"`
	Resolved     int64 `json:"resolved"`
	Dismissed    int64 `json:"dismissed"`
}

// community help portal main datastore
type CommunityCore interface {
	Ping() error

	// Account
	CreateAccount(name, contactInfo, location, passwordHash, role string) (*schema.User, error)
	GetAccount(id uuid.UUID) (*schema.User, error)
	GetAccountByContact(contactInfo string) (*schema.User, error)
	ListMembers() ([]schema.User, error)
	SetAccountBlocked(id uuid.UUID, blocked bool) error
	SetResetOTP(contactInfo, otp string, expiresAt time.Time) error
	ClearResetOTP(contactInfo string) error
	UpdatePassword(contactInfo, passwordHash string) error
	UserStats() (*UserStats, error)

	// Help request lifecycle
	CreateHelp(residentID uuid.UUID, title, description, category, attachments string) (*schema.HelpRequest, error)
	GetHelp(helpID uuid.UUID) (*schema.HelpRequest, error)
	ListHelps() ([]schema.HelpRequest, error)
	ListPendingHelps() ([]schema.HelpRequest, error)
	ListHelpsByResident(residentID uuid.UUID) ([]schema.HelpRequest, error)
	ListHelpsByHelper(helperID uuid.UUID) ([]schema.HelpRequest, error)
	AcceptHelp(helperID, helpID uuid.UUID) (*schema.HelpRequest, error)
	StartHelp(helperID, helpID uuid.UUID) error
	CompleteHelp(helperID, helpID uuid.UUID) error
	ApproveHelp(helpID uuid.UUID) error
	RejectHelp(helpID uuid.UUID) error
	SetHelpStatus(userID, helpID uuid.UUID, status string) error
	HelpStats() (*HelpStats, error)

	// Chat message log
	AppendChatMessage(helpID, senderID uuid.UUID, senderRole, text string) (*schema.ChatMessage, error)
	ListChatMessages(helpID uuid.UUID) ([]schema.ChatMessage, error)

	// User reports
	CreateReport(reporterID, reportedUserID uuid.UUID, requestID *uuid.UUID, issueType, description string) (*schema.UserReport, error)
	ListReportsByReporter(reporterID uuid.UUID) ([]schema.UserReport, error)
	ListReports() ([]schema.UserReport, error)
	SetReportStatus(reportID uuid.UUID, status, adminNotes string) error
	ReportStats() (*ReportStats, error)
}

// CommunityStore is an implementation of CommunityCore
type CommunityStore struct {
	ormDB *gorm.DB
}

func NewCommunityStore(ormDB *gorm.DB) *CommunityStore {
	return &CommunityStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *CommunityStore) Ping() error {
	return s.ormDB.DB().Ping()
}
