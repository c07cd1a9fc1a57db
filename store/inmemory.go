package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/community-help/portal-api/schema"
)

// InMemoryStore is a CommunityCore backed by process memory. It mirrors the
// conditional-update semantics of the SQL store under a mutex, so lifecycle
// races behave the same way. Used by tests and local development.
type InMemoryStore struct {
	mu sync.Mutex

	users    map[uuid.UUID]*schema.User
	helps    map[uuid.UUID]*schema.HelpRequest
	messages []schema.ChatMessage
	reports  map[uuid.UUID]*schema.UserReport

	nextMessageID int64
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		users:   map[uuid.UUID]*schema.User{},
		helps:   map[uuid.UUID]*schema.HelpRequest{},
		reports: map[uuid.UUID]*schema.UserReport{},
	}
}

func (s *InMemoryStore) Ping() error {
	return nil
}

func (s *InMemoryStore) CreateAccount(name, contactInfo, location, passwordHash, role string) (*schema.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ContactInfo == contactInfo {
			return nil, ErrAccountTaken
		}
	}

	u := &schema.User{
		ID:           uuid.New(),
		Name:         name,
		ContactInfo:  contactInfo,
		Location:     location,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	s.users[u.ID] = u

	copied := *u
	return &copied, nil
}

func (s *InMemoryStore) GetAccount(id uuid.UUID) (*schema.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrAccountNotFound
	}

	copied := *u
	return &copied, nil
}

func (s *InMemoryStore) GetAccountByContact(contactInfo string) (*schema.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ContactInfo == contactInfo {
			copied := *u
			return &copied, nil
		}
	}

	return nil, ErrAccountNotFound
}

func (s *InMemoryStore) ListMembers() ([]schema.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := []schema.User{}
	for _, u := range s.users {
		if u.Role == schema.ROLE_RESIDENT || u.Role == schema.ROLE_HELPER {
			users = append(users, *u)
		}
	}

	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return users, nil
}

func (s *InMemoryStore) SetAccountBlocked(id uuid.UUID, blocked bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok || u.Role == schema.ROLE_ADMIN {
		return ErrAccountNotFound
	}

	u.IsBlocked = blocked
	u.UpdatedAt = time.Now()
	return nil
}

func (s *InMemoryStore) SetResetOTP(contactInfo, otp string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ContactInfo == contactInfo {
			u.ResetOTP = otp
			u.ResetOTPExpiresAt = &expiresAt
			return nil
		}
	}

	return ErrAccountNotFound
}

func (s *InMemoryStore) ClearResetOTP(contactInfo string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ContactInfo == contactInfo {
			u.ResetOTP = ""
			u.ResetOTPExpiresAt = nil
			return nil
		}
	}

	return nil
}

func (s *InMemoryStore) UpdatePassword(contactInfo, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ContactInfo == contactInfo {
			u.PasswordHash = passwordHash
			u.ResetOTP = ""
			u.ResetOTPExpiresAt = nil
			return nil
		}
	}

	return ErrAccountNotFound
}

func (s *InMemoryStore) UserStats() (*UserStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := UserStats{}
	for _, u := range s.users {
		switch u.Role {
		case schema.ROLE_RESIDENT:
			stats.TotalUsers++
			stats.TotalResidents++
		case schema.ROLE_HELPER:
			stats.TotalUsers++
			stats.TotalHelpers++
		}
	}

	return &stats, nil
}

func (s *InMemoryStore) CreateHelp(residentID uuid.UUID, title, description, category, attachments string) (*schema.HelpRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	help := &schema.HelpRequest{
		ID:          uuid.New(),
		ResidentID:  residentID,
		Title:       title,
		Description: description,
		Category:    category,
		Attachments: attachments,
		Status:      schema.HELP_PENDING,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	s.helps[help.ID] = help

	copied := *help
	return &copied, nil
}

func (s *InMemoryStore) GetHelp(helpID uuid.UUID) (*schema.HelpRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	help, ok := s.helps[helpID]
	if !ok {
		return nil, ErrHelpNotFound
	}

	copied := *help
	return &copied, nil
}

func (s *InMemoryStore) ListHelps() ([]schema.HelpRequest, error) {
	return s.listHelps(func(*schema.HelpRequest) bool { return true })
}

func (s *InMemoryStore) ListPendingHelps() ([]schema.HelpRequest, error) {
	return s.listHelps(func(r *schema.HelpRequest) bool {
		return r.Status == schema.HELP_PENDING
	})
}

func (s *InMemoryStore) ListHelpsByResident(residentID uuid.UUID) ([]schema.HelpRequest, error) {
	return s.listHelps(func(r *schema.HelpRequest) bool {
		return r.ResidentID == residentID
	})
}

func (s *InMemoryStore) ListHelpsByHelper(helperID uuid.UUID) ([]schema.HelpRequest, error) {
	return s.listHelps(func(r *schema.HelpRequest) bool {
		return r.HelperID != nil && *r.HelperID == helperID
	})
}

func (s *InMemoryStore) listHelps(match func(*schema.HelpRequest) bool) ([]schema.HelpRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	helps := []schema.HelpRequest{}
	for _, r := range s.helps {
		if match(r) {
			helps = append(helps, *r)
		}
	}

	sort.Slice(helps, func(i, j int) bool {
		return helps[i].CreatedAt.After(helps[j].CreatedAt)
	})
	return helps, nil
}

// updateHelpIf is the in-memory counterpart of the SQL conditional update:
// the predicate is evaluated and the mutation applied under one lock
// acquisition, so only one writer can advance from a given observed state.
func (s *InMemoryStore) updateHelpIf(helpID uuid.UUID, cond func(*schema.HelpRequest) bool, apply func(*schema.HelpRequest)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	help, ok := s.helps[helpID]
	if !ok || !cond(help) {
		return ErrHelpAlreadyProcessed
	}

	apply(help)
	help.UpdatedAt = time.Now()
	return nil
}

func (s *InMemoryStore) AcceptHelp(helperID, helpID uuid.UUID) (*schema.HelpRequest, error) {
	if err := s.updateHelpIf(helpID,
		func(r *schema.HelpRequest) bool {
			return r.ResidentID != helperID && r.Status == schema.HELP_PENDING && r.HelperID == nil
		},
		func(r *schema.HelpRequest) {
			h := helperID
			r.Status = schema.HELP_ACCEPTED
			r.HelperID = &h
		},
	); err != nil {
		return nil, err
	}

	return s.GetHelp(helpID)
}

func (s *InMemoryStore) StartHelp(helperID, helpID uuid.UUID) error {
	return s.updateHelpIf(helpID,
		func(r *schema.HelpRequest) bool {
			return r.IsBoundHelper(helperID) && r.Status == schema.HELP_ACCEPTED
		},
		func(r *schema.HelpRequest) {
			r.Status = schema.HELP_IN_PROGRESS
		},
	)
}

func (s *InMemoryStore) CompleteHelp(helperID, helpID uuid.UUID) error {
	return s.updateHelpIf(helpID,
		func(r *schema.HelpRequest) bool {
			return r.IsBoundHelper(helperID) &&
				(r.Status == schema.HELP_ACCEPTED || r.Status == schema.HELP_IN_PROGRESS)
		},
		func(r *schema.HelpRequest) {
			r.Status = schema.HELP_COMPLETED
		},
	)
}

func (s *InMemoryStore) ApproveHelp(helpID uuid.UUID) error {
	return s.updateHelpIf(helpID,
		func(r *schema.HelpRequest) bool {
			return r.Status == schema.HELP_PENDING
		},
		func(r *schema.HelpRequest) {
			now := time.Now()
			r.ApprovedAt = &now
		},
	)
}

func (s *InMemoryStore) RejectHelp(helpID uuid.UUID) error {
	return s.updateHelpIf(helpID,
		func(r *schema.HelpRequest) bool {
			return r.Status == schema.HELP_PENDING
		},
		func(r *schema.HelpRequest) {
			r.Status = schema.HELP_REJECTED
		},
	)
}

func (s *InMemoryStore) SetHelpStatus(userID, helpID uuid.UUID, status string) error {
	return s.updateHelpIf(helpID,
		func(r *schema.HelpRequest) bool {
			return r.IsParticipant(userID) && !schema.TerminalHelpStatus(r.Status)
		},
		func(r *schema.HelpRequest) {
			r.Status = status
		},
	)
}

func (s *InMemoryStore) HelpStats() (*HelpStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := HelpStats{}
	for _, r := range s.helps {
		stats.TotalRequests++
		switch r.Status {
		case schema.HELP_PENDING:
			stats.Pending++
		case schema.HELP_ACCEPTED:
			stats.Accepted++
		case schema.HELP_IN_PROGRESS:
			stats.InProgress++
		case schema.HELP_COMPLETED:
			stats.Completed++
		case schema.HELP_REJECTED:
			stats.Rejected++
		}
	}

	return &stats, nil
}

func (s *InMemoryStore) AppendChatMessage(helpID, senderID uuid.UUID, senderRole, text string) (*schema.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextMessageID++
	msg := schema.ChatMessage{
		ID:         s.nextMessageID,
		RequestID:  helpID,
		SenderID:   senderID,
		SenderRole: senderRole,
		Text:       text,
		CreatedAt:  time.Now(),
	}
	s.messages = append(s.messages, msg)

	return &msg, nil
}

func (s *InMemoryStore) ListChatMessages(helpID uuid.UUID) ([]schema.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages := []schema.ChatMessage{}
	for _, m := range s.messages {
		if m.RequestID == helpID {
			messages = append(messages, m)
		}
	}

	sort.Slice(messages, func(i, j int) bool {
		if messages[i].CreatedAt.Equal(messages[j].CreatedAt) {
			return messages[i].ID < messages[j].ID
		}
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
	return messages, nil
}

func (s *InMemoryStore) CreateReport(reporterID, reportedUserID uuid.UUID, requestID *uuid.UUID, issueType, description string) (*schema.UserReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := &schema.UserReport{
		ID:             uuid.New(),
		ReporterID:     reporterID,
		ReportedUserID: reportedUserID,
		RequestID:      requestID,
		IssueType:      issueType,
		Description:    description,
		Status:         schema.REPORT_PENDING,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	s.reports[report.ID] = report

	copied := *report
	return &copied, nil
}

func (s *InMemoryStore) ListReportsByReporter(reporterID uuid.UUID) ([]schema.UserReport, error) {
	return s.listReports(func(r *schema.UserReport) bool {
		return r.ReporterID == reporterID
	})
}

func (s *InMemoryStore) ListReports() ([]schema.UserReport, error) {
	return s.listReports(func(*schema.UserReport) bool { return true })
}

func (s *InMemoryStore) listReports(match func(*schema.UserReport) bool) ([]schema.UserReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reports := []schema.UserReport{}
	for _, r := range s.reports {
		if match(r) {
			reports = append(reports, *r)
		}
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})
	return reports, nil
}

func (s *InMemoryStore) SetReportStatus(reportID uuid.UUID, status, adminNotes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	report, ok := s.reports[reportID]
	if !ok {
		return ErrReportNotFound
	}

	report.Status = status
	report.AdminNotes = adminNotes
	report.UpdatedAt = time.Now()
	return nil
}

func (s *InMemoryStore) ReportStats() (*ReportStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := ReportStats{}
	for _, r := range s.reports {
		stats.TotalReports++
		switch r.Status {
		case schema.REPORT_PENDING:
			stats.Pending++
		case schema.REPORT_UNDER_REVIEW:
			stats.UnderReview++
		case schema.REPORT_RESOLVED:
			stats.Resolved++
		case schema.REPORT_DISMISSED:
			stats.Dismissed++
		}
	}

	return &stats, nil
}
