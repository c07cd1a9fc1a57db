package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/community-help/portal-api/schema"
)

var (
	ErrHelpNotFound         = fmt.Errorf("help request not found")
	ErrHelpAlreadyProcessed = fmt.Errorf("the request is already accepted or processed")
)

// CreateHelp creates a help request entry with status Pending and no helper
// assigned.
func (s *CommunityStore) CreateHelp(residentID uuid.UUID, title, description, category, attachments string) (*schema.HelpRequest, error) {
	help := schema.HelpRequest{
		ResidentID:  residentID,
		Title:       title,
		Description: description,
		Category:    category,
		Attachments: attachments,
		Status:      schema.HELP_PENDING,
	}

	if err := s.ormDB.Create(&help).Error; err != nil {
		return nil, err
	}
	return &help, nil
}

func (s *CommunityStore) GetHelp(helpID uuid.UUID) (*schema.HelpRequest, error) {
	var help schema.HelpRequest

	if err := s.ormDB.Where("id = ?", helpID).First(&help).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrHelpNotFound
		}
		return nil, err
	}

	return &help, nil
}

// ListHelps returns every help request, newest first.
func (s *CommunityStore) ListHelps() ([]schema.HelpRequest, error) {
	helps := []schema.HelpRequest{}

	if err := s.ormDB.Order("created_at desc").Find(&helps).Error; err != nil {
		return nil, err
	}

	return helps, nil
}

// ListPendingHelps returns requests still open for helpers to claim.
func (s *CommunityStore) ListPendingHelps() ([]schema.HelpRequest, error) {
	helps := []schema.HelpRequest{}

	if err := s.ormDB.
		Where("status = ?", schema.HELP_PENDING).
		Order("created_at desc").
		Find(&helps).Error; err != nil {
		return nil, err
	}

	return helps, nil
}

func (s *CommunityStore) ListHelpsByResident(residentID uuid.UUID) ([]schema.HelpRequest, error) {
	helps := []schema.HelpRequest{}

	if err := s.ormDB.
		Where("resident_id = ?", residentID).
		Order("created_at desc").
		Find(&helps).Error; err != nil {
		return nil, err
	}

	return helps, nil
}

func (s *CommunityStore) ListHelpsByHelper(helperID uuid.UUID) ([]schema.HelpRequest, error) {
	helps := []schema.HelpRequest{}

	if err := s.ormDB.
		Where("helper_id = ?", helperID).
		Order("created_at desc").
		Find(&helps).Error; err != nil {
		return nil, err
	}

	return helps, nil
}

// updateHelpIf applies updates to a help request only while the row still
// matches the given condition. It is the single conditional-transition
// primitive every lifecycle operation goes through; zero affected rows
// means another writer got there first and is reported as
// ErrHelpAlreadyProcessed, never retried.
func (s *CommunityStore) updateHelpIf(helpID uuid.UUID, cond string, condArgs []interface{}, updates map[string]interface{}) error {
	args := append([]interface{}{helpID}, condArgs...)

	result := s.ormDB.Model(schema.HelpRequest{}).
		Where("id = ? AND "+cond, args...).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrHelpAlreadyProcessed
	}

	return nil
}

// AcceptHelp claims a pending request for a helper. The update is
// conditioned on the request still being Pending with no helper assigned,
// so two racing helpers can never both win: the loser observes
// ErrHelpAlreadyProcessed.
func (s *CommunityStore) AcceptHelp(helperID, helpID uuid.UUID) (*schema.HelpRequest, error) {
	if err := s.updateHelpIf(helpID,
		"resident_id != ? AND status = ? AND helper_id IS NULL",
		[]interface{}{helperID, schema.HELP_PENDING},
		map[string]interface{}{
			"status":    schema.HELP_ACCEPTED,
			"helper_id": helperID,
		},
	); err != nil {
		return nil, err
	}

	return s.GetHelp(helpID)
}

// StartHelp moves an accepted request to In-progress. Only the bound
// helper can start it.
func (s *CommunityStore) StartHelp(helperID, helpID uuid.UUID) error {
	return s.updateHelpIf(helpID,
		"helper_id = ? AND status = ?",
		[]interface{}{helperID, schema.HELP_ACCEPTED},
		map[string]interface{}{"status": schema.HELP_IN_PROGRESS},
	)
}

// CompleteHelp closes out a request. Accepted is allowed as the prior
// state so a helper who never reported starting can still finish.
func (s *CommunityStore) CompleteHelp(helperID, helpID uuid.UUID) error {
	return s.updateHelpIf(helpID,
		"helper_id = ? AND status IN (?)",
		[]interface{}{helperID, []string{schema.HELP_ACCEPTED, schema.HELP_IN_PROGRESS}},
		map[string]interface{}{"status": schema.HELP_COMPLETED},
	)
}

// ApproveHelp records an admin approval on a still-pending request. The
// status stays Pending so helpers can claim it; a request that has already
// moved on reports ErrHelpAlreadyProcessed.
func (s *CommunityStore) ApproveHelp(helpID uuid.UUID) error {
	return s.updateHelpIf(helpID,
		"status = ?",
		[]interface{}{schema.HELP_PENDING},
		map[string]interface{}{"approved_at": gorm.Expr("now()")},
	)
}

// RejectHelp moves a still-pending request to the terminal Rejected state.
func (s *CommunityStore) RejectHelp(helpID uuid.UUID) error {
	return s.updateHelpIf(helpID,
		"status = ?",
		[]interface{}{schema.HELP_PENDING},
		map[string]interface{}{"status": schema.HELP_REJECTED},
	)
}

// SetHelpStatus is the loose corrective path: a bound participant may set
// any non-Rejected status without the strict progression check. Terminal
// states stay terminal and the helper assignment is never touched.
func (s *CommunityStore) SetHelpStatus(userID, helpID uuid.UUID, status string) error {
	return s.updateHelpIf(helpID,
		"(resident_id = ? OR helper_id = ?) AND status NOT IN (?)",
		[]interface{}{userID, userID, []string{schema.HELP_COMPLETED, schema.HELP_REJECTED}},
		map[string]interface{}{"status": status},
	)
}

// HelpStats counts help requests per status.
func (s *CommunityStore) HelpStats() (*HelpStats, error) {
	var stats HelpStats

	if err := s.ormDB.Raw(
		`SELECT
			COUNT(*) AS total_requests,
			SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS pending,
			SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS accepted,
			SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS in_progress,
			SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS completed,
			SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS rejected
		FROM help_requests`,
		schema.HELP_PENDING,
		schema.HELP_ACCEPTED,
		schema.HELP_IN_PROGRESS,
		schema.HELP_COMPLETED,
		schema.HELP_REJECTED,
	).Scan(&stats).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
