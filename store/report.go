package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/community-help/portal-api/schema"
)

var ErrReportNotFound = fmt.Errorf("report not found")

// CreateReport files a complaint against another user, optionally tied to
// a help request.
func (s *CommunityStore) CreateReport(reporterID, reportedUserID uuid.UUID, requestID *uuid.UUID, issueType, description string) (*schema.UserReport, error) {
	report := schema.UserReport{
		ReporterID:     reporterID,
		ReportedUserID: reportedUserID,
		RequestID:      requestID,
		IssueType:      issueType,
		Description:    description,
		Status:         schema.REPORT_PENDING,
	}

	if err := s.ormDB.Create(&report).Error; err != nil {
		return nil, err
	}

	return &report, nil
}

func (s *CommunityStore) ListReportsByReporter(reporterID uuid.UUID) ([]schema.UserReport, error) {
	reports := []schema.UserReport{}

	if err := s.ormDB.
		Where("reporter_id = ?", reporterID).
		Order("created_at desc").
		Find(&reports).Error; err != nil {
		return nil, err
	}

	return reports, nil
}

func (s *CommunityStore) ListReports() ([]schema.UserReport, error) {
	reports := []schema.UserReport{}

	if err := s.ormDB.Order("created_at desc").Find(&reports).Error; err != nil {
		return nil, err
	}

	return reports, nil
}

// SetReportStatus moves a report through the triage workflow.
func (s *CommunityStore) SetReportStatus(reportID uuid.UUID, status, adminNotes string) error {
	result := s.ormDB.Model(schema.UserReport{}).
		Where("id = ?", reportID).
		Updates(map[string]interface{}{
			"status":      status,
			"admin_notes": adminNotes,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrReportNotFound
	}

	return nil
}

// ReportStats counts reports per triage status.
func (s *CommunityStore) ReportStats() (*ReportStats, error) {
	var stats ReportStats

	if err := s.ormDB.Raw(
		`SELECT
			COUNT(*) AS total_reports,
			SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS pending,
			SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS under_review,
			SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS resolved,
			SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS dismissed
		FROM user_reports`,
		schema.REPORT_PENDING,
		schema.REPORT_UNDER_REVIEW,
		schema.REPORT_RESOLVED,
		schema.REPORT_DISMISSED,
	).Scan(&stats).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
