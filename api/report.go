package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/community-help/portal-api/schema"
	"github.com/community-help/portal-api/store"
)

// submitReport files a complaint against another user
func (s *Server) submitReport(c *gin.Context) {
	user := currentUser(c)

	var params struct {
		ReportedUserID string `json:"reported_user_id"`
		RequestID      string `json:"request_id"`
		IssueType      string `json:"issue_type"`
		Description    string `json:"description"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.ReportedUserID == "" || params.IssueType == "" || params.Description == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	reportedUserID, err := uuid.Parse(params.ReportedUserID)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	var requestID *uuid.UUID
	if params.RequestID != "" {
		id, err := uuid.Parse(params.RequestID)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		requestID = &id
	}

	report, err := s.store.CreateReport(user.ID, reportedUserID, requestID, params.IssueType, params.Description)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}

// myReports lists the reports the caller has filed
func (s *Server) myReports(c *gin.Context) {
	user := currentUser(c)

	reports, err := s.store.ListReportsByReporter(user.ID)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// allReports lists every report for admin triage
func (s *Server) allReports(c *gin.Context) {
	reports, err := s.store.ListReports()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// updateReportStatus moves a report through the triage workflow
func (s *Server) updateReportStatus(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	var params struct {
		Status     string `json:"status"`
		AdminNotes string `json:"admin_notes"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if !schema.ValidReportStatus(params.Status) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidStatus)
		return
	}

	if err := s.store.SetReportStatus(reportID, params.Status, params.AdminNotes); err != nil {
		if err == store.ErrReportNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorReportNotFound)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
