package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/community-help/portal-api/api/mocks"
	"github.com/community-help/portal-api/schema"
)

func TestSubmitReport(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mockStore := mocks.NewMockCommunityCore(ctl)
	s := Server{store: mockStore}

	reporter := testResident()
	reported := uuid.New()
	requestID := uuid.New()

	created := &schema.UserReport{
		ID:             uuid.New(),
		ReporterID:     reporter.ID,
		ReportedUserID: reported,
		RequestID:      &requestID,
		IssueType:      "no-show",
		Status:         schema.REPORT_PENDING,
	}

	mockStore.EXPECT().
		CreateReport(reporter.ID, reported, gomock.Any(), "no-show", "helper never arrived").
		Return(created, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(asUser(reporter))
	router.POST("/", s.submitReport)

	req := httptest.NewRequest("POST", "/", jsonBody(t, gin.H{
		"reported_user_id": reported.String(),
		"request_id":       requestID.String(),
		"issue_type":       "no-show",
		"description":      "helper never arrived",
	}))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, "wrong status code")

	var resp schema.UserReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, schema.REPORT_PENDING, resp.Status)
}

func TestSubmitReportMissingFields(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{store: mocks.NewMockCommunityCore(ctl)}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(asUser(testResident()))
	router.POST("/", s.submitReport)

	req := httptest.NewRequest("POST", "/", jsonBody(t, gin.H{"issue_type": "spam"}))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1010), decodeError(t, w).Code)
}

func TestUpdateReportStatus(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mockStore := mocks.NewMockCommunityCore(ctl)
	s := Server{store: mockStore}

	reportID := uuid.New()
	mockStore.EXPECT().SetReportStatus(reportID, schema.REPORT_RESOLVED, "talked to both sides").Return(nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(asUser(testAdmin()))
	router.PUT("/reports/:id/status", s.updateReportStatus)

	req := httptest.NewRequest("PUT", "/reports/"+reportID.String()+"/status", jsonBody(t, gin.H{
		"status":      schema.REPORT_RESOLVED,
		"admin_notes": "talked to both sides",
	}))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateReportStatusInvalidValue(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{store: mocks.NewMockCommunityCore(ctl)}
	reportID := uuid.New()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(asUser(testAdmin()))
	router.PUT("/reports/:id/status", s.updateReportStatus)

	req := httptest.NewRequest("PUT", "/reports/"+reportID.String()+"/status", jsonBody(t, gin.H{
		"status": "Escalated",
	}))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1204), decodeError(t, w).Code)
}

func TestMyReports(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mockStore := mocks.NewMockCommunityCore(ctl)
	s := Server{store: mockStore}

	reporter := testResident()
	mockStore.EXPECT().ListReportsByReporter(reporter.ID).Return([]schema.UserReport{}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(asUser(reporter))
	router.GET("/my", s.myReports)

	req := httptest.NewRequest("GET", "/my", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
