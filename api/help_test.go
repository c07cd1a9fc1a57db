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
	"github.com/community-help/portal-api/store"
)

func TestCreateHelp(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mockStore := mocks.NewMockCommunityCore(ctl)
	s := Server{store: mockStore}

	resident := testResident()
	created := &schema.HelpRequest{
		ID:         uuid.New(),
		ResidentID: resident.ID,
		Title:      "fix leaking tap",
		Status:     schema.HELP_PENDING,
	}

	mockStore.EXPECT().
		CreateHelp(resident.ID, "fix leaking tap", "kitchen tap drips", "plumbing", "").
		Return(created, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(asUser(resident))
	router.POST("/", s.createHelp)

	req := httptest.NewRequest("POST", "/", jsonBody(t, gin.H{
		"title":       "fix leaking tap",
		"description": "kitchen tap drips",
		"category":    "plumbing",
	}))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, "wrong status code")

	var resp schema.HelpRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, created.ID, resp.ID)
	assert.Equal(t, schema.HELP_PENDING, resp.Status)
}

func TestCreateHelpMissingFields(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{store: mocks.NewMockCommunityCore(ctl)}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(asUser(testResident()))
	router.POST("/", s.createHelp)

	req := httptest.NewRequest("POST", "/", jsonBody(t, gin.H{"title": "no description"}))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1010), decodeError(t, w).Code)
}

func TestAcceptHelp(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mockStore := mocks.NewMockCommunityCore(ctl)
	s := Server{store: mockStore}

	helper := testHelper()
	helpID := uuid.New()
	accepted := &schema.HelpRequest{
		ID:         helpID,
		ResidentID: uuid.New(),
		HelperID:   &helper.ID,
		Status:     schema.HELP_ACCEPTED,
	}

	mockStore.EXPECT().AcceptHelp(helper.ID, helpID).Return(accepted, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(asUser(helper))
	router.PUT("/:id/accept", s.acceptHelp)

	req := httptest.NewRequest("PUT", "/"+helpID.String()+"/accept", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp schema.HelpRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, schema.HELP_ACCEPTED, resp.Status)
	require.NotNil(t, resp.HelperID)
	assert.Equal(t, helper.ID, *resp.HelperID)
}

func TestAcceptHelpLostRace(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mockStore := mocks.NewMockCommunityCore(ctl)
	s := Server{store: mockStore}

	helper := testHelper()
	helpID := uuid.New()

	mockStore.EXPECT().AcceptHelp(helper.ID, helpID).Return(nil, store.ErrHelpAlreadyProcessed).Times(1)
	// the request exists, so the caller simply lost the race
	mockStore.EXPECT().GetHelp(helpID).Return(&schema.HelpRequest{ID: helpID, Status: schema.HELP_ACCEPTED}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(asUser(helper))
	router.PUT("/:id/accept", s.acceptHelp)

	req := httptest.NewRequest("PUT", "/"+helpID.String()+"/accept", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, int64(1201), decodeError(t, w).Code)
}

func TestAcceptHelpUnknownRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mockStore := mocks.NewMockCommunityCore(ctl)
	s := Server{store: mockStore}

	helper := testHelper()
	helpID := uuid.New()

	mockStore.EXPECT().AcceptHelp(helper.ID, helpID).Return(nil, store.ErrHelpAlreadyProcessed).Times(1)
	mockStore.EXPECT().GetHelp(helpID).Return(nil, store.ErrHelpNotFound).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(asUser(helper))
	router.PUT("/:id/accept", s.acceptHelp)

	req := httptest.NewRequest("PUT", "/"+helpID.String()+"/accept", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, int64(1200), decodeError(t, w).Code)
}

func TestStartHelp(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mockStore := mocks.NewMockCommunityCore(ctl)
	s := Server{store: mockStore}

	helper := testHelper()
	helpID := uuid.New()
	help := &schema.HelpRequest{
		ID:         helpID,
		ResidentID: uuid.New(),
		HelperID:   &helper.ID,
		Status:     schema.HELP_ACCEPTED,
	}

	mockStore.EXPECT().GetHelp(helpID).Return(help, nil).Times(1)
	mockStore.EXPECT().StartHelp(helper.ID, helpID).Return(nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(asUser(helper))
	router.PUT("/:id/start", s.startHelp)

	req := httptest.NewRequest("PUT", "/"+helpID.String()+"/start", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStartHelpNotBoundHelper(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mockStore := mocks.NewMockCommunityCore(ctl)
	s := Server{store: mockStore}

	outsider := testHelper()
	boundID := uuid.New()
	helpID := uuid.New()
	help := &schema.HelpRequest{
		ID:         helpID,
		ResidentID: uuid.New(),
		HelperID:   &boundID,
		Status:     schema.HELP_ACCEPTED,
	}

	// the authorization gate refuses before any write is attempted
	mockStore.EXPECT().GetHelp(helpID).Return(help, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(asUser(outsider))
	router.PUT("/:id/start", s.startHelp)

	req := httptest.NewRequest("PUT", "/"+helpID.String()+"/start", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, int64(1202), decodeError(t, w).Code)
}

func TestCompleteHelpConflict(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mockStore := mocks.NewMockCommunityCore(ctl)
	s := Server{store: mockStore}

	helper := testHelper()
	helpID := uuid.New()
	help := &schema.HelpRequest{
		ID:         helpID,
		ResidentID: uuid.New(),
		HelperID:   &helper.ID,
		Status:     schema.HELP_ACCEPTED,
	}

	mockStore.EXPECT().GetHelp(helpID).Return(help, nil).Times(1)
	mockStore.EXPECT().CompleteHelp(helper.ID, helpID).Return(store.ErrHelpAlreadyProcessed).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(asUser(helper))
	router.PUT("/:id/complete", s.completeHelp)

	req := httptest.NewRequest("PUT", "/"+helpID.String()+"/complete", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, int64(1201), decodeError(t, w).Code)
}

func TestUpdateHelpStatusInvalidValue(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{store: mocks.NewMockCommunityCore(ctl)}
	resident := testResident()
	helpID := uuid.New()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(asUser(resident))
	router.PUT("/:id/status", s.updateHelpStatus)

	for _, status := range []string{"Whatever", schema.HELP_REJECTED, ""} {
		req := httptest.NewRequest("PUT", "/"+helpID.String()+"/status", jsonBody(t, gin.H{"status": status}))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, status)
		assert.Equal(t, int64(1204), decodeError(t, w).Code, status)
	}
}

func TestUpdateHelpStatus(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mockStore := mocks.NewMockCommunityCore(ctl)
	s := Server{store: mockStore}

	resident := testResident()
	helpID := uuid.New()
	help := &schema.HelpRequest{
		ID:         helpID,
		ResidentID: resident.ID,
		Status:     schema.HELP_ACCEPTED,
	}

	mockStore.EXPECT().GetHelp(helpID).Return(help, nil).Times(1)
	mockStore.EXPECT().SetHelpStatus(resident.ID, helpID, schema.HELP_IN_PROGRESS).Return(nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(asUser(resident))
	router.PUT("/:id/status", s.updateHelpStatus)

	req := httptest.NewRequest("PUT", "/"+helpID.String()+"/status", jsonBody(t, gin.H{"status": schema.HELP_IN_PROGRESS}))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMyHelpsScopedByRole(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mockStore := mocks.NewMockCommunityCore(ctl)
	s := Server{store: mockStore}

	helper := testHelper()
	mockStore.EXPECT().ListHelpsByHelper(helper.ID).Return([]schema.HelpRequest{}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(asUser(helper))
	router.GET("/my-requests", s.myHelps)

	req := httptest.NewRequest("GET", "/my-requests", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHelpIDParamRejectsGarbage(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{store: mocks.NewMockCommunityCore(ctl)}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(asUser(testHelper()))
	router.PUT("/:id/accept", s.acceptHelp)

	req := httptest.NewRequest("PUT", "/not-a-uuid/accept", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1010), decodeError(t, w).Code)
}
