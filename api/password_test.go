package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/community-help/portal-api/api/mocks"
	"github.com/community-help/portal-api/schema"
	"github.com/community-help/portal-api/store"
)

func userWithOTP(otp string, expiresAt time.Time) *schema.User {
	u := testResident()
	u.ContactInfo = "ana@example.com"
	u.ResetOTP = otp
	u.ResetOTPExpiresAt = &expiresAt
	return u
}

func TestVerifyOTP(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mockStore := mocks.NewMockCommunityCore(ctl)
	s := Server{store: mockStore}

	mockStore.EXPECT().GetAccountByContact("ana@example.com").
		Return(userWithOTP("123456", time.Now().Add(5*time.Minute)), nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/verify-otp", s.verifyOTP)

	req := httptest.NewRequest("POST", "/verify-otp", jsonBody(t, gin.H{
		"contact_info": "ana@example.com",
		"otp":          "123456",
	}))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestVerifyOTPWrongCode(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mockStore := mocks.NewMockCommunityCore(ctl)
	s := Server{store: mockStore}

	mockStore.EXPECT().GetAccountByContact("ana@example.com").
		Return(userWithOTP("123456", time.Now().Add(5*time.Minute)), nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/verify-otp", s.verifyOTP)

	req := httptest.NewRequest("POST", "/verify-otp", jsonBody(t, gin.H{
		"contact_info": "ana@example.com",
		"otp":          "999999",
	}))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1104), decodeError(t, w).Code)
}

func TestVerifyOTPExpired(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mockStore := mocks.NewMockCommunityCore(ctl)
	s := Server{store: mockStore}

	mockStore.EXPECT().GetAccountByContact("ana@example.com").
		Return(userWithOTP("123456", time.Now().Add(-time.Minute)), nil).Times(1)
	// an expired code is cleared on sight
	mockStore.EXPECT().ClearResetOTP("ana@example.com").Return(nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/verify-otp", s.verifyOTP)

	req := httptest.NewRequest("POST", "/verify-otp", jsonBody(t, gin.H{
		"contact_info": "ana@example.com",
		"otp":          "123456",
	}))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1104), decodeError(t, w).Code)
}

func TestResetPassword(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mockStore := mocks.NewMockCommunityCore(ctl)
	s := Server{store: mockStore}

	mockStore.EXPECT().GetAccountByContact("ana@example.com").
		Return(userWithOTP("123456", time.Now().Add(5*time.Minute)), nil).Times(1)
	mockStore.EXPECT().UpdatePassword("ana@example.com", gomock.Any()).Return(nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/reset", s.resetPassword)

	req := httptest.NewRequest("POST", "/reset", jsonBody(t, gin.H{
		"contact_info": "ana@example.com",
		"otp":          "123456",
		"new_password": "brandnew1",
	}))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResetPasswordTooShort(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{store: mocks.NewMockCommunityCore(ctl)}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/reset", s.resetPassword)

	req := httptest.NewRequest("POST", "/reset", jsonBody(t, gin.H{
		"contact_info": "ana@example.com",
		"otp":          "123456",
		"new_password": "tiny",
	}))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendOTPUnknownAccount(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mockStore := mocks.NewMockCommunityCore(ctl)
	s := Server{store: mockStore}

	mockStore.EXPECT().GetAccountByContact("ghost@example.com").Return(nil, store.ErrAccountNotFound).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/send-otp", s.sendOTP)

	req := httptest.NewRequest("POST", "/send-otp", jsonBody(t, gin.H{
		"contact_info": "ghost@example.com",
	}))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, int64(1101), decodeError(t, w).Code)
}

func TestGenerateOTPFormat(t *testing.T) {
	for i := 0; i < 20; i++ {
		otp, err := generateOTP()
		assert.NoError(t, err)
		assert.Len(t, otp, 6)
		for _, r := range otp {
			assert.True(t, r >= '0' && r <= '9')
		}
	}
}
