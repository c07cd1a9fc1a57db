package api

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/community-help/portal-api/store"
)

const otpValidity = 10 * time.Minute

// generateOTP returns a random 6-digit one-time code.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// sendOTP mails a password-reset code to a registered contact address.
func (s *Server) sendOTP(c *gin.Context) {
	var params struct {
		ContactInfo string `json:"contact_info"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.ContactInfo == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	user, err := s.store.GetAccountByContact(params.ContactInfo)
	if err != nil {
		if err == store.ErrAccountNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
		} else {
			shouldInterupt(err, c)
		}
		return
	}

	otp, err := generateOTP()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if err := s.store.SetResetOTP(user.ContactInfo, otp, time.Now().Add(otpValidity)); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if err := s.mailer.SendPasswordResetOTP(user.ContactInfo, user.Name, otp); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// checkOTP validates a submitted code against the stored one. Expiry is
// compared at read time; an expired code is cleared on sight.
func (s *Server) checkOTP(c *gin.Context, contactInfo, otp string) bool {
	user, err := s.store.GetAccountByContact(contactInfo)
	if err != nil {
		if err == store.ErrAccountNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
		} else {
			shouldInterupt(err, c)
		}
		return false
	}

	if user.ResetOTP == "" || user.ResetOTPExpiresAt == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidOTP)
		return false
	}

	if time.Now().After(*user.ResetOTPExpiresAt) {
		if err := s.store.ClearResetOTP(contactInfo); err != nil {
			log.Error(err)
		}
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidOTP)
		return false
	}

	if user.ResetOTP != otp {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidOTP)
		return false
	}

	return true
}

// verifyOTP confirms a code without consuming it.
func (s *Server) verifyOTP(c *gin.Context) {
	var params struct {
		ContactInfo string `json:"contact_info"`
		OTP         string `json:"otp"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.ContactInfo == "" || params.OTP == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if !s.checkOTP(c, params.ContactInfo, params.OTP) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// resetPassword re-verifies the code and replaces the password, clearing
// the code in the same write.
func (s *Server) resetPassword(c *gin.Context) {
	var params struct {
		ContactInfo string `json:"contact_info"`
		OTP         string `json:"otp"`
		NewPassword string `json:"new_password"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.ContactInfo == "" || params.OTP == "" || params.NewPassword == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}
	if len(params.NewPassword) < 6 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if !s.checkOTP(c, params.ContactInfo, params.OTP) {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if err := s.store.UpdatePassword(params.ContactInfo, string(hash)); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
