package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/community-help/portal-api/store"
)

// listUsers returns every resident and helper for the admin console
func (s *Server) listUsers(c *gin.Context) {
	users, err := s.store.ListMembers()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (s *Server) blockUser(c *gin.Context) {
	s.setUserBlocked(c, true)
}

func (s *Server) unblockUser(c *gin.Context) {
	s.setUserBlocked(c, false)
}

func (s *Server) setUserBlocked(c *gin.Context, blocked bool) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err := s.store.SetAccountBlocked(userID, blocked); err != nil {
		if err == store.ErrAccountNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// pendingHelps lists requests awaiting triage
func (s *Server) pendingHelps(c *gin.Context) {
	helps, err := s.store.ListPendingHelps()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": helps})
}

// approveHelp records an admin approval on a still-pending request. A
// request that has already been claimed or rejected reports a conflict.
func (s *Server) approveHelp(c *gin.Context) {
	s.adminTransition(c, s.store.ApproveHelp)
}

// rejectHelp moves a still-pending request to Rejected.
func (s *Server) rejectHelp(c *gin.Context) {
	s.adminTransition(c, s.store.RejectHelp)
}

func (s *Server) adminTransition(c *gin.Context, transition func(helpID uuid.UUID) error) {
	helpID, ok := s.helpIDParam(c)
	if !ok {
		return
	}

	if err := transition(helpID); err != nil {
		if err == store.ErrHelpAlreadyProcessed {
			// disambiguate a processed request from an unknown id
			if _, getErr := s.store.GetHelp(helpID); getErr == store.ErrHelpNotFound {
				abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
				return
			}
			abortWithEncoding(c, http.StatusConflict, errorRequestProcessed)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) userStats(c *gin.Context) {
	stats, err := s.store.UserStats()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

func (s *Server) requestStats(c *gin.Context) {
	stats, err := s.store.HelpStats()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

func (s *Server) reportStats(c *gin.Context) {
	stats, err := s.store.ReportStats()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
