package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/community-help/portal-api/access"
	"github.com/community-help/portal-api/background"
	"github.com/community-help/portal-api/schema"
	"github.com/community-help/portal-api/store"
)

// createHelp is the API for a resident asking help from the community
func (s *Server) createHelp(c *gin.Context) {
	user := currentUser(c)

	var params struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
		Attachments string `json:"attachments"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Title == "" || params.Description == "" || params.Category == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	help, err := s.store.CreateHelp(user.ID, params.Title, params.Description, params.Category, params.Attachments)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	s.enqueueTask(background.TaskBroadcastNewHelp, help.ID.String())

	c.JSON(http.StatusCreated, help)
}

// listHelps returns every help request for any authenticated user
func (s *Server) listHelps(c *gin.Context) {
	helps, err := s.store.ListHelps()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": helps})
}

// availableHelps returns pending requests a helper could claim
func (s *Server) availableHelps(c *gin.Context) {
	helps, err := s.store.ListPendingHelps()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": helps})
}

// myHelps returns the requests the caller is bound to, scoped by role:
// residents see the rows they created, helpers the rows they claimed.
func (s *Server) myHelps(c *gin.Context) {
	user := currentUser(c)

	var helps []schema.HelpRequest
	var err error
	if user.Role == schema.ROLE_HELPER {
		helps, err = s.store.ListHelpsByHelper(user.ID)
	} else {
		helps, err = s.store.ListHelpsByResident(user.ID)
	}
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": helps})
}

// acceptHelp is the API for a helper claiming a pending request. The
// conditional write in the store guarantees exactly one winner when
// helpers race; the loser receives a conflict, never a silent overwrite.
func (s *Server) acceptHelp(c *gin.Context) {
	user := currentUser(c)

	helpID, ok := s.helpIDParam(c)
	if !ok {
		return
	}

	help, err := s.store.AcceptHelp(user.ID, helpID)
	if err != nil {
		if err == store.ErrHelpAlreadyProcessed {
			// disambiguate a lost race from an unknown id
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

	s.enqueueTask(background.TaskNotifyHelpAccepted, help.ID.String(), help.ResidentID.String())

	c.JSON(http.StatusOK, help)
}

// startHelp moves an accepted request to In-progress
func (s *Server) startHelp(c *gin.Context) {
	s.helperTransition(c, access.ActionStart, s.store.StartHelp)
}

// completeHelp closes out a request
func (s *Server) completeHelp(c *gin.Context) {
	s.helperTransition(c, access.ActionComplete, s.store.CompleteHelp)
}

// helperTransition runs a bound-helper lifecycle transition: resolve the
// request, check the caller is its helper, then apply the conditional
// write.
func (s *Server) helperTransition(c *gin.Context, action access.Action, transition func(helperID, helpID uuid.UUID) error) {
	user := currentUser(c)

	helpID, ok := s.helpIDParam(c)
	if !ok {
		return
	}

	help, err := s.store.GetHelp(helpID)
	if err != nil {
		if err == store.ErrHelpNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		} else {
			shouldInterupt(err, c)
		}
		return
	}

	if err := access.Allowed(action, user, help); err != nil {
		abortWithEncoding(c, http.StatusForbidden, errorNotAuthorized)
		return
	}

	if err := transition(user.ID, helpID); err != nil {
		if err == store.ErrHelpAlreadyProcessed {
			abortWithEncoding(c, http.StatusConflict, errorRequestProcessed)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// updateHelpStatus is the loose corrective path for bound participants.
// The status value is validated against the closed enumeration before it
// can reach the store; terminal requests cannot be reopened.
func (s *Server) updateHelpStatus(c *gin.Context) {
	user := currentUser(c)

	helpID, ok := s.helpIDParam(c)
	if !ok {
		return
	}

	var params struct {
		Status string `json:"status"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if !schema.ValidHelpStatus(params.Status) || params.Status == schema.HELP_REJECTED {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidStatus)
		return
	}

	help, err := s.store.GetHelp(helpID)
	if err != nil {
		if err == store.ErrHelpNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		} else {
			shouldInterupt(err, c)
		}
		return
	}

	if err := access.Allowed(access.ActionUpdateStatus, user, help); err != nil {
		abortWithEncoding(c, http.StatusForbidden, errorNotAuthorized)
		return
	}

	if err := s.store.SetHelpStatus(user.ID, helpID, params.Status); err != nil {
		if err == store.ErrHelpAlreadyProcessed {
			abortWithEncoding(c, http.StatusConflict, errorRequestProcessed)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) helpIDParam(c *gin.Context) (uuid.UUID, bool) {
	helpID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return uuid.Nil, false
	}
	return helpID, true
}

// enqueueTask hands a notification job to the background workers. The
// request that triggered it has already committed, so enqueue failures
// are only logged.
func (s *Server) enqueueTask(name string, args ...string) {
	if s.backgroundEnqueuer == nil {
		return
	}

	signature := &tasks.Signature{Name: name}
	for _, arg := range args {
		signature.Args = append(signature.Args, tasks.Arg{Type: "string", Value: arg})
	}

	if _, err := s.backgroundEnqueuer.SendTask(signature); err != nil {
		log.Error(err)
	}
}
