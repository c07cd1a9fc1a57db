package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/community-help/portal-api/access"
	"github.com/community-help/portal-api/chat"
	"github.com/community-help/portal-api/store"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// chatInfo returns the participant summary of a request's chat channel.
// The channel exists only once a helper has accepted; a bound resident
// asking earlier gets a chat-not-available error, not a forbidden one.
func (s *Server) chatInfo(c *gin.Context) {
	user := currentUser(c)

	requestID, ok := s.requestIDParam(c)
	if !ok {
		return
	}

	help, err := s.store.GetHelp(requestID)
	if err != nil {
		if err == store.ErrHelpNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		} else {
			shouldInterupt(err, c)
		}
		return
	}

	switch accessErr := access.Chat(user, help); accessErr {
	case nil:
	case access.ErrChatNotAvailable:
		abortWithEncoding(c, http.StatusBadRequest, errorChatNotAvailable)
		return
	default:
		abortWithEncoding(c, http.StatusForbidden, errorNotAuthorized)
		return
	}

	resident, err := s.store.GetAccount(help.ResidentID)
	if shouldInterupt(err, c) {
		return
	}
	helper, err := s.store.GetAccount(*help.HelperID)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"request": gin.H{
			"id":            help.ID,
			"title":         help.Title,
			"category":      help.Category,
			"status":        help.Status,
			"resident_id":   resident.ID,
			"resident_name": resident.Name,
			"helper_id":     helper.ID,
			"helper_name":   helper.Name,
		},
		"room": chat.RoomName(help.ID),
	})
}

// chatMessages returns the full message history of a request in display
// order.
func (s *Server) chatMessages(c *gin.Context) {
	user := currentUser(c)

	requestID, ok := s.requestIDParam(c)
	if !ok {
		return
	}

	help, err := s.store.GetHelp(requestID)
	if err != nil {
		if err == store.ErrHelpNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		} else {
			shouldInterupt(err, c)
		}
		return
	}

	switch accessErr := access.Chat(user, help); accessErr {
	case nil:
	case access.ErrChatNotAvailable:
		abortWithEncoding(c, http.StatusBadRequest, errorChatNotAvailable)
		return
	default:
		abortWithEncoding(c, http.StatusForbidden, errorNotAuthorized)
		return
	}

	messages, err := s.store.ListChatMessages(requestID)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// chatWebsocket upgrades the connection and hands it to the chat hub. Room
// eligibility is checked per event, not at upgrade time.
func (s *Server) chatWebsocket(c *gin.Context) {
	user := currentUser(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error(err)
		return
	}

	chat.NewClient(s.hub, user, conn)
}

func (s *Server) requestIDParam(c *gin.Context) (uuid.UUID, bool) {
	requestID, err := uuid.Parse(c.Param("requestId"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return uuid.Nil, false
	}
	return requestID, true
}
