package chat

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/community-help/portal-api/access"
	"github.com/community-help/portal-api/schema"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 4096
	sendQueueSize  = 64
)

// inbound events from the client
const (
	EventJoinRoom    = "joinRoom"
	EventSendMessage = "sendMessage"
	EventTyping      = "typing"
)

// outbound events to the client
const (
	EventJoinedRoom     = "joinedRoom"
	EventReceiveMessage = "receiveMessage"
	EventUserTyping     = "userTyping"
	EventMessageError   = "messageError"
)

type inboundEvent struct {
	Type      string `json:"type"`
	RequestID string `json:"request_id"`
	Text      string `json:"text,omitempty"`
	IsTyping  bool   `json:"is_typing,omitempty"`
}

type joinedRoomEvent struct {
	Type      string `json:"type"`
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

type receiveMessageEvent struct {
	Type    string              `json:"type"`
	Message *schema.ChatMessage `json:"message"`
}

type userTypingEvent struct {
	Type      string    `json:"type"`
	RequestID string    `json:"request_id"`
	UserID    uuid.UUID `json:"user_id"`
	IsTyping  bool      `json:"is_typing"`
}

type messageErrorEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Client is one websocket connection of an authenticated user.
type Client struct {
	hub  *Hub
	user *schema.User
	conn *websocket.Conn
	send chan []byte
}

// NewClient wires an upgraded connection into the hub and starts its
// read/write pumps.
func NewClient(hub *Hub, user *schema.User, conn *websocket.Conn) *Client {
	c := &Client{
		hub:  hub,
		user: user,
		conn: conn,
		send: make(chan []byte, sendQueueSize),
	}

	go c.writePump()
	go c.readPump()
	return c
}

func (c *Client) readPump() {
	defer func() {
		c.hub.leave(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithField("user", c.user.ID).Error(err)
			}
			return
		}

		var ev inboundEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			c.sendError("cannot parse event")
			continue
		}

		c.handleEvent(ev)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleEvent dispatches one inbound event. It only touches the hub and
// the client's outbound queue, never the connection itself.
func (c *Client) handleEvent(ev inboundEvent) {
	switch ev.Type {
	case EventJoinRoom:
		c.handleJoinRoom(ev)
	case EventSendMessage:
		c.handleSendMessage(ev)
	case EventTyping:
		c.handleTyping(ev)
	default:
		c.sendError("unknown event type")
	}
}

func (c *Client) handleJoinRoom(ev inboundEvent) {
	requestID, help, err := c.resolveRequest(ev.RequestID)
	if err != nil {
		c.enqueue(joinedRoomEvent{
			Type:    EventJoinedRoom,
			Success: false,
			Message: "help request not found",
		})
		return
	}

	if err := access.Chat(c.user, help); err != nil {
		c.enqueue(joinedRoomEvent{
			Type:    EventJoinedRoom,
			Success: false,
			Message: err.Error(),
		})
		return
	}

	c.hub.join(RoomName(requestID), c)
	c.enqueue(joinedRoomEvent{
		Type:      EventJoinedRoom,
		Success:   true,
		Message:   "joined chat room",
		RequestID: requestID.String(),
	})
}

func (c *Client) handleSendMessage(ev inboundEvent) {
	requestID, help, err := c.resolveRequest(ev.RequestID)
	if err != nil {
		c.sendError("help request not found")
		return
	}

	// eligibility is re-derived on every send, not remembered from join
	if err := access.Chat(c.user, help); err != nil {
		c.sendError(err.Error())
		return
	}

	if ev.Text == "" {
		c.sendError("message text is required")
		return
	}

	// append durably first; the broadcast below is best-effort and a
	// delivery failure never rolls the message back
	msg, err := c.hub.store.AppendChatMessage(requestID, c.user.ID, c.user.Role, ev.Text)
	if err != nil {
		log.WithField("request", requestID).Error(err)
		c.sendError("failed to send message")
		return
	}

	payload, err := json.Marshal(receiveMessageEvent{
		Type:    EventReceiveMessage,
		Message: msg,
	})
	if err != nil {
		return
	}
	c.hub.broadcast(RoomName(requestID), payload)
}

func (c *Client) handleTyping(ev inboundEvent) {
	requestID, err := uuid.Parse(ev.RequestID)
	if err != nil {
		return
	}

	room := RoomName(requestID)
	if !c.hub.inRoom(room, c) {
		return
	}

	payload, err := json.Marshal(userTypingEvent{
		Type:      EventUserTyping,
		RequestID: requestID.String(),
		UserID:    c.user.ID,
		IsTyping:  ev.IsTyping,
	})
	if err != nil {
		return
	}
	c.hub.broadcastOthers(room, c, payload)
}

func (c *Client) resolveRequest(raw string) (uuid.UUID, *schema.HelpRequest, error) {
	requestID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, nil, err
	}

	help, err := c.hub.store.GetHelp(requestID)
	if err != nil {
		return uuid.Nil, nil, err
	}

	return requestID, help, nil
}

func (c *Client) sendError(message string) {
	c.enqueue(messageErrorEvent{
		Type:    EventMessageError,
		Message: message,
	})
}

func (c *Client) enqueue(ev interface{}) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}

	select {
	case c.send <- payload:
	default:
	}
}
