// Package chat runs the realtime channel of the help portal. Room
// membership is never persisted: eligibility is re-derived from the
// request row on every join, and delivery to connected members is
// best-effort. Durability of messages comes from the store's message log
// alone.
package chat

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/community-help/portal-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "chat")
}

// Hub tracks which clients are currently in which room and fans messages
// out to them.
type Hub struct {
	store store.CommunityCore

	mu    sync.Mutex
	rooms map[string]map[*Client]struct{}
}

func NewHub(s store.CommunityCore) *Hub {
	return &Hub{
		store: s,
		rooms: map[string]map[*Client]struct{}{},
	}
}

// join adds a client to a room. Joining a room the client is already in is
// a no-op.
func (h *Hub) join(room string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	members, ok := h.rooms[room]
	if !ok {
		members = map[*Client]struct{}{}
		h.rooms[room] = members
	}
	members[c] = struct{}{}
}

// leave removes a client from every room it joined.
func (h *Hub) leave(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for room, members := range h.rooms {
		delete(members, c)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
}

// broadcast delivers payload to every current member of a room, at most
// once each. A member whose outbound queue is full is skipped; nothing is
// buffered for offline participants.
func (h *Hub) broadcast(room string, payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.rooms[room] {
		select {
		case c.send <- payload:
		default:
			log.WithField("room", room).Warn("dropping message for a slow client")
		}
	}
}

// broadcastOthers is broadcast minus the sender, used for ephemeral relays
// like typing indicators.
func (h *Hub) broadcastOthers(room string, sender *Client, payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.rooms[room] {
		if c == sender {
			continue
		}
		select {
		case c.send <- payload:
		default:
		}
	}
}

// inRoom reports whether the client currently belongs to the room.
func (h *Hub) inRoom(room string, c *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	_, ok := h.rooms[room][c]
	return ok
}
