package realtime

import (
	"go.uber.org/zap"
	"sync"
)

type clientSet map[*Client]struct{}

// Hub tracks connected clients by user and by chat room
type Hub struct {
	logger *zap.SugaredLogger

	mu    sync.RWMutex
	users map[string]clientSet
	rooms map[string]clientSet
	// joined keeps rooms of each client so they can be left on disconnect
	joined map[*Client]map[string]struct{}

	presence *Presence
}

func NewHub(logger *zap.SugaredLogger) *Hub {
	return &Hub{
		logger:   logger,
		users:    make(map[string]clientSet),
		rooms:    make(map[string]clientSet),
		joined:   make(map[*Client]map[string]struct{}),
		presence: NewPresence(),
	}
}

// Register adds client and reports whether it is the first connection of its user
func (h *Hub) Register(c *Client) bool {
	h.mu.Lock()
	userID := c.Session.ID
	if h.users[userID] == nil {
		h.users[userID] = make(clientSet)
	}
	h.users[userID][c] = struct{}{}
	h.joined[c] = make(map[string]struct{})
	h.mu.Unlock()

	return h.presence.Add(userID)
}

// Unregister removes client from every room, closes its send queue
// and reports whether it was the last connection of its user
func (h *Hub) Unregister(c *Client) bool {
	h.mu.Lock()
	rooms, ok := h.joined[c]
	if !ok {
		h.mu.Unlock()
		return false
	}
	for chatID := range rooms {
		h.leave(c, chatID)
	}
	delete(h.joined, c)

	userID := c.Session.ID
	delete(h.users[userID], c)
	if len(h.users[userID]) == 0 {
		delete(h.users, userID)
	}
	h.mu.Unlock()

	c.close()
	return h.presence.Remove(userID)
}

// Join subscribes client to broadcasts of chat room
func (h *Hub) Join(c *Client, chatID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	rooms, ok := h.joined[c]
	if !ok {
		return
	}
	rooms[chatID] = struct{}{}
	if h.rooms[chatID] == nil {
		h.rooms[chatID] = make(clientSet)
	}
	h.rooms[chatID][c] = struct{}{}
}

func (h *Hub) Leave(c *Client, chatID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.leave(c, chatID)
}

// LeaveUser unsubscribes every connection of user from chat room
func (h *Hub) LeaveUser(userID, chatID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.users[userID] {
		h.leave(c, chatID)
	}
}

// leave requires h.mu to be held
func (h *Hub) leave(c *Client, chatID string) {
	delete(h.joined[c], chatID)
	delete(h.rooms[chatID], c)
	if len(h.rooms[chatID]) == 0 {
		delete(h.rooms, chatID)
	}
}

// InRoom reports whether client is subscribed to chat room
func (h *Hub) InRoom(c *Client, chatID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	_, ok := h.rooms[chatID][c]
	return ok
}

func (h *Hub) SendToRoom(chatID string, frame []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	h.deliver(h.rooms[chatID], frame)
}

// SendToUser sends frame to every connection of user
func (h *Hub) SendToUser(userID string, frame []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	h.deliver(h.users[userID], frame)
}

func (h *Hub) SendToClient(c *Client, frame []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if _, ok := h.joined[c]; ok {
		h.deliver(clientSet{c: {}}, frame)
	}
}

// BroadcastAll sends frame to every connection
func (h *Hub) BroadcastAll(frame []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, clients := range h.users {
		h.deliver(clients, frame)
	}
}

// Online returns sorted ids of connected users
func (h *Hub) Online() []string {
	return h.presence.Online()
}

func (h *Hub) deliver(clients clientSet, frame []byte) {
	for c := range clients {
		if !c.enqueue(frame) {
			h.logger.Warnf("Send queue of user (id: %s) is full, frame dropped", c.Session.ID)
		}
	}
}
