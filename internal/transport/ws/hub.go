package ws

import (
	"log/slog"
	"sync"
	"time"

	"github.com/tmazur/sketchbluff/internal/model"
)

// binding ties a client to the player it speaks for within its room.
type binding struct {
	client   *Client
	playerID model.PlayerID
}

// delivery is one outbound message with its audience.
type delivery struct {
	to  model.PlayerID
	msg []byte
}

// Hub fans room events out to the connections of a single room. A
// player may hold several connections at once (for example a phone
// and a laptop mid-reconnect); every bound connection for the target
// player receives the message.
type Hub struct {
	roomID  model.RoomID
	clients map[*Client]model.PlayerID
	mu      sync.RWMutex
	logger  *slog.Logger

	register   chan binding
	unregister chan *Client
	deliveries chan delivery
	done       chan struct{}
}

// NewHub creates a new Hub for a room
func NewHub(roomID model.RoomID, logger *slog.Logger) *Hub {
	return &Hub{
		roomID:     roomID,
		clients:    make(map[*Client]model.PlayerID),
		logger:     logger.With(slog.String("room_id", string(roomID))),
		register:   make(chan binding),
		unregister: make(chan *Client),
		deliveries: make(chan delivery, 256),
		done:       make(chan struct{}),
	}
}

// Run starts the hub's event loop
func (h *Hub) Run() {
	h.logger.Info("hub started")
	for {
		select {
		case b := <-h.register:
			h.mu.Lock()
			h.clients[b.client] = b.playerID
			clientCount := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("client registered",
				slog.Int("player_id", int(b.playerID)),
				slog.Int("total_clients", clientCount))

		case client := <-h.unregister:
			h.mu.Lock()
			if playerID, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				clientCount := len(h.clients)
				h.mu.Unlock()
				h.logger.Info("client unregistered",
					slog.Int("player_id", int(playerID)),
					slog.Duration("connection_duration", time.Since(client.connectedAt)),
					slog.Int("total_clients", clientCount))
			} else {
				h.mu.Unlock()
			}

		case d := <-h.deliveries:
			h.fanOut(d)

		case <-h.done:
			// Flush anything queued before shutdown; a room's closing
			// broadcast is queued right before the hub is removed
			for {
				select {
				case d := <-h.deliveries:
					h.fanOut(d)
					continue
				default:
				}
				break
			}
			h.mu.Lock()
			clientCount := len(h.clients)
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			h.logger.Info("hub stopped", slog.Int("disconnected_clients", clientCount))
			return
		}
	}
}

// fanOut pushes one delivery to every connection bound to its target.
func (h *Hub) fanOut(d delivery) {
	h.mu.RLock()
	dropped := 0
	for client, playerID := range h.clients {
		if d.to != model.Everyone && d.to != playerID {
			continue
		}
		select {
		case client.send <- d.msg:
		default:
			dropped++
		}
	}
	h.mu.RUnlock()
	if dropped > 0 {
		h.logger.Warn("message dropped - client buffer full",
			slog.Int("dropped", dropped))
	}
}

// Register binds a client to a player within this hub's room
func (h *Hub) Register(client *Client, playerID model.PlayerID) {
	select {
	case h.register <- binding{client: client, playerID: playerID}:
	case <-h.done:
	}
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Send queues a message for one player, or for everyone when to is
// model.Everyone
func (h *Hub) Send(to model.PlayerID, msg []byte) {
	select {
	case h.deliveries <- delivery{to: to, msg: msg}:
	default:
		h.logger.Warn("delivery dropped - hub buffer full")
	}
}

// Close shuts down the hub
func (h *Hub) Close() {
	close(h.done)
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// HubManager manages hubs for all rooms
type HubManager struct {
	hubs   map[model.RoomID]*Hub
	mu     sync.RWMutex
	logger *slog.Logger
}

// NewHubManager creates a new HubManager
func NewHubManager(logger *slog.Logger) *HubManager {
	return &HubManager{
		hubs:   make(map[model.RoomID]*Hub),
		logger: logger.With(slog.String("component", "ws")),
	}
}

// GetOrCreateHub returns the hub for a room, creating one if it
// doesn't exist
func (m *HubManager) GetOrCreateHub(roomID model.RoomID) *Hub {
	m.mu.Lock()
	defer m.mu.Unlock()

	if hub, ok := m.hubs[roomID]; ok {
		return hub
	}

	hub := NewHub(roomID, m.logger)
	m.hubs[roomID] = hub
	go hub.Run()
	return hub
}

// GetHub returns the hub for a room, or nil if it doesn't exist
func (m *HubManager) GetHub(roomID model.RoomID) *Hub {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hubs[roomID]
}

// RemoveHub removes and closes a hub
func (m *HubManager) RemoveHub(roomID model.RoomID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if hub, ok := m.hubs[roomID]; ok {
		hub.Close()
		delete(m.hubs, roomID)
		m.logger.Info("hub removed", slog.String("room_id", string(roomID)))
	}
}

// CleanupEmptyHubs removes hubs with no clients
func (m *HubManager) CleanupEmptyHubs() {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, hub := range m.hubs {
		if hub.ClientCount() == 0 {
			hub.Close()
			delete(m.hubs, id)
			removed++
		}
	}
	if removed > 0 {
		m.logger.Info("empty hubs cleaned up", slog.Int("removed", removed))
	}
}

// Deliver routes a batch of room events to the room's hub. Events for
// a room nobody is connected to are dropped; state already lives in
// storage, so a reconnecting player catches up from a snapshot.
func (m *HubManager) Deliver(roomID model.RoomID, events []model.Event) {
	hub := m.GetHub(roomID)
	if hub == nil {
		return
	}
	for _, event := range events {
		msg, err := encodeEvent(event)
		if err != nil {
			m.logger.Error("event encoding failed",
				slog.String("room_id", string(roomID)),
				slog.String("event_type", string(event.Type)),
				slog.String("error", err.Error()))
			continue
		}
		hub.Send(event.To, msg)
	}
}
