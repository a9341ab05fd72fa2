// internal/websocket/hub.go
// WebSocket hub manages client connections and message broadcasting

package websocket

import (
	"encoding/json"
	"log"
	"sync"

	"league-scheduler/internal/services"
)

// Hub maintains active websocket connections and broadcasts messages
type Hub struct {
	// Registered clients by season ID
	seasons map[string]map[*Client]bool

	// Registered clients by user ID
	users map[string]*Client

	// Register client
	register chan *Client

	// Unregister client
	unregister chan *Client

	// Broadcast messages to season
	broadcast chan *Message

	// Services
	services *services.Container
	logger   *log.Logger

	// Mutex for concurrent access
	mu sync.RWMutex
}

// Message represents a WebSocket message
type Message struct {
	Type     string      `json:"type"`
	SeasonID string      `json:"season_id,omitempty"`
	UserID   string      `json:"user_id,omitempty"`
	Data     interface{} `json:"data"`
}

// NewHub creates a new WebSocket hub
func NewHub(services *services.Container, logger *log.Logger) *Hub {
	return &Hub{
		seasons:    make(map[string]map[*Client]bool),
		users:      make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Message, 256),
		services:   services,
		logger:     logger,
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)
		}
	}
}

// registerClient adds a new client to the hub
func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Register user connection
	if client.userID != "" {
		// Close existing connection for this user
		if existing, exists := h.users[client.userID]; exists {
			existing.close()
			h.removeClient(existing)
		}
		h.users[client.userID] = client
	}

	// Register season connections
	for _, seasonID := range client.seasons {
		if h.seasons[seasonID] == nil {
			h.seasons[seasonID] = make(map[*Client]bool)
		}
		h.seasons[seasonID][client] = true
	}

	h.logger.Printf("Client registered: %s (seasons: %v)", client.userID, client.seasons)
}

// unregisterClient removes a client from the hub
func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeClient(client)
	client.close()

	h.logger.Printf("Client unregistered: %s", client.userID)
}

// removeClient removes client from all registrations
func (h *Hub) removeClient(client *Client) {
	// Remove from user map
	if client.userID != "" {
		delete(h.users, client.userID)
	}

	// Remove from season maps
	for _, seasonID := range client.seasons {
		if clients, exists := h.seasons[seasonID]; exists {
			delete(clients, client)
			if len(clients) == 0 {
				delete(h.seasons, seasonID)
			}
		}
	}
}

// broadcastMessage sends a message to relevant clients
func (h *Hub) broadcastMessage(message *Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	data, err := json.Marshal(message)
	if err != nil {
		h.logger.Printf("Failed to marshal message: %v", err)
		return
	}

	// Broadcast to season subscribers
	if message.SeasonID != "" {
		if clients, exists := h.seasons[message.SeasonID]; exists {
			for client := range clients {
				select {
				case client.send <- data:
				default:
					// Client's send channel is full, close it
					h.removeClient(client)
					client.close()
				}
			}
		}
	}

	// Send to specific user
	if message.UserID != "" {
		if client, exists := h.users[message.UserID]; exists {
			select {
			case client.send <- data:
			default:
				// Client's send channel is full, close it
				h.removeClient(client)
				client.close()
			}
		}
	}
}

// BroadcastSchedulingProgress broadcasts a generation-run log line to all
// clients subscribed to a season
func (h *Hub) BroadcastSchedulingProgress(seasonID string, updateType string, data interface{}) {
	message := &Message{
		Type:     updateType,
		SeasonID: seasonID,
		Data:     data,
	}
	h.broadcast <- message
}

// SendToUser sends a message to a specific user
func (h *Hub) SendToUser(userID string, messageType string, data interface{}) {
	message := &Message{
		Type:   messageType,
		UserID: userID,
		Data:   data,
	}
	h.broadcast <- message
}

// SubscribeToSeason subscribes a client to season updates
func (h *Hub) SubscribeToSeason(client *Client, seasonID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Add season to client's list
	client.seasons = append(client.seasons, seasonID)

	// Add client to season's subscriber list
	if h.seasons[seasonID] == nil {
		h.seasons[seasonID] = make(map[*Client]bool)
	}
	h.seasons[seasonID][client] = true

	h.logger.Printf("Client %s subscribed to season %s", client.userID, seasonID)
}

// UnsubscribeFromSeason unsubscribes a client from season updates
func (h *Hub) UnsubscribeFromSeason(client *Client, seasonID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Remove season from client's list
	for i, id := range client.seasons {
		if id == seasonID {
			client.seasons = append(client.seasons[:i], client.seasons[i+1:]...)
			break
		}
	}

	// Remove client from season's subscriber list
	if clients, exists := h.seasons[seasonID]; exists {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.seasons, seasonID)
		}
	}

	h.logger.Printf("Client %s unsubscribed from season %s", client.userID, seasonID)
}
