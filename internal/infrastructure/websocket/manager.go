package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"unilagyard/internal/infrastructure/pubsub"
	"unilagyard/pkg/logger"
)

// Event is a live update pushed to connected participants: a new message,
// a conversation summary change, or a read receipt.
type Event struct {
	Type    string      `json:"type"` // "message", "chat_updated", "read"
	ChatID  string      `json:"chat_id,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
}

type envelope struct {
	Targets []string        `json:"targets"`
	Event   json.RawMessage `json:"event"`
}

// Client represents a WebSocket connection client
type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte
}

// Manager manages all active WebSocket connections on this instance.
type Manager struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	broker     *pubsub.ChatEventBroker
	mutex      sync.RWMutex
}

func NewManager(broker *pubsub.ChatEventBroker) *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broker:     broker,
	}
}

// Start runs the manager's main loop in a goroutine. When a Redis broker is
// configured it also subscribes to the shared channel so events published by
// other instances reach clients connected here.
func (m *Manager) Start(ctx context.Context) {
	if m.broker != nil {
		m.broker.Subscribe(ctx, m.deliverEnvelope)
	}

	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client.UserID] = client
				m.mutex.Unlock()
				logger.Info("Client registered: %s", client.UserID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client.UserID]; ok {
					delete(m.clients, client.UserID)
					close(client.Send)
				}
				m.mutex.Unlock()
				logger.Info("Client unregistered: %s", client.UserID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// NotifyUsers pushes an event to the given users. With a broker configured
// the event goes through Redis so every instance delivers it; otherwise it
// is delivered to locally connected clients only.
func (m *Manager) NotifyUsers(ctx context.Context, userIDs []string, event Event) {
	eventData, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to marshal websocket event: %v", err)
		return
	}

	if m.broker != nil {
		data, err := json.Marshal(envelope{Targets: userIDs, Event: eventData})
		if err != nil {
			logger.Error("Failed to marshal event envelope: %v", err)
			return
		}
		if err := m.broker.Publish(ctx, data); err != nil {
			logger.Warn("Failed to publish chat event, falling back to local delivery: %v", err)
			m.deliverLocal(userIDs, eventData)
		}
		return
	}

	m.deliverLocal(userIDs, eventData)
}

func (m *Manager) deliverEnvelope(payload []byte) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		logger.Error("Failed to unmarshal event envelope: %v", err)
		return
	}
	m.deliverLocal(env.Targets, env.Event)
}

func (m *Manager) deliverLocal(userIDs []string, data []byte) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, userID := range userIDs {
		client, ok := m.clients[userID]
		if !ok {
			continue
		}
		select {
		case client.Send <- data:
		default:
			// Slow client; drop the event rather than block the sender.
		}
	}
}

// ReadPump reads messages from the WebSocket connection
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("Websocket read error for %s: %v", c.UserID, err)
			}
			break
		}
		// The client only listens; inbound frames are keepalives.
	}
}

// WritePump sends messages to the WebSocket connection
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}
