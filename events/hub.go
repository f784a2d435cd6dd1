package events

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Event types pushed to connected clients.
const (
	TypeClubCreated     = "CLUB_CREATED"
	TypeClubUpdated     = "CLUB_UPDATED"
	TypeClubDeactivated = "CLUB_DEACTIVATED"

	TypeGameCreated     = "GAME_CREATED"
	TypeGameUpdated     = "GAME_UPDATED"
	TypeGameDeactivated = "GAME_DEACTIVATED"

	TypeAccountCreated     = "ACCOUNT_CREATED"
	TypeAccountUpdated     = "ACCOUNT_UPDATED"
	TypeAccountDeactivated = "ACCOUNT_DEACTIVATED"

	TypeClubGameAdded   = "CLUB_GAME_ADDED"
	TypeClubGameRemoved = "CLUB_GAME_REMOVED"
)

type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Hub fans entity lifecycle notifications out to websocket subscribers.
// A nil *Hub is valid and drops every publish, so callers never need to
// guard.
type Hub struct {
	Register   chan *Client
	Unregister chan *Client
	broadcast  chan []byte
	clients    map[*Client]bool
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		clients:    make(map[*Client]bool),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.mu.Lock()
				if !client.closed {
					close(client.send)
					client.closed = true
				}
				client.mu.Unlock()
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				client.mu.Lock()
				if client.closed {
					client.mu.Unlock()
					continue
				}
				select {
				case client.send <- message:
				default:
					// Slow consumer; skip rather than block the hub.
				}
				client.mu.Unlock()
			}
			h.mu.RUnlock()
		}
	}
}

// Publish marshals and broadcasts an event. Safe on a nil hub.
func (h *Hub) Publish(eventType string, payload interface{}) {
	if h == nil {
		return
	}
	messageBytes, err := json.Marshal(Message{Type: eventType, Payload: payload})
	if err != nil {
		log.Printf("events: failed to marshal %s message: %v", eventType, err)
		return
	}
	select {
	case h.broadcast <- messageBytes:
	default:
		log.Printf("events: broadcast buffer full, dropping %s message", eventType)
	}
}

type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	closed bool
	mu     sync.Mutex
}

func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 16),
	}
}

// ReadPump drains (and ignores) client frames so pings and close messages
// are processed.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("events: unexpected close: %v", err)
			}
			return
		}
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
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
