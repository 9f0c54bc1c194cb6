// Package stream pushes collection snapshots to connected dashboards over
// websocket. Delivery is at-least-once, latest-wins: every mutation re-sends
// the whole collection, so a dropped frame is corrected by the next one.
package stream

import (
	"encoding/json"
	"sync"
	"time"

	"hotleads/internal/domain"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
)

const (
	CollectionLeads    = "leads"
	CollectionGoals    = "goals"
	CollectionSettings = "settings"
)

// Event is one snapshot frame: the full current state of a collection.
type Event struct {
	Type       string    `json:"type"`
	Collection string    `json:"collection"`
	At         time.Time `json:"at"`
	Payload    any       `json:"payload"`
}

const EventSnapshot = "snapshot"

// connection is a single dashboard session.
type connection struct {
	userID int64
	conn   *websocket.Conn
	send   chan []byte
}

// Hub tracks live connections per user and fans snapshots out to them.
type Hub struct {
	mu          sync.RWMutex
	connections map[int64]map[*connection]struct{}
}

func NewHub() *Hub {
	return &Hub{connections: make(map[int64]map[*connection]struct{})}
}

func (h *Hub) register(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.connections[c.userID] == nil {
		h.connections[c.userID] = make(map[*connection]struct{})
	}
	h.connections[c.userID][c] = struct{}{}
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.connections[c.userID]; ok {
		if _, ok := conns[c]; ok {
			delete(conns, c)
			if len(conns) == 0 {
				delete(h.connections, c.userID)
			}
			close(c.send)
		}
	}
}

// PublishLeads implements the snapshot publisher consumed by the lead
// service.
func (h *Hub) PublishLeads(userID int64, leads []domain.Lead) {
	h.publish(userID, CollectionLeads, leads)
}

func (h *Hub) PublishGoals(userID int64, goals []domain.Goal) {
	h.publish(userID, CollectionGoals, goals)
}

func (h *Hub) PublishSettings(userID int64, s domain.Settings) {
	h.publish(userID, CollectionSettings, s)
}

func (h *Hub) publish(userID int64, collection string, payload any) {
	data, err := encodeEvent(collection, payload)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.connections[userID] {
		select {
		case c.send <- data:
		default:
			// Client too slow — skip; the next snapshot supersedes this one.
		}
	}
}

func encodeEvent(collection string, payload any) ([]byte, error) {
	return json.Marshal(Event{
		Type:       EventSnapshot,
		Collection: collection,
		At:         time.Now(),
		Payload:    payload,
	})
}

// ServeWS runs a connection until the client goes away. initial is sent
// first so a fresh dashboard renders without waiting for a mutation.
// Returning from here guarantees the connection is unregistered, so no
// snapshot can drive a signed-out session.
func (h *Hub) ServeWS(conn *websocket.Conn, userID int64, initial []Event) {
	c := &connection{
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, 16),
	}

	h.register(c)

	for _, ev := range initial {
		if data, err := json.Marshal(ev); err == nil {
			c.send <- data
		}
	}

	go h.writePump(c)
	h.readPump(c) // blocks until disconnect
}

func (h *Hub) readPump(c *connection) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Clients never send application data; the read loop exists to notice
	// disconnects and answer pings.
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (h *Hub) writePump(c *connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
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
