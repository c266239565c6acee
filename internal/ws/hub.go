package ws

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/annavey/moodwell/internal/security"
	"github.com/annavey/moodwell/internal/services"
	"github.com/gofiber/contrib/websocket"
)

const (
	writeWait          = 10 * time.Second
	broadcastQueueSize = 64
	clientQueueSize    = 16
	clientIDLength     = 12
	clientIDAlphabet   = "abcdefghijklmnopqrstuvwxyz0123456789"
)

type client struct {
	id      string
	conn    *websocket.Conn
	send    chan []byte
	closeTx sync.Once
}

func (c *client) close() {
	c.closeTx.Do(func() {
		close(c.send)
	})
}

// Hub fans mutation events out to every connected WebSocket client. Delivery
// is best-effort: a client whose queue is full is skipped for that event, and
// a client that fails a write is dropped. Nothing is replayed.
type Hub struct {
	mu        sync.RWMutex
	clients   map[*client]struct{}
	broadcast chan services.LogEvent
}

func NewHub() *Hub {
	return &Hub{
		clients:   make(map[*client]struct{}),
		broadcast: make(chan services.LogEvent, broadcastQueueSize),
	}
}

// Publish enqueues an event for broadcast. It never blocks; if the broadcast
// queue is saturated the event is dropped.
func (hub *Hub) Publish(event services.LogEvent) {
	select {
	case hub.broadcast <- event:
	default:
		log.Printf("ws: broadcast queue full, dropping %s event", event.Type)
	}
}

// Run consumes the broadcast queue until the context is cancelled.
func (hub *Hub) Run(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				hub.closeAll()
				return
			case event := <-hub.broadcast:
				hub.fanOut(event)
			}
		}
	}()
}

func (hub *Hub) fanOut(event services.LogEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("ws: marshal %s event: %v", event.Type, err)
		return
	}

	hub.mu.RLock()
	defer hub.mu.RUnlock()
	for connected := range hub.clients {
		select {
		case connected.send <- payload:
		default:
			// Not ready to receive; skipped for this event.
		}
	}
}

// Serve owns a freshly upgraded connection until the peer disconnects. It is
// the handler passed to the fiber websocket middleware.
func (hub *Hub) Serve(conn *websocket.Conn) {
	id, err := security.RandomString(clientIDLength, clientIDAlphabet)
	if err != nil {
		log.Printf("ws: generate client id: %v", err)
		_ = conn.Close()
		return
	}

	connected := &client{
		id:   id,
		conn: conn,
		send: make(chan []byte, clientQueueSize),
	}
	hub.register(connected)
	defer hub.unregister(connected)

	go connected.writePump()

	for {
		// Inbound frames are drained only to detect disconnects.
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws: client %s read error: %v", connected.id, err)
			}
			return
		}
	}
}

// ClientCount reports how many clients are currently attached.
func (hub *Hub) ClientCount() int {
	hub.mu.RLock()
	defer hub.mu.RUnlock()
	return len(hub.clients)
}

func (hub *Hub) register(connected *client) {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	hub.clients[connected] = struct{}{}
}

func (hub *Hub) unregister(connected *client) {
	hub.mu.Lock()
	_, known := hub.clients[connected]
	delete(hub.clients, connected)
	hub.mu.Unlock()

	if known {
		connected.close()
	}
	_ = connected.conn.Close()
}

func (hub *Hub) closeAll() {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	for connected := range hub.clients {
		connected.close()
		_ = connected.conn.Close()
		delete(hub.clients, connected)
	}
}

func (c *client) writePump() {
	for payload := range c.send {
		if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			log.Printf("ws: client %s set write deadline: %v", c.id, err)
			return
		}
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("ws: client %s write failed: %v", c.id, err)
			return
		}
	}
}
