package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/status-im/market-dashboard/config"
	"github.com/status-im/market-dashboard/metrics"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 512
)

// ChangeSource is anything that reports state changes through a callback
type ChangeSource interface {
	OnChange(cb func()) func()
}

// Message is what the hub pushes to browser tabs
type Message struct {
	Type string `json:"type"`
}

// MessageRefresh tells a tab to reload the dashboard
const MessageRefresh = "refresh"

type wsClient struct {
	id   string
	conn *websocket.Conn
	send chan []byte
	once sync.Once
	done chan struct{}
}

func (c *wsClient) close() {
	c.once.Do(func() {
		close(c.done)
		c.conn.Close()
	})
}

// Hub pushes a refresh message to every connected tab whenever the source changes
type Hub struct {
	upgrader     websocket.Upgrader
	source       ChangeSource
	pingInterval time.Duration
	sendBuffer   int

	mu      sync.RWMutex
	clients map[string]*wsClient

	unsubscribe func()
}

// NewHub creates a hub; Start subscribes it to source
func NewHub(cfg config.WebSocketConfig, source ChangeSource) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		source:       source,
		pingInterval: cfg.GetPingInterval(),
		sendBuffer:   cfg.GetSendBuffer(),
		clients:      make(map[string]*wsClient),
	}
}

// Start subscribes to state changes
func (h *Hub) Start(ctx context.Context) error {
	h.unsubscribe = h.source.OnChange(h.BroadcastRefresh)
	return nil
}

// Stop unsubscribes and disconnects every client
func (h *Hub) Stop() {
	if h.unsubscribe != nil {
		h.unsubscribe()
	}

	h.mu.Lock()
	clients := make([]*wsClient, 0, len(h.clients))
	for id, c := range h.clients {
		clients = append(clients, c)
		delete(h.clients, id)
	}
	h.mu.Unlock()

	for _, c := range clients {
		c.close()
	}
	metrics.RecordWebSocketClients(0)
}

// ClientCount returns the number of connected tabs
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// BroadcastRefresh queues a refresh message for every client. A client whose
// queue is full already has refreshes pending and is skipped.
func (h *Hub) BroadcastRefresh() {
	payload, err := json.Marshal(Message{Type: MessageRefresh})
	if err != nil {
		log.Printf("WS: Error encoding message: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.clients {
		select {
		case c.send <- payload:
		default:
		}
	}
}

// ServeHTTP upgrades the request and serves the connection until it closes
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WS: Could not open websocket connection: %v", err)
		return
	}

	c := &wsClient{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, h.sendBuffer),
		done: make(chan struct{}),
	}
	h.register(c)
	defer h.unregister(c)

	go h.writeLoop(c)
	h.readLoop(c)
}

func (h *Hub) register(c *wsClient) {
	h.mu.Lock()
	h.clients[c.id] = c
	count := len(h.clients)
	h.mu.Unlock()

	metrics.RecordWebSocketClients(count)
	log.Printf("WS: Client %s connected (%d total)", c.id, count)
}

func (h *Hub) unregister(c *wsClient) {
	h.mu.Lock()
	delete(h.clients, c.id)
	count := len(h.clients)
	h.mu.Unlock()

	c.close()
	metrics.RecordWebSocketClients(count)
	log.Printf("WS: Client %s disconnected (%d total)", c.id, count)
}

// readLoop discards incoming messages and keeps the read deadline alive on pongs
func (h *Hub) readLoop(c *wsClient) {
	pongWait := h.pingInterval * 2
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WS: Client %s read error: %v", c.id, err)
			}
			return
		}
	}
}

func (h *Hub) writeLoop(c *wsClient) {
	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case payload := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				log.Printf("WS: Client %s write error: %v", c.id, err)
				c.close()
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				c.close()
				return
			}
		}
	}
}
