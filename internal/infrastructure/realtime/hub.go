package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rafabene/hiresphere-backend/internal/domain/ports"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 16
)

// Message é o envelope enviado aos clientes
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

const MessageTypeApplicationStatus = "application.status_changed"

type client struct {
	userID string
	conn   *websocket.Conn
	send   chan []byte
}

// Hub mantém as conexões websocket abertas por usuário e implementa
// ports.ApplicationNotifier.
type Hub struct {
	mu       sync.RWMutex
	clients  map[string]map[*client]struct{}
	upgrader websocket.Upgrader
	logger   ports.Logger
}

// NewHub cria um Hub. allowedOrigins vazio ou com "*" aceita qualquer origem.
func NewHub(logger ports.Logger, allowedOrigins []string) *Hub {
	h := &Hub{
		clients: make(map[string]map[*client]struct{}),
		logger:  logger,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(allowedOrigins),
	}
	return h
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		set[o] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(set) == 0 {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}

// ServeWS faz o upgrade da conexão e bloqueia até o cliente desconectar
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, userID string) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &client{userID: userID, conn: conn, send: make(chan []byte, sendBufferSize)}
	h.register(c)

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.writePump(c)
	}()

	h.readPump(c)
	h.unregister(c)
	<-done
	return nil
}

// NotifyStatusChanged envia o evento às conexões do candidato
func (h *Hub) NotifyStatusChanged(_ context.Context, event ports.ApplicationStatusChanged) {
	payload, err := json.Marshal(Message{Type: MessageTypeApplicationStatus, Data: event})
	if err != nil {
		h.logger.Error("failed to encode realtime message", "error", err)
		return
	}
	h.sendToUser(event.ApplicantUserID, payload)
}

func (h *Hub) sendToUser(userID string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients[userID] {
		select {
		case c.send <- payload:
		default:
			h.logger.Warn("realtime client buffer full, dropping message", "user_id", userID)
		}
	}
}

// ClientCount retorna o número de conexões abertas de um usuário
func (h *Hub) ClientCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// Close encerra todas as conexões abertas
func (h *Hub) Close() {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, conns := range h.clients {
		for c := range conns {
			_ = c.conn.Close()
		}
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[c.userID] == nil {
		h.clients[c.userID] = make(map[*client]struct{})
	}
	h.clients[c.userID][c] = struct{}{}
	h.logger.Debug("realtime client connected", "user_id", c.userID)
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.clients[c.userID]; ok {
		if _, ok := conns[c]; ok {
			delete(conns, c)
			close(c.send)
		}
		if len(conns) == 0 {
			delete(h.clients, c.userID)
		}
	}
	h.logger.Debug("realtime client disconnected", "user_id", c.userID)
}

// readPump descarta mensagens do cliente; serve para detectar desconexão e pongs
func (h *Hub) readPump(c *client) {
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
