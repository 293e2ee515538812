package server

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Hub fans board updates out to connected websocket clients.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *Hub) register(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}

// Send writes the payload to a single client. All connection writes go
// through the hub lock, so a broadcast never interleaves with a direct
// send on the same connection.
func (h *Hub) Send(conn *websocket.Conn, payload boardPayload) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return conn.WriteJSON(payload)
}

// Broadcast sends the payload to every client, dropping clients whose
// connection has gone away.
func (h *Hub) Broadcast(payload boardPayload) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		err := conn.WriteJSON(payload)
		if err != nil {
			log.Debug().Err(err).Msg("dropping websocket client")
			delete(h.clients, conn)
			conn.Close()
		}
	}
}
