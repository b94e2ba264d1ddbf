// Package websocket pushes live analysis results to connected clients.
//
// A single hub goroutine owns all session/client state and is driven by a
// command channel, so no locks are needed. Each connection gets its own
// writer goroutine with a bounded buffer; clients that cannot keep up are
// evicted rather than blocking a broadcast.
package websocket

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/mockview/mockview/internal/domain"
	"github.com/mockview/mockview/internal/metrics"
)

const maxClientsPerSession = 50

// --- Command types ---

type hubCmd interface{ hubCmd() }

type cmdRegister struct {
	sessionID uuid.UUID
	conn      *websocket.Conn
	errCh     chan error
}

func (cmdRegister) hubCmd() {}

type cmdUnregister struct {
	sessionID uuid.UUID
	conn      *websocket.Conn
}

func (cmdUnregister) hubCmd() {}

type cmdBroadcast struct {
	sessionID uuid.UUID
	data      []byte
}

func (cmdBroadcast) hubCmd() {}

type cmdClientCount struct {
	sessionID uuid.UUID
	replyCh   chan int
}

func (cmdClientCount) hubCmd() {}

type cmdStop struct{}

func (cmdStop) hubCmd() {}

// --- Per-connection writer ---

type clientWriter struct {
	conn   *websocket.Conn
	sendCh chan []byte
	done   chan struct{}
}

func newClientWriter(conn *websocket.Conn) *clientWriter {
	cw := &clientWriter{
		conn:   conn,
		sendCh: make(chan []byte, 16),
		done:   make(chan struct{}),
	}
	go cw.run()
	return cw
}

func (cw *clientWriter) run() {
	for {
		select {
		case msg, ok := <-cw.sendCh:
			if !ok {
				return
			}
			cw.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
			if err := cw.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
			metrics.LiveMessagesSentTotal.Inc()
		case <-cw.done:
			return
		}
	}
}

func (cw *clientWriter) stop() {
	close(cw.done)
	cw.conn.Close()
}

// --- Hub ---

// Hub fans analysis results out to the clients watching each session.
type Hub struct {
	cmdCh   chan hubCmd
	done    chan struct{}
	clients map[uuid.UUID]map[*websocket.Conn]*clientWriter
}

var _ domain.LiveBroadcaster = (*Hub)(nil)

func NewHub() *Hub {
	hub := &Hub{
		cmdCh:   make(chan hubCmd, 256),
		done:    make(chan struct{}),
		clients: make(map[uuid.UUID]map[*websocket.Conn]*clientWriter),
	}
	go hub.run()
	return hub
}

func (h *Hub) run() {
	for cmd := range h.cmdCh {
		switch c := cmd.(type) {
		case cmdRegister:
			h.handleRegister(c)
		case cmdUnregister:
			h.handleUnregister(c.sessionID, c.conn)
		case cmdBroadcast:
			h.handleBroadcast(c)
		case cmdClientCount:
			c.replyCh <- len(h.clients[c.sessionID])
		case cmdStop:
			h.handleStop()
			close(h.done)
			return
		}
	}
}

func (h *Hub) handleRegister(c cmdRegister) {
	clients, exists := h.clients[c.sessionID]
	if !exists {
		clients = make(map[*websocket.Conn]*clientWriter)
		h.clients[c.sessionID] = clients
	}

	if len(clients) >= maxClientsPerSession {
		slog.Warn("rejecting live-feed client: session full",
			"session_id", c.sessionID, "max_clients", maxClientsPerSession)
		c.conn.Close()
		c.errCh <- fmt.Errorf("max clients per session (%d) reached", maxClientsPerSession)
		return
	}

	clients[c.conn] = newClientWriter(c.conn)
	metrics.LiveConnectionsCurrent.Inc()
	slog.Debug("live-feed client registered",
		"session_id", c.sessionID, "total_clients", len(clients))
	c.errCh <- nil
}

func (h *Hub) handleUnregister(sessionID uuid.UUID, conn *websocket.Conn) {
	clients, exists := h.clients[sessionID]
	if !exists {
		return
	}

	cw, exists := clients[conn]
	if !exists {
		return
	}

	cw.stop()
	delete(clients, conn)
	metrics.LiveConnectionsCurrent.Dec()

	if len(clients) == 0 {
		delete(h.clients, sessionID)
	}
	slog.Debug("live-feed client unregistered",
		"session_id", sessionID, "remaining_clients", len(clients))
}

func (h *Hub) handleBroadcast(c cmdBroadcast) {
	clients, exists := h.clients[c.sessionID]
	if !exists {
		return
	}

	var slow []*websocket.Conn
	for conn, cw := range clients {
		select {
		case cw.sendCh <- c.data:
		default:
			slow = append(slow, conn)
		}
	}

	for _, conn := range slow {
		slog.Warn("disconnecting slow live-feed client", "session_id", c.sessionID)
		metrics.LiveSlowClientsEvicted.Inc()
		h.handleUnregister(c.sessionID, conn)
	}
}

func (h *Hub) handleStop() {
	for sessionID, clients := range h.clients {
		for _, cw := range clients {
			cw.stop()
			metrics.LiveConnectionsCurrent.Dec()
		}
		delete(h.clients, sessionID)
	}
}

// --- Public API ---

// ErrHubStopped is returned by Register after the hub has shut down.
var ErrHubStopped = errors.New("hub is stopped")

// Every public method selects against done so callers never block on a hub
// whose goroutine has already exited.

func (h *Hub) Register(sessionID uuid.UUID, conn *websocket.Conn) error {
	errCh := make(chan error, 1)
	select {
	case h.cmdCh <- cmdRegister{sessionID: sessionID, conn: conn, errCh: errCh}:
	case <-h.done:
		return ErrHubStopped
	}

	select {
	case err := <-errCh:
		return err
	case <-h.done:
		return ErrHubStopped
	}
}

func (h *Hub) Unregister(sessionID uuid.UUID, conn *websocket.Conn) {
	select {
	case h.cmdCh <- cmdUnregister{sessionID: sessionID, conn: conn}:
	case <-h.done:
	}
}

// Broadcast sends payload as JSON to every client watching sessionID.
func (h *Hub) Broadcast(sessionID uuid.UUID, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		slog.Error("failed to marshal broadcast payload", "session_id", sessionID, "error", err)
		return
	}
	select {
	case h.cmdCh <- cmdBroadcast{sessionID: sessionID, data: data}:
	case <-h.done:
	}
}

func (h *Hub) ClientCount(sessionID uuid.UUID) int {
	replyCh := make(chan int, 1)
	select {
	case h.cmdCh <- cmdClientCount{sessionID: sessionID, replyCh: replyCh}:
	case <-h.done:
		return 0
	}

	select {
	case count := <-replyCh:
		return count
	case <-h.done:
		return 0
	}
}

func (h *Hub) Stop() {
	select {
	case h.cmdCh <- cmdStop{}:
	case <-h.done:
	}
}
