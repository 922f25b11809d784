// Package server keeps the state shared by every session: who is connected
// and the best scores since startup.
package server

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// GameServer is the interface clients use to communicate with the hub.
type GameServer interface {
	RegisterClient(username string) *ClientHandle
	UnregisterClient(id uuid.UUID)
	ReportScore(id uuid.UUID, score int) int
	GetSnapshot() *Snapshot
}

// Server tracks connected clients and the score board.
// Each client simulates its own game; the server never ticks.
type Server struct {
	snapshot atomic.Pointer[Snapshot]
	clients  map[uuid.UUID]*ClientHandle
	board    []TopScoreEntry
	nextSeq  int
	logger   *log.Logger
	mu       sync.Mutex
}

// Compile-time check that Server implements GameServer.
var _ GameServer = (*Server)(nil)

// ClientHandle represents a client's registration with the server.
type ClientHandle struct {
	ID       uuid.UUID
	Username string           // Display name on the score board
	EventsCh chan ClientEvent // Events sent to client (shutdown, etc.)
	seq      int              // Registration order, used for tie-breaks
	reported bool             // Score already submitted
}

// ClientEvent represents an event sent from server to client.
type ClientEvent struct {
	Type ClientEventType
}

// ClientEventType identifies the type of client event.
type ClientEventType int

const (
	EventBoardChanged ClientEventType = iota
	EventServerShutdown
)

// NewServer creates a server with an empty board. A nil logger uses the package default.
func NewServer(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		clients: make(map[uuid.UUID]*ClientHandle),
		logger:  logger.WithPrefix("server"),
	}
	s.publishLocked()
	return s
}

// RegisterClient registers a new client with the given username and returns its handle.
func (s *Server) RegisterClient(username string) *ClientHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSeq++
	handle := &ClientHandle{
		ID:       uuid.New(),
		Username: username,
		EventsCh: make(chan ClientEvent, 16),
		seq:      s.nextSeq,
	}
	s.clients[handle.ID] = handle
	s.publishLocked()

	s.logger.Debug("client registered", "id", handle.ID, "user", username, "players", len(s.clients))
	return handle
}

// UnregisterClient removes a client and closes its event channel.
// Unknown IDs are ignored.
func (s *Server) UnregisterClient(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle, ok := s.clients[id]
	if !ok {
		return
	}
	close(handle.EventsCh)
	delete(s.clients, id)
	s.publishLocked()

	s.logger.Debug("client unregistered", "id", id, "players", len(s.clients))
}

// ReportScore submits the final score of a client's game and returns its
// 1-based rank on the board, or 0 if it did not place. Only the first report
// per client counts.
func (s *Server) ReportScore(id uuid.UUID, score int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle, ok := s.clients[id]
	if !ok || handle.reported {
		return 0
	}
	handle.reported = true

	var rank int
	s.board, rank = insertScore(s.board, TopScoreEntry{
		Username: handle.Username,
		Score:    score,
		seq:      handle.seq,
	}, topScoreCount)
	if rank == 0 {
		return 0
	}
	s.publishLocked()

	s.logger.Info("new top score", "user", handle.Username, "score", score, "rank", rank)
	for _, other := range s.clients {
		select {
		case other.EventsCh <- ClientEvent{Type: EventBoardChanged}:
		default:
		}
	}
	return rank
}

// GetSnapshot returns the current server snapshot.
func (s *Server) GetSnapshot() *Snapshot {
	return s.snapshot.Load()
}

// Shutdown gracefully shuts down the server by notifying all connected clients
// and waiting for them to disconnect (up to the given timeout).
func (s *Server) Shutdown(timeout time.Duration) {
	// Notify all connected clients about the shutdown
	s.mu.Lock()
	s.logger.Info("notifying clients", "players", len(s.clients))
	for _, handle := range s.clients {
		select {
		case handle.EventsCh <- ClientEvent{Type: EventServerShutdown}:
		default:
		}
	}
	s.mu.Unlock()

	// Wait for all clients to disconnect, or timeout
	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		if s.GetSnapshot().Players == 0 {
			return
		}
		select {
		case <-deadline:
			s.logger.Warn("shutdown timed out", "players", s.GetSnapshot().Players)
			return
		case <-ticker.C:
		}
	}
}

// publishLocked stores a fresh immutable snapshot. Must be called with lock held.
func (s *Server) publishLocked() {
	s.snapshot.Store(&Snapshot{
		Players:   len(s.clients),
		TopScores: append([]TopScoreEntry(nil), s.board...),
	})
}
