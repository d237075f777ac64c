// Package server tracks live game sessions and the shared leaderboard.
package server

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/tomz197/starshooter/internal/loop/config"
)

// GameHub is the interface sessions use to communicate with the hub.
// Decouples the Client from the concrete Hub implementation, enabling
// testing with a fake.
type GameHub interface {
	RegisterSession(username string) *SessionHandle
	UnregisterSession(id uuid.UUID)
	ReportScore(id uuid.UUID, score int)
	GetSnapshot() *Snapshot
}

// Hub counts connected sessions and keeps the top scores.
// Each session runs its own game; the hub only sees registrations and
// final scores.
type Hub struct {
	sessions     map[uuid.UUID]*SessionHandle
	registerCh   chan *SessionHandle
	unregisterCh chan uuid.UUID
	scoreCh      chan ScoreReport
	snapshot     atomic.Pointer[Snapshot]
	mu           sync.RWMutex
	board        *Leaderboard
	logger       *log.Logger
}

// Compile-time check that Hub implements GameHub.
var _ GameHub = (*Hub)(nil)

// SessionHandle represents a session's connection to the hub.
type SessionHandle struct {
	ID       uuid.UUID
	Username string
	EventsCh chan SessionEvent // Events sent to the session (shutdown)
}

// ScoreReport carries a finished game's score.
type ScoreReport struct {
	SessionID uuid.UUID
	Score     int
}

// SessionEvent represents an event sent from the hub to a session.
type SessionEvent struct {
	Type SessionEventType
}

// SessionEventType identifies the type of session event.
type SessionEventType int

const (
	EventServerShutdown SessionEventType = iota
)

// NewHub creates a new session hub. A nil logger uses the default logger.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}

	h := &Hub{
		sessions:     make(map[uuid.UUID]*SessionHandle),
		registerCh:   make(chan *SessionHandle, 16),
		unregisterCh: make(chan uuid.UUID, 16),
		scoreCh:      make(chan ScoreReport, 64),
		board:        NewLeaderboard(config.TopScoresLimit),
		logger:       logger.WithPrefix("hub"),
	}

	// Create initial empty snapshot
	h.snapshot.Store(&Snapshot{})

	return h
}

// Run starts the hub loop. Blocks until the context is cancelled.
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(config.HubTickTime)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.step()
		}
	}
}

// step drains pending registrations and scores, then publishes a snapshot.
func (h *Hub) step() {
	h.processRegistrations()
	h.processScores()
	h.createSnapshot()
}

// Shutdown notifies all connected sessions about the shutdown and waits for
// them to disconnect (up to the given timeout).
// The caller should cancel the hub context after Shutdown returns.
func (h *Hub) Shutdown(timeout time.Duration) {
	h.mu.RLock()
	for _, handle := range h.sessions {
		select {
		case handle.EventsCh <- SessionEvent{Type: EventServerShutdown}:
		default:
		}
	}
	h.mu.RUnlock()

	// Wait for all sessions to disconnect, or timeout
	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-deadline:
			h.logger.Warn("shutdown timeout, sessions still connected", "remaining", h.SessionCount())
			return
		case <-ticker.C:
			// Registrations may only be drained by Run; do it here too in
			// case the hub loop is already stopped.
			h.processRegistrations()
			if h.SessionCount() == 0 {
				return
			}
		}
	}
}

// RegisterSession registers a new session with the given username and returns its handle.
func (h *Hub) RegisterSession(username string) *SessionHandle {
	handle := &SessionHandle{
		ID:       uuid.New(),
		Username: username,
		EventsCh: make(chan SessionEvent, 4),
	}

	h.registerCh <- handle
	return handle
}

// UnregisterSession removes a session from the hub.
func (h *Hub) UnregisterSession(id uuid.UUID) {
	h.unregisterCh <- id
}

// ReportScore submits a finished game's score for the leaderboard.
func (h *Hub) ReportScore(id uuid.UUID, score int) {
	select {
	case h.scoreCh <- ScoreReport{SessionID: id, Score: score}:
	default:
		h.logger.Warn("score channel full, dropping score", "session", id, "score", score)
	}
}

// GetSnapshot returns the current hub snapshot.
func (h *Hub) GetSnapshot() *Snapshot {
	return h.snapshot.Load()
}

// SessionCount returns the number of registered sessions.
func (h *Hub) SessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// processRegistrations handles pending session registrations/unregistrations.
func (h *Hub) processRegistrations() {
	for {
		select {
		case handle := <-h.registerCh:
			h.mu.Lock()
			h.sessions[handle.ID] = handle
			h.mu.Unlock()
			h.logger.Debug("session registered", "session", handle.ID, "user", handle.Username)
		case id := <-h.unregisterCh:
			h.mu.Lock()
			if handle, ok := h.sessions[id]; ok {
				close(handle.EventsCh)
				delete(h.sessions, id)
				h.logger.Debug("session unregistered", "session", id, "user", handle.Username)
			}
			h.mu.Unlock()
		default:
			return
		}
	}
}

// processScores records pending scores on the leaderboard.
func (h *Hub) processScores() {
	for {
		select {
		case report := <-h.scoreCh:
			username := ""
			h.mu.RLock()
			if handle, ok := h.sessions[report.SessionID]; ok {
				username = handle.Username
			}
			h.mu.RUnlock()

			if h.board.Add(username, report.Score) {
				h.logger.Info("new top score", "user", username, "score", report.Score)
			}
		default:
			return
		}
	}
}

// createSnapshot publishes an immutable snapshot of the hub state.
func (h *Hub) createSnapshot() {
	h.mu.RLock()
	players := len(h.sessions)
	h.mu.RUnlock()

	h.snapshot.Store(&Snapshot{
		Players:   players,
		TopScores: h.board.Entries(),
	})
}
