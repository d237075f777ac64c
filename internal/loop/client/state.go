package client

import (
	"time"

	"github.com/tomz197/starshooter/internal/object"
)

// GameState represents the current game phase for a client.
type GameState int

const (
	GameStatePlaying  GameState = iota // Active gameplay
	GameStateGameOver                  // Health ran out, modal shown until a key is pressed
	GameStateShutdown                  // Server is shutting down
)

func (s GameState) String() string {
	switch s {
	case GameStatePlaying:
		return "playing"
	case GameStateGameOver:
		return "game over"
	case GameStateShutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}

// ClientState holds per-session presentation state.
// The game itself lives in a loop.State owned by the Client.
type ClientState struct {
	Input      object.Input
	GameState  GameState // This client's game phase
	Score      int       // Last score shown by the game
	Health     int       // Last health shown by the game
	FinalScore int       // Score reported at game over
	Running    bool      // Client loop running

	delta         time.Duration // Frame delta time
	gameOverAt    time.Time     // When the game over modal appeared
	shutdownTimer float64       // Countdown before auto-disconnect on shutdown
	isInactive    bool          // Whether the client is in inactive warning state

	// Previous-frame state for detecting transitions that need a full clear
	prevGameState GameState
	wasInactive   bool
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		GameState: GameStatePlaying,
		Running:   true,
	}
}

// ShowScore records the score for the HUD. Implements loop.Display.
func (s *ClientState) ShowScore(score int) {
	s.Score = score
}

// ShowHealth records the health for the HUD. Implements loop.Display.
func (s *ClientState) ShowHealth(health int) {
	s.Health = health
}
