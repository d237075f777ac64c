// Package client runs one terminal game session: input, simulation ticks
// and half-block rendering at a fixed frame rate.
package client

import (
	"bufio"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/tomz197/starshooter/internal/draw"
	"github.com/tomz197/starshooter/internal/input"
	"github.com/tomz197/starshooter/internal/loop"
	"github.com/tomz197/starshooter/internal/loop/config"
	"github.com/tomz197/starshooter/internal/loop/server"
)

// gameOverInputDelay keeps a held fire key from dismissing the game over
// modal the moment it appears.
const gameOverInputDelay = 500 * time.Millisecond

// Client handles the game, rendering and input for a single connection.
type Client struct {
	hub          server.GameHub
	handle       *server.SessionHandle
	state        *ClientState
	game         *loop.State
	gameConfig   loop.Config
	rng          *rand.Rand
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	styles       styles
	writer       io.Writer
	inputStream  *input.Stream
	lastInput    time.Time
	username     string
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Profile      termenv.Profile // Color profile of the remote terminal; zero value is TrueColor
	Logger       *log.Logger
	Seed         int64        // 0 picks a time-based seed
	GameConfig   *loop.Config // nil uses loop.DefaultConfig
}

// NewClient creates a new client registered with the given hub.
func NewClient(hub server.GameHub, r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gameConfig := loop.DefaultConfig()
	if opts.GameConfig != nil {
		gameConfig = *opts.GameConfig
	}

	handle := hub.RegisterSession(opts.Username)

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := draw.TerminalSizeRawWith(termSizeFunc)
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, gameConfig.Width, gameConfig.Height)
	canvas.SetOffset(offsetCol, offsetRow)
	canvas.SetProfile(opts.Profile)
	chunkWriter := draw.NewChunkWriter(w, offsetCol, offsetRow)

	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(opts.Profile)
	renderer.SetHasDarkBackground(true)

	c := &Client{
		hub:          hub,
		handle:       handle,
		state:        NewClientState(),
		gameConfig:   gameConfig,
		rng:          rand.New(rand.NewSource(seed)),
		canvas:       canvas,
		chunkWriter:  chunkWriter,
		styles:       newStyles(renderer),
		writer:       w,
		lastInput:    time.Now(),
		inputStream:  input.StartStream(r),
		username:     opts.Username,
		termSizeFunc: termSizeFunc,
		logger:       logger.With("session", handle.ID, "user", opts.Username),
	}
	c.newGame(time.Now())
	return c
}

// Run starts the client loop. Blocks until the player quits, the
// connection ends or the server shuts the session down.
func (c *Client) Run() error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	c.logger.Info("session started")
	lastTime := time.Now()

	for c.state.Running {
		frameStart := time.Now()
		c.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		// Process input
		c.processInput(frameStart)

		// Check for hub events
		c.processHubEvents()

		// Handle screen resize
		c.updateScreen()

		// Handle game state
		switch c.state.GameState {
		case GameStatePlaying:
			c.updatePlayingState(frameStart)
		case GameStateGameOver:
			c.updateGameOverState(frameStart)
		case GameStateShutdown:
			c.updateShutdownState()
		}

		// Draw frame
		if err := c.drawFrame(frameStart); err != nil {
			return err
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	// Unregister from hub
	c.hub.UnregisterSession(c.handle.ID)
	c.logger.Info("session ended", "score", c.state.Score)

	draw.ClearScreen(c.writer)
	return nil
}

// newGame starts a fresh game.
func (c *Client) newGame(now time.Time) {
	c.game = loop.NewState(c.gameConfig, c.rng, now)
	c.state.Score = 0
	c.state.Health = c.game.Health
	c.state.GameState = GameStatePlaying
}

// GameOver records the final score and shows the game over modal.
// Implements loop.Notifier.
func (c *Client) GameOver(score int) {
	c.state.FinalScore = score
	c.state.GameState = GameStateGameOver
	input.ResetKeyInput(c.inputStream)

	c.hub.ReportScore(c.handle.ID, score)
	c.logger.Info("game over", "score", score)
}

// processInput reads input and tracks inactivity.
func (c *Client) processInput(now time.Time) {
	c.state.Input = input.ReadInput(c.inputStream)

	if c.inputStream.Closed() {
		c.state.Running = false
		return
	}

	if len(c.state.Input.Pressed) > 0 {
		c.lastInput = now
		c.state.isInactive = false
	} else if now.Sub(c.lastInput).Seconds() > config.InactivityDisconnectUser {
		c.logger.Info("disconnecting inactive session")
		c.state.Running = false
	} else if now.Sub(c.lastInput).Seconds() > config.InactivityWarnUser {
		c.state.isInactive = true
	}

	if c.state.Input.Quit {
		c.state.Running = false
	}
}

// processHubEvents handles events from the hub.
func (c *Client) processHubEvents() {
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				// Hub closed the channel
				c.state.Running = false
				return
			}
			switch event.Type {
			case server.EventServerShutdown:
				c.state.GameState = GameStateShutdown
				c.state.shutdownTimer = config.ShutdownDisplaySeconds
			}
		default:
			return
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := draw.TerminalSizeRawWith(c.termSizeFunc)
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = termWidth
	renderHeight = termHeight
	if renderWidth > config.MaxTermWidth {
		renderWidth = config.MaxTermWidth
	}
	if renderHeight > config.MaxTermHeight {
		renderHeight = config.MaxTermHeight
	}
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// updatePlayingState advances the game by one tick, drawing into the canvas.
// The inactivity warning pauses the game.
func (c *Client) updatePlayingState(now time.Time) {
	if c.state.isInactive {
		return
	}
	running := loop.Tick(c.game, c.state.Input, now, loop.Outputs{
		Surface:  c.canvas,
		Display:  c.state,
		Notifier: c,
	})
	if !running {
		c.state.gameOverAt = now
	}
}

// updateGameOverState waits for a key to dismiss the modal and start over.
func (c *Client) updateGameOverState(now time.Time) {
	if now.Sub(c.state.gameOverAt) < gameOverInputDelay {
		return
	}
	if c.state.Input.Fire || c.state.Input.Enter {
		input.ResetKeyInput(c.inputStream)
		c.newGame(now)
		c.logger.Debug("new game")
	}
}

// updateShutdownState handles the shutdown screen countdown.
func (c *Client) updateShutdownState() {
	c.state.shutdownTimer -= c.state.delta.Seconds()
	if c.state.shutdownTimer <= 0 {
		c.state.Running = false
	}
}
