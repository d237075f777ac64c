package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/starshooter/internal/loop/config"
	"github.com/tomz197/starshooter/internal/loop/server"
)

// styles holds the lipgloss styles for the HUD and overlay panels.
// All styles come from the session's renderer so colors match the remote
// terminal's profile.
type styles struct {
	hud     lipgloss.Style
	health  lipgloss.Style
	low     lipgloss.Style
	players lipgloss.Style
	panel   lipgloss.Style
	title   lipgloss.Style
	dim     lipgloss.Style
	warn    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		hud:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		health:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		low:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		players: r.NewStyle().Foreground(lipgloss.Color("8")),
		panel: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(1, 4).
			Align(lipgloss.Center),
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		dim:   r.NewStyle().Foreground(lipgloss.Color("8")),
		warn:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
	}
}

// drawFrame draws the current frame.
func (c *Client) drawFrame(now time.Time) error {
	// On game state or inactivity transitions, do a full terminal clear
	// so UI elements from the previous state don't persist on screen.
	stateChanged := c.state.GameState != c.state.prevGameState
	inactiveChanged := c.state.isInactive != c.state.wasInactive
	if stateChanged || inactiveChanged {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
		c.state.prevGameState = c.state.GameState
		c.state.wasInactive = c.state.isInactive
	}

	// The playfield was filled by the last tick; render only what changed.
	c.canvas.Render(c.chunkWriter)

	snapshot := c.hub.GetSnapshot()
	c.drawUI(snapshot, now)

	return c.chunkWriter.Flush()
}

// drawUI draws the game UI overlay.
func (c *Client) drawUI(snapshot *server.Snapshot, now time.Time) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()

	if c.state.GameState == GameStateShutdown {
		c.drawPanel(termWidth, termHeight, c.shutdownPanel())
		return
	}

	if c.state.isInactive {
		c.drawPanel(termWidth, termHeight, c.inactivityPanel(now))
		return
	}

	c.drawHUD(termWidth, termHeight, snapshot)
	if c.state.GameState == GameStateGameOver {
		c.drawPanel(termWidth, termHeight, c.gameOverPanel(snapshot, now))
	}
}

// drawHUD draws score, health and player count over the playfield.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen (the canvas only redraws changed cells).
func (c *Client) drawHUD(termWidth, termHeight int, snapshot *server.Snapshot) {
	cw := c.chunkWriter

	// Score (top left)
	cw.WriteAt(2, 1, c.styles.hud.Render(fmt.Sprintf("Score: %-8d", c.state.Score)))

	// Health (top right)
	healthText := fmt.Sprintf("Health: %-3d", c.state.Health)
	healthStyle := c.styles.health
	if c.state.Health <= config.DamageMeteor {
		healthStyle = c.styles.low
	}
	cw.WriteAt(termWidth-len(healthText)-1, 1, healthStyle.Render(healthText))

	// Live players (bottom right)
	playersText := fmt.Sprintf("Players: %-4d", snapshot.Players)
	cw.WriteAt(termWidth-len(playersText)-1, termHeight, c.styles.players.Render(playersText))
}

// drawPanel centers a rendered lipgloss block on the terminal.
func (c *Client) drawPanel(termWidth, termHeight int, block string) {
	col := (termWidth-lipgloss.Width(block))/2 + 1
	row := (termHeight-lipgloss.Height(block))/2 + 1
	if col < 1 {
		col = 1
	}
	if row < 1 {
		row = 1
	}
	c.chunkWriter.WriteBlockAt(col, row, block)

	// Let the canvas repaint these cells once the panel goes away
	width := lipgloss.Width(block)
	for i := 0; i < lipgloss.Height(block); i++ {
		c.canvas.MarkTextDirty(col, row+i, width)
	}
}

// gameOverPanel renders the final score and the shared leaderboard.
func (c *Client) gameOverPanel(snapshot *server.Snapshot, now time.Time) string {
	lines := []string{
		c.styles.title.Render("GAME OVER"),
		"",
		fmt.Sprintf("Your score: %d", c.state.FinalScore),
		"",
	}
	lines = append(lines, leaderboardLines(snapshot.TopScores, c.username, c.state.FinalScore)...)
	lines = append(lines, "")

	prompt := ">>  Press SPACE to play again  <<"
	if now.Sub(c.state.gameOverAt) < gameOverInputDelay || now.UnixMilli()/600%2 != 0 {
		prompt = strings.Repeat(" ", len(prompt))
	}
	lines = append(lines, prompt, c.styles.dim.Render("Q to quit"))

	return c.styles.panel.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// leaderboardLines formats the top scores, marking the entry that matches
// this session's latest game.
func leaderboardLines(entries []server.TopScoreEntry, username string, score int) []string {
	if len(entries) == 0 {
		return []string{"No scores yet"}
	}

	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, "Top scores")
	marked := false
	for i, e := range entries {
		name := e.Username
		if name == "" {
			name = "anonymous"
		}
		marker := "  "
		if !marked && e.Username == username && e.Score == score {
			marker = "> "
			marked = true
		}
		lines = append(lines, fmt.Sprintf("%s%2d. %-16s %6d", marker, i+1, name, e.Score))
	}
	return lines
}

// inactivityPanel renders the inactivity warning.
func (c *Client) inactivityPanel(now time.Time) string {
	remaining := int(config.InactivityDisconnectUser - now.Sub(c.lastInput).Seconds())
	if remaining < 0 {
		remaining = 0
	}
	return c.styles.panel.Render(lipgloss.JoinVertical(lipgloss.Center,
		c.styles.warn.Render("INACTIVITY WARNING"),
		"",
		"You have been inactive for too long.",
		fmt.Sprintf("You will be disconnected in %3d seconds.", remaining),
		"",
		c.styles.dim.Render("Press any key to continue"),
	))
}

// shutdownPanel renders the server shutdown countdown.
func (c *Client) shutdownPanel() string {
	remaining := int(c.state.shutdownTimer) + 1
	return c.styles.panel.Render(lipgloss.JoinVertical(lipgloss.Center,
		c.styles.warn.Render("SERVER SHUTTING DOWN"),
		"",
		"The server is restarting for maintenance.",
		"Please reconnect in a moment.",
		"",
		fmt.Sprintf("Disconnecting in %2d seconds...", remaining),
		"",
		c.styles.dim.Render("Press Q to disconnect now"),
	))
}
