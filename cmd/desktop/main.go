// Command desktop plays the game in a window (or a browser tab when built
// for js/wasm) using the same simulation as the terminal frontends.
package main

import (
	"fmt"
	"image/color"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/starshooter/internal/config"
	"github.com/tomz197/starshooter/internal/draw"
	"github.com/tomz197/starshooter/internal/loop"
	lcfg "github.com/tomz197/starshooter/internal/loop/config"
	"github.com/tomz197/starshooter/internal/object"
)

// imageSurface draws onto an ebiten image.
type imageSurface struct {
	dst *ebiten.Image
}

func (s imageSurface) Clear() {
	s.dst.Fill(lcfg.ColorBackground)
}

func (s imageSurface) FillRect(x, y, w, h float64, c color.RGBA) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

var _ draw.Surface = imageSurface{}

// desktopGame adapts loop.Tick to ebiten's Update/Draw cycle. Update runs
// the tick into a recorded display list; Draw replays it.
type desktopGame struct {
	cfg    loop.Config
	rng    *rand.Rand
	state  *loop.State
	frame  draw.Recorder
	logger *log.Logger

	score      int
	health     int
	over       bool
	finalScore int
}

func newDesktopGame(cfg loop.Config, rng *rand.Rand, logger *log.Logger) *desktopGame {
	g := &desktopGame{cfg: cfg, rng: rng, logger: logger}
	g.reset(time.Now())
	return g
}

func (g *desktopGame) reset(now time.Time) {
	g.state = loop.NewState(g.cfg, g.rng, now)
	g.score = 0
	g.health = g.state.Health
	g.over = false
}

// ShowScore implements loop.Display.
func (g *desktopGame) ShowScore(score int) { g.score = score }

// ShowHealth implements loop.Display.
func (g *desktopGame) ShowHealth(health int) { g.health = health }

// GameOver implements loop.Notifier.
func (g *desktopGame) GameOver(score int) {
	g.over = true
	g.finalScore = score
	g.logger.Info("game over", "score", score)
}

func (g *desktopGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	now := time.Now()
	if g.over {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.reset(now)
		}
		return nil
	}

	loop.Tick(g.state, readKeys(), now, loop.Outputs{
		Surface:  &g.frame,
		Display:  g,
		Notifier: g,
	})
	return nil
}

func (g *desktopGame) Draw(screen *ebiten.Image) {
	g.frame.Replay(imageSurface{dst: screen})

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", g.score), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Health: %d", g.health), int(g.cfg.Width)-90, 10)

	if g.over {
		cx, cy := int(g.cfg.Width)/2, int(g.cfg.Height)/2
		ebitenutil.DebugPrintAt(screen, "GAME OVER", cx-27, cy-20)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Your score: %d", g.finalScore), cx-45, cy)
		ebitenutil.DebugPrintAt(screen, "Press ENTER to play again", cx-75, cy+20)
	}
}

func (g *desktopGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.Width), int(g.cfg.Height)
}

// readKeys maps the keyboard to a game input snapshot.
func readKeys() object.Input {
	return object.Input{
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:  ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}

func main() {
	logger := config.NewLogger(os.Stderr, "desktop")

	seed := config.Seed()
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := loop.DefaultConfig()
	game := newDesktopGame(cfg, rand.New(rand.NewSource(seed)), logger)

	ebiten.SetWindowSize(int(cfg.Width), int(cfg.Height))
	ebiten.SetWindowTitle("starshooter")
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game error", "err", err)
	}
}
