package object

import (
	"image/color"
	"time"

	"github.com/tomz197/starshooter/internal/draw"
	"github.com/tomz197/starshooter/internal/loop/config"
	"github.com/tomz197/starshooter/internal/physics"
)

// Ship is the player-controlled spaceship.
type Ship struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Speed         float64 // Pixels per tick along each held direction
	Color         color.RGBA

	// Shooting
	FireInterval time.Duration // Minimum time between shots while fire is held
	LastFired    time.Time     // Zero until the first shot
}

// NewShip creates a ship centered horizontally near the bottom of the screen.
func NewShip(screen Screen, fireInterval time.Duration) *Ship {
	return &Ship{
		X:            screen.Width/2 - config.ShipSize/2,
		Y:            screen.Height - config.ShipStartMargin,
		Width:        config.ShipSize,
		Height:       config.ShipSize,
		Speed:        config.ShipSpeed,
		Color:        config.ColorShip,
		FireInterval: fireInterval,
	}
}

// Update moves the ship by the held direction keys and fires when allowed.
// The ship never leaves the screen.
func (s *Ship) Update(ctx UpdateContext) bool {
	maxX := ctx.Screen.Width - s.Width
	maxY := ctx.Screen.Height - s.Height

	if ctx.Input.Up {
		s.Y = physics.Clamp(s.Y-s.Speed, 0, maxY)
	}
	if ctx.Input.Down {
		s.Y = physics.Clamp(s.Y+s.Speed, 0, maxY)
	}
	if ctx.Input.Left {
		s.X = physics.Clamp(s.X-s.Speed, 0, maxX)
	}
	if ctx.Input.Right {
		s.X = physics.Clamp(s.X+s.Speed, 0, maxX)
	}

	if ctx.Input.Fire && s.CanFire(ctx.Now) && ctx.Spawner != nil {
		ctx.Spawner.Spawn(NewPlayerProjectile(s.Bounds()))
		s.LastFired = ctx.Now
	}

	return false
}

// CanFire reports whether the debounce interval has elapsed since the last shot.
func (s *Ship) CanFire(now time.Time) bool {
	return s.LastFired.IsZero() || now.Sub(s.LastFired) >= s.FireInterval
}

// Resize changes the ship's dimensions, keeping its top-left corner.
func (s *Ship) Resize(size float64) {
	s.Width = size
	s.Height = size
}

// Bounds returns the ship's collision rectangle.
func (s *Ship) Bounds() physics.Rect {
	return physics.Rect{X: s.X, Y: s.Y, W: s.Width, H: s.Height}
}

// Draw renders the ship as a filled rectangle.
func (s *Ship) Draw(surface draw.Surface) {
	fillBounds(surface, s, s.Color)
}
