package object

import (
	"image/color"
	"math/rand"

	"github.com/tomz197/starshooter/internal/draw"
	"github.com/tomz197/starshooter/internal/loop/config"
	"github.com/tomz197/starshooter/internal/physics"
)

// Heading is the axis a meteor travels along.
type Heading int

const (
	HeadingVertical Heading = iota
	HeadingHorizontal
)

func (h Heading) String() string {
	switch h {
	case HeadingVertical:
		return "vertical"
	case HeadingHorizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// Flip returns the other heading.
func (h Heading) Flip() Heading {
	if h == HeadingVertical {
		return HeadingHorizontal
	}
	return HeadingVertical
}

// Meteor is a hostile rock that damages the ship on contact.
type Meteor struct {
	X, Y      float64
	Size      float64
	Speed     float64 // Base pixels per tick, scaled by the speed multiplier
	Heading   Heading
	Direction float64 // +1 moving right, -1 moving left; used while horizontal
	Color     color.RGBA
	destroyed bool
}

// randomSpeed draws a speed uniformly from [MeteorMinSpeed, MeteorMinSpeed+MeteorSpeedRange).
func randomSpeed(rng *rand.Rand) float64 {
	return rng.Float64()*config.MeteorSpeedRange + config.MeteorMinSpeed
}

// randomDirection returns -1 or +1 with equal probability.
func randomDirection(rng *rand.Rand) float64 {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// NewMeteorAtEdge creates a meteor entering from the top edge (vertical) or
// from a random side edge (horizontal), 50/50.
func NewMeteorAtEdge(screen Screen, rng *rand.Rand) *Meteor {
	m := &Meteor{
		Size:  config.MeteorSize,
		Speed: randomSpeed(rng),
		Color: config.ColorMeteor,
	}

	if rng.Intn(2) == 0 {
		m.Heading = HeadingVertical
		m.X = rng.Float64() * (screen.Width - m.Size)
		m.Y = config.MeteorSpawnY
		m.Direction = randomDirection(rng)
		return m
	}

	m.Heading = HeadingHorizontal
	m.Y = rng.Float64() * (screen.Height / 2)
	if rng.Intn(2) == 0 {
		m.X = -m.Size
		m.Direction = 1
	} else {
		m.X = screen.Width
		m.Direction = -1
	}
	return m
}

// Update flips the heading with probability ctx.FlipChance, then advances
// the meteor along its heading. Returns true once the meteor has left the
// screen along its axis of travel.
func (m *Meteor) Update(ctx UpdateContext) bool {
	if ctx.FlipChance > 0 && ctx.Rand != nil && ctx.Rand.Float64() < ctx.FlipChance {
		m.Heading = m.Heading.Flip()
	}

	step := m.Speed * ctx.SpeedMultiplier
	switch m.Heading {
	case HeadingVertical:
		m.Y += step
		return m.Y > ctx.Screen.Height
	case HeadingHorizontal:
		m.X += step * m.Direction
		if m.Direction > 0 {
			return m.X > ctx.Screen.Width
		}
		return m.X+m.Size < 0
	}
	return false
}

// MarkDestroyed marks the meteor for removal.
func (m *Meteor) MarkDestroyed() {
	m.destroyed = true
}

// IsDestroyed returns true if the meteor is marked for destruction.
func (m *Meteor) IsDestroyed() bool {
	return m.destroyed
}

// Bounds returns the meteor's collision rectangle.
func (m *Meteor) Bounds() physics.Rect {
	return physics.Rect{X: m.X, Y: m.Y, W: m.Size, H: m.Size}
}

// Center returns the meteor's center point.
func (m *Meteor) Center() (float64, float64) {
	return m.X + m.Size/2, m.Y + m.Size/2
}

// Draw renders the meteor.
func (m *Meteor) Draw(s draw.Surface) {
	fillBounds(s, m, m.Color)
}
