package object

import (
	"image/color"

	"github.com/tomz197/starshooter/internal/draw"
	"github.com/tomz197/starshooter/internal/loop/config"
	"github.com/tomz197/starshooter/internal/physics"
)

// Owner identifies who fired a projectile.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// Projectile is a bullet fired by the ship (upward) or the enemy (downward).
type Projectile struct {
	X, Y          float64
	Width, Height float64
	VY            float64 // Pixels per tick; negative is upward
	Owner         Owner
	Color         color.RGBA
	destroyed     bool
}

// NewPlayerProjectile creates a projectile centered on the top edge of the shooter.
func NewPlayerProjectile(shooter physics.Rect) *Projectile {
	return &Projectile{
		X:      shooter.X + shooter.W/2 - config.ProjectileWidth/2,
		Y:      shooter.Y,
		Width:  config.ProjectileWidth,
		Height: config.ProjectileHeight,
		VY:     -config.PlayerProjectileSpeed,
		Owner:  OwnerPlayer,
		Color:  config.ColorProjectile,
	}
}

// NewEnemyProjectile creates a projectile centered on the bottom edge of the shooter.
func NewEnemyProjectile(shooter physics.Rect) *Projectile {
	return &Projectile{
		X:      shooter.X + shooter.W/2 - config.ProjectileWidth/2,
		Y:      shooter.Bottom(),
		Width:  config.ProjectileWidth,
		Height: config.ProjectileHeight,
		VY:     config.EnemyProjectileSpeed,
		Owner:  OwnerEnemy,
		Color:  config.ColorEnemyProjectile,
	}
}

// MarkDestroyed marks the projectile for removal.
func (p *Projectile) MarkDestroyed() {
	p.destroyed = true
}

// IsDestroyed returns true if the projectile is marked for destruction.
func (p *Projectile) IsDestroyed() bool {
	return p.destroyed
}

// Update moves the projectile. It is removed once fully above the top edge
// or below the bottom edge.
func (p *Projectile) Update(ctx UpdateContext) bool {
	p.Y += p.VY
	return p.Y+p.Height < 0 || p.Y > ctx.Screen.Height
}

// Bounds returns the projectile's collision rectangle.
func (p *Projectile) Bounds() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Draw renders the projectile.
func (p *Projectile) Draw(s draw.Surface) {
	fillBounds(s, p, p.Color)
}
