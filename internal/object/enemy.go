package object

import (
	"image/color"

	"github.com/tomz197/starshooter/internal/draw"
	"github.com/tomz197/starshooter/internal/loop/config"
	"github.com/tomz197/starshooter/internal/physics"
)

// Enemy patrols horizontally near the top of the screen and fires downward.
type Enemy struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // Pixels per tick
	Direction     float64 // +1 right, -1 left
	FireChance    float64 // Per-tick probability of firing
	Color         color.RGBA
}

// NewEnemy creates an enemy centered horizontally at its patrol height.
func NewEnemy(screen Screen, fireChance float64) Enemy {
	return Enemy{
		X:          screen.Width/2 - config.EnemyWidth/2,
		Y:          config.EnemyY,
		Width:      config.EnemyWidth,
		Height:     config.EnemyHeight,
		Speed:      config.EnemySpeed,
		Direction:  1,
		FireChance: fireChance,
		Color:      config.ColorEnemy,
	}
}

// Update may fire a projectile from the current position, then patrols,
// reversing at either screen edge. The enemy is never removed.
func (e *Enemy) Update(ctx UpdateContext) bool {
	if ctx.Spawner != nil && ctx.Rand != nil && ctx.Rand.Float64() < e.FireChance {
		ctx.Spawner.Spawn(NewEnemyProjectile(e.Bounds()))
	}

	e.X += e.Speed * e.Direction
	maxX := ctx.Screen.Width - e.Width
	if e.X <= 0 {
		e.X = 0
		e.Direction = 1
	} else if e.X >= maxX {
		e.X = maxX
		e.Direction = -1
	}
	return false
}

// Bounds returns the enemy's collision rectangle.
func (e *Enemy) Bounds() physics.Rect {
	return physics.Rect{X: e.X, Y: e.Y, W: e.Width, H: e.Height}
}

// Draw renders the enemy.
func (e *Enemy) Draw(s draw.Surface) {
	fillBounds(s, e, e.Color)
}

// EnemySlot holds the optional enemy: absent until activated, then active
// for the rest of the game.
type EnemySlot struct {
	enemy  Enemy
	active bool
}

// Activate installs e if the slot is empty. Returns false if an enemy was
// already active, in which case the slot is unchanged.
func (s *EnemySlot) Activate(e Enemy) bool {
	if s.active {
		return false
	}
	s.enemy = e
	s.active = true
	return true
}

// Active returns the enemy and true if one is present.
func (s *EnemySlot) Active() (*Enemy, bool) {
	if !s.active {
		return nil, false
	}
	return &s.enemy, true
}
