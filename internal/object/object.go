// Package object defines the game entities and how each one moves and draws.
package object

import (
	"image/color"
	"math/rand"
	"time"

	"github.com/tomz197/starshooter/internal/draw"
	"github.com/tomz197/starshooter/internal/input"
	"github.com/tomz197/starshooter/internal/physics"
)

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	Spawn(obj Object)
}

// Input is an alias for the input package's Input type.
type Input = input.Input

// Screen is the playfield size in logical pixels.
type Screen struct {
	Width  float64
	Height float64
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Now     time.Time
	Input   Input
	Screen  Screen
	Spawner Spawner
	Rand    *rand.Rand
	Score   int

	// SpeedMultiplier scales meteor movement.
	SpeedMultiplier float64
	// FlipChance is the per-tick probability that a meteor swaps its heading.
	FlipChance float64
	// MeteorCount is the number of live meteors before this tick's spawns.
	MeteorCount int
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update advances the object by one tick. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool)

	// Draw fills the object's shape on the surface.
	Draw(s draw.Surface)
}

// Collider is implemented by objects that take part in collisions.
type Collider interface {
	Bounds() physics.Rect
}

// Destructible is implemented by objects that can be destroyed/marked for removal.
type Destructible interface {
	// MarkDestroyed marks the object for removal on the next compaction.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// Collides reports whether two colliders overlap.
func Collides(a, b Collider) bool {
	return physics.Overlaps(a.Bounds(), b.Bounds())
}

func fillBounds(s draw.Surface, c Collider, col color.RGBA) {
	r := c.Bounds()
	s.FillRect(r.X, r.Y, r.W, r.H, col)
}
