package object

import (
	"image/color"
	"math"
	"math/rand"
	"sync"

	"github.com/tomz197/starshooter/internal/draw"
	"github.com/tomz197/starshooter/internal/loop/config"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is short-lived explosion debris. It never collides.
type Particle struct {
	X, Y        float64 // Center
	VX, VY      float64 // Pixels per tick
	Lifetime    int     // Ticks remaining
	MaxLifetime int     // Initial lifetime (for fade calculation)
	Drag        float64 // Velocity factor applied each tick (1.0 = no drag)
	Size        float64
	Color       color.RGBA
}

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, vx, vy float64, lifetime int, col color.RGBA) *Particle {
	p := particlePool.Get().(*Particle)
	p.X = x
	p.Y = y
	p.VX = vx
	p.VY = vy
	p.Lifetime = lifetime
	p.MaxLifetime = lifetime
	p.Drag = 0.92
	p.Size = config.ParticleSize
	p.Color = col
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the game.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// SpawnExplosion creates count particles bursting from (x, y).
func SpawnExplosion(x, y float64, count int, speed float64, rng *rand.Rand, spawner Spawner) {
	if spawner == nil || rng == nil {
		return
	}

	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		// Random speed variation (50% to 150%)
		spd := speed * (0.5 + rng.Float64())
		// Random lifetime variation (50% to 100%)
		life := int(float64(config.ParticleLifetime) * (0.5 + rng.Float64()*0.5))

		p := NewParticle(x, y, math.Cos(angle)*spd, math.Sin(angle)*spd, life, config.ColorParticle)
		spawner.Spawn(p)
	}
}

// Update moves the particle and counts down its lifetime.
func (p *Particle) Update(_ UpdateContext) bool {
	p.Lifetime--
	if p.Lifetime <= 0 {
		return true
	}

	p.VX *= p.Drag
	p.VY *= p.Drag
	p.X += p.VX
	p.Y += p.VY

	return false
}

// Draw renders the particle as a small square.
func (p *Particle) Draw(s draw.Surface) {
	// Skip faded particles (< 25% lifetime)
	if p.MaxLifetime > 0 && float64(p.Lifetime)/float64(p.MaxLifetime) < 0.25 {
		return
	}
	s.FillRect(p.X-p.Size/2, p.Y-p.Size/2, p.Size, p.Size, p.Color)
}
