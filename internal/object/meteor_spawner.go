package object

import (
	"time"

	"github.com/tomz197/starshooter/internal/draw"
	"github.com/tomz197/starshooter/internal/loop/config"
)

// MeteorSpawner releases meteors on a wall-clock interval, independent of
// the frame rate, while keeping the live population under a cap.
type MeteorSpawner struct {
	interval  time.Duration
	max       int
	lastSpawn time.Time
}

// NewMeteorSpawner creates a spawner whose first wave is due one interval after start.
func NewMeteorSpawner(interval time.Duration, max int, start time.Time) *MeteorSpawner {
	if max < 0 {
		max = 0
	}
	return &MeteorSpawner{
		interval:  interval,
		max:       max,
		lastSpawn: start,
	}
}

// Due reports whether a spawn wave is due at now.
func (s *MeteorSpawner) Due(now time.Time) bool {
	return now.Sub(s.lastSpawn) >= s.interval
}

// Update spawns a wave when due: one meteor, or two once the score reaches
// BoostScore, never pushing the live count past the cap.
func (s *MeteorSpawner) Update(ctx UpdateContext) bool {
	if !s.Due(ctx.Now) {
		return false
	}
	s.lastSpawn = ctx.Now

	wave := config.MeteorsPerSpawn
	if ctx.Score >= config.BoostScore {
		wave = config.MeteorsPerSpawnBoost
	}

	count := ctx.MeteorCount
	for i := 0; i < wave && count < s.max; i++ {
		ctx.Spawner.Spawn(NewMeteorAtEdge(ctx.Screen, ctx.Rand))
		count++
	}
	return false
}

// Draw is a no-op; spawner is not visible.
func (s *MeteorSpawner) Draw(_ draw.Surface) {}
