package loop

import (
	"math/rand"
	"time"

	"github.com/tomz197/starshooter/internal/loop/config"
	"github.com/tomz197/starshooter/internal/object"
	"github.com/tomz197/starshooter/internal/physics"
)

// collisionGridCellSize is the cell size for the meteor spatial grid.
// Must be >= the largest meteor or projectile dimension (meteors are 40×40).
const collisionGridCellSize = config.MeteorSize

// State holds everything one game mutates between ticks.
// It is owned by a single goroutine.
type State struct {
	Config Config

	Ship             *object.Ship
	Projectiles      []*object.Projectile // Player projectiles, insertion order
	Meteors          []*object.Meteor     // Insertion order
	Enemy            object.EnemySlot
	EnemyProjectiles []*object.Projectile
	Particles        []*object.Particle
	Spawner          *object.MeteorSpawner

	Score   int
	Health  int
	Running bool

	rng      *rand.Rand
	toSpawn  []object.Object // Objects to add after the current phase
	grid     *physics.SpatialGrid
	notified bool // Game over already reported
}

// NewState creates a running game. The first meteor wave is due one spawn
// interval after start. A nil rng is replaced by a time-seeded one.
func NewState(cfg Config, rng *rand.Rand, start time.Time) *State {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	screen := object.Screen{Width: cfg.Width, Height: cfg.Height}

	return &State{
		Config:  cfg,
		Ship:    object.NewShip(screen, cfg.FireInterval),
		Spawner: object.NewMeteorSpawner(cfg.MeteorSpawnInterval, cfg.MaxMeteors, start),
		Health:  cfg.InitialHealth,
		Running: true,
		rng:     rng,
		grid:    physics.NewSpatialGrid(cfg.Width, cfg.Height, collisionGridCellSize),
	}
}

// Screen returns the playfield size.
func (s *State) Screen() object.Screen {
	return object.Screen{Width: s.Config.Width, Height: s.Config.Height}
}

// AddMeteor places a meteor directly into play.
func (s *State) AddMeteor(m *object.Meteor) {
	s.Meteors = append(s.Meteors, m)
}

// Spawn queues an object to be added after the current update phase.
// Implements object.Spawner interface.
func (s *State) Spawn(obj object.Object) {
	s.toSpawn = append(s.toSpawn, obj)
}

// FlushSpawned routes all queued objects into their collections and clears the queue.
func (s *State) FlushSpawned() {
	for _, obj := range s.toSpawn {
		switch o := obj.(type) {
		case *object.Projectile:
			if o.Owner == object.OwnerEnemy {
				s.EnemyProjectiles = append(s.EnemyProjectiles, o)
			} else {
				s.Projectiles = append(s.Projectiles, o)
			}
		case *object.Meteor:
			s.Meteors = append(s.Meteors, o)
		case *object.Particle:
			s.Particles = append(s.Particles, o)
		}
	}
	clear(s.toSpawn)
	s.toSpawn = s.toSpawn[:0]
}

// updateContext creates an UpdateContext for the current tick.
func (s *State) updateContext(in object.Input, now time.Time) object.UpdateContext {
	ctx := object.UpdateContext{
		Now:             now,
		Input:           in,
		Screen:          s.Screen(),
		Spawner:         s,
		Rand:            s.rng,
		Score:           s.Score,
		SpeedMultiplier: SpeedMultiplier(s.Score),
		MeteorCount:     len(s.Meteors),
	}
	if s.Score >= config.ShrinkScore {
		ctx.FlipChance = s.Config.MeteorFlipChance
	}
	return ctx
}
