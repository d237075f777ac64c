package loop

import (
	"time"

	"github.com/tomz197/starshooter/internal/loop/config"
)

// Config holds the per-game parameters of the simulation.
// DefaultConfig fills it from the tunables in the config package; tests
// override individual fields to make chance-driven behavior deterministic.
type Config struct {
	Width, Height float64

	FireInterval        time.Duration
	MeteorSpawnInterval time.Duration
	MaxMeteors          int
	MeteorFlipChance    float64
	EnemyFireChance     float64
	InitialHealth       int
	ExplosionParticles  int
}

// DefaultConfig returns the standard game configuration.
func DefaultConfig() Config {
	return Config{
		Width:               config.CanvasWidth,
		Height:              config.CanvasHeight,
		FireInterval:        config.FireInterval,
		MeteorSpawnInterval: config.MeteorSpawnInterval,
		MaxMeteors:          config.MaxMeteors,
		MeteorFlipChance:    config.MeteorFlipChance,
		EnemyFireChance:     config.EnemyFireChance,
		InitialHealth:       config.InitialHealth,
		ExplosionParticles:  config.ExplosionParticles,
	}
}
