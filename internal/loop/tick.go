// Package loop runs the game simulation one tick at a time.
package loop

import (
	"time"

	"github.com/tomz197/starshooter/internal/draw"
	"github.com/tomz197/starshooter/internal/loop/config"
	"github.com/tomz197/starshooter/internal/object"
)

// Display shows the score and health fields next to the playfield.
type Display interface {
	ShowScore(score int)
	ShowHealth(health int)
}

// Notifier is told once when the game ends.
type Notifier interface {
	GameOver(score int)
}

// Outputs are the collaborators a tick writes to. Nil fields are skipped.
type Outputs struct {
	Surface  draw.Surface
	Display  Display
	Notifier Notifier
}

// Tick advances the game by one frame: Input → Update → Collide → Draw.
// It returns true if another tick should be scheduled. Once the game is
// over every further call is a no-op returning false.
func Tick(s *State, in object.Input, now time.Time, out Outputs) bool {
	if !s.Running {
		return false
	}

	ctx := s.updateContext(in, now)

	// Ship movement and fire control
	s.Ship.Update(ctx)
	s.FlushSpawned()

	updateProjectiles(s, ctx)

	// Meteor spawn, then movement and ship collisions
	ctx.MeteorCount = len(s.Meteors)
	s.Spawner.Update(ctx)
	s.FlushSpawned()
	updateMeteors(s, ctx)
	s.FlushSpawned()

	updateEnemy(s, ctx)
	updateParticles(s, ctx)

	checkProjectileMeteorCollisions(s)
	checkEnemyProjectileShipCollisions(s)
	s.FlushSpawned()

	applyDifficulty(s)

	render(s, out.Surface)
	if out.Display != nil {
		out.Display.ShowScore(s.Score)
		out.Display.ShowHealth(s.Health)
	}

	if s.Health <= 0 {
		s.Running = false
		if !s.notified {
			s.notified = true
			if out.Notifier != nil {
				out.Notifier.GameOver(s.Score)
			}
		}
		return false
	}
	return true
}

// updateProjectiles moves player projectiles and drops those that left the top.
func updateProjectiles(s *State, ctx object.UpdateContext) {
	kept := s.Projectiles[:0]
	for _, p := range s.Projectiles {
		if !p.Update(ctx) {
			kept = append(kept, p)
		}
	}
	clear(s.Projectiles[len(kept):])
	s.Projectiles = kept
}

// updateMeteors moves every meteor once. A meteor touching the ship
// damages it and is removed; otherwise it is removed when off screen.
func updateMeteors(s *State, ctx object.UpdateContext) {
	kept := s.Meteors[:0]
	for _, m := range s.Meteors {
		offscreen := m.Update(ctx)
		if object.Collides(m, s.Ship) {
			s.Health -= config.DamageMeteor
			cx, cy := m.Center()
			object.SpawnExplosion(cx, cy, s.Config.ExplosionParticles, config.ParticleSpeed, s.rng, s)
			continue
		}
		if !offscreen {
			kept = append(kept, m)
		}
	}
	clear(s.Meteors[len(kept):])
	s.Meteors = kept
}

// updateEnemy activates the enemy once the threshold is reached, then lets
// it fire and patrol and advances its projectiles.
func updateEnemy(s *State, ctx object.UpdateContext) {
	activateEnemy(s)
	enemy, ok := s.Enemy.Active()
	if !ok {
		return
	}

	enemy.Update(ctx)
	s.FlushSpawned()

	kept := s.EnemyProjectiles[:0]
	for _, p := range s.EnemyProjectiles {
		if !p.Update(ctx) {
			kept = append(kept, p)
		}
	}
	clear(s.EnemyProjectiles[len(kept):])
	s.EnemyProjectiles = kept
}

// updateParticles ages explosion debris and returns expired particles to the pool.
func updateParticles(s *State, ctx object.UpdateContext) {
	kept := s.Particles[:0]
	for _, p := range s.Particles {
		if p.Update(ctx) {
			object.ReleaseObject(p)
			continue
		}
		kept = append(kept, p)
	}
	clear(s.Particles[len(kept):])
	s.Particles = kept
}

// render clears the surface and fills every entity.
func render(s *State, surface draw.Surface) {
	if surface == nil {
		return
	}
	surface.Clear()

	s.Ship.Draw(surface)
	for _, p := range s.Projectiles {
		p.Draw(surface)
	}
	for _, m := range s.Meteors {
		m.Draw(surface)
	}
	for _, p := range s.Particles {
		p.Draw(surface)
	}
	if enemy, ok := s.Enemy.Active(); ok {
		enemy.Draw(surface)
		for _, p := range s.EnemyProjectiles {
			p.Draw(surface)
		}
	}
}
