package loop

import (
	"github.com/tomz197/starshooter/internal/loop/config"
	"github.com/tomz197/starshooter/internal/object"
)

// populateGrid clears and re-inserts all live meteors into the spatial grid.
func populateGrid(s *State) {
	s.grid.Clear()
	for i, m := range s.Meteors {
		s.grid.Insert(m.X, m.Y, i)
	}
}

// checkProjectileMeteorCollisions handles player projectile hits on meteors.
// Projectiles are processed in insertion order; each one destroys at most
// the earliest-inserted live meteor it overlaps, and each meteor is
// destroyed at most once.
func checkProjectileMeteorCollisions(s *State) {
	if len(s.Meteors) == 0 || len(s.Projectiles) == 0 {
		return
	}
	populateGrid(s)

	for _, p := range s.Projectiles {
		if p.IsDestroyed() {
			continue
		}

		hit := -1
		s.grid.QueryAround(p.X, p.Y, func(j int) bool {
			if hit >= 0 && j > hit {
				return false
			}
			m := s.Meteors[j]
			if !m.IsDestroyed() && object.Collides(p, m) {
				hit = j
			}
			return false
		})
		if hit < 0 {
			continue
		}

		m := s.Meteors[hit]
		p.MarkDestroyed()
		m.MarkDestroyed()
		s.Score += config.ScoreMeteor

		cx, cy := m.Center()
		object.SpawnExplosion(cx, cy, s.Config.ExplosionParticles, config.ParticleSpeed, s.rng, s)
	}

	s.Projectiles = compact(s.Projectiles)
	s.Meteors = compact(s.Meteors)
}

// checkEnemyProjectileShipCollisions applies damage for every enemy
// projectile overlapping the ship and removes it.
func checkEnemyProjectileShipCollisions(s *State) {
	hit := false
	for _, p := range s.EnemyProjectiles {
		if object.Collides(p, s.Ship) {
			p.MarkDestroyed()
			s.Health -= config.DamageEnemyShot
			hit = true
		}
	}
	if hit {
		s.EnemyProjectiles = compact(s.EnemyProjectiles)
	}
}

// compact drops destroyed objects, keeping order.
func compact[T object.Destructible](objs []T) []T {
	kept := objs[:0] // reuse backing array
	for _, o := range objs {
		if !o.IsDestroyed() {
			kept = append(kept, o)
		}
	}
	clear(objs[len(kept):])
	return kept
}
