package loop

import (
	"github.com/tomz197/starshooter/internal/loop/config"
	"github.com/tomz197/starshooter/internal/object"
)

// SpeedMultiplier returns the meteor speed scale for a score:
// 1.0 below 250, then +0.5 for every further 250 points.
func SpeedMultiplier(score int) float64 {
	if score < 0 {
		score = 0
	}
	return 1 + float64(score/config.SpeedStepScore)*config.SpeedStepMultiplier
}

// activateEnemy brings in the enemy the first time the score reaches
// ShrinkScore. Later calls are no-ops.
func activateEnemy(s *State) {
	if s.Score < config.ShrinkScore {
		return
	}
	s.Enemy.Activate(object.NewEnemy(s.Screen(), s.Config.EnemyFireChance))
}

// applyDifficulty applies the one-way score thresholds.
func applyDifficulty(s *State) {
	if s.Score >= config.BoostScore && s.Ship.Speed < config.ShipSpeedFast {
		s.Ship.Speed = config.ShipSpeedFast
	}
	if s.Score >= config.ShrinkScore && s.Ship.Width > config.ShipSizeSmall {
		s.Ship.Resize(config.ShipSizeSmall)
	}
	activateEnemy(s)
}
