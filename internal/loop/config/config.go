// Package config centralizes all tunable game parameters.
package config

import (
	"image/color"
	"time"

	"golang.org/x/image/colornames"
)

// Playfield in logical pixels. Terminal rendering scales to fit.
const (
	CanvasWidth  = 800
	CanvasHeight = 600
)

// Ship
const (
	ShipSize        = 50.0
	ShipSizeSmall   = 35.0 // After ShrinkScore
	ShipSpeed       = 5.0  // Pixels per tick
	ShipSpeedFast   = 7.0  // After BoostScore
	ShipStartMargin = 70.0 // Distance of the ship's top edge from the bottom on start
	FireInterval    = 300 * time.Millisecond
	InitialHealth   = 100
)

// Projectiles
const (
	ProjectileWidth       = 5.0
	ProjectileHeight      = 10.0
	PlayerProjectileSpeed = 7.0
	EnemyProjectileSpeed  = 5.0
)

// Meteors
const (
	MeteorSize          = 40.0
	MeteorMinSpeed      = 2.0
	MeteorSpeedRange    = 2.0 // Speed is uniform in [MeteorMinSpeed, MeteorMinSpeed+MeteorSpeedRange)
	MeteorSpawnY        = -50.0
	MeteorSpawnInterval = 1000 * time.Millisecond
	MaxMeteors          = 50
	MeteorFlipChance    = 0.05 // Per tick, once ShrinkScore is reached
)

// Enemy
const (
	EnemyWidth      = 100.0
	EnemyHeight     = 50.0
	EnemyY          = 50.0
	EnemySpeed      = 2.0
	EnemyFireChance = 0.05
)

// Scoring and damage
const (
	ScoreMeteor          = 10
	DamageMeteor         = 20
	DamageEnemyShot      = 10
	SpeedStepScore       = 250 // Meteor speed multiplier grows every SpeedStepScore points
	SpeedStepMultiplier  = 0.5
	BoostScore           = 500 // Faster ship, two meteors per spawn
	ShrinkScore          = 750 // Smaller ship, meteors change heading, enemy appears
	MeteorsPerSpawn      = 1
	MeteorsPerSpawnBoost = 2
)

// Explosion particles
const (
	ExplosionParticles = 8
	ParticleSpeed      = 3.0 // Pixels per tick
	ParticleLifetime   = 24  // Ticks
	ParticleSize       = 4.0
)

// Colors
var (
	ColorShip            color.RGBA = colornames.Cyan
	ColorProjectile      color.RGBA = colornames.Yellow
	ColorMeteor          color.RGBA = colornames.Red
	ColorEnemy           color.RGBA = colornames.Orange
	ColorEnemyProjectile color.RGBA = colornames.Orangered
	ColorParticle        color.RGBA = colornames.Gold
	ColorBackground      color.RGBA = colornames.Black
)

// Session hub
const (
	TopScoresLimit = 10
	HubTickRate    = 10
	HubTickTime    = time.Second / HubTickRate
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
	MaxTermWidth          = 200
	MaxTermHeight         = 60
)
