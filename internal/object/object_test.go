package object

import (
	"math/rand"
	"testing"
	"time"

	"github.com/tomz197/starshooter/internal/draw"
	"github.com/tomz197/starshooter/internal/loop/config"
)

// collectSpawner records everything spawned during an update.
type collectSpawner struct {
	objects []Object
}

func (c *collectSpawner) Spawn(obj Object) {
	c.objects = append(c.objects, obj)
}

var testScreen = Screen{Width: config.CanvasWidth, Height: config.CanvasHeight}

func newContext(sp Spawner, now time.Time) UpdateContext {
	return UpdateContext{
		Now:             now,
		Screen:          testScreen,
		Spawner:         sp,
		Rand:            rand.New(rand.NewSource(1)),
		SpeedMultiplier: 1,
	}
}

func TestShipStaysOnScreen(t *testing.T) {
	ship := NewShip(testScreen, config.FireInterval)
	ctx := newContext(nil, time.Now())

	ctx.Input = Input{Up: true, Left: true}
	for i := 0; i < 500; i++ {
		ship.Update(ctx)
		if ship.X < 0 || ship.Y < 0 {
			t.Fatalf("tick %d: ship left the screen at (%v,%v)", i, ship.X, ship.Y)
		}
	}
	if ship.X != 0 || ship.Y != 0 {
		t.Errorf("ship should rest at top-left corner, got (%v,%v)", ship.X, ship.Y)
	}

	ctx.Input = Input{Down: true, Right: true}
	for i := 0; i < 500; i++ {
		ship.Update(ctx)
	}
	wantX := testScreen.Width - ship.Width
	wantY := testScreen.Height - ship.Height
	if ship.X != wantX || ship.Y != wantY {
		t.Errorf("ship should rest at bottom-right corner (%v,%v), got (%v,%v)", wantX, wantY, ship.X, ship.Y)
	}

	// Opposite keys cancel out.
	ship.X, ship.Y = 100, 100
	ctx.Input = Input{Up: true, Down: true, Left: true, Right: true}
	ship.Update(ctx)
	if ship.X != 100 || ship.Y != 100 {
		t.Errorf("opposite keys should cancel, got (%v,%v)", ship.X, ship.Y)
	}
}

func TestShipFireDebounce(t *testing.T) {
	ship := NewShip(testScreen, config.FireInterval)
	sp := &collectSpawner{}
	start := time.Unix(1000, 0)

	// Hold fire for 1000ms, sampled every 100ms: shots at 0, 300, 600, 900.
	for ms := 0; ms < 1000; ms += 100 {
		ctx := newContext(sp, start.Add(time.Duration(ms)*time.Millisecond))
		ctx.Input = Input{Fire: true}
		ship.Update(ctx)
	}

	if len(sp.objects) != 4 {
		t.Fatalf("expected 4 projectiles, got %d", len(sp.objects))
	}
	p, ok := sp.objects[0].(*Projectile)
	if !ok {
		t.Fatalf("expected *Projectile, got %T", sp.objects[0])
	}
	if p.Owner != OwnerPlayer || p.VY >= 0 {
		t.Errorf("player projectile should move up, got owner=%v vy=%v", p.Owner, p.VY)
	}
	wantX := ship.X + ship.Width/2 - config.ProjectileWidth/2
	if p.X != wantX || p.Y != ship.Y {
		t.Errorf("projectile should start at ship top center (%v,%v), got (%v,%v)", wantX, ship.Y, p.X, p.Y)
	}
}

func TestShipNoFireWithoutKey(t *testing.T) {
	ship := NewShip(testScreen, config.FireInterval)
	sp := &collectSpawner{}
	ship.Update(newContext(sp, time.Now()))
	if len(sp.objects) != 0 {
		t.Errorf("no projectile expected without fire key, got %d", len(sp.objects))
	}
}

func TestProjectileLeavesScreen(t *testing.T) {
	ctx := newContext(nil, time.Now())

	p := NewPlayerProjectile((&Ship{X: 100, Y: 5, Width: 50, Height: 50}).Bounds())
	if p.Update(ctx) {
		t.Fatalf("projectile at y=-2 still overlaps the screen")
	}
	if p.Update(ctx) {
		t.Fatalf("projectile removed too early at y=%v", p.Y)
	}
	if !p.Update(ctx) {
		t.Errorf("projectile at y=%v should be removed", p.Y)
	}

	e := NewEnemyProjectile((&Enemy{X: 0, Y: testScreen.Height - 10, Width: 10, Height: 10}).Bounds())
	if !e.Update(ctx) {
		t.Errorf("enemy projectile at y=%v should be removed", e.Y)
	}
}

func TestNewMeteorAtEdge(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var vertical, horizontal int

	for i := 0; i < 500; i++ {
		m := NewMeteorAtEdge(testScreen, rng)
		if m.Speed < config.MeteorMinSpeed || m.Speed >= config.MeteorMinSpeed+config.MeteorSpeedRange {
			t.Fatalf("speed %v out of range", m.Speed)
		}
		if m.Direction != 1 && m.Direction != -1 {
			t.Fatalf("direction must be ±1, got %v", m.Direction)
		}
		switch m.Heading {
		case HeadingVertical:
			vertical++
			if m.Y != config.MeteorSpawnY || m.X < 0 || m.X >= testScreen.Width-m.Size {
				t.Fatalf("vertical meteor spawned at (%v,%v)", m.X, m.Y)
			}
		case HeadingHorizontal:
			horizontal++
			fromLeft := m.X == -m.Size && m.Direction == 1
			fromRight := m.X == testScreen.Width && m.Direction == -1
			if !fromLeft && !fromRight {
				t.Fatalf("horizontal meteor spawned at x=%v dir=%v", m.X, m.Direction)
			}
		}
	}
	if vertical == 0 || horizontal == 0 {
		t.Errorf("expected both headings, got vertical=%d horizontal=%d", vertical, horizontal)
	}
}

func TestMeteorMovement(t *testing.T) {
	ctx := newContext(nil, time.Now())
	ctx.SpeedMultiplier = 2

	m := &Meteor{X: 100, Y: testScreen.Height - 1, Size: 40, Speed: 3, Heading: HeadingVertical}
	if !m.Update(ctx) {
		t.Errorf("vertical meteor past the bottom should be removed")
	}
	if m.Y != testScreen.Height+5 {
		t.Errorf("vertical meteor should advance speed×multiplier, got y=%v", m.Y)
	}

	m = &Meteor{X: -35, Y: 100, Size: 40, Speed: 3, Heading: HeadingHorizontal, Direction: -1}
	if !m.Update(ctx) {
		t.Errorf("left-moving meteor fully past the left edge should be removed (x=%v)", m.X)
	}

	m = &Meteor{X: 100, Y: 100, Size: 40, Speed: 3, Heading: HeadingHorizontal, Direction: 1}
	if m.Update(ctx) || m.X != 106 {
		t.Errorf("right-moving meteor should advance to 106, got %v", m.X)
	}
}

func TestMeteorHeadingFlip(t *testing.T) {
	ctx := newContext(nil, time.Now())

	m := &Meteor{X: 100, Y: 100, Size: 40, Speed: 2, Heading: HeadingVertical, Direction: 1}
	m.Update(ctx)
	if m.Heading != HeadingVertical {
		t.Fatalf("meteor should not flip with zero chance")
	}

	ctx.FlipChance = 1
	m.Update(ctx)
	if m.Heading != HeadingHorizontal {
		t.Fatalf("meteor should flip with chance 1")
	}
	if m.X != 102 {
		t.Errorf("flipped meteor should move horizontally, got x=%v", m.X)
	}
	if HeadingHorizontal.String() != "horizontal" || HeadingVertical.String() != "vertical" {
		t.Errorf("unexpected heading names")
	}
}

func TestMeteorSpawner(t *testing.T) {
	start := time.Unix(0, 0)
	s := NewMeteorSpawner(time.Second, 50, start)
	sp := &collectSpawner{}

	ctx := newContext(sp, start.Add(999*time.Millisecond))
	s.Update(ctx)
	if len(sp.objects) != 0 {
		t.Fatalf("no spawn expected before the interval elapses")
	}

	ctx.Now = start.Add(time.Second)
	s.Update(ctx)
	if len(sp.objects) != 1 {
		t.Fatalf("expected 1 meteor, got %d", len(sp.objects))
	}

	// Two per wave once the score reaches the boost threshold.
	ctx.Now = start.Add(2 * time.Second)
	ctx.Score = config.BoostScore
	s.Update(ctx)
	if len(sp.objects) != 3 {
		t.Fatalf("expected 3 meteors after boosted wave, got %d", len(sp.objects))
	}

	// A boosted wave never pushes past the cap.
	ctx.Now = start.Add(3 * time.Second)
	ctx.MeteorCount = 49
	s.Update(ctx)
	if len(sp.objects) != 4 {
		t.Fatalf("expected exactly one meteor up to the cap, got %d total", len(sp.objects))
	}

	ctx.Now = start.Add(4 * time.Second)
	ctx.MeteorCount = 50
	s.Update(ctx)
	if len(sp.objects) != 4 {
		t.Errorf("no meteor expected at the cap, got %d total", len(sp.objects))
	}
}

func TestEnemyPatrol(t *testing.T) {
	ctx := newContext(nil, time.Now())
	e := NewEnemy(testScreen, 0)
	e.X = testScreen.Width - e.Width - 1

	e.Update(ctx)
	if e.X != testScreen.Width-e.Width || e.Direction != -1 {
		t.Fatalf("enemy should reverse at the right edge, got x=%v dir=%v", e.X, e.Direction)
	}
	e.Update(ctx)
	if e.X != testScreen.Width-e.Width-e.Speed {
		t.Errorf("enemy should move left after reversing, got x=%v", e.X)
	}

	e.X = 1
	e.Update(ctx)
	if e.X != 0 || e.Direction != 1 {
		t.Errorf("enemy should reverse at the left edge, got x=%v dir=%v", e.X, e.Direction)
	}
}

func TestEnemyFires(t *testing.T) {
	sp := &collectSpawner{}
	ctx := newContext(sp, time.Now())
	e := NewEnemy(testScreen, 1)
	bounds := e.Bounds()

	e.Update(ctx)
	if len(sp.objects) != 1 {
		t.Fatalf("enemy with fire chance 1 should fire, got %d", len(sp.objects))
	}
	p := sp.objects[0].(*Projectile)
	if p.Owner != OwnerEnemy || p.VY != config.EnemyProjectileSpeed {
		t.Errorf("unexpected enemy projectile %+v", p)
	}
	if p.Y != bounds.Bottom() || p.X != bounds.X+bounds.W/2-config.ProjectileWidth/2 {
		t.Errorf("projectile should leave from the pre-move bottom center, got (%v,%v)", p.X, p.Y)
	}
}

func TestEnemySlot(t *testing.T) {
	var slot EnemySlot
	if _, ok := slot.Active(); ok {
		t.Fatalf("new slot should be empty")
	}
	if !slot.Activate(NewEnemy(testScreen, 0)) {
		t.Fatalf("first activation should succeed")
	}
	e, ok := slot.Active()
	if !ok {
		t.Fatalf("slot should be active")
	}
	e.X = 123

	other := NewEnemy(testScreen, 0)
	if slot.Activate(other) {
		t.Errorf("second activation should be refused")
	}
	if e2, _ := slot.Active(); e2.X != 123 {
		t.Errorf("existing enemy must not be replaced, got x=%v", e2.X)
	}
}

func TestParticleLifetime(t *testing.T) {
	sp := &collectSpawner{}
	SpawnExplosion(50, 50, 5, 3, rand.New(rand.NewSource(3)), sp)
	if len(sp.objects) != 5 {
		t.Fatalf("expected 5 particles, got %d", len(sp.objects))
	}

	p := sp.objects[0].(*Particle)
	ctx := newContext(nil, time.Now())
	ticks := 0
	for !p.Update(ctx) {
		ticks++
		if ticks > config.ParticleLifetime {
			t.Fatalf("particle outlived its maximum lifetime")
		}
	}

	var rec draw.Recorder
	p.Lifetime = p.MaxLifetime
	p.Draw(&rec)
	if len(rec.Ops) != 1 {
		t.Errorf("live particle should draw one rectangle, got %d", len(rec.Ops))
	}
	ReleaseObject(p)
}
