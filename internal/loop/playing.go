package loop

import (
	"time"

	"github.com/tomz197/skyfall/internal/input"
	"github.com/tomz197/skyfall/internal/loop/config"
	"github.com/tomz197/skyfall/internal/object"
	"github.com/tomz197/skyfall/internal/physics"
)

// Update advances the simulation by one frame of length delta.
func (s *State) Update(delta time.Duration) {
	dt := delta.Seconds()

	// Runs even after game over so the frozen scene stays valid.
	s.Player.Clamp(s.World.W)
	// Meteors land on where the player stood at the start of the frame.
	player := s.Player.Bounds()

	if s.GameOver() {
		return
	}

	if s.moveTimer.Advance(dt, config.MoveInterval) {
		s.Player.Move(float64(s.intent)*config.PlayerStep, s.World.W)
		s.intent = input.DirNone
	}

	if s.fallTimer.Advance(dt, s.FallInterval()) {
		s.fallTick(player)
	}

	if s.Variant == VariantArmed {
		s.bulletTimer.Add(dt)
		if s.fire && s.bulletTimer.Ready(config.BulletInterval) {
			s.Bullets = append(s.Bullets, s.spawner.Bullet(s.Player))
			s.bulletTimer.Reset()
		}
		s.updateBullets(dt)
		s.resolveBulletHits()
	}
	s.fire = false

	s.Score++
}

// fallTick drops a new wave, moves every meteor down one step, prunes the ones
// that left the world and checks player for hits.
func (s *State) fallTick(player physics.Rect) {
	s.Meteors = s.spawner.Wave(s.Meteors)

	floor := -s.World.H
	for _, m := range s.Meteors {
		m.Fall()
		if m.Below(floor) {
			m.MarkDestroyed()
		}
	}

	s.resolvePlayerHits(player)
	s.Meteors = object.Compact(s.Meteors)
}

// updateBullets moves bullets and prunes those past the top of the world.
func (s *State) updateBullets(dt float64) {
	for _, b := range s.Bullets {
		b.Update(dt)
		if b.Above(s.World.H) {
			b.MarkDestroyed()
		}
	}
	s.Bullets = object.Compact(s.Bullets)
}
