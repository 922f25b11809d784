package loop

import (
	"github.com/tomz197/skyfall/internal/object"
	"github.com/tomz197/skyfall/internal/physics"
)

// resolvePlayerHits ends the game if any live meteor overlaps player.
// Every overlapping meteor is marked; the caller compacts.
func (s *State) resolvePlayerHits(player physics.Rect) {
	for _, m := range s.Meteors {
		if m.IsDestroyed() {
			continue
		}
		if player.Overlaps(m.Bounds()) {
			m.MarkDestroyed()
			s.GameState = GameStateOver
		}
	}
}

// resolveBulletHits checks every meteor against every bullet. Every object that
// appears in an overlapping pair is removed once after the full scan, so several
// bullets can share one meteor and one bullet can take out several meteors.
func (s *State) resolveBulletHits() {
	if len(s.Bullets) == 0 {
		return
	}
	hits := 0
	for _, m := range s.Meteors {
		mb := m.Bounds()
		for _, b := range s.Bullets {
			if mb.Overlaps(b.Bounds()) {
				m.MarkDestroyed()
				b.MarkDestroyed()
				hits++
			}
		}
	}
	if hits == 0 {
		return
	}
	s.Meteors = object.Compact(s.Meteors)
	s.Bullets = object.Compact(s.Bullets)
}
