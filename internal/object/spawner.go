package object

import (
	"math"

	"github.com/tomz197/skyfall/internal/loop/config"
)

// Rand is the random source used for spawning. *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Spawner creates meteors along the top edge and bullets at the player.
type Spawner struct {
	rng         Rand
	worldWidth  float64
	worldHeight float64
}

// NewSpawner creates a spawner for a world of the given size.
func NewSpawner(rng Rand, worldWidth, worldHeight float64) *Spawner {
	return &Spawner{
		rng:         rng,
		worldWidth:  worldWidth,
		worldHeight: worldHeight,
	}
}

// WaveSize returns how many meteors the next fall tick drops, in [MeteorMinWave, MeteorMaxWave].
func (s *Spawner) WaveSize() int {
	return config.MeteorMinWave + s.rng.IntN(config.MeteorMaxWave-config.MeteorMinWave+1)
}

// Meteor creates one meteor at the top of the world on a whole-unit column.
func (s *Spawner) Meteor() *Meteor {
	x := math.Round(s.rng.Float64() * (s.worldWidth - config.MeteorWidth))
	return NewMeteor(x, s.worldHeight)
}

// Wave appends a full wave of meteors to meteors and returns the result.
func (s *Spawner) Wave(meteors []*Meteor) []*Meteor {
	n := s.WaveSize()
	for i := 0; i < n; i++ {
		meteors = append(meteors, s.Meteor())
	}
	return meteors
}

// Bullet creates a bullet leaving the player, a quarter of its width in from the left edge.
func (s *Spawner) Bullet(p *Player) *Bullet {
	return NewBullet(p.X+p.W/4, p.Y)
}
