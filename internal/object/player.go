package object

import (
	"github.com/tomz197/skyfall/internal/loop/config"
	"github.com/tomz197/skyfall/internal/physics"
)

// Player is the sprite the user steers along the bottom of the world.
type Player struct {
	X, Y float64
	W, H float64
}

// NewPlayer creates a player with the default size at (x, y).
func NewPlayer(x, y float64) *Player {
	return &Player{
		X: x,
		Y: y,
		W: config.PlayerWidth,
		H: config.PlayerHeight,
	}
}

// Bounds returns the player's bounding box.
func (p *Player) Bounds() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Clamp keeps the player horizontally inside a world of the given width.
func (p *Player) Clamp(worldWidth float64) {
	p.X = physics.Clamp(p.X, 0, worldWidth-p.W)
}

// Move shifts the player by dx and clamps the result to the world.
func (p *Player) Move(dx, worldWidth float64) {
	p.X += dx
	p.Clamp(worldWidth)
}
