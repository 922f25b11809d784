package object

import (
	"github.com/tomz197/skyfall/internal/loop/config"
	"github.com/tomz197/skyfall/internal/physics"
)

// Bullet travels straight up at a constant speed.
type Bullet struct {
	X, Y      float64
	W, H      float64
	Speed     float64 // World units per second
	destroyed bool
}

// NewBullet creates a bullet at (x, y).
func NewBullet(x, y float64) *Bullet {
	return &Bullet{
		X:     x,
		Y:     y,
		W:     config.BulletWidth,
		H:     config.BulletHeight,
		Speed: config.BulletSpeed,
	}
}

// Bounds returns the bullet's bounding box.
func (b *Bullet) Bounds() physics.Rect {
	return physics.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Update moves the bullet by dt seconds of travel.
func (b *Bullet) Update(dt float64) {
	b.Y += b.Speed * dt
}

// Above reports whether the bullet has left through ceiling.
func (b *Bullet) Above(ceiling float64) bool {
	return b.Y > ceiling
}

// MarkDestroyed marks the bullet for removal.
func (b *Bullet) MarkDestroyed() {
	b.destroyed = true
}

// IsDestroyed returns true if the bullet is marked for destruction.
func (b *Bullet) IsDestroyed() bool {
	return b.destroyed
}
