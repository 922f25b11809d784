package object

import (
	"github.com/tomz197/skyfall/internal/loop/config"
	"github.com/tomz197/skyfall/internal/physics"
)

// Meteor falls one step per fall tick.
type Meteor struct {
	X, Y      float64
	W, H      float64
	destroyed bool
}

// NewMeteor creates a meteor at (x, y).
func NewMeteor(x, y float64) *Meteor {
	return &Meteor{
		X: x,
		Y: y,
		W: config.MeteorWidth,
		H: config.MeteorHeight,
	}
}

// Bounds returns the meteor's bounding box.
func (m *Meteor) Bounds() physics.Rect {
	return physics.Rect{X: m.X, Y: m.Y, W: m.W, H: m.H}
}

// Fall moves the meteor down by one step.
func (m *Meteor) Fall() {
	m.Y -= config.MeteorFall
}

// Below reports whether the meteor has dropped under floor.
func (m *Meteor) Below(floor float64) bool {
	return m.Y < floor
}

// MarkDestroyed marks the meteor for removal.
func (m *Meteor) MarkDestroyed() {
	m.destroyed = true
}

// IsDestroyed returns true if the meteor is marked for destruction.
func (m *Meteor) IsDestroyed() bool {
	return m.destroyed
}
