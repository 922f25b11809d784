package draw

import (
	"math"

	"github.com/tomz197/skyfall/internal/physics"
)

// Viewport maps world units onto a screen while keeping the world's aspect ratio.
// Unused screen area is split evenly on both sides (letterboxing).
// World y grows upward; screen y grows downward.
type Viewport struct {
	WorldWidth   float64
	WorldHeight  float64
	ScreenWidth  int
	ScreenHeight int
	Scale        float64 // Screen pixels per world unit
	OffsetX      float64
	OffsetY      float64
}

// NewViewport creates a viewport for the given world. It maps nothing until Update.
func NewViewport(worldWidth, worldHeight float64) *Viewport {
	return &Viewport{
		WorldWidth:  worldWidth,
		WorldHeight: worldHeight,
	}
}

// Update fits the world into a screen of the given size.
// Non-positive dimensions (e.g. a minimized window) are ignored and false is returned.
func (v *Viewport) Update(screenWidth, screenHeight int) bool {
	if screenWidth <= 0 || screenHeight <= 0 {
		return false
	}
	v.ScreenWidth = screenWidth
	v.ScreenHeight = screenHeight

	sw := float64(screenWidth)
	sh := float64(screenHeight)
	v.Scale = math.Min(sw/v.WorldWidth, sh/v.WorldHeight)
	v.OffsetX = (sw - v.WorldWidth*v.Scale) / 2
	v.OffsetY = (sh - v.WorldHeight*v.Scale) / 2
	return true
}

// ToScreen converts a world point to screen coordinates.
func (v *Viewport) ToScreen(x, y float64) (sx, sy float64) {
	return v.OffsetX + x*v.Scale, v.OffsetY + (v.WorldHeight-y)*v.Scale
}

// RectToScreen converts a world rectangle to its screen-space corners (top-left, bottom-right).
func (v *Viewport) RectToScreen(r physics.Rect) (x0, y0, x1, y1 float64) {
	x0, y0 = v.ToScreen(r.X, r.Y+r.H)
	x1, y1 = v.ToScreen(r.X+r.W, r.Y)
	return x0, y0, x1, y1
}
