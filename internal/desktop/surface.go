// Package desktop runs the game in a native window through ebiten.
package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tomz197/skyfall/internal/draw"
	"github.com/tomz197/skyfall/internal/physics"
)

// Surface draws world-space rectangles and text onto an ebiten image.
// Each palette color is a 1x1 texture stretched over the target rectangle.
type Surface struct {
	target   *ebiten.Image
	textures map[draw.Color]*ebiten.Image
	viewport *draw.Viewport
	op       ebiten.DrawImageOptions
}

// NewSurface creates a surface for a world of the given size.
func NewSurface(worldWidth, worldHeight float64) *Surface {
	return &Surface{
		viewport: draw.NewViewport(worldWidth, worldHeight),
	}
}

// Acquire creates one texture per palette color.
func (s *Surface) Acquire(p draw.Palette) error {
	s.textures = make(map[draw.Color]*ebiten.Image)
	for _, c := range p.Colors() {
		img := ebiten.NewImage(1, 1)
		img.Fill(c.RGBA())
		s.textures[c] = img
	}
	return nil
}

// Release frees every texture created by Acquire.
func (s *Surface) Release() {
	for _, img := range s.textures {
		img.Deallocate()
	}
	s.textures = nil
}

// Resize fits the world into a window of width x height pixels.
func (s *Surface) Resize(width, height int) {
	s.viewport.Update(width, height)
}

// SetTarget selects the image the next frame draws to.
func (s *Surface) SetTarget(img *ebiten.Image) {
	s.target = img
}

// Clear fills the whole target with c.
func (s *Surface) Clear(c draw.Color) {
	if s.target == nil {
		return
	}
	s.target.Fill(c.RGBA())
}

// Rect fills a world-space rectangle.
func (s *Surface) Rect(c draw.Color, r physics.Rect) {
	tex, ok := s.textures[c]
	if !ok || s.target == nil {
		return
	}
	x0, y0, x1, y1 := s.viewport.RectToScreen(r)

	s.op.GeoM.Reset()
	s.op.GeoM.Scale(x1-x0, y1-y0)
	s.op.GeoM.Translate(x0, y0)
	s.target.DrawImage(tex, &s.op)
}

// Text draws s with its top-left corner at the world point (x, y).
func (s *Surface) Text(str string, x, y float64) {
	if s.target == nil {
		return
	}
	sx, sy := s.viewport.ToScreen(x, y)
	ebitenutil.DebugPrintAt(s.target, str, int(sx), int(sy))
}
