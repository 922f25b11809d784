package loop

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/tomz197/skyfall/internal/draw"
	"github.com/tomz197/skyfall/internal/input"
	"github.com/tomz197/skyfall/internal/physics"
)

//go:generate go tool mockgen -destination=./mocks/surface_mock.go -package=mocks . Surface

// ErrDisposed is returned by Frame after Dispose.
var ErrDisposed = errors.New("screen disposed")

// Surface is the drawing backend a Screen renders through.
// Coordinates are world units with y growing upward.
type Surface interface {
	// Acquire loads drawing resources for the palette. Called once at creation.
	Acquire(p draw.Palette) error
	// Release frees everything Acquire loaded. Called once at disposal.
	Release()
	// Resize updates viewport scaling for a new screen size.
	Resize(width, height int)
	Clear(c draw.Color)
	Rect(c draw.Color, r physics.Rect)
	Text(s string, x, y float64)
}

// Screen is one game session bound to a surface: create, resize, frame, dispose.
type Screen struct {
	state    *State
	surface  Surface
	palette  draw.Palette
	disposed bool
}

// NewScreen starts a new game drawing to surface.
func NewScreen(surface Surface, opts Options) (*Screen, error) {
	palette := draw.DefaultPalette
	if err := surface.Acquire(palette); err != nil {
		return nil, fmt.Errorf("acquire surface: %w", err)
	}
	return &Screen{
		state:   NewState(opts),
		surface: surface,
		palette: palette,
	}, nil
}

// State returns the simulation state.
func (sc *Screen) State() *State {
	return sc.state
}

// Resize forwards a new screen size to the surface. Non-positive sizes are
// ignored; minimized windows report zero.
func (sc *Screen) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	sc.surface.Resize(width, height)
}

// Frame runs input, simulation and drawing for one frame.
func (sc *Screen) Frame(delta time.Duration, in input.Input) error {
	if sc.disposed {
		return ErrDisposed
	}
	sc.state.Latch(in)
	sc.state.Update(delta)
	sc.draw()
	return nil
}

// draw paints the scene back to front: background, player, meteors, bullets, score.
func (sc *Screen) draw() {
	s := sc.state
	p := sc.palette

	sc.surface.Clear(p.Screen)
	sc.surface.Rect(p.Background, s.World)
	sc.surface.Rect(p.Player, s.Player.Bounds())
	for _, m := range s.Meteors {
		sc.surface.Rect(p.Meteor, m.Bounds())
	}
	for _, b := range s.Bullets {
		sc.surface.Rect(p.Bullet, b.Bounds())
	}
	sc.surface.Text(strconv.Itoa(s.Score), 0, s.World.H)

	if s.GameOver() {
		sc.surface.Text("GAME OVER", s.World.W/2-1.5, s.World.H/2)
	}
}

// Dispose releases the surface's resources. Safe to call more than once.
func (sc *Screen) Dispose() {
	if sc.disposed {
		return
	}
	sc.disposed = true
	sc.surface.Release()
}
