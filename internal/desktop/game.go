package desktop

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tomz197/skyfall/internal/input"
	"github.com/tomz197/skyfall/internal/loop"
	"github.com/tomz197/skyfall/internal/loop/config"
)

var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	fireKeys  = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}
)

// Game adapts a loop.Screen to ebiten.Game. Update collects key presses,
// Draw runs one frame with the time since the previous Draw.
type Game struct {
	screen   *loop.Screen
	surface  *Surface
	pending  input.Input
	last     time.Time
	err      error
	reported bool
	logger   *log.Logger
}

// Compile-time check that Game implements ebiten.Game.
var _ ebiten.Game = (*Game)(nil)

// NewGame creates a desktop game.
func NewGame(opts loop.Options, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.Default()
	}
	surface := NewSurface(config.WorldWidth, config.WorldHeight)
	screen, err := loop.NewScreen(surface, opts)
	if err != nil {
		return nil, err
	}
	return &Game{
		screen:  screen,
		surface: surface,
		last:    time.Now(),
		logger:  logger,
	}, nil
}

// Update polls the keyboard. Escape ends the game loop.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if anyJustPressed(leftKeys) {
		g.pending.Press(input.DirLeft)
	}
	if anyJustPressed(rightKeys) {
		g.pending.Press(input.DirRight)
	}
	if anyJustPressed(fireKeys) {
		g.pending.Fire = true
	}
	return nil
}

// Draw runs one game frame onto the window.
func (g *Game) Draw(img *ebiten.Image) {
	now := time.Now()
	delta := now.Sub(g.last)
	g.last = now

	g.surface.SetTarget(img)
	if err := g.screen.Frame(delta, g.pending); err != nil {
		g.err = fmt.Errorf("frame: %w", err)
		return
	}
	g.pending = input.Input{}

	if st := g.screen.State(); st.GameOver() && !g.reported {
		g.reported = true
		g.logger.Info("game over", "score", st.Score)
	}
}

// Layout follows the window size so the viewport always fits.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screen.Resize(outsideWidth, outsideHeight)
	return max(outsideWidth, 1), max(outsideHeight, 1)
}

// Close releases GPU resources.
func (g *Game) Close() {
	g.screen.Dispose()
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
