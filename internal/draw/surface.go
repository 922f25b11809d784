package draw

import (
	"fmt"
	"io"

	"github.com/tomz197/skyfall/internal/physics"
)

// TerminalOptions configures a TerminalSurface.
type TerminalOptions struct {
	WorldWidth  float64
	WorldHeight float64
	MaxWidth    int // Largest canvas in columns; 0 means unlimited
	MaxHeight   int // Largest canvas in rows; 0 means unlimited
}

// TerminalSurface draws world-space rectangles and text onto an ANSI terminal.
// Rectangles go to a half-block Canvas; text is queued and written over the canvas on Flush.
type TerminalSurface struct {
	writer   io.Writer
	canvas   *Canvas
	cw       *ChunkWriter
	viewport *Viewport
	palette  Palette
	opts     TerminalOptions
	texts    []textOp
}

type textOp struct {
	col, row int
	s        string
	color    Color
}

// NewTerminalSurface creates a surface for a terminal of termWidth x termHeight cells.
func NewTerminalSurface(w io.Writer, termWidth, termHeight int, opts TerminalOptions) *TerminalSurface {
	s := &TerminalSurface{
		writer:   w,
		canvas:   NewCanvas(0, 0),
		cw:       NewChunkWriter(w, 0, 0),
		viewport: NewViewport(opts.WorldWidth, opts.WorldHeight),
		palette:  DefaultPalette,
		opts:     opts,
	}
	s.Resize(termWidth, termHeight)
	return s
}

// Acquire prepares the terminal for drawing with the given palette.
func (s *TerminalSurface) Acquire(p Palette) error {
	s.palette = p
	HideCursor(s.cw)
	ClearScreen(s.cw)
	s.canvas.ForceRedraw()
	if err := s.cw.Flush(); err != nil {
		return fmt.Errorf("prepare terminal: %w", err)
	}
	return nil
}

// Release restores the terminal. Write errors are ignored since the peer may be gone.
func (s *TerminalSurface) Release() {
	ResetStyle(s.cw)
	ClearScreen(s.cw)
	ShowCursor(s.cw)
	_ = s.cw.Flush()
}

// Resize fits the canvas to a terminal of cols x rows cells.
// Terminals larger than the configured maximum get a centered canvas.
func (s *TerminalSurface) Resize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(cols, rows, s.opts.MaxWidth, s.opts.MaxHeight)

	if renderWidth != s.canvas.TerminalWidth() || renderHeight != s.canvas.TerminalHeight() ||
		offsetCol != s.canvas.OffsetCol() || offsetRow != s.canvas.OffsetRow() {
		// Wipe residue outside the new canvas area (old borders, offset content).
		ClearScreen(s.cw)
		s.canvas.ForceRedraw()
	}

	s.canvas.Resize(renderWidth, renderHeight)
	s.canvas.SetOffset(offsetCol, offsetRow)
	s.cw.SetOffset(offsetCol, offsetRow)
	s.viewport.Update(renderWidth, renderHeight*2)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight, maxWidth, maxHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = termWidth
	renderHeight = termHeight
	if maxWidth > 0 && renderWidth > maxWidth {
		renderWidth = maxWidth
	}
	if maxHeight > 0 && renderHeight > maxHeight {
		renderHeight = maxHeight
	}
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// Clear fills the whole canvas with c.
func (s *TerminalSurface) Clear(c Color) {
	s.canvas.Fill(c)
}

// Rect fills a world-space rectangle.
func (s *TerminalSurface) Rect(c Color, r physics.Rect) {
	x0, y0, x1, y1 := s.viewport.RectToScreen(r)
	s.canvas.FillRect(x0, y0, x1, y1, c)
}

// Text queues s with its top-left corner at the world point (x, y).
func (s *TerminalSurface) Text(str string, x, y float64) {
	sx, sy := s.viewport.ToScreen(x, y)
	s.Overlay(int(sx)+1, int(sy)/2+1, str, s.palette.Text)
}

// Overlay queues text at a 1-based canvas cell position.
func (s *TerminalSurface) Overlay(col, row int, str string, c Color) {
	s.texts = append(s.texts, textOp{col: max(col, 1), row: max(row, 1), s: str, color: c})
}

// TerminalWidth returns the canvas width in columns.
func (s *TerminalSurface) TerminalWidth() int {
	return s.canvas.TerminalWidth()
}

// TerminalHeight returns the canvas height in rows.
func (s *TerminalSurface) TerminalHeight() int {
	return s.canvas.TerminalHeight()
}

// Canvas exposes the pixel buffer, mainly for inspection.
func (s *TerminalSurface) Canvas() *Canvas {
	return s.canvas
}

// Flush renders the canvas and queued text to the terminal.
func (s *TerminalSurface) Flush() error {
	s.canvas.Render(s.cw)
	s.canvas.RenderBorder(s.cw)

	for _, t := range s.texts {
		s.cw.WriteAt(t.col, t.row, string(appendSGR(nil, t.color, ColorNone))+t.s+"\033[0m")
		s.canvas.MarkTextDirty(t.col, t.row, len(t.s))
	}
	s.texts = s.texts[:0]

	if err := s.cw.Flush(); err != nil {
		return fmt.Errorf("flush frame: %w", err)
	}
	return nil
}
