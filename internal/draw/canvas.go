package draw

import (
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// BlockUpperHalf paints the top pixel of a cell in the foreground color
// and the bottom pixel in the background color.
const BlockUpperHalf = '▀'

// Canvas is a color buffer with 2x vertical resolution using half-block characters.
// Pixel coordinates start at the top-left; each terminal cell holds two stacked pixels.
type Canvas struct {
	termWidth      int     // Terminal columns covered by the canvas
	termHeight     int     // Terminal rows covered by the canvas
	subPixelHeight int     // termHeight * 2
	pixels         []Color // Flat slice: [y * termWidth + x]

	// Cells as last written to the terminal, for skipping unchanged output.
	// prevValid is false after a resize or ForceRedraw.
	prev      []cellColors
	prevValid bool
	dirty     []bool // Cells overwritten by text since the last render

	// Offset for centering the render area when the terminal is larger than the canvas.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	renderBuf []byte // Reused between frames
}

type cellColors struct {
	top, bottom Color
}

// NewCanvas creates a canvas covering termWidth x termHeight terminal cells.
func NewCanvas(termWidth, termHeight int) *Canvas {
	c := &Canvas{}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions. Content is discarded on change.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 0 {
		termWidth = 0
	}
	if termHeight < 0 {
		termHeight = 0
	}
	if termWidth == c.termWidth && termHeight == c.termHeight && c.pixels != nil {
		return
	}
	c.termWidth = termWidth
	c.termHeight = termHeight
	c.subPixelHeight = termHeight * 2
	c.pixels = make([]Color, c.subPixelHeight*termWidth)
	c.prev = make([]cellColors, termHeight*termWidth)
	c.dirty = make([]bool, termHeight*termWidth)
	c.prevValid = false
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.prevValid = false
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// TerminalWidth returns the canvas width in terminal columns.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the canvas height in terminal rows.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// Fill sets every pixel to col.
func (c *Canvas) Fill(col Color) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
}

// At returns the pixel color at (x, y), or ColorNone outside the canvas.
func (c *Canvas) At(x, y int) Color {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return ColorNone
	}
	return c.pixels[y*c.termWidth+x]
}

// FillRect colors every pixel whose center lies inside [x0, x1) x [y0, y1).
// Coordinates are in pixels; the rectangle is clipped to the canvas.
func (c *Canvas) FillRect(x0, y0, x1, y1 float64, col Color) {
	xs := max(int(math.Ceil(x0-0.5)), 0)
	xe := min(int(math.Ceil(x1-0.5)), c.termWidth)
	ys := max(int(math.Ceil(y0-0.5)), 0)
	ye := min(int(math.Ceil(y1-0.5)), c.subPixelHeight)

	for y := ys; y < ye; y++ {
		row := c.pixels[y*c.termWidth : (y+1)*c.termWidth]
		for x := xs; x < xe; x++ {
			row[x] = col
		}
	}
}

// ForceRedraw makes the next Render write every cell.
func (c *Canvas) ForceRedraw() {
	c.prevValid = false
}

// MarkTextDirty records that n cells starting at (col, row) were overwritten by text,
// so the next Render repaints them. col and row are 1-based canvas coordinates.
func (c *Canvas) MarkTextDirty(col, row, n int) {
	r := row - 1
	if r < 0 || r >= c.termHeight {
		return
	}
	for x := col - 1; x < col-1+n; x++ {
		if x >= 0 && x < c.termWidth {
			c.dirty[r*c.termWidth+x] = true
		}
	}
}

// maxChunkSize caps a single write, about one TCP segment.
// 1500 bytes matches typical MTU size for smooth SSH/network transmission.
const maxChunkSize = 1400

// Render writes every changed cell to w using half-block characters.
func (c *Canvas) Render(w io.Writer) {
	buf := c.renderBuf[:0]

	lastRow, lastCol := -1, -1
	var lastFg, lastBg Color
	haveSGR := false

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			idx := row*c.termWidth + col
			cell := cellColors{top: c.pixels[topOffset+col], bottom: c.pixels[bottomOffset+col]}

			if c.prevValid && !c.dirty[idx] && c.prev[idx] == cell {
				continue
			}
			c.prev[idx] = cell
			c.dirty[idx] = false

			// Cursor moves only when this cell does not follow the last one written.
			if row != lastRow || col != lastCol+1 {
				buf = append(buf, "\033["...)
				buf = strconv.AppendInt(buf, int64(row+1+c.offsetRow), 10)
				buf = append(buf, ';')
				buf = strconv.AppendInt(buf, int64(col+1+c.offsetCol), 10)
				buf = append(buf, 'H')
			}
			lastRow, lastCol = row, col

			fg, bg, ch := cell.top, cell.bottom, BlockUpperHalf
			if cell.top == cell.bottom {
				fg, ch = cell.top, ' '
			}
			if !haveSGR || fg != lastFg || bg != lastBg {
				buf = appendSGR(buf, fg, bg)
				lastFg, lastBg, haveSGR = fg, bg, true
			}
			buf = utf8.AppendRune(buf, ch)
		}
	}
	if haveSGR {
		buf = append(buf, "\033[0m"...)
	}
	c.prevValid = true
	c.renderBuf = buf

	// Write output in chunks for optimal network flow
	data := buf
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		w.Write(chunk)
		data = data[len(chunk):]
	}
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
// Draws horizontal borders when there is vertical offset, vertical borders
// when there is horizontal offset, and corners when both are present.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	line := strings.Repeat("─", c.termWidth)

	if hasV {
		if hasH {
			buf.WriteString(cursorTo(left, top) + "┌" + line + "┐")
			buf.WriteString(cursorTo(left, bottom) + "└" + line + "┘")
		} else {
			buf.WriteString(cursorTo(c.offsetCol+1, top) + line)
			buf.WriteString(cursorTo(c.offsetCol+1, bottom) + line)
		}
	}

	if hasH {
		for row := c.offsetRow + 1; row < c.offsetRow+c.termHeight+1; row++ {
			buf.WriteString(cursorTo(left, row) + "│" + cursorTo(right, row) + "│")
		}
	}

	io.WriteString(w, buf.String())
}

// cursorTo returns the ANSI sequence moving the cursor to (col, row), 1-based.
func cursorTo(col, row int) string {
	return "\033[" + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H"
}
