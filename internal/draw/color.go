// Package draw renders the game world to ANSI terminals.
package draw

import (
	"image/color"
	"strconv"
)

// Color is a palette entry shared by every rendering backend.
type Color uint8

const (
	ColorNone Color = iota // Terminal default / transparent
	ColorBlack
	ColorBlue
	ColorBrown
	ColorGray
	ColorWhite
	ColorRed
)

// colorInfo maps each Color to an xterm-256 index and an RGBA value.
var colorInfo = [...]struct {
	ansi int
	rgba color.RGBA
}{
	ColorNone:  {-1, color.RGBA{}},
	ColorBlack: {16, color.RGBA{0x00, 0x00, 0x00, 0xff}},
	ColorBlue:  {21, color.RGBA{0x00, 0x00, 0xff, 0xff}},
	ColorBrown: {94, color.RGBA{0x8b, 0x45, 0x13, 0xff}},
	ColorGray:  {244, color.RGBA{0x80, 0x80, 0x80, 0xff}},
	ColorWhite: {231, color.RGBA{0xff, 0xff, 0xff, 0xff}},
	ColorRed:   {196, color.RGBA{0xff, 0x00, 0x00, 0xff}},
}

// RGBA returns the color for pixel backends. ColorNone is fully transparent.
func (c Color) RGBA() color.RGBA {
	if int(c) >= len(colorInfo) {
		return color.RGBA{}
	}
	return colorInfo[c].rgba
}

// ANSI returns the xterm-256 index, or -1 for the terminal default.
func (c Color) ANSI() int {
	if int(c) >= len(colorInfo) {
		return -1
	}
	return colorInfo[c].ansi
}

// appendSGR appends the escape sequence selecting fg and bg.
func appendSGR(buf []byte, fg, bg Color) []byte {
	buf = append(buf, "\033["...)
	if n := fg.ANSI(); n >= 0 {
		buf = append(buf, "38;5;"...)
		buf = strconv.AppendInt(buf, int64(n), 10)
	} else {
		buf = append(buf, "39"...)
	}
	buf = append(buf, ';')
	if n := bg.ANSI(); n >= 0 {
		buf = append(buf, "48;5;"...)
		buf = strconv.AppendInt(buf, int64(n), 10)
	} else {
		buf = append(buf, "49"...)
	}
	return append(buf, 'm')
}

// Palette assigns a color to every kind of thing drawn in a frame.
type Palette struct {
	Screen     Color // Letterbox area outside the world
	Background Color
	Player     Color
	Meteor     Color
	Bullet     Color
	Text       Color
	Alert      Color
}

// DefaultPalette is the stock look: gray player and brown meteors on a blue sky.
var DefaultPalette = Palette{
	Screen:     ColorBlack,
	Background: ColorBlue,
	Player:     ColorGray,
	Meteor:     ColorBrown,
	Bullet:     ColorBlack,
	Text:       ColorWhite,
	Alert:      ColorRed,
}

// Colors returns every distinct color used by the palette.
func (p Palette) Colors() []Color {
	seen := make(map[Color]bool, 7)
	var out []Color
	for _, c := range []Color{p.Screen, p.Background, p.Player, p.Meteor, p.Bullet, p.Text, p.Alert} {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
