package client

import (
	"fmt"
	"time"

	"github.com/tomz197/skyfall/internal/draw"
	"github.com/tomz197/skyfall/internal/loop/config"
)

// drawUI queues the text overlay for the current frame.
func (c *Client) drawUI() {
	termWidth := c.surface.TerminalWidth()
	termHeight := c.surface.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if c.state.shuttingDown {
		c.drawShutdownScreen(centerX, centerY)
		return
	}

	if c.state.isInactive {
		c.drawInactivityScreen(centerX, centerY)
		return
	}

	if c.screen.State().GameOver() {
		c.drawGameOverScreen(centerX, centerY)
		return
	}

	c.drawPlayingHUD(termWidth, termHeight)
}

// overlayCentered writes s centered on column centerX.
func (c *Client) overlayCentered(centerX, row int, s string, col draw.Color) {
	c.surface.Overlay(centerX-len(s)/2, row, s, col)
}

// drawPlayingHUD draws the live player count in the bottom-right corner.
// Fixed-width so a shrinking count leaves no residue.
func (c *Client) drawPlayingHUD(termWidth, termHeight int) {
	players := fmt.Sprintf("Players: %-4d", c.server.GetSnapshot().Players)
	c.surface.Overlay(termWidth-len(players), termHeight, players, draw.DefaultPalette.Text)
}

// drawGameOverScreen lists the best scores under the game's own caption.
func (c *Client) drawGameOverScreen(centerX, centerY int) {
	text := draw.DefaultPalette.Text
	alert := draw.DefaultPalette.Alert
	row := centerY + 2

	score := fmt.Sprintf("Score: %d", c.screen.State().Score)
	c.overlayCentered(centerX, row, score, text)
	row += 2

	if c.state.Rank > 0 {
		c.overlayCentered(centerX, row, fmt.Sprintf("New top score! #%d", c.state.Rank), alert)
		row += 2
	}

	c.overlayCentered(centerX, row, "TOP SCORES", text)
	row++
	for i, entry := range c.server.GetSnapshot().TopScores {
		line := fmt.Sprintf("%d. %-12.12s %8d", i+1, entry.Username, entry.Score)
		c.overlayCentered(centerX, row, line, text)
		row++
	}
	row++

	// Blinking quit prompt
	if time.Now().UnixMilli()/600%2 == 0 {
		c.overlayCentered(centerX, row, ">>  Press Q to quit  <<", text)
	}
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerX, centerY int) {
	alert := draw.DefaultPalette.Alert
	text := draw.DefaultPalette.Text

	c.overlayCentered(centerX, centerY-2, "INACTIVITY WARNING", alert)

	remaining := int(config.InactivityDisconnectUser - time.Since(c.lastInput).Seconds())
	c.overlayCentered(centerX, centerY, fmt.Sprintf("Disconnecting in %d seconds.", remaining), text)
	c.overlayCentered(centerX, centerY+2, "Press any key to continue", text)
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerX, centerY int) {
	alert := draw.DefaultPalette.Alert
	text := draw.DefaultPalette.Text

	c.overlayCentered(centerX, centerY-3, "SERVER SHUTTING DOWN", alert)
	c.overlayCentered(centerX, centerY-1, "Please reconnect in a moment.", text)

	remaining := int(c.state.shutdownTimer) + 1
	c.overlayCentered(centerX, centerY+1, fmt.Sprintf("Disconnecting in %d seconds...", remaining), text)
	c.overlayCentered(centerX, centerY+3, "Press Q to disconnect now", text)
}
