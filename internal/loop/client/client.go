// Package client runs one player's game on an ANSI terminal, local or over SSH.
package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/skyfall/internal/draw"
	"github.com/tomz197/skyfall/internal/input"
	"github.com/tomz197/skyfall/internal/loop"
	"github.com/tomz197/skyfall/internal/loop/config"
	"github.com/tomz197/skyfall/internal/loop/server"
	"github.com/tomz197/skyfall/internal/object"
)

// Client handles rendering and input for a single connection.
type Client struct {
	server       server.GameServer
	handle       *server.ClientHandle
	state        *ClientState
	screen       *loop.Screen
	surface      *draw.TerminalSurface
	inputStream  *input.Stream
	lastInput    time.Time
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Variant      loop.Variant
	Rand         object.Rand // Nil means a time-seeded source
	Logger       *log.Logger
}

// NewClient creates a new client connected to the given server.
func NewClient(gs server.GameServer, r *bufio.Reader, w io.Writer, opts ClientOptions) (*Client, error) {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	termWidth, termHeight, err := termSizeFunc()
	if err != nil {
		return nil, fmt.Errorf("read terminal size: %w", err)
	}
	surface := draw.NewTerminalSurface(w, termWidth, termHeight, draw.TerminalOptions{
		WorldWidth:  config.WorldWidth,
		WorldHeight: config.WorldHeight,
		MaxWidth:    config.MaxTermWidth,
		MaxHeight:   config.MaxTermHeight,
	})

	screen, err := loop.NewScreen(surface, loop.Options{Variant: opts.Variant, Rand: opts.Rand})
	if err != nil {
		return nil, err
	}

	handle := gs.RegisterClient(opts.Username)
	return &Client{
		server:       gs,
		handle:       handle,
		state:        NewClientState(),
		screen:       screen,
		surface:      surface,
		inputStream:  input.StartStream(r),
		lastInput:    time.Now(),
		termSizeFunc: termSizeFunc,
		logger:       logger.With("client", handle.ID, "user", opts.Username),
	}, nil
}

// Run starts the client loop. Blocks until the player quits, the session goes
// idle, the server stops or ctx is cancelled.
func (c *Client) Run(ctx context.Context) error {
	defer c.screen.Dispose()
	defer c.server.UnregisterClient(c.handle.ID)

	lastTime := time.Now()

	for c.state.Running {
		if ctx.Err() != nil {
			break
		}

		frameStart := time.Now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		if err := c.step(delta); err != nil {
			return err
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	c.logger.Debug("client stopped", "score", c.screen.State().Score, "rank", c.state.Rank)
	return nil
}

// step runs one frame: input, server events, resize, simulation and drawing.
func (c *Client) step(delta time.Duration) error {
	c.processInput()
	c.processServerEvents()
	c.updateScreen()

	if c.state.shuttingDown {
		c.state.shutdownTimer -= delta.Seconds()
		if c.state.shutdownTimer <= 0 {
			c.state.Running = false
		}
	}

	if err := c.screen.Frame(delta, c.state.Input); err != nil {
		return fmt.Errorf("frame: %w", err)
	}
	c.reportScore()

	c.drawUI()
	return c.surface.Flush()
}

// processInput reads input and tracks activity.
func (c *Client) processInput() {
	c.state.Input = input.ReadInput(c.inputStream)

	if len(c.state.Input.Pressed) > 0 {
		c.lastInput = time.Now()
		c.state.isInactive = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityDisconnectUser {
		c.logger.Info("disconnecting idle client")
		c.state.Running = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityWarnUser {
		c.state.isInactive = true
	}

	if c.state.Input.Quit {
		c.state.Running = false
	}
}

// processServerEvents handles events from the server.
func (c *Client) processServerEvents() {
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				// Server closed the channel
				c.state.Running = false
				return
			}
			switch event.Type {
			case server.EventServerShutdown:
				c.state.shuttingDown = true
				c.state.shutdownTimer = config.ShutdownDisplaySeconds
			case server.EventBoardChanged:
				// Board is read from the snapshot on every frame.
			}
		default:
			return
		}
	}
}

// updateScreen follows terminal resizes.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	c.screen.Resize(termWidth, termHeight)
}

// reportScore submits the final score once the game ends.
func (c *Client) reportScore() {
	st := c.screen.State()
	if !st.GameOver() || c.state.reported {
		return
	}
	c.state.reported = true
	c.state.Rank = c.server.ReportScore(c.handle.ID, st.Score)
	c.logger.Info("game over", "score", st.Score, "rank", c.state.Rank)
}
