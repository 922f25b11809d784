package client

import (
	"github.com/tomz197/skyfall/internal/input"
)

// ClientState holds per-connection state that lives outside the game itself.
type ClientState struct {
	Input         input.Input
	Running       bool    // Client loop running
	Rank          int     // Board position of the finished game, 0 if unranked
	reported      bool    // Final score sent to the server
	shuttingDown  bool    // Server asked everyone to leave
	shutdownTimer float64 // Countdown before auto-disconnect on shutdown
	isInactive    bool    // Whether the client is in inactive warning state
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		Running: true,
	}
}
