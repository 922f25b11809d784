// Package loop runs the game simulation and drives a drawing surface once per frame.
package loop

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/tomz197/skyfall/internal/input"
	"github.com/tomz197/skyfall/internal/loop/config"
	"github.com/tomz197/skyfall/internal/object"
	"github.com/tomz197/skyfall/internal/physics"
)

// GameState represents the current game phase.
type GameState int

const (
	GameStateRunning GameState = iota // Meteors falling, score climbing
	GameStateOver                     // Player was hit; terminal
)

// Variant selects the rule set.
type Variant int

const (
	VariantArmed   Variant = iota // Bullets and a difficulty curve
	VariantClassic                // Dodge only, flat fall interval
)

// String returns the configuration name of the variant.
func (v Variant) String() string {
	switch v {
	case VariantArmed:
		return "armed"
	case VariantClassic:
		return "classic"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant parses a configuration name into a Variant. Empty means armed.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "armed":
		return VariantArmed, nil
	case "classic":
		return VariantClassic, nil
	default:
		return 0, fmt.Errorf("unknown game mode %q", s)
	}
}

// Options configures a new game.
type Options struct {
	Variant Variant
	Rand    object.Rand // Nil means a time-seeded source
}

// State holds everything one game session owns.
type State struct {
	World     physics.Rect
	Variant   Variant
	GameState GameState
	Player    *object.Player
	Meteors   []*object.Meteor
	Bullets   []*object.Bullet
	Score     int

	moveTimer   object.Timer
	fallTimer   object.Timer
	bulletTimer object.Timer

	intent  input.Direction // Latched direction, applied on the next move tick
	fire    bool            // Fire edge seen this frame
	spawner *object.Spawner
}

// NewState creates a running game with an empty sky.
func NewState(opts Options) *State {
	rng := opts.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	return &State{
		World:     physics.Rect{W: config.WorldWidth, H: config.WorldHeight},
		Variant:   opts.Variant,
		GameState: GameStateRunning,
		Player:    object.NewPlayer(config.PlayerStartX, config.PlayerStartY),
		Meteors:   []*object.Meteor{},
		Bullets:   []*object.Bullet{},
		spawner:   object.NewSpawner(rng, config.WorldWidth, config.WorldHeight),
	}
}

// GameOver reports whether the player has been hit.
func (s *State) GameOver() bool {
	return s.GameState == GameStateOver
}

// FallInterval returns the seconds between fall ticks at the current score.
func (s *State) FallInterval() float64 {
	if s.Variant == VariantClassic {
		return config.BaseFallInterval
	}
	return FallInterval(s.Score)
}

// FallInterval is the difficulty curve: it shrinks from 0.5s toward a 0.1s floor as score grows.
func FallInterval(score int) float64 {
	speedup := math.Pow(config.DifficultyBase, config.DifficultyPerTick*float64(score)) - 1
	return math.Max(config.MinFallInterval, config.BaseFallInterval-speedup)
}

// Latch records this frame's key presses. A new direction overwrites any
// direction still waiting for a move tick. Ignored once the game is over.
func (s *State) Latch(in input.Input) {
	if s.GameOver() {
		return
	}
	if in.Dir != input.DirNone {
		s.intent = in.Dir
	}
	if in.Fire {
		s.fire = true
	}
}

// Intent returns the direction waiting for the next move tick.
func (s *State) Intent() input.Direction {
	return s.intent
}
