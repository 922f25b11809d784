// Package config centralizes all tunable game parameters.
package config

import "time"

// World dimensions in world units. Fixed for the whole session.
const (
	WorldWidth  = 10.0
	WorldHeight = 10.0
)

// Player
const (
	PlayerWidth  = 1.0
	PlayerHeight = 1.0
	PlayerStartX = 4.0
	PlayerStartY = 0.0
	PlayerStep   = 1.0 // World units per move tick
)

// Meteors
const (
	MeteorWidth   = 1.0
	MeteorHeight  = 1.0
	MeteorFall    = 1.0 // World units per fall tick
	MeteorMinWave = 1   // Meteors spawned per fall tick, inclusive range
	MeteorMaxWave = 6
)

// Bullets
const (
	BulletWidth  = 0.5
	BulletHeight = 1.0
	BulletSpeed  = 10.0 // World units per second
)

// Timer intervals in seconds.
const (
	MoveInterval      = 0.15
	BulletInterval    = 1.0
	BaseFallInterval  = 0.5
	MinFallInterval   = 0.1
	DifficultyBase    = 1.0009
	DifficultyPerTick = 0.02
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Scoreboard
const (
	TopScoreCount = 5
)

// Terminal rendering limits. Larger terminals get a centered, bordered play field.
const (
	MaxTermWidth  = 80
	MaxTermHeight = 40
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)
