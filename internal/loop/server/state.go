package server

import (
	"slices"

	"github.com/tomz197/skyfall/internal/loop/config"
)

const topScoreCount = config.TopScoreCount

// TopScoreEntry represents a single entry on the leaderboard.
type TopScoreEntry struct {
	Username string
	Score    int
	seq      int // Used for deterministic tie-break when scores are equal
}

// Snapshot is an immutable view of the server state for rendering.
type Snapshot struct {
	Players   int             // Connected clients
	TopScores []TopScoreEntry // Best scores, highest first
}

// compareEntries orders by score descending, then earlier registration first.
func compareEntries(a, b TopScoreEntry) int {
	if a.Score != b.Score {
		return b.Score - a.Score
	}
	return a.seq - b.seq
}

// insertScore places e into the sorted board, keeps at most limit entries and
// returns the new board with e's 1-based rank, or 0 if it fell off the end.
func insertScore(board []TopScoreEntry, e TopScoreEntry, limit int) ([]TopScoreEntry, int) {
	i, _ := slices.BinarySearchFunc(board, e, compareEntries)
	if i >= limit {
		return board, 0
	}
	board = slices.Insert(board, i, e)
	if len(board) > limit {
		board = board[:limit]
	}
	return board, i + 1
}
