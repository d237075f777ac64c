package server

import (
	"slices"
)

// TopScoreEntry represents a single entry on the leaderboard.
type TopScoreEntry struct {
	Username string
	Score    int
	seq      int // Used for deterministic tie-break when scores are equal
}

// Snapshot is an immutable view of the hub for rendering.
type Snapshot struct {
	Players   int
	TopScores []TopScoreEntry // Top N scores for leaderboard display
}

// Leaderboard keeps the highest scores in memory, best first.
// Equal scores keep their arrival order. Not safe for concurrent use;
// the hub loop owns it.
type Leaderboard struct {
	limit   int
	entries []TopScoreEntry
	nextSeq int
}

// NewLeaderboard creates a leaderboard holding at most limit entries.
func NewLeaderboard(limit int) *Leaderboard {
	return &Leaderboard{limit: limit}
}

// Add records a score. Returns true if it made the board.
func (b *Leaderboard) Add(username string, score int) bool {
	if b.limit <= 0 {
		return false
	}
	if len(b.entries) == b.limit && score <= b.entries[len(b.entries)-1].Score {
		return false
	}

	entry := TopScoreEntry{Username: username, Score: score, seq: b.nextSeq}
	b.nextSeq++
	b.entries = append(b.entries, entry)
	slices.SortStableFunc(b.entries, func(a, c TopScoreEntry) int {
		if a.Score != c.Score {
			return c.Score - a.Score
		}
		return a.seq - c.seq
	})
	if len(b.entries) > b.limit {
		b.entries = b.entries[:b.limit]
	}
	return true
}

// Entries returns a copy of the current entries, best first.
func (b *Leaderboard) Entries() []TopScoreEntry {
	return slices.Clone(b.entries)
}
