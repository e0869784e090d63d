package game

import (
	"sync"
	"time"

	"janggi/internal/janggi"
)

// GameState is one live game. mu serializes moves: a janggi.Game has a
// single caller at a time.
type GameState struct {
	mu        sync.Mutex
	ID        string
	Game      *janggi.Game
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Snapshot is a read-only copy handed to callers outside the lock.
type Snapshot struct {
	ID         string
	Position   janggi.Position
	Turn       int
	State      janggi.GameState
	InCheck    bool
	LegalMoves []janggi.Move
	History    []janggi.Move
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// snapshotLocked requires g.mu held.
func (g *GameState) snapshotLocked() Snapshot {
	s := Snapshot{
		ID:        g.ID,
		Position:  g.Game.Position(),
		Turn:      g.Game.Turn(),
		State:     g.Game.State(),
		InCheck:   g.Game.IsInCheck(g.Game.SideToMove()),
		History:   g.Game.History(),
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
	if s.State == janggi.Unfinished {
		s.LegalMoves = g.Game.LegalMoves()
	}
	return s
}
