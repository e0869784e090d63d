package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"janggi/internal/janggi"
	"janggi/internal/store"
)

var ErrNotFound = errors.New("game not found")

type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
	repo  store.Repo
	hub   *hub
	now   func() time.Time
}

// NewManager keeps games in memory; repo, when non-nil, also persists them.
func NewManager(repo store.Repo) *Manager {
	return &Manager{
		games: make(map[string]*GameState),
		repo:  repo,
		hub:   newHub(),
		now:   time.Now,
	}
}

// Load restores every persisted game. Records that no longer decode are
// skipped and logged.
func (m *Manager) Load(ctx context.Context) (int, error) {
	if m.repo == nil {
		return 0, nil
	}
	recs, err := m.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, rec := range recs {
		g, err := rec.Restore()
		if err != nil {
			log.Printf("skip stored game %s: %v", rec.ID, err)
			continue
		}
		m.games[rec.ID] = &GameState{
			ID:        rec.ID,
			Game:      g,
			CreatedAt: rec.CreatedAt,
			UpdatedAt: rec.UpdatedAt,
		}
		n++
	}
	return n, nil
}

func (m *Manager) NewGame(ctx context.Context) (Snapshot, error) {
	return m.add(ctx, janggi.NewGame())
}

// NewGameFromFEN starts a game from a custom position.
func (m *Manager) NewGameFromFEN(ctx context.Context, fen string) (Snapshot, error) {
	pos, err := janggi.DecodePosition(fen)
	if err != nil {
		return Snapshot{}, err
	}
	return m.add(ctx, janggi.NewGameFromPosition(pos))
}

func (m *Manager) add(ctx context.Context, jg *janggi.Game) (Snapshot, error) {
	now := m.now()
	g := &GameState{
		ID:        uuid.NewString(),
		Game:      jg,
		CreatedAt: now,
		UpdatedAt: now,
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if err := m.persistLocked(ctx, g); err != nil {
		return Snapshot{}, err
	}

	m.mu.Lock()
	m.games[g.ID] = g
	m.mu.Unlock()
	return g.snapshotLocked(), nil
}

func (m *Manager) lookup(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	return g, nil
}

func (m *Manager) Get(id string) (Snapshot, error) {
	g, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked(), nil
}

// IDs lists the known game ids.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.games))
	for id := range m.games {
		out = append(out, id)
	}
	return out
}

// Play submits a move. Rejections come back as janggi sentinel errors and
// leave the game untouched.
func (m *Manager) Play(ctx context.Context, id string, from, to janggi.Square) (Snapshot, error) {
	g, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}

	g.mu.Lock()
	if err := g.Game.MakeMove(from, to); err != nil {
		g.mu.Unlock()
		return Snapshot{}, err
	}
	g.UpdatedAt = m.now()
	perr := m.persistLocked(ctx, g)
	snap := g.snapshotLocked()
	// publish under the game lock so watchers see moves in order
	m.hub.publish(snap)
	g.mu.Unlock()

	if perr != nil {
		return snap, fmt.Errorf("move applied but not saved: %w", perr)
	}
	return snap, nil
}

func (m *Manager) LegalDestinations(id string, from janggi.Square) ([]janggi.Square, error) {
	g, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.Game.LegalDestinations(from), nil
}

// CheckStatus reports check and checkmate for side.
func (m *Manager) CheckStatus(id string, side janggi.Side) (inCheck, inCheckmate bool, err error) {
	g, err := m.lookup(id)
	if err != nil {
		return false, false, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.Game.IsInCheck(side), g.Game.IsInCheckmate(side), nil
}

// Subscribe streams a snapshot after every accepted move of game id until
// cancel is called.
func (m *Manager) Subscribe(id string) (<-chan Snapshot, func(), error) {
	if _, err := m.lookup(id); err != nil {
		return nil, nil, err
	}
	ch, cancel := m.hub.subscribe(id)
	return ch, cancel, nil
}

func (m *Manager) persistLocked(ctx context.Context, g *GameState) error {
	if m.repo == nil {
		return nil
	}
	pos := g.Game.Position()
	return m.repo.Save(ctx, store.Record{
		ID:        g.ID,
		FEN:       pos.Encode(),
		Turn:      g.Game.Turn(),
		State:     g.Game.State().String(),
		History:   g.Game.History(),
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	})
}
