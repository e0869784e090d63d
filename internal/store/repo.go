package store

import (
	"context"
	"errors"
	"time"

	"janggi/internal/janggi"
)

var ErrNotFound = errors.New("record not found")

// Record is the persisted form of one game.
type Record struct {
	ID        string        `json:"id"`
	FEN       string        `json:"fen"`
	Turn      int           `json:"turn"`
	State     string        `json:"state"`
	History   []janggi.Move `json:"history"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type Repo interface {
	Save(ctx context.Context, r Record) error
	Get(ctx context.Context, id string) (Record, error)
	List(ctx context.Context) ([]Record, error)
}

// ParseState is the inverse of janggi.GameState.String.
func ParseState(s string) (janggi.GameState, bool) {
	switch s {
	case janggi.Unfinished.String():
		return janggi.Unfinished, true
	case janggi.RedWon.String():
		return janggi.RedWon, true
	case janggi.BlueWon.String():
		return janggi.BlueWon, true
	}
	return janggi.Unfinished, false
}

// Restore rebuilds the live game a record describes.
func (r Record) Restore() (*janggi.Game, error) {
	pos, err := janggi.DecodePosition(r.FEN)
	if err != nil {
		return nil, err
	}
	st, ok := ParseState(r.State)
	if !ok {
		return nil, errors.New("unknown game state " + r.State)
	}
	return janggi.Restore(pos, r.Turn, st, r.History)
}
