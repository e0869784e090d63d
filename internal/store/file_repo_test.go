package store

import (
	"context"
	"testing"
	"time"

	"janggi/internal/janggi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordFor(t *testing.T, id string, g *janggi.Game) Record {
	t.Helper()
	pos := g.Position()
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	return Record{
		ID:        id,
		FEN:       pos.Encode(),
		Turn:      g.Turn(),
		State:     g.State().String(),
		History:   g.History(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestFileRepo_SaveReloadRestore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	g := janggi.NewGame()
	require.True(t, g.Play("c7", "c6"))
	require.True(t, g.Play("c4", "c5"))

	repo, err := NewFileRepo(dir)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, recordFor(t, "g1", g)))

	reopened, err := NewFileRepo(dir)
	require.NoError(t, err)

	rec, err := reopened.Get(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, 3, rec.Turn)
	assert.Equal(t, "UNFINISHED", rec.State)
	require.Len(t, rec.History, 2)
	assert.Equal(t, "c7", rec.History[0].From.String())

	restored, err := rec.Restore()
	require.NoError(t, err)
	assert.Equal(t, g.Board(), restored.Board())
	assert.Equal(t, janggi.Blue, restored.SideToMove())

	all, err := reopened.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemoryRepo_NotFound(t *testing.T) {
	_, err := NewMemoryRepo().Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordRestore_BadState(t *testing.T) {
	rec := recordFor(t, "g2", janggi.NewGame())
	rec.State = "DRAW"
	_, err := rec.Restore()
	assert.Error(t, err)
}
