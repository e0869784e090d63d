package janggi

import (
	"slices"
	"testing"
)

func mustSq(t *testing.T, s string) Square {
	t.Helper()
	sq, err := ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", s, err)
	}
	return sq
}

// boardWith builds a board from algebraic placements, e.g. {"e2": red general}.
func boardWith(t *testing.T, pieces map[string]Piece) *Board {
	t.Helper()
	var b Board
	for s, pc := range pieces {
		b.Squares[mustSq(t, s)] = pc
	}
	return &b
}

func squares(t *testing.T, names ...string) []Square {
	t.Helper()
	out := make([]Square, 0, len(names))
	for _, n := range names {
		out = append(out, mustSq(t, n))
	}
	slices.Sort(out)
	return out
}

func assertDests(t *testing.T, got []Square, want ...string) {
	t.Helper()
	got = slices.Clone(got)
	slices.Sort(got)
	w := squares(t, want...)
	if !slices.Equal(got, w) {
		t.Fatalf("destinations mismatch:\n got=%v\nwant=%v", got, w)
	}
}

var (
	redGeneral   = MakePiece(Red, KindGeneral)
	redGuard     = MakePiece(Red, KindGuard)
	redChariot   = MakePiece(Red, KindChariot)
	redCannon    = MakePiece(Red, KindCannon)
	redSoldier   = MakePiece(Red, KindSoldier)
	blueGeneral  = MakePiece(Blue, KindGeneral)
	blueGuard    = MakePiece(Blue, KindGuard)
	blueHorse    = MakePiece(Blue, KindHorse)
	blueChariot  = MakePiece(Blue, KindChariot)
	blueCannon   = MakePiece(Blue, KindCannon)
	blueSoldier  = MakePiece(Blue, KindSoldier)
	blueElephant = MakePiece(Blue, KindElephant)
)
