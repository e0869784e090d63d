package janggi

import "testing"

// three RED chariots close rows 8, 9 and 10 around the BLUE General on e9
func matedBlueBoard(t *testing.T) *Board {
	t.Helper()
	return boardWith(t, map[string]Piece{
		"e2": redGeneral,
		"a8": redChariot, "a10": redChariot, "i9": redChariot,
		"e9": blueGeneral,
	})
}

func TestCheckmateStatusMate(t *testing.T) {
	b := matedBlueBoard(t)
	if !b.IsInCheck(Blue) {
		t.Fatalf("expected BLUE in check")
	}
	if !b.IsInCheckmate(Blue) {
		t.Fatalf("expected BLUE checkmated")
	}
	if b.IsInCheck(Red) || b.IsInCheckmate(Red) {
		t.Fatalf("RED should be safe")
	}
}

func TestCheckmateStatusCaptureAvailable(t *testing.T) {
	b := matedBlueBoard(t)
	b.Set(mustSq(t, "i1"), blueChariot)
	if !b.IsInCheck(Blue) {
		t.Fatalf("expected BLUE in check")
	}
	if b.IsInCheckmate(Blue) {
		t.Fatalf("chariot on i1 can take i9, not mate")
	}
}

func TestCheckmateStatusBlockAvailable(t *testing.T) {
	b := matedBlueBoard(t)
	b.Set(mustSq(t, "i10"), blueHorse)
	if b.IsInCheckmate(Blue) {
		t.Fatalf("horse i10-g9 blocks the check, not mate")
	}
	assertDests(t, b.LegalDestinations(mustSq(t, "i10")), "g9")
	assertDests(t, b.LegalDestinations(mustSq(t, "e9")))
}

func TestCheckmateStatusSafePosition(t *testing.T) {
	b := NewInitialBoard()
	for _, side := range []Side{Red, Blue} {
		if b.IsInCheck(side) || b.IsInCheckmate(side) {
			t.Fatalf("%s should be safe at start", side)
		}
	}
}

func TestMissingGeneralPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for missing General")
		}
	}()
	b := boardWith(t, map[string]Piece{"e2": redGeneral})
	b.IsInCheck(Blue)
}
