package janggi

import (
	"slices"
	"testing"
)

func TestCannonInitialHasNoScreen(t *testing.T) {
	b := NewInitialBoard()
	for _, s := range []string{"b3", "h3", "b8", "h8"} {
		if got := b.PseudoDestinations(mustSq(t, s)); len(got) != 0 {
			t.Fatalf("cannon on %s should be stuck at start, got %v", s, got)
		}
	}
}

func TestCannonJump(t *testing.T) {
	t.Run("OverScreenAndCapture", func(t *testing.T) {
		b := boardWith(t, map[string]Piece{
			"e2": redGeneral, "e9": blueGeneral,
			"a3": redCannon, "a4": redSoldier, "a7": blueSoldier,
		})
		assertDests(t, b.PseudoDestinations(mustSq(t, "a3")), "a5", "a6", "a7")
	})

	t.Run("CannotJumpCannon", func(t *testing.T) {
		b := boardWith(t, map[string]Piece{
			"e2": redGeneral, "e9": blueGeneral,
			"a3": redCannon, "a4": blueCannon, "a7": blueSoldier,
		})
		assertDests(t, b.PseudoDestinations(mustSq(t, "a3")))
	})

	t.Run("CannotCaptureCannon", func(t *testing.T) {
		b := boardWith(t, map[string]Piece{
			"e2": redGeneral, "e9": blueGeneral,
			"a3": redCannon, "a4": redSoldier, "a7": blueCannon,
		})
		assertDests(t, b.PseudoDestinations(mustSq(t, "a3")), "a5", "a6")
	})

	t.Run("PalaceDiagonalNeedsCenter", func(t *testing.T) {
		b := boardWith(t, map[string]Piece{
			"e2": redGeneral, "e9": blueGeneral,
			"d8": redCannon,
		})
		assertDests(t, b.PseudoDestinations(mustSq(t, "d8")), "f10")

		b.Set(mustSq(t, "e9"), NoPiece)
		b.Set(mustSq(t, "e10"), blueGeneral)
		assertDests(t, b.PseudoDestinations(mustSq(t, "d8")))
	})
}

func TestSoldierMoves(t *testing.T) {
	b := NewInitialBoard()
	assertDests(t, b.PseudoDestinations(mustSq(t, "a4")), "a5", "b4")
	assertDests(t, b.PseudoDestinations(mustSq(t, "c7")), "c6", "b7", "d7")

	t.Run("RedInBluePalace", func(t *testing.T) {
		b := boardWith(t, map[string]Piece{
			"e2": redGeneral, "e10": blueGeneral,
			"d8": redSoldier,
		})
		assertDests(t, b.PseudoDestinations(mustSq(t, "d8")), "d9", "c8", "e8", "e9")

		b = boardWith(t, map[string]Piece{
			"e2": redGeneral, "e8": blueGeneral,
			"e9": redSoldier,
		})
		// center: forward and forward diagonals only
		assertDests(t, b.PseudoDestinations(mustSq(t, "e9")), "e10", "d9", "f9", "d10", "f10")
	})

	t.Run("BlueInRedPalace", func(t *testing.T) {
		b := boardWith(t, map[string]Piece{
			"e1": redGeneral, "e9": blueGeneral,
			"f3": blueSoldier,
		})
		assertDests(t, b.PseudoDestinations(mustSq(t, "f3")), "f2", "e3", "g3", "e2")
	})
}

func TestGeneralAndGuardStayInPalace(t *testing.T) {
	b := boardWith(t, map[string]Piece{"e2": redGeneral, "e9": blueGeneral})
	assertDests(t, b.PseudoDestinations(mustSq(t, "e9")),
		"d8", "e8", "f8", "d9", "f9", "d10", "e10", "f10")

	b = boardWith(t, map[string]Piece{"e2": redGeneral, "e8": blueGeneral})
	assertDests(t, b.PseudoDestinations(mustSq(t, "e8")), "d8", "f8", "e9")

	b = boardWith(t, map[string]Piece{"e2": redGeneral, "d10": blueGeneral, "f1": redGuard})
	assertDests(t, b.PseudoDestinations(mustSq(t, "d10")), "d9", "e10", "e9")
	assertDests(t, b.PseudoDestinations(mustSq(t, "f1")), "e1", "f2")
}

func TestHorseAndElephantLegs(t *testing.T) {
	b := NewInitialBoard()
	assertDests(t, b.PseudoDestinations(mustSq(t, "c10")), "d8")
	assertDests(t, b.PseudoDestinations(mustSq(t, "h10")), "g8", "i8")
	assertDests(t, b.PseudoDestinations(mustSq(t, "b10")), "d7")

	// blocking the first diagonal cell stops the elephant
	b.Set(mustSq(t, "c8"), blueSoldier)
	assertDests(t, b.PseudoDestinations(mustSq(t, "b10")))
}

func TestHorseOrthogonalLegOnly(t *testing.T) {
	b := boardWith(t, map[string]Piece{
		"e2": redGeneral, "e9": blueGeneral,
		"e5": blueHorse,
		"e4": redSoldier,  // upward leg
		"c6": redSoldier,  // enemy on a landing square
		"g6": blueSoldier, // own piece on a landing square
	})
	// d3 and f3 share the blocked leg; the diagonal cells d4/f4 are not legs
	assertDests(t, b.PseudoDestinations(mustSq(t, "e5")), "d7", "f7", "c4", "c6", "g4")
}

func TestElephantCapturesOnLanding(t *testing.T) {
	b := boardWith(t, map[string]Piece{
		"e2": redGeneral, "e9": blueGeneral,
		"e5": blueElephant,
		"c2": redSoldier,
		"g8": blueSoldier,
	})
	assertDests(t, b.PseudoDestinations(mustSq(t, "e5")), "c2", "g2", "c8", "b3", "h3", "b7", "h7")

	// the second leg blocks too
	b.Set(mustSq(t, "d3"), redSoldier)
	assertDests(t, b.PseudoDestinations(mustSq(t, "e5")), "g2", "c8", "b3", "h3", "b7", "h7")
}

func TestChariotPalaceDiagonal(t *testing.T) {
	b := boardWith(t, map[string]Piece{
		"e2": redGeneral, "e10": blueGeneral,
		"d8": redChariot,
	})
	got := b.PseudoDestinations(mustSq(t, "d8"))
	for _, want := range []string{"e9", "f10", "d1", "d10", "a8", "i8"} {
		if !slices.Contains(got, mustSq(t, want)) {
			t.Fatalf("chariot on d8 should reach %s, got %v", want, got)
		}
	}
	if len(got) != 19 {
		t.Fatalf("chariot on d8 has %d destinations, want 19: %v", len(got), got)
	}

	b.Set(mustSq(t, "e9"), blueGuard)
	got = b.PseudoDestinations(mustSq(t, "d8"))
	if !slices.Contains(got, mustSq(t, "e9")) || slices.Contains(got, mustSq(t, "f10")) {
		t.Fatalf("guard on e9 should be captured and stop the slide, got %v", got)
	}

	// off the diagonals there is no diagonal slide
	b = boardWith(t, map[string]Piece{"e2": redGeneral, "e10": blueGeneral, "d7": redChariot})
	if slices.Contains(b.PseudoDestinations(mustSq(t, "d7")), mustSq(t, "e8")) {
		t.Fatalf("chariot outside the palace moved diagonally")
	}
}

func TestSlidesStopAtOwnPiece(t *testing.T) {
	b := NewInitialBoard()
	assertDests(t, b.PseudoDestinations(mustSq(t, "a10")), "a9", "a8")
	assertDests(t, b.PseudoDestinations(mustSq(t, "a1")), "a2", "a3")
}
