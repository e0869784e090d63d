package janggi

import "testing"

func TestFilterLegalPinnedGuard(t *testing.T) {
	b := boardWith(t, map[string]Piece{
		"d1": redGeneral, "e5": redChariot,
		"e9": blueGeneral, "e8": blueGuard,
	})
	before := *b

	from := mustSq(t, "e8")
	pseudo := b.PseudoDestinations(from)
	assertDests(t, pseudo, "d8", "f8")
	assertDests(t, b.FilterLegal(from, pseudo, Blue))

	if *b != before {
		t.Fatalf("FilterLegal changed the board")
	}
}

func TestFilterLegalGeneralAvoidsAttackedSquares(t *testing.T) {
	b := boardWith(t, map[string]Piece{
		"e2": redGeneral, "d5": redChariot,
		"e9": blueGeneral,
	})
	assertDests(t, b.LegalDestinations(mustSq(t, "e9")), "e8", "f8", "f9", "e10", "f10")
}

func TestFilterLegalNeverCapturesGeneral(t *testing.T) {
	b := boardWith(t, map[string]Piece{
		"e2": redGeneral,
		"e9": blueGeneral, "e5": blueChariot,
	})
	from := mustSq(t, "e5")
	pseudo := b.PseudoDestinations(from)
	if !containsSq(pseudo, mustSq(t, "e2")) {
		t.Fatalf("pseudo-legal set should see the General for check detection: %v", pseudo)
	}
	if containsSq(b.LegalDestinations(from), mustSq(t, "e2")) {
		t.Fatalf("legal set must not capture a General")
	}
}

func TestSpeculateRestoresOnPanic(t *testing.T) {
	b := NewInitialBoard()
	before := b
	func() {
		defer func() { _ = recover() }()
		b.speculate(mustSq(t, "a7"), mustSq(t, "a6"), func() bool {
			panic("boom")
		})
	}()
	if b != before {
		t.Fatalf("speculate did not restore the board after a panic")
	}
}

func containsSq(list []Square, sq Square) bool {
	for _, s := range list {
		if s == sq {
			return true
		}
	}
	return false
}
