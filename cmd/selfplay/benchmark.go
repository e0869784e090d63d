package main

import (
	"fmt"
	"math/rand"
	"strings"

	"janggi/internal/janggi"
)

type gameResult struct {
	State  janggi.GameState
	Plies  int
	Passes int
}

// playGame plays uniformly random legal moves from the starting position,
// passing only when the side to move has none. Each ply is checked against
// the rules the generator must never break.
func playGame(seed int64, maxPlies int) (gameResult, error) {
	rng := rand.New(rand.NewSource(seed))
	g := janggi.NewGame()
	var res gameResult

	for res.Plies < maxPlies && g.State() == janggi.Unfinished {
		side := g.SideToMove()
		moves := g.LegalMoves()

		mv := janggi.Move{From: janggi.Sq(4, 4), To: janggi.Sq(4, 4)}
		if len(moves) > 0 {
			mv = moves[rng.Intn(len(moves))]
		} else {
			res.Passes++
		}
		if err := g.MakeMove(mv.From, mv.To); err != nil {
			return res, fmt.Errorf("ply %d: generated move %s rejected: %w", res.Plies, mv, err)
		}
		res.Plies++

		b := g.Board()
		if b.IsInCheck(side) {
			return res, fmt.Errorf("ply %d: %s left its general in check with %s", res.Plies, side, mv)
		}
		if g.State() != janggi.Unfinished && !b.IsInCheckmate(side.Opponent()) {
			return res, fmt.Errorf("ply %d: game decided without checkmate", res.Plies)
		}
	}
	res.State = g.State()
	return res, nil
}

type tally struct {
	games, plies, passes int
	redWins, blueWins    int
	unfinished           int
}

func (t *tally) add(r gameResult) {
	t.games++
	t.plies += r.Plies
	t.passes += r.Passes
	switch r.State {
	case janggi.RedWon:
		t.redWins++
	case janggi.BlueWon:
		t.blueWins++
	default:
		t.unfinished++
	}
}

func (t tally) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n=== Selfplay summary: %d games ===\n", t.games)
	fmt.Fprintf(&sb, "Blue wins:  %d\n", t.blueWins)
	fmt.Fprintf(&sb, "Red wins:   %d\n", t.redWins)
	fmt.Fprintf(&sb, "Unfinished: %d\n", t.unfinished)
	fmt.Fprintf(&sb, "Plies: %d, forced passes: %d\n", t.plies, t.passes)
	return sb.String()
}
