package janggi

import (
	"fmt"
	"slices"
)

// Game sequences turns over one board. BLUE moves on odd turns, RED on
// even ones. A Game is not safe for concurrent use.
type Game struct {
	pos     Position
	turn    int
	state   GameState
	history []Move
}

func NewGame() *Game {
	return NewGameFromPosition(NewInitialPosition())
}

// NewGameFromPosition starts a game from an arbitrary position. If the side
// to move is already mated the game starts decided.
func NewGameFromPosition(p *Position) *Game {
	g := &Game{pos: *p, turn: 1}
	if p.SideToMove == Red {
		g.turn = 2
	}
	if g.pos.Board.IsInCheckmate(p.SideToMove) {
		g.state = wonBy(p.SideToMove.Opponent())
	}
	return g
}

// Restore rebuilds a game saved elsewhere; turn parity must agree with the
// side to move.
func Restore(p *Position, turn int, state GameState, history []Move) (*Game, error) {
	if turn < 1 {
		return nil, fmt.Errorf("restore: turn %d", turn)
	}
	if sideForTurn(turn) != p.SideToMove {
		return nil, fmt.Errorf("restore: turn %d is not %s's", turn, p.SideToMove)
	}
	if state < Unfinished || state > BlueWon {
		return nil, fmt.Errorf("restore: state %d", state)
	}
	return &Game{
		pos:     *p,
		turn:    turn,
		state:   state,
		history: slices.Clone(history),
	}, nil
}

func sideForTurn(turn int) Side {
	if turn%2 == 1 {
		return Blue
	}
	return Red
}

func (g *Game) State() GameState   { return g.state }
func (g *Game) Turn() int          { return g.turn }
func (g *Game) SideToMove() Side   { return g.pos.SideToMove }
func (g *Game) Board() Board       { return g.pos.Board }
func (g *Game) Position() Position { return g.pos }
func (g *Game) History() []Move    { return slices.Clone(g.history) }

func (g *Game) IsInCheck(side Side) bool     { return g.pos.Board.IsInCheck(side) }
func (g *Game) IsInCheckmate(side Side) bool { return g.pos.Board.IsInCheckmate(side) }

// LegalMoves lists the side to move's legal moves, passes excluded.
func (g *Game) LegalMoves() []Move {
	return g.pos.Board.GenerateLegalMoves(g.pos.SideToMove)
}

func (g *Game) LegalDestinations(from Square) []Square {
	if !from.Valid() {
		return nil
	}
	return g.pos.Board.LegalDestinations(from)
}

// MakeMove plays from->to for the side to move. from == to passes the turn
// and needs no piece on the square. A rejected move leaves the game as it
// was. When the move leaves the opponent mated the game is decided.
func (g *Game) MakeMove(from, to Square) error {
	if g.state != Unfinished {
		return ErrGameOver
	}
	if !from.Valid() || !to.Valid() {
		return fmt.Errorf("%w: %d-%d", ErrOffBoard, int(from), int(to))
	}
	mv := Move{From: from, To: to}
	if mv.IsPass() {
		g.advance(mv)
		return nil
	}

	b := &g.pos.Board
	side := g.pos.SideToMove
	pc := b.Squares[from]
	if pc == NoPiece {
		return fmt.Errorf("%w: %s", ErrEmptySource, from)
	}
	if pc.Side() != side {
		return fmt.Errorf("%w: %s on %s, %s to move", ErrNotYourTurn, pc, from, side)
	}
	if !slices.Contains(b.LegalDestinations(from), to) {
		return fmt.Errorf("%w: %s %s", ErrIllegalMove, pc, mv)
	}

	b.Squares[to] = pc
	b.Squares[from] = NoPiece
	g.advance(mv)

	if b.IsInCheckmate(side.Opponent()) {
		g.state = wonBy(side)
	}
	return nil
}

// MakeMoveNotation is MakeMove over algebraic squares ("e7", "e6").
func (g *Game) MakeMoveNotation(from, to string) error {
	f, err := ParseSquare(from)
	if err != nil {
		return err
	}
	t, err := ParseSquare(to)
	if err != nil {
		return err
	}
	return g.MakeMove(f, t)
}

// Play reports acceptance only; malformed and illegal moves both yield false.
func (g *Game) Play(from, to string) bool {
	return g.MakeMoveNotation(from, to) == nil
}

func (g *Game) advance(mv Move) {
	g.history = append(g.history, mv)
	g.turn++
	g.pos.SideToMove = g.pos.SideToMove.Opponent()
}
