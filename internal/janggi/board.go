package janggi

import (
	"strings"
	"unicode"
)

const (
	Rows       = 10
	Cols       = 9
	NumSquares = Rows * Cols

	// RiverRow is the first BLUE row; rows below it belong to RED.
	RiverRow = 5
)

// Square is a row-major board index: row*Cols + col.
type Square int

const NoSquare Square = -1

func Sq(row, col int) Square { return Square(row*Cols + col) }

func (s Square) Row() int { return int(s) / Cols }
func (s Square) Col() int { return int(s) % Cols }

func (s Square) Valid() bool { return s >= 0 && s < NumSquares }

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// Board is fixed 10x9, mutated in place for the life of a game.
type Board struct {
	Squares [NumSquares]Piece
}

func (b *Board) Get(sq Square) Piece { return b.Squares[sq] }

func (b *Board) Set(sq Square, p Piece) { b.Squares[sq] = p }

// Occupied returns the occupied squares of side, or of both sides when side is NoSide.
func (b *Board) Occupied(side Side) map[Square]Piece {
	out := make(map[Square]Piece, 16)
	for sq, pc := range b.Squares {
		if pc == NoPiece {
			continue
		}
		if side != NoSide && pc.Side() != side {
			continue
		}
		out[Square(sq)] = pc
	}
	return out
}

// squaresOf lists side's occupied squares in board order.
func (b *Board) squaresOf(side Side) []Square {
	out := make([]Square, 0, 16)
	for sq, pc := range b.Squares {
		if pc != NoPiece && pc.Side() == side {
			out = append(out, Square(sq))
		}
	}
	return out
}

var letterToKind = map[rune]PieceKind{
	'k': KindGeneral,
	'a': KindGuard,
	'h': KindHorse,
	'e': KindElephant,
	'r': KindChariot,
	'c': KindCannon,
	'p': KindSoldier,
}

// pieceToChar: uppercase BLUE, lowercase RED, '.' empty.
func pieceToChar(p Piece) rune {
	if p == NoPiece {
		return '.'
	}
	k := p.Kind()
	var base rune
	for ch, v := range letterToKind {
		if v == k {
			base = ch
			break
		}
	}
	if base == 0 {
		return '.'
	}
	if p.Side() == Blue {
		return unicode.ToUpper(base)
	}
	return base
}

func charToPiece(ch rune) (Piece, bool) {
	k, ok := letterToKind[unicode.ToLower(ch)]
	if !ok {
		return NoPiece, false
	}
	side := Red
	if unicode.IsUpper(ch) {
		side = Blue
	}
	return MakePiece(side, k), true
}

// row 0 first: RED on top, BLUE at the bottom.
const initialBoardString = `reha.aehr
....k....
.c.....c.
p.p.p.p.p
.........
.........
P.P.P.P.P
.C.....C.
....K....
REHA.AEHR`

func parseInitialBoard() Board {
	var b Board
	lines := make([]string, 0, Rows)
	for _, line := range strings.Split(initialBoardString, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != Rows {
		panic("initialBoardString must have 10 rows")
	}
	for r := 0; r < Rows; r++ {
		runes := []rune(lines[r])
		if len(runes) != Cols {
			panic("initialBoardString must have 9 columns")
		}
		for c, ch := range runes {
			if ch == '.' {
				continue
			}
			pc, ok := charToPiece(ch)
			if !ok {
				panic("unknown piece letter: " + string(ch))
			}
			b.Squares[Sq(r, c)] = pc
		}
	}
	return b
}

func NewInitialBoard() Board { return parseInitialBoard() }

func NewInitialPosition() *Position {
	return &Position{
		Board:      parseInitialBoard(),
		SideToMove: Blue,
	}
}
