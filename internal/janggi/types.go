package janggi

import "strings"

type Side int8

const (
	NoSide Side = -1
	Red    Side = 0
	Blue   Side = 1
)

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return "none"
	}
}

// Opponent returns the other side; NoSide stays NoSide.
func (s Side) Opponent() Side {
	switch s {
	case Red:
		return Blue
	case Blue:
		return Red
	default:
		return NoSide
	}
}

// ParseSide accepts "red"/"blue" in any case.
func ParseSide(s string) (Side, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red":
		return Red, true
	case "blue":
		return Blue, true
	default:
		return NoSide, false
	}
}

type PieceKind int8

const (
	KindNone     PieceKind = iota
	KindGeneral            // 將 / 楚
	KindGuard              // 士
	KindHorse              // 馬
	KindElephant           // 象
	KindChariot            // 車
	KindCannon             // 包
	KindSoldier            // 兵 / 卒
)

var kindNames = [...]string{
	KindNone:     "none",
	KindGeneral:  "general",
	KindGuard:    "guard",
	KindHorse:    "horse",
	KindElephant: "elephant",
	KindChariot:  "chariot",
	KindCannon:   "cannon",
	KindSoldier:  "soldier",
}

func (k PieceKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Piece 0 means an empty cell; >0 is RED, <0 is BLUE, abs is the kind.
type Piece int8

const NoPiece Piece = 0

func MakePiece(side Side, k PieceKind) Piece {
	if k == KindNone || side == NoSide {
		return NoPiece
	}
	if side == Red {
		return Piece(k)
	}
	return -Piece(k)
}

func (p Piece) Kind() PieceKind {
	if p < 0 {
		return PieceKind(-p)
	}
	return PieceKind(p)
}

func (p Piece) Side() Side {
	if p == 0 {
		return NoSide
	}
	if p > 0 {
		return Red
	}
	return Blue
}

func (p Piece) IsEmpty() bool { return p == NoPiece }

func (p Piece) String() string {
	if p == NoPiece {
		return "empty"
	}
	return p.Side().String() + " " + p.Kind().String()
}

// Move is a from/to pair of board squares. From == To is a pass.
type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

func (m Move) IsPass() bool { return m.From == m.To }

func (m Move) String() string {
	return m.From.String() + "-" + m.To.String()
}

// GameState only moves forward: Unfinished -> RedWon | BlueWon.
type GameState int8

const (
	Unfinished GameState = iota
	RedWon
	BlueWon
)

func (s GameState) String() string {
	switch s {
	case RedWon:
		return "RED_WON"
	case BlueWon:
		return "BLUE_WON"
	default:
		return "UNFINISHED"
	}
}

func wonBy(side Side) GameState {
	if side == Red {
		return RedWon
	}
	return BlueWon
}

// Position = board + side to move.
type Position struct {
	Board      Board
	SideToMove Side
}
