package janggi

import (
	"fmt"
	"strings"
)

// 简单 FEN-like：10 行用 "/" 隔开，空位用数字压缩；空格后 w(BLUE)/b(RED) 表示轮到谁
func (p *Position) Encode() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := p.Board.Squares[Sq(r, c)]
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if p.SideToMove == Red {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	return sb.String()
}

// DecodePosition parses Encode's format. Each side must have exactly one
// General inside its own palace, and the side not to move must not be in check.
func DecodePosition(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return nil, ErrInvalidFEN
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Rows {
		return nil, ErrInvalidFEN
	}
	var b Board
	generals := map[Side]int{}
	for r := 0; r < Rows; r++ {
		c := 0
		for _, ch := range rows[r] {
			if c >= Cols {
				return nil, ErrInvalidFEN
			}
			if ch >= '1' && ch <= '9' {
				c += int(ch - '0')
				continue
			}
			if ch == '.' {
				c++
				continue
			}
			pc, ok := charToPiece(ch)
			if !ok {
				return nil, ErrInvalidFEN
			}
			if pc.Kind() == KindGeneral {
				generals[pc.Side()]++
			}
			b.Squares[Sq(r, c)] = pc
			c++
		}
		if c != Cols {
			return nil, ErrInvalidFEN
		}
	}
	if generals[Red] != 1 || generals[Blue] != 1 {
		return nil, ErrInvalidFEN
	}

	for _, side := range []Side{Red, Blue} {
		g := b.GeneralSquare(side)
		if !inPalace(side, g.Row(), g.Col()) {
			return nil, fmt.Errorf("%w: %s general on %s is outside its palace", ErrInvalidFEN, side, g)
		}
	}

	var stm Side
	switch parts[1] {
	case "w":
		stm = Blue
	case "b":
		stm = Red
	default:
		return nil, ErrInvalidFEN
	}
	// the side that just moved can never be left in check
	if b.IsInCheck(stm.Opponent()) {
		return nil, fmt.Errorf("%w: %s in check with %s to move", ErrInvalidFEN, stm.Opponent(), stm)
	}
	return &Position{Board: b, SideToMove: stm}, nil
}
