package janggi

import "fmt"

// IsAttacked 判断 sq 是否在 bySide 任一棋子的伪合法落点中
func (b *Board) IsAttacked(sq Square, bySide Side) bool {
	var dst []Square
	for _, from := range b.squaresOf(bySide) {
		dst = dst[:0]
		genPieceMoves(b, from, &dst)
		for _, to := range dst {
			if to == sq {
				return true
			}
		}
	}
	return false
}

// GeneralSquare locates side's General. Both Generals stay on the board for
// the whole game, so a missing one is a programming error and panics.
func (b *Board) GeneralSquare(side Side) Square {
	for sq, pc := range b.Squares {
		if pc != NoPiece && pc.Side() == side && pc.Kind() == KindGeneral {
			return Square(sq)
		}
	}
	panic(fmt.Sprintf("janggi: %s general missing from board", side))
}

// IsInCheck 判断 side 的將是否被对方攻击
func (b *Board) IsInCheck(side Side) bool {
	return b.IsAttacked(b.GeneralSquare(side), side.Opponent())
}

// HasLegalMove reports whether any of side's pieces has a legal destination.
func (b *Board) HasLegalMove(side Side) bool {
	for _, from := range b.squaresOf(side) {
		if len(b.LegalDestinations(from)) > 0 {
			return true
		}
	}
	return false
}

// IsInCheckmate: in check and no piece of side has a legal move. Every
// piece is tried, since a block or a capture can answer the check as well
// as a General move.
func (b *Board) IsInCheckmate(side Side) bool {
	if !b.IsInCheck(side) {
		return false
	}
	return !b.HasLegalMove(side)
}
