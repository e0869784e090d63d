package janggi

// genPieceMoves appends the pseudo-legal destinations of the piece on from.
func genPieceMoves(b *Board, from Square, dst *[]Square) {
	switch b.Squares[from].Kind() {
	case KindGeneral, KindGuard:
		genPalaceStepMoves(b, from, dst)
	case KindHorse:
		genHorseMoves(b, from, dst)
	case KindElephant:
		genElephantMoves(b, from, dst)
	case KindChariot:
		genChariotMoves(b, from, dst)
	case KindCannon:
		genCannonMoves(b, from, dst)
	case KindSoldier:
		genSoldierMoves(b, from, dst)
	}
}

// PseudoDestinations ignores whether the mover's own General is left in check.
// An empty or off-board from yields nil.
func (b *Board) PseudoDestinations(from Square) []Square {
	if !from.Valid() || b.Squares[from] == NoPiece {
		return nil
	}
	var dst []Square
	genPieceMoves(b, from, &dst)
	return dst
}

// 生成指定一方的伪合法走法
func (b *Board) GeneratePseudoMovesForSide(side Side) []Move {
	var moves []Move
	var dst []Square
	for _, from := range b.squaresOf(side) {
		dst = dst[:0]
		genPieceMoves(b, from, &dst)
		for _, to := range dst {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

// LegalDestinations = pseudo-legal destinations that survive FilterLegal.
func (b *Board) LegalDestinations(from Square) []Square {
	pseudo := b.PseudoDestinations(from)
	if len(pseudo) == 0 {
		return nil
	}
	return b.FilterLegal(from, pseudo, b.Squares[from].Side())
}

// GenerateLegalMoves lists every legal move of side, in board order.
func (b *Board) GenerateLegalMoves(side Side) []Move {
	var moves []Move
	for _, from := range b.squaresOf(side) {
		for _, to := range b.LegalDestinations(from) {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}
