package janggi

// 馬：直一格再斜一格，腿上有子则不能走
var horseLegMoves = [8]struct {
	Dr, Dc int // 终点
	Br, Bc int // 马腿
}{
	{-2, -1, -1, 0},
	{-2, +1, -1, 0},
	{+2, -1, +1, 0},
	{+2, +1, +1, 0},
	{-1, -2, 0, -1},
	{+1, -2, 0, -1},
	{-1, +2, 0, +1},
	{+1, +2, 0, +1},
}

// 象：直一格再斜两格，两条腿都必须空
var elephantLegMoves = [8]struct {
	Dr, Dc   int
	B1r, B1c int
	B2r, B2c int
}{
	{-3, -2, -1, 0, -2, -1},
	{-3, +2, -1, 0, -2, +1},
	{+3, -2, +1, 0, +2, -1},
	{+3, +2, +1, 0, +2, +1},
	{-2, -3, 0, -1, -1, -2},
	{+2, -3, 0, -1, +1, -2},
	{-2, +3, 0, +1, -1, +2},
	{+2, +3, 0, +1, +1, +2},
}

func genHorseMoves(b *Board, from Square, dst *[]Square) {
	row, col := from.Row(), from.Col()
	side := b.Squares[from].Side()
	for _, m := range horseLegMoves {
		r, c := row+m.Dr, col+m.Dc
		if !onBoard(r, c) {
			continue
		}
		if b.Squares[Sq(row+m.Br, col+m.Bc)] != NoPiece {
			continue
		}
		to := Sq(r, c)
		if canLand(b, to, side) {
			*dst = append(*dst, to)
		}
	}
}

func genElephantMoves(b *Board, from Square, dst *[]Square) {
	row, col := from.Row(), from.Col()
	side := b.Squares[from].Side()
	for _, m := range elephantLegMoves {
		r, c := row+m.Dr, col+m.Dc
		if !onBoard(r, c) {
			continue
		}
		if b.Squares[Sq(row+m.B1r, col+m.B1c)] != NoPiece {
			continue
		}
		if b.Squares[Sq(row+m.B2r, col+m.B2c)] != NoPiece {
			continue
		}
		to := Sq(r, c)
		if canLand(b, to, side) {
			*dst = append(*dst, to)
		}
	}
}
