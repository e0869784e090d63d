package janggi

// soldierDir: RED advances toward higher rows, BLUE toward lower rows.
func soldierDir(side Side) int {
	if side == Red {
		return +1
	}
	if side == Blue {
		return -1
	}
	return 0
}

// 兵：前进或横走一格，不能后退；在对方宫内可沿斜线向前
func genSoldierMoves(b *Board, from Square, dst *[]Square) {
	pc := b.Squares[from]
	if pc == NoPiece {
		return
	}
	row, col := from.Row(), from.Col()
	side := pc.Side()
	dir := soldierDir(side)

	for _, d := range [3][2]int{{dir, 0}, {0, -1}, {0, +1}} {
		r, c := row+d[0], col+d[1]
		if !onBoard(r, c) {
			continue
		}
		to := Sq(r, c)
		if canLand(b, to, side) {
			*dst = append(*dst, to)
		}
	}

	if palaceOf(row, col) != side.Opponent() {
		return
	}
	for _, ray := range palaceRays[from] {
		to := ray[0]
		if to.Row()-row != dir {
			continue
		}
		if canLand(b, to, side) {
			*dst = append(*dst, to)
		}
	}
}
