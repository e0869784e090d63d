package janggi

var orthDirs = [4][2]int{{-1, 0}, {+1, 0}, {0, -1}, {0, +1}}

// canLand: empty, or held by the other side.
func canLand(b *Board, to Square, side Side) bool {
	pc := b.Squares[to]
	return pc == NoPiece || pc.Side() != side
}

// 將 / 士：宫内一步，四个角和中心可以沿斜线走
func genPalaceStepMoves(b *Board, from Square, dst *[]Square) {
	row, col := from.Row(), from.Col()
	side := b.Squares[from].Side()
	for _, d := range orthDirs {
		r, c := row+d[0], col+d[1]
		if !onBoard(r, c) || !inPalace(side, r, c) {
			continue
		}
		to := Sq(r, c)
		if canLand(b, to, side) {
			*dst = append(*dst, to)
		}
	}
	for _, ray := range palaceRays[from] {
		to := ray[0]
		if !inPalace(side, to.Row(), to.Col()) {
			continue
		}
		if canLand(b, to, side) {
			*dst = append(*dst, to)
		}
	}
}

// 車：横竖随便走，宫内沿斜线滑
func genChariotMoves(b *Board, from Square, dst *[]Square) {
	row, col := from.Row(), from.Col()
	side := b.Squares[from].Side()
	for _, d := range orthDirs {
		r, c := row+d[0], col+d[1]
		for onBoard(r, c) {
			to := Sq(r, c)
			pc := b.Squares[to]
			if pc == NoPiece {
				*dst = append(*dst, to)
			} else {
				if pc.Side() != side {
					*dst = append(*dst, to)
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}
	for _, ray := range palaceRays[from] {
		for _, to := range ray {
			pc := b.Squares[to]
			if pc == NoPiece {
				*dst = append(*dst, to)
				continue
			}
			if pc.Side() != side {
				*dst = append(*dst, to)
			}
			break
		}
	}
}

// 包：必须隔一个非包的子才能走或吃；不能吃包
func genCannonMoves(b *Board, from Square, dst *[]Square) {
	row, col := from.Row(), from.Col()
	side := b.Squares[from].Side()
	for _, d := range orthDirs {
		r, c := row+d[0], col+d[1]

		// find the screen
		for onBoard(r, c) && b.Squares[Sq(r, c)] == NoPiece {
			r += d[0]
			c += d[1]
		}
		if !onBoard(r, c) || b.Squares[Sq(r, c)].Kind() == KindCannon {
			continue
		}
		r += d[0]
		c += d[1]

		// past the screen: empty cells, then at most one capture
		for onBoard(r, c) {
			to := Sq(r, c)
			pc := b.Squares[to]
			if pc == NoPiece {
				*dst = append(*dst, to)
				r += d[0]
				c += d[1]
				continue
			}
			if pc.Side() != side && pc.Kind() != KindCannon {
				*dst = append(*dst, to)
			}
			break
		}
	}

	// corner to corner over an occupied center
	for _, ray := range palaceRays[from] {
		if len(ray) != 2 {
			continue
		}
		screen := b.Squares[ray[0]]
		if screen == NoPiece || screen.Kind() == KindCannon {
			continue
		}
		to := ray[1]
		pc := b.Squares[to]
		if pc == NoPiece || (pc.Side() != side && pc.Kind() != KindCannon) {
			*dst = append(*dst, to)
		}
	}
}
