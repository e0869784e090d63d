package janggi

const (
	palaceMinCol = 3
	palaceMaxCol = 5
)

// palaceTop is the first row of side's palace.
func palaceTop(side Side) int {
	if side == Blue {
		return 7
	}
	return 0
}

// inPalace reports whether (row, col) lies in side's palace.
func inPalace(side Side, row, col int) bool {
	if col < palaceMinCol || col > palaceMaxCol {
		return false
	}
	top := palaceTop(side)
	return row >= top && row <= top+2
}

// palaceOf returns the side whose palace contains (row, col), or NoSide.
func palaceOf(row, col int) Side {
	if inPalace(Red, row, col) {
		return Red
	}
	if inPalace(Blue, row, col) {
		return Blue
	}
	return NoSide
}

// palaceCenter is the pivot cell of side's palace.
func palaceCenter(side Side) Square {
	return Sq(palaceTop(side)+1, 4)
}

// palaceLines holds the two corner-center-corner diagonals of each palace.
// Only the four corners and the center sit on these lines; they are the
// only cells with diagonal edges.
var palaceLines = func() [][3]Square {
	var lines [][3]Square
	for _, side := range []Side{Red, Blue} {
		top := palaceTop(side)
		lines = append(lines,
			[3]Square{Sq(top, 3), Sq(top+1, 4), Sq(top+2, 5)},
			[3]Square{Sq(top, 5), Sq(top+1, 4), Sq(top+2, 3)},
		)
	}
	return lines
}()

// palaceRays[sq] lists, for every palace diagonal through sq, the cells
// beyond sq in walking order. Cells off the diagonals have none.
var palaceRays [NumSquares][][]Square

func init() {
	for sq := Square(0); sq < NumSquares; sq++ {
		palaceRays[sq] = buildDiagonalRays(sq)
	}
}

func buildDiagonalRays(from Square) [][]Square {
	var rays [][]Square
	for _, line := range palaceLines {
		idx := -1
		for i, sq := range line {
			if sq == from {
				idx = i
				break
			}
		}
		if idx < 0 {
			continue
		}
		if idx < 2 {
			fwd := make([]Square, 0, 2)
			for i := idx + 1; i < 3; i++ {
				fwd = append(fwd, line[i])
			}
			rays = append(rays, fwd)
		}
		if idx > 0 {
			back := make([]Square, 0, 2)
			for i := idx - 1; i >= 0; i-- {
				back = append(back, line[i])
			}
			rays = append(rays, back)
		}
	}
	return rays
}
