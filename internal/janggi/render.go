package janggi

import (
	"fmt"
	"strings"
)

// String renders the board with row labels 1..10 down the left and column
// letters along the bottom. Uppercase is BLUE, lowercase RED.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		fmt.Fprintf(&sb, "%2d ", r+1)
		for c := 0; c < Cols; c++ {
			sb.WriteByte(' ')
			sb.WriteRune(pieceToChar(b.Squares[Sq(r, c)]))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   ")
	for c := 0; c < Cols; c++ {
		sb.WriteByte(' ')
		sb.WriteByte(byte('a' + c))
	}
	sb.WriteByte('\n')
	return sb.String()
}
