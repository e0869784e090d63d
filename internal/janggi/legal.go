package janggi

// speculate plays from->to on the live board, runs eval, then puts both
// cells back. Restoration is deferred so it also runs if eval panics.
func (b *Board) speculate(from, to Square, eval func() bool) bool {
	savedFrom, savedTo := b.Squares[from], b.Squares[to]
	defer func() {
		b.Squares[from] = savedFrom
		b.Squares[to] = savedTo
	}()

	b.Squares[to] = savedFrom
	b.Squares[from] = NoPiece
	return eval()
}

// FilterLegal drops every destination that would leave side's General
// attacked. Destinations holding a General are dropped too: Generals are
// never captured, games end by checkmate. The board is unchanged on return.
func (b *Board) FilterLegal(from Square, dests []Square, side Side) []Square {
	out := make([]Square, 0, len(dests))
	for _, to := range dests {
		if target := b.Squares[to]; target != NoPiece && target.Kind() == KindGeneral {
			continue
		}
		exposed := b.speculate(from, to, func() bool {
			return b.IsInCheck(side)
		})
		if exposed {
			continue
		}
		out = append(out, to)
	}
	return out
}
