package janggi

import "sync"

const zobristKinds = int(KindSoldier) + 1

var (
	zobristOnce sync.Once

	zobristPieces [2][zobristKinds][NumSquares]uint64
	zobristRed    uint64
)

// 固定种子的 splitmix64，保证不同进程算出的哈希一致
func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}
		for side := 0; side < 2; side++ {
			for k := 1; k < zobristKinds; k++ {
				for sq := 0; sq < NumSquares; sq++ {
					zobristPieces[side][k][sq] = next()
				}
			}
		}
		zobristRed = next()
	})
}

// Hash is a Zobrist key over placement and side to move. Equal positions
// hash equal; it is not used by any rule.
func (p *Position) Hash() uint64 {
	initZobrist()
	var h uint64
	for sq, pc := range p.Board.Squares {
		if pc == NoPiece {
			continue
		}
		h ^= zobristPieces[pc.Side()][pc.Kind()][sq]
	}
	if p.SideToMove == Red {
		h ^= zobristRed
	}
	return h
}
