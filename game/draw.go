package game

import (
	"math/bits"

	"chess-rules/chessmg"
)

// darkSquares marks the squares a dark-squared bishop lives on.
const darkSquares uint64 = 0xAA55AA55AA55AA55

// isDraw reports whether any of the three draw conditions holds:
// threefold repetition, the fifty-move rule, or insufficient material.
func (g *Game) isDraw() bool {
	if g.sigCount[g.board.Hash()] >= 3 {
		return true
	}
	if g.board.HalfmoveClock() >= 100 {
		return true
	}
	return insufficientMaterial(&g.board)
}

// insufficientMaterial classifies material-only dead draws. The boundary
// is conservative, covering only configurations where checkmate is
// impossible by any sequence of legal moves:
//
//	K vs K, K+B vs K, K+N vs K, and K+B vs K+B with both bishops on
//	same-colored squares.
//
// Two knights against a bare king is NOT classified as drawn (mate can
// still arise with cooperation), nor is any position holding a pawn,
// rook or queen.
func insufficientMaterial(b *chessmg.Board) bool {
	for _, c := range [2]chessmg.Color{chessmg.White, chessmg.Black} {
		if b.Pieces(c, chessmg.Pawn)|b.Pieces(c, chessmg.Rook)|b.Pieces(c, chessmg.Queen) != 0 {
			return false
		}
	}

	wN := bits.OnesCount64(b.Pieces(chessmg.White, chessmg.Knight))
	wB := bits.OnesCount64(b.Pieces(chessmg.White, chessmg.Bishop))
	bN := bits.OnesCount64(b.Pieces(chessmg.Black, chessmg.Knight))
	bB := bits.OnesCount64(b.Pieces(chessmg.Black, chessmg.Bishop))

	if wN+wB+bN+bB <= 1 {
		return true
	}
	if wN == 0 && bN == 0 && wB == 1 && bB == 1 {
		wDark := b.Pieces(chessmg.White, chessmg.Bishop)&darkSquares != 0
		bDark := b.Pieces(chessmg.Black, chessmg.Bishop)&darkSquares != 0
		return wDark == bDark
	}
	return false
}
