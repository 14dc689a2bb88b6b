package chessmg

import "math/rand"

// Zobrist keys for the position signature. Fixed seed so hashes are
// reproducible across runs and in tests.
var (
	zobristPiece     [2][7][64]uint64
	zobristCastle    [16]uint64
	zobristEnPassant [8]uint64
	zobristSide      uint64
)

func init() {
	rnd := rand.New(rand.NewSource(0x5EED))
	for c := 0; c < 2; c++ {
		for t := Pawn; t <= King; t++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[c][t][sq] = rnd.Uint64()
			}
		}
	}
	for cr := range zobristCastle {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// computeHash derives the signature from scratch. ApplyMove maintains it
// incrementally; this is the reference the incremental updates must match.
func (b *Board) computeHash() uint64 {
	var key uint64
	for sq := 0; sq < 64; sq++ {
		if p := b.squares[sq]; p != NoPiece {
			key ^= zobristPiece[p.Color()][p.Type()][sq]
		}
	}
	if b.sideToMove == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[b.castling]
	if b.epSquare != NoSquare {
		key ^= zobristEnPassant[b.epSquare.File()]
	}
	return key
}
