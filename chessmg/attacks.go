package chessmg

import "math/bits"

// Precomputed attack masks and slider rays. knightAttacks and kingAttacks
// hold the fixed offset sets; pawnCaptures[c][sq] is the pair of squares
// a pawn of color c attacks from sq (capture squares only, never pushes).
var (
	knightAttacks [64]uint64
	kingAttacks   [64]uint64
	pawnCaptures  [2][64]uint64
)

// Ray directions. The first square hit along north/east/northeast/
// northwest rays has the lowest index; along the other four it has the
// highest. forwardDir records which, for blocker selection.
const (
	dirN = iota
	dirS
	dirE
	dirW
	dirNE
	dirNW
	dirSE
	dirSW
)

var (
	rayMask    [64][8]uint64
	forwardDir = [8]bool{dirN: true, dirE: true, dirNE: true, dirNW: true}
	rayDelta   = [8][2]int{ // {dRank, dFile}
		dirN:  {1, 0},
		dirS:  {-1, 0},
		dirE:  {0, 1},
		dirW:  {0, -1},
		dirNE: {1, 1},
		dirNW: {1, -1},
		dirSE: {-1, 1},
		dirSW: {-1, -1},
	}
)

func init() {
	knightOffsets := [8][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	kingOffsets := [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	for sq := 0; sq < 64; sq++ {
		rank, file := sq/8, sq%8
		for _, off := range knightOffsets {
			if r, f := rank+off[0], file+off[1]; r >= 0 && r < 8 && f >= 0 && f < 8 {
				knightAttacks[sq] |= 1 << uint(r*8+f)
			}
		}
		for _, off := range kingOffsets {
			if r, f := rank+off[0], file+off[1]; r >= 0 && r < 8 && f >= 0 && f < 8 {
				kingAttacks[sq] |= 1 << uint(r*8+f)
			}
		}
		if rank < 7 {
			if file > 0 {
				pawnCaptures[White][sq] |= 1 << uint(sq+7)
			}
			if file < 7 {
				pawnCaptures[White][sq] |= 1 << uint(sq+9)
			}
		}
		if rank > 0 {
			if file > 0 {
				pawnCaptures[Black][sq] |= 1 << uint(sq-9)
			}
			if file < 7 {
				pawnCaptures[Black][sq] |= 1 << uint(sq-7)
			}
		}
		for d := 0; d < 8; d++ {
			dr, df := rayDelta[d][0], rayDelta[d][1]
			for r, f := rank+dr, file+df; r >= 0 && r < 8 && f >= 0 && f < 8; r, f = r+dr, f+df {
				rayMask[sq][d] |= 1 << uint(r*8+f)
			}
		}
	}
}

// rayAttacks walks one ray from sq, cutting it off at the first blocker.
// The blocker square itself stays in the result; callers mask off their
// own pieces.
func rayAttacks(sq int, occ uint64, dir int) uint64 {
	ray := rayMask[sq][dir]
	blockers := ray & occ
	if blockers == 0 {
		return ray
	}
	var first int
	if forwardDir[dir] {
		first = bits.TrailingZeros64(blockers)
	} else {
		first = 63 - bits.LeadingZeros64(blockers)
	}
	return ray &^ rayMask[first][dir]
}

// rookAttacks returns the rook attack set from sq for the given occupancy.
func rookAttacks(sq int, occ uint64) uint64 {
	return rayAttacks(sq, occ, dirN) | rayAttacks(sq, occ, dirS) |
		rayAttacks(sq, occ, dirE) | rayAttacks(sq, occ, dirW)
}

// bishopAttacks returns the bishop attack set from sq for the given occupancy.
func bishopAttacks(sq int, occ uint64) uint64 {
	return rayAttacks(sq, occ, dirNE) | rayAttacks(sq, occ, dirNW) |
		rayAttacks(sq, occ, dirSE) | rayAttacks(sq, occ, dirSW)
}

// AttackedBy reports whether any piece of the given side could capture on
// sq in one pseudo-legal step. It is a pure query: king safety of the
// attacker is deliberately ignored, since this is the primitive the
// legality filter is built on. Pawn attacks are the diagonal capture
// squares only, resolved through the reverse table: a white pawn attacks
// sq exactly when a black pawn on sq would attack the white pawn's square.
func (b *Board) AttackedBy(sq Square, by Color) bool {
	s := int(sq)
	if pawnCaptures[by.Other()][s]&b.pieceBB[by][Pawn] != 0 {
		return true
	}
	if knightAttacks[s]&b.pieceBB[by][Knight] != 0 {
		return true
	}
	if kingAttacks[s]&b.pieceBB[by][King] != 0 {
		return true
	}
	occ := b.AllOccupied()
	if rq := b.pieceBB[by][Rook] | b.pieceBB[by][Queen]; rq != 0 && rookAttacks(s, occ)&rq != 0 {
		return true
	}
	if bq := b.pieceBB[by][Bishop] | b.pieceBB[by][Queen]; bq != 0 && bishopAttacks(s, occ)&bq != 0 {
		return true
	}
	return false
}

// InCheck reports whether the given side's king is attacked.
func (b *Board) InCheck(c Color) bool {
	ks := b.KingSquare(c)
	if ks == NoSquare {
		return false
	}
	return b.AttackedBy(ks, c.Other())
}
