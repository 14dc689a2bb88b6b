package chessmg

// moveIsSafe simulates m on a scratch copy and reports whether the
// mover's king survives unattacked. This is the single source of truth
// for "does this move leave my king in check": pins and discovered checks
// fall out of the simulation without a separate detection pass.
func (b *Board) moveIsSafe(m Move) bool {
	next := *b
	next.ApplyMove(m)
	us := b.sideToMove
	ks := next.KingSquare(us)
	if ks == NoSquare {
		return false
	}
	return !next.AttackedBy(ks, us.Other())
}

// FilterLegal discards candidates that leave the mover's own king
// attacked. It filters in place, reusing the candidate slice.
func (b *Board) FilterLegal(candidates []Move) []Move {
	legal := candidates[:0]
	for _, m := range candidates {
		if b.moveIsSafe(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// GenerateLegalMoves returns every fully legal move for the side to move.
// Order is deterministic but unspecified; compare as sets.
func (b *Board) GenerateLegalMoves() []Move {
	return b.FilterLegal(b.GeneratePseudoMoves())
}

// HasLegalMoves reports whether the side to move has any legal move,
// stopping at the first one found.
func (b *Board) HasLegalMoves() bool {
	for _, m := range b.GeneratePseudoMoves() {
		if b.moveIsSafe(m) {
			return true
		}
	}
	return false
}

// InCheckmate reports whether the side to move is checkmated.
func (b *Board) InCheckmate() bool {
	return b.InCheck(b.sideToMove) && !b.HasLegalMoves()
}

// InStalemate reports whether the side to move is stalemated.
func (b *Board) InStalemate() bool {
	return !b.InCheck(b.sideToMove) && !b.HasLegalMoves()
}

// Perft counts leaf positions reachable in exactly depth legal moves,
// the standard movegen correctness metric.
func Perft(b *Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		next := *b
		next.ApplyMove(m)
		nodes += Perft(&next, depth-1)
	}
	return nodes
}

// PerftDivide maps each legal root move to its leaf count at the given
// depth. Useful when hunting a generation bug.
func PerftDivide(b *Board, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range b.GenerateLegalMoves() {
		next := *b
		next.ApplyMove(m)
		result[m] = Perft(&next, depth-1)
	}
	return result
}
