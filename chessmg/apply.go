package chessmg

// ApplyMove mutates the board by playing m: it relocates the moving
// piece, removes any captured piece (for en passant, the pawn one rank
// behind the destination), moves the rook on castling, revokes castling
// rights touched by the move, sets or clears the en-passant target,
// updates the halfmove clock and fullmove number, flips the side to move,
// and maintains the signature hash incrementally.
//
// ApplyMove performs no legality checking. Callers either take the move
// from GenerateLegalMoves, or accept that an illegal move produces a
// structurally consistent but meaningless game. Moves parsed from text
// must pass through ResolveMove first so castling and en-passant flags
// are set.
func (b *Board) ApplyMove(m Move) {
	from, to := m.From(), m.To()
	us := b.sideToMove
	moved := b.squares[from]

	captured := b.squares[to]
	if m.Flag() == FlagEnPassant {
		capSq := to - 8
		if us == Black {
			capSq = to + 8
		}
		captured = b.lift(capSq)
	} else if captured != NoPiece {
		b.lift(to)
	}

	b.lift(from)
	placed := moved
	if promo := m.Promotion(); promo != NoPieceType {
		placed = MakePiece(us, promo)
	}
	b.put(to, placed)

	if m.Flag() == FlagCastle {
		if rookFrom, rookTo := rookCastleSquares(to); rookFrom != NoSquare {
			if rook := b.lift(rookFrom); rook != NoPiece {
				b.put(rookTo, rook)
			}
		}
	}

	// Rights die with the squares the move touches: the king or rook
	// leaving home, or a rook captured on it.
	if revoked := castleRevoke[from] | castleRevoke[to]; b.castling&revoked != 0 {
		b.setCastling(b.castling &^ revoked)
	}

	ep := NoSquare
	if moved.Type() == Pawn {
		if d := to - from; d == 16 || d == -16 {
			ep = from + (to-from)/2
		}
	}
	b.setEnPassant(ep)

	if moved.Type() == Pawn || captured != NoPiece {
		b.halfmove = 0
	} else {
		b.halfmove++
	}
	if us == Black {
		b.fullmove++
	}
	b.toggleSide()
}

// rookCastleSquares maps the king's castling destination to the rook's
// journey.
func rookCastleSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case G1:
		return H1, F1
	case C1:
		return A1, D1
	case G8:
		return H8, F8
	case C8:
		return A8, D8
	}
	return NoSquare, NoSquare
}
