package chessmg

// promotionOrder is the fixed expansion order for pawn moves reaching the
// last rank. Generation order overall is deterministic (bitboard scan
// order) but callers must only rely on set equality.
var promotionOrder = [4]PieceType{Queen, Rook, Bishop, Knight}

// GeneratePseudoMoves enumerates every geometrically valid move for the
// side to move, ignoring whether the mover's king is left attacked.
// Castling is the exception: rights, empty path and the unattacked
// start/transit/destination squares are all checked here, so a castling
// move that survives generation is fully legal.
func (b *Board) GeneratePseudoMoves() []Move {
	return b.appendPseudoMoves(make([]Move, 0, 64))
}

func (b *Board) appendPseudoMoves(moves []Move) []Move {
	us := b.sideToMove
	them := us.Other()
	own := b.occ[us]
	opp := b.occ[them]
	all := own | opp

	moves = b.appendPawnMoves(moves, us, opp, all)

	knights := b.pieceBB[us][Knight]
	for knights != 0 {
		from := popLSB(&knights)
		moves = appendTargets(moves, from, knightAttacks[from]&^own)
	}

	bishops := b.pieceBB[us][Bishop]
	for bishops != 0 {
		from := popLSB(&bishops)
		moves = appendTargets(moves, from, bishopAttacks(from, all)&^own)
	}

	rooks := b.pieceBB[us][Rook]
	for rooks != 0 {
		from := popLSB(&rooks)
		moves = appendTargets(moves, from, rookAttacks(from, all)&^own)
	}

	queens := b.pieceBB[us][Queen]
	for queens != 0 {
		from := popLSB(&queens)
		moves = appendTargets(moves, from, (rookAttacks(from, all)|bishopAttacks(from, all))&^own)
	}

	if ks := b.KingSquare(us); ks != NoSquare {
		moves = appendTargets(moves, int(ks), kingAttacks[ks]&^own)
		moves = b.appendCastles(moves, us, them)
	}

	return moves
}

func appendTargets(moves []Move, from int, targets uint64) []Move {
	for targets != 0 {
		to := popLSB(&targets)
		moves = append(moves, NewMove(Square(from), Square(to), NoPieceType, FlagNone))
	}
	return moves
}

func (b *Board) appendPawnMoves(moves []Move, us Color, opp, all uint64) []Move {
	push := 8
	doubleRank, promoRank := 1, 7
	if us == Black {
		push = -8
		doubleRank, promoRank = 6, 0
	}

	pawns := b.pieceBB[us][Pawn]
	for pawns != 0 {
		from := popLSB(&pawns)

		one := from + push
		if one >= 0 && one < 64 && all>>uint(one)&1 == 0 {
			moves = appendPawnTarget(moves, from, one, promoRank)
			if from/8 == doubleRank {
				two := from + 2*push
				if all>>uint(two)&1 == 0 {
					moves = append(moves, NewMove(Square(from), Square(two), NoPieceType, FlagNone))
				}
			}
		}

		caps := pawnCaptures[us][from]
		for t := caps & opp; t != 0; {
			to := popLSB(&t)
			moves = appendPawnTarget(moves, from, to, promoRank)
		}
		if b.epSquare != NoSquare && caps>>uint(b.epSquare)&1 != 0 {
			moves = append(moves, NewMove(Square(from), b.epSquare, NoPieceType, FlagEnPassant))
		}
	}
	return moves
}

func appendPawnTarget(moves []Move, from, to, promoRank int) []Move {
	if to/8 != promoRank {
		return append(moves, NewMove(Square(from), Square(to), NoPieceType, FlagNone))
	}
	for _, p := range promotionOrder {
		moves = append(moves, NewMove(Square(from), Square(to), p, FlagNone))
	}
	return moves
}

// appendCastles emits castling moves when the right survives, the squares
// between king and rook are empty, the rook still stands on its home
// square, and none of the king's start, transit or destination squares is
// attacked.
func (b *Board) appendCastles(moves []Move, us, them Color) []Move {
	type castle struct {
		right    CastlingRights
		kingFrom Square
		kingTo   Square
		transit  Square
		empty    []Square
		rookHome Square
	}
	var sides [2]castle
	if us == White {
		sides = [2]castle{
			{CastleWhiteKing, E1, G1, F1, []Square{F1, G1}, H1},
			{CastleWhiteQueen, E1, C1, D1, []Square{B1, C1, D1}, A1},
		}
	} else {
		sides = [2]castle{
			{CastleBlackKing, E8, G8, F8, []Square{F8, G8}, H8},
			{CastleBlackQueen, E8, C8, D8, []Square{B8, C8, D8}, A8},
		}
	}

	rook := MakePiece(us, Rook)
	for _, c := range sides {
		if b.castling&c.right == 0 || b.squares[c.rookHome] != rook {
			continue
		}
		clear := true
		for _, sq := range c.empty {
			if b.squares[sq] != NoPiece {
				clear = false
				break
			}
		}
		if !clear {
			continue
		}
		if b.AttackedBy(c.kingFrom, them) || b.AttackedBy(c.transit, them) || b.AttackedBy(c.kingTo, them) {
			continue
		}
		moves = append(moves, NewMove(c.kingFrom, c.kingTo, NoPieceType, FlagCastle))
	}
	return moves
}
