// Package chessmg implements the rules of standard chess: board
// representation, attack queries, pseudo-legal and legal move generation,
// move application, and FEN serialization. It knows nothing about search
// or evaluation.
package chessmg

import (
	"fmt"
	"math/bits"
)

// Color identifies a side. White is 0 so it can index arrays directly.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType is a colorless piece kind. Values 1..6 index bitboard tables.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Piece packs a PieceType and a Color into one byte: bits 0-2 hold the
// type, bit 3 the color. The zero value is the empty square.
type Piece uint8

const NoPiece Piece = 0

// MakePiece combines a side and a kind into a Piece.
func MakePiece(c Color, t PieceType) Piece {
	if t == NoPieceType {
		return NoPiece
	}
	return Piece(t) | Piece(c)<<3
}

// Type returns the colorless kind of the piece.
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece reads as White.
func (p Piece) Color() Color { return Color(p >> 3) }

const typeLetters = "?pnbrqk"

// Letter returns the FEN letter for the piece: uppercase for White,
// lowercase for Black.
func (p Piece) Letter() byte {
	l := typeLetters[p.Type()]
	if p.Color() == White {
		return l &^ 0x20
	}
	return l
}

// PieceFromLetter converts a FEN piece letter to a Piece, or NoPiece when
// the letter is not one of pnbrqk in either case.
func PieceFromLetter(ch byte) Piece {
	c := White
	if ch >= 'a' && ch <= 'z' {
		c = Black
	}
	lower := ch | 0x20
	for t := Pawn; t <= King; t++ {
		if typeLetters[t] == lower {
			return MakePiece(c, t)
		}
	}
	return NoPiece
}

// Square is a board coordinate in 0..63, a1=0, h1=7, a8=56.
type Square int

const NoSquare Square = -1

// SquareAt builds a Square from a file and rank, both 0..7.
func SquareAt(file, rank int) Square { return Square(rank*8 + file) }

// File returns the square's file, 0..7 for a..h.
func (s Square) File() int { return int(s) % 8 }

// Rank returns the square's rank, 0..7 for 1..8.
func (s Square) Rank() int { return int(s) / 8 }

func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}

// ParseSquare converts algebraic coordinates like "e4" into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	return SquareAt(int(s[0]-'a'), int(s[1]-'1')), nil
}

// CastlingRights is a bitmask of the four castling permissions. A right
// is revoked permanently once the relevant king or rook moves or the rook
// is captured; it is never re-granted.
type CastlingRights uint8

const (
	CastleWhiteKing CastlingRights = 1 << iota
	CastleWhiteQueen
	CastleBlackKing
	CastleBlackQueen
)

// castleRevoke maps a square to the rights lost when a move starts or
// ends there. The set of rights a move can void depends only on the
// squares it touches, regardless of which piece moves.
var castleRevoke [64]CastlingRights

func init() {
	castleRevoke[A1] = CastleWhiteQueen
	castleRevoke[E1] = CastleWhiteKing | CastleWhiteQueen
	castleRevoke[H1] = CastleWhiteKing
	castleRevoke[A8] = CastleBlackQueen
	castleRevoke[E8] = CastleBlackKing | CastleBlackQueen
	castleRevoke[H8] = CastleBlackKing
}

// Named squares used by castling and tests.
const (
	A1 Square = 0
	B1 Square = 1
	C1 Square = 2
	D1 Square = 3
	E1 Square = 4
	F1 Square = 5
	G1 Square = 6
	H1 Square = 7
	A8 Square = 56
	B8 Square = 57
	C8 Square = 58
	D8 Square = 59
	E8 Square = 60
	F8 Square = 61
	G8 Square = 62
	H8 Square = 63
)

// Board is a complete chess position: bitboards per (color, piece type),
// a mailbox array mirroring them, and the non-placement state fields. It
// is a flat value, so `next := *b` yields an independent scratch copy.
//
// A Board is not safe for concurrent use; callers own it exclusively for
// the duration of each call.
type Board struct {
	pieceBB [2][7]uint64 // [color][PieceType], index 0 unused
	occ     [2]uint64
	squares [64]Piece

	sideToMove Color
	castling   CastlingRights
	epSquare   Square
	halfmove   int
	fullmove   int

	hash uint64
}

// PieceAt returns the piece on the square, or NoPiece.
func (b *Board) PieceAt(sq Square) Piece { return b.squares[sq] }

// Pieces returns the bitboard of the given side's pieces of one kind.
func (b *Board) Pieces(c Color, t PieceType) uint64 { return b.pieceBB[c][t] }

// Occupied returns the occupancy bitboard for one side.
func (b *Board) Occupied(c Color) uint64 { return b.occ[c] }

// AllOccupied returns the bitboard of every occupied square.
func (b *Board) AllOccupied() uint64 { return b.occ[White] | b.occ[Black] }

// SideToMove reports whose turn it is.
func (b *Board) SideToMove() Color { return b.sideToMove }

// Castling returns the remaining castling rights.
func (b *Board) Castling() CastlingRights { return b.castling }

// EnPassant returns the current en-passant target square, or NoSquare.
// The target is valid for exactly the move after a double pawn push.
func (b *Board) EnPassant() Square { return b.epSquare }

// HalfmoveClock counts half-moves since the last pawn move or capture.
func (b *Board) HalfmoveClock() int { return b.halfmove }

// FullmoveNumber starts at 1 and increments after each Black move.
func (b *Board) FullmoveNumber() int { return b.fullmove }

// Hash returns the position signature: a Zobrist key over piece
// placement, side to move, castling rights and en-passant file. Two
// positions repeat, for the threefold rule, exactly when their hashes
// match (move counters are deliberately excluded).
func (b *Board) Hash() uint64 { return b.hash }

// KingSquare locates the given side's king, or NoSquare on a malformed
// board. ParseFEN guarantees exactly one king per side.
func (b *Board) KingSquare(c Color) Square {
	kings := b.pieceBB[c][King]
	if kings == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(kings))
}

// put places a piece on an empty square, keeping bitboards, mailbox and
// hash in sync.
func (b *Board) put(sq Square, p Piece) {
	bit := uint64(1) << uint(sq)
	c := p.Color()
	b.squares[sq] = p
	b.pieceBB[c][p.Type()] |= bit
	b.occ[c] |= bit
	b.hash ^= zobristPiece[c][p.Type()][sq]
}

// lift removes and returns the piece on a square.
func (b *Board) lift(sq Square) Piece {
	p := b.squares[sq]
	if p == NoPiece {
		return NoPiece
	}
	bit := uint64(1) << uint(sq)
	c := p.Color()
	b.squares[sq] = NoPiece
	b.pieceBB[c][p.Type()] &^= bit
	b.occ[c] &^= bit
	b.hash ^= zobristPiece[c][p.Type()][sq]
	return p
}

func (b *Board) setCastling(cr CastlingRights) {
	b.hash ^= zobristCastle[b.castling] ^ zobristCastle[cr]
	b.castling = cr
}

func (b *Board) setEnPassant(sq Square) {
	if b.epSquare != NoSquare {
		b.hash ^= zobristEnPassant[b.epSquare.File()]
	}
	b.epSquare = sq
	if sq != NoSquare {
		b.hash ^= zobristEnPassant[sq.File()]
	}
}

func (b *Board) toggleSide() {
	b.sideToMove = b.sideToMove.Other()
	b.hash ^= zobristSide
}

// popLSB removes and returns the index of the lowest set bit.
func popLSB(mask *uint64) int {
	idx := bits.TrailingZeros64(*mask)
	*mask &= *mask - 1
	return idx
}
