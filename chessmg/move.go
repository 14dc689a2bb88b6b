package chessmg

import (
	"errors"
	"strings"
)

// Move packs a move into one word: bits 0-5 origin square, 6-11
// destination, 12-14 promotion piece type, 15-16 special flag. The moved
// and captured pieces are not stored; the board is the source of truth at
// apply time, which keeps move equality structural (from, to, promotion).
type Move uint32

const (
	moveToShift    = 6
	movePromoShift = 12
	moveFlagShift  = 15
)

// Special move flags.
const (
	FlagNone      uint8 = 0
	FlagCastle    uint8 = 1
	FlagEnPassant uint8 = 2
)

// ErrMoveSyntax is returned when a move string cannot be parsed at all.
var ErrMoveSyntax = errors.New("malformed move notation")

// NewMove builds a Move. promo is NoPieceType except for promotions.
func NewMove(from, to Square, promo PieceType, flag uint8) Move {
	return Move(uint32(from&0x3F) |
		uint32(to&0x3F)<<moveToShift |
		uint32(promo&0x7)<<movePromoShift |
		uint32(flag&0x3)<<moveFlagShift)
}

// From returns the origin square.
func (m Move) From() Square { return Square(m & 0x3F) }

// To returns the destination square.
func (m Move) To() Square { return Square(m >> moveToShift & 0x3F) }

// Promotion returns the promotion piece type, or NoPieceType.
func (m Move) Promotion() PieceType { return PieceType(m >> movePromoShift & 0x7) }

// Flag returns the special move flag.
func (m Move) Flag() uint8 { return uint8(m >> moveFlagShift & 0x3) }

// Matches reports structural equality: same origin, destination and
// promotion. Flags are derived state and do not participate.
func (m Move) Matches(o Move) bool {
	return m.From() == o.From() && m.To() == o.To() && m.Promotion() == o.Promotion()
}

// String renders coordinate notation: four characters, five for
// promotions ("e2e4", "e7e8q"). Castling is the king's two-square move.
func (m Move) String() string {
	s := m.From().String() + m.To().String()
	if p := m.Promotion(); p != NoPieceType {
		s += string(typeLetters[p])
	}
	return s
}

// ParseMove parses coordinate notation into a Move. The result carries no
// castling or en-passant flag; ResolveMove derives those from a board.
func ParseMove(notation string) (Move, error) {
	s := strings.ToLower(strings.TrimSpace(notation))
	if len(s) < 4 || len(s) > 5 {
		return 0, ErrMoveSyntax
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return 0, ErrMoveSyntax
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return 0, ErrMoveSyntax
	}
	promo := NoPieceType
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promo = Queen
		case 'r':
			promo = Rook
		case 'b':
			promo = Bishop
		case 'n':
			promo = Knight
		default:
			return 0, ErrMoveSyntax
		}
	}
	return NewMove(from, to, promo, FlagNone), nil
}

// ResolveMove fills in the castling or en-passant flag a bare coordinate
// move implies on this board: a king stepping two files castles, a pawn
// moving diagonally onto the en-passant target captures en passant.
func (b *Board) ResolveMove(m Move) Move {
	p := b.squares[m.From()]
	fileDiff := m.From().File() - m.To().File()
	if fileDiff < 0 {
		fileDiff = -fileDiff
	}
	switch {
	case p.Type() == King && fileDiff == 2:
		return NewMove(m.From(), m.To(), m.Promotion(), FlagCastle)
	case p.Type() == Pawn && fileDiff != 0 && m.To() == b.epSquare:
		return NewMove(m.From(), m.To(), m.Promotion(), FlagEnPassant)
	}
	return m
}
