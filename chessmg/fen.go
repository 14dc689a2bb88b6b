package chessmg

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// FENStartPos is the standard initial position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrInvalidFEN is wrapped by every ParseFEN failure.
var ErrInvalidFEN = errors.New("invalid FEN")

func fenErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidFEN, fmt.Sprintf(format, args...))
}

// ParseFEN parses the six-field position record into a Board. The input
// is validated strictly: wrong field count, unknown piece letters, ranks
// not summing to eight files, duplicate or missing kings, and malformed
// clock fields are all rejected rather than repaired.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fenErr("want 6 fields, got %d", len(fields))
	}

	b := &Board{epSquare: NoSquare, fullmove: 1}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fenErr("want 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			p := PieceFromLetter(ch)
			if p == NoPiece {
				return nil, fenErr("unknown piece letter %q", ch)
			}
			if file > 7 {
				return nil, fenErr("rank %d overflows 8 files", rank+1)
			}
			b.put(SquareAt(file, rank), p)
			file++
		}
		if file != 8 {
			return nil, fenErr("rank %d describes %d files", rank+1, file)
		}
	}
	if bits.OnesCount64(b.pieceBB[White][King]) != 1 || bits.OnesCount64(b.pieceBB[Black][King]) != 1 {
		return nil, fenErr("each side must have exactly one king")
	}

	switch fields[1] {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
	default:
		return nil, fenErr("side to move must be w or b, got %q", fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				b.castling |= CastleWhiteKing
			case 'Q':
				b.castling |= CastleWhiteQueen
			case 'k':
				b.castling |= CastleBlackKing
			case 'q':
				b.castling |= CastleBlackQueen
			default:
				return nil, fenErr("bad castling flag %q", ch)
			}
		}
	}

	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, fenErr("bad en-passant target %q", fields[3])
		}
		b.epSquare = sq
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return nil, fenErr("bad halfmove clock %q", fields[4])
	}
	b.halfmove = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return nil, fenErr("bad fullmove number %q", fields[5])
	}
	b.fullmove = fullmove

	b.hash = b.computeHash()
	return b, nil
}

// FEN serializes the position back to the six-field record. The output
// round-trips through ParseFEN for every field the board maintains.
func (b *Board) FEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.squares[SquareAt(file, rank)]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if b.castling == 0 {
		sb.WriteByte('-')
	} else {
		for _, fl := range [4]struct {
			right  CastlingRights
			letter byte
		}{
			{CastleWhiteKing, 'K'},
			{CastleWhiteQueen, 'Q'},
			{CastleBlackKing, 'k'},
			{CastleBlackQueen, 'q'},
		} {
			if b.castling&fl.right != 0 {
				sb.WriteByte(fl.letter)
			}
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(b.epSquare.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfmove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmove))
	return sb.String()
}
