package chessmg_test

import (
	"errors"
	"testing"

	"chess-rules/chessmg"
)

func TestParseFEN_StartPosRoundTrip(t *testing.T) {
	b, err := chessmg.ParseFEN(chessmg.FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	if got := b.FEN(); got != chessmg.FENStartPos {
		t.Fatalf("round trip mismatch:\n got %s\nwant %s", got, chessmg.FENStartPos)
	}
	if b.SideToMove() != chessmg.White {
		t.Fatalf("expected White to move")
	}
	if b.EnPassant() != chessmg.NoSquare {
		t.Fatalf("expected no en passant square, got %v", b.EnPassant())
	}
}

func TestParseFEN_RoundTrip(t *testing.T) {
	fens := []string{
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/ppp2ppp/4p3/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
		"8/8/3k4/p2p2p1/P2P2P1/3K4/8/8 w - - 99 140",
		"4k3/8/8/8/8/8/8/4K2R w K - 12 60",
	}
	for _, fen := range fens {
		b, err := chessmg.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q) failed: %v", fen, err)
		}
		if got := b.FEN(); got != fen {
			t.Errorf("round trip mismatch:\n got %s\nwant %s", got, fen)
		}
	}
}

func TestParseFEN_Fields(t *testing.T) {
	b, err := chessmg.ParseFEN("rnbqkbnr/ppp2ppp/4p3/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 4 3")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	if b.EnPassant() != sq(t, "d6") {
		t.Fatalf("en passant: got %v want d6", b.EnPassant())
	}
	if b.HalfmoveClock() != 4 {
		t.Fatalf("halfmove clock: got %d want 4", b.HalfmoveClock())
	}
	if b.FullmoveNumber() != 3 {
		t.Fatalf("fullmove number: got %d want 3", b.FullmoveNumber())
	}
	if b.Castling() != chessmg.CastleWhiteKing|chessmg.CastleWhiteQueen|chessmg.CastleBlackKing|chessmg.CastleBlackQueen {
		t.Fatalf("castling: got %v", b.Castling())
	}
	if got := b.PieceAt(sq(t, "e5")); got != chessmg.MakePiece(chessmg.White, chessmg.Pawn) {
		t.Fatalf("e5: got %v", got)
	}
}

// sq parses an algebraic square name, failing the test on bad input.
func sq(t *testing.T, name string) chessmg.Square {
	t.Helper()
	s, err := chessmg.ParseSquare(name)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestParseFEN_Malformed(t *testing.T) {
	cases := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"too few fields", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"},
		{"too many fields", chessmg.FENStartPos + " extra"},
		{"seven ranks", "rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"nine files", "rnbqkbnrr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"rank too short", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"bad piece letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1"},
		{"no white king", "rnbq1bnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQ1BNR w - - 0 1"},
		{"two white kings", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNK w KQkq - 0 1"},
		{"bad side", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1"},
		{"bad castling", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQxq - 0 1"},
		{"bad ep square", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1"},
		{"negative halfmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1"},
		{"zero fullmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := chessmg.ParseFEN(tc.fen); !errors.Is(err, chessmg.ErrInvalidFEN) {
				t.Fatalf("ParseFEN(%q): got err %v, want ErrInvalidFEN", tc.fen, err)
			}
		})
	}
}

func TestParseFEN_HashMatchesRecompute(t *testing.T) {
	// Two routes to the same position must agree on the signature: parsing
	// it directly, and reaching it by playing moves.
	b, err := chessmg.ParseFEN(chessmg.FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"e2e4", "c7c5", "g1f3"} {
		m, err := chessmg.ParseMove(s)
		if err != nil {
			t.Fatal(err)
		}
		b.ApplyMove(b.ResolveMove(m))
	}
	direct, err := chessmg.ParseFEN(b.FEN())
	if err != nil {
		t.Fatal(err)
	}
	if direct.Hash() != b.Hash() {
		t.Fatalf("hash mismatch: played %#x parsed %#x", b.Hash(), direct.Hash())
	}
}
