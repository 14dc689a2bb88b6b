package chessmg_test

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"chess-rules/chessmg"
)

// perftCases are the standard perft positions with published node counts.
var perftCases = []struct {
	name   string
	fen    string
	counts []uint64 // counts[i] is the node count at depth i+1
}{
	{
		name:   "initial",
		fen:    chessmg.FENStartPos,
		counts: []uint64{20, 400, 8902, 197281},
	},
	{
		name:   "kiwipete",
		fen:    "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		counts: []uint64{48, 2039, 97862},
	},
	{
		name:   "endgame",
		fen:    "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		counts: []uint64{14, 191, 2812, 43238},
	},
	{
		name:   "promotion heavy",
		fen:    "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		counts: []uint64{6, 264, 9467},
	},
	{
		name:   "symmetric middlegame",
		fen:    "r4rk1/1pp1qppp/p1np1n2/2b1p1b1/2B1P1B1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
		counts: []uint64{46, 2079, 89890},
	},
}

func TestPerft(t *testing.T) {
	for _, tc := range perftCases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := chessmg.ParseFEN(tc.fen)
			if err != nil {
				t.Fatalf("ParseFEN failed: %v", err)
			}
			for depth, want := range tc.counts {
				if got := chessmg.Perft(b, depth+1); got != want {
					t.Fatalf("perft depth %d: got %d want %d", depth+1, got, want)
				}
			}
		})
	}
}

func TestPerftDivide_SumsToPerft(t *testing.T) {
	b, err := chessmg.ParseFEN(chessmg.FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	div := chessmg.PerftDivide(b, 3)
	if len(div) != 20 {
		t.Fatalf("root move count: got %d want 20", len(div))
	}
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if want := chessmg.Perft(b, 3); sum != want {
		t.Fatalf("divide sum %d != perft %d", sum, want)
	}
}

// TestPerft_AgainstDragontooth cross-checks node counts against an
// independent move generator over tactical positions exercising en
// passant, promotions and castling edge cases.
func TestPerft_AgainstDragontooth(t *testing.T) {
	fens := []string{
		"rnbqkbnr/ppp2ppp/4p3/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
		"r3k2r/8/8/8/8/8/8/3RKR2 b kq - 0 1",
		"3qk1b1/P7/8/8/8/8/7P/4K3 w - - 0 1",
		"8/8/3k4/p2p2p1/P2P2P1/3K4/8/8 w - - 0 1",
		"r3k2r/pppqbppp/3pb3/8/8/3PB3/PPPQBPPP/R3K2R w KQkq - 0 7",
		"1k2r3/4N3/1r1RK3/3BQPp1/8/8/8/8 w - g6 0 1",
	}
	const depth = 3
	for _, fen := range fens {
		b, err := chessmg.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q) failed: %v", fen, err)
		}
		ref := dragontoothmg.ParseFen(fen)
		want := uint64(dragontoothmg.Perft(&ref, depth))
		if got := chessmg.Perft(b, depth); got != want {
			t.Errorf("%s: perft(%d) got %d want %d", fen, depth, got, want)
		}
	}
}
