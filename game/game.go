// Package game drives a chess game over the chessmg rules core: it owns
// the position and its history, classifies the game status after every
// change, and exposes the coordinate-notation operations a game loop
// needs. A Game performs no internal locking; callers that share one
// across goroutines must serialize access themselves.
package game

import (
	"fmt"

	"golang.org/x/exp/slices"

	"chess-rules/chessmg"
)

// Game is the mutable aggregate: a position plus the histories that the
// position alone cannot carry (FEN snapshots, played moves, and the
// signature counts driving threefold-repetition detection).
type Game struct {
	board    chessmg.Board
	fens     []string
	moves    []string
	sigCount map[uint64]int
	status   Status
}

// New starts a game from the standard initial position.
func New() *Game {
	g := &Game{}
	// The start position always parses.
	if err := g.Reset(); err != nil {
		panic(err)
	}
	return g
}

// NewFromFEN starts a game from an encoded position.
func NewFromFEN(fen string) (*Game, error) {
	g := &Game{}
	if err := g.Reset(fen); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset replaces the position wholesale, with the standard initial
// layout or with the parsed FEN when one is supplied, clears the
// histories down to a single entry for the new position, and recomputes
// the status. A parse failure leaves the game unchanged.
func (g *Game) Reset(fen ...string) error {
	start := chessmg.FENStartPos
	if len(fen) > 0 {
		start = fen[0]
	}
	b, err := chessmg.ParseFEN(start)
	if err != nil {
		return err
	}
	g.board = *b
	g.fens = []string{g.board.FEN()}
	g.moves = nil
	g.sigCount = map[uint64]int{g.board.Hash(): 1}
	g.classify()
	return nil
}

// String returns the current position as a FEN record.
func (g *Game) String() string { return g.board.FEN() }

// Board returns a copy of the current position.
func (g *Game) Board() chessmg.Board { return g.board }

// Status returns the label computed after the last mutation.
func (g *Game) Status() Status { return g.status }

// FENHistory returns the FEN of every position seen since the last
// reset, oldest first, including the current one.
func (g *Game) FENHistory() []string { return slices.Clone(g.fens) }

// MoveHistory returns the notation of every move applied since the last
// reset.
func (g *Game) MoveHistory() []string { return slices.Clone(g.moves) }

// Moves returns the legal moves for the side to move in coordinate
// notation, sorted. Computed fresh on every call.
func (g *Game) Moves() []string {
	legal := g.board.GenerateLegalMoves()
	out := make([]string, len(legal))
	for i, m := range legal {
		out[i] = m.String()
	}
	slices.Sort(out)
	return out
}

// ApplyMove plays a move given in coordinate notation. With validate set,
// the move must match the current legal set structurally (origin,
// destination and promotion piece all included) or ErrIllegalMove is
// returned and the game is untouched. Without validation the move is
// trusted and applied directly; feeding an illegal move down that path is
// caller error and yields a meaningless (though internally consistent)
// game. Unparseable notation yields ErrMalformedMove either way.
func (g *Game) ApplyMove(notation string, validate bool) error {
	m, err := chessmg.ParseMove(notation)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrMalformedMove, notation)
	}

	if validate {
		found := false
		for _, lm := range g.board.GenerateLegalMoves() {
			if lm.Matches(m) {
				m = lm // adopt the generated flags
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: %q in %s", ErrIllegalMove, notation, g.board.FEN())
		}
	} else {
		m = g.board.ResolveMove(m)
	}

	g.board.ApplyMove(m)
	g.moves = append(g.moves, m.String())
	g.fens = append(g.fens, g.board.FEN())
	g.sigCount[g.board.Hash()]++
	g.classify()
	return nil
}

// classify recomputes the status for the side now to move. Checkmate and
// stalemate take precedence; draw conditions are consulted only when
// moves remain.
func (g *Game) classify() {
	inCheck := g.board.InCheck(g.board.SideToMove())
	if !g.board.HasLegalMoves() {
		if inCheck {
			g.status = Checkmate
		} else {
			g.status = Stalemate
		}
		return
	}
	if g.isDraw() {
		g.status = Draw
		return
	}
	if inCheck {
		g.status = Check
	} else {
		g.status = Normal
	}
}
