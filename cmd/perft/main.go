// Command perft counts move-generation leaf nodes for a position, with
// an optional cross-check against the dragontoothmg generator.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"chess-rules/chessmg"
)

func main() {
	fen := flag.String("fen", chessmg.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "perft depth (required)")
	divide := flag.Bool("divide", false, "print per-move node counts at root")
	check := flag.Bool("check", false, "cross-check the node count against dragontoothmg")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board, err := chessmg.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		div := chessmg.PerftDivide(board, *depth)
		moves := maps.Keys(div)
		slices.SortFunc(moves, func(a, b chessmg.Move) int {
			return strings.Compare(a.String(), b.String())
		})
		var sum uint64
		for _, m := range moves {
			fmt.Printf("%s: %d\n", m, div[m])
			sum += div[m]
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	start := time.Now()
	nodes := chessmg.Perft(board, *depth)
	elapsed := time.Since(start)
	fmt.Printf("perft(%d) = %d in %s (%.0f nodes/s)\n",
		*depth, nodes, elapsed, float64(nodes)/elapsed.Seconds())

	if *check {
		ref := dragontoothmg.ParseFen(*fen)
		want := uint64(dragontoothmg.Perft(&ref, *depth))
		if nodes != want {
			fmt.Fprintf(os.Stderr, "MISMATCH: dragontoothmg reports %d\n", want)
			os.Exit(1)
		}
		fmt.Println("dragontoothmg agrees")
	}
}
