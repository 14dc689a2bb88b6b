// Command play is a minimal interactive driver for the rules engine:
// it reads commands from stdin, applies coordinate-notation moves, and
// can save and resume games through the gamestore.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"chess-rules/chessmg"
	"chess-rules/game"
	"chess-rules/gamestore"
)

func main() {
	dbDir := flag.String("db", "", "game store directory (defaults to the platform data dir)")
	flag.Parse()

	g := game.New()
	var store *gamestore.Store
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	openStore := func() (*gamestore.Store, error) {
		if store != nil {
			return store, nil
		}
		var err error
		if *dbDir != "" {
			store, err = gamestore.Open(*dbDir)
		} else {
			store, err = gamestore.OpenDefault()
		}
		return store, err
	}

	fmt.Println("chess-rules interactive driver; type 'help' for commands")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		b := g.Board()
		fmt.Printf("[%s] %s> ", g.Status(), b.SideToMove())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		switch parts[0] {
		case "quit", "exit":
			return
		case "help":
			fmt.Println("new | fen <FEN> | move <e2e4> [force] | moves | status | board | save <id> | load <id> | games | del <id> | quit")
		case "new":
			_ = g.Reset()
		case "fen":
			if len(parts) < 7 {
				fmt.Println("usage: fen <six-field FEN>")
				continue
			}
			if err := g.Reset(strings.Join(parts[1:], " ")); err != nil {
				fmt.Println(err)
			}
		case "move":
			if len(parts) < 2 {
				fmt.Println("usage: move <e2e4> [force]")
				continue
			}
			validate := !(len(parts) > 2 && parts[2] == "force")
			if err := g.ApplyMove(parts[1], validate); err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Println(g)
		case "moves":
			fmt.Println(strings.Join(g.Moves(), " "))
		case "status":
			fmt.Println(g.Status())
		case "board":
			printBoard(g.Board())
		case "save":
			if len(parts) < 2 {
				fmt.Println("usage: save <id>")
				continue
			}
			s, err := openStore()
			if err != nil {
				fmt.Println(err)
				continue
			}
			hist := g.FENHistory()
			rec := &gamestore.Record{
				ID:       parts[1],
				StartFEN: hist[0],
				Moves:    g.MoveHistory(),
				FEN:      g.String(),
				Status:   g.Status().String(),
			}
			if err := s.Save(rec); err != nil {
				fmt.Println(err)
			}
		case "load":
			if len(parts) < 2 {
				fmt.Println("usage: load <id>")
				continue
			}
			s, err := openStore()
			if err != nil {
				fmt.Println(err)
				continue
			}
			rec, err := s.Load(parts[1])
			if err != nil {
				if errors.Is(err, gamestore.ErrNotFound) {
					fmt.Printf("no saved game %q\n", parts[1])
				} else {
					fmt.Println(err)
				}
				continue
			}
			if err := replay(g, rec); err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Println(g)
		case "games":
			s, err := openStore()
			if err != nil {
				fmt.Println(err)
				continue
			}
			ids, err := s.List()
			if err != nil {
				fmt.Println(err)
				continue
			}
			for _, id := range ids {
				fmt.Println(id)
			}
		case "del":
			if len(parts) < 2 {
				fmt.Println("usage: del <id>")
				continue
			}
			s, err := openStore()
			if err != nil {
				fmt.Println(err)
				continue
			}
			if err := s.Delete(parts[1]); err != nil {
				fmt.Println(err)
			}
		default:
			fmt.Printf("unknown command %q\n", parts[0])
		}
	}
}

// replay rebuilds a game from its start position and move list so the
// repetition history is reconstructed, not just the final FEN.
func replay(g *game.Game, rec *gamestore.Record) error {
	if err := g.Reset(rec.StartFEN); err != nil {
		return err
	}
	for _, mv := range rec.Moves {
		if err := g.ApplyMove(mv, true); err != nil {
			return fmt.Errorf("saved game is corrupt at %q: %w", mv, err)
		}
	}
	return nil
}

func printBoard(b chessmg.Board) {
	for rank := 7; rank >= 0; rank-- {
		fmt.Printf("%d ", rank+1)
		for file := 0; file < 8; file++ {
			p := b.PieceAt(chessmg.SquareAt(file, rank))
			if p == chessmg.NoPiece {
				fmt.Print(" .")
			} else {
				fmt.Printf(" %c", p.Letter())
			}
		}
		fmt.Println()
	}
	fmt.Println("   a b c d e f g h")
}
