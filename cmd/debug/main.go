package main

import (
	"flag"
	"fmt"
	"log"

	"janggi/internal/janggi"
)

func main() {
	fen := flag.String("fen", "", "position to inspect (default: starting position)")
	from := flag.String("from", "", "also list legal destinations of this square, e.g. c7")
	flag.Parse()

	pos := janggi.NewInitialPosition()
	if *fen != "" {
		p, err := janggi.DecodePosition(*fen)
		if err != nil {
			log.Fatalf("decode %q: %v", *fen, err)
		}
		pos = p
	}

	fmt.Print(pos.Board.String())
	fmt.Println("FEN:", pos.Encode())
	fmt.Println("To move:", pos.SideToMove)
	fmt.Println("Pseudo moves:", len(pos.Board.GeneratePseudoMovesForSide(pos.SideToMove)))
	fmt.Println("Legal moves:", len(pos.Board.GenerateLegalMoves(pos.SideToMove)))
	for _, side := range []janggi.Side{janggi.Blue, janggi.Red} {
		fmt.Printf("%s: check=%v checkmate=%v\n", side, pos.Board.IsInCheck(side), pos.Board.IsInCheckmate(side))
	}

	if *from != "" {
		sq, err := janggi.ParseSquare(*from)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s %s ->", sq, pos.Board.Get(sq))
		for _, to := range pos.Board.LegalDestinations(sq) {
			fmt.Print(" ", to)
		}
		fmt.Println()
	}
}
