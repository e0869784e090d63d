package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sort"

	"janggi/internal/janggi"
)

// TestCase is one position with every legal destination keyed by source
// square, for cross-checking another move generator.
type TestCase struct {
	FEN      string              `json:"fen"`
	Turn     int                 `json:"turn"`
	InCheck  bool                `json:"in_check"`
	Mate     bool                `json:"checkmate"`
	Moves    map[string][]string `json:"moves"`
	Played   *janggi.Move        `json:"played,omitempty"`
	NumMoves int                 `json:"num_moves"`
}

func main() {
	out := flag.String("out", "move_gen_test_data.json", "output file")
	numGames := flag.Int("games", 10, "random games to sample")
	maxMoves := flag.Int("maxmoves", 200, "plies per game")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	var testCases []TestCase
	seen := make(map[uint64]bool)
	dups := 0

	for gi := 0; gi < *numGames; gi++ {
		g := janggi.NewGame()
		for ply := 0; ply < *maxMoves && g.State() == janggi.Unfinished; ply++ {
			legal := g.LegalMoves()
			pos := g.Position()
			h := pos.Hash()
			fresh := !seen[h]
			seen[h] = true
			tc := TestCase{
				FEN:      pos.Encode(),
				Turn:     g.Turn(),
				InCheck:  g.IsInCheck(g.SideToMove()),
				Mate:     g.IsInCheckmate(g.SideToMove()),
				Moves:    make(map[string][]string),
				NumMoves: len(legal),
			}
			for _, mv := range legal {
				k := mv.From.String()
				tc.Moves[k] = append(tc.Moves[k], mv.To.String())
			}
			for _, v := range tc.Moves {
				sort.Strings(v)
			}

			// 随机选一步，没有合法走法就停着
			mv := janggi.Move{From: janggi.Sq(0, 0), To: janggi.Sq(0, 0)}
			if len(legal) > 0 {
				mv = legal[rng.Intn(len(legal))]
			}
			tc.Played = &mv
			if fresh {
				testCases = append(testCases, tc)
			} else {
				dups++
			}

			if err := g.MakeMove(mv.From, mv.To); err != nil {
				log.Fatalf("game %d ply %d: %s rejected: %v", gi, ply, mv, err)
			}
		}
	}

	data, err := json.MarshalIndent(testCases, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Generated %d test cases (%d repeated positions skipped) from %d random games to %s\n", len(testCases), dups, *numGames, *out)
}
