package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

func main() {
	games := flag.Int("games", 50, "number of games to play")
	maxPlies := flag.Int("maxplies", 300, "stop a game after this many plies")
	parallel := flag.Int("parallel", 4, "games played concurrently")
	seed := flag.Int64("seed", time.Now().UnixNano(), "base random seed")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	verbose := flag.Bool("v", false, "log every finished game")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof listening on %s", *pprofAddr)
			if err := http.ListenAndServe(*pprofAddr, nil); err != nil {
				log.Printf("pprof failed: %v", err)
			}
		}()
	}

	log.Printf("selfplay: %d games, %d plies max, seed %d", *games, *maxPlies, *seed)

	var (
		mu  sync.Mutex
		sum tally
	)
	start := time.Now()
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*parallel)
	for i := 0; i < *games; i++ {
		gameSeed := *seed + int64(i)
		idx := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := playGame(gameSeed, *maxPlies)
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", idx, gameSeed, err)
			}
			if *verbose {
				log.Printf("game %d: %s after %d plies (%d passes)", idx, res.State, res.Plies, res.Passes)
			}
			mu.Lock()
			sum.add(res)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("selfplay failed: %v", err)
		os.Exit(1)
	}

	dur := time.Since(start)
	fmt.Print(sum.String())
	fmt.Printf("Time: %v, plies/s: %d\n", dur.Round(time.Millisecond), int64(float64(sum.plies)/dur.Seconds()))
}
