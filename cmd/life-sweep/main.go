package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"golang.org/x/sync/errgroup"

	"lifeboard/internal/core"
	"lifeboard/internal/life"
)

type trialResult struct {
	seed           int64
	initialDensity float64
	finalPop       int
	generations    int
	extinct        bool
	stagnant       bool
}

func main() {
	trials := flag.Int("trials", 64, "number of random boards to simulate")
	generations := flag.Int("generations", 500, "maximum generations per board")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1, "seed of the first board; board i uses seed+i")
	flag.Parse()

	if *trials <= 0 || *generations < 0 {
		log.Fatalf("trials must be positive and generations non-negative")
	}
	if *workers <= 0 {
		*workers = 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := sweep(ctx, *trials, *generations, *workers, *seed)
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}
	report(results, *generations)
}

func sweep(ctx context.Context, trials, generations, workers int, seed int64) ([]trialResult, error) {
	results := make([]trialResult, trials)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range results {
		i := i
		eg.Go(func() error {
			res, err := runTrial(ctx, seed+int64(i), generations)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// runTrial steps a random board until it dies out, settles, or reaches the
// generation limit.
func runTrial(ctx context.Context, seed int64, generations int) (trialResult, error) {
	board := life.NewBoard(core.NewRNG(seed))
	res := trialResult{
		seed:           seed,
		initialDensity: float64(board.Population()) / float64(life.Rows*life.Cols),
	}
	for board.Generation() < generations {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := board.Step(); err != nil {
			return res, err
		}
		if board.Population() == 0 || board.Stagnant() {
			break
		}
	}
	res.finalPop = board.Population()
	res.generations = board.Generation()
	res.extinct = res.finalPop == 0
	res.stagnant = board.Stagnant()
	return res, nil
}

func report(results []trialResult, limit int) {
	var density, pop, gens float64
	extinct, stagnant, active := 0, 0, 0
	for _, r := range results {
		density += r.initialDensity
		pop += float64(r.finalPop)
		gens += float64(r.generations)
		switch {
		case r.extinct:
			extinct++
		case r.stagnant:
			stagnant++
		default:
			active++
		}
	}
	n := float64(len(results))
	fmt.Printf("boards: %d  grid: %dx%d  limit: %d generations\n", len(results), life.Rows, life.Cols, limit)
	fmt.Printf("mean initial density: %.4f\n", density/n)
	fmt.Printf("mean final population: %.1f  mean generations: %.1f\n", pop/n, gens/n)
	fmt.Printf("extinct: %d  settled: %d  still active: %d\n", extinct, stagnant, active)
}
