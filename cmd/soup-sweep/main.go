package main

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"sort"
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	rng "github.com/taucannonfox/rustlife/pkg/core"
	"github.com/taucannonfox/rustlife/pkg/sims/life"
)

type soupResult struct {
	seed       int64
	initial    int
	final      int
	peak       int
	extinctAt  int
	generation int
}

func (r soupResult) String() string {
	extinct := "-"
	if r.extinctAt >= 0 {
		extinct = fmt.Sprint(r.extinctAt)
	}
	return fmt.Sprintf("seed=%d initial=%d final=%d peak=%d extinct=%s", r.seed, r.initial, r.final, r.peak, extinct)
}

func main() {
	cfg := life.DefaultConfig()
	seeds := 32
	firstSeed := int64(1)
	generations := 500
	workers := runtime.NumCPU()

	p := flaggy.NewParser("soup-sweep")
	p.Description = "Runs random soups headless and reports how their populations settle"
	p.Int(&cfg.Width, "W", "width", "Grid width")
	p.Int(&cfg.Height, "H", "height", "Grid height")
	p.Int(&seeds, "n", "seeds", "Number of consecutive seeds to run")
	p.Int64(&firstSeed, "s", "seed", "First seed")
	p.Int(&generations, "g", "generations", "Generations per soup")
	p.Int(&workers, "w", "workers", "Number of worker goroutines")
	if err := p.Parse(); err != nil {
		log.Fatal(err)
	}

	list := make([]int64, seeds)
	for i := range list {
		list[i] = firstSeed + int64(i)
	}

	fmt.Printf("Sweeping %d soups of %dx%d (%d workers, %d generations)\n", seeds, cfg.Width, cfg.Height, workers, generations)
	start := time.Now()
	results, err := sweep(context.Background(), cfg, list, generations, workers)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	extinct := 0
	total := 0
	for _, res := range results {
		total += res.final
		if res.extinctAt >= 0 {
			extinct++
		}
	}
	fmt.Printf("\nTop 5 results (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(results) && i < 5; i++ {
		fmt.Printf("%2d) %s\n", i+1, results[i])
	}
	if len(results) > 0 {
		fmt.Printf("\nMean final population %.1f, %d/%d soups died out\n", float64(total)/float64(len(results)), extinct, len(results))
	}
}

// sweep runs one soup per seed on a bounded pool and returns the results
// ordered by final population, largest first.
func sweep(ctx context.Context, cfg life.Config, seeds []int64, generations, workers int) ([]soupResult, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]soupResult, len(seeds))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, seed := range seeds {
		eg.Go(func() error {
			res, err := runSoup(ctx, cfg, seed, generations)
			if err != nil {
				return errors.Wrapf(err, "seed %d", seed)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].final > results[j].final })
	return results, nil
}

func runSoup(ctx context.Context, cfg life.Config, seed int64, generations int) (soupResult, error) {
	grid, err := life.New(cfg, life.FillRandom, rng.NewRNG(seed))
	if err != nil {
		return soupResult{}, err
	}
	res := soupResult{seed: seed, initial: grid.Population(), extinctAt: -1}
	res.peak = res.initial
	for gen := 1; gen <= generations; gen++ {
		if err := ctx.Err(); err != nil {
			return soupResult{}, err
		}
		grid.Advance()
		pop := grid.Population()
		res.peak = max(res.peak, pop)
		if pop == 0 {
			res.extinctAt = gen
			break
		}
	}
	res.final = grid.Population()
	res.generation = grid.Generation()
	return res, nil
}
