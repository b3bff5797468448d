package main

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-rules/internal/randutil"
	"github.com/lox/holdem-rules/poker"
)

// SimulateCmd deals random hands in parallel and reports how often each
// category comes up.
type SimulateCmd struct {
	Hands   int    `short:"n" help:"Number of hands to deal" default:"100000"`
	Cards   int    `help:"Cards per hand; 6 or 7 take the best five" default:"5"`
	Workers int    `short:"w" help:"Worker goroutines (0 = GOMAXPROCS)" default:"0"`
	Seed    *int64 `help:"RNG seed; defaults to the time"`
	JSON    bool   `help:"Print the tally as JSON"`
}

type categoryCount struct {
	Category poker.Category `json:"category"`
	Count    int            `json:"count"`
	Percent  float64        `json:"percent"`
}

type simulateResult struct {
	Seed   int64           `json:"seed"`
	Hands  int             `json:"hands"`
	Counts []categoryCount `json:"counts"`
}

type tally [len(poker.Categories)]int

func (cmd *SimulateCmd) Run(env *runEnv) error {
	if cmd.Hands <= 0 {
		return fmt.Errorf("--hands must be positive, got %d", cmd.Hands)
	}
	if cmd.Cards < poker.HandSize || cmd.Cards > 7 {
		return fmt.Errorf("--cards must be 5, 6 or 7, got %d", cmd.Cards)
	}
	workers := cmd.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, cmd.Hands)
	seed := randutil.Seed(cmd.Seed, env.clock.Now())
	env.logger.Info("Simulating", "hands", cmd.Hands, "cards", cmd.Cards, "workers", workers, "seed", seed)

	total, err := simulate(context.Background(), seed, cmd.Hands, cmd.Cards, workers)
	if err != nil {
		return err
	}

	res := simulateResult{Seed: seed, Hands: cmd.Hands}
	for i, c := range poker.Categories {
		res.Counts = append(res.Counts, categoryCount{
			Category: c,
			Count:    total[i],
			Percent:  100 * float64(total[i]) / float64(cmd.Hands),
		})
	}

	if cmd.JSON {
		enc := json.NewEncoder(env.out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	fmt.Fprintln(env.out, titleStyle.Render(fmt.Sprintf("%d hands, %d cards", cmd.Hands, cmd.Cards)))
	for _, c := range res.Counts {
		fmt.Fprintf(env.out, "%-16s %10d  %s\n", c.Category, c.Count, labelStyle.Render(fmt.Sprintf("%8.4f%%", c.Percent)))
	}
	return nil
}

// simulate splits hands across workers, each with its own generator derived
// from seed, so a seed and worker count always give the same tally.
func simulate(ctx context.Context, seed int64, hands, cards, workers int) (tally, error) {
	rngs := randutil.Split(seed, workers)
	results := make([]tally, workers)

	g, ctx := errgroup.WithContext(ctx)
	per, remainder := hands/workers, hands%workers
	for w := range workers {
		n := per
		if w < remainder {
			n++
		}
		g.Go(func() error {
			for i := range n {
				if i%1024 == 0 && ctx.Err() != nil {
					return ctx.Err()
				}
				_, dealt, err := poker.NewDeck().Deal(rngs[w], cards)
				if err != nil {
					return err
				}
				rank, _, err := poker.Best(dealt)
				if err != nil {
					return err
				}
				results[w][len(poker.Categories)-rank.Name.Strength()]++
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return tally{}, err
	}

	var total tally
	for _, r := range results {
		for i, n := range r {
			total[i] += n
		}
	}
	return total, nil
}
