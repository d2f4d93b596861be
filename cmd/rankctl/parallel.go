// SPDX-License-Identifier: MIT
// rankctl: sample and chunk, the commands that fan out over workers.
//
// Workers never share state beyond an atomic counter: each one owns its
// stepped sequence (chunk) or its random source (sample).

package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rankspace/ranked"
	"github.com/katalvlaran/rankspace/sample"
)

func (a *app) sampleCmd() *cobra.Command {
	var (
		ff       familyFlags
		count    int
		distinct bool
		seed     int64
		workers  int
	)
	cmd := &cobra.Command{
		Use:   "sample <family>",
		Short: "Print uniformly drawn elements",
		Long: "Print uniformly drawn elements.\n" +
			"With --distinct the draw is without replacement and runs on one worker.\n" +
			"Families: " + familyNames(),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ff.resolve(cmd); err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = a.cfg.Seed
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Workers
			}
			g, u, err := ff.universe(args[0])
			if err != nil {
				return err
			}

			var drawn [][]string
			if distinct {
				drawn, err = sample.WithoutReplacement(u, count, sample.WithSeed(seed))
			} else {
				drawn, err = a.sampleParallel(cmd, u, count, seed, workers)
			}
			if err != nil {
				return err
			}
			a.logger.Debug("sampled", zap.Stringer("universe", g), zap.Int("count", len(drawn)), zap.Bool("distinct", distinct))

			out := cmd.OutOrStdout()
			for _, e := range drawn {
				if _, err := fmt.Fprintln(out, formatElement(e)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	ff.bind(cmd)
	cmd.Flags().IntVar(&count, "count", 1, "number of elements to draw")
	cmd.Flags().BoolVar(&distinct, "distinct", false, "draw without replacement")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default from config)")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel workers for draws with replacement (default from config)")

	return cmd
}

// sampleParallel splits count draws with replacement over workers. Worker w
// seeds its source with DeriveSeed(seed, w) and results are concatenated in
// worker order, so output depends only on seed, count and workers.
func (a *app) sampleParallel(cmd *cobra.Command, u ranked.Ranked[[]string], count int, seed int64, workers int) ([][]string, error) {
	if count <= 0 {
		return sample.WithReplacement(u, count)
	}
	if workers < 1 {
		return nil, fmt.Errorf("workers must be ≥ 1, got %d", workers)
	}
	if workers > count {
		workers = count
	}

	parts := make([][][]string, workers)
	g, ctx := errgroup.WithContext(cmd.Context())
	for w := 0; w < workers; w++ {
		share := count / workers
		if w < count%workers {
			share++
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			drawn, err := sample.WithReplacement(u, share, sample.WithSeed(sample.DeriveSeed(seed, uint64(w))))
			if err != nil {
				return err
			}
			parts[w] = drawn
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([][]string, 0, count)
	for _, p := range parts {
		out = append(out, p...)
	}

	return out, nil
}

// chunkReport is the outcome of one chunked enumeration.
type chunkReport struct {
	perWorker []int64
	total     int64
}

func (a *app) chunkCmd() *cobra.Command {
	var (
		ff      familyFlags
		workers int
		maxCard int64
	)
	cmd := &cobra.Command{
		Use:   "chunk <family>",
		Short: "Enumerate a universe concurrently in interleaved stepped chunks",
		Long: "Enumerate a universe concurrently: worker w walks ranks w, w+W, w+2W, ….\n" +
			"Prints per-worker counts and checks the total against the cardinality.\n" +
			"Families: " + familyNames(),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ff.resolve(cmd); err != nil {
				return err
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Workers
			}
			if !cmd.Flags().Changed("max") {
				maxCard = a.cfg.Max
			}
			g, err := ff.generator(args[0])
			if err != nil {
				return err
			}
			card := g.Cardinality()
			if card.Cmp(big.NewInt(maxCard)) > 0 {
				return fmt.Errorf("%s has %v elements, above --max %d", g, card, maxCard)
			}

			rep, err := a.chunk(cmd, g, workers)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for w, n := range rep.perWorker {
				fmt.Fprintf(out, "worker %d: %d\n", w, n)
			}
			fmt.Fprintf(out, "total: %d\n", rep.total)
			if card.Cmp(big.NewInt(rep.total)) != 0 {
				return fmt.Errorf("%s: enumerated %d elements, cardinality is %v", g, rep.total, card)
			}
			return nil
		},
	}
	ff.bind(cmd)
	cmd.Flags().IntVar(&workers, "workers", 0, "number of workers (default from config)")
	cmd.Flags().Int64Var(&maxCard, "max", 0, "refuse universes larger than this (default from config)")

	return cmd
}

// chunk runs Stepped(workers, w) for every worker w concurrently and counts
// the elements each one yields.
func (a *app) chunk(cmd *cobra.Command, r ranked.Ranked[[]int], workers int) (chunkReport, error) {
	if workers < 1 {
		return chunkReport{}, fmt.Errorf("workers must be ≥ 1, got %d", workers)
	}

	total := atomic.NewInt64(0)
	perWorker := make([]int64, workers)
	g, ctx := errgroup.WithContext(cmd.Context())
	for w := 0; w < workers; w++ {
		seq, err := ranked.SteppedInt(r, int64(workers), int64(w))
		if err != nil {
			return chunkReport{}, err
		}
		g.Go(func() error {
			var n int64
			for range seq {
				n++
				total.Inc()
				if n%4096 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
			}
			perWorker[w] = n
			a.logger.Debug("worker done", zap.Int("worker", w), zap.Int64("elements", n))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return chunkReport{}, err
	}

	return chunkReport{perWorker: perWorker, total: total.Load()}, nil
}
