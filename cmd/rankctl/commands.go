// SPDX-License-Identifier: MIT
// rankctl: count, rank, unrank and list.

package main

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/rankspace/numsys"
	"github.com/katalvlaran/rankspace/rankmath"
)

// parseBig parses a non-negative decimal integer flag or argument.
func parseBig(what, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%s: %q is not a decimal integer", what, s)
	}

	return v, nil
}

func (a *app) countCmd() *cobra.Command {
	var ff familyFlags
	cmd := &cobra.Command{
		Use:   "count <family>",
		Short: "Print the number of elements of a universe",
		Long:  "Print the number of elements of a universe.\nFamilies: " + familyNames(),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ff.resolve(cmd); err != nil {
				return err
			}
			g, err := ff.generator(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("counted", zap.Stringer("universe", g))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), g.Cardinality())
			return err
		},
	}
	ff.bind(cmd)

	return cmd
}

func (a *app) rankCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "rank <perm|kperm|comb> index...",
		Short: "Print the lexicographic rank of an index tuple",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx := make([]int, 0, len(args)-1)
			for _, s := range args[1:] {
				v, err := strconv.Atoi(s)
				if err != nil {
					return fmt.Errorf("index %q: %w", s, err)
				}
				idx = append(idx, v)
			}
			if !cmd.Flags().Changed("n") {
				n = len(idx)
			}

			t := rankmath.NewTable()
			var (
				rank *big.Int
				err  error
			)
			switch args[0] {
			case "perm":
				rank, err = numsys.PermutationRank(t, idx)
			case "kperm":
				rank, err = numsys.KPermutationRank(t, n, idx)
			case "comb":
				rank, err = numsys.CombinationRank(t, n, idx)
			default:
				return fmt.Errorf("rank supports perm, kperm and comb, got %q", args[0])
			}
			if err != nil {
				return err
			}
			a.logger.Debug("ranked", zap.String("family", args[0]), zap.Ints("tuple", idx))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rank)
			return err
		},
	}
	cmd.Flags().IntVar(&n, "n", 0, "source size (defaults to the tuple length)")

	return cmd
}

func (a *app) unrankCmd() *cobra.Command {
	var ff familyFlags
	cmd := &cobra.Command{
		Use:   "unrank <family> RANK",
		Short: "Print the element at a rank",
		Long:  "Print the element at a rank.\nFamilies: " + familyNames(),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ff.resolve(cmd); err != nil {
				return err
			}
			rank, err := parseBig("rank", args[1])
			if err != nil {
				return err
			}
			_, u, err := ff.universe(args[0])
			if err != nil {
				return err
			}
			e, err := u.At(rank)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatElement(e))
			return err
		},
	}
	ff.bind(cmd)

	return cmd
}

func (a *app) listCmd() *cobra.Command {
	var (
		ff          familyFlags
		step, start string
		limit       int
	)
	cmd := &cobra.Command{
		Use:   "list <family>",
		Short: "Print the elements at start, start+step, …",
		Long:  "Print the elements at start, start+step, ….\nFamilies: " + familyNames(),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ff.resolve(cmd); err != nil {
				return err
			}
			if !cmd.Flags().Changed("limit") {
				limit = a.cfg.Limit
			}
			stepV, err := parseBig("step", step)
			if err != nil {
				return err
			}
			startV, err := parseBig("start", start)
			if err != nil {
				return err
			}
			g, u, err := ff.universe(args[0])
			if err != nil {
				return err
			}
			seq, err := u.Stepped(stepV, startV)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printed := 0
			for e := range seq {
				if limit > 0 && printed == limit {
					a.logger.Warn("output truncated", zap.Int("limit", limit), zap.Stringer("universe", g))
					break
				}
				if _, err := fmt.Fprintln(out, formatElement(e)); err != nil {
					return err
				}
				printed++
			}
			a.logger.Debug("listed", zap.Stringer("universe", g), zap.Int("printed", printed))

			return nil
		},
	}
	ff.bind(cmd)
	cmd.Flags().StringVar(&step, "step", "1", "distance between listed ranks")
	cmd.Flags().StringVar(&start, "start", "0", "first listed rank")
	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many elements, 0 for no cap (default from config)")

	return cmd
}
