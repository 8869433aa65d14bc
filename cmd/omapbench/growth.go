package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/scottcagno/omap/pkg/bench"
	"github.com/scottcagno/omap/pkg/util"
)

type growthOptions struct {
	op       string
	keys     string
	start    int
	limit    int
	rounds   int
	maxRatio float64
}

func NewGrowthCmd() *cobra.Command {
	var opts growthOptions
	cmd := &cobra.Command{
		Use:   "growth",
		Short: "Time an operation over maps of doubling size",
		Long: "Time an operation over maps of doubling size. Every key in the map is\n" +
			"processed once per size, so a constant time operation roughly doubles\n" +
			"its total time with each step. Operations: " + strings.Join(bench.CaseNames(), ", "),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return growthHandler(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.op, "op", "remove", "Operation to time")
	cmd.Flags().StringVar(&opts.keys, "keys", "int", "Key kind: int or uuid")
	cmd.Flags().IntVar(&opts.start, "start", 10_000, "Smallest map capacity")
	cmd.Flags().IntVar(&opts.limit, "limit", Limit, "Capacity to stop below")
	cmd.Flags().IntVar(&opts.rounds, "rounds", 1, "Runs per size, the fastest is kept")
	cmd.Flags().Float64Var(&opts.maxRatio, "max-ratio", 4, "Fail when time grows by this factor in one doubling (0 disables)")
	return cmd
}

func growthHandler(ctx context.Context, w io.Writer, opts growthOptions) error {
	slog.Info("growth", "op", opts.op, "keys", opts.keys, "start", opts.start,
		"limit", opts.limit, "rounds", opts.rounds, "max-ratio", opts.maxRatio)
	var samples []bench.Sample
	var err error
	switch opts.keys {
	case "int":
		samples, err = runGrowth[int](ctx, bench.IntKeys{}, opts)
	case "uuid":
		samples, err = runGrowth[string](ctx, bench.UUIDKeys{}, opts)
	default:
		return fmt.Errorf("unknown key kind %q", opts.keys)
	}
	if len(samples) > 0 {
		renderSamples(w, samples)
	}
	return err
}

func runGrowth[K comparable](ctx context.Context, gen bench.KeyGen[K], opts growthOptions) ([]bench.Sample, error) {
	g, err := bench.GrowthFor(gen, opts.op, opts.start, opts.limit, opts.maxRatio)
	if err != nil {
		return nil, err
	}
	g.Rounds = opts.rounds
	return g.Run(ctx)
}

func renderSamples(w io.Writer, samples []bench.Sample) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"CAPACITY", "COUNT", "ELAPSED", "RATIO"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(lo.Map(samples, func(s bench.Sample, _ int) []string {
		return []string{
			strconv.Itoa(s.Capacity),
			strconv.Itoa(s.Count),
			util.FormatSeconds(s.Elapsed),
			util.FormatRatio(s.Ratio),
		}
	}))
	table.Render()
}
