package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/scottcagno/omap/pkg/bench"
)

type containsOptions struct {
	capacity  int
	duration  time.Duration
	tolerance float64
}

func NewContainsCmd() *cobra.Command {
	var opts containsOptions
	cmd := &cobra.Command{
		Use:   "contains",
		Short: "Compare contains-entry throughput with unordered and linked maps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return containsHandler(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().IntVar(&opts.capacity, "capacity", 1_000_000, "Entries in each map")
	cmd.Flags().DurationVar(&opts.duration, "duration", Duration, "Time spent on each map")
	cmd.Flags().Float64Var(&opts.tolerance, "tolerance", 0.25, "Allowed slowdown against the builtin map, as a fraction")
	return cmd
}

func containsHandler(ctx context.Context, w io.Writer, opts containsOptions) error {
	slog.Info("contains", "capacity", opts.capacity, "duration", opts.duration, "tolerance", opts.tolerance)
	p, err := bench.ContainsParity[int](ctx, bench.IntKeys{}, opts.capacity, opts.duration)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"MAP", "CHECKS", "VS BUILTIN"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	for _, row := range []struct {
		name  string
		count int
	}{
		{"omap", p.Ordered},
		{"builtin", p.Builtin},
		{"linkedhashmap", p.Linked},
	} {
		table.Append([]string{
			row.name,
			strconv.Itoa(row.count),
			fmt.Sprintf("%+.1f%%", -bench.Deviation(row.count, p.Builtin)*100),
		})
	}
	table.Render()

	return bench.Compare(p.Ordered, p.Builtin, opts.tolerance)
}
