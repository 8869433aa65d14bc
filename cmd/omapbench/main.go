// Command omapbench measures how the ordered map's operations scale
// with its size and how its lookups compare with unordered maps.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/scottcagno/omap/pkg/util"
)

func NewCLI() *cobra.Command {
	LoadConfig()
	root := &cobra.Command{
		Use:           "omapbench",
		Short:         "Ordered map complexity and throughput checks",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if v, _ := cmd.Flags().GetBool("verbose"); v || Debug {
				level = slog.LevelDebug
			}
			slog.SetDefault(newLogger(cmd.ErrOrStderr(), level))
		},
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "Log every measurement")
	root.AddCommand(
		NewGrowthCmd(),
		NewContainsCmd(),
		NewEnvCmd(),
	)
	return root
}

func main() {
	ctx, cancel := util.SignalContext(context.Background())
	defer cancel()
	if err := NewCLI().ExecuteContext(ctx); err != nil {
		slog.Error("omapbench failed", "error", err)
		cancel()
		os.Exit(1)
	}
}
