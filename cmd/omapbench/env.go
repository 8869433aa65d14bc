package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func NewEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List the environment variables omapbench reads",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			vars := AsMap()
			names := make([]string, 0, len(vars))
			for name := range vars {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				v := vars[name]
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-10v %s\n", v.Name, v.Value, v.Description)
			}
		},
	}
}
