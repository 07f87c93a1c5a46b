package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/cellar"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of cellar",
		// Skips config loading.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cellar version %s\n", cellar.Version)
		},
	}
}
