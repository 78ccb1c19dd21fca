// Package cli wires the mcsim command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type rootConfig struct {
	ConfigPath string
	DBPath     string
}

func NewRootCmd() *cobra.Command {
	rc := &rootConfig{}

	cmd := &cobra.Command{
		Use:           "mcsim",
		Short:         "mcsim — Monte Carlo asset price simulation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global / persistent flags
	cmd.PersistentFlags().StringVar(&rc.ConfigPath, "config", "", "Path to config file (optional)")
	cmd.PersistentFlags().StringVar(&rc.DBPath, "db", "", "SQLite run journal (overrides config)")

	cmd.AddCommand(
		newRunCmd(rc),
		newJournalCmd(rc),
	)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("mcsim (dev)")
		},
	})

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
