package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootConfig carries the global flags down to subcommands.
type RootConfig struct {
	ConfigPath string
	Currency   string
	NoColor    bool
}

func NewRootCmd() *cobra.Command {
	rc := &RootConfig{}

	cmd := &cobra.Command{
		Use:           "riskcalc",
		Short:         "Riskcalc — position sizing, leverage, and partial take-profit planning",
		Long: `Riskcalc turns a proposed trade (entry, stop-loss, take-profit) and your
account settings into an advisory report: risk/reward ratio, position size,
a recommended leverage, and a three-tier partial take-profit schedule.

It computes numbers; it never places orders.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global / persistent flags
	cmd.PersistentFlags().StringVar(&rc.ConfigPath, "config", "", "Path to profile file (optional)")
	cmd.PersistentFlags().StringVar(&rc.Currency, "currency", "", "Display currency (overrides profile)")
	cmd.PersistentFlags().BoolVar(&rc.NoColor, "no-color", false, "Disable colored output")

	// Subcommands
	cmd.AddCommand(
		newEvaluateCmd(rc),
		newFormCmd(rc),
		newRatesCmd(rc),
		newProfileCmd(rc),
	)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("riskcalc (dev)")
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
