package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newRatesCmd(rc *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "rates [quote]",
		Short: "Show the current USD conversion rate for a currency",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadProfile(rc)
			if err != nil {
				return err
			}

			quote := cfg.Display.Currency
			if len(args) == 1 {
				quote = strings.ToUpper(args[0])
			}

			rate := newConverter(cfg).Resolve(cmd.Context(), quote)

			fmt.Fprintf(cmd.OutOrStdout(), "USD/%s %.6f (%s)\n", rate.Quote, rate.Value, rate.Origin)
			if !rate.FetchedAt.IsZero() {
				fmt.Fprintf(cmd.OutOrStdout(), "as of %s\n", rate.FetchedAt.Format("2006-01-02 15:04:05 MST"))
			}
			return nil
		},
	}
}
