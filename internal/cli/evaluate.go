package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/riskcalc/config"
	"github.com/rustyeddy/riskcalc/internal/render"
	"github.com/rustyeddy/riskcalc/risk"
)

func newEvaluateCmd(rc *RootConfig) *cobra.Command {
	var (
		entry    float64
		stop     float64
		target   float64
		position string

		capital      float64
		riskPct      float64
		allocPct     float64
		maxLeverage  float64
		leverageMode string
		leverage     float64

		partial bool
		tp1     float64
		tp2     float64
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate a trade in one shot from flags",
		Example: `  riskcalc evaluate -e 100 -s 95 -t 115 --capital 10000
  riskcalc evaluate -e 61000 -s 63500 -t 54000 -p short --capital 5000 --risk 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadProfile(rc)
			if err != nil {
				return err
			}

			// Flags override the profile only when actually given.
			flagFloat(cmd, "capital", &cfg.Risk.Capital, capital)
			flagFloat(cmd, "risk", &cfg.Risk.RiskPercent, riskPct)
			flagFloat(cmd, "alloc", &cfg.Risk.AllocationPercent, allocPct)
			flagFloat(cmd, "max-leverage", &cfg.Risk.MaxLeverage, maxLeverage)
			flagFloat(cmd, "tp1", &cfg.Exit.TP1Percent, tp1)
			flagFloat(cmd, "tp2", &cfg.Exit.TP2Percent, tp2)
			if cmd.Flags().Changed("leverage-mode") {
				cfg.Risk.LeverageMode = leverageMode
			}
			if cmd.Flags().Changed("leverage") {
				cfg.Risk.LeverageMode = "manual"
				cfg.Risk.ManualLeverage = leverage
			}
			if cmd.Flags().Changed("partial") {
				cfg.Exit.Enabled = partial
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			res, err := risk.Evaluate(
				risk.TradeSpec{
					Entry:    entry,
					Stop:     stop,
					Target:   target,
					Position: risk.PositionType(position),
				},
				riskConfigFrom(cfg),
				partialConfigFrom(cfg),
			)
			if err != nil {
				return err
			}

			rate := newConverter(cfg).Resolve(cmd.Context(), cfg.Display.Currency)
			fmt.Fprint(cmd.OutOrStdout(), render.Report(res, rate))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&entry, "entry", "e", 0, "entry price (required)")
	cmd.Flags().Float64VarP(&stop, "stop", "s", 0, "stop-loss price (required)")
	cmd.Flags().Float64VarP(&target, "target", "t", 0, "take-profit price (required)")
	cmd.Flags().StringVarP(&position, "position", "p", "long", "position direction (long, short)")

	cmd.Flags().Float64Var(&capital, "capital", 0, "account capital in USD")
	cmd.Flags().Float64Var(&riskPct, "risk", 0, "percent of capital risked per trade")
	cmd.Flags().Float64Var(&allocPct, "alloc", 0, "percent of capital allocated to the position")
	cmd.Flags().Float64Var(&maxLeverage, "max-leverage", 0, "exchange leverage ceiling")
	cmd.Flags().StringVar(&leverageMode, "leverage-mode", "", "auto or manual")
	cmd.Flags().Float64Var(&leverage, "leverage", 0, "manual leverage (implies --leverage-mode manual)")

	cmd.Flags().BoolVar(&partial, "partial", false, "enable the partial take-profit schedule")
	cmd.Flags().Float64Var(&tp1, "tp1", 0, "percent of position closed at TP1")
	cmd.Flags().Float64Var(&tp2, "tp2", 0, "percent of position closed at TP2")

	cmd.MarkFlagRequired("entry")
	cmd.MarkFlagRequired("stop")
	cmd.MarkFlagRequired("target")

	return cmd
}

func flagFloat(cmd *cobra.Command, name string, dst *float64, val float64) {
	if cmd.Flags().Changed(name) {
		*dst = val
	}
}

func riskConfigFrom(cfg *config.Config) risk.RiskConfig {
	return risk.RiskConfig{
		Capital:           cfg.Risk.Capital,
		RiskPercent:       cfg.Risk.RiskPercent,
		AllocationPercent: cfg.Risk.AllocationPercent,
		MaxLeverage:       cfg.Risk.MaxLeverage,
		Mode:              risk.LeverageMode(cfg.Risk.LeverageMode),
		ManualLeverage:    cfg.Risk.ManualLeverage,
	}
}

func partialConfigFrom(cfg *config.Config) risk.PartialExitConfig {
	return risk.PartialExitConfig{
		Enabled:    cfg.Exit.Enabled,
		TP1Percent: cfg.Exit.TP1Percent,
		TP2Percent: cfg.Exit.TP2Percent,
	}
}
