package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/riskcalc/internal/render"
	"github.com/rustyeddy/riskcalc/risk"
)

func newFormCmd(rc *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "Fill the calculator form interactively",
		Long: `Form walks through every calculator input with inline validation and
re-renders the report after each pass, so numbers can be tweaked until the
trade looks right. Leaving capital empty skips the sizing sections.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadProfile(rc)
			if err != nil {
				return err
			}

			converter := newConverter(cfg)

			for {
				trade, err := askTrade()
				if err != nil {
					return err
				}

				riskCfg := riskConfigFrom(cfg)
				riskCfg.Capital, err = askOptionalFloat("Account capital in USD", cfg.Risk.Capital)
				if err != nil {
					return err
				}

				if riskCfg.Capital > 0 {
					if err := askRiskSettings(&riskCfg); err != nil {
						return err
					}
				}

				partialCfg := partialConfigFrom(cfg)
				if riskCfg.Capital > 0 {
					if err := askExitSettings(&partialCfg); err != nil {
						return err
					}
				}

				res, err := risk.Evaluate(trade, riskCfg, partialCfg)
				if err != nil {
					// Input contradictions re-prompt instead of exiting.
					fmt.Fprintf(cmd.OutOrStdout(), "\n%v\n\n", err)
					continue
				}

				rate := converter.Resolve(cmd.Context(), cfg.Display.Currency)
				fmt.Fprint(cmd.OutOrStdout(), render.Report(res, rate))

				again := false
				if err := survey.AskOne(&survey.Confirm{
					Message: "Adjust inputs and recalculate?",
					Default: true,
				}, &again); err != nil {
					return err
				}
				if !again {
					return nil
				}

				// Carry this pass's settings into the next as defaults.
				cfg.Risk.Capital = riskCfg.Capital
			}
		},
	}
}

func askTrade() (risk.TradeSpec, error) {
	var direction string
	if err := survey.AskOne(&survey.Select{
		Message: "Position direction:",
		Options: []string{"long", "short"},
		Default: "long",
	}, &direction); err != nil {
		return risk.TradeSpec{}, err
	}

	entry, err := askFloat("Entry price")
	if err != nil {
		return risk.TradeSpec{}, err
	}
	stop, err := askFloat("Stop-loss price")
	if err != nil {
		return risk.TradeSpec{}, err
	}
	target, err := askFloat("Take-profit price")
	if err != nil {
		return risk.TradeSpec{}, err
	}

	return risk.TradeSpec{
		Entry:    entry,
		Stop:     stop,
		Target:   target,
		Position: risk.PositionType(direction),
	}, nil
}

func askRiskSettings(cfg *risk.RiskConfig) error {
	var err error
	if cfg.RiskPercent, err = askFloatDefault("Risk percent of capital", cfg.RiskPercent); err != nil {
		return err
	}
	if cfg.AllocationPercent, err = askFloatDefault("Allocation percent of capital", cfg.AllocationPercent); err != nil {
		return err
	}
	if cfg.MaxLeverage, err = askFloatDefault("Max leverage allowed by the exchange", cfg.MaxLeverage); err != nil {
		return err
	}

	manual := cfg.Mode == risk.LeverageManual
	if err := survey.AskOne(&survey.Confirm{
		Message: "Set leverage manually instead of using the recommendation?",
		Default: manual,
	}, &manual); err != nil {
		return err
	}
	if manual {
		cfg.Mode = risk.LeverageManual
		if cfg.ManualLeverage, err = askFloatDefault("Leverage", cfg.ManualLeverage); err != nil {
			return err
		}
	} else {
		cfg.Mode = risk.LeverageAuto
	}
	return nil
}

func askExitSettings(cfg *risk.PartialExitConfig) error {
	if err := survey.AskOne(&survey.Confirm{
		Message: "Plan partial take-profits?",
		Default: cfg.Enabled,
	}, &cfg.Enabled); err != nil {
		return err
	}
	if !cfg.Enabled {
		return nil
	}

	var err error
	if cfg.TP1Percent, err = askFloatDefault("Percent closed at TP1", cfg.TP1Percent); err != nil {
		return err
	}
	if cfg.TP2Percent, err = askFloatDefault("Percent closed at TP2", cfg.TP2Percent); err != nil {
		return err
	}
	return nil
}

// askFloat requires a positive number.
func askFloat(message string) (float64, error) {
	var raw string
	err := survey.AskOne(&survey.Input{Message: message + ":"}, &raw,
		survey.WithValidator(positiveNumber))
	if err != nil {
		return 0, err
	}
	v, _ := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	return v, nil
}

// askFloatDefault requires a positive number but offers a default.
func askFloatDefault(message string, def float64) (float64, error) {
	var raw string
	err := survey.AskOne(&survey.Input{
		Message: message + ":",
		Default: strconv.FormatFloat(def, 'f', -1, 64),
	}, &raw, survey.WithValidator(positiveNumber))
	if err != nil {
		return 0, err
	}
	v, _ := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	return v, nil
}

// askOptionalFloat treats empty (or zero) input as "not provided".
func askOptionalFloat(message string, def float64) (float64, error) {
	var raw string
	prompt := &survey.Input{
		Message: message + " (empty to skip sizing):",
		Help:    "Sizing and leverage need the account size; the ratio alone does not.",
	}
	if def > 0 {
		prompt.Default = strconv.FormatFloat(def, 'f', -1, 64)
	}
	err := survey.AskOne(prompt, &raw, survey.WithValidator(optionalNumber))
	if err != nil {
		return 0, err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, _ := strconv.ParseFloat(raw, 64)
	return v, nil
}

func positiveNumber(val interface{}) error {
	str, _ := val.(string)
	v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v <= 0 {
		return fmt.Errorf("must be greater than zero")
	}
	return nil
}

func optionalNumber(val interface{}) error {
	str, _ := val.(string)
	str = strings.TrimSpace(str)
	if str == "" {
		return nil
	}
	return positiveNumber(str)
}
