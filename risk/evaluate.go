package risk

import (
	"math"
	"time"

	"github.com/rustyeddy/riskcalc/pkg/id"
)

// Evaluate is the single entry point of the calculator: one pass from raw
// inputs to a full advisory report.
//
// It returns an *InvalidDirectionError when stop/target contradict the
// chosen direction and ErrBadExitSplit when enabled partial-exit
// percentages are out of range. A missing capital is not an error: the
// ratio section is filled in and the sizing sections are left out, since a
// partially completed form is a normal intermediate state.
//
// Every call computes everything fresh. There is no state between calls.
func Evaluate(trade TradeSpec, cfg RiskConfig, partial PartialExitConfig) (*SizingResult, error) {
	d, err := Validate(trade)
	if err != nil {
		return nil, err
	}

	if partial.Enabled {
		if err := checkExitSplit(partial); err != nil {
			return nil, err
		}
	}

	res := &SizingResult{
		ReportID:      id.New(),
		GeneratedAt:   time.Now().UTC(),
		Trade:         trade,
		RiskPerUnit:   d.RiskPerUnit,
		RewardPerUnit: d.RewardPerUnit,
		Ratio:         d.Ratio(),
	}

	if cfg.Capital <= 0 {
		return res, nil
	}

	lev := RecommendLeverage(trade.Entry, trade.Stop, cfg.Capital,
		cfg.RiskPercent, cfg.AllocationPercent, cfg.MaxLeverage)

	applied := lev.Recommended
	mode := cfg.Mode
	if mode == "" {
		mode = LeverageAuto
	}
	if mode == LeverageManual {
		applied = clampLeverage(int(math.Round(cfg.ManualLeverage)), cfg.MaxLeverage)
	}

	sz := Size(d, trade.Entry, lev.AllocatedCapital, applied)

	res.HasSizing = true
	res.MaxRiskAmount = lev.MaxRiskAmount
	res.AllocatedCapital = lev.AllocatedCapital
	res.RiskPercentMove = lev.RiskPercentMove
	res.Recommended = lev.Recommended
	res.Applied = applied
	res.Mode = mode
	res.Rationale = lev.Rationale
	res.PositionValue = sz.PositionValue
	res.UnitsHeld = sz.UnitsHeld
	res.PotentialLoss = sz.PotentialLoss
	res.PotentialProfit = sz.PotentialProfit

	if partial.Enabled {
		levels := PartialLevels(trade.Entry, trade.Stop, trade.Target, trade.Position)
		plan := PartialProfits(levels, sz.UnitsHeld, d.RiskPerUnit, trade.Entry,
			partial.TP1Percent/100, partial.TP2Percent/100)
		res.Plan = &plan
	}

	return res, nil
}

// checkExitSplit rejects splits that close more than the whole position or
// use percentages outside [0,100]. The remainder leg is derived, so a bad
// split here would otherwise turn into a negative third leg downstream.
func checkExitSplit(p PartialExitConfig) error {
	if p.TP1Percent < 0 || p.TP1Percent > 100 ||
		p.TP2Percent < 0 || p.TP2Percent > 100 ||
		p.TP1Percent+p.TP2Percent > 100 {
		return ErrBadExitSplit
	}
	return nil
}
