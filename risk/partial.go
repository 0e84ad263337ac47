package risk

import "math"

// PartialLevels places the three take-profit rungs for a validated trade.
//
// TP1 always sits one risk-unit of favorable movement from entry, the level
// at which the stop can be moved to break-even. TP2 depends on how much
// reward the trade offers overall: 2R when the trade runs to 3R or better,
// 1.5R when it runs to at least 2R, otherwise the midpoint between TP1 and
// the target (there is no room for a clean R-multiple rung). TP3 is the
// target itself.
func PartialLevels(entry, stop, target float64, position PositionType) ExitLevels {
	riskPerUnit := math.Abs(entry - stop)

	dir := 1.0
	if position == Short {
		dir = -1
	}

	tp1 := entry + dir*riskPerUnit

	totalReward := math.Abs(target - entry)
	rrRatio := totalReward / riskPerUnit

	var tp2 float64
	switch {
	case rrRatio >= 3:
		tp2 = entry + dir*2*riskPerUnit
	case rrRatio >= 2:
		tp2 = entry + dir*1.5*riskPerUnit
	default:
		tp2 = (tp1 + target) / 2
	}

	return ExitLevels{
		TP1: ExitLevel{Price: tp1, RMultiple: 1},
		TP2: ExitLevel{Price: tp2, RMultiple: math.Abs(tp2-entry) / riskPerUnit},
		TP3: ExitLevel{Price: target, RMultiple: rrRatio},
	}
}

// PartialProfits splits the position across the three rungs and sums the
// outcome. tp1Frac and tp2Frac are fractions in [0,1]; the remainder rides
// to the final target. Callers validate the split before getting here.
func PartialProfits(levels ExitLevels, unitsHeld, riskPerUnit, entry, tp1Frac, tp2Frac float64) ExitPlan {
	tp3Frac := 1 - tp1Frac - tp2Frac

	plan := ExitPlan{
		Legs: [3]ExitLeg{
			leg(levels.TP1, unitsHeld, entry, tp1Frac),
			leg(levels.TP2, unitsHeld, entry, tp2Frac),
			leg(levels.TP3, unitsHeld, entry, tp3Frac),
		},
	}

	for _, l := range plan.Legs {
		plan.TotalProfit += l.Profit
	}
	if denom := unitsHeld * riskPerUnit; denom > 0 {
		plan.AvgRMultiple = plan.TotalProfit / denom
	}

	return plan
}

func leg(level ExitLevel, unitsHeld, entry, frac float64) ExitLeg {
	units := unitsHeld * frac
	return ExitLeg{
		Level:   level,
		Percent: frac,
		Units:   units,
		Profit:  units * math.Abs(level.Price-entry),
	}
}
