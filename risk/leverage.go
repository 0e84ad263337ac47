package risk

import "math"

// Rationale explains which volatility bracket capped the recommendation.
// Display only; it never feeds back into the numbers.
type Rationale int

const (
	RationaleCalm     Rationale = iota // stop < 2% away, no volatility cap
	RationaleNear                      // stop >= 2% away, capped at 20x
	RationaleElevated                  // stop >= 3% away, capped at 10x
	RationaleWide                      // stop >= 5% away, capped at 5x
	RationaleExtreme                   // stop >= 10% away, capped at 2x
)

func (r Rationale) String() string {
	switch r {
	case RationaleExtreme:
		return "stop is 10%+ away from entry; leverage held to 2x to survive the swing"
	case RationaleWide:
		return "stop is 5%+ away from entry; leverage held to 5x"
	case RationaleElevated:
		return "stop is 3%+ away from entry; leverage held to 10x"
	case RationaleNear:
		return "stop is 2%+ away from entry; leverage held to 20x"
	default:
		return "stop is tight; calculated leverage stands within the exchange limit"
	}
}

// volatility ladder: tightest applicable cap wins. Each entry caps, never
// raises, the already-clamped calculated value.
var ladder = []struct {
	minMove float64 // riskPercentMove threshold, inclusive
	cap     int
	why     Rationale
}{
	{10, 2, RationaleExtreme},
	{5, 5, RationaleWide},
	{3, 10, RationaleElevated},
	{2, 20, RationaleNear},
}

// RecommendLeverage solves for the multiplier at which a full stop-out of
// the allocated-and-levered position loses exactly maxRiskAmount, then
// bounds it by the exchange ceiling and the volatility ladder.
//
// Callers are expected to skip this entirely when capital is unknown.
func RecommendLeverage(entry, stop, capital, riskPercent, allocationPercent, maxLeverage float64) LeverageInfo {
	riskPerUnit := math.Abs(entry - stop)
	riskPercentMove := riskPerUnit / entry * 100

	info := LeverageInfo{
		RiskPercentMove:  riskPercentMove,
		MaxRiskAmount:    capital * riskPercent / 100,
		AllocatedCapital: capital * allocationPercent / 100,
		Rationale:        RationaleCalm,
	}

	raw := 0.0
	if denom := info.AllocatedCapital * riskPercentMove / 100; denom > 0 {
		raw = info.MaxRiskAmount / denom
	}

	lev := clampLeverage(int(math.Round(raw)), maxLeverage)

	for _, rung := range ladder {
		if riskPercentMove >= rung.minMove {
			info.Rationale = rung.why
			if lev > rung.cap {
				lev = rung.cap
			}
			break
		}
	}

	info.Recommended = lev
	return info
}

func clampLeverage(lev int, maxLeverage float64) int {
	if lev < 1 {
		return 1
	}
	if ceil := int(maxLeverage); ceil >= 1 && lev > ceil {
		return ceil
	}
	return lev
}
