package risk

import "time"

// PositionType is the direction of a proposed trade.
type PositionType string

const (
	Long  PositionType = "long"
	Short PositionType = "short"
)

// Valid reports whether p is one of the known directions.
func (p PositionType) Valid() bool {
	return p == Long || p == Short
}

// TradeSpec describes the proposed trade: where it enters, where it bails
// out, and where it takes profit. All prices are in the instrument's quote
// currency (USD for the formatting layer).
type TradeSpec struct {
	Entry    float64
	Stop     float64
	Target   float64
	Position PositionType
}

// LeverageMode selects whether the applied leverage comes from the
// recommendation engine or from the trader.
type LeverageMode string

const (
	LeverageAuto   LeverageMode = "auto"
	LeverageManual LeverageMode = "manual"
)

// RiskConfig carries the account and risk-tolerance side of an evaluation.
//
// Capital of zero (or less) means "unknown"; sizing and leverage sections
// are omitted from the result rather than erroring, since a half-filled
// form is a normal intermediate state.
type RiskConfig struct {
	Capital           float64 // account equity in USD
	RiskPercent       float64 // % of capital risked if the stop is hit, typically 1-2
	AllocationPercent float64 // % of capital committed to this position, typically 10-25
	MaxLeverage       float64 // hard ceiling imposed by the exchange, typically 1-125

	Mode           LeverageMode // auto (default) or manual
	ManualLeverage float64      // used only when Mode == LeverageManual
}

// PartialExitConfig describes a three-leg scale-out: TP1Percent and
// TP2Percent are the percentages (0-100) of the position closed at the first
// two levels; the remainder rides to the final target.
type PartialExitConfig struct {
	Enabled    bool
	TP1Percent float64
	TP2Percent float64
}

// Distances are the per-unit price distances of a validated trade.
type Distances struct {
	RiskPerUnit   float64 // |entry - stop|, guaranteed > 0
	RewardPerUnit float64 // |target - entry|, guaranteed > 0
}

// Ratio is reward per unit of risk. Unbounded in both directions.
func (d Distances) Ratio() float64 {
	return d.RewardPerUnit / d.RiskPerUnit
}

// LeverageInfo is the output of the leverage recommendation step.
type LeverageInfo struct {
	Recommended      int     // integer in [1, MaxLeverage]
	RiskPercentMove  float64 // stop distance as % of entry, the volatility proxy
	Rationale        Rationale
	MaxRiskAmount    float64 // capital * riskPercent/100
	AllocatedCapital float64 // capital * allocationPercent/100
}

// ExitLevel is one rung of the partial take-profit ladder.
type ExitLevel struct {
	Price     float64
	RMultiple float64 // distance from entry expressed in risk units
}

// ExitLevels holds the three-tier ladder: TP1 locks break-even at 1R,
// TP2 sits at a reward-dependent intermediate level, TP3 is the target.
type ExitLevels struct {
	TP1 ExitLevel
	TP2 ExitLevel
	TP3 ExitLevel
}

// ExitLeg is one scheduled partial close.
type ExitLeg struct {
	Level   ExitLevel
	Percent float64 // fraction of the position closed here, 0-1
	Units   float64
	Profit  float64 // unlevered quote-currency profit for this leg
}

// ExitPlan is the full partial take-profit schedule plus its blended outcome.
type ExitPlan struct {
	Legs        [3]ExitLeg
	TotalProfit float64
	// AvgRMultiple is the blended R-multiple captured across all three
	// exits; equals the plain risk/reward ratio when the whole position
	// rides to the final target.
	AvgRMultiple float64
}

// SizingResult is the full advisory report for one evaluation pass. Every
// field is derived fresh from the inputs; nothing is retained between
// evaluations.
type SizingResult struct {
	ReportID    string
	GeneratedAt time.Time

	Trade TradeSpec

	// Ratio section, always present on success.
	RiskPerUnit   float64
	RewardPerUnit float64
	Ratio         float64

	// Sizing section, present only when capital was supplied.
	HasSizing        bool
	MaxRiskAmount    float64
	AllocatedCapital float64
	RiskPercentMove  float64
	Recommended      int // what the engine recommends
	Applied          int // what sizing actually used (manual mode may differ)
	Mode             LeverageMode
	Rationale        Rationale
	PositionValue    float64
	UnitsHeld        float64
	PotentialLoss    float64 // full stop-out, no partial exits
	PotentialProfit  float64 // full target hit, no partial exits

	// Plan is nil unless partial exits were enabled.
	Plan *ExitPlan
}
