package risk

// Sizing projects the absolute numbers for a position opened with the given
// leverage: the notional value, how many units that buys at entry, and the
// unlevered P/L if the full stop or full target is hit with no partial
// exits.
type Sizing struct {
	PositionValue   float64
	UnitsHeld       float64
	PotentialLoss   float64
	PotentialProfit float64
}

// Size computes the point-in-time projection for an applied leverage.
func Size(d Distances, entry, allocatedCapital float64, leverage int) Sizing {
	value := allocatedCapital * float64(leverage)
	units := value / entry

	return Sizing{
		PositionValue:   value,
		UnitsHeld:       units,
		PotentialLoss:   units * d.RiskPerUnit,
		PotentialProfit: units * d.RewardPerUnit,
	}
}
