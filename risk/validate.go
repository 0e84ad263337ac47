package risk

// Validate checks that stop and target sit on the correct sides of entry for
// the trade's direction and returns the per-unit risk and reward distances.
//
// The signed arithmetic doubles as the ordering check: a misplaced stop or
// target (or equal prices) produces a non-positive distance, which is
// rejected rather than clamped.
func Validate(spec TradeSpec) (Distances, error) {
	var d Distances

	switch spec.Position {
	case Long:
		d.RiskPerUnit = spec.Entry - spec.Stop
		d.RewardPerUnit = spec.Target - spec.Entry
	case Short:
		d.RiskPerUnit = spec.Stop - spec.Entry
		d.RewardPerUnit = spec.Entry - spec.Target
	default:
		return Distances{}, &InvalidDirectionError{Position: spec.Position}
	}

	if d.RiskPerUnit <= 0 || d.RewardPerUnit <= 0 {
		return Distances{}, &InvalidDirectionError{Position: spec.Position}
	}

	return d, nil
}
