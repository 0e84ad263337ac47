package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommendLeverage_ReferenceScenario(t *testing.T) {
	t.Parallel()

	// entry 100, stop 95: 5% stop distance. Raw leverage solves to exactly
	// 2x, well inside the 5%-bracket cap of 5x.
	info := RecommendLeverage(100, 95, 10000, 1, 10, 75)

	assert.InDelta(t, 5.0, info.RiskPercentMove, 1e-9)
	assert.InDelta(t, 100.0, info.MaxRiskAmount, 1e-9)
	assert.InDelta(t, 1000.0, info.AllocatedCapital, 1e-9)
	assert.Equal(t, 2, info.Recommended)
	assert.Equal(t, RationaleWide, info.Rationale)
}

func TestRecommendLeverage_Ladder(t *testing.T) {
	t.Parallel()

	// riskPercent 10 on allocation 10 drives the raw value to 100x for a 1%
	// stop, so the ladder cap (or the exchange ceiling) decides the result.
	tests := []struct {
		name string
		stop float64
		want int
		why  Rationale
	}{
		{"extreme move capped to 2", 88, 2, RationaleExtreme},   // 12% move
		{"wide move capped to 5", 93, 5, RationaleWide},         // 7% move
		{"elevated move capped to 10", 96, 10, RationaleElevated}, // 4% move
		{"near move capped to 20", 97.5, 20, RationaleNear},     // 2.5% move
		{"calm move only exchange-clamped", 99, 75, RationaleCalm}, // 1% move
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			info := RecommendLeverage(100, tt.stop, 10000, 10, 10, 75)
			assert.Equal(t, tt.want, info.Recommended)
			assert.Equal(t, tt.why, info.Rationale)
		})
	}
}

func TestRecommendLeverage_LadderBoundariesInclusive(t *testing.T) {
	t.Parallel()

	// Thresholds use >=, so a move of exactly 10% lands in the 2x bracket,
	// exactly 5% in the 5x bracket, and so on.
	tests := []struct {
		stop float64
		want int
	}{
		{90, 2},   // exactly 10%
		{95, 5},   // exactly 5%
		{97, 10},  // exactly 3%
		{98, 20},  // exactly 2%
	}

	for _, tt := range tests {
		info := RecommendLeverage(100, tt.stop, 10000, 10, 10, 125)
		assert.Equal(t, tt.want, info.Recommended, "stop %v", tt.stop)
	}
}

func TestRecommendLeverage_MonotoneInStopDistance(t *testing.T) {
	t.Parallel()

	// Widening the stop never raises the recommendation.
	prev := 1 << 30
	for stop := 99.5; stop >= 85; stop -= 0.5 {
		info := RecommendLeverage(100, stop, 10000, 5, 10, 125)
		assert.LessOrEqual(t, info.Recommended, prev, "stop %v", stop)
		prev = info.Recommended
	}
}

func TestRecommendLeverage_Bounds(t *testing.T) {
	t.Parallel()

	// Raw value below 1 floors at 1.
	low := RecommendLeverage(100, 99, 10000, 0.01, 50, 125)
	assert.Equal(t, 1, low.Recommended)

	// Exchange ceiling wins over a huge raw value.
	high := RecommendLeverage(100, 99.9, 10000, 10, 1, 3)
	assert.Equal(t, 3, high.Recommended)

	// Ladder caps never raise an already smaller value.
	small := RecommendLeverage(100, 94, 10000, 1, 20, 125) // 6% move, raw = 100/(2000*0.06) < 1
	assert.Equal(t, 1, small.Recommended)
	assert.Equal(t, RationaleWide, small.Rationale)
}
