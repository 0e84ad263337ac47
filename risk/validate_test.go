package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Orderings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		spec    TradeSpec
		wantErr bool
	}{
		{"long valid", TradeSpec{Entry: 100, Stop: 95, Target: 115, Position: Long}, false},
		{"short valid", TradeSpec{Entry: 100, Stop: 110, Target: 85, Position: Short}, false},
		{"long stop above entry", TradeSpec{Entry: 100, Stop: 105, Target: 115, Position: Long}, true},
		{"long target below entry", TradeSpec{Entry: 100, Stop: 95, Target: 98, Position: Long}, true},
		{"short stop below entry", TradeSpec{Entry: 100, Stop: 90, Target: 120, Position: Short}, true},
		{"short target above entry", TradeSpec{Entry: 100, Stop: 110, Target: 103, Position: Short}, true},
		{"long stop equals entry", TradeSpec{Entry: 100, Stop: 100, Target: 115, Position: Long}, true},
		{"long target equals entry", TradeSpec{Entry: 100, Stop: 95, Target: 100, Position: Long}, true},
		{"unknown direction", TradeSpec{Entry: 100, Stop: 95, Target: 115, Position: "sideways"}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d, err := Validate(tt.spec)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsInvalidDirection(err))
				return
			}
			require.NoError(t, err)
			assert.Greater(t, d.RiskPerUnit, 0.0)
			assert.Greater(t, d.RewardPerUnit, 0.0)
		})
	}
}

func TestValidate_ErrorCarriesDirection(t *testing.T) {
	t.Parallel()

	_, err := Validate(TradeSpec{Entry: 100, Stop: 90, Target: 120, Position: Short})
	require.Error(t, err)

	ide, ok := err.(*InvalidDirectionError)
	require.True(t, ok)
	assert.Equal(t, Short, ide.Position)
	assert.Contains(t, ide.Error(), "short")
}

func TestValidate_Distances(t *testing.T) {
	t.Parallel()

	d, err := Validate(TradeSpec{Entry: 100, Stop: 95, Target: 115, Position: Long})
	require.NoError(t, err)

	assert.InDelta(t, 5.0, d.RiskPerUnit, 1e-12)
	assert.InDelta(t, 15.0, d.RewardPerUnit, 1e-12)
	assert.InDelta(t, 3.0, d.Ratio(), 1e-12)
}

func TestRatio_ScaleInvariant(t *testing.T) {
	t.Parallel()

	base := TradeSpec{Entry: 100, Stop: 95, Target: 115, Position: Long}
	bd, err := Validate(base)
	require.NoError(t, err)

	for _, k := range []float64{0.001, 0.37, 1, 42, 1e6} {
		scaled := TradeSpec{
			Entry:    base.Entry * k,
			Stop:     base.Stop * k,
			Target:   base.Target * k,
			Position: Long,
		}
		sd, err := Validate(scaled)
		require.NoError(t, err)
		assert.InDelta(t, bd.Ratio(), sd.Ratio(), 1e-9, "scale factor %v", k)
	}
}
