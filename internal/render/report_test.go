package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/riskcalc/rates"
	"github.com/rustyeddy/riskcalc/risk"
)

func usd() rates.Rate {
	return rates.Rate{Quote: "USD", Value: 1, Origin: rates.OriginStatic}
}

func evaluated(t *testing.T, cfg risk.RiskConfig, partial risk.PartialExitConfig) *risk.SizingResult {
	t.Helper()
	res, err := risk.Evaluate(
		risk.TradeSpec{Entry: 100, Stop: 95, Target: 115, Position: risk.Long},
		cfg, partial,
	)
	require.NoError(t, err)
	return res
}

func TestReport_FullSizing(t *testing.T) {
	t.Parallel()

	res := evaluated(t,
		risk.RiskConfig{Capital: 10000, RiskPercent: 1, AllocationPercent: 10, MaxLeverage: 75},
		risk.PartialExitConfig{Enabled: true, TP1Percent: 50, TP2Percent: 30},
	)

	out := Report(res, usd())

	assert.Contains(t, out, res.ReportID)
	assert.Contains(t, out, "LONG")
	assert.Contains(t, out, "1 : 3.00")
	assert.Contains(t, out, "$2000.00") // position value
	assert.Contains(t, out, "TP1")
	assert.Contains(t, out, "TP3")
	assert.Contains(t, out, "1.70R avg")
}

func TestReport_RatioOnly(t *testing.T) {
	t.Parallel()

	res := evaluated(t, risk.RiskConfig{}, risk.PartialExitConfig{})
	out := Report(res, usd())

	assert.Contains(t, out, "1 : 3.00")
	assert.Contains(t, out, "Enter account capital")
	assert.NotContains(t, out, "Position Sizing")
}

func TestReport_ConvertsDisplayCurrency(t *testing.T) {
	t.Parallel()

	res := evaluated(t,
		risk.RiskConfig{Capital: 10000, RiskPercent: 1, AllocationPercent: 10, MaxLeverage: 75},
		risk.PartialExitConfig{},
	)

	rate := rates.Rate{Quote: "KRW", Value: 1350, Origin: rates.OriginCache, FetchedAt: time.Now()}
	out := Report(res, rate)

	assert.Contains(t, out, "KRW")
	assert.Contains(t, out, "cached")
	// 2000 USD position value at 1350
	assert.Contains(t, out, "2700000.00 KRW")
}

func TestMoney_USDPassthrough(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "$12.34", money(12.34, usd()))
}
