package render

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/rustyeddy/riskcalc/rates"
	"github.com/rustyeddy/riskcalc/risk"
)

// Report renders a full evaluation as styled terminal output. The display
// rate converts USD amounts for presentation only; every number in the
// report was computed in USD.
func Report(res *risk.SizingResult, rate rates.Rate) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Trade Report %s", res.ReportID)))
	b.WriteString("\n")
	b.WriteString(ratioTable(res))
	b.WriteString("\n")

	if res.HasSizing {
		b.WriteString(sizingTable(res, rate))
		b.WriteString("\n")
		if res.Plan != nil {
			b.WriteString(planTable(res, rate))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(faintStyle.Render("Enter account capital to see sizing and leverage."))
		b.WriteString("\n")
	}

	b.WriteString(faintStyle.Render(rateFootnote(rate)))
	b.WriteString("\n")

	return b.String()
}

func ratioTable(res *risk.SizingResult) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetTitle("Setup")

	t.AppendRows([]table.Row{
		{"Direction", strings.ToUpper(string(res.Trade.Position))},
		{"Entry", fmt.Sprintf("%g", res.Trade.Entry)},
		{"Stop Loss", fmt.Sprintf("%g", res.Trade.Stop)},
		{"Take Profit", fmt.Sprintf("%g", res.Trade.Target)},
		{"Risk / unit", fmt.Sprintf("%.4f", res.RiskPerUnit)},
		{"Reward / unit", fmt.Sprintf("%.4f", res.RewardPerUnit)},
		{"R:R Ratio", ratioStyle(res.Ratio).Render(fmt.Sprintf("1 : %.2f", res.Ratio))},
	})

	return t.Render() + "\n"
}

func sizingTable(res *risk.SizingResult, rate rates.Rate) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Footer = text.FormatDefault
	t.SetTitle("Position Sizing")

	leverage := fmt.Sprintf("%dx", res.Applied)
	if res.Mode == risk.LeverageManual && res.Applied != res.Recommended {
		leverage = fmt.Sprintf("%dx (manual; engine recommends %dx)", res.Applied, res.Recommended)
	}

	t.AppendRows([]table.Row{
		{"Max risk", money(res.MaxRiskAmount, rate)},
		{"Allocated capital", money(res.AllocatedCapital, rate)},
		{"Stop distance", fmt.Sprintf("%.2f%% of entry", res.RiskPercentMove)},
		{"Leverage", leverage},
		{"Position value", money(res.PositionValue, rate)},
		{"Units held", fmt.Sprintf("%.6f", res.UnitsHeld)},
		{"Loss at stop", warnStyle.Render(money(res.PotentialLoss, rate))},
		{"Profit at target", okStyle.Render(money(res.PotentialProfit, rate))},
	})
	t.AppendFooter(table.Row{"Why", res.Rationale.String()})

	return t.Render() + "\n"
}

func planTable(res *risk.SizingResult, rate rates.Rate) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Footer = text.FormatDefault
	t.SetTitle("Partial Take-Profit Plan")
	t.AppendHeader(table.Row{"Leg", "Price", "R", "Close %", "Units", "Profit"})

	names := [3]string{"TP1", "TP2", "TP3"}
	for i, leg := range res.Plan.Legs {
		t.AppendRow(table.Row{
			names[i],
			fmt.Sprintf("%.4f", leg.Level.Price),
			fmt.Sprintf("%.2fR", leg.Level.RMultiple),
			fmt.Sprintf("%.0f%%", leg.Percent*100),
			fmt.Sprintf("%.6f", leg.Units),
			money(leg.Profit, rate),
		})
	}
	t.AppendFooter(table.Row{"Total", "", fmt.Sprintf("%.2fR avg", res.Plan.AvgRMultiple), "", "", money(res.Plan.TotalProfit, rate)})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 6, Align: text.AlignRight},
	})

	return t.Render() + "\n"
}

// money formats a USD amount in the display currency.
func money(usd float64, rate rates.Rate) string {
	if rate.Quote == "" || rate.Quote == "USD" || rate.Value == 1 {
		return fmt.Sprintf("$%.2f", usd)
	}
	return fmt.Sprintf("%.2f %s ($%.2f)", usd*rate.Value, rate.Quote, usd)
}

func rateFootnote(rate rates.Rate) string {
	if rate.Quote == "" || rate.Quote == "USD" {
		return "Amounts in USD."
	}
	switch rate.Origin {
	case rates.OriginLive:
		return fmt.Sprintf("USD/%s %.4f (live)", rate.Quote, rate.Value)
	case rates.OriginCache:
		return fmt.Sprintf("USD/%s %.4f (cached %s)", rate.Quote, rate.Value, rate.FetchedAt.Format("2006-01-02 15:04"))
	default:
		return fmt.Sprintf("USD/%s %.4f (static fallback)", rate.Quote, rate.Value)
	}
}
