package render

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			MarginBottom(1)

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	faintStyle = lipgloss.NewStyle().
			Faint(true)
)

// ratioStyle colors the headline risk/reward ratio: anything under 1R of
// reward per risk gets flagged.
func ratioStyle(ratio float64) lipgloss.Style {
	if ratio < 1 {
		return warnStyle
	}
	return okStyle
}
