package tui

import (
	"fmt"
	"strings"

	"github.com/nexyra/energy-advisor/internal/output"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("⚡ NEXYRA Energy Advisor"))
	b.WriteString(SubtitleStyle.Render("residential what-if explorer"))
	b.WriteString("\n\n")

	b.WriteString(m.renderSliders())
	b.WriteString("\n")
	b.WriteString(m.renderResults())
	b.WriteString("\n")
	b.WriteString(StatusBarStyle.Render("↑↓ select parameter • ←→ adjust • r reset • q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderSliders() string {
	rows := make([]string, 0, sliderCount)
	for _, slider := range m.sliders {
		rows = append(rows, slider.Render())
	}
	return FocusedPanelStyle.Render(strings.Join(rows, "\n"))
}

func (m Model) renderResults() string {
	var b strings.Builder

	b.WriteString(BaselineStyle.Render(
		fmt.Sprintf("Baseline annual bill (no PV): %s", output.FormatGBP(m.comparison.BaselineBill))))
	b.WriteString("\n\n")

	header := fmt.Sprintf("%-8s %12s %12s %12s %12s %10s %10s",
		"Tier", "Generation", "Annual Bill", "Savings", "Export Inc.", "CO2 (t)", "Payback")
	b.WriteString(TableHeaderStyle.Render(header))
	b.WriteString("\n")

	for _, tier := range m.comparison.Tiers {
		row := fmt.Sprintf("%-8s %12s %12s %12s %12s %10s %10s",
			tier.Tier,
			tier.GenerationKWh.StringFixed(0),
			output.FormatGBP(tier.AnnualBill),
			output.FormatGBP(tier.Savings),
			output.FormatGBP(tier.ExportIncome),
			tier.CO2Tonnes.StringFixed(2),
			output.FormatPayback(tier.SimplePayback))
		b.WriteString(TableCellStyle.Render(row))
		b.WriteString("\n")
	}

	return PanelStyle.Render(strings.TrimRight(b.String(), "\n"))
}
