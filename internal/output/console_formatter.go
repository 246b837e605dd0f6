package output

import (
	"fmt"
	"strings"
)

// ConsoleFormatter renders a fixed-width comparison table for terminals.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (cf ConsoleFormatter) Format(rs *ResultSet) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString(strings.ToUpper(rs.Title) + "\n")
	sb.WriteString(strings.Repeat("=", 100) + "\n")
	if rs.Residential() {
		sb.WriteString(fmt.Sprintf("Baseline annual bill (no PV): %s\n", FormatGBP(*rs.Baseline)))
	}
	sb.WriteString("\n")

	nameWidth := 10
	numWidth := 14

	if rs.Residential() {
		sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s %*s %*s\n",
			nameWidth, "Tier",
			numWidth, "Generation",
			numWidth, "Annual Bill",
			numWidth, "Savings",
			numWidth, "Export Inc.",
			numWidth, "CO2 Saved",
			numWidth, "Payback"))
	} else {
		sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s %*s %*s\n",
			nameWidth, "Tier",
			numWidth, "Generation",
			numWidth, "Self-Used",
			numWidth, "Bill Redn.",
			numWidth, "Export Inc.",
			numWidth, "Cost",
			numWidth, "Payback"))
	}
	sb.WriteString(strings.Repeat("-", 100) + "\n")

	for _, tier := range rs.Tiers {
		if rs.Residential() {
			sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s %*s %*s\n",
				nameWidth, tier.Tier,
				numWidth, FormatKWh(tier.GenerationKWh),
				numWidth, FormatGBP(tier.AnnualBill),
				numWidth, FormatGBP(tier.Savings),
				numWidth, FormatGBP(tier.ExportIncome),
				numWidth, FormatTonnes(tier.CO2Tonnes),
				numWidth, FormatPayback(tier.SimplePayback)))
		} else {
			sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s %*s %*s\n",
				nameWidth, tier.Tier,
				numWidth, FormatKWh(tier.GenerationKWh),
				numWidth, FormatKWh(tier.SelfUsedKWh),
				numWidth, FormatGBP(tier.BillReduction),
				numWidth, FormatGBP(tier.ExportIncome),
				numWidth, FormatGBP(tier.InstalledCost),
				numWidth, FormatPayback(tier.SimplePayback)))
		}
	}
	sb.WriteString(strings.Repeat("=", 100) + "\n")

	if len(rs.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 100) + "\n")
		for _, rec := range rs.Recommendations {
			sb.WriteString("  - " + rec + "\n")
		}
	}

	return []byte(sb.String()), nil
}
