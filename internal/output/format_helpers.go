package output

import "github.com/shopspring/decimal"

// FormatGBP formats a decimal as GBP with 2 decimals. Kept here so it can
// be reused by multiple formatters and unit tested in isolation.
func FormatGBP(amount decimal.Decimal) string { return "£" + amount.StringFixed(2) }

// FormatKWh formats an energy quantity with no decimals.
func FormatKWh(amount decimal.Decimal) string { return amount.StringFixed(0) + " kWh" }

// FormatTonnes formats a CO2 mass in tonnes with 2 decimals.
func FormatTonnes(amount decimal.Decimal) string { return amount.StringFixed(2) + " t" }

// FormatPayback renders a payback period, or "n/a" when it is undefined.
func FormatPayback(years *decimal.Decimal) string {
	if years == nil {
		return "n/a"
	}
	return years.StringFixed(1) + " yrs"
}
