package domain

import "github.com/shopspring/decimal"

// TierResult holds the computed outcome for a single tier configuration.
//
// The residential engine fills every field. The generic engine leaves the
// baseline-relative fields (PostImportKWh, AnnualBill, Savings, CO2Tonnes)
// at zero and fills BillReduction instead; it has no household context.
//
// SimplePayback is nil when the annual financial benefit is zero or
// negative. A nil payback is "undefined", never a sentinel number.
type TierResult struct {
	Tier          string          `json:"tier"`
	PVKWp         decimal.Decimal `json:"pv_kwp"`
	BatteryKWh    decimal.Decimal `json:"battery_kwh"`
	GenerationKWh decimal.Decimal `json:"generation_kwh"`
	SelfUsedKWh   decimal.Decimal `json:"self_used_kwh"`
	ExportedKWh   decimal.Decimal `json:"exported_kwh"`

	PostImportKWh decimal.Decimal `json:"post_import_kwh,omitempty"`
	AnnualBill    decimal.Decimal `json:"annual_bill,omitempty"`
	Savings       decimal.Decimal `json:"savings,omitempty"`
	BillReduction decimal.Decimal `json:"bill_reduction,omitempty"`
	ExportIncome  decimal.Decimal `json:"export_income"`
	CO2Tonnes     decimal.Decimal `json:"co2_savings_tonnes,omitempty"`

	InstalledCost decimal.Decimal  `json:"installed_cost"`
	SimplePayback *decimal.Decimal `json:"simple_payback_years,omitempty"`
}

// HasPayback reports whether a finite payback period exists.
func (r TierResult) HasPayback() bool { return r.SimplePayback != nil }

// ResidentialComparison is the full residential result set: the no-PV
// baseline bill plus one result per fixed tier, in Bronze/Silver/Gold order.
type ResidentialComparison struct {
	BaselineBill decimal.Decimal `json:"baseline_bill"`
	Tiers        [3]TierResult   `json:"tiers"`
}

// TierByName returns the result for the named tier, or nil if absent.
func (c *ResidentialComparison) TierByName(name string) *TierResult {
	for i := range c.Tiers {
		if c.Tiers[i].Tier == name {
			return &c.Tiers[i]
		}
	}
	return nil
}
