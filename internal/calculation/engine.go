package calculation

import (
	"github.com/nexyra/energy-advisor/internal/domain"
	"github.com/shopspring/decimal"
)

var daysPerYear = decimal.NewFromInt(365)

// Engine computes tier outcomes from tariff, irradiance, and hardware
// inputs. It is pure and stateless; a zero-value Engine is ready to use and
// safe for concurrent calls.
type Engine struct {
	// AllowNegativeBill restores the legacy behavior where export income in
	// excess of the residual bill produced a negative annual bill (and the
	// corresponding savings above the baseline). The default floors both at
	// zero.
	AllowNegativeBill bool
}

// NewEngine returns an engine with the default (floored) bill policy.
func NewEngine() *Engine {
	return &Engine{}
}

// EvaluateTier computes the generation/consumption split and financial
// outcome for a single arbitrary tier configuration. It has no household
// context, so the baseline-relative fields of the result stay zero;
// BillReduction carries the value of self-consumed energy instead.
//
// BatteryKWh is carried through to the result untouched: battery sizing has
// no modeled effect on self-consumption in this formulation.
func (e *Engine) EvaluateTier(tier domain.TierPreset, irradiance, unitRate, exportRate decimal.Decimal) domain.TierResult {
	generation := tier.PVKWp.Mul(irradiance)
	selfUsed := generation.Mul(tier.SelfConsumption)
	exported := clampZero(generation.Sub(selfUsed))

	billReduction := selfUsed.Mul(unitRate)
	exportIncome := exported.Mul(exportRate)
	annualBenefit := billReduction.Add(exportIncome)

	return domain.TierResult{
		Tier:          tier.Name,
		PVKWp:         tier.PVKWp,
		BatteryKWh:    tier.BatteryKWh,
		GenerationKWh: generation,
		SelfUsedKWh:   selfUsed,
		ExportedKWh:   exported,
		BillReduction: billReduction,
		ExportIncome:  exportIncome,
		InstalledCost: tier.InstalledCost,
		SimplePayback: payback(tier.InstalledCost, annualBenefit),
	}
}

// BaselineBill returns the no-PV annual bill for a profile. It depends only
// on the profile, never on a tier preset.
func (e *Engine) BaselineBill(profile domain.ConsumptionProfile) decimal.Decimal {
	return profile.TotalConsumption().Mul(profile.UnitRate).
		Add(daysPerYear.Mul(profile.StandingCharge))
}

// EvaluateResidential evaluates the three fixed residential tiers against a
// household profile. The baseline bill is computed once and is identical for
// every tier; per-tier results are independent of one another.
func (e *Engine) EvaluateResidential(profile domain.ConsumptionProfile, env domain.EnvironmentAssumptions, tiers [3]domain.TierPreset) domain.ResidentialComparison {
	comparison := domain.ResidentialComparison{
		BaselineBill: e.BaselineBill(profile),
	}
	for i, tier := range tiers {
		comparison.Tiers[i] = e.evaluateResidentialTier(profile, env, tier, comparison.BaselineBill)
	}
	return comparison
}

// evaluateResidentialTier layers the household-context outputs (post-PV
// import, bill, savings, CO2) on top of the generic tier evaluation so the
// generation/export formulas exist in exactly one place.
func (e *Engine) evaluateResidentialTier(profile domain.ConsumptionProfile, env domain.EnvironmentAssumptions, tier domain.TierPreset, baselineBill decimal.Decimal) domain.TierResult {
	result := e.EvaluateTier(tier, env.Irradiance, profile.UnitRate, profile.ExportRate)

	result.PostImportKWh = clampZero(profile.TotalConsumption().Sub(result.SelfUsedKWh))

	newBill := result.PostImportKWh.Mul(profile.UnitRate).
		Add(daysPerYear.Mul(profile.StandingCharge)).
		Sub(result.ExportIncome)
	if !e.AllowNegativeBill {
		newBill = clampZero(newBill)
	}
	savings := baselineBill.Sub(newBill)
	if !e.AllowNegativeBill {
		savings = clampZero(savings)
	}
	result.AnnualBill = newBill
	result.Savings = savings
	result.BillReduction = decimal.Zero // residential results report savings vs baseline instead

	co2Kg := result.SelfUsedKWh.Mul(env.GridCO2).
		Add(result.ExportedKWh.Mul(env.GridCO2).Mul(env.ExportCreditFactor))
	result.CO2Tonnes = co2Kg.Div(decimal.NewFromInt(1000))

	result.SimplePayback = payback(tier.InstalledCost, savings)
	return result
}

// payback returns cost/benefit, or nil when the benefit is zero or negative.
// The guard is a required invariant, not an optimization.
func payback(cost, annualBenefit decimal.Decimal) *decimal.Decimal {
	if !annualBenefit.IsPositive() {
		return nil
	}
	years := cost.Div(annualBenefit)
	return &years
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
