package compare

import (
	"github.com/nexyra/energy-advisor/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonSet bundles a residential result set with the derived ranking
// metrics and recommendations that the formatters render.
type ComparisonSet struct {
	BaselineBill decimal.Decimal     `json:"baseline_bill"`
	Tiers        []domain.TierResult `json:"tiers"`

	BestSavingsTier string   `json:"best_savings_tier,omitempty"`
	BestPaybackTier string   `json:"best_payback_tier,omitempty"`
	BestCO2Tier     string   `json:"best_co2_tier,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// NewComparisonSet builds the comparison metrics for a residential result.
func NewComparisonSet(result domain.ResidentialComparison) *ComparisonSet {
	cs := &ComparisonSet{
		BaselineBill: result.BaselineBill,
		Tiers:        result.Tiers[:],
	}
	cs.rank()
	cs.Recommendations = GenerateRecommendations(cs)
	return cs
}

// rank picks the leading tier per metric. Tiers with undefined payback are
// excluded from the payback ranking; an undefined payback is not a ranking
// value.
func (cs *ComparisonSet) rank() {
	var bestSavings, bestCO2 *domain.TierResult
	var bestPayback *domain.TierResult

	for i := range cs.Tiers {
		tier := &cs.Tiers[i]
		if bestSavings == nil || tier.Savings.GreaterThan(bestSavings.Savings) {
			bestSavings = tier
		}
		if bestCO2 == nil || tier.CO2Tonnes.GreaterThan(bestCO2.CO2Tonnes) {
			bestCO2 = tier
		}
		if tier.HasPayback() && (bestPayback == nil || tier.SimplePayback.LessThan(*bestPayback.SimplePayback)) {
			bestPayback = tier
		}
	}

	if bestSavings != nil {
		cs.BestSavingsTier = bestSavings.Tier
	}
	if bestCO2 != nil {
		cs.BestCO2Tier = bestCO2.Tier
	}
	if bestPayback != nil {
		cs.BestPaybackTier = bestPayback.Tier
	}
}

// TierByName returns the named tier result, or nil.
func (cs *ComparisonSet) TierByName(name string) *domain.TierResult {
	for i := range cs.Tiers {
		if cs.Tiers[i].Tier == name {
			return &cs.Tiers[i]
		}
	}
	return nil
}
