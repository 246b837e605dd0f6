package compare

import (
	"testing"

	"github.com/nexyra/energy-advisor/internal/calculation"
	"github.com/nexyra/energy-advisor/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultComparison(t *testing.T) *ComparisonSet {
	t.Helper()
	engine := calculation.NewEngine()
	result := engine.EvaluateResidential(domain.DefaultProfile(), domain.DefaultEnvironment(), domain.DefaultResidentialPresets())
	return NewComparisonSet(result)
}

func TestComparisonSetRanking(t *testing.T) {
	cs := defaultComparison(t)

	// Gold has the biggest array: most savings and most avoided CO2.
	assert.Equal(t, domain.TierGold, cs.BestSavingsTier)
	assert.Equal(t, domain.TierGold, cs.BestCO2Tier)
	assert.NotEmpty(t, cs.BestPaybackTier)
	require.Len(t, cs.Tiers, 3)
}

func TestComparisonSetRecommendations(t *testing.T) {
	cs := defaultComparison(t)

	require.NotEmpty(t, cs.Recommendations)
	assert.Contains(t, cs.Recommendations[0], "Largest savings")
	assert.Contains(t, cs.Recommendations[0], "£")
}

func TestComparisonSetExcludesUndefinedPaybackFromRanking(t *testing.T) {
	// Zero tariff: no savings anywhere, so payback is undefined for all
	// tiers and must not be ranked.
	profile := domain.ConsumptionProfile{}
	engine := calculation.NewEngine()
	result := engine.EvaluateResidential(profile, domain.DefaultEnvironment(), domain.DefaultResidentialPresets())

	cs := NewComparisonSet(result)

	assert.Empty(t, cs.BestPaybackTier)
	found := false
	for _, rec := range cs.Recommendations {
		if rec == "No tier pays back at the configured tariff; payback is undefined for all tiers" {
			found = true
		}
	}
	assert.True(t, found, "expected undefined-payback recommendation, got %v", cs.Recommendations)
}

func TestTierByName(t *testing.T) {
	cs := defaultComparison(t)

	silver := cs.TierByName(domain.TierSilver)
	require.NotNil(t, silver)
	assert.True(t, decimal.NewFromFloat(4.0).Equal(silver.PVKWp))

	assert.Nil(t, cs.TierByName("Platinum"))
}
