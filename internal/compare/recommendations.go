package compare

import "fmt"

// GenerateRecommendations creates human-readable guidance from the ranked
// comparison metrics.
func GenerateRecommendations(cs *ComparisonSet) []string {
	recommendations := []string{}

	if best := cs.TierByName(cs.BestSavingsTier); best != nil && best.Savings.IsPositive() {
		recommendations = append(recommendations,
			fmt.Sprintf("Largest savings: %s cuts the annual bill by £%s against a £%s baseline",
				best.Tier, best.Savings.StringFixed(0), cs.BaselineBill.StringFixed(0)))
	}

	if best := cs.TierByName(cs.BestPaybackTier); best != nil && best.HasPayback() {
		recommendations = append(recommendations,
			fmt.Sprintf("Fastest payback: %s recovers its £%s cost in %s years",
				best.Tier, best.InstalledCost.StringFixed(0), best.SimplePayback.StringFixed(1)))
	} else if cs.BestPaybackTier == "" {
		recommendations = append(recommendations,
			"No tier pays back at the configured tariff; payback is undefined for all tiers")
	}

	if best := cs.TierByName(cs.BestCO2Tier); best != nil && best.CO2Tonnes.IsPositive() {
		recommendations = append(recommendations,
			fmt.Sprintf("Largest CO2 reduction: %s avoids %s tonnes per year",
				best.Tier, best.CO2Tonnes.StringFixed(2)))
	}

	return recommendations
}
