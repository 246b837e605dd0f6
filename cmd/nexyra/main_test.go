package main

import (
	"testing"

	"github.com/nexyra/energy-advisor/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario_DefaultsWithoutFile(t *testing.T) {
	scenario := loadScenario(nil)

	require.NotNil(t, scenario)
	assert.True(t, decimal.NewFromInt(4200).Equal(scenario.Profile.AnnualUseKWh))
	assert.Len(t, scenario.Commercial, 3)
	assert.Len(t, scenario.Community, 3)
}

func TestEvaluateGeneric(t *testing.T) {
	scenario := loadScenario(nil)

	rs := evaluateGeneric(scenario, domain.SegmentCommercial, scenario.Commercial)

	require.Len(t, rs.Tiers, 3)
	assert.Equal(t, domain.SegmentCommercial, rs.Segment)
	assert.False(t, rs.Residential())
	// Stock Bronze commercial tier: 25 kWp * 1000 kWh/kWp.
	assert.True(t, decimal.NewFromInt(25000).Equal(rs.Tiers[0].GenerationKWh), "got %s", rs.Tiers[0].GenerationKWh)
}

func TestRootCommandWiring(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}
	for _, expected := range []string{"residential", "commercial", "community", "validate", "regions", "version"} {
		assert.Contains(t, names, expected)
	}

	flag := residentialCmd.Flags().Lookup("format")
	require.NotNil(t, flag)
	assert.Equal(t, "console", flag.DefValue)
}
