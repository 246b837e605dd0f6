package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsumptionProfileValidate(t *testing.T) {
	profile := DefaultProfile()
	assert.NoError(t, profile.Validate())

	profile.AnnualUseKWh = decimal.NewFromInt(-1)
	err := profile.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "annual electricity use")

	profile = DefaultProfile()
	profile.UnitRate = decimal.NewFromFloat(-0.01)
	assert.Error(t, profile.Validate())

	profile = DefaultProfile()
	profile.EVAnnualKWh = decimal.NewFromInt(-100)
	assert.Error(t, profile.Validate())
}

func TestConsumptionProfileTotalConsumption(t *testing.T) {
	profile := DefaultProfile()
	profile.EVAnnualKWh = decimal.NewFromInt(1800)
	profile.HeatPumpKWh = decimal.NewFromInt(2500)

	total := profile.TotalConsumption()
	assert.True(t, decimal.NewFromInt(8500).Equal(total), "got %s", total)
}

func TestEnvironmentAssumptionsValidate(t *testing.T) {
	env := DefaultEnvironment()
	assert.NoError(t, env.Validate())

	env.Irradiance = decimal.Zero
	err := env.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "irradiance must be positive")

	env = DefaultEnvironment()
	env.ExportCreditFactor = decimal.NewFromFloat(1.5)
	assert.Error(t, env.Validate())

	env = DefaultEnvironment()
	env.GridCO2 = decimal.NewFromFloat(-0.1)
	assert.Error(t, env.Validate())
}

func TestTierPresetValidate(t *testing.T) {
	tier := TierPreset{
		Name:            "Bronze",
		PVKWp:           decimal.NewFromInt(25),
		SelfConsumption: decimal.NewFromFloat(0.70),
		InstalledCost:   decimal.NewFromInt(30000),
	}
	assert.NoError(t, tier.Validate())

	tier.SelfConsumption = decimal.NewFromFloat(1.01)
	assert.Error(t, tier.Validate())

	tier.SelfConsumption = decimal.NewFromFloat(0.70)
	tier.Name = ""
	assert.Error(t, tier.Validate())

	tier.Name = "Bronze"
	tier.InstalledCost = decimal.NewFromInt(-1)
	assert.Error(t, tier.Validate())
}

func TestResidentialPresetsFixedSizes(t *testing.T) {
	presets := DefaultResidentialPresets()

	assert.Equal(t, TierBronze, presets[0].Name)
	assert.True(t, decimal.NewFromFloat(3.6).Equal(presets[0].PVKWp))
	assert.True(t, decimal.NewFromFloat(5.0).Equal(presets[0].BatteryKWh))

	assert.Equal(t, TierSilver, presets[1].Name)
	assert.True(t, decimal.NewFromFloat(4.0).Equal(presets[1].PVKWp))
	assert.True(t, decimal.NewFromFloat(9.5).Equal(presets[1].BatteryKWh))

	assert.Equal(t, TierGold, presets[2].Name)
	assert.True(t, decimal.NewFromFloat(6.0).Equal(presets[2].PVKWp))
	assert.True(t, decimal.NewFromFloat(13.0).Equal(presets[2].BatteryKWh))
}

func TestRegionIrradiance(t *testing.T) {
	v, err := RegionIrradiance("scotland")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(900).Equal(v))

	_, err = RegionIrradiance("atlantis")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown region")

	_, err = RegionIrradiance(RegionCustom)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "explicit irradiance")
}

func TestRegionNamesSorted(t *testing.T) {
	names := RegionNames()
	require.NotEmpty(t, names)
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
}
