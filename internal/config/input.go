package config

import (
	"fmt"
	"os"

	"github.com/nexyra/energy-advisor/internal/domain"
	"github.com/nexyra/energy-advisor/pkg/units"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Scenario is a fully resolved calculator input: every engine parameter is
// explicit, with region presets and EV mileage already converted.
type Scenario struct {
	Profile           domain.ConsumptionProfile
	Environment       domain.EnvironmentAssumptions
	Residential       [3]domain.TierPreset
	Commercial        []domain.TierPreset
	Community         []domain.TierPreset
	AllowNegativeBill bool
}

// profileSchema mirrors domain.ConsumptionProfile with the caller-side EV
// mileage alternative.
type profileSchema struct {
	AnnualUseKWh   decimal.Decimal  `yaml:"annual_use_kwh"`
	UnitRate       decimal.Decimal  `yaml:"unit_rate"`
	StandingCharge decimal.Decimal  `yaml:"standing_charge"`
	ExportRate     decimal.Decimal  `yaml:"export_rate"`
	EVAnnualKWh    *decimal.Decimal `yaml:"ev_annual_kwh"`
	EVMilesPerYear *decimal.Decimal `yaml:"ev_miles_per_year"`
	HeatPumpKWh    decimal.Decimal  `yaml:"heat_pump_kwh"`
}

type environmentSchema struct {
	Region             string           `yaml:"region"`
	Irradiance         *decimal.Decimal `yaml:"irradiance"`
	GridCO2            *decimal.Decimal `yaml:"grid_co2"`
	ExportCreditFactor *decimal.Decimal `yaml:"export_credit_factor"`
}

type tierOverrideSchema struct {
	SelfConsumption *decimal.Decimal `yaml:"self_consumption"`
	InstalledCost   *decimal.Decimal `yaml:"installed_cost"`
}

type residentialSchema struct {
	Bronze tierOverrideSchema `yaml:"bronze"`
	Silver tierOverrideSchema `yaml:"silver"`
	Gold   tierOverrideSchema `yaml:"gold"`
}

type policySchema struct {
	AllowNegativeBill bool `yaml:"allow_negative_bill"`
}

type fileSchema struct {
	Profile     *profileSchema      `yaml:"profile"`
	Environment *environmentSchema  `yaml:"environment"`
	Residential *residentialSchema  `yaml:"residential"`
	Commercial  []domain.TierPreset `yaml:"commercial"`
	Community   []domain.TierPreset `yaml:"community"`
	Policy      policySchema        `yaml:"policy"`
}

// InputParser handles parsing of scenario configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a scenario from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse resolves and validates raw YAML scenario data.
func (ip *InputParser) Parse(data []byte) (*Scenario, error) {
	var file fileSchema
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	scenario := &Scenario{AllowNegativeBill: file.Policy.AllowNegativeBill}

	profile, err := ip.resolveProfile(file.Profile)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	scenario.Profile = profile

	env, err := ip.resolveEnvironment(file.Environment)
	if err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	scenario.Environment = env

	scenario.Residential = ip.resolveResidential(file.Residential)
	for _, tier := range scenario.Residential {
		if err := tier.Validate(); err != nil {
			return nil, fmt.Errorf("residential: %w", err)
		}
	}

	if scenario.Commercial, err = ip.resolveTierList("commercial", file.Commercial, domain.DefaultCommercialTiers); err != nil {
		return nil, err
	}
	if scenario.Community, err = ip.resolveTierList("community", file.Community, domain.DefaultCommunityTiers); err != nil {
		return nil, err
	}

	return scenario, nil
}

func (ip *InputParser) resolveProfile(schema *profileSchema) (domain.ConsumptionProfile, error) {
	if schema == nil {
		return domain.DefaultProfile(), nil
	}

	profile := domain.ConsumptionProfile{
		AnnualUseKWh:   schema.AnnualUseKWh,
		UnitRate:       schema.UnitRate,
		StandingCharge: schema.StandingCharge,
		ExportRate:     schema.ExportRate,
		HeatPumpKWh:    schema.HeatPumpKWh,
	}

	switch {
	case schema.EVAnnualKWh != nil && schema.EVMilesPerYear != nil:
		return profile, fmt.Errorf("specify either ev_annual_kwh or ev_miles_per_year, not both")
	case schema.EVAnnualKWh != nil:
		profile.EVAnnualKWh = *schema.EVAnnualKWh
	case schema.EVMilesPerYear != nil:
		if schema.EVMilesPerYear.IsNegative() {
			return profile, fmt.Errorf("ev_miles_per_year cannot be negative")
		}
		profile.EVAnnualKWh = units.EVMilesToKWh(*schema.EVMilesPerYear)
	}

	if err := profile.Validate(); err != nil {
		return profile, err
	}
	return profile, nil
}

func (ip *InputParser) resolveEnvironment(schema *environmentSchema) (domain.EnvironmentAssumptions, error) {
	env := domain.DefaultEnvironment()
	if schema == nil {
		return env, nil
	}

	if schema.GridCO2 != nil {
		env.GridCO2 = *schema.GridCO2
	}
	if schema.ExportCreditFactor != nil {
		env.ExportCreditFactor = *schema.ExportCreditFactor
	}

	switch {
	case schema.Region != "" && schema.Region != domain.RegionCustom:
		if schema.Irradiance != nil {
			return env, fmt.Errorf("region %q conflicts with an explicit irradiance; use region %q for direct entry", schema.Region, domain.RegionCustom)
		}
		irradiance, err := domain.RegionIrradiance(schema.Region)
		if err != nil {
			return env, err
		}
		env.Irradiance = irradiance
	case schema.Region == domain.RegionCustom:
		if schema.Irradiance == nil {
			return env, fmt.Errorf("region %q requires an explicit irradiance value", domain.RegionCustom)
		}
		env.Irradiance = *schema.Irradiance
	case schema.Irradiance != nil:
		env.Irradiance = *schema.Irradiance
	}

	if err := env.Validate(); err != nil {
		return env, err
	}
	return env, nil
}

func (ip *InputParser) resolveResidential(schema *residentialSchema) [3]domain.TierPreset {
	presets := domain.DefaultResidentialPresets()
	if schema == nil {
		return presets
	}
	applyOverride(&presets[0], schema.Bronze)
	applyOverride(&presets[1], schema.Silver)
	applyOverride(&presets[2], schema.Gold)
	return presets
}

func applyOverride(preset *domain.TierPreset, override tierOverrideSchema) {
	if override.SelfConsumption != nil {
		preset.SelfConsumption = *override.SelfConsumption
	}
	if override.InstalledCost != nil {
		preset.InstalledCost = *override.InstalledCost
	}
}

func (ip *InputParser) resolveTierList(section string, tiers []domain.TierPreset, defaults func() []domain.TierPreset) ([]domain.TierPreset, error) {
	if len(tiers) == 0 {
		return defaults(), nil
	}
	seen := make(map[string]bool, len(tiers))
	for i, tier := range tiers {
		if err := tier.Validate(); err != nil {
			return nil, fmt.Errorf("%s tier %d: %w", section, i, err)
		}
		if seen[tier.Name] {
			return nil, fmt.Errorf("%s: duplicate tier name %q", section, tier.Name)
		}
		seen[tier.Name] = true
	}
	return tiers, nil
}
