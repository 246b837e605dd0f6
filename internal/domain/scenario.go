package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Segment identifies which customer flow a tier set belongs to.
type Segment string

const (
	SegmentResidential Segment = "residential"
	SegmentCommercial  Segment = "commercial"
	SegmentCommunity   Segment = "community"
)

// ConsumptionProfile describes a household's annual electricity demand and tariff.
// All energy values are kWh/year, monetary values GBP.
type ConsumptionProfile struct {
	AnnualUseKWh   decimal.Decimal `yaml:"annual_use_kwh" json:"annual_use_kwh"`
	UnitRate       decimal.Decimal `yaml:"unit_rate" json:"unit_rate"`             // GBP per kWh
	StandingCharge decimal.Decimal `yaml:"standing_charge" json:"standing_charge"` // GBP per day
	ExportRate     decimal.Decimal `yaml:"export_rate" json:"export_rate"`         // SEG, GBP per kWh
	EVAnnualKWh    decimal.Decimal `yaml:"ev_annual_kwh" json:"ev_annual_kwh"`
	HeatPumpKWh    decimal.Decimal `yaml:"heat_pump_kwh" json:"heat_pump_kwh"`
}

// TotalConsumption returns the full annual demand including EV and heat pump load.
func (p ConsumptionProfile) TotalConsumption() decimal.Decimal {
	return p.AnnualUseKWh.Add(p.EVAnnualKWh).Add(p.HeatPumpKWh)
}

// Validate rejects profiles that violate the engine's input contract.
func (p ConsumptionProfile) Validate() error {
	if p.AnnualUseKWh.IsNegative() {
		return fmt.Errorf("annual electricity use cannot be negative")
	}
	if p.UnitRate.IsNegative() {
		return fmt.Errorf("unit rate cannot be negative")
	}
	if p.StandingCharge.IsNegative() {
		return fmt.Errorf("standing charge cannot be negative")
	}
	if p.ExportRate.IsNegative() {
		return fmt.Errorf("export rate cannot be negative")
	}
	if p.EVAnnualKWh.IsNegative() {
		return fmt.Errorf("EV annual consumption cannot be negative")
	}
	if p.HeatPumpKWh.IsNegative() {
		return fmt.Errorf("heat pump annual consumption cannot be negative")
	}
	return nil
}

// EnvironmentAssumptions carries the site and grid constants shared by all tiers.
type EnvironmentAssumptions struct {
	Irradiance         decimal.Decimal `yaml:"irradiance" json:"irradiance"`                     // kWh per kWp per year
	GridCO2            decimal.Decimal `yaml:"grid_co2" json:"grid_co2"`                         // kg CO2 per kWh imported
	ExportCreditFactor decimal.Decimal `yaml:"export_credit_factor" json:"export_credit_factor"` // fraction of exported energy's avoided emissions credited
}

// Validate rejects assumptions outside the engine's input contract.
func (e EnvironmentAssumptions) Validate() error {
	if !e.Irradiance.IsPositive() {
		return fmt.Errorf("irradiance must be positive, got %s", e.Irradiance)
	}
	if e.GridCO2.IsNegative() {
		return fmt.Errorf("grid carbon intensity cannot be negative")
	}
	if e.ExportCreditFactor.IsNegative() || e.ExportCreditFactor.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("export credit factor must be between 0 and 1, got %s", e.ExportCreditFactor)
	}
	return nil
}

// TierPreset is one Bronze/Silver/Gold hardware configuration. Residential
// PV and battery sizes are fixed; commercial and community tiers take
// arbitrary sizes. Battery capacity is reported but has no effect on the
// financial model.
type TierPreset struct {
	Name            string          `yaml:"name" json:"name"`
	PVKWp           decimal.Decimal `yaml:"pv_kwp" json:"pv_kwp"`
	BatteryKWh      decimal.Decimal `yaml:"battery_kwh" json:"battery_kwh"`
	SelfConsumption decimal.Decimal `yaml:"self_consumption" json:"self_consumption"` // fraction of generation used on site
	InstalledCost   decimal.Decimal `yaml:"installed_cost" json:"installed_cost"`
}

// Validate rejects presets outside the engine's input contract.
func (t TierPreset) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("tier name is required")
	}
	if t.PVKWp.IsNegative() {
		return fmt.Errorf("tier %s: PV capacity cannot be negative", t.Name)
	}
	if t.BatteryKWh.IsNegative() {
		return fmt.Errorf("tier %s: battery capacity cannot be negative", t.Name)
	}
	if t.SelfConsumption.IsNegative() || t.SelfConsumption.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("tier %s: self-consumption rate must be between 0 and 1, got %s", t.Name, t.SelfConsumption)
	}
	if t.InstalledCost.IsNegative() {
		return fmt.Errorf("tier %s: installed cost cannot be negative", t.Name)
	}
	return nil
}

// Residential tier names, in presentation order.
const (
	TierBronze = "Bronze"
	TierSilver = "Silver"
	TierGold   = "Gold"
)

// ResidentialPresets returns the three fixed residential hardware tiers with
// the given self-consumption rates and installed costs. PV and battery sizes
// are the fixed product configurations and are not user-adjustable.
func ResidentialPresets(scBronze, scSilver, scGold, costBronze, costSilver, costGold decimal.Decimal) [3]TierPreset {
	return [3]TierPreset{
		{Name: TierBronze, PVKWp: decimal.NewFromFloat(3.6), BatteryKWh: decimal.NewFromFloat(5.0), SelfConsumption: scBronze, InstalledCost: costBronze},
		{Name: TierSilver, PVKWp: decimal.NewFromFloat(4.0), BatteryKWh: decimal.NewFromFloat(9.5), SelfConsumption: scSilver, InstalledCost: costSilver},
		{Name: TierGold, PVKWp: decimal.NewFromFloat(6.0), BatteryKWh: decimal.NewFromFloat(13.0), SelfConsumption: scGold, InstalledCost: costGold},
	}
}

// DefaultResidentialPresets returns the residential tiers with the stock
// self-consumption rates and installed costs.
func DefaultResidentialPresets() [3]TierPreset {
	return ResidentialPresets(
		decimal.NewFromFloat(0.65), decimal.NewFromFloat(0.75), decimal.NewFromFloat(0.85),
		decimal.NewFromInt(9000), decimal.NewFromInt(13000), decimal.NewFromInt(18500),
	)
}

// DefaultCommercialTiers returns the stock commercial quick-compare tiers.
func DefaultCommercialTiers() []TierPreset {
	return []TierPreset{
		{Name: TierBronze, PVKWp: decimal.NewFromInt(25), BatteryKWh: decimal.Zero, SelfConsumption: decimal.NewFromFloat(0.70), InstalledCost: decimal.NewFromInt(30000)},
		{Name: TierSilver, PVKWp: decimal.NewFromInt(50), BatteryKWh: decimal.NewFromInt(50), SelfConsumption: decimal.NewFromFloat(0.80), InstalledCost: decimal.NewFromInt(60000)},
		{Name: TierGold, PVKWp: decimal.NewFromInt(100), BatteryKWh: decimal.NewFromInt(100), SelfConsumption: decimal.NewFromFloat(0.85), InstalledCost: decimal.NewFromInt(130000)},
	}
}

// DefaultCommunityTiers returns the stock community quick-compare tiers.
func DefaultCommunityTiers() []TierPreset {
	return []TierPreset{
		{Name: TierBronze, PVKWp: decimal.NewFromInt(50), BatteryKWh: decimal.NewFromInt(20), SelfConsumption: decimal.NewFromFloat(0.75), InstalledCost: decimal.NewFromInt(65000)},
		{Name: TierSilver, PVKWp: decimal.NewFromInt(100), BatteryKWh: decimal.NewFromInt(50), SelfConsumption: decimal.NewFromFloat(0.82), InstalledCost: decimal.NewFromInt(120000)},
		{Name: TierGold, PVKWp: decimal.NewFromInt(250), BatteryKWh: decimal.NewFromInt(250), SelfConsumption: decimal.NewFromFloat(0.88), InstalledCost: decimal.NewFromInt(320000)},
	}
}

// DefaultProfile returns the stock residential consumption profile.
func DefaultProfile() ConsumptionProfile {
	return ConsumptionProfile{
		AnnualUseKWh:   decimal.NewFromInt(4200),
		UnitRate:       decimal.NewFromFloat(0.30),
		StandingCharge: decimal.NewFromFloat(0.55),
		ExportRate:     decimal.NewFromFloat(0.15),
	}
}

// DefaultEnvironment returns the stock grid and site assumptions.
func DefaultEnvironment() EnvironmentAssumptions {
	return EnvironmentAssumptions{
		Irradiance:         decimal.NewFromInt(1000),
		GridCO2:            decimal.NewFromFloat(0.20),
		ExportCreditFactor: decimal.NewFromFloat(0.5),
	}
}
