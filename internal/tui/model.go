package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/nexyra/energy-advisor/internal/calculation"
	"github.com/nexyra/energy-advisor/internal/domain"
	"github.com/nexyra/energy-advisor/internal/tui/components"
)

// Slider indices, in display order.
const (
	sliderAnnualUse = iota
	sliderUnitRate
	sliderStanding
	sliderExportRate
	sliderEV
	sliderHeatPump
	sliderIrradiance
	sliderSCBronze
	sliderSCSilver
	sliderSCGold
	sliderCount
)

// KeyMap defines the what-if explorer key bindings.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Decrease key.Binding
	Increase key.Binding
	Reset    key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous parameter")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next parameter")),
		Decrease: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "decrease")),
		Increase: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "increase")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset defaults")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is the what-if explorer state: one slider per engine input plus the
// latest residential comparison.
type Model struct {
	keys    KeyMap
	sliders [sliderCount]*components.ParameterSlider
	focused int

	engine     *calculation.Engine
	comparison domain.ResidentialComparison

	width  int
	height int
}

// NewModel creates the explorer seeded with the stock scenario.
func NewModel() Model {
	m := Model{
		keys:   DefaultKeyMap(),
		engine: calculation.NewEngine(),
	}
	m.buildSliders()
	m.sliders[m.focused].IsFocused = true
	m.recalculate()
	return m
}

func (m *Model) buildSliders() {
	m.sliders[sliderAnnualUse] = components.NewParameterSlider("Annual electricity use", 4200, 0, 10000, 100).
		WithUnit("kWh").WithFormat("%.0f")
	m.sliders[sliderUnitRate] = components.NewParameterSlider("Unit rate", 0.30, 0.05, 1.00, 0.01).
		WithUnit("£/kWh")
	m.sliders[sliderStanding] = components.NewParameterSlider("Standing charge", 0.55, 0, 2.00, 0.01).
		WithUnit("£/day")
	m.sliders[sliderExportRate] = components.NewParameterSlider("Export (SEG) rate", 0.15, 0, 0.50, 0.01).
		WithUnit("£/kWh")
	m.sliders[sliderEV] = components.NewParameterSlider("EV consumption", 0, 0, 8000, 100).
		WithUnit("kWh").WithFormat("%.0f")
	m.sliders[sliderHeatPump] = components.NewParameterSlider("Heat pump consumption", 0, 0, 8000, 100).
		WithUnit("kWh").WithFormat("%.0f")
	m.sliders[sliderIrradiance] = components.NewParameterSlider("Irradiance", 1000, 600, 1400, 10).
		WithUnit("kWh/kWp·yr").WithFormat("%.0f")
	m.sliders[sliderSCBronze] = components.NewParameterSlider("Bronze self-consumption", 0.65, 0.40, 0.95, 0.01)
	m.sliders[sliderSCSilver] = components.NewParameterSlider("Silver self-consumption", 0.75, 0.40, 0.95, 0.01)
	m.sliders[sliderSCGold] = components.NewParameterSlider("Gold self-consumption", 0.85, 0.40, 0.95, 0.01)
}

// profile assembles the engine inputs from the current slider values.
func (m *Model) profile() domain.ConsumptionProfile {
	return domain.ConsumptionProfile{
		AnnualUseKWh:   decimal.NewFromFloat(m.sliders[sliderAnnualUse].Value),
		UnitRate:       decimal.NewFromFloat(m.sliders[sliderUnitRate].Value),
		StandingCharge: decimal.NewFromFloat(m.sliders[sliderStanding].Value),
		ExportRate:     decimal.NewFromFloat(m.sliders[sliderExportRate].Value),
		EVAnnualKWh:    decimal.NewFromFloat(m.sliders[sliderEV].Value),
		HeatPumpKWh:    decimal.NewFromFloat(m.sliders[sliderHeatPump].Value),
	}
}

func (m *Model) environment() domain.EnvironmentAssumptions {
	env := domain.DefaultEnvironment()
	env.Irradiance = decimal.NewFromFloat(m.sliders[sliderIrradiance].Value)
	return env
}

func (m *Model) presets() [3]domain.TierPreset {
	defaults := domain.DefaultResidentialPresets()
	return domain.ResidentialPresets(
		decimal.NewFromFloat(m.sliders[sliderSCBronze].Value),
		decimal.NewFromFloat(m.sliders[sliderSCSilver].Value),
		decimal.NewFromFloat(m.sliders[sliderSCGold].Value),
		defaults[0].InstalledCost,
		defaults[1].InstalledCost,
		defaults[2].InstalledCost,
	)
}

func (m *Model) recalculate() {
	m.comparison = m.engine.EvaluateResidential(m.profile(), m.environment(), m.presets())
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}
