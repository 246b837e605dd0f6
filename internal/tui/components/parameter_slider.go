package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#A7A9AC"))
	focusedLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00B4B6")).Bold(true)
	valueStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7F7F7"))
	trackStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#3A3A3A"))
	thumbStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#00B4B6"))
)

// ParameterSlider displays an adjustable numeric parameter with a visual
// slider bar.
type ParameterSlider struct {
	Label     string
	Value     float64
	Min       float64
	Max       float64
	Step      float64
	Unit      string // e.g. "kWh", "£/kWh"
	Format    string // e.g. "%.2f", "%.0f"
	Width     int
	IsFocused bool
}

// NewParameterSlider creates a slider with sensible defaults.
func NewParameterSlider(label string, value, min, max, step float64) *ParameterSlider {
	return &ParameterSlider{
		Label:  label,
		Value:  value,
		Min:    min,
		Max:    max,
		Step:   step,
		Format: "%.2f",
		Width:  24,
	}
}

// WithUnit sets the unit suffix.
func (p *ParameterSlider) WithUnit(unit string) *ParameterSlider {
	p.Unit = unit
	return p
}

// WithFormat sets the value format string.
func (p *ParameterSlider) WithFormat(format string) *ParameterSlider {
	p.Format = format
	return p
}

// Increment increases the value by one step, clamped to Max.
func (p *ParameterSlider) Increment() {
	p.Value = math.Min(p.Max, p.Value+p.Step)
}

// Decrement decreases the value by one step, clamped to Min.
func (p *ParameterSlider) Decrement() {
	p.Value = math.Max(p.Min, p.Value-p.Step)
}

// Percentage returns the value's position within the range.
func (p *ParameterSlider) Percentage() float64 {
	if p.Max == p.Min {
		return 0
	}
	return (p.Value - p.Min) / (p.Max - p.Min)
}

// Render returns the slider as a single styled line.
func (p *ParameterSlider) Render() string {
	label := labelStyle
	if p.IsFocused {
		label = focusedLabelStyle
	}

	valueStr := fmt.Sprintf(p.Format, p.Value)
	if p.Unit != "" {
		valueStr += " " + p.Unit
	}

	return fmt.Sprintf("%s %s %s",
		label.Width(28).Render(p.Label),
		p.renderBar(),
		valueStyle.Render(valueStr))
}

func (p *ParameterSlider) renderBar() string {
	filled := int(math.Round(float64(p.Width) * p.Percentage()))
	if filled < 0 {
		filled = 0
	}
	if filled > p.Width {
		filled = p.Width
	}

	var bar strings.Builder
	bar.WriteString("[")
	for i := 0; i < p.Width; i++ {
		switch {
		case i == filled || (filled == p.Width && i == p.Width-1):
			bar.WriteString(thumbStyle.Render("●"))
		case i < filled:
			bar.WriteString(thumbStyle.Render("━"))
		default:
			bar.WriteString(trackStyle.Render("─"))
		}
	}
	bar.WriteString("]")
	return bar.String()
}
