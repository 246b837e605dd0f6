package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.focusSlider(m.focused - 1)

	case key.Matches(msg, m.keys.Down):
		m.focusSlider(m.focused + 1)

	case key.Matches(msg, m.keys.Decrease):
		m.sliders[m.focused].Decrement()
		m.recalculate()

	case key.Matches(msg, m.keys.Increase):
		m.sliders[m.focused].Increment()
		m.recalculate()

	case key.Matches(msg, m.keys.Reset):
		m.buildSliders()
		m.sliders[m.focused].IsFocused = true
		m.recalculate()
	}
	return m, nil
}

// focusSlider moves focus, wrapping at both ends.
func (m *Model) focusSlider(index int) {
	m.sliders[m.focused].IsFocused = false
	m.focused = (index + sliderCount) % sliderCount
	m.sliders[m.focused].IsFocused = true
}
