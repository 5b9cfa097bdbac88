package styles

import "github.com/charmbracelet/lipgloss"

// FieldStyle returns the box style of a picker field based on focus state.
func FieldStyle(focused bool) lipgloss.Style {
	t := T()
	border := t.Border
	if focused {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

// DropdownStyle returns the box style of an open dropdown list.
func DropdownStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(T().BorderFocus)
}
