package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyBoldGradient renders bold text whose foreground blends from one
// color to the other, one step per grapheme cluster. Colors that are not
// #rrggbb hex fall back to a solid from.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	base := lipgloss.NewStyle().Bold(true)
	start, errFrom := colorful.Hex(string(from))
	end, errTo := colorful.Hex(string(to))
	if len(clusters) < 2 || errFrom != nil || errTo != nil {
		return base.Foreground(from).Render(text)
	}

	var b strings.Builder
	last := float64(len(clusters) - 1)
	for i, cluster := range clusters {
		// HCL keeps the blend perceptually even.
		c := start.BlendHcl(end, float64(i)/last).Clamped()
		b.WriteString(base.Foreground(lipgloss.Color(c.Hex())).Render(cluster))
	}
	return b.String()
}

// TitleGradient renders a bold title blended from the primary to the secondary accent.
func TitleGradient(text string) string {
	t := T()
	return ApplyBoldGradient(text, t.Primary, t.Secondary)
}
