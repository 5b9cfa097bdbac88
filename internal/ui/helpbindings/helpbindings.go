// Package helpbindings provides a scrollable popup listing the key bindings.
package helpbindings

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/datecombo/internal/keymap"
	"github.com/llehouerou/datecombo/internal/ui"
	"github.com/llehouerou/datecombo/internal/ui/popup"
	"github.com/llehouerou/datecombo/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

const (
	// Title, blank line, blank line, footer, border and margins.
	chromeHeight = 10
	minVisible   = 5
)

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{
	keymap.ContextGlobal,
	keymap.ContextPicker,
	keymap.ContextDropdown,
}

var categoryLabels = map[string]string{
	keymap.ContextGlobal:   "Global",
	keymap.ContextPicker:   "Date Fields",
	keymap.ContextDropdown: "Open List",
}

// Model holds the state for the help bindings popup.
type Model struct {
	ui.Base
	content  string
	viewport viewport.Model
}

// New creates a new help bindings model.
func New() Model {
	return Model{viewport: viewport.New(0, 0)}
}

// SetContexts sets which binding contexts to display and scrolls to the top.
func (m *Model) SetContexts(contexts []string) {
	m.content = buildContent(contexts)
	m.viewport.SetContent(m.content)
	m.viewport.GotoTop()
	m.layout()
}

// SetSize sets the screen size the popup is shown on.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.layout()
}

func (m *Model) layout() {
	lines := strings.Count(m.content, "\n") + 1
	m.viewport.Width = lipgloss.Width(m.content)
	m.viewport.Height = min(lines, max(m.AvailableHeight(chromeHeight), minVisible))
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements popup.Popup. The border is added by the host.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	footer := "?/esc close"
	if m.viewport.TotalLineCount() > m.viewport.Height {
		footer = "j/k scroll · " + footer
	}

	return styles.TitleGradient("Help") + "\n\n" +
		m.viewport.View() + "\n\n" +
		styles.T().S().Subtle.Render(footer)
}

// buildContent lists the bindings of each requested context under its
// header, in categoryOrder whatever order contexts come in.
func buildContent(contexts []string) string {
	t := styles.T()
	keyStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	headerStyle := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)

	var groups [][]keymap.Binding
	keyWidth := 0
	for _, ctx := range categoryOrder {
		if !slices.Contains(contexts, ctx) {
			continue
		}
		bindings := keymap.ByContext(ctx)
		for _, b := range bindings {
			keyWidth = max(keyWidth, lipgloss.Width(keyLabel(b.Keys)))
		}
		groups = append(groups, bindings)
	}

	var sections []string
	for _, bindings := range groups {
		if len(bindings) == 0 {
			continue
		}
		label := categoryLabels[bindings[0].Context]
		lines := []string{
			headerStyle.Render(label),
			t.S().Subtle.Render(strings.Repeat("─", keyWidth+15)),
		}
		for _, b := range bindings {
			key := keyLabel(b.Keys)
			key += strings.Repeat(" ", keyWidth-lipgloss.Width(key))
			lines = append(lines, keyStyle.Render(key)+"  "+t.S().Base.Render(b.Description))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}
	return strings.Join(sections, "\n\n")
}

// keyLabel joins keys for display, naming the space bar.
func keyLabel(keys []string) string {
	labels := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		labels[i] = k
	}
	return strings.Join(labels, ", ")
}
