package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/datecombo/internal/ui/popup"
)

// Component is the minimal surface a harness drives: pointer-receiver
// components that update in place and return a command.
type Component interface {
	Update(msg tea.Msg) tea.Cmd
	View() string
}

// popupComponent adapts a popup.Popup, whose Update returns the next popup.
type popupComponent struct {
	p popup.Popup
}

func (c *popupComponent) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.p, cmd = c.p.Update(msg)
	return cmd
}

func (c *popupComponent) View() string {
	return c.p.View()
}

func (c *popupComponent) SetSize(width, height int) {
	c.p.SetSize(width, height)
}

type sizer interface {
	SetSize(width, height int)
}

// Harness wraps a component for testing, providing helpers to simulate
// user interactions and inspect state.
type Harness struct {
	c    Component
	cmds []tea.Cmd
}

// NewHarness creates a test harness for a component.
func NewHarness(c Component) *Harness {
	return &Harness{c: c}
}

// NewPopupHarness creates a test harness for any popup.Popup implementation.
// It initializes the popup and captures any init commands.
func NewPopupHarness(p popup.Popup) *Harness {
	h := &Harness{c: &popupComponent{p: p}}
	if cmd := p.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// SetSize forwards the dimensions when the component accepts them.
func (h *Harness) SetSize(width, height int) {
	if sz, ok := h.c.(sizer); ok {
		sz.SetSize(width, height)
	}
}

// View returns the component's rendered content.
func (h *Harness) View() string {
	return h.c.View()
}

// SendMsg sends any message to the component and returns the resulting command.
func (h *Harness) SendMsg(msg tea.Msg) tea.Cmd {
	cmd := h.c.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey simulates typing runes.
func (h *Harness) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a special key (enter, escape, tab, etc.).
func (h *Harness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// SendEnter sends the enter key.
func (h *Harness) SendEnter() tea.Cmd {
	return h.SendSpecialKey(tea.KeyEnter)
}

// SendEscape sends the escape key.
func (h *Harness) SendEscape() tea.Cmd {
	return h.SendSpecialKey(tea.KeyEscape)
}

// SendUp sends the up arrow key.
func (h *Harness) SendUp() tea.Cmd {
	return h.SendSpecialKey(tea.KeyUp)
}

// SendDown sends the down arrow key.
func (h *Harness) SendDown() tea.Cmd {
	return h.SendSpecialKey(tea.KeyDown)
}

// SendLeft sends the left arrow key.
func (h *Harness) SendLeft() tea.Cmd {
	return h.SendSpecialKey(tea.KeyLeft)
}

// SendRight sends the right arrow key.
func (h *Harness) SendRight() tea.Cmd {
	return h.SendSpecialKey(tea.KeyRight)
}

// SendTab sends the tab key.
func (h *Harness) SendTab() tea.Cmd {
	return h.SendSpecialKey(tea.KeyTab)
}

// Commands returns all commands collected since creation or last ClearCommands.
func (h *Harness) Commands() []tea.Cmd {
	return h.cmds
}

// LastCommand returns the most recent command, or nil if none.
func (h *Harness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// ClearCommands clears the collected commands.
func (h *Harness) ClearCommands() {
	h.cmds = nil
}

// ExecuteCmd runs a command and returns the resulting message.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// ExecuteAndSend executes a command and feeds the resulting message back.
func (h *Harness) ExecuteAndSend(cmd tea.Cmd) (tea.Msg, tea.Cmd) {
	msg := ExecuteCmd(cmd)
	if msg == nil {
		return nil, nil
	}
	return msg, h.SendMsg(msg)
}

// ViewContains checks if the component's view contains the given substring.
func (h *Harness) ViewContains(substr string) bool {
	return ContainsLine(StripANSI(h.View()), substr)
}

// AssertViewContains returns an error message if view doesn't contain substr.
func (h *Harness) AssertViewContains(substr string) string {
	return AssertContains(h.View(), substr)
}

// AssertViewNotContains returns an error message if view contains substr.
func (h *Harness) AssertViewNotContains(substr string) string {
	return AssertNotContains(h.View(), substr)
}
