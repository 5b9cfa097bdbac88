// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/datecombo/internal/keymap"
	"github.com/llehouerou/datecombo/internal/ui/action"
	"github.com/llehouerou/datecombo/internal/ui/confirm"
	"github.com/llehouerou/datecombo/internal/ui/datepicker"
	"github.com/llehouerou/datecombo/internal/ui/helpbindings"
	"github.com/llehouerou/datecombo/internal/ui/textinput"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.SetSize(msg.Width, msg.Height)
		m.GoTo.SetSize(msg.Width, msg.Height)
		m.Confirm.SetSize(msg.Width, msg.Height)
		m.Picker.FitWidth(msg.Width - 2*marginLeft)
		return m, nil

	case action.Msg:
		return m.handleAction(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	// Anything else (cursor blink) belongs to the open input.
	if m.ShowGoTo {
		_, cmd := m.GoTo.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case datepicker.ValueChanged:
		m.handleValueChanged(a)
	case textinput.Result:
		m.handleGoToResult(a)
	case helpbindings.Close:
		m.ShowHelp = false
	case confirm.Result:
		m.handleConfirmResult(a)
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Popups take all keys while open.
	if m.ShowGoTo {
		_, cmd := m.GoTo.Update(msg)
		return m, cmd
	}
	if m.ShowHelp {
		_, cmd := m.Help.Update(msg)
		return m, cmd
	}
	if m.ShowConfirm {
		_, cmd := m.Confirm.Update(msg)
		return m, cmd
	}

	switch m.Keys.ResolveIn(keymap.ContextGlobal, msg.String()) { //nolint:exhaustive // other actions go to the picker
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionHelp:
		m.Picker.Close()
		m.Help.SetContexts([]string{keymap.ContextGlobal, keymap.ContextPicker, keymap.ContextDropdown})
		m.ShowHelp = true
		return m, nil
	case keymap.ActionGoToDate:
		m.Picker.Close()
		m.GoTo.Start("Go to date", "YYYY-MM-DD or month", m.Picker.Value().String(), nil, m.Width, m.Height)
		m.ShowGoTo = true
		return m, m.GoTo.Init()
	case keymap.ActionClearHistory:
		m.askClearHistory()
		return m, nil
	}

	return m, m.Picker.Update(msg)
}
