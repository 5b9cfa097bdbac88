// internal/app/persistence.go
package app

import (
	"fmt"

	"github.com/llehouerou/datecombo/internal/datesel"
	"github.com/llehouerou/datecombo/internal/errmsg"
	"github.com/llehouerou/datecombo/internal/state"
)

// saveValue persists the current value and bounds (debounced by the manager).
func (m *Model) saveValue() {
	if m.StateMgr == nil {
		return
	}
	m.StateMgr.SaveValue(state.PickerState{
		Value:   m.Picker.Value(),
		Minimum: m.Picker.Minimum(),
		Maximum: m.Picker.Maximum(),
	})
}

// recordHistory adds d to the recent values and reloads the list.
func (m *Model) recordHistory(d datesel.Date) {
	if m.StateMgr == nil || m.HistorySize <= 0 {
		return
	}
	entry := state.HistoryEntry{Value: d, SelectedAt: m.Clock()}
	if err := m.StateMgr.AddHistory(entry, m.HistorySize); err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpHistorySave, err)
		return
	}
	m.loadHistory()
}

func (m *Model) clearHistory() {
	if m.StateMgr == nil {
		return
	}
	n, err := m.StateMgr.ClearHistory()
	if err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpHistoryClear, err)
		return
	}
	m.History = nil
	m.clearStatus()
	m.StatusMsg = fmt.Sprintf("Cleared %d recent dates", n)
}

func (m *Model) loadHistory() {
	if m.StateMgr == nil || m.HistorySize <= 0 {
		return
	}
	history, err := m.StateMgr.RecentValues(m.HistorySize)
	if err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpHistoryLoad, err)
		return
	}
	m.History = history
}
