// internal/app/handlers.go
package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/llehouerou/datecombo/internal/datesel"
	"github.com/llehouerou/datecombo/internal/errmsg"
	"github.com/llehouerou/datecombo/internal/locale"
	"github.com/llehouerou/datecombo/internal/ui/confirm"
	"github.com/llehouerou/datecombo/internal/ui/datepicker"
	"github.com/llehouerou/datecombo/internal/ui/textinput"
)

var errOutsideBounds = errors.New("outside bounds")

func (m *Model) clearStatus() {
	m.StatusMsg, m.WarnMsg, m.ErrorMsg = "", "", ""
}

// handleValueChanged persists a value the user committed in the picker.
func (m *Model) handleValueChanged(a datepicker.ValueChanged) {
	m.clearStatus()
	m.saveValue()
	m.recordHistory(a.Value)
}

// parseGoTo accepts a full date or a month name, which keeps the current
// year and day.
func (m *Model) parseGoTo(text string) (datesel.Date, error) {
	d, err := datesel.ParseDate(text)
	if err == nil {
		return d, nil
	}
	month, ok := locale.MonthIndex(m.Locale, text)
	if !ok {
		return datesel.Date{}, err
	}
	cur := m.Picker.Value()
	return datesel.NewDate(cur.Year, month, min(cur.Day, datesel.DaysIn(cur.Year, month))), nil
}

// handleGoToResult applies the date typed in the go-to popup.
func (m *Model) handleGoToResult(r textinput.Result) {
	m.ShowGoTo = false
	m.GoTo.Reset()
	if r.Canceled {
		return
	}

	text := strings.TrimSpace(r.Text)
	d, err := m.parseGoTo(text)
	if err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpParseDate, err)
		return
	}
	if !m.Picker.SetValue(d) {
		m.WarnMsg = errmsg.FormatWith(errmsg.OpGoToDate, text, errOutsideBounds)
		return
	}

	// Direct sets do not raise ValueChanged; save without touching history.
	m.clearStatus()
	m.StatusMsg = "Moved to " + m.Locale.FormatDate(d)
	m.saveValue()
}

type clearHistoryContext struct{}

// askClearHistory opens the confirmation for wiping the recent list.
func (m *Model) askClearHistory() {
	if len(m.History) == 0 {
		m.StatusMsg = "No recent dates"
		return
	}
	m.Picker.Close()
	msg := fmt.Sprintf("%d recent dates will be removed.", len(m.History))
	m.Confirm.Show("Clear recent dates?", msg, clearHistoryContext{}, m.Width, m.Height)
	m.ShowConfirm = true
}

func (m *Model) handleConfirmResult(r confirm.Result) {
	m.ShowConfirm = false
	m.Confirm.Reset()
	if !r.Confirmed {
		return
	}
	if _, ok := r.Context.(clearHistoryContext); ok {
		m.clearHistory()
	}
}
