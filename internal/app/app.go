// internal/app/app.go
package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/datecombo/internal/datesel"
	"github.com/llehouerou/datecombo/internal/errmsg"
	"github.com/llehouerou/datecombo/internal/keymap"
	"github.com/llehouerou/datecombo/internal/locale"
	"github.com/llehouerou/datecombo/internal/state"
	"github.com/llehouerou/datecombo/internal/ui/confirm"
	"github.com/llehouerou/datecombo/internal/ui/datepicker"
	"github.com/llehouerou/datecombo/internal/ui/helpbindings"
	"github.com/llehouerou/datecombo/internal/ui/textinput"
)

// Options configures the demo form.
type Options struct {
	Locale         locale.Locale
	Minimum        datesel.Date
	Maximum        datesel.Date
	Value          datesel.Date // zero = restore the saved value, else today
	DropdownHeight int
	Remember       bool
	HistorySize    int
	Clock          datesel.Clock
	State          state.Interface // nil disables persistence
	Warning        string          // shown in the status line on start
}

// Model is the root application model containing all state.
type Model struct {
	Picker      *datepicker.Model
	Locale      locale.Locale
	Keys        *keymap.Resolver
	StateMgr    state.Interface
	History     []state.HistoryEntry
	HistorySize int
	GoTo        textinput.Model
	ShowGoTo    bool
	Help        helpbindings.Model
	ShowHelp    bool
	Confirm     confirm.Model
	ShowConfirm bool
	StatusMsg   string
	WarnMsg     string
	ErrorMsg    string
	Clock       datesel.Clock
	Width       int
	Height      int
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// New creates the form model. Bounds are expected to be resolved already.
func New(opts Options) Model {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Locale == nil {
		opts.Locale = locale.English
	}

	selOpts := []datesel.Option{
		datesel.WithClock(opts.Clock),
		datesel.WithBounds(opts.Minimum, opts.Maximum),
	}
	if !opts.Value.IsZero() {
		selOpts = append(selOpts, datesel.WithValue(opts.Value))
	}
	sel := datesel.New(selOpts...)

	picker := datepicker.New(sel,
		datepicker.WithLocale(opts.Locale),
		datepicker.WithDropdownHeight(opts.DropdownHeight),
	)
	picker.SetFocused(true)

	m := Model{
		Picker:      picker,
		Locale:      opts.Locale,
		Keys:        keymap.NewResolver(keymap.Bindings),
		StateMgr:    opts.State,
		HistorySize: opts.HistorySize,
		GoTo:        textinput.New(),
		Help:        helpbindings.New(),
		Confirm:     confirm.New(),
		WarnMsg:     opts.Warning,
		Clock:       opts.Clock,
	}

	if opts.Value.IsZero() && opts.Remember {
		m.restoreValue()
	}
	m.loadHistory()
	return m
}

func (m *Model) restoreValue() {
	if m.StateMgr == nil {
		return
	}
	saved, err := m.StateMgr.GetValue()
	if err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpStateLoad, err)
		return
	}
	if saved == nil || m.Picker.SetValue(saved.Value) {
		return
	}
	m.WarnMsg = "Last date " + m.Locale.FormatDate(saved.Value) + " is outside the range"
	if !saved.Minimum.IsZero() && !saved.Maximum.IsZero() {
		m.WarnMsg = fmt.Sprintf("Last date %s not restored: range was %s to %s",
			m.Locale.FormatDate(saved.Value),
			m.Locale.FormatDate(saved.Minimum),
			m.Locale.FormatDate(saved.Maximum))
	}
}

func (m Model) today() datesel.Date {
	return datesel.FromTime(m.Clock())
}
