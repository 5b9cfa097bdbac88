// Package datepicker renders a datesel.Selector as three boxed fields with
// drop-down lists, driven by the keyboard.
package datepicker

import (
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/datecombo/internal/datesel"
	"github.com/llehouerou/datecombo/internal/keymap"
	"github.com/llehouerou/datecombo/internal/locale"
	"github.com/llehouerou/datecombo/internal/ui"
	"github.com/llehouerou/datecombo/internal/ui/cursor"
	"github.com/llehouerou/datecombo/internal/ui/render"
	"github.com/llehouerou/datecombo/internal/ui/styles"
)

const (
	dayWidth  = 2
	yearWidth = 4
	arrow     = " ▾"
)

// Option configures a Model.
type Option func(*Model)

// WithLocale sets the locale used for month names and field order.
func WithLocale(loc locale.Locale) Option {
	return func(m *Model) {
		if loc != nil {
			m.loc = loc
		}
	}
}

// WithDropdownHeight sets how many entries an open list shows.
func WithDropdownHeight(h int) Option {
	return func(m *Model) {
		if h > 0 {
			m.dropdownHeight = h
		}
	}
}

// Model is the date picker component.
type Model struct {
	ui.Base
	sel            *datesel.Selector
	loc            locale.Locale
	order          []locale.Field
	focus          int // index into order
	open           bool
	cursors        map[locale.Field]*cursor.Cursor
	dropdownHeight int
	keys           *keymap.Resolver
	pending        []datesel.Date
	compact        bool // short month names
}

// New creates a picker over sel. The picker takes over the selector's
// value-changed handler and reports changes as ValueChanged actions.
func New(sel *datesel.Selector, opts ...Option) *Model {
	m := &Model{
		sel:            sel,
		loc:            locale.English,
		dropdownHeight: ui.DropdownHeight,
		keys:           keymap.NewResolver(keymap.Bindings),
		cursors:        make(map[locale.Field]*cursor.Cursor, 3),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.order = m.loc.Order()
	for _, f := range m.order {
		c := cursor.New(ui.DropdownMargin)
		m.cursors[f] = &c
	}
	sel.SetOnChange(func(d datesel.Date) {
		m.pending = append(m.pending, d)
	})
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles key messages. Keys bound to the global context are ignored
// so the host can act on them.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	ctx := keymap.ContextPicker
	if m.open {
		ctx = keymap.ContextDropdown
	}
	key := keyMsg.String()
	if m.keys.IsGlobal(ctx, key) {
		return nil
	}
	if m.open {
		m.handleDropdown(m.keys.ResolveIn(ctx, key))
	} else {
		m.handlePicker(m.keys.ResolveIn(ctx, key))
	}
	return m.flush()
}

func (m *Model) handlePicker(a keymap.Action) {
	switch a { //nolint:exhaustive // global actions belong to the host
	case keymap.ActionNextField:
		m.focus = (m.focus + 1) % len(m.order)
	case keymap.ActionPrevField:
		m.focus = (m.focus + len(m.order) - 1) % len(m.order)
	case keymap.ActionPrev:
		m.step(-1)
	case keymap.ActionNext:
		m.step(1)
	case keymap.ActionFirst:
		m.selectIndex(0)
	case keymap.ActionLast:
		m.selectIndex(m.listLen() - 1)
	case keymap.ActionOpen:
		m.Open()
	case keymap.ActionToday:
		if today := m.sel.Today(); m.sel.Contains(today) {
			m.sel.Select(today)
		}
	}
}

func (m *Model) handleDropdown(a keymap.Action) {
	c := m.cursors[m.Focused()]
	switch a { //nolint:exhaustive // global actions belong to the host
	case keymap.ActionOpen:
		m.selectIndex(c.Pos())
		m.open = false
	case keymap.ActionCancel:
		m.open = false
	default:
		c.HandleAction(a, m.listLen(), m.dropdownHeight)
	}
}

// flush turns queued selector changes into ValueChanged commands.
func (m *Model) flush() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(m.pending))
	for _, d := range m.pending {
		cmds = append(cmds, func() tea.Msg { return ActionMsg(ValueChanged{Value: d}) })
	}
	m.pending = m.pending[:0]
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// step moves the focused field by delta entries in its list.
func (m *Model) step(delta int) {
	idx := m.currentIndex()
	if idx < 0 {
		return
	}
	m.selectIndex(idx + delta)
}

// selectIndex selects entry i of the focused field's list, clamped to the list.
func (m *Model) selectIndex(i int) {
	n := m.listLen()
	if n == 0 {
		return
	}
	i = max(min(i, n-1), 0)
	switch m.Focused() {
	case locale.FieldDay:
		m.sel.SelectDay(m.sel.Days()[i])
	case locale.FieldMonth:
		m.sel.SelectMonth(m.sel.Months()[i])
	case locale.FieldYear:
		m.sel.SelectYear(m.sel.Years()[i])
	}
}

func (m *Model) listLen() int {
	switch m.Focused() {
	case locale.FieldDay:
		return len(m.sel.Days())
	case locale.FieldMonth:
		return len(m.sel.Months())
	case locale.FieldYear:
		return len(m.sel.Years())
	}
	return 0
}

// currentIndex returns the index of the selected value in the focused list.
func (m *Model) currentIndex() int {
	switch m.Focused() {
	case locale.FieldDay:
		return indexOf(m.sel.Days(), m.sel.Day())
	case locale.FieldMonth:
		return indexOf(m.sel.Months(), m.sel.Month())
	case locale.FieldYear:
		return indexOf(m.sel.Years(), m.sel.Year())
	}
	return -1
}

func indexOf[T comparable](list []T, v T) int {
	for i, x := range list {
		if x == v {
			return i
		}
	}
	return -1
}

// Open shows the focused field's list with the selected entry highlighted.
func (m *Model) Open() {
	m.open = true
	m.syncCursor()
}

// Close hides the list without changing the value.
func (m *Model) Close() {
	m.open = false
}

// IsOpen reports whether a list is showing.
func (m *Model) IsOpen() bool {
	return m.open
}

// Focused returns the field that has keyboard focus.
func (m *Model) Focused() locale.Field {
	return m.order[m.focus]
}

// FocusField moves keyboard focus to f and closes any open list.
func (m *Model) FocusField(f locale.Field) {
	if i := indexOf(m.order, f); i >= 0 {
		m.focus = i
		m.open = false
	}
}

func (m *Model) syncCursor() {
	if !m.open {
		return
	}
	m.cursors[m.Focused()].Center(m.currentIndex(), m.listLen(), m.dropdownHeight)
}

// Selector returns the underlying selector.
func (m *Model) Selector() *datesel.Selector {
	return m.sel
}

// Locale returns the picker's locale.
func (m *Model) Locale() locale.Locale {
	return m.loc
}

// SetValue selects d without emitting ValueChanged.
func (m *Model) SetValue(d datesel.Date) bool {
	ok := m.sel.SetValue(d)
	m.syncCursor()
	return ok
}

// SetBounds replaces the bounds without emitting ValueChanged.
func (m *Model) SetBounds(minDate, maxDate datesel.Date) {
	m.sel.SetBounds(minDate, maxDate)
	m.syncCursor()
}

// Value returns the selected date.
func (m *Model) Value() datesel.Date { return m.sel.Value() }

// Minimum returns the inclusive lower bound.
func (m *Model) Minimum() datesel.Date { return m.sel.Minimum() }

// Maximum returns the inclusive upper bound.
func (m *Model) Maximum() datesel.Date { return m.sel.Maximum() }

// Day returns the selected day of month.
func (m *Model) Day() int { return m.sel.Day() }

// Month returns the selected month.
func (m *Model) Month() time.Month { return m.sel.Month() }

// Year returns the selected year.
func (m *Model) Year() int { return m.sel.Year() }

// View renders the fields side by side in locale order.
func (m *Model) View() string {
	cells := make([]string, 0, 2*len(m.order))
	for i, f := range m.order {
		if i > 0 {
			cells = append(cells, strings.Repeat(" ", ui.FieldGap))
		}
		focused := m.IsFocused() && i == m.focus
		text := render.Pad(m.fieldText(f), m.textWidth(f)) + arrow
		cells = append(cells, styles.FieldStyle(focused).Render(text))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// DropdownView renders the open list and the column where it starts relative
// to the picker's left edge. It returns "" when no list is open.
func (m *Model) DropdownView() (view string, left int) {
	if !m.open {
		return "", 0
	}
	f := m.Focused()
	for _, g := range m.order[:m.focus] {
		left += m.cellWidth(g) + ui.FieldGap
	}

	labels := m.labels(f)
	c := m.cursors[f]
	start, end := c.VisibleRange(len(labels), m.dropdownHeight)
	current := m.currentIndex()
	inner := m.cellWidth(f) - ui.BorderHeight

	st := styles.T().S()
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		row := render.TruncateAndPad(" "+labels[i], inner)
		switch {
		case i == c.Pos():
			row = st.Cursor.Render(row)
		case i == current:
			row = st.Selected.Render(row)
		default:
			row = st.Base.Render(row)
		}
		rows = append(rows, row)
	}
	return styles.DropdownStyle().Render(strings.Join(rows, "\n")), left
}

// FitWidth switches to short month names when the fields would not fit in
// width cells with full names.
func (m *Model) FitWidth(width int) {
	m.compact = false
	if m.ViewWidth() > width {
		m.compact = true
	}
}

// Compact reports whether short month names are shown.
func (m *Model) Compact() bool { return m.compact }

// ViewWidth returns the rendered width of the fields.
func (m *Model) ViewWidth() int {
	w := ui.FieldGap * (len(m.order) - 1)
	for _, f := range m.order {
		w += m.cellWidth(f)
	}
	return w
}

// ViewHeight returns the rendered height of the fields.
func (m *Model) ViewHeight() int {
	return 1 + ui.BorderHeight
}

func (m *Model) cellWidth(f locale.Field) int {
	return m.textWidth(f) + ui.FieldChrome
}

func (m *Model) textWidth(f locale.Field) int {
	switch f {
	case locale.FieldDay:
		return dayWidth
	case locale.FieldMonth:
		if m.compact {
			return locale.MaxShortMonthWidth(m.loc)
		}
		return locale.MaxMonthWidth(m.loc)
	default:
		return yearWidth
	}
}

func (m *Model) fieldText(f locale.Field) string {
	switch f {
	case locale.FieldDay:
		return render.PadLeft(strconv.Itoa(m.sel.Day()), dayWidth)
	case locale.FieldMonth:
		return m.monthName(m.sel.Month())
	default:
		return strconv.Itoa(m.sel.Year())
	}
}

func (m *Model) labels(f locale.Field) []string {
	var out []string
	switch f {
	case locale.FieldDay:
		for _, d := range m.sel.Days() {
			out = append(out, render.PadLeft(strconv.Itoa(d), dayWidth))
		}
	case locale.FieldMonth:
		for _, mo := range m.sel.Months() {
			out = append(out, m.monthName(mo))
		}
	case locale.FieldYear:
		for _, y := range m.sel.Years() {
			out = append(out, strconv.Itoa(y))
		}
	}
	return out
}

func (m *Model) monthName(mo time.Month) string {
	if m.compact {
		return m.loc.ShortMonthName(mo)
	}
	return m.loc.MonthName(mo)
}
