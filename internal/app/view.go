// internal/app/view.go
package app

import (
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/datecombo/internal/datesel"
	"github.com/llehouerou/datecombo/internal/ui"
	"github.com/llehouerou/datecombo/internal/ui/overlay"
	"github.com/llehouerou/datecombo/internal/ui/popup"
	"github.com/llehouerou/datecombo/internal/ui/render"
	"github.com/llehouerou/datecombo/internal/ui/styles"
)

const (
	appTitle   = "datecombo"
	marginLeft = 2
	pickerTop  = 2 // title, blank line
	footerHint = "? help · / go to date · X clear recent · q quit"
)

// View renders the form, then the open dropdown or popup on top of it.
func (m Model) View() string {
	width := max(m.Width, ui.MinFormWidth, m.Picker.ViewWidth()+2*marginLeft)
	st := styles.T().S()
	indent := strings.Repeat(" ", marginLeft)

	lines := []string{indent + styles.TitleGradient(appTitle), ""}
	for line := range strings.SplitSeq(m.Picker.View(), "\n") {
		lines = append(lines, indent+line)
	}
	lines = append(lines, "",
		indent+st.Base.Render("Selected: ")+st.Title.Render(m.selectedLabel()),
		indent+st.Muted.Render("Range:    "+m.rangeLabel()),
	)

	if len(m.History) > 0 {
		lines = append(lines, "", indent+st.Muted.Render("Recent"))
		for _, h := range m.History {
			row := "  " + m.Locale.FormatDate(h.Value)
			lines = append(lines, indent+st.Subtle.Render(render.Truncate(row, width-marginLeft)))
		}
	}

	lines = append(lines, "")
	switch {
	case m.ErrorMsg != "":
		lines = append(lines, indent+st.Error.Render(render.Truncate(m.ErrorMsg, width-marginLeft)))
	case m.WarnMsg != "":
		lines = append(lines, indent+st.Warning.Render(render.Truncate(m.WarnMsg, width-marginLeft)))
	case m.StatusMsg != "":
		lines = append(lines, indent+st.Success.Render(render.Truncate(m.StatusMsg, width-marginLeft)))
	default:
		lines = append(lines, "")
	}
	lines = append(lines, indent+st.Subtle.Render(footerHint))

	view := m.composeDropdown(lines, width)

	switch {
	case m.ShowGoTo:
		view = m.composePopup(view, m.GoTo.View(), width)
	case m.ShowHelp:
		view = m.composePopup(view, m.Help.View(), width)
	case m.ShowConfirm:
		view = m.composePopup(view, m.Confirm.View(), width)
	}
	return view
}

// composeDropdown draws the open list just below its field.
func (m Model) composeDropdown(lines []string, width int) string {
	dropdown, left := m.Picker.DropdownView()
	if dropdown == "" {
		return strings.Join(lines, "\n")
	}
	top := pickerTop + m.Picker.ViewHeight()
	lines = padLines(lines, top+strings.Count(dropdown, "\n")+1)
	return overlay.Compose(strings.Join(lines, "\n"), overlay.Place(dropdown, marginLeft+left, top), width, len(lines))
}

func (m Model) composePopup(base, content string, width int) string {
	height := max(m.Height, strings.Count(base, "\n")+1)
	boxed := popup.RenderBordered(content, width, height, popup.SizeAuto)
	lines := padLines(strings.Split(base, "\n"), height)
	return overlay.Compose(strings.Join(lines, "\n"), boxed, width, height)
}

func padLines(lines []string, n int) []string {
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}

// selectedLabel renders the value with its weekday and distance from today.
func (m Model) selectedLabel() string {
	v := m.Picker.Value()
	return m.Locale.FormatLongDate(v) + " (" + relativeDay(v, m.today()) + ")"
}

func (m Model) rangeLabel() string {
	return m.Locale.FormatDate(m.Picker.Minimum()) + " to " + m.Locale.FormatDate(m.Picker.Maximum())
}

// relativeDay describes d relative to today, e.g. "today" or "2 weeks ago".
func relativeDay(d, today datesel.Date) string {
	if d.Equal(today) {
		return "today"
	}
	return humanize.RelTime(d.Time(), today.Time(), "ago", "from now")
}
