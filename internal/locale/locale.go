// Package locale provides month names and date field ordering for the date picker.
package locale

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/llehouerou/datecombo/internal/datesel"
)

// Field identifies one of the three date parts.
type Field int

const (
	FieldDay Field = iota
	FieldMonth
	FieldYear
)

func (f Field) String() string {
	switch f {
	case FieldDay:
		return "day"
	case FieldMonth:
		return "month"
	case FieldYear:
		return "year"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// Locale names months and weekdays and decides how date parts are laid out.
type Locale interface {
	Tag() language.Tag
	MonthName(m time.Month) string
	ShortMonthName(m time.Month) string
	WeekdayName(w time.Weekday) string
	// FormatDate renders d with the month spelled out, e.g. "17 October 2026".
	FormatDate(d datesel.Date) string
	// FormatLongDate is FormatDate with the weekday name added.
	FormatLongDate(d datesel.Date) string
	// Order returns the visual order of the day, month and year fields.
	Order() []Field
}

var (
	orderDMY = []Field{FieldDay, FieldMonth, FieldYear}
	orderMDY = []Field{FieldMonth, FieldDay, FieldYear}
	orderYMD = []Field{FieldYear, FieldMonth, FieldDay}
)

// table is a Locale backed by static names and format patterns.
// Patterns use {d}, {m}, {y} and {w} for day, month name, year and weekday.
type table struct {
	tag      language.Tag
	months   [12]string
	short    [12]string
	weekdays [7]string // Sunday first, as time.Weekday
	order    []Field
	pattern  string
	long     string
}

func (t *table) Tag() language.Tag { return t.tag }

func (t *table) MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return t.months[m-1]
}

func (t *table) ShortMonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return t.short[m-1]
}

func (t *table) WeekdayName(w time.Weekday) string {
	if w < time.Sunday || w > time.Saturday {
		return ""
	}
	return t.weekdays[w]
}

func (t *table) FormatDate(d datesel.Date) string {
	return t.format(t.pattern, d)
}

func (t *table) FormatLongDate(d datesel.Date) string {
	return t.format(t.long, d)
}

func (t *table) format(pattern string, d datesel.Date) string {
	r := strings.NewReplacer(
		"{d}", strconv.Itoa(d.Day),
		"{m}", t.MonthName(d.Month),
		"{y}", strconv.Itoa(d.Year),
		"{w}", t.WeekdayName(d.Weekday()),
	)
	return r.Replace(pattern)
}

func (t *table) Order() []Field {
	out := make([]Field, len(t.order))
	copy(out, t.order)
	return out
}

// MonthIndex returns the month whose full name equals name, ignoring case
// under the locale's own case rules (Turkish "ARALIK" is "Aralık").
func MonthIndex(loc Locale, name string) (time.Month, bool) {
	lower := cases.Lower(loc.Tag())
	want := lower.String(strings.TrimSpace(name))
	for m := time.January; m <= time.December; m++ {
		if lower.String(loc.MonthName(m)) == want {
			return m, true
		}
	}
	return 0, false
}

// MaxMonthWidth returns the display width of the widest month name.
func MaxMonthWidth(loc Locale) int {
	return maxWidth(loc.MonthName)
}

// MaxShortMonthWidth returns the display width of the widest short month name.
func MaxShortMonthWidth(loc Locale) int {
	return maxWidth(loc.ShortMonthName)
}

func maxWidth(name func(time.Month) string) int {
	w := 0
	for m := time.January; m <= time.December; m++ {
		w = max(w, runewidth.StringWidth(name(m)))
	}
	return w
}
