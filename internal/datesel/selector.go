// Package datesel holds the state of a composite day/month/year date selector
// constrained by inclusive minimum and maximum dates.
//
// The three lists are derived from the bounds and from each other:
//
//	years  = [min.Year .. max.Year]
//	months = 1..12, clipped to min.Month / max.Month in a boundary year
//	days   = 1..DaysIn(year, month), clipped to min.Day / max.Day in a boundary month
//
// Every mutation re-derives the lists in year → month → day order and snaps
// any selection that fell outside its list to the nearest edge, so the
// selected date is always valid and within bounds once a call returns.
//
// A Selector is not safe for concurrent use.
package datesel

import (
	"slices"
	"time"
)

// DefaultSpanYears is how far the default bounds extend on each side of today.
const DefaultSpanYears = 3

// Clock returns the current time.
type Clock func() time.Time

// ChangeFunc is called after a user-driven selection commits a new value.
type ChangeFunc func(value Date)

type settings struct {
	clock    Clock
	min, max Date
	value    Date
	onChange ChangeFunc
}

// Option configures a Selector.
type Option func(*settings)

// WithClock sets the clock used to derive today's date.
func WithClock(c Clock) Option {
	return func(s *settings) { s.clock = c }
}

// WithBounds sets the initial bounds. Invalid dates are ignored.
func WithBounds(minDate, maxDate Date) Option {
	return func(s *settings) {
		s.min = minDate
		s.max = maxDate
	}
}

// WithValue sets the initial value. It is ignored if outside the bounds.
func WithValue(d Date) Option {
	return func(s *settings) { s.value = d }
}

// WithOnChange registers the value-changed handler.
func WithOnChange(fn ChangeFunc) Option {
	return func(s *settings) { s.onChange = fn }
}

// Selector is a bounded composite date selector.
type Selector struct {
	clock    Clock
	min, max Date

	years  []int
	months []time.Month
	days   []int

	year  int
	month time.Month
	day   int

	// committed is the last value observed by Value and compared against
	// when deciding whether a user selection changed anything.
	committed Date
	onChange  ChangeFunc
}

// New creates a Selector. Without options the bounds are today ± DefaultSpanYears
// and the value is today.
func New(opts ...Option) *Selector {
	cfg := settings{clock: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}

	today := FromTime(cfg.clock())
	s := &Selector{
		clock:    cfg.clock,
		min:      today.AddYears(-DefaultSpanYears),
		max:      today.AddYears(DefaultSpanYears),
		onChange: cfg.onChange,
	}
	if cfg.min.IsValid() {
		s.min = cfg.min
	}
	if cfg.max.IsValid() {
		s.max = cfg.max
	}
	if s.max.Before(s.min) {
		s.max = s.min
	}

	start := Clamp(today, s.min, s.max)
	if cfg.value.IsValid() && s.Contains(cfg.value) {
		start = cfg.value
	}
	s.year, s.month, s.day = start.Year, start.Month, start.Day
	s.rebuildYears()
	s.committed = s.current()
	return s
}

// SetOnChange replaces the value-changed handler. A nil handler disables it.
func (s *Selector) SetOnChange(fn ChangeFunc) {
	s.onChange = fn
}

// Value returns the selected date.
func (s *Selector) Value() Date {
	return s.committed
}

// Year returns the selected year.
func (s *Selector) Year() int { return s.year }

// Month returns the selected month.
func (s *Selector) Month() time.Month { return s.month }

// Day returns the selected day of month.
func (s *Selector) Day() int { return s.day }

// Minimum returns the inclusive lower bound.
func (s *Selector) Minimum() Date { return s.min }

// Maximum returns the inclusive upper bound.
func (s *Selector) Maximum() Date { return s.max }

// Years returns the selectable years in ascending order.
func (s *Selector) Years() []int { return slices.Clone(s.years) }

// Months returns the selectable months of the selected year in ascending order.
func (s *Selector) Months() []time.Month { return slices.Clone(s.months) }

// Days returns the selectable days of the selected month in ascending order.
func (s *Selector) Days() []int { return slices.Clone(s.days) }

// Today returns the current date according to the selector's clock.
func (s *Selector) Today() Date {
	return FromTime(s.clock())
}

// Contains reports whether d lies within the bounds.
func (s *Selector) Contains(d Date) bool {
	return !d.Before(s.min) && !d.After(s.max)
}

// SetValue selects d if it is a valid date within the bounds, and reports
// whether it did. Programmatic assignment does not invoke the change handler.
func (s *Selector) SetValue(d Date) bool {
	if !d.IsValid() || !s.Contains(d) {
		return false
	}
	s.year, s.month, s.day = d.Year, d.Month, d.Day
	s.rebuildMonths()
	s.committed = s.current()
	return true
}

// SetBounds replaces both bounds. If maxDate is before minDate the maximum is
// raised to minDate. The selection is clamped into the new range without
// invoking the change handler. Invalid dates leave the bounds untouched.
func (s *Selector) SetBounds(minDate, maxDate Date) {
	if !minDate.IsValid() || !maxDate.IsValid() {
		return
	}
	if maxDate.Before(minDate) {
		maxDate = minDate
	}
	s.min, s.max = minDate, maxDate
	s.applyBounds()
}

// SetMinimum replaces the lower bound, raising the upper bound to it when needed.
func (s *Selector) SetMinimum(d Date) {
	if !d.IsValid() {
		return
	}
	if s.max.Before(d) {
		s.max = d
	}
	s.min = d
	s.applyBounds()
}

// SetMaximum replaces the upper bound, lowering the lower bound to it when needed.
func (s *Selector) SetMaximum(d Date) {
	if !d.IsValid() {
		return
	}
	if s.min.After(d) {
		s.min = d
	}
	s.max = d
	s.applyBounds()
}

// SelectYear selects a year from Years and cascades into the month and day
// lists. It reports whether the committed value changed; false is also
// returned when year is not selectable.
func (s *Selector) SelectYear(year int) bool {
	if !slices.Contains(s.years, year) {
		return false
	}
	s.year = year
	s.rebuildMonths()
	return s.commit()
}

// SelectMonth selects a month from Months and cascades into the day list.
func (s *Selector) SelectMonth(month time.Month) bool {
	if !slices.Contains(s.months, month) {
		return false
	}
	s.month = month
	s.rebuildDays()
	return s.commit()
}

// SelectDay selects a day from Days.
func (s *Selector) SelectDay(day int) bool {
	if !slices.Contains(s.days, day) {
		return false
	}
	s.day = day
	return s.commit()
}

// Select picks a whole date as if the user chose year, month and day in turn.
// Dates outside the bounds are rejected.
func (s *Selector) Select(d Date) bool {
	if !d.IsValid() || !s.Contains(d) {
		return false
	}
	s.year, s.month, s.day = d.Year, d.Month, d.Day
	s.rebuildMonths()
	return s.commit()
}

// MonthRange returns the first and last selectable month of year.
func (s *Selector) MonthRange(year int) (first, last time.Month) {
	first, last = time.January, time.December
	if year == s.min.Year {
		first = s.min.Month
	}
	if year == s.max.Year {
		last = s.max.Month
	}
	return first, last
}

// DayRange returns the first and last selectable day of year/month.
func (s *Selector) DayRange(year int, month time.Month) (first, last int) {
	first, last = 1, DaysIn(year, month)
	if year == s.min.Year && month == s.min.Month {
		first = s.min.Day
	}
	if year == s.max.Year && month == s.max.Month {
		last = s.max.Day
	}
	return first, last
}

func (s *Selector) current() Date {
	return Date{Year: s.year, Month: s.month, Day: s.day}
}

func (s *Selector) applyBounds() {
	s.rebuildYears()
	s.committed = s.current()
}

// commit records the current selection and notifies when it differs from the
// previously committed value.
func (s *Selector) commit() bool {
	v := s.current()
	if v == s.committed {
		return false
	}
	s.committed = v
	if s.onChange != nil {
		s.onChange(v)
	}
	return true
}

func (s *Selector) rebuildYears() {
	s.years = s.years[:0]
	for y := s.min.Year; y <= s.max.Year; y++ {
		s.years = append(s.years, y)
	}
	s.year = clampInt(s.year, s.min.Year, s.max.Year)
	s.rebuildMonths()
}

func (s *Selector) rebuildMonths() {
	first, last := s.MonthRange(s.year)
	s.months = s.months[:0]
	for m := first; m <= last; m++ {
		s.months = append(s.months, m)
	}
	s.month = time.Month(clampInt(int(s.month), int(first), int(last)))
	s.rebuildDays()
}

func (s *Selector) rebuildDays() {
	first, last := s.DayRange(s.year, s.month)
	s.days = s.days[:0]
	for d := first; d <= last; d++ {
		s.days = append(s.days, d)
	}
	s.day = clampInt(s.day, first, last)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
