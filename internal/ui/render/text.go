// Package render provides width-aware text helpers for the picker cells,
// dropdown rows and status lines.
package render

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "..."

// Sanitize drops control characters other than tab, turns non-breaking
// spaces into spaces and removes invalid UTF-8. Error text from the
// database or a config file goes through it before reaching the terminal.
func Sanitize(s string) string {
	s = strings.ToValidUTF8(s, "")
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\u00a0':
			return ' '
		case r != '\t' && unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}

// Truncate shortens s to maxWidth display cells, ending with an ellipsis
// when something was cut.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, ellipsis)
}

// Pad fills s with trailing spaces up to width cells.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// PadLeft right-aligns s within width cells, as day numbers are shown.
func PadLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}

// TruncateAndPad returns s at exactly width cells.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}
