// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// DropdownHeight is the default number of visible entries in an open dropdown.
	DropdownHeight = 7

	// DropdownMargin is the number of entries kept visible above/below the
	// dropdown cursor while scrolling.
	DropdownMargin = 1

	// FieldGap is the number of columns between adjacent picker fields.
	FieldGap = 1

	// FieldChrome is the horizontal space a field box adds around its text:
	// two border columns, one padding column each side and the arrow glyph.
	FieldChrome = 6

	// BorderHeight is the vertical space consumed by a standard box border.
	BorderHeight = 2

	// MinFormWidth is the narrowest terminal the demo form lays out for.
	MinFormWidth = 40
)
