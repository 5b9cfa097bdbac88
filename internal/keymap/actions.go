// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit         Action = "quit"
	ActionHelp         Action = "help"
	ActionGoToDate     Action = "go_to_date"
	ActionClearHistory Action = "clear_history"

	// Field focus
	ActionNextField Action = "next_field"
	ActionPrevField Action = "prev_field"

	// Value stepping (dropdown closed) or cursor movement (dropdown open)
	ActionPrev  Action = "prev"
	ActionNext  Action = "next"
	ActionFirst Action = "first"
	ActionLast  Action = "last"

	// Dropdown
	ActionOpen   Action = "open"   // enter/space - open or commit highlighted entry
	ActionCancel Action = "cancel" // esc - close dropdown without change

	ActionToday Action = "today" // t - select today when within bounds
)
