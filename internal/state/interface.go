package state

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	SaveValue(state PickerState)
	GetValue() (*PickerState, error)
	AddHistory(entry HistoryEntry, keep int) error
	RecentValues(limit int) ([]HistoryEntry, error)
	ClearHistory() (int, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
