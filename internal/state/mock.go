// internal/state/mock.go
package state

import "slices"

// Mock is a test double for Manager.
type Mock struct {
	value   *PickerState
	saved   []PickerState
	history []HistoryEntry
	closed  bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SaveValue(state PickerState) {
	m.saved = append(m.saved, state)
	m.value = &state
}

func (m *Mock) GetValue() (*PickerState, error) {
	return m.value, nil
}

func (m *Mock) AddHistory(entry HistoryEntry, keep int) error {
	m.history = slices.DeleteFunc(m.history, func(e HistoryEntry) bool {
		return e.Value == entry.Value
	})
	m.history = slices.Insert(m.history, 0, entry)
	if keep > 0 && len(m.history) > keep {
		m.history = m.history[:keep]
	}
	return nil
}

func (m *Mock) RecentValues(limit int) ([]HistoryEntry, error) {
	return slices.Clone(m.history[:min(limit, len(m.history))]), nil
}

func (m *Mock) ClearHistory() (int, error) {
	n := len(m.history)
	m.history = nil
	return n, nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetValue(state *PickerState) { m.value = state }

func (m *Mock) Saved() []PickerState { return m.saved }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
