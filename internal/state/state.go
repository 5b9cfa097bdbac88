// Package state persists the picker's value and recent selections in SQLite.
package state

import (
	"database/sql"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"

	dbutil "github.com/llehouerou/datecombo/internal/db"
)

const (
	appName      = "datecombo"
	dbFileName   = "datecombo.db"
	saveDebounce = 500 * time.Millisecond
)

// Manager owns the state database. Value saves are debounced; history
// writes go straight through.
type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *PickerState
	debounce  time.Duration
}

// Open opens the database at path, or in the XDG data directory when path is empty.
func Open(path string) (*Manager, error) {
	if path == "" {
		var err error
		if path, err = getDBPath(); err != nil {
			return nil, err
		}
	}

	db, err := dbutil.Open(path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db, debounce: saveDebounce}, nil
}

// Close writes any pending value and closes the database.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.saveMu.Unlock()

	m.flush()
	return m.db.Close()
}

func (m *Manager) GetValue() (*PickerState, error) {
	return getPickerState(m.db)
}

// SaveValue stores the picker state after a quiet period, keeping only the
// latest of rapid successive calls.
func (m *Manager) SaveValue(state PickerState) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &state
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.saveTimer = time.AfterFunc(m.debounce, m.flush)
}

// flush writes and clears the pending state, if any.
func (m *Manager) flush() {
	m.saveMu.Lock()
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if pending != nil {
		_ = savePickerState(m.db, *pending)
	}
}

func (m *Manager) AddHistory(entry HistoryEntry, keep int) error {
	return addHistory(m.db, entry, keep)
}

func (m *Manager) RecentValues(limit int) ([]HistoryEntry, error) {
	return recentValues(m.db, limit)
}

func (m *Manager) ClearHistory() (int, error) {
	return clearHistory(m.db)
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
