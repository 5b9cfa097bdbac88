package state

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/llehouerou/datecombo/internal/datesel"
	dbutil "github.com/llehouerou/datecombo/internal/db"
)

// HistoryEntry is a value the user committed and when.
type HistoryEntry struct {
	Value      datesel.Date
	SelectedAt time.Time
}

// addHistory records entry, dropping an older copy of the same value, and
// trims the table to the keep most recent rows.
func addHistory(sqlDB *sql.DB, entry HistoryEntry, keep int) error {
	return dbutil.WithTx(sqlDB, func(tx *sql.Tx) error {
		value := entry.Value.String()
		if _, err := tx.Exec(`DELETE FROM value_history WHERE value = ?`, value); err != nil {
			return err
		}
		if _, err := tx.Exec(
			`INSERT INTO value_history (value, selected_at) VALUES (?, ?)`,
			value, entry.SelectedAt.UnixMilli(),
		); err != nil {
			return err
		}
		if keep <= 0 {
			return nil
		}
		_, err := tx.Exec(`
			DELETE FROM value_history WHERE id NOT IN (
				SELECT id FROM value_history ORDER BY selected_at DESC, id DESC LIMIT ?
			)
		`, keep)
		return err
	})
}

// clearHistory removes every recorded value and returns how many were removed.
func clearHistory(db *sql.DB) (int, error) {
	res, err := db.Exec(`DELETE FROM value_history`)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func recentValues(db *sql.DB, limit int) ([]HistoryEntry, error) {
	rows, err := db.Query(`
		SELECT value, selected_at FROM value_history
		ORDER BY selected_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var value string
		var selectedAt int64
		if err := rows.Scan(&value, &selectedAt); err != nil {
			return nil, err
		}
		d, err := datesel.ParseDate(value)
		if err != nil {
			return nil, fmt.Errorf("value_history: %w", err)
		}
		entries = append(entries, HistoryEntry{Value: d, SelectedAt: time.UnixMilli(selectedAt)})
	}
	return entries, rows.Err()
}
