package state

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/llehouerou/datecombo/internal/datesel"
	dbutil "github.com/llehouerou/datecombo/internal/db"
)

// PickerState is the last committed value and the bounds it was chosen in.
// Zero bounds mean the defaults were in effect.
type PickerState struct {
	Value   datesel.Date
	Minimum datesel.Date
	Maximum datesel.Date
}

func getPickerState(db *sql.DB) (*PickerState, error) {
	row := db.QueryRow(`SELECT value, min_date, max_date FROM picker_state WHERE id = 1`)

	var value string
	var minDate, maxDate sql.NullString
	err := row.Scan(&value, &minDate, &maxDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	var state PickerState
	if state.Value, err = datesel.ParseDate(value); err != nil {
		return nil, fmt.Errorf("picker_state.value: %w", err)
	}
	if state.Minimum, err = parseOptional(minDate); err != nil {
		return nil, fmt.Errorf("picker_state.min_date: %w", err)
	}
	if state.Maximum, err = parseOptional(maxDate); err != nil {
		return nil, fmt.Errorf("picker_state.max_date: %w", err)
	}
	return &state, nil
}

func savePickerState(db *sql.DB, state PickerState) error {
	_, err := db.Exec(`
		INSERT INTO picker_state (id, value, min_date, max_date, updated_at)
		VALUES (1, ?, ?, ?, strftime('%s', 'now'))
		ON CONFLICT(id) DO UPDATE SET
			value = excluded.value,
			min_date = excluded.min_date,
			max_date = excluded.max_date,
			updated_at = excluded.updated_at
	`, state.Value.String(), formatOptional(state.Minimum), formatOptional(state.Maximum))

	return err
}

func parseOptional(n sql.NullString) (datesel.Date, error) {
	s := dbutil.NullStringValue(n)
	if s == "" {
		return datesel.Date{}, nil
	}
	return datesel.ParseDate(s)
}

func formatOptional(d datesel.Date) sql.NullString {
	if d.IsZero() {
		return sql.NullString{}
	}
	return dbutil.NullString(d.String())
}
