package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpConfigLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpConfigLoad,
			err:      errors.New("picker.min_date: bad date"),
			expected: "Failed to load config: picker.min_date: bad date",
		},
		{
			name:     "state operation",
			op:       OpStateOpen,
			err:      errors.New("permission denied"),
			expected: "Failed to open state database: permission denied",
		},
		{
			name:     "history operation",
			op:       OpHistorySave,
			err:      errors.New("disk full"),
			expected: "Failed to record date in history: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpGoToDate,
			context:  "2026-10-17",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpGoToDate,
			context:  "1999-01-01",
			err:      errors.New("outside bounds"),
			expected: "Failed to go to date '1999-01-01': outside bounds",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpParseDate,
			context:  "",
			err:      errors.New("month out of range"),
			expected: "Failed to parse date: month out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}
