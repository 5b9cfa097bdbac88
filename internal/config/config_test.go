package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/llehouerou/datecombo/internal/datesel"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}
	return path
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/datecombo.db",
			expected: filepath.Join(home, "datecombo.db"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/.local/share/datecombo/state.db",
			expected: filepath.Join(home, ".local", "share", "datecombo", "state.db"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/var/lib/datecombo.db",
			expected: "/var/lib/datecombo.db",
		},
		{
			name:     "relative path unchanged",
			input:    "data/datecombo.db",
			expected: "data/datecombo.db",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) != 2 {
		t.Fatalf("getConfigPaths() returned %d paths, want 2", len(paths))
	}

	// Last path should be local config.toml
	if paths[1] != "config.toml" {
		t.Errorf("last config path = %q, want %q", paths[1], "config.toml")
	}
	if !strings.HasSuffix(paths[0], filepath.Join("datecombo", "config.toml")) {
		t.Errorf("first config path = %q, want it under datecombo/", paths[0])
	}
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Locale != "" {
		t.Errorf("Locale = %q, want empty", cfg.Locale)
	}
	if cfg.Picker.YearsBack != 3 || cfg.Picker.YearsForward != 3 {
		t.Errorf("years = %d/%d, want 3/3", cfg.Picker.YearsBack, cfg.Picker.YearsForward)
	}
	if cfg.Picker.DropdownHeight != 7 {
		t.Errorf("DropdownHeight = %d, want 7", cfg.Picker.DropdownHeight)
	}
	if cfg.State.HistorySize != 10 {
		t.Errorf("HistorySize = %d, want 10", cfg.State.HistorySize)
	}
	if !cfg.RememberValue() {
		t.Error("RememberValue() should default to true")
	}
}

func TestLoadFrom_BasicConfig(t *testing.T) {
	path := writeConfig(t, `
locale = "tr-TR"

[picker]
min_date = "2020-01-15"
max_date = "2030-06-30"
dropdown_height = 5

[state]
remember = false
history_size = 25
path = "~/dates.db"
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Locale != "tr-TR" {
		t.Errorf("Locale = %q, want %q", cfg.Locale, "tr-TR")
	}
	if cfg.Picker.DropdownHeight != 5 {
		t.Errorf("DropdownHeight = %d, want 5", cfg.Picker.DropdownHeight)
	}
	if cfg.RememberValue() {
		t.Error("RememberValue() = true, want false")
	}
	if cfg.State.HistorySize != 25 {
		t.Errorf("HistorySize = %d, want 25", cfg.State.HistorySize)
	}

	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, "dates.db"); cfg.State.Path != want {
		t.Errorf("State.Path = %q, want %q", cfg.State.Path, want)
	}
}

func TestLoadFrom_LastWins(t *testing.T) {
	first := writeConfig(t, "locale = \"de\"\n[picker]\nyears_back = 10\n")
	second := writeConfig(t, "locale = \"fr\"\n")

	cfg, err := LoadFrom(first, second)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Locale != "fr" {
		t.Errorf("Locale = %q, want %q", cfg.Locale, "fr")
	}
	if cfg.Picker.YearsBack != 10 {
		t.Errorf("YearsBack = %d, want 10 from the first file", cfg.Picker.YearsBack)
	}
}

func TestLoadFrom_InvalidToml(t *testing.T) {
	path := writeConfig(t, "invalid = [[[")

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() expected error for invalid TOML, got nil")
	}
}

func TestLoadFrom_InvalidDate(t *testing.T) {
	path := writeConfig(t, "[picker]\nmin_date = \"2020-02-30\"\n")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v, want bounds left for Bounds()", err)
	}

	_, _, err = cfg.Bounds(datesel.NewDate(2026, time.October, 17))
	if err == nil {
		t.Fatal("Bounds() expected error for invalid date, got nil")
	}
	if !strings.Contains(err.Error(), "picker.min_date") {
		t.Errorf("error %q should name the key", err)
	}
}

func TestLoadFrom_InvalidDateOverridden(t *testing.T) {
	path := writeConfig(t, "[picker]\nmin_date = \"2020-02-30\"\nmax_date = \"not a date\"\n")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	// As main does with --min and --max.
	cfg.Picker.MinDate = "2024-01-01"
	cfg.Picker.MaxDate = "2024-12-31"

	gotMin, gotMax, err := cfg.Bounds(datesel.NewDate(2026, time.October, 17))
	if err != nil {
		t.Fatalf("Bounds() error = %v", err)
	}
	if gotMin != datesel.NewDate(2024, time.January, 1) || gotMax != datesel.NewDate(2024, time.December, 31) {
		t.Errorf("Bounds() = %v..%v, want 2024-01-01..2024-12-31", gotMin, gotMax)
	}
}

func TestLoadFrom_HistorySizeOutOfRange(t *testing.T) {
	path := writeConfig(t, "[state]\nhistory_size = 1000\n")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.State.HistorySize != 10 {
		t.Errorf("HistorySize = %d, want default 10", cfg.State.HistorySize)
	}
}

func TestLoad_LocalConfig(t *testing.T) {
	tmpDir := t.TempDir()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("could not change to temp directory: %v", err)
	}
	defer func() {
		_ = os.Chdir(originalWd)
	}()

	if err := os.WriteFile("config.toml", []byte(`locale = "ja"`), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// ./config.toml has the highest priority.
	if cfg.Locale != "ja" {
		t.Errorf("Locale = %q, want %q", cfg.Locale, "ja")
	}
}

func TestBounds(t *testing.T) {
	today := datesel.NewDate(2026, time.October, 17)

	tests := []struct {
		name    string
		picker  PickerConfig
		wantMin datesel.Date
		wantMax datesel.Date
		wantErr bool
	}{
		{
			name:    "span around today",
			picker:  PickerConfig{YearsBack: 3, YearsForward: 3},
			wantMin: datesel.NewDate(2023, time.October, 17),
			wantMax: datesel.NewDate(2029, time.October, 17),
		},
		{
			name:    "explicit dates",
			picker:  PickerConfig{MinDate: "2000-01-01", MaxDate: "2000-12-31", YearsBack: 3, YearsForward: 3},
			wantMin: datesel.NewDate(2000, time.January, 1),
			wantMax: datesel.NewDate(2000, time.December, 31),
		},
		{
			name:    "min after default max spans forward from min",
			picker:  PickerConfig{MinDate: "2040-03-01", YearsBack: 3, YearsForward: 2},
			wantMin: datesel.NewDate(2040, time.March, 1),
			wantMax: datesel.NewDate(2042, time.March, 1),
		},
		{
			name:    "max before default min spans back from max",
			picker:  PickerConfig{MaxDate: "1990-05-05", YearsBack: 1, YearsForward: 3},
			wantMin: datesel.NewDate(1989, time.May, 5),
			wantMax: datesel.NewDate(1990, time.May, 5),
		},
		{
			name:    "explicit inversion",
			picker:  PickerConfig{MinDate: "2001-01-01", MaxDate: "2000-01-01"},
			wantErr: true,
		},
		{
			name:    "malformed max",
			picker:  PickerConfig{MaxDate: "31/12/2030"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Picker: tt.picker}
			gotMin, gotMax, err := cfg.Bounds(today)
			if tt.wantErr {
				if err == nil {
					t.Error("Bounds() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Bounds() error = %v", err)
			}
			if gotMin != tt.wantMin || gotMax != tt.wantMax {
				t.Errorf("Bounds() = %v..%v, want %v..%v", gotMin, gotMax, tt.wantMin, tt.wantMax)
			}
		})
	}
}
