package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/llehouerou/datecombo/internal/app"
	"github.com/llehouerou/datecombo/internal/config"
	"github.com/llehouerou/datecombo/internal/datesel"
	"github.com/llehouerou/datecombo/internal/errmsg"
	"github.com/llehouerou/datecombo/internal/locale"
	"github.com/llehouerou/datecombo/internal/state"
)

type flags struct {
	min     string
	max     string
	value   string
	locale  string
	noState bool
	debug   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "datecombo",
		Short:         "Pick a date from bounded day, month and year lists",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(f)
		},
	}
	cmd.Flags().StringVar(&f.min, "min", "", "earliest selectable date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.max, "max", "", "latest selectable date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.value, "value", "", "initial date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.locale, "locale", "",
		"month names and field order ("+strings.Join(locale.Supported(), ", ")+")")
	cmd.Flags().BoolVar(&f.noState, "no-state", false, "do not read or write the state database")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "write a debug log to the XDG state directory")
	return cmd
}

func run(f flags) error {
	if f.debug {
		logPath, err := xdg.StateFile("datecombo/debug.log")
		if err != nil {
			return err
		}
		logFile, err := tea.LogToFile(logPath, "datecombo")
		if err != nil {
			return err
		}
		defer logFile.Close()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpConfigLoad, err)
	}

	// Flags override the config file.
	if f.min != "" {
		cfg.Picker.MinDate = f.min
	}
	if f.max != "" {
		cfg.Picker.MaxDate = f.max
	}
	if f.locale != "" {
		cfg.Locale = f.locale
	}

	today := datesel.FromTime(time.Now())
	minDate, maxDate, err := cfg.Bounds(today)
	if err != nil {
		return err
	}

	var value datesel.Date
	if f.value != "" {
		if value, err = datesel.ParseDate(f.value); err != nil {
			return fmt.Errorf("--value: %w", err)
		}
	}

	opts := app.Options{
		Locale:         locale.Lookup(cfg.Locale),
		Minimum:        minDate,
		Maximum:        maxDate,
		Value:          value,
		DropdownHeight: cfg.Picker.DropdownHeight,
		Remember:       cfg.RememberValue(),
		HistorySize:    cfg.State.HistorySize,
	}

	var stateMgr *state.Manager
	if !f.noState {
		stateMgr, err = state.Open(cfg.State.Path)
		if err != nil {
			// Run without persistence rather than refusing to start.
			opts.Warning = errmsg.Format(errmsg.OpStateOpen, err)
		} else {
			opts.State = stateMgr
			defer stateMgr.Close()
		}
	}

	p := tea.NewProgram(app.New(opts), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
