package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/username/monthey/internal/calendar"
	"github.com/username/monthey/internal/config"
	"github.com/username/monthey/internal/report"
	"github.com/username/monthey/internal/window"
	"github.com/username/monthey/pkg/dateutil"
)

// options holds flag values; unset flags defer to the config file
type options struct {
	configPath string
	days       calendar.WeekdaySet
	between    calendar.DayOfMonth
	months     int
	from       string
	format     string
	color      bool
	workers    int
}

// now is swapped in tests to pin the current month
var now = dateutil.Today

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "monthey",
		Short:         "Count weekday occurrences per month window",
		Long:          "Calculates given weekday occurrences each month between anchor dates",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if err := applyFlags(cmd, opts, cfg); err != nil {
				return err
			}

			logger := buildLogger(cfg.Log)
			defer func() { _ = logger.Sync() }()

			return run(cmd.OutOrStdout(), cfg, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file path (default: ./monthey.yaml or $HOME/.monthey/config.yaml)")
	flags.VarP(&opts.days, "day", "d", "Weekday to count, e.g. Monday (repeatable)")
	flags.VarP(&opts.between, "between", "b", "Day of month windows start on: first or 1-28")
	flags.IntVarP(&opts.months, "months", "m", 3, "Number of month windows")
	flags.StringVar(&opts.from, "from", "", "Start date (YYYY-MM-DD), default: first of the current month")
	flags.StringVar(&opts.format, "format", config.FormatText, "Output format: text or json")
	flags.BoolVar(&opts.color, "color", false, "Style text output")
	flags.IntVar(&opts.workers, "workers", 1, "Windows tallied concurrently")

	return cmd
}

// applyFlags copies explicitly set flags over the loaded config
func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("day") {
		cfg.Report.Days = opts.days.Strings()
	}
	if flags.Changed("between") {
		cfg.Report.Between = opts.between.String()
	}
	if flags.Changed("months") {
		cfg.Report.Months = opts.months
	}
	if flags.Changed("from") {
		cfg.Report.StartDate = opts.from
	}
	if flags.Changed("format") {
		cfg.Output.Format = opts.format
	}
	if flags.Changed("color") {
		cfg.Output.Color = opts.color
	}
	if flags.Changed("workers") {
		cfg.Report.Workers = opts.workers
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if len(cfg.Report.Days) == 0 {
		return errors.New("at least one --day is required")
	}
	return nil
}

func run(out io.Writer, cfg *config.Config, logger *zap.Logger) error {
	days, err := cfg.Report.Weekdays()
	if err != nil {
		return err
	}
	policy, err := cfg.Report.Policy()
	if err != nil {
		return err
	}
	labels, err := cfg.Report.WeekdayLabels()
	if err != nil {
		return err
	}

	builder := window.NewBuilder(now()).
		TrackSet(days).
		WithWorkers(cfg.Report.Workers).
		WithLogger(logger)

	if cfg.Report.StartDate != "" {
		start, err := dateutil.ParseDate(cfg.Report.StartDate)
		if err != nil {
			return fmt.Errorf("invalid start date: %w", err)
		}
		builder = builder.StartingFrom(start)
	}

	builder, err = builder.Between(policy)
	if err != nil {
		return err
	}

	logger.Debug("Computing windows",
		zap.String("start", dateutil.FormatDate(builder.StartDate())),
		zap.String("between", policy.String()),
		zap.Int("months", cfg.Report.Months))

	result := builder.ForMonths(cfg.Report.Months)

	if cfg.Output.Format == config.FormatJSON {
		return report.WriteJSON(out, result, labels)
	}
	return report.WriteText(out, result, report.TextOptions{
		Labels: labels,
		Styled: cfg.Output.Color,
	})
}
