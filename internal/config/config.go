package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/username/monthey/internal/calendar"
)

const (
	// FormatText renders the human-readable report
	FormatText = "text"
	// FormatJSON renders the report as a JSON array of windows
	FormatJSON = "json"
)

// Config represents application configuration
type Config struct {
	Report ReportConfig `mapstructure:"report"`
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`
}

// ReportConfig describes which windows to compute
type ReportConfig struct {
	Days      []string          `mapstructure:"days"`
	Between   string            `mapstructure:"between"` // "first" or 1..28
	Months    int               `mapstructure:"months"`
	StartDate string            `mapstructure:"start_date"` // empty = first of the current month
	Workers   int               `mapstructure:"workers"`
	Labels    map[string]string `mapstructure:"labels"` // weekday name -> display label
}

// OutputConfig controls rendering
type OutputConfig struct {
	Format string `mapstructure:"format"` // "text" or "json"
	Color  bool   `mapstructure:"color"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Default returns the configuration used when no file or env overrides exist
func Default() *Config {
	return &Config{
		Report: ReportConfig{
			Between: calendar.FirstOfMonthToken,
			Months:  3,
			Workers: 1,
			Labels:  map[string]string{},
		},
		Output: OutputConfig{Format: FormatText},
		Log:    LogConfig{Level: "warn"},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("report.days", []string{})
	v.SetDefault("report.between", d.Report.Between)
	v.SetDefault("report.months", d.Report.Months)
	v.SetDefault("report.start_date", "")
	v.SetDefault("report.workers", d.Report.Workers)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.color", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", d.Log.Level)
}

// Load loads configuration. An explicit configPath must exist; without one
// ./monthey.yaml and $HOME/.monthey/config.yaml are tried and a missing file
// falls back to defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath == "" {
		configPath = findConfig()
	}

	v.SetEnvPrefix("MONTHEY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.Report.Labels = normalizeLabels(config.Report.Labels)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// findConfig returns the first existing default config file, or "" when
// there is none. Only exact file names are matched so the monthey binary
// itself is never picked up.
func findConfig() string {
	candidates := []string{"monthey.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".monthey", "config.yaml"))
	}

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path
		}
	}
	return ""
}

// viper lowercases map keys, so "Thursday" arrives as "thursday"
func normalizeLabels(labels map[string]string) map[string]string {
	title := cases.Title(language.English)
	out := make(map[string]string, len(labels))
	for k, v := range labels {
		out[title.String(strings.TrimSpace(k))] = v
	}
	return out
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := c.Report.Weekdays(); err != nil {
		return fmt.Errorf("report.days: %w", err)
	}
	if _, err := c.Report.Policy(); err != nil {
		return fmt.Errorf("report.between: %w", err)
	}
	if c.Report.Months < 0 {
		return fmt.Errorf("report.months must not be negative")
	}
	if c.Report.Workers < 1 {
		return fmt.Errorf("report.workers must be positive")
	}
	if _, err := c.Report.WeekdayLabels(); err != nil {
		return fmt.Errorf("report.labels: %w", err)
	}

	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("output.format must be '%s' or '%s', got '%s'", FormatText, FormatJSON, c.Output.Format)
	}

	return nil
}

// Weekdays parses the configured weekday names
func (r *ReportConfig) Weekdays() (calendar.WeekdaySet, error) {
	var set calendar.WeekdaySet
	for _, name := range r.Days {
		if err := set.Set(name); err != nil {
			return 0, err
		}
	}
	return set, nil
}

// Policy parses the configured day-of-month policy
func (r *ReportConfig) Policy() (calendar.DayOfMonth, error) {
	if r.Between == "" {
		return calendar.FirstOfMonth, nil
	}
	return calendar.ParseDayOfMonth(r.Between)
}

// WeekdayLabels returns the label table keyed by weekday
func (r *ReportConfig) WeekdayLabels() (map[calendar.Weekday]string, error) {
	labels := make(map[calendar.Weekday]string, len(r.Labels))
	for name, label := range r.Labels {
		w, err := calendar.ParseWeekday(name)
		if err != nil {
			return nil, err
		}
		labels[w] = label
	}
	return labels, nil
}
