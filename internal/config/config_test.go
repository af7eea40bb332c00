package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/monthey/internal/calendar"
)

// chdir mirrors testing.T.Chdir (Go 1.24+): it switches the working
// directory and restores the previous one when the test ends.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "monthey.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
report:
  days: [Thursday, Saturday]
  between: "10"
  months: 6
  start_date: "2024-02-01"
  workers: 2
  labels:
    Thursday: Rent Day
    saturday: Grocery shopping day
output:
  format: json
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	days, err := cfg.Report.Weekdays()
	require.NoError(t, err)
	assert.Equal(t, []calendar.Weekday{calendar.Thursday, calendar.Saturday}, days.Weekdays())

	policy, err := cfg.Report.Policy()
	require.NoError(t, err)
	assert.Equal(t, calendar.NthDay(10), policy)

	assert.Equal(t, 6, cfg.Report.Months)
	assert.Equal(t, "2024-02-01", cfg.Report.StartDate)
	assert.Equal(t, 2, cfg.Report.Workers)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Log.Level)

	labels, err := cfg.Report.WeekdayLabels()
	require.NoError(t, err)
	assert.Equal(t, map[calendar.Weekday]string{
		calendar.Thursday: "Rent Day",
		calendar.Saturday: "Grocery shopping day",
	}, labels)
}

func TestLoad_DefaultsWhenNoFileFound(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default().Report.Months, cfg.Report.Months)
	assert.Equal(t, "first", cfg.Report.Between)
	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.Report.Days)
}

func TestLoad_IgnoresBinaryNamedLikeTheTool(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, os.WriteFile(filepath.Join(dir, "monthey"), []byte("\x7fELF\x02\x01\x01\x00"), 0o755))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Report.Months, cfg.Report.Months)
}

func TestLoad_DefaultLocations(t *testing.T) {
	dir := t.TempDir()
	home := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", home)

	require.NoError(t, os.MkdirAll(filepath.Join(home, ".monthey"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".monthey", "config.yaml"), []byte("report:\n  months: 7\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Report.Months)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "monthey.yaml"), []byte("report:\n  months: 4\n"), 0o644))

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Report.Months, "working directory file wins over $HOME")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read config")
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "report:\n  months: 2\n")
	t.Setenv("MONTHEY_REPORT_MONTHS", "9")
	t.Setenv("MONTHEY_REPORT_BETWEEN", "15")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.Report.Months)
	assert.Equal(t, "15", cfg.Report.Between)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad weekday", "report:\n  days: [Funday]\n", "report.days"},
		{"anchor too high", "report:\n  between: \"29\"\n", "report.between"},
		{"anchor not a number", "report:\n  between: last\n", "report.between"},
		{"negative months", "report:\n  months: -1\n", "report.months"},
		{"zero workers", "report:\n  workers: 0\n", "report.workers"},
		{"bad label key", "report:\n  labels:\n    someday: x\n", "report.labels"},
		{"bad format", "output:\n  format: xml\n", "output.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_Default(t *testing.T) {
	assert.NoError(t, Default().Validate())
}
