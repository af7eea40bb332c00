// Package report renders window results for people and scripts.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/username/monthey/internal/calendar"
	"github.com/username/monthey/internal/window"
	"github.com/username/monthey/pkg/dateutil"
)

// Labels maps weekdays to custom display names
type Labels map[calendar.Weekday]string

// Name returns the label for w, or its default name
func (l Labels) Name(w calendar.Weekday) string {
	if name, ok := l[w]; ok && name != "" {
		return name
	}
	return w.String()
}

// Entry is one weekday count within a window
type Entry struct {
	Weekday calendar.Weekday
	Count   int
}

// Entries returns the window's tally ordered Monday first
func Entries(mw window.MonthWindow) []Entry {
	entries := make([]Entry, 0, len(mw.Days))
	for w, n := range mw.Days {
		entries = append(entries, Entry{Weekday: w, Count: n})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Weekday < entries[j].Weekday
	})
	return entries
}

// Sorted returns a copy of the windows ordered by From
func Sorted(result window.Result) []window.MonthWindow {
	windows := make([]window.MonthWindow, len(result.Windows))
	copy(windows, result.Windows)
	sort.SliceStable(windows, func(i, j int) bool {
		return windows[i].From.Before(windows[j].From)
	})
	return windows
}

// FormatDate renders a date as "1 January 2024"
func FormatDate(date time.Time) string {
	month, err := calendar.MonthFromNumber(int(date.Month()))
	if err != nil {
		panic(err)
	}
	return fmt.Sprintf("%d %s %d", date.Day(), month, date.Year())
}

// TextOptions controls WriteText
type TextOptions struct {
	Labels Labels
	Styled bool
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	countStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// WriteText writes one block per window:
//
//	1 January 2024 to 31 January 2024 contains:
//		5 Monday(s)
func WriteText(w io.Writer, result window.Result, opts TextOptions) error {
	for _, mw := range Sorted(result) {
		header := fmt.Sprintf("%s to %s contains:", FormatDate(mw.From), FormatDate(mw.To))
		if opts.Styled {
			header = headerStyle.Render(header)
		}
		if _, err := fmt.Fprintln(w, header); err != nil {
			return err
		}

		for _, e := range Entries(mw) {
			count := fmt.Sprint(e.Count)
			if opts.Styled {
				count = countStyle.Render(count)
			}
			if _, err := fmt.Fprintf(w, "\t%s %s(s)\n", count, opts.Labels.Name(e.Weekday)); err != nil {
				return err
			}
		}
	}
	return nil
}

type jsonWindow struct {
	From string      `json:"from"`
	To   string      `json:"to"`
	Days []jsonEntry `json:"days"`
}

type jsonEntry struct {
	Weekday calendar.Weekday `json:"weekday"`
	Label   string           `json:"label"`
	Count   int              `json:"count"`
}

// WriteJSON writes the windows as an indented JSON array
func WriteJSON(w io.Writer, result window.Result, labels Labels) error {
	out := make([]jsonWindow, 0, len(result.Windows))
	for _, mw := range Sorted(result) {
		jw := jsonWindow{
			From: dateutil.FormatDate(mw.From),
			To:   dateutil.FormatDate(mw.To),
			Days: []jsonEntry{},
		}
		for _, e := range Entries(mw) {
			jw.Days = append(jw.Days, jsonEntry{
				Weekday: e.Weekday,
				Label:   labels.Name(e.Weekday),
				Count:   e.Count,
			})
		}
		out = append(out, jw)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
