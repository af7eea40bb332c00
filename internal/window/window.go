// Package window partitions a run of month-windows and tallies how often the
// tracked weekdays occur in each one.
package window

import (
	"fmt"
	"time"

	"github.com/username/monthey/internal/calendar"
	"github.com/username/monthey/pkg/dateutil"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MonthWindow is one inclusive [From, To] range and its weekday tally.
// Weekdays that never occurred are absent from Days.
type MonthWindow struct {
	From time.Time
	To   time.Time
	Days map[calendar.Weekday]int
}

// Count returns how many times w occurred in the window
func (mw MonthWindow) Count(w calendar.Weekday) int {
	return mw.Days[w]
}

// Result holds the computed windows in chronological order
type Result struct {
	Windows []MonthWindow
}

// Builder configures a window computation. Every method returns an updated
// copy, so a Builder can be shared and branched freely.
type Builder struct {
	days    calendar.WeekdaySet
	between calendar.DayOfMonth
	from    time.Time
	workers int
	logger  *zap.Logger
}

// NewBuilder starts from the first day of today's month with no tracked
// weekdays and calendar month boundaries. Dates are handled as zone-free
// calendar days (midnight UTC) from here on.
func NewBuilder(today time.Time) Builder {
	return Builder{
		between: calendar.FirstOfMonth,
		from:    dateutil.StartOfMonth(dateutil.CivilDate(today)),
		workers: 1,
		logger:  zap.NewNop(),
	}
}

// Track adds a weekday to count
func (b Builder) Track(w calendar.Weekday) Builder {
	b.days = b.days.With(w)
	return b
}

// TrackAll adds every given weekday
func (b Builder) TrackAll(days ...calendar.Weekday) Builder {
	for _, w := range days {
		b = b.Track(w)
	}
	return b
}

// TrackSet adds every weekday in set
func (b Builder) TrackSet(set calendar.WeekdaySet) Builder {
	b.days |= set
	return b
}

// Between sets the day-of-month policy. Anchor days outside 1..28 are rejected.
func (b Builder) Between(policy calendar.DayOfMonth) (Builder, error) {
	if err := policy.Validate(); err != nil {
		return b, fmt.Errorf("set day of month: %w", err)
	}
	b.between = policy
	return b, nil
}

// StartingFrom overrides the start date. The policy still decides which day
// of that month the first window opens on.
func (b Builder) StartingFrom(date time.Time) Builder {
	b.from = dateutil.CivilDate(date)
	return b
}

// WithLogger sets the logger used for debug output
func (b Builder) WithLogger(logger *zap.Logger) Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	b.logger = logger
	return b
}

// WithWorkers sets how many windows are tallied concurrently
func (b Builder) WithWorkers(n int) Builder {
	if n < 1 {
		n = 1
	}
	b.workers = n
	return b
}

// Days returns the tracked weekdays
func (b Builder) Days() calendar.WeekdaySet { return b.days }

// Policy returns the active day-of-month policy
func (b Builder) Policy() calendar.DayOfMonth { return b.between }

// StartDate returns the configured start date
func (b Builder) StartDate() time.Time { return b.from }

// ForMonths computes months consecutive windows. Counts below one yield an
// empty Result.
func (b Builder) ForMonths(months int) Result {
	if months <= 0 {
		return Result{}
	}

	windows := b.windows(months)

	if b.workers <= 1 || len(windows) == 1 {
		for i := range windows {
			windows[i].Days = tally(windows[i].From, windows[i].To, b.days)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(b.workers)
		for i := range windows {
			i := i
			g.Go(func() error {
				windows[i].Days = tally(windows[i].From, windows[i].To, b.days)
				return nil
			})
		}
		// tally has no error path; Wait only joins the workers
		_ = g.Wait()
	}

	for _, w := range windows {
		b.logger.Debug("Window computed",
			zap.String("from", dateutil.FormatDate(w.From)),
			zap.String("to", dateutil.FormatDate(w.To)),
			zap.Any("days", w.Days))
	}

	b.logger.Info("Windows computed",
		zap.Int("months", months),
		zap.String("between", b.between.String()),
		zap.Strings("tracked", b.days.Strings()),
		zap.Int("workers", b.workers))

	return Result{Windows: windows}
}

// windows derives the window boundaries sequentially; each window opens the
// day after the previous one closed.
func (b Builder) windows(months int) []MonthWindow {
	current := FirstWindowStart(b.from, b.between)

	windows := make([]MonthWindow, 0, months)
	for i := 0; i < months; i++ {
		from := current
		to := WindowEnd(from, b.between)
		windows = append(windows, MonthWindow{From: from, To: to})
		current = advance(to)
	}
	return windows
}

// FirstWindowStart returns the day the first window opens on for a start date
func FirstWindowStart(start time.Time, policy calendar.DayOfMonth) time.Time {
	start = dateutil.CivilDate(start)
	if policy.IsFirstOfMonth() {
		return dateutil.StartOfMonth(start)
	}
	return dateutil.WithDay(start, policy.Day())
}

// WindowEnd returns the inclusive last day of the window opening on from.
// FirstOfMonth closes on the last day of from's month; NthDay(n) closes the
// day before day n of the following month.
func WindowEnd(from time.Time, policy calendar.DayOfMonth) time.Time {
	from = dateutil.CivilDate(from)

	var to time.Time
	if policy.IsFirstOfMonth() {
		to = dateutil.EndOfMonth(from)
	} else {
		to = dateutil.PrevDay(dateutil.AnchorInNextMonth(from, policy.Day()))
	}

	if to.Before(from) {
		panic(fmt.Sprintf("window: end %s before start %s", dateutil.FormatDate(to), dateutil.FormatDate(from)))
	}
	return to
}

// tally counts tracked weekdays in [from, to]. Only weekdays that occur get a key.
func tally(from, to time.Time, tracked calendar.WeekdaySet) map[calendar.Weekday]int {
	days := make(map[calendar.Weekday]int)
	for date := from; !date.After(to); date = advance(date) {
		w := calendar.WeekdayFromTime(date.Weekday())
		if tracked.Has(w) {
			days[w]++
		}
	}
	return days
}

func advance(date time.Time) time.Time {
	next := dateutil.NextDay(date)
	if !next.After(date) {
		panic(fmt.Sprintf("window: date arithmetic did not advance past %s", dateutil.FormatDate(date)))
	}
	return next
}
