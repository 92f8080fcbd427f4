// Package grid holds the calendar arithmetic behind a month grid: how many days
// a month has, where day 1 falls in the first row and which visual state each
// day is in. It knows nothing about pixels.
package grid

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tartampluch/go-monthgrid/internal/config"
)

// NoDay is the sentinel for "no day": no selection, no touched cell or a miss.
const NoDay = 0

// ErrInvalidArgument reports a MonthSpec that cannot be constructed.
var ErrInvalidArgument = errors.New(config.ErrInvalidArgument)

// DaysInMonth returns the length of month (0 = January) in year.
//
// February has 29 days whenever year is divisible by 4. Century years such as
// 1900 and 2100 are therefore leap years here, unlike the Gregorian calendar.
func DaysInMonth(month, year int) (int, error) {
	switch time.Month(month + 1) {
	case time.January, time.March, time.May, time.July, time.August, time.October, time.December:
		return 31, nil
	case time.April, time.June, time.September, time.November:
		return 30, nil
	case time.February:
		if year%4 == 0 {
			return 29, nil
		}
		return 28, nil
	default:
		return 0, fmt.Errorf("%w: %s: %d", ErrInvalidArgument, config.ErrInvalidMonth, month)
	}
}

// IsValidMonth reports whether month is in 0-11.
func IsValidMonth(month int) bool {
	return month >= 0 && month < config.MonthsInYear
}

// IsValidWeekday reports whether d is Sunday through Saturday.
func IsValidWeekday(d time.Weekday) bool {
	return d >= time.Sunday && d <= time.Saturday
}

// DayOfWeekOfFirst returns the weekday of the 1st of month in year.
func DayOfWeekOfFirst(month, year int) time.Weekday {
	return time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// FirstRowOffset returns the number of empty leading cells before day 1.
func FirstRowOffset(first, weekStart time.Weekday) int {
	return (int(first) - int(weekStart) + config.DaysInWeek) % config.DaysInWeek
}

// CellIndex returns the 0-41 grid slot of day.
func CellIndex(day, offset int) int {
	return day - 1 + offset
}

// RowCol splits a cell index into its row and column.
func RowCol(index int) (row, col int) {
	return index / config.DaysInWeek, index % config.DaysInWeek
}

// MonthSpec is the immutable description of the month on screen.
// Replace it wholesale; every With* method returns a new value.
type MonthSpec struct {
	month        int
	year         int
	weekStart    time.Weekday
	daysInMonth  int
	firstWeekday time.Weekday
	enabledStart int
	enabledEnd   int
	selectedDay  int
}

// NewMonthSpec validates and builds a MonthSpec.
//
// The month must be 0-11, weekStart Sunday-Saturday and selectedDay either
// NoDay or a day of the month. An inverted enabled range is rejected; a range
// reaching outside the month is clamped to [1, daysInMonth].
func NewMonthSpec(month, year int, weekStart time.Weekday, enabledStart, enabledEnd, selectedDay int) (MonthSpec, error) {
	dim, err := DaysInMonth(month, year)
	if err != nil {
		return MonthSpec{}, err
	}
	if !IsValidWeekday(weekStart) {
		return MonthSpec{}, fmt.Errorf("%w: %s: %d", ErrInvalidArgument, config.ErrInvalidWeekday, weekStart)
	}
	if enabledStart > enabledEnd {
		return MonthSpec{}, fmt.Errorf("%w: %s: %d > %d", ErrInvalidArgument, config.ErrInvertedRange, enabledStart, enabledEnd)
	}
	if selectedDay < NoDay || selectedDay > dim {
		return MonthSpec{}, fmt.Errorf("%w: %s: %d", ErrInvalidArgument, config.ErrInvalidSelection, selectedDay)
	}

	start := constrain(enabledStart, 1, dim)
	end := constrain(enabledEnd, start, dim)

	return MonthSpec{
		month:        month,
		year:         year,
		weekStart:    weekStart,
		daysInMonth:  dim,
		firstWeekday: DayOfWeekOfFirst(month, year),
		enabledStart: start,
		enabledEnd:   end,
		selectedDay:  selectedDay,
	}, nil
}

// FullMonth builds a spec with every day enabled and nothing selected.
func FullMonth(month, year int, weekStart time.Weekday) (MonthSpec, error) {
	return NewMonthSpec(month, year, weekStart, 1, config.MaxDaysInMonth, NoDay)
}

func (s MonthSpec) Month() int { return s.month }
func (s MonthSpec) Year() int { return s.year }
func (s MonthSpec) WeekStart() time.Weekday { return s.weekStart }
func (s MonthSpec) DaysInMonth() int { return s.daysInMonth }
func (s MonthSpec) FirstWeekday() time.Weekday { return s.firstWeekday }
func (s MonthSpec) EnabledDayStart() int { return s.enabledStart }
func (s MonthSpec) EnabledDayEnd() int { return s.enabledEnd }
func (s MonthSpec) SelectedDay() int { return s.selectedDay }

// Offset is the number of empty cells before day 1 in the first row.
func (s MonthSpec) Offset() int {
	return FirstRowOffset(s.firstWeekday, s.weekStart)
}

// Rows is the number of grid rows the month actually occupies (4-6).
func (s MonthSpec) Rows() int {
	return (s.Offset() + s.daysInMonth + config.DaysInWeek - 1) / config.DaysInWeek
}

// IsValidDay reports whether day exists in this month.
func (s MonthSpec) IsValidDay(day int) bool {
	return day >= 1 && day <= s.daysInMonth
}

// IsEnabled reports whether day lies inside the enabled range.
func (s MonthSpec) IsEnabled(day int) bool {
	return day >= s.enabledStart && day <= s.enabledEnd
}

// WeekdayAt returns the weekday shown in column col.
func (s MonthSpec) WeekdayAt(col int) time.Weekday {
	return time.Weekday((int(s.weekStart) + col) % config.DaysInWeek)
}

// Date returns day of this month at midnight local time.
func (s MonthSpec) Date(day int) time.Time {
	return time.Date(s.year, time.Month(s.month+1), day, 0, 0, 0, 0, time.Local)
}

// WithSelectedDay returns a copy selecting day, or clearing the selection for NoDay.
func (s MonthSpec) WithSelectedDay(day int) (MonthSpec, error) {
	if day < NoDay || day > s.daysInMonth {
		return s, fmt.Errorf("%w: %s: %d", ErrInvalidArgument, config.ErrInvalidSelection, day)
	}
	s.selectedDay = day
	return s, nil
}

// WithWeekStart returns a copy laid out from a different first day of the week.
func (s MonthSpec) WithWeekStart(weekStart time.Weekday) (MonthSpec, error) {
	if !IsValidWeekday(weekStart) {
		return s, fmt.Errorf("%w: %s: %d", ErrInvalidArgument, config.ErrInvalidWeekday, weekStart)
	}
	s.weekStart = weekStart
	return s, nil
}

// WithEnabledRange returns a copy with a new enabled range, clamped like NewMonthSpec.
func (s MonthSpec) WithEnabledRange(start, end int) (MonthSpec, error) {
	return NewMonthSpec(s.month, s.year, s.weekStart, start, end, s.selectedDay)
}

// Next returns the following month, fully enabled and without selection.
func (s MonthSpec) Next() MonthSpec {
	month, year := s.month+1, s.year
	if month == config.MonthsInYear {
		month, year = 0, year+1
	}
	return mustFullMonth(month, year, s.weekStart)
}

// Previous returns the preceding month, fully enabled and without selection.
func (s MonthSpec) Previous() MonthSpec {
	month, year := s.month-1, s.year
	if month < 0 {
		month, year = config.MonthsInYear-1, year-1
	}
	return mustFullMonth(month, year, s.weekStart)
}

// LogValue implements slog.LogValuer.
func (s MonthSpec) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int(config.LogKeyMonth, s.month),
		slog.Int(config.LogKeyYear, s.year),
		slog.Int(config.LogKeyWeekStart, int(s.weekStart)),
		slog.String(config.LogKeyEnabled, fmt.Sprintf("%d-%d", s.enabledStart, s.enabledEnd)),
		slog.Int(config.LogKeySelected, s.selectedDay),
	)
}

// mustFullMonth is only called with a month and week start already validated.
func mustFullMonth(month, year int, weekStart time.Weekday) MonthSpec {
	spec, err := FullMonth(month, year, weekStart)
	if err != nil {
		panic(err)
	}
	return spec
}

func constrain(val, lo, hi int) int {
	return max(lo, min(hi, val))
}
