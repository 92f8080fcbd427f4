package monthview

import (
	"image"
	"time"

	"github.com/tartampluch/go-monthgrid/internal/geometry"
	"github.com/tartampluch/go-monthgrid/internal/grid"
)

// StyleProvider formats and draws everything the month view shows.
// The view never formats dates or picks colors itself.
type StyleProvider interface {
	// DesiredMetrics are the unscaled sizes the style wants.
	DesiredMetrics() geometry.DesiredMetrics

	DayLabel(day int) string
	MonthLabel(month, year int) string
	WeekdayLabel(day time.Weekday) string
	// DayDescription is the spoken form of a date, read by assistive technology.
	DayDescription(date time.Time) string

	DrawMonthLabel(c Canvas, label string, at image.Point)
	DrawWeekdayLabel(c Canvas, label string, at image.Point)
	DrawDayLabel(c Canvas, label string, at image.Point, state grid.DayState)
	DrawDaySelected(c Canvas, center image.Point, radius int)
	DrawDayPressed(c Canvas, center image.Point, radius int)
}
