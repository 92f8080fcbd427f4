// Package style supplies the default look of the month grid: localized labels
// from embedded go-i18n catalogs, fixed state colors and an optional YAML
// layout profile for the desired metrics.
package style

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/tartampluch/go-monthgrid/internal/config"
	"github.com/tartampluch/go-monthgrid/internal/geometry"
	"github.com/tartampluch/go-monthgrid/internal/grid"
	"github.com/tartampluch/go-monthgrid/internal/monthview"
	"golang.org/x/text/message"
)

// Palette holds the colors used for each element and state.
type Palette struct {
	Title       color.Color
	Weekday     color.Color
	Day         color.Color
	DayDisabled color.Color
	DaySelected color.Color
	Selector    color.Color
	Highlight   color.Color
}

// DefaultPalette is a neutral light palette.
func DefaultPalette() Palette {
	return Palette{
		Title:       color.NRGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xff},
		Weekday:     color.NRGBA{R: 0x75, G: 0x75, B: 0x75, A: 0xff},
		Day:         color.NRGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xff},
		DayDisabled: color.NRGBA{R: 0xbd, G: 0xbd, B: 0xbd, A: 0xff},
		DaySelected: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Selector:    color.NRGBA{R: 0x00, G: 0x96, B: 0x88, A: 0xff},
		Highlight:   color.NRGBA{R: 0x00, G: 0x96, B: 0x88, A: 0x40},
	}
}

// Default is the stock StyleProvider.
type Default struct {
	tr      *Translator
	metrics geometry.DesiredMetrics
	palette Palette
	printer *message.Printer
}

var _ monthview.StyleProvider = (*Default)(nil)

// NewDefault builds a style speaking tr's language with the given metrics.
func NewDefault(tr *Translator, metrics geometry.DesiredMetrics) *Default {
	return &Default{
		tr:      tr,
		metrics: metrics,
		palette: DefaultPalette(),
		printer: message.NewPrinter(tr.Tag()),
	}
}

// WithPalette returns a copy of the style drawing with p.
func (d *Default) WithPalette(p Palette) *Default {
	c := *d
	c.palette = p
	return &c
}

// Translator exposes the translator behind the labels.
func (d *Default) Translator() *Translator {
	return d.tr
}

func (d *Default) DesiredMetrics() geometry.DesiredMetrics {
	return d.metrics
}

// DayLabel formats day with the digits of the active language.
func (d *Default) DayLabel(day int) string {
	return d.printer.Sprint(day)
}

// MonthName returns the localized name of month (0 = January).
func (d *Default) MonthName(month int) string {
	return d.tr.Msg(fmt.Sprintf(config.TKeyMonthFmt, month+1))
}

func (d *Default) MonthLabel(month, year int) string {
	name := d.MonthName(month)
	if title, ok := d.tr.Lookup(config.TKeyMonthTitle, map[string]any{"Month": name, "Year": year}); ok {
		return title
	}
	return fmt.Sprintf(config.FallbackMonthTitle, name, year)
}

func (d *Default) WeekdayLabel(day time.Weekday) string {
	return d.tr.Msg(fmt.Sprintf(config.TKeyWeekdayFmt, int(day)))
}

// WeekdayName returns the full localized name of day.
func (d *Default) WeekdayName(day time.Weekday) string {
	return d.tr.Msg(fmt.Sprintf(config.TKeyWeekdayLongFmt, int(day)))
}

// DayDescription reads as "dd MMMM yyyy" in the active language.
func (d *Default) DayDescription(date time.Time) string {
	name := d.MonthName(int(date.Month()) - 1)
	data := map[string]any{
		"Day":   fmt.Sprintf("%02d", date.Day()),
		"Month": name,
		"Year":  date.Year(),
	}
	if desc, ok := d.tr.Lookup(config.TKeyDayDescription, data); ok {
		return desc
	}
	return fmt.Sprintf(config.FallbackDayDesc, date.Day(), name, date.Year())
}

func (d *Default) DrawMonthLabel(c monthview.Canvas, label string, at image.Point) {
	c.DrawText(label, at, monthview.TextPaint{Color: d.palette.Title, Size: config.MonthTextSize, Bold: true})
}

func (d *Default) DrawWeekdayLabel(c monthview.Canvas, label string, at image.Point) {
	c.DrawText(label, at, monthview.TextPaint{Color: d.palette.Weekday, Size: config.WeekdayTextSize})
}

func (d *Default) DrawDayLabel(c monthview.Canvas, label string, at image.Point, state grid.DayState) {
	c.DrawText(label, at, monthview.TextPaint{Color: d.dayColor(state), Size: config.DayTextSize})
}

func (d *Default) DrawDaySelected(c monthview.Canvas, center image.Point, radius int) {
	c.DrawCircle(center, radius, d.palette.Selector)
}

func (d *Default) DrawDayPressed(c monthview.Canvas, center image.Point, radius int) {
	c.DrawCircle(center, radius, d.palette.Highlight)
}

func (d *Default) dayColor(state grid.DayState) color.Color {
	switch state {
	case grid.StateSelected:
		return d.palette.DaySelected
	case grid.StateDisabled:
		return d.palette.DayDisabled
	default:
		return d.palette.Day
	}
}
