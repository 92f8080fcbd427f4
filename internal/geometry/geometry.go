// Package geometry maps day numbers of a month grid to pixels and back.
//
// Two coordinate spaces are used. Content coordinates have their origin at the
// top-left corner inside the padding; view coordinates include the insets.
// Painting and hit-testing work in content space, accessibility bounds are
// reported in view space.
package geometry

import (
	"errors"
	"image"
	"log/slog"

	"github.com/tartampluch/go-monthgrid/internal/config"
	"github.com/tartampluch/go-monthgrid/internal/grid"
)

// NoDay is returned by hit-tests that resolve to no day of the month.
const NoDay = grid.NoDay

// ErrStaleGeometry is the panic value of any query on metrics that were never
// produced by Recompute.
var ErrStaleGeometry = errors.New(config.ErrStaleGeometry)

// DesiredMetrics are the unscaled sizes a style asks for.
type DesiredMetrics struct {
	MonthHeight     int `yaml:"month_height"`
	DayOfWeekHeight int `yaml:"day_of_week_height"`
	DayHeight       int `yaml:"day_height"`
	CellWidth       int `yaml:"cell_width"`
	SelectorRadius  int `yaml:"selector_radius"`
}

// DefaultMetrics returns the built-in desired metrics.
func DefaultMetrics() DesiredMetrics {
	return DesiredMetrics{
		MonthHeight:     config.DefaultMonthHeight,
		DayOfWeekHeight: config.DefaultDayOfWeekHeight,
		DayHeight:       config.DefaultDayHeight,
		CellWidth:       config.DefaultCellWidth,
		SelectorRadius:  config.DefaultSelectorRadius,
	}
}

// PaddedHeight is the content height needed to show six rows plus both headers.
func (d DesiredMetrics) PaddedHeight() int {
	return d.DayHeight*config.MaxWeeksInMonth + d.DayOfWeekHeight + d.MonthHeight
}

// Insets is the padding between the view edge and the grid content.
type Insets struct {
	Left   int `yaml:"left"`
	Top    int `yaml:"top"`
	Right  int `yaml:"right"`
	Bottom int `yaml:"bottom"`
}

// UniformInsets returns insets of v on every side.
func UniformInsets(v int) Insets {
	return Insets{Left: v, Top: v, Right: v, Bottom: v}
}

// Origin is the view coordinate of the content origin.
func (in Insets) Origin() image.Point {
	return image.Pt(in.Left, in.Top)
}

// PreferredSize is the view size at which no scaling happens.
func PreferredSize(d DesiredMetrics, in Insets) image.Point {
	return image.Pt(
		d.CellWidth*config.DaysInWeek+in.Left+in.Right,
		d.PaddedHeight()+in.Top+in.Bottom,
	)
}

// LayoutMetrics is the pixel layout derived from one granted size.
// The zero value is stale: every query method panics until Recompute fills it.
type LayoutMetrics struct {
	Size   image.Point
	Insets Insets

	PaddedWidth     int
	PaddedHeight    int
	MonthHeight     int
	DayOfWeekHeight int
	HeaderHeight    int
	RowHeight       int
	ColumnWidth     int
	SelectorRadius  int
	Mirrored        bool

	laidOut bool
}

// Recompute derives the layout for a view of size with the given insets.
//
// When the host grants less height than preferred, header and row heights are
// scaled down proportionally. Column width is always the padded width divided
// by seven; the leftover pixels belong to the last column.
func Recompute(size image.Point, in Insets, d DesiredMetrics, mirrored bool) LayoutMetrics {
	m := LayoutMetrics{
		Size:         size,
		Insets:       in,
		PaddedWidth:  max(0, size.X-in.Left-in.Right),
		PaddedHeight: max(0, size.Y-in.Top-in.Bottom),
		Mirrored:     mirrored,
		laidOut:      true,
	}

	scale := float64(1)
	if preferred := d.PaddedHeight(); preferred > 0 && m.PaddedHeight < preferred {
		scale = float64(m.PaddedHeight) / float64(preferred)
	}

	m.MonthHeight = int(float64(d.MonthHeight) * scale)
	m.DayOfWeekHeight = int(float64(d.DayOfWeekHeight) * scale)
	m.HeaderHeight = m.MonthHeight + m.DayOfWeekHeight
	m.RowHeight = int(float64(d.DayHeight) * scale)
	m.ColumnWidth = m.PaddedWidth / config.DaysInWeek

	maxSelectorWidth := m.ColumnWidth/2 + min(in.Left, in.Right)
	maxSelectorHeight := m.RowHeight/2 + in.Bottom
	m.SelectorRadius = max(0, min(d.SelectorRadius, maxSelectorWidth, maxSelectorHeight))

	return m
}

// Ready reports whether the metrics came from Recompute.
func (m LayoutMetrics) Ready() bool {
	return m.laidOut
}

// Same reports whether a layout pass with these inputs would change nothing.
func (m LayoutMetrics) Same(size image.Point, in Insets, mirrored bool) bool {
	return m.laidOut && m.Size == size && m.Insets == in && m.Mirrored == mirrored
}

func (m LayoutMetrics) mustBeReady() {
	if !m.laidOut {
		panic(ErrStaleGeometry)
	}
}

// CellCenter returns the content-space center of the cell at row, col.
func (m LayoutMetrics) CellCenter(row, col int) image.Point {
	m.mustBeReady()
	x := m.ColumnWidth*col + m.ColumnWidth/2
	if m.Mirrored {
		x = m.PaddedWidth - x
	}
	y := m.HeaderHeight + m.RowHeight*row + m.RowHeight/2
	return image.Pt(x, y)
}

// DayCenter returns the content-space center of day, or false if the day does not exist.
func (m LayoutMetrics) DayCenter(day int, spec grid.MonthSpec) (image.Point, bool) {
	m.mustBeReady()
	if !spec.IsValidDay(day) {
		return image.Point{}, false
	}
	row, col := grid.RowCol(grid.CellIndex(day, spec.Offset()))
	return m.CellCenter(row, col), true
}

// MonthLabelCenter is the content-space center of the month title row.
func (m LayoutMetrics) MonthLabelCenter() image.Point {
	m.mustBeReady()
	return image.Pt(m.PaddedWidth/2, m.MonthHeight/2)
}

// WeekdayLabelCenter is the content-space center of the weekday header in column col.
func (m LayoutMetrics) WeekdayLabelCenter(col int) image.Point {
	m.mustBeReady()
	x := m.ColumnWidth*col + m.ColumnWidth/2
	if m.Mirrored {
		x = m.PaddedWidth - x
	}
	return image.Pt(x, m.MonthHeight+m.DayOfWeekHeight/2)
}

// DayAtPoint resolves a content-space point to a day, or NoDay.
func (m LayoutMetrics) DayAtPoint(p image.Point, spec grid.MonthSpec) int {
	m.mustBeReady()
	if p.X < 0 || p.X >= m.PaddedWidth || p.Y < m.HeaderHeight || p.Y >= m.PaddedHeight {
		return NoDay
	}
	if m.ColumnWidth <= 0 || m.RowHeight <= 0 {
		return NoDay
	}

	x := p.X
	if m.Mirrored {
		x = m.PaddedWidth - 1 - x
	}
	col := min(x/m.ColumnWidth, config.DaysInWeek-1)
	row := (p.Y - m.HeaderHeight) / m.RowHeight

	day := col + row*config.DaysInWeek + 1 - spec.Offset()
	if !spec.IsValidDay(day) {
		return NoDay
	}
	return day
}

// DayAtViewPoint resolves a view-space point to a day, or NoDay.
func (m LayoutMetrics) DayAtViewPoint(p image.Point, spec grid.MonthSpec) int {
	return m.DayAtPoint(p.Sub(m.Insets.Origin()), spec)
}

// ContentBoundsOf returns the content-space rectangle of day.
func (m LayoutMetrics) ContentBoundsOf(day int, spec grid.MonthSpec) (image.Rectangle, bool) {
	m.mustBeReady()
	if !spec.IsValidDay(day) {
		return image.Rectangle{}, false
	}
	row, col := grid.RowCol(grid.CellIndex(day, spec.Offset()))

	left := col * m.ColumnWidth
	if m.Mirrored {
		left = m.PaddedWidth - (col+1)*m.ColumnWidth
	}
	top := m.HeaderHeight + row*m.RowHeight
	return image.Rect(left, top, left+m.ColumnWidth, top+m.RowHeight), true
}

// BoundsOf returns the view-space rectangle of day, as exposed to accessibility clients.
func (m LayoutMetrics) BoundsOf(day int, spec grid.MonthSpec) (image.Rectangle, bool) {
	r, ok := m.ContentBoundsOf(day, spec)
	if !ok {
		return r, false
	}
	return r.Add(m.Insets.Origin()), true
}

// LogValue implements slog.LogValuer.
func (m LayoutMetrics) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int(config.LogKeyWidth, m.PaddedWidth),
		slog.Int(config.LogKeyHeight, m.PaddedHeight),
		slog.Int(config.LogKeyHeader, m.HeaderHeight),
		slog.Int(config.LogKeyRowHeight, m.RowHeight),
		slog.Int(config.LogKeyColWidth, m.ColumnWidth),
		slog.Int(config.LogKeyRadius, m.SelectorRadius),
		slog.Bool(config.LogKeyMirrored, m.Mirrored),
	)
}
