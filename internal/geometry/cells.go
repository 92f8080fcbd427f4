package geometry

import (
	"image"
	"math"

	"github.com/tartampluch/go-monthgrid/internal/grid"
)

// DayCell is one day of the month as it is laid out and painted.
// Cells are computed on demand and never stored.
type DayCell struct {
	Day    int
	Row    int
	Col    int
	Center image.Point     // content space
	Bounds image.Rectangle // content space
	State  grid.DayState
}

// Cells lays out every day of spec in ascending order.
func (m LayoutMetrics) Cells(spec grid.MonthSpec, pointer grid.PointerState) []DayCell {
	m.mustBeReady()
	cells := make([]DayCell, 0, spec.DaysInMonth())
	offset := spec.Offset()
	for day := 1; day <= spec.DaysInMonth(); day++ {
		row, col := grid.RowCol(grid.CellIndex(day, offset))
		bounds, _ := m.ContentBoundsOf(day, spec)
		cells = append(cells, DayCell{
			Day:    day,
			Row:    row,
			Col:    col,
			Center: m.CellCenter(row, col),
			Bounds: bounds,
			State:  grid.Classify(day, spec, pointer),
		})
	}
	return cells
}

// RoundPoint converts float pointer coordinates to pixels, rounding half up.
func RoundPoint(x, y float32) image.Point {
	return image.Pt(
		int(math.Floor(float64(x)+0.5)),
		int(math.Floor(float64(y)+0.5)),
	)
}
