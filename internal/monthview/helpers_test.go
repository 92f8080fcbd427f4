package monthview_test

import (
	"fmt"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-monthgrid/internal/geometry"
	"github.com/tartampluch/go-monthgrid/internal/grid"
	"github.com/tartampluch/go-monthgrid/internal/monthview"
)

var testMetrics = geometry.DesiredMetrics{
	MonthHeight:     40,
	DayOfWeekHeight: 20,
	DayHeight:       40,
	CellWidth:       40,
	SelectorRadius:  18,
}

var testInsets = geometry.UniformInsets(8)

// drawCall is one primitive recorded by fakeStyle.
type drawCall struct {
	Kind   string
	Label  string
	At     image.Point
	Radius int
	State  grid.DayState
}

// fakeStyle formats labels plainly and records every draw request.
type fakeStyle struct {
	metrics geometry.DesiredMetrics
	calls   []drawCall
}

func newFakeStyle() *fakeStyle {
	return &fakeStyle{metrics: testMetrics}
}

func (f *fakeStyle) DesiredMetrics() geometry.DesiredMetrics { return f.metrics }
func (f *fakeStyle) DayLabel(day int) string { return fmt.Sprint(day) }
func (f *fakeStyle) MonthLabel(month, year int) string { return fmt.Sprintf("%d/%d", month+1, year) }
func (f *fakeStyle) WeekdayLabel(day time.Weekday) string { return day.String()[:2] }
func (f *fakeStyle) DayDescription(date time.Time) string { return date.Format("02 January 2006") }

func (f *fakeStyle) DrawMonthLabel(c monthview.Canvas, label string, at image.Point) {
	f.calls = append(f.calls, drawCall{Kind: "month", Label: label, At: at})
	c.DrawText(label, at, monthview.TextPaint{Color: color.Black})
}

func (f *fakeStyle) DrawWeekdayLabel(c monthview.Canvas, label string, at image.Point) {
	f.calls = append(f.calls, drawCall{Kind: "weekday", Label: label, At: at})
	c.DrawText(label, at, monthview.TextPaint{Color: color.Black})
}

func (f *fakeStyle) DrawDayLabel(c monthview.Canvas, label string, at image.Point, state grid.DayState) {
	f.calls = append(f.calls, drawCall{Kind: "day", Label: label, At: at, State: state})
	c.DrawText(label, at, monthview.TextPaint{Color: color.Black})
}

func (f *fakeStyle) DrawDaySelected(c monthview.Canvas, center image.Point, radius int) {
	f.calls = append(f.calls, drawCall{Kind: "selected", At: center, Radius: radius})
	c.DrawCircle(center, radius, color.Black)
}

func (f *fakeStyle) DrawDayPressed(c monthview.Canvas, center image.Point, radius int) {
	f.calls = append(f.calls, drawCall{Kind: "pressed", At: center, Radius: radius})
	c.DrawCircle(center, radius, color.Black)
}

func (f *fakeStyle) count(kind string) int {
	n := 0
	for _, c := range f.calls {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

func (f *fakeStyle) find(kind, label string) (drawCall, bool) {
	for _, c := range f.calls {
		if c.Kind == kind && c.Label == label {
			return c, true
		}
	}
	return drawCall{}, false
}

// recordingCanvas stores the view-space positions it receives.
type recordingCanvas struct {
	texts   map[string]image.Point
	circles []image.Point
}

func newRecordingCanvas() *recordingCanvas {
	return &recordingCanvas{texts: make(map[string]image.Point)}
}

func (r *recordingCanvas) DrawText(text string, at image.Point, _ monthview.TextPaint) {
	r.texts[text] = at
}

func (r *recordingCanvas) DrawCircle(center image.Point, _ int, _ color.Color) {
	r.circles = append(r.circles, center)
}

// MockStyle is a testify mock for interaction checks.
type MockStyle struct {
	mock.Mock
}

func (m *MockStyle) DesiredMetrics() geometry.DesiredMetrics {
	return m.Called().Get(0).(geometry.DesiredMetrics)
}

func (m *MockStyle) DayLabel(day int) string {
	return m.Called(day).String(0)
}

func (m *MockStyle) MonthLabel(month, year int) string {
	return m.Called(month, year).String(0)
}

func (m *MockStyle) WeekdayLabel(day time.Weekday) string {
	return m.Called(day).String(0)
}

func (m *MockStyle) DayDescription(date time.Time) string {
	return m.Called(date).String(0)
}

func (m *MockStyle) DrawMonthLabel(c monthview.Canvas, label string, at image.Point) {
	m.Called(c, label, at)
}

func (m *MockStyle) DrawWeekdayLabel(c monthview.Canvas, label string, at image.Point) {
	m.Called(c, label, at)
}

func (m *MockStyle) DrawDayLabel(c monthview.Canvas, label string, at image.Point, state grid.DayState) {
	m.Called(c, label, at, state)
}

func (m *MockStyle) DrawDaySelected(c monthview.Canvas, center image.Point, radius int) {
	m.Called(c, center, radius)
}

func (m *MockStyle) DrawDayPressed(c monthview.Canvas, center image.Point, radius int) {
	m.Called(c, center, radius)
}

// feb2024 has days 1-20 enabled and the 14th selected. The 1st is a Thursday.
func feb2024(t *testing.T) grid.MonthSpec {
	t.Helper()
	spec, err := grid.NewMonthSpec(1, 2024, time.Sunday, 1, 20, 14)
	require.NoError(t, err)
	return spec
}

// newLaidOutView returns a view at its preferred size with 8 px insets.
func newLaidOutView(t *testing.T, style monthview.StyleProvider) *monthview.MonthView {
	t.Helper()
	v := monthview.New(style, feb2024(t))
	v.Layout(v.PreferredSize(testInsets), testInsets, false)
	return v
}

// viewCenter is the view-space center of day.
func viewCenter(t *testing.T, v *monthview.MonthView, day int) image.Point {
	t.Helper()
	center, ok := v.Metrics().DayCenter(day, v.MonthSpec())
	require.True(t, ok)
	return center.Add(testInsets.Origin())
}
