// Package monthview binds the grid model and geometry to a host toolkit:
// it paints through a StyleProvider, runs the pointer state machine and
// exposes one virtual accessibility node per day.
//
// A MonthView is owned by the host's UI goroutine. Only the MonthSpec may be
// swapped from elsewhere; it is replaced as a whole and never mutated.
package monthview

import (
	"image"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/tartampluch/go-monthgrid/internal/config"
	"github.com/tartampluch/go-monthgrid/internal/geometry"
	"github.com/tartampluch/go-monthgrid/internal/grid"
)

// DayClick is delivered to OnDayClick once per completed selection gesture.
type DayClick struct {
	Day     int
	Date    time.Time
	Valid   bool
	Enabled bool
}

// MonthView renders one month and turns pointer input into day clicks.
type MonthView struct {
	style   StyleProvider
	spec    atomic.Pointer[grid.MonthSpec]
	metrics geometry.LayoutMetrics

	pointer  grid.PointerState
	tracking bool // a pointer-down was accepted and no up/cancel followed yet

	title string // cached month title, empty when stale

	// OnDayClick is called when a gesture or accessibility action selects an enabled day.
	OnDayClick func(DayClick)
	// OnInvalidate asks the host to repaint.
	OnInvalidate func()
	// OnTreeChanged signals that the virtual accessibility tree must be rebuilt.
	OnTreeChanged func()
	// OnAccessibilityEvent forwards events raised on virtual nodes.
	OnAccessibilityEvent func(Event)
}

// New creates a view showing spec with the given style.
func New(style StyleProvider, spec grid.MonthSpec) *MonthView {
	v := &MonthView{style: style}
	v.spec.Store(&spec)
	return v
}

// MonthSpec returns the spec currently on screen.
func (v *MonthView) MonthSpec() grid.MonthSpec {
	return *v.spec.Load()
}

// SetMonthSpec replaces the month on screen.
func (v *MonthView) SetMonthSpec(spec grid.MonthSpec) {
	v.spec.Store(&spec)
	v.title = ""

	if !spec.IsValidDay(v.pointer.TouchedDay) {
		v.pointer = grid.PointerState{}
	}

	slog.Debug(config.MsgSpecReplaced,
		config.LogKeyComponent, config.CompView,
		config.LogKeySpec, spec,
	)

	v.treeChanged()
	v.invalidate()
}

// SetSelectedDay selects day in the current month, or clears the selection with grid.NoDay.
func (v *MonthView) SetSelectedDay(day int) error {
	spec, err := v.MonthSpec().WithSelectedDay(day)
	if err != nil {
		return err
	}
	v.SetMonthSpec(spec)
	return nil
}

// Style returns the current style provider.
func (v *MonthView) Style() StyleProvider {
	return v.style
}

// SetStyle swaps the style provider. Labels and metrics are recomputed;
// an existing layout is redone at the same size.
func (v *MonthView) SetStyle(style StyleProvider) {
	v.style = style
	v.title = ""

	if v.metrics.Ready() {
		m := v.metrics
		v.metrics = geometry.Recompute(m.Size, m.Insets, style.DesiredMetrics(), m.Mirrored)
	}

	v.treeChanged()
	v.invalidate()
}

// PreferredSize is the view size at which the style's metrics need no scaling.
func (v *MonthView) PreferredSize(in geometry.Insets) image.Point {
	return geometry.PreferredSize(v.style.DesiredMetrics(), in)
}

// Layout recomputes the metrics for the granted size. It reports whether anything changed;
// a pass with the same size, insets and direction is a no-op.
func (v *MonthView) Layout(size image.Point, in geometry.Insets, mirrored bool) bool {
	if v.metrics.Same(size, in, mirrored) {
		return false
	}

	v.metrics = geometry.Recompute(size, in, v.style.DesiredMetrics(), mirrored)

	slog.Debug(config.MsgLayout,
		config.LogKeyComponent, config.CompView,
		config.LogKeyMetrics, v.metrics,
	)

	v.treeChanged()
	v.invalidate()
	return true
}

// Metrics returns the current layout. It is stale until the first Layout call.
func (v *MonthView) Metrics() geometry.LayoutMetrics {
	return v.metrics
}

// Pointer returns the transient touch state.
func (v *MonthView) Pointer() grid.PointerState {
	return v.pointer
}

// Title returns the localized month title, cached until the spec or style changes.
func (v *MonthView) Title() string {
	if v.title == "" {
		spec := v.MonthSpec()
		v.title = v.style.MonthLabel(spec.Month(), spec.Year())
	}
	return v.title
}

// Paint draws the month header, the weekday row and every day onto c.
// Nothing is drawn before the first layout pass.
func (v *MonthView) Paint(c Canvas) {
	m := v.metrics
	if !m.Ready() {
		return
	}
	spec := v.MonthSpec()
	content := Translate(c, m.Insets.Origin())

	v.style.DrawMonthLabel(content, v.Title(), m.MonthLabelCenter())

	for col := 0; col < config.DaysInWeek; col++ {
		label := v.style.WeekdayLabel(spec.WeekdayAt(col))
		v.style.DrawWeekdayLabel(content, label, m.WeekdayLabelCenter(col))
	}

	for _, cell := range m.Cells(spec, v.pointer) {
		switch {
		case cell.State == grid.StateSelected:
			v.style.DrawDaySelected(content, cell.Center, m.SelectorRadius)
		case cell.State == grid.StatePressed && spec.IsEnabled(cell.Day):
			v.style.DrawDayPressed(content, cell.Center, m.SelectorRadius)
		}
		v.style.DrawDayLabel(content, v.style.DayLabel(cell.Day), cell.Center, cell.State)
	}
}

// PointerDown starts a gesture at view point p. It returns false, and starts
// nothing, when p is not over a day of the month.
func (v *MonthView) PointerDown(p image.Point) bool {
	if !v.metrics.Ready() {
		return false
	}
	day := v.metrics.DayAtViewPoint(p, v.MonthSpec())
	v.setTouched(day)
	if day == geometry.NoDay {
		v.tracking = false
		slog.Debug(config.MsgGestureReject,
			config.LogKeyComponent, config.CompView,
			config.LogKeyX, p.X,
			config.LogKeyY, p.Y,
		)
		return false
	}
	v.tracking = true
	return true
}

// PointerMove follows an accepted gesture. Leaving the grid clears the press
// without ending the gesture.
func (v *MonthView) PointerMove(p image.Point) {
	if !v.tracking {
		return
	}
	v.setTouched(v.metrics.DayAtViewPoint(p, v.MonthSpec()))
}

// PointerUp ends an accepted gesture at p and clicks the day under it.
// Without a preceding accepted PointerDown it does nothing.
func (v *MonthView) PointerUp(p image.Point) {
	if !v.tracking {
		return
	}
	day := v.metrics.DayAtViewPoint(p, v.MonthSpec())
	v.endGesture()
	v.clickDay(day)
}

// PointerCancel abandons the gesture without a click.
func (v *MonthView) PointerCancel() {
	if !v.tracking && !v.pointer.Touching() {
		return
	}
	v.endGesture()
}

func (v *MonthView) endGesture() {
	v.tracking = false
	v.setTouched(grid.NoDay)
}

func (v *MonthView) setTouched(day int) {
	if v.pointer.TouchedDay == day {
		return
	}
	v.pointer.TouchedDay = day
	v.invalidate()
}

// clickDay notifies listeners about a valid, enabled day and reports whether it did.
func (v *MonthView) clickDay(day int) bool {
	spec := v.MonthSpec()
	if !spec.IsValidDay(day) || !spec.IsEnabled(day) {
		return false
	}

	slog.Debug(config.MsgDayClicked,
		config.LogKeyComponent, config.CompView,
		config.LogKeyDay, day,
	)

	if v.OnDayClick != nil {
		v.OnDayClick(DayClick{
			Day:     day,
			Date:    spec.Date(day),
			Valid:   true,
			Enabled: true,
		})
	}
	v.sendEvent(Event{Type: EventViewClicked, Node: day, Description: v.style.DayDescription(spec.Date(day))})
	return true
}

func (v *MonthView) invalidate() {
	if v.OnInvalidate != nil {
		v.OnInvalidate()
	}
}

func (v *MonthView) treeChanged() {
	if v.OnTreeChanged != nil {
		v.OnTreeChanged()
	}
}

func (v *MonthView) sendEvent(e Event) {
	if v.OnAccessibilityEvent != nil {
		v.OnAccessibilityEvent(e)
	}
}
