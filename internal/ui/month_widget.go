package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-monthgrid/internal/config"
	"github.com/tartampluch/go-monthgrid/internal/geometry"
	"github.com/tartampluch/go-monthgrid/internal/monthview"
)

// MonthWidget hosts a monthview.MonthView inside a Fyne window.
// It forwards mouse and touch input to the view's pointer state machine and
// rebuilds its canvas objects whenever the view asks for a repaint.
type MonthWidget struct {
	widget.BaseWidget

	View     *monthview.MonthView
	Insets   geometry.Insets
	Mirrored bool

	// OnHover receives the node under the mouse; an invisible node means none.
	OnHover func(monthview.Node)

	renderer     *monthRenderer
	mouseHandled bool // the last tap was already delivered through MouseDown/MouseUp
	lastDrag     fyne.Position
	hovered      int
}

var (
	_ desktop.Mouseable = (*MonthWidget)(nil)
	_ desktop.Hoverable = (*MonthWidget)(nil)
	_ fyne.Draggable    = (*MonthWidget)(nil)
	_ fyne.Tappable     = (*MonthWidget)(nil)
)

// NewMonthWidget wraps view. The widget takes over the view's OnInvalidate hook.
func NewMonthWidget(view *monthview.MonthView, insets geometry.Insets, mirrored bool) *MonthWidget {
	w := &MonthWidget{
		View:     view,
		Insets:   insets,
		Mirrored: mirrored,
		hovered:  monthview.InvalidID,
	}
	view.OnInvalidate = w.repaint
	w.ExtendBaseWidget(w)
	return w
}

// CreateRenderer implements fyne.Widget.
func (w *MonthWidget) CreateRenderer() fyne.WidgetRenderer {
	w.renderer = &monthRenderer{w: w}
	return w.renderer
}

// SetMirrored switches the reading direction and lays the grid out again.
func (w *MonthWidget) SetMirrored(mirrored bool) {
	if w.Mirrored == mirrored {
		return
	}
	w.Mirrored = mirrored
	w.Refresh()
}

// PreferredSize is the size at which the view needs no scaling.
func (w *MonthWidget) PreferredSize() fyne.Size {
	p := w.View.PreferredSize(w.Insets)
	return fyne.NewSize(float32(p.X), float32(p.Y))
}

// MouseDown implements desktop.Mouseable.
func (w *MonthWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.mouseHandled = true
	w.View.PointerDown(toPoint(e.Position))
}

// MouseUp implements desktop.Mouseable.
func (w *MonthWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.View.PointerUp(toPoint(e.Position))
}

// Tapped implements fyne.Tappable. On desktop the tap follows MouseUp and is
// ignored; on touch drivers it is the whole gesture.
func (w *MonthWidget) Tapped(e *fyne.PointEvent) {
	if w.mouseHandled {
		w.mouseHandled = false
		return
	}
	p := toPoint(e.Position)
	if w.View.PointerDown(p) {
		w.View.PointerUp(p)
	}
}

// Dragged implements fyne.Draggable.
func (w *MonthWidget) Dragged(e *fyne.DragEvent) {
	w.lastDrag = e.Position
	w.View.PointerMove(toPoint(e.Position))
}

// DragEnd implements fyne.Draggable. The view ignores it when MouseUp already
// finished the gesture.
func (w *MonthWidget) DragEnd() {
	w.View.PointerUp(toPoint(w.lastDrag))
}

// MouseIn implements desktop.Hoverable.
func (w *MonthWidget) MouseIn(e *desktop.MouseEvent) {
	w.hover(e.Position)
}

// MouseMoved implements desktop.Hoverable.
func (w *MonthWidget) MouseMoved(e *desktop.MouseEvent) {
	w.hover(e.Position)
}

// MouseOut implements desktop.Hoverable.
func (w *MonthWidget) MouseOut() {
	w.setHovered(monthview.InvalidID)
}

func (w *MonthWidget) hover(pos fyne.Position) {
	w.setHovered(w.View.VirtualViewAt(toPoint(pos)))
}

func (w *MonthWidget) setHovered(id int) {
	if w.hovered == id {
		return
	}
	w.hovered = id
	if w.OnHover != nil {
		w.OnHover(w.View.Node(id))
	}
}

// repaint rebuilds the canvas objects. Before the renderer exists there is nothing to draw.
func (w *MonthWidget) repaint() {
	if w.renderer == nil {
		return
	}
	w.renderer.paint()
	canvas.Refresh(w)
}

func toPoint(pos fyne.Position) image.Point {
	return geometry.RoundPoint(pos.X, pos.Y)
}

// monthRenderer turns the view's paint calls into Fyne canvas objects.
type monthRenderer struct {
	w       *MonthWidget
	objects []fyne.CanvasObject
}

func (r *monthRenderer) Layout(size fyne.Size) {
	granted := image.Pt(int(size.Width), int(size.Height))
	if !r.w.View.Layout(granted, r.w.Insets, r.w.Mirrored) {
		r.paint()
	}
}

// MinSize lets the grid shrink down to config.GridMinScale of its preferred height.
func (r *monthRenderer) MinSize() fyne.Size {
	p := r.w.PreferredSize()
	return fyne.NewSize(p.Width, p.Height*config.GridMinScale)
}

func (r *monthRenderer) Refresh() {
	r.Layout(r.w.Size())
	canvas.Refresh(r.w)
}

func (r *monthRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *monthRenderer) Destroy() {}

func (r *monthRenderer) paint() {
	c := &fyneCanvas{}
	r.w.View.Paint(c)
	r.objects = c.objects
}

// fyneCanvas implements monthview.Canvas by collecting canvas objects.
type fyneCanvas struct {
	objects []fyne.CanvasObject
}

// DrawText centers a text object on at.
func (c *fyneCanvas) DrawText(text string, at image.Point, paint monthview.TextPaint) {
	t := canvas.NewText(text, paint.Color)
	t.TextSize = paint.Size
	t.TextStyle = fyne.TextStyle{Bold: paint.Bold}
	t.Alignment = fyne.TextAlignCenter

	size := t.MinSize()
	t.Resize(size)
	t.Move(fyne.NewPos(float32(at.X)-size.Width/2, float32(at.Y)-size.Height/2))
	c.objects = append(c.objects, t)
}

func (c *fyneCanvas) DrawCircle(center image.Point, radius int, fill color.Color) {
	circle := canvas.NewCircle(fill)
	circle.Resize(fyne.NewSize(float32(2*radius), float32(2*radius)))
	circle.Move(fyne.NewPos(float32(center.X-radius), float32(center.Y-radius)))
	c.objects = append(c.objects, circle)
}
