package monthview

import (
	"image"
	"image/color"
)

// TextPaint describes how a label is drawn.
type TextPaint struct {
	Color color.Color
	Size  float32
	Bold  bool
}

// Canvas is the drawing surface supplied by the host toolkit.
// Positions are centers: text is centered horizontally and vertically on at.
type Canvas interface {
	DrawText(text string, at image.Point, paint TextPaint)
	DrawCircle(center image.Point, radius int, fill color.Color)
}

// Translate returns a canvas that shifts every position by offset before
// forwarding it to c. MonthView paints in content space through it.
func Translate(c Canvas, offset image.Point) Canvas {
	if offset == (image.Point{}) {
		return c
	}
	return translated{inner: c, offset: offset}
}

type translated struct {
	inner  Canvas
	offset image.Point
}

func (t translated) DrawText(text string, at image.Point, paint TextPaint) {
	t.inner.DrawText(text, at.Add(t.offset), paint)
}

func (t translated) DrawCircle(center image.Point, radius int, fill color.Color) {
	t.inner.DrawCircle(center.Add(t.offset), radius, fill)
}
