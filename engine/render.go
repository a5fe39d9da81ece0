package engine

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/meghashyamc/knotsaver/geometry"
)

// Renderer draws what the engine hands it. It never feeds back into the engine.
type Renderer interface {
	DrawPoints(points []geometry.Vector, width float64, c color.Color)
	DrawPolyline(points []geometry.Vector, closed bool, width float64, c color.Color)
}

// Render draws every knot's control points and its closed curve in the
// current cycle colour. Call it after Step so the curves are fresh.
func (e *Engine) Render(r Renderer) {
	col := e.Color()
	for _, knot := range e.knots.All() {
		r.DrawPoints(knot.Points(), e.opts.PointWidth, col)
		r.DrawPolyline(knot.Samples(), true, e.opts.LineWidth, col)
	}
}

// Color is the fully saturated colour for the current hue.
func (e *Engine) Color() color.RGBA {
	return HSL(float64(e.hue), 1, 0.5)
}

// HSL converts hue in degrees, saturation and lightness in [0,1] to an opaque RGBA.
func HSL(h, s, l float64) color.RGBA {
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
