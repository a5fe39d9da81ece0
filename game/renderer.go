package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/meghashyamc/knotsaver/geometry"
)

// screenRenderer draws engine output onto an ebiten image at whole-pixel positions.
type screenRenderer struct {
	screen *ebiten.Image
}

func (r screenRenderer) DrawPoints(points []geometry.Vector, width float64, c color.Color) {
	for _, p := range points {
		x, y := p.IntPair()
		vector.DrawFilledCircle(r.screen, float32(x), float32(y), float32(width), c, true)
	}
}

func (r screenRenderer) DrawPolyline(points []geometry.Vector, closed bool, width float64, c color.Color) {
	n := len(points)
	if n < 2 {
		return
	}

	start := 1
	if closed {
		start = 0
	}
	for i := start; i < n; i++ {
		x0, y0 := points[(i-1+n)%n].IntPair()
		x1, y1 := points[i].IntPair()
		vector.StrokeLine(r.screen, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
	}
}
