package engine

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meghashyamc/knotsaver/curve"
	"github.com/meghashyamc/knotsaver/geometry"
	"github.com/meghashyamc/knotsaver/logger"
)

type drawCall struct {
	kind   string
	points []geometry.Vector
	closed bool
	width  float64
	color  color.Color
}

type recordingRenderer struct {
	calls []drawCall
}

func (r *recordingRenderer) DrawPoints(points []geometry.Vector, width float64, c color.Color) {
	r.calls = append(r.calls, drawCall{kind: "points", points: points, width: width, color: c})
}

func (r *recordingRenderer) DrawPolyline(points []geometry.Vector, closed bool, width float64, c color.Color) {
	r.calls = append(r.calls, drawCall{kind: "polyline", points: points, closed: closed, width: width, color: c})
}

func newTestEngine(t *testing.T, mutate ...func(*Options)) *Engine {
	t.Helper()
	opts := Options{
		Bounds:      geometry.NewBounds(800, 600),
		Samples:     4,
		MaxSpeed:    2,
		StartPaused: true,
		PointWidth:  3,
		LineWidth:   2,
	}
	for _, m := range mutate {
		m(&opts)
	}
	return New(opts, logger.Discard(), rand.New(rand.NewSource(42)))
}

func activeKnot(t *testing.T, e *Engine) *curve.Generator {
	t.Helper()
	knot, ok := e.Collection().Active()
	require.True(t, ok)
	return knot
}

func addTriangle(e *Engine) {
	e.AddPoint(geometry.Vector{X: 100, Y: 100})
	e.AddPoint(geometry.Vector{X: 200, Y: 100})
	e.AddPoint(geometry.Vector{X: 200, Y: 200})
}

func TestNewEngineSeedsOneKnot(t *testing.T) {
	e := newTestEngine(t)
	assert.Equal(t, 1, e.Collection().Len())
	assert.Equal(t, 0, e.Collection().ActiveIndex())
	assert.True(t, e.Paused())
	assert.False(t, e.ShowHelp())
	assert.Equal(t, 4, e.Samples())

	e = newTestEngine(t, func(o *Options) { o.Samples = 0 })
	assert.Equal(t, 1, e.Samples())
}

func TestAddPointRandomVelocity(t *testing.T) {
	e := newTestEngine(t)
	for i := 0; i < 20; i++ {
		e.AddPoint(geometry.Vector{X: float64(i), Y: float64(i)})
	}

	knot := activeKnot(t, e)
	require.Equal(t, 20, knot.Len())
	for _, v := range knot.Velocities() {
		assert.GreaterOrEqual(t, v.X, 0.0)
		assert.Less(t, v.X, 2.0)
		assert.GreaterOrEqual(t, v.Y, 0.0)
		assert.Less(t, v.Y, 2.0)
	}
	assert.Len(t, knot.Samples(), 20*4)
}

func TestStepPausedKeepsPoints(t *testing.T) {
	e := newTestEngine(t)
	addTriangle(e)
	before := activeKnot(t, e).Points()

	e.Step()
	assert.Equal(t, before, activeKnot(t, e).Points())

	e.Execute(CommandTogglePause)
	require.False(t, e.Paused())
	e.Step()
	assert.NotEqual(t, before, activeKnot(t, e).Points())
	assert.False(t, activeKnot(t, e).Stale())
}

func TestSampleDensityClamp(t *testing.T) {
	e := newTestEngine(t)
	addTriangle(e)

	e.Execute(CommandMoreSamples)
	e.Step()
	assert.Equal(t, 5, e.Samples())
	assert.Len(t, activeKnot(t, e).Samples(), 15)

	for i := 0; i < 10; i++ {
		e.Execute(CommandFewerSamples)
	}
	e.Step()
	assert.Equal(t, 1, e.Samples())
	assert.Len(t, activeKnot(t, e).Samples(), 3)
}

func TestCurveCommands(t *testing.T) {
	e := newTestEngine(t)
	addTriangle(e)
	first := activeKnot(t, e)

	e.Execute(CommandAddCurve)
	assert.Equal(t, 2, e.Collection().Len())
	assert.Equal(t, 1, e.Collection().ActiveIndex())

	e.Execute(CommandSelectNextCurve)
	assert.Same(t, first, activeKnot(t, e))

	e.Execute(CommandRemoveActiveCurve)
	assert.Equal(t, 1, e.Collection().Len())
	assert.NotSame(t, first, activeKnot(t, e))

	// removing the last knot leaves a fresh empty one behind
	e.Execute(CommandRemoveActiveCurve)
	assert.Equal(t, 1, e.Collection().Len())
	assert.Equal(t, 0, activeKnot(t, e).Len())
}

func TestRemoveLastPointReseeds(t *testing.T) {
	e := newTestEngine(t)
	e.AddPoint(geometry.Vector{X: 1, Y: 1})
	knot := activeKnot(t, e)

	e.Execute(CommandRemoveLastPoint)
	assert.Equal(t, 1, e.Collection().Len())
	assert.NotSame(t, knot, activeKnot(t, e))
	assert.Equal(t, 0, activeKnot(t, e).Len())
}

func TestSpeedCommands(t *testing.T) {
	e := newTestEngine(t)
	addTriangle(e)
	orig := activeKnot(t, e).Velocities()

	e.Execute(CommandSpeedUp)
	for i, v := range activeKnot(t, e).Velocities() {
		assert.InDelta(t, orig[i].X*2, v.X, 1e-12)
		assert.InDelta(t, orig[i].Y*2, v.Y, 1e-12)
	}

	e.Execute(CommandSpeedDown)
	for i, v := range activeKnot(t, e).Velocities() {
		assert.InDelta(t, orig[i].X, v.X, 1e-12)
		assert.InDelta(t, orig[i].Y, v.Y, 1e-12)
	}
}

func TestRestart(t *testing.T) {
	e := newTestEngine(t)
	addTriangle(e)
	e.Execute(CommandAddCurve)
	e.Execute(CommandTogglePause)

	e.Execute(CommandRestart)
	assert.Equal(t, 1, e.Collection().Len())
	assert.Equal(t, 0, activeKnot(t, e).Len())
	assert.True(t, e.Paused())
}

func TestToggleHelp(t *testing.T) {
	e := newTestEngine(t)
	e.Execute(CommandToggleHelp)
	assert.True(t, e.ShowHelp())
	e.Execute(CommandToggleHelp)
	assert.False(t, e.ShowHelp())

	e.Execute(Command(99))
	assert.False(t, e.ShowHelp())
}

func TestHelpCounters(t *testing.T) {
	e := newTestEngine(t)
	addTriangle(e)
	e.Execute(CommandAddCurve)
	e.AddPoint(geometry.Vector{X: 5, Y: 5})

	rows := e.Help()
	require.Len(t, rows, len(keyHelp)+4)
	counters := rows[len(keyHelp):]
	assert.Equal(t, HelpRow{"4", "Current points"}, counters[0])
	assert.Equal(t, HelpRow{"2", "Current number of knots"}, counters[1])
	assert.Equal(t, HelpRow{"2", "Knot #"}, counters[2])
	assert.Equal(t, HelpRow{"1", "Number of basepoints"}, counters[3])
}

func TestRenderDrawsEveryKnot(t *testing.T) {
	e := newTestEngine(t)
	addTriangle(e)
	e.Execute(CommandAddCurve)
	e.AddPoint(geometry.Vector{X: 5, Y: 5})
	e.Step()

	var r recordingRenderer
	e.Render(&r)

	require.Len(t, r.calls, 4)
	assert.Equal(t, "points", r.calls[0].kind)
	assert.Len(t, r.calls[0].points, 3)
	assert.Equal(t, 3.0, r.calls[0].width)
	assert.Equal(t, "polyline", r.calls[1].kind)
	assert.True(t, r.calls[1].closed)
	assert.Len(t, r.calls[1].points, 12)
	assert.Equal(t, 2.0, r.calls[1].width)
	assert.Len(t, r.calls[2].points, 1)
	assert.Empty(t, r.calls[3].points)

	for _, call := range r.calls {
		assert.Equal(t, e.Color(), call.color)
	}
}

func TestHueCycles(t *testing.T) {
	e := newTestEngine(t)
	for i := 0; i < 361; i++ {
		e.Step()
	}
	assert.Equal(t, 1, e.Hue())
}

func TestHSL(t *testing.T) {
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, HSL(0, 1, 0.5))
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, HSL(120, 1, 0.5))
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, HSL(240, 1, 0.5))
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, HSL(42, 0, 0.5))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, HSL(200, 1, 1))
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "speed_up", CommandSpeedUp.String())
	assert.Equal(t, "unknown", Command(-1).String())
}
