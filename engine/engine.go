package engine

import (
	"math/rand"

	"github.com/meghashyamc/knotsaver/curve"
	"github.com/meghashyamc/knotsaver/geometry"
	"github.com/meghashyamc/knotsaver/logger"
)

const (
	speedUpFactor   = 2.0
	speedDownFactor = 0.5
	minSamples      = 1
)

type Options struct {
	Bounds      geometry.Bounds
	Samples     int     // curve samples per control point
	MaxSpeed    float64 // upper bound of each random velocity component
	StartPaused bool
	PointWidth  float64
	LineWidth   float64
}

// Engine owns every knot on screen and turns commands and frame ticks into
// knot updates. It is driven from a single goroutine.
type Engine struct {
	opts     Options
	knots    *curve.Collection
	samples  int
	paused   bool
	showHelp bool
	hue      int
	rng      *rand.Rand
	logger   logger.Logger
}

func New(opts Options, log logger.Logger, rng *rand.Rand) *Engine {
	if opts.Samples < minSamples {
		opts.Samples = minSamples
	}

	e := &Engine{
		opts:    opts,
		knots:   curve.NewCollection(curve.NewGenerator()),
		samples: opts.Samples,
		paused:  opts.StartPaused,
		rng:     rng,
		logger:  log,
	}

	e.logger.Info("engine initialized",
		"width", opts.Bounds.Width,
		"height", opts.Bounds.Height,
		"samples", e.samples,
		"paused", e.paused,
	)
	return e
}

// AddPoint appends a control point with a random velocity to the active knot.
func (e *Engine) AddPoint(position geometry.Vector) {
	velocity := geometry.Vector{
		X: e.rng.Float64() * e.opts.MaxSpeed,
		Y: e.rng.Float64() * e.opts.MaxSpeed,
	}
	e.knots.AddPointToActive(position, velocity, e.samples)
	e.logger.Debug("point added", "position", position, "velocity", velocity, "knot", e.knots.ActiveIndex())
}

func (e *Engine) Execute(cmd Command) {
	switch cmd {
	case CommandAddCurve:
		e.knots.Add(curve.NewGenerator())
	case CommandRemoveActiveCurve:
		e.knots.RemoveActive()
		e.reseed()
	case CommandSelectNextCurve:
		e.knots.SelectNext()
	case CommandRemoveLastPoint:
		e.knots.RemovePointFromActive(e.samples)
		e.reseed()
	case CommandSpeedUp:
		e.knots.ScaleActiveVelocity(speedUpFactor)
	case CommandSpeedDown:
		e.knots.ScaleActiveVelocity(speedDownFactor)
	case CommandMoreSamples:
		e.samples++
	case CommandFewerSamples:
		if e.samples > minSamples {
			e.samples--
		}
	case CommandToggleHelp:
		e.showHelp = !e.showHelp
	case CommandTogglePause:
		e.paused = !e.paused
	case CommandRestart:
		e.knots.Clear()
		e.knots.Add(curve.NewGenerator())
		e.paused = true
	default:
		e.logger.Warn("ignoring unknown command", "command", int(cmd))
		return
	}

	e.logger.Debug("command executed",
		"command", cmd.String(),
		"knots", e.knots.Len(),
		"active", e.knots.ActiveIndex(),
		"samples", e.samples,
		"paused", e.paused,
	)
}

// reseed keeps one empty knot around so there is always something to edit.
func (e *Engine) reseed() {
	if e.knots.Len() > 0 {
		return
	}
	e.knots.Add(curve.NewGenerator())
	e.logger.Debug("collection empty, seeded new knot")
}

// Step runs one frame: physics unless paused, then curve refresh.
func (e *Engine) Step() {
	if !e.paused {
		e.knots.AdvanceAll(e.opts.Bounds)
	}
	e.knots.RecomputeAll(e.samples)
	e.hue = (e.hue + 1) % 360
}

func (e *Engine) Collection() *curve.Collection {
	return e.knots
}

func (e *Engine) Samples() int {
	return e.samples
}

func (e *Engine) Paused() bool {
	return e.paused
}

func (e *Engine) ShowHelp() bool {
	return e.showHelp
}

func (e *Engine) Hue() int {
	return e.hue
}
