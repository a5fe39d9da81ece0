package curve

import (
	"github.com/meghashyamc/knotsaver/geometry"
)

// minKnotPoints is the smallest number of control points that forms a curve.
const minKnotPoints = 3

// Generator smooths a closed loop of control points into a curve. The
// samples are a pure function of the control points and the sample count.
// Control points are only reachable through Generator methods, so every
// mutation marks the samples stale.
type Generator struct {
	set PointSet

	samples     []geometry.Vector
	sampleCount int
	stale       bool
	computed    bool
}

func NewGenerator() *Generator {
	return &Generator{}
}

// NewGeneratorFrom builds a generator over parallel point and velocity slices.
func NewGeneratorFrom(points, velocities []geometry.Vector) *Generator {
	return &Generator{set: NewPointSet(points, velocities)}
}

func (g *Generator) AddPoint(position, velocity geometry.Vector) {
	g.set.AddPoint(position, velocity)
	g.stale = true
}

func (g *Generator) PopLast() {
	if g.set.Len() == 0 {
		return
	}
	g.set.PopLast()
	g.stale = true
}

func (g *Generator) Advance(bounds geometry.Bounds) {
	if g.set.Len() == 0 {
		return
	}
	g.set.Advance(bounds)
	g.stale = true
}

// ScaleVelocities leaves the control points where they are, so the samples stay fresh.
func (g *Generator) ScaleVelocities(factor float64) {
	g.set.ScaleVelocities(factor)
}

func (g *Generator) Len() int {
	return g.set.Len()
}

// Points returns a copy of the control points.
func (g *Generator) Points() []geometry.Vector {
	return g.set.Points()
}

// Velocities returns a copy of the control point velocities.
func (g *Generator) Velocities() []geometry.Vector {
	return g.set.Velocities()
}

// Stale reports whether the control points changed since the last Recompute.
func (g *Generator) Stale() bool {
	return g.stale || !g.computed
}

// Samples returns the curve computed by the last call to Recompute.
func (g *Generator) Samples() []geometry.Vector {
	return g.samples
}

// Recompute rebuilds the curve samples. Every control point i starts a window
// over points i, i+1, i+2 (indices wrap), so N points give N segments of
// sampleCount samples each. Fewer than three points, or a non-positive
// sampleCount, yields no samples.
func (g *Generator) Recompute(sampleCount int) {
	if !g.Stale() && sampleCount == g.sampleCount {
		return
	}

	g.samples = knotSamples(g.set.points, sampleCount)
	g.sampleCount = sampleCount
	g.stale = false
	g.computed = true
}

func knotSamples(points []geometry.Vector, sampleCount int) []geometry.Vector {
	n := len(points)
	if n < minKnotPoints || sampleCount <= 0 {
		return nil
	}

	samples := make([]geometry.Vector, 0, n*sampleCount)
	for i := -2; i < n-2; i++ {
		p0 := points[wrap(i, n)]
		p1 := points[wrap(i+1, n)]
		p2 := points[wrap(i+2, n)]

		segment := []geometry.Vector{p0.Midpoint(p1), p1, p1.Midpoint(p2)}
		samples = appendSegment(samples, segment, sampleCount)
	}

	return samples
}

func appendSegment(dst, segment []geometry.Vector, sampleCount int) []geometry.Vector {
	step := 1 / float64(sampleCount)
	for k := 0; k < sampleCount; k++ {
		dst = append(dst, Blend(segment, float64(k)*step))
	}
	return dst
}

// Blend evaluates the recursive affine blend of pts at alpha:
//
//	blend(pts, d) = pts[d]*alpha + blend(pts, d-1)*(1-alpha),  blend(pts, 0) = pts[0]
//
// For three points this is P0*(1-a)^2 + P1*a*(1-a) + P2*a. Blend of an empty
// slice is the zero vector.
func Blend(pts []geometry.Vector, alpha float64) geometry.Vector {
	if len(pts) == 0 {
		return geometry.Vector{}
	}
	return blend(pts, alpha, len(pts)-1)
}

func blend(pts []geometry.Vector, alpha float64, degree int) geometry.Vector {
	if degree == 0 {
		return pts[0]
	}
	return pts[degree].Scale(alpha).Add(blend(pts, alpha, degree-1).Scale(1 - alpha))
}

// BlendCoefficients returns the weights Blend gives to P0, P1 and P2.
func BlendCoefficients(alpha float64) (float64, float64, float64) {
	rest := 1 - alpha
	return rest * rest, alpha * rest, alpha
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
