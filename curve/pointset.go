package curve

import (
	"fmt"

	"github.com/meghashyamc/knotsaver/geometry"
)

// PointSet holds control points and their per-frame velocities.
// points[i] always moves by velocities[i].
type PointSet struct {
	points     []geometry.Vector
	velocities []geometry.Vector
}

// NewPointSet builds a set from parallel slices. It panics if the slices
// differ in length.
func NewPointSet(points, velocities []geometry.Vector) PointSet {
	if len(points) != len(velocities) {
		panic(fmt.Sprintf("curve: %d points but %d velocities", len(points), len(velocities)))
	}

	return PointSet{
		points:     append([]geometry.Vector(nil), points...),
		velocities: append([]geometry.Vector(nil), velocities...),
	}
}

// AddPoint appends a point and its velocity. There is no upper bound on the count.
func (ps *PointSet) AddPoint(position, velocity geometry.Vector) {
	ps.points = append(ps.points, position)
	ps.velocities = append(ps.velocities, velocity)
}

// PopLast drops the last point and its velocity. Popping an empty set does nothing.
func (ps *PointSet) PopLast() {
	if len(ps.points) == 0 {
		return
	}
	ps.points = ps.points[:len(ps.points)-1]
	ps.velocities = ps.velocities[:len(ps.velocities)-1]
}

func (ps *PointSet) Len() int {
	return len(ps.points)
}

// Points returns a copy of the control points.
func (ps *PointSet) Points() []geometry.Vector {
	return append([]geometry.Vector(nil), ps.points...)
}

// Velocities returns a copy of the velocities, index-aligned with Points.
func (ps *PointSet) Velocities() []geometry.Vector {
	return append([]geometry.Vector(nil), ps.velocities...)
}

// Advance moves every point by its velocity. A point whose new position is
// outside bounds on an axis has that velocity component reflected; the point
// itself is not pulled back inside.
func (ps *PointSet) Advance(bounds geometry.Bounds) {
	for i := range ps.points {
		ps.points[i].AddInPlace(ps.velocities[i])

		if !bounds.ContainsX(ps.points[i].X) {
			ps.velocities[i] = ps.velocities[i].Reflect(geometry.AxisX)
		}
		if !bounds.ContainsY(ps.points[i].Y) {
			ps.velocities[i] = ps.velocities[i].Reflect(geometry.AxisY)
		}
	}
}

// ScaleVelocities multiplies every velocity by factor.
func (ps *PointSet) ScaleVelocities(factor float64) {
	for i := range ps.velocities {
		ps.velocities[i] = ps.velocities[i].Scale(factor)
	}
}
