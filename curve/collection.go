package curve

import (
	"iter"
	"slices"

	"github.com/meghashyamc/knotsaver/geometry"
)

// NoActive is the active index of an empty collection.
const NoActive = -1

// Collection is an ordered set of knots with exactly one active knot
// whenever it is non-empty. All edit commands target the active knot.
type Collection struct {
	knots  []*Generator
	active int
}

// NewCollection creates a collection holding seed; the last seed becomes active.
func NewCollection(seed ...*Generator) *Collection {
	c := &Collection{active: NoActive}
	for _, g := range seed {
		c.Add(g)
	}
	return c
}

// Add appends g and makes it the active knot.
func (c *Collection) Add(g *Generator) {
	c.knots = append(c.knots, g)
	c.active = len(c.knots) - 1
}

// RemoveActive drops the active knot. The new last knot becomes active.
func (c *Collection) RemoveActive() {
	if c.active == NoActive {
		return
	}
	c.knots = slices.Delete(c.knots, c.active, c.active+1)
	c.active = len(c.knots) - 1
}

// SelectNext moves the selection forward, wrapping to the first knot.
func (c *Collection) SelectNext() {
	if c.active == NoActive {
		return
	}
	if c.active+1 > len(c.knots)-1 {
		c.active = 0
		return
	}
	c.active++
}

// Clear drops every knot; the collection is left with no active knot.
func (c *Collection) Clear() {
	c.knots = nil
	c.active = NoActive
}

func (c *Collection) Len() int {
	return len(c.knots)
}

// ActiveIndex returns the index of the active knot, or NoActive when empty.
func (c *Collection) ActiveIndex() int {
	return c.active
}

// Active returns the active knot, or false when the collection is empty.
func (c *Collection) Active() (*Generator, bool) {
	if c.active == NoActive {
		return nil, false
	}
	return c.knots[c.active], true
}

// All iterates over the knots in insertion order.
func (c *Collection) All() iter.Seq2[int, *Generator] {
	return func(yield func(int, *Generator) bool) {
		for i, g := range c.knots {
			if !yield(i, g) {
				return
			}
		}
	}
}

// AdvanceAll runs one physics frame on every knot.
func (c *Collection) AdvanceAll(bounds geometry.Bounds) {
	for _, g := range c.knots {
		g.Advance(bounds)
	}
}

// RecomputeAll refreshes the curve of every knot.
func (c *Collection) RecomputeAll(sampleCount int) {
	for _, g := range c.knots {
		g.Recompute(sampleCount)
	}
}

// RecomputeActive refreshes only the active knot. It does nothing when empty.
func (c *Collection) RecomputeActive(sampleCount int) {
	if g, ok := c.Active(); ok {
		g.Recompute(sampleCount)
	}
}

// AddPointToActive appends a control point to the active knot and refreshes its curve.
func (c *Collection) AddPointToActive(position, velocity geometry.Vector, sampleCount int) {
	g, ok := c.Active()
	if !ok {
		return
	}
	g.AddPoint(position, velocity)
	g.Recompute(sampleCount)
}

// RemovePointFromActive pops the last control point of the active knot and
// refreshes its curve. A knot left without control points is removed; the
// collection does not replace it.
func (c *Collection) RemovePointFromActive(sampleCount int) {
	g, ok := c.Active()
	if !ok {
		return
	}
	g.PopLast()
	g.Recompute(sampleCount)
	if g.Len() == 0 {
		c.RemoveActive()
	}
}

// ScaleActiveVelocity multiplies every velocity of the active knot by factor.
// Non-positive factors are ignored.
func (c *Collection) ScaleActiveVelocity(factor float64) {
	if factor <= 0 {
		return
	}
	if g, ok := c.Active(); ok {
		g.ScaleVelocities(factor)
	}
}
