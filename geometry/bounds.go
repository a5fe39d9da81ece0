package geometry

// Bounds is the rectangle [0, Width] x [0, Height] points bounce inside.
type Bounds struct {
	Width  float64
	Height float64
}

func NewBounds(width, height int) Bounds {
	return Bounds{Width: float64(width), Height: float64(height)}
}

// ContainsX reports whether x lies in [0, Width].
func (b Bounds) ContainsX(x float64) bool {
	return x >= 0 && x <= b.Width
}

// ContainsY reports whether y lies in [0, Height].
func (b Bounds) ContainsY(y float64) bool {
	return y >= 0 && y <= b.Height
}
