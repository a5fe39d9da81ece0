package geometry

import (
	"math"
)

type Vector struct {
	X float64
	Y float64
}

var (
	// AxisX and AxisY are the unit normals used to bounce off vertical and
	// horizontal walls.
	AxisX = Vector{X: 1, Y: 0}
	AxisY = Vector{X: 0, Y: 1}
)

// DotProduct calculates the dot product of two vectors
func (v Vector) DotProduct(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

// reflected = incident - 2*(incident·normal)*normal
func (v Vector) Reflect(normal Vector) Vector {
	dotProduct := v.DotProduct(normal)

	reflectedX := v.X - 2*dotProduct*normal.X
	reflectedY := v.Y - 2*dotProduct*normal.Y

	return Vector{
		X: reflectedX,
		Y: reflectedY,
	}
}

// Magnitude calculates the magnitude (length) of a vector
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y}
}

func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y}
}

func (v Vector) Neg() Vector {
	return Vector{-v.X, -v.Y}
}

func (v Vector) Scale(factor float64) Vector {
	return Vector{v.X * factor, v.Y * factor}
}

// Midpoint returns the point halfway between v and other.
func (v Vector) Midpoint(other Vector) Vector {
	return v.Add(other).Scale(0.5)
}

// AddInPlace adds other to v and returns v.
func (v *Vector) AddInPlace(other Vector) *Vector {
	v.X += other.X
	v.Y += other.Y
	return v
}

// SubInPlace subtracts other from v component-wise and returns v.
func (v *Vector) SubInPlace(other Vector) *Vector {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

// IntPair truncates both coordinates to integer pixels.
func (v Vector) IntPair() (int, int) {
	return int(v.X), int(v.Y)
}
