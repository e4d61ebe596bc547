package segint

import "math"

// DefaultEpsilon is the tolerance used by comparisons when a caller does not
// configure one explicitly.
const DefaultEpsilon = 1e-9

// Vector is a 2D coordinate, used both as a free vector and as a point.
type Vector struct {
	X, Y float64
}

// Add returns a+b.
func (a Vector) Add(b Vector) Vector {
	return Vector{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns a-b.
func (a Vector) Sub(b Vector) Vector {
	return Vector{X: a.X - b.X, Y: a.Y - b.Y}
}

// Scale returns a*k.
func (a Vector) Scale(k float64) Vector {
	return Vector{X: a.X * k, Y: a.Y * k}
}

// Div returns a/k. The caller guarantees k != 0.
func (a Vector) Div(k float64) Vector {
	return Vector{X: a.X / k, Y: a.Y / k}
}

// Dot returns the dot product a.b.
func (a Vector) Dot(b Vector) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Length returns the Euclidean length of a.
func (a Vector) Length() float64 {
	return math.Sqrt(a.Dot(a))
}

// cross returns the scalar (z-component) cross product a.x*b.y - a.y*b.x.
func cross(a, b Vector) float64 {
	return a.X*b.Y - a.Y*b.X
}

// floatsEqual reports whether a and b are equal up to epsilon, combining an
// absolute and a relative tolerance so both near-zero and large-magnitude
// comparisons behave sensibly.
func floatsEqual(a, b, epsilon float64) bool {
	diff := math.Abs(a - b)
	if diff <= epsilon {
		return true
	}
	largest := math.Max(math.Abs(a), math.Abs(b))
	return diff <= largest*epsilon
}

// pointsEqual reports whether p and q are equal in both coordinates up to
// epsilon.
func pointsEqual(p, q Vector, epsilon float64) bool {
	return floatsEqual(p.X, q.X, epsilon) && floatsEqual(p.Y, q.Y, epsilon)
}

// isFiniteVector reports whether both coordinates of v are finite.
func isFiniteVector(v Vector) bool {
	return !math.IsInf(v.X, 0) && !math.IsNaN(v.X) && !math.IsInf(v.Y, 0) && !math.IsNaN(v.Y)
}

// compareYX orders points lexicographically by (y, x), the sweep direction
// used throughout this package.
func compareYX(a, b Vector) int {
	if a.Y != b.Y {
		if a.Y < b.Y {
			return -1
		}
		return 1
	}
	if a.X != b.X {
		if a.X < b.X {
			return -1
		}
		return 1
	}
	return 0
}

func minMax(a, b float64) (lo, hi float64) {
	if a <= b {
		return a, b
	}
	return b, a
}
