package math

import "math"

// Vector2 represents a point in the orbital plane (AU)
type Vector2 struct {
	X, Y float64
}

// Sub returns the difference between two vectors
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Magnitude returns the length of the vector
func (v Vector2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the distance between two points
func (v Vector2) Distance(other Vector2) float64 {
	return v.Sub(other).Magnitude()
}

// Zip pairs two coordinate slices into points. The shorter slice bounds the result.
func Zip(x, y []float64) []Vector2 {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	pts := make([]Vector2, n)
	for i := 0; i < n; i++ {
		pts[i] = Vector2{X: x[i], Y: y[i]}
	}
	return pts
}
