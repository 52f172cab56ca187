package geom

import "math"

// Vec2 представляет точку или вектор на плоскости симуляции.
// Value type, передаётся по значению (immutable).
//
// Вертикальная ось существует только для рендера и никогда не участвует
// в проверках попадания.
type Vec2 struct {
	X float64
	Y float64
}

// V creates a Vec2 from coordinates.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns l + other.
func (l Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: l.X + other.X, Y: l.Y + other.Y}
}

// Sub returns l - other.
func (l Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: l.X - other.X, Y: l.Y - other.Y}
}

// Scale returns l * s.
func (l Vec2) Scale(s float64) Vec2 {
	return Vec2{X: l.X * s, Y: l.Y * s}
}

// Dot returns the dot product of l and other.
func (l Vec2) Dot(other Vec2) float64 {
	return l.X*other.X + l.Y*other.Y
}

// Len returns the vector length.
func (l Vec2) Len() float64 {
	return math.Sqrt(l.X*l.X + l.Y*l.Y)
}

// LenSquared возвращает квадрат длины (без sqrt для производительности).
func (l Vec2) LenSquared() float64 {
	return l.X*l.X + l.Y*l.Y
}

// Distance returns the distance to another point.
func (l Vec2) Distance(other Vec2) float64 {
	return l.Sub(other).Len()
}

// DistanceSquared возвращает квадрат расстояния до другой точки (без sqrt).
func (l Vec2) DistanceSquared(other Vec2) float64 {
	return l.Sub(other).LenSquared()
}

// minNormLen is the squared-length floor below which a vector is treated
// as degenerate by Normalize.
const minNormLen = 1e-12

// Normalize returns the unit vector pointing the same way as l.
// Returns (zero, false) for a degenerate (near-zero) vector — callers must
// treat that as "no direction", never divide by the length themselves.
func (l Vec2) Normalize() (Vec2, bool) {
	sq := l.LenSquared()
	if sq < minNormLen {
		return Vec2{}, false
	}
	inv := 1.0 / math.Sqrt(sq)
	return Vec2{X: l.X * inv, Y: l.Y * inv}, true
}
