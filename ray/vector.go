package ray

import (
	"math"

	"github.com/tinyrange/raywin/internal/native"
)

// Vector2 is a 2D point or direction.
type Vector2 struct {
	X, Y float32
}

// FromAngle returns the vector of the given length pointing at angle radians.
func FromAngle(angle, length float32) Vector2 {
	sin, cos := math.Sincos(float64(angle))
	return Vector2{X: length * float32(cos), Y: length * float32(sin)}
}

func (v Vector2) native() native.Vector2 {
	return native.Vector2{X: v.X, Y: v.Y}
}

func vectorFromNative(v native.Vector2) Vector2 {
	return Vector2{X: v.X, Y: v.Y}
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// AddScalar adds s to both components.
func (v Vector2) AddScalar(s float32) Vector2 {
	return Vector2{X: v.X + s, Y: v.Y + s}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

func (v Vector2) Scale(s float32) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

func (v Vector2) Div(s float32) Vector2 {
	return Vector2{X: v.X / s, Y: v.Y / s}
}

// Mul multiplies componentwise.
func (v Vector2) Mul(o Vector2) Vector2 {
	return Vector2{X: v.X * o.X, Y: v.Y * o.Y}
}

// DivV divides componentwise.
func (v Vector2) DivV(o Vector2) Vector2 {
	return Vector2{X: v.X / o.X, Y: v.Y / o.Y}
}

func (v Vector2) Dot(o Vector2) float32 {
	return v.X*o.X + v.Y*o.Y
}

// Det is the 2D cross product, the z component of v × o.
func (v Vector2) Det(o Vector2) float32 {
	return v.X*o.Y - v.Y*o.X
}

// AngleWith returns the signed angle in radians from v to o.
func (v Vector2) AngleWith(o Vector2) float32 {
	return float32(math.Atan2(float64(v.Det(o)), float64(v.Dot(o))))
}

func (v Vector2) Len() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Normalize returns v scaled to unit length. The zero vector yields NaN components.
func (v Vector2) Normalize() Vector2 {
	return v.Div(v.Len())
}

// Rotate returns v rotated counter-clockwise by angle radians.
func (v Vector2) Rotate(angle float32) Vector2 {
	sin, cos := math.Sincos(float64(angle))
	s, c := float32(sin), float32(cos)
	return Vector2{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
	}
}
