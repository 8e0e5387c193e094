package binding

import "fmt"

// Vec2 is the value carried by Vec2Binding events.
type Vec2 struct {
	X float32
	Y float32
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// String formats v as "(x, y)".
func (v Vec2) String() string { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }
