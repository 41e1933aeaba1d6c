package core

import "fmt"

// Vector2 is an integer grid coordinate, passed by value
type Vector2 struct {
	X, Y int
}

// Add returns the component-wise sum
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2) String() string {
	return fmt.Sprintf("(x=%d,y=%d)", v.X, v.Y)
}
