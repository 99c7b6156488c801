package core

import "fmt"

// Vector is a cell coordinate on screen. Columns grow to the right, rows
// grow downward. One board cell is two columns wide.
type Vector struct {
	X, Y int
}

// Position is a Vector naming a screen cell.
type Position = Vector

// Direction is a Vector naming a single step of the snake.
type Direction = Vector

// CellWidth is the number of screen columns a board cell occupies.
const CellWidth = 2

func Vec(x, y int) Vector {
	return Vector{X: x, Y: y}
}

func (v Vector) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}

func Add(a, b Vector) Vector {
	return Vector{X: a.X + b.X, Y: a.Y + b.Y}
}

// Multiply returns the component-wise product of a and b.
func Multiply(a, b Vector) Vector {
	return Vector{X: a.X * b.X, Y: a.Y * b.Y}
}

func Left() Direction {
	return Vector{X: -CellWidth, Y: 0}
}

func Right() Direction {
	return Vector{X: CellWidth, Y: 0}
}

func Up() Direction {
	return Vector{X: 0, Y: -1}
}

func Down() Direction {
	return Vector{X: 0, Y: 1}
}

// Opposite returns d pointing the other way.
func Opposite(d Direction) Direction {
	return Multiply(d, Vector{X: -1, Y: -1})
}
