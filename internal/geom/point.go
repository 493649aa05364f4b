package geom

import "fmt"

// Point is a position on the integer grid.
type Point struct {
	X, Y int
}

// Origin is the shared starting point of every wire.
var Origin = Point{}

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }
func (p Point) Scale(k int) Point { return Point{X: p.X * k, Y: p.Y * k} }

// Abs returns the point with both coordinates made non-negative.
func (p Point) Abs() Point { return Point{X: absInt(p.X), Y: absInt(p.Y)} }

// Sum reduces the point to the sum of its components.
func (p Point) Sum() int { return p.X + p.Y }

// Manhattan returns the taxicab distance from the origin.
func (p Point) Manhattan() int { return p.Abs().Sum() }

// ManhattanTo returns the taxicab distance between p and q.
func (p Point) ManhattanTo(q Point) int { return p.Sub(q).Manhattan() }

func (p Point) IsOrigin() bool { return p == Origin }

// String formats the point as "[x y]".
func (p Point) String() string { return fmt.Sprintf("[%d %d]", p.X, p.Y) }

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
