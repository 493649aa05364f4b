package wire

import "github.com/specialistvlad/crossedwires/internal/geom"

// Direction is one of the four grid directions a code can move in.
type Direction byte

const (
	Right Direction = 'R'
	Left  Direction = 'L'
	Up    Direction = 'U'
	Down  Direction = 'D'
)

// vectors maps each direction to its unit step.
var vectors = map[Direction]geom.Point{
	Right: {X: 1, Y: 0},
	Left:  {X: -1, Y: 0},
	Up:    {X: 0, Y: 1},
	Down:  {X: 0, Y: -1},
}

// Vector returns the unit step for d and whether d is a known direction.
func (d Direction) Vector() (geom.Point, bool) {
	v, ok := vectors[d]
	return v, ok
}

func (d Direction) Valid() bool {
	_, ok := vectors[d]
	return ok
}

func (d Direction) String() string { return string(d) }
