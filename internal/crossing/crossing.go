package crossing

import (
	"fmt"

	"github.com/specialistvlad/crossedwires/internal/geom"
)

// Crossing is a point where a segment of wire A meets a segment of wire B.
type Crossing struct {
	Point geom.Point
	// Central is the Manhattan distance from the origin.
	Central int
	// WireDistance is the combined number of steps both wires walk to
	// reach Point.
	WireDistance int

	WireA, WireB       int
	SegmentA, SegmentB int
}

func (c Crossing) String() string {
	return fmt.Sprintf("%s (central %d, wire %d)", c.Point, c.Central, c.WireDistance)
}

// before reports whether c was found earlier than o when enumerating pairs
// of wires and then pairs of segments.
func (c Crossing) before(o Crossing) bool {
	if c.WireA != o.WireA {
		return c.WireA < o.WireA
	}
	if c.WireB != o.WireB {
		return c.WireB < o.WireB
	}
	if c.SegmentA != o.SegmentA {
		return c.SegmentA < o.SegmentA
	}
	return c.SegmentB < o.SegmentB
}

// Result holds the selected crossings. They may be the same crossing.
type Result struct {
	Central Crossing
	Wire    Crossing
	// Count is the number of crossings considered.
	Count int
}
