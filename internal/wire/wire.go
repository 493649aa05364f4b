package wire

import "github.com/specialistvlad/crossedwires/internal/geom"

// Wire is a named, immutable sequence of codes.
type Wire struct {
	Name  string
	Codes []Code
}

// Path is the traced form of a wire. Corners and Distances are index-aligned:
// Distances[i] is the number of steps walked to reach Corners[i]. Both start
// at the origin with distance 0.
type Path struct {
	Corners   []geom.Point
	Distances []int
}

// Build traces codes from the origin. Codes must come from ParseCode; an
// unknown direction contributes no movement.
func Build(codes []Code) Path {
	p := Path{
		Corners:   make([]geom.Point, 1, len(codes)+1),
		Distances: make([]int, 1, len(codes)+1),
	}

	pos, dist := geom.Origin, 0
	for _, c := range codes {
		v, _ := c.Dir.Vector()
		pos = pos.Add(v.Scale(c.Steps))
		dist += c.Steps
		p.Corners = append(p.Corners, pos)
		p.Distances = append(p.Distances, dist)
	}
	return p
}

// Path traces the wire.
func (w Wire) Path() Path { return Build(w.Codes) }

// Len returns the number of segments in the path.
func (p Path) Len() int {
	if len(p.Corners) == 0 {
		return 0
	}
	return len(p.Corners) - 1
}

// Segment returns the i-th segment, from Corners[i] to Corners[i+1].
func (p Path) Segment(i int) geom.Segment {
	return geom.Segment{Start: p.Corners[i], End: p.Corners[i+1]}
}

// Segments returns every segment of the path in walking order.
func (p Path) Segments() []geom.Segment {
	segs := make([]geom.Segment, p.Len())
	for i := range segs {
		segs[i] = p.Segment(i)
	}
	return segs
}

// StepsTo returns the wire distance to point q, which must lie on the i-th
// segment: the distance to the segment's start plus the partial walk along it.
func (p Path) StepsTo(i int, q geom.Point) int {
	return p.Distances[i] + q.ManhattanTo(p.Corners[i])
}
