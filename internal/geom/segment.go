package geom

// Orientation of an axis-aligned segment.
type Orientation int

const (
	// Degenerate marks a segment whose endpoints coincide, or that is not
	// axis-aligned at all. Wires built from positive step counts never
	// produce one.
	Degenerate Orientation = iota
	Horizontal
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "degenerate"
	}
}

// Segment is the straight run between two consecutive corners of a wire.
type Segment struct {
	Start, End Point
}

// Orientation reports whether the segment runs along the x or the y axis.
func (s Segment) Orientation() Orientation {
	switch {
	case s.Start == s.End:
		return Degenerate
	case s.Start.X == s.End.X:
		return Vertical
	case s.Start.Y == s.End.Y:
		return Horizontal
	default:
		return Degenerate
	}
}

// Bounds returns the inclusive bounding box of the segment as its minimum
// and maximum corners.
func (s Segment) Bounds() (lo, hi Point) {
	lo = Point{X: minInt(s.Start.X, s.End.X), Y: minInt(s.Start.Y, s.End.Y)}
	hi = Point{X: maxInt(s.Start.X, s.End.X), Y: maxInt(s.Start.Y, s.End.Y)}
	return lo, hi
}

// Contains reports whether p lies inside the segment's bounding box.
func (s Segment) Contains(p Point) bool {
	lo, hi := s.Bounds()
	return lo.X <= p.X && p.X <= hi.X && lo.Y <= p.Y && p.Y <= hi.Y
}

// Length is the number of unit steps the segment covers.
func (s Segment) Length() int { return s.End.ManhattanTo(s.Start) }

// Intersect returns the crossing of s and other, if any.
func (s Segment) Intersect(other Segment) (Point, bool) {
	return Intersect(s.Start, s.End, other.Start, other.End)
}

// Intersect finds where segment (a,b) crosses segment (c,d). Both segments
// must be axis-aligned; this is not checked. Only a vertical segment against
// a horizontal one can cross. Segments sharing an orientation never report a
// crossing, even when they overlap.
func Intersect(a, b, c, d Point) (Point, bool) {
	// (a,b) vertical, (c,d) horizontal
	if a.X == b.X && c.Y == d.Y {
		if between(c.Y, a.Y, b.Y) && between(a.X, c.X, d.X) {
			return Point{X: a.X, Y: c.Y}, true
		}
	}
	// (a,b) horizontal, (c,d) vertical
	if a.Y == b.Y && c.X == d.X {
		if between(c.X, a.X, b.X) && between(a.Y, c.Y, d.Y) {
			return Point{X: c.X, Y: a.Y}, true
		}
	}
	return Point{}, false
}

// between reports whether v lies in the inclusive range spanned by lo and hi,
// in either order.
func between(v, lo, hi int) bool {
	return minInt(lo, hi) <= v && v <= maxInt(lo, hi)
}
