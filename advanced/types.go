package advanced

// Points are plain values. A polygon never shares or mutates its vertices, so
// there is no reason to hold them by pointer.
type Point struct {
	X float64
	Y float64
}

// A polygon is implicitly closed: the last point connects back to the first.
// Winding order is irrelevant, and simplicity is assumed but not validated.
type Polygon struct {
	Points []Point
}

// An edge is a pair of consecutive polygon vertices. Edges are never stored;
// they are derived from the polygon on demand with Polygon.Edge.
type Edge struct {
	Start Point
	End   Point
}

type Location int

const (
	Outside Location = iota
	Inside
	OnBoundary
)

func (l Location) String() string {
	switch l {
	case Outside:
		return "outside"
	case Inside:
		return "inside"
	case OnBoundary:
		return "boundary"
	}
	return "unknown"
}

// Contained reports whether the location counts as inside the polygon. Points
// on the boundary are contained.
func (l Location) Contained() bool {
	return l == Inside || l == OnBoundary
}
