package advanced

import (
	"fmt"
	"math"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/pointinpolygon/dbg"
)

// Two dimensional cross product of (End - Start) and (p - Start). Zero when p
// is collinear with the edge; the sign tells which side of the edge p is on.
func (e Edge) Cross(p Point) float64 {
	return (e.End.X-e.Start.X)*(p.Y-e.Start.Y) - (e.End.Y-e.Start.Y)*(p.X-e.Start.X)
}

func (e Edge) IsCollinearWith(p Point) bool {
	return math.Abs(e.Cross(p)) < Epsilon
}

// Is p inside the edge's closed bounding box? Comparisons are exact.
func (e Edge) BoundsContain(p Point) bool {
	return between(p.X, e.Start.X, e.End.X) && between(p.Y, e.Start.Y, e.End.Y)
}

// Does p lie on the edge segment? Collinearity is tolerance based, but the
// point must also sit within the segment's bounding box, which rejects points
// on the edge's line that are past either end. For a zero length edge, this
// reduces to point equality.
func (e Edge) Contains(p Point) bool {
	return e.IsCollinearWith(p) && e.BoundsContain(p)
}

// Exact comparison. A horizontal edge can never be crossed by a horizontal ray.
func (e Edge) IsHorizontal() bool {
	return e.Start.Y == e.End.Y
}

func (e Edge) MinY() float64 {
	return math.Min(e.Start.Y, e.End.Y)
}

func (e Edge) MaxY() float64 {
	return math.Max(e.Start.Y, e.End.Y)
}

// Does the horizontal line at y pass through the edge's y span? The span is
// half open: the lower endpoint is included and the upper one excluded. When a
// ray passes exactly through a vertex shared by two edges, this makes the
// vertex count for exactly one of them if the edges continue on opposite sides
// of the ray, and for neither or both if they are on the same side, so the
// parity of the crossing count stays correct.
func (e Edge) SpansY(y float64) bool {
	return y >= e.MinY() && y < e.MaxY()
}

// Find the x value of the edge at the given y by linear interpolation. The
// edge must not be horizontal.
func (e Edge) SolveForX(y float64) float64 {
	t := (y - e.Start.Y) / (e.End.Y - e.Start.Y)
	return e.Start.X + t*(e.End.X-e.Start.X)
}

// Does a ray cast from p in the +x direction cross this edge?
func (e Edge) IsCrossedByRayFrom(p Point) bool {
	if e.IsHorizontal() || !e.SpansY(p.Y) {
		return false
	}
	return p.X < e.SolveForX(p.Y)
}

func (e Edge) String() string {
	return fmt.Sprintf("(%v, %v)-(%v, %v)", e.Start.X, e.Start.Y, e.End.X, e.End.Y)
}

// Readable name for tracing. Horizontal edges are red, since rays never cross
// them, and the rest are green.
func (e Edge) DbgName() string {
	name := dbg.Name(e)
	if e.IsHorizontal() {
		return aurora.Red(name).String()
	}
	return aurora.Green(name).String()
}
