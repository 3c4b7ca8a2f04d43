package advanced

import "math"

// The i-th edge runs from vertex i to vertex i+1, wrapping around so that the
// last edge closes the polygon. Every test in this package walks edges through
// this method so that they all agree on what the edges are.
func (poly Polygon) Edge(i int) Edge {
	n := len(poly.Points)
	return Edge{poly.Points[CircularIndex(i, n)], poly.Points[CircularIndex(i+1, n)]}
}

// Does p lie exactly on some edge of the polygon, within Epsilon of
// collinearity?
func (poly Polygon) IsOnBoundary(p Point) bool {
	for i := range poly.Points {
		if poly.Edge(i).Contains(p) {
			return true
		}
	}
	return false
}

// Even odd point-in-polygon with the boundary counted as inside. An empty
// polygon contains nothing.
func (poly Polygon) ContainsPoint(p Point) bool {
	if poly.IsOnBoundary(p) {
		return true
	}
	return poly.CrossingCount(p)%2 == 1
}

// Like ContainsPoint, but distinguishes the boundary from the interior.
func (poly Polygon) Classify(p Point) Location {
	if poly.IsOnBoundary(p) {
		return OnBoundary
	}
	if poly.CrossingCount(p)%2 == 1 {
		return Inside
	}
	return Outside
}

// Number of edges crossed by a ray cast from p in the +x direction. This is
// only meaningful for points that are not on the boundary.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i := range poly.Points {
		if poly.Edge(i).IsCrossedByRayFrom(p) {
			crossingCount++
		}
	}
	return crossingCount
}

// The edges counted by CrossingCount, in vertex order.
func (poly Polygon) Crossings(p Point) []Edge {
	var crossings []Edge
	for i := range poly.Points {
		edge := poly.Edge(i)
		if edge.IsCrossedByRayFrom(p) {
			crossings = append(crossings, edge)
		}
	}
	return crossings
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Shoelace formula. Positive for counterclockwise polygons.
func (poly Polygon) SignedArea() float64 {
	var area float64
	for i := range poly.Points {
		edge := poly.Edge(i)
		area += edge.Start.X*edge.End.Y - edge.End.X*edge.Start.Y
	}
	return area / 2
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

func (poly Polygon) IsCW() bool {
	return poly.SignedArea() < 0
}

// Area centroid of the polygon. For a polygon with zero area (fewer than
// three points, or all points collinear), this falls back to the mean of the
// vertices.
func (poly Polygon) Centroid() Point {
	area := poly.SignedArea()
	if area == 0 {
		var sum Point
		for _, p := range poly.Points {
			sum.X += p.X
			sum.Y += p.Y
		}
		n := float64(len(poly.Points))
		return Point{sum.X / n, sum.Y / n}
	}

	var c Point
	for i := range poly.Points {
		edge := poly.Edge(i)
		a := edge.Start.X*edge.End.Y - edge.End.X*edge.Start.Y
		c.X += (edge.Start.X + edge.End.X) * a
		c.Y += (edge.Start.Y + edge.End.Y) * a
	}
	c.X /= 6 * area
	c.Y /= 6 * area
	return c
}

// Axis aligned bounding box. For an empty polygon, min is +Inf and max is -Inf.
func (poly Polygon) Bounds() (min, max Point) {
	min = Point{math.Inf(1), math.Inf(1)}
	max = Point{math.Inf(-1), math.Inf(-1)}
	for _, p := range poly.Points {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}
