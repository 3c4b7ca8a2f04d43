// Point-in-polygon testing for simple polygons in the plane.
//
// A point is classified as inside, outside, or on the boundary of a polygon
// given as an ordered list of vertices. The polygon is implicitly closed, may be
// wound either way, and may be non-convex, but it must not intersect itself.
// Points on the boundary count as inside.
//
// The functions here validate their input and then defer to the advanced
// package, which holds the geometry and performs no validation at all.
package pointinpolygon

import (
	"math"

	"github.com/osuushi/pointinpolygon/advanced"
	"github.com/pkg/errors"
)

type Point = advanced.Point
type Polygon = advanced.Polygon
type Location = advanced.Location

const (
	Outside    = advanced.Outside
	Inside     = advanced.Inside
	OnBoundary = advanced.OnBoundary
)

var (
	ErrEmptyPolygon = errors.New("polygon has no vertices")
	ErrNonFinite    = errors.New("coordinate is not finite")
)

// Does the point lie on an edge of the polygon?
func IsOnBoundary(point Point, polygon []Point) (bool, error) {
	poly, err := validate(point, polygon)
	if err != nil {
		return false, err
	}
	return poly.IsOnBoundary(point), nil
}

// Is the point inside the polygon or on its boundary?
func IsInside(point Point, polygon []Point) (bool, error) {
	poly, err := validate(point, polygon)
	if err != nil {
		return false, err
	}
	return poly.ContainsPoint(point), nil
}

func Classify(point Point, polygon []Point) (Location, error) {
	poly, err := validate(point, polygon)
	if err != nil {
		return Outside, err
	}
	return poly.Classify(point), nil
}

func validate(point Point, polygon []Point) (Polygon, error) {
	if len(polygon) == 0 {
		return Polygon{}, ErrEmptyPolygon
	}
	if !isFinite(point) {
		return Polygon{}, errors.Wrapf(ErrNonFinite, "query point (%v, %v)", point.X, point.Y)
	}
	for i, vertex := range polygon {
		if !isFinite(vertex) {
			return Polygon{}, errors.Wrapf(ErrNonFinite, "vertex %d (%v, %v)", i, vertex.X, vertex.Y)
		}
	}
	return Polygon{Points: polygon}, nil
}

func isFinite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
