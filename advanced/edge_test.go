package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgeCross(t *testing.T) {
	edge := Edge{Point{0, 0}, Point{4, 0}}
	assert.Equal(t, 0.0, edge.Cross(Point{2, 0}))
	assert.Equal(t, 0.0, edge.Cross(Point{6, 0}))
	assert.Greater(t, edge.Cross(Point{2, 1}), 0.0, "left of a rightward edge is positive")
	assert.Less(t, edge.Cross(Point{2, -1}), 0.0, "right of a rightward edge is negative")
}

func TestEdgeContains(t *testing.T) {
	diagonal := Edge{Point{0, 0}, Point{4, 4}}

	t.Run("interior of segment", func(t *testing.T) {
		assert.True(t, diagonal.Contains(Point{1, 1}))
		assert.True(t, diagonal.Contains(Point{2.5, 2.5}))
	})

	t.Run("endpoints", func(t *testing.T) {
		assert.True(t, diagonal.Contains(Point{0, 0}))
		assert.True(t, diagonal.Contains(Point{4, 4}))
	})

	t.Run("collinear but past either end", func(t *testing.T) {
		assert.True(t, diagonal.IsCollinearWith(Point{5, 5}))
		assert.False(t, diagonal.Contains(Point{5, 5}))
		assert.True(t, diagonal.IsCollinearWith(Point{-1, -1}))
		assert.False(t, diagonal.Contains(Point{-1, -1}))
	})

	t.Run("within tolerance of the line", func(t *testing.T) {
		p := Point{2, 2 + 1e-11}
		assert.True(t, diagonal.IsCollinearWith(p))
		assert.True(t, diagonal.Contains(p))
	})

	t.Run("outside tolerance of the line", func(t *testing.T) {
		p := Point{2, 2 + 1e-6}
		assert.False(t, diagonal.IsCollinearWith(p))
		assert.False(t, diagonal.Contains(p))
	})

	t.Run("bounding box is exact", func(t *testing.T) {
		// Collinear within tolerance, but a hair below the bottom of a horizontal
		// edge's zero height bounding box
		horizontal := Edge{Point{0, 0}, Point{4, 0}}
		p := Point{2, -1e-12}
		assert.True(t, horizontal.IsCollinearWith(p))
		assert.False(t, horizontal.Contains(p))
	})

	t.Run("reversed edge", func(t *testing.T) {
		reversed := Edge{diagonal.End, diagonal.Start}
		assert.True(t, reversed.Contains(Point{3, 3}))
		assert.False(t, reversed.Contains(Point{5, 5}))
	})

	t.Run("zero length edge", func(t *testing.T) {
		degenerate := Edge{Point{1, 1}, Point{1, 1}}
		assert.True(t, degenerate.Contains(Point{1, 1}))
		assert.True(t, degenerate.IsCollinearWith(Point{3, 7}), "every point is collinear with a zero length edge")
		assert.False(t, degenerate.Contains(Point{3, 7}))
	})
}

func TestEdgeSpansY(t *testing.T) {
	for _, edge := range []Edge{
		{Point{0, 0}, Point{2, 4}},
		{Point{2, 4}, Point{0, 0}},
	} {
		assert.Equal(t, 0.0, edge.MinY())
		assert.Equal(t, 4.0, edge.MaxY())
		assert.True(t, edge.SpansY(0), "lower endpoint is included")
		assert.True(t, edge.SpansY(2))
		assert.False(t, edge.SpansY(4), "upper endpoint is excluded")
		assert.False(t, edge.SpansY(-1))
		assert.False(t, edge.SpansY(5))
	}
}

func TestEdgeSolveForX(t *testing.T) {
	edge := Edge{Point{4, 0}, Point{2, 4}}
	assert.Equal(t, 4.0, edge.SolveForX(0))
	assert.Equal(t, 3.5, edge.SolveForX(1))
	assert.Equal(t, 3.0, edge.SolveForX(2))
	assert.Equal(t, 2.0, edge.SolveForX(4))
}

func TestEdgeIsCrossedByRayFrom(t *testing.T) {
	edge := Edge{Point{4, 0}, Point{4, 4}}
	assert.True(t, edge.IsCrossedByRayFrom(Point{2, 2}))
	assert.True(t, edge.IsCrossedByRayFrom(Point{-100, 0}), "ray through the lower endpoint crosses")
	assert.False(t, edge.IsCrossedByRayFrom(Point{2, 4}), "ray through the upper endpoint does not cross")
	assert.False(t, edge.IsCrossedByRayFrom(Point{5, 2}), "edge is behind the ray")
	assert.False(t, edge.IsCrossedByRayFrom(Point{4, 2}), "crossing must be strictly to the right")
	assert.False(t, edge.IsCrossedByRayFrom(Point{2, 5}))

	horizontal := Edge{Point{0, 2}, Point{4, 2}}
	assert.True(t, horizontal.IsHorizontal())
	assert.False(t, horizontal.IsCrossedByRayFrom(Point{-1, 2}))
}

func TestEdgeString(t *testing.T) {
	assert.Equal(t, "(0, 0.5)-(4, -2)", Edge{Point{0, 0.5}, Point{4, -2}}.String())
}

func TestEdgeDbgName(t *testing.T) {
	edge := Edge{Point{0, 0}, Point{4, 4}}
	assert.Equal(t, edge.DbgName(), edge.DbgName(), "names are stable for equal edges")
	assert.NotEmpty(t, edge.DbgName())
}
