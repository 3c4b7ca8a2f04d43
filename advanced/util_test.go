package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestBetween(t *testing.T) {
	assert.True(t, between(1, 0, 2))
	assert.True(t, between(1, 2, 0))
	assert.True(t, between(0, 0, 2), "endpoints are included")
	assert.True(t, between(2, 2, 0), "endpoints are included")
	assert.True(t, between(3, 3, 3))
	assert.False(t, between(-0.5, 0, 2))
	assert.False(t, between(2.5, 2, 0))
}

func TestLocationString(t *testing.T) {
	assert.Equal(t, "outside", Outside.String())
	assert.Equal(t, "inside", Inside.String())
	assert.Equal(t, "boundary", OnBoundary.String())
	assert.Equal(t, "unknown", Location(42).String())

	assert.False(t, Outside.Contained())
	assert.True(t, Inside.Contained())
	assert.True(t, OnBoundary.Contained())
}
