package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriangleContainsPoint(t *testing.T) {
	tri := &Triangle{Point{0, 0}, Point{1, 0}, Point{0, 1}}

	t.Run("inside", func(t *testing.T) {
		assert.True(t, tri.ContainsPoint(Point{0.25, 0.25}))
		assert.True(t, tri.ContainsPoint(Point{0.5, 0.49}))
		assert.True(t, tri.ContainsPoint(Point{0.01, 0.5}))
	})

	t.Run("outside", func(t *testing.T) {
		assert.False(t, tri.ContainsPoint(Point{2, 0}))
		assert.False(t, tri.ContainsPoint(Point{0.5, 0.51}))
		assert.False(t, tri.ContainsPoint(Point{-0.01, 0.5}))
		assert.False(t, tri.ContainsPoint(Point{1, 1}))
	})

	t.Run("edges and vertices", func(t *testing.T) {
		for _, p := range []Point{{0, 0}, {1, 0}, {0, 1}, {0.5, 0}, {0, 0.5}, {0.5, 0.5}} {
			assert.True(t, tri.ContainsPoint(p), "%v", p)
		}
	})

	t.Run("within tolerance of an edge", func(t *testing.T) {
		assert.True(t, tri.ContainsPoint(Point{0.5, -Epsilon / 2}))
		assert.False(t, tri.ContainsPoint(Point{0.5, -2 * Epsilon}))
	})

	t.Run("beyond a vertex on an edge line", func(t *testing.T) {
		// On the line through the bottom edge, but past its end
		assert.False(t, tri.ContainsPoint(Point{1.5, 0}))
	})
}
