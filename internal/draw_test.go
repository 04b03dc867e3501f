package internal

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawQueries(t *testing.T) {
	poly := Polygon{[]Point{{0, 0}, {4, 0}, {0, 2}}}
	results := []QueryResult{
		{Point{1, 0.5}, true},
		{Point{6, 1}, false},
	}
	c := DrawQueries(poly, results, 10)
	// The query point at x = 6 widens the picture past the polygon
	assert.Equal(t, 6*10+2*drawPadding, c.Width())
	assert.Equal(t, 2*10+2*drawPadding, c.Height())

	// Inside points are drawn green, and the background stays black
	x, y := c.TransformPoint(1, 0.5)
	r, g, b, _ := c.Image().At(int(x), int(y)).RGBA()
	assert.Zero(t, r)
	assert.NotZero(t, g)
	assert.Zero(t, b)
	r, g, b, _ = c.Image().At(1, 1).RGBA()
	assert.Zero(t, r+g+b)

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, c.SavePNG(path))
	assert.FileExists(t, path)
}

func TestCatPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	c := DrawQueries(Polygon{[]Point{{0, 0}, {1, 0}, {0, 1}}}, nil, 20)
	require.NoError(t, c.SavePNG(path))

	var buf bytes.Buffer
	require.NoError(t, CatPNG(path, &buf))
	assert.Contains(t, buf.String(), "\033]1337;File=")

	err := CatPNG(filepath.Join(t.TempDir(), "missing.png"), &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "imgcat")
}
