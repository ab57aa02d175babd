package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/brickpath"
	"github.com/npillmayer/brickpath/course"
	"github.com/npillmayer/brickpath/spline"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const design = `
target_length = 20.0
points = [[0.1, 0.5], [0.5, 0.3], [0.9, 0.5]]

[brick]
length = 1.5
rows = 4
falloff = 0.7
flip = true

[anchor]
x = 1.0
z = -2.0

[curve]
kind = "chordal"
divisions = 300
`

func TestDecode(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d, err := Decode(design)
	require.NoError(t, err)
	assert.Equal(t, 20.0, d.TargetLength)
	assert.Equal(t, 10.0, d.WorldWidth, "default kept")
	assert.Len(t, d.Points, 3)
	p := d.Params()
	assert.Equal(t, 1.5, p.Length)
	assert.Equal(t, 4, p.Rows)
	assert.Equal(t, course.DefaultParams().Width, p.Width, "default kept")
	assert.True(t, p.Flip)
	require.NotNil(t, d.Anchor)
	assert.Equal(t, Anchor{X: 1, Z: -2}, *d.Anchor)
}

func TestSnapshot(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d, err := Decode(design)
	require.NoError(t, err)
	s, err := d.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, []brickpath.Pair{brickpath.P(0.1, 0.5), brickpath.P(0.5, 0.3), brickpath.P(0.9, 0.5)}, s.Points)
	assert.Equal(t, spline.Chordal, s.Curve.Kind)
	assert.Equal(t, 300, s.Curve.Divisions)
	require.NotNil(t, s.Anchor)
	assert.Equal(t, brickpath.V(1, 0, -2), *s.Anchor)
	assert.Equal(t, d.Params(), s.Params)

	d.Anchor = nil
	s, err = d.Snapshot()
	require.NoError(t, err)
	assert.Nil(t, s.Anchor)
}

func TestDecodeEmptyUsesDefaults(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d, err := Decode("")
	require.NoError(t, err)
	assert.Equal(t, Default(), d)
}

func TestDefaultsRoundTrip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var buf bytes.Buffer
	require.NoError(t, Default().Encode(&buf))
	d, err := Decode(buf.String())
	require.NoError(t, err)
	assert.Equal(t, Default(), d)
}

func TestInvalidDesigns(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	broken := map[string]string{
		"syntax":        "points = [[0.1, ",
		"unknown key":   "colour = \"red\"",
		"one point":     "points = [[0.5, 0.5]]",
		"3d point":      "points = [[0.1, 0.5, 0.0], [0.5, 0.3, 0.0]]",
		"outside":       "points = [[0.1, 0.5], [1.5, 0.3]]",
		"world":         "world_width = 0.0",
		"target":        "target_length = -3.0",
		"rows":          "[brick]\nrows = 0",
		"falloff":       "[brick]\nfalloff = 2.0",
		"kind":          "[curve]\nkind = \"bezier\"",
		"divisions":     "[curve]\ndivisions = -1",
		"unknown brick": "[brick]\nmortar = 1.0",
	}
	for name, data := range broken {
		_, err := Decode(data)
		assert.ErrorIs(t, err, ErrInvalidDesign, name)
	}
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := filepath.Join(t.TempDir(), "wall.toml")
	require.NoError(t, os.WriteFile(path, []byte(design), 0o644))
	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, d.Brick.Rows)
	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
