package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/gcfg.v1"
)

func TestExampleSolidsFileParses(t *testing.T) {
	wrap := DefaultSolidsWrapper()
	err := gcfg.ReadStringInto(wrap, ExampleSolidsFile)
	assert.NoError(t, err)

	con := wrap.Solids
	assert.Equal(t, []string{"Tetrahedron", "Cube"}, con.Solids)
	assert.Equal(t, 1.0, con.ScaleFactor)
	assert.False(t, con.Translates())
	assert.False(t, con.ValidOutput())
}

func TestReadSolidsConfig(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "solids.gcfg")
	text := `[Solids]
Solids = Octahedron
ScaleFactor = 2.5
TranslateX = 1.0
Output = out.gltf
`
	assert.NoError(t, os.WriteFile(fname, []byte(text), 0644))

	con, err := ReadSolidsConfig(fname)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Octahedron"}, con.Solids)
	assert.Equal(t, 2.5, con.ScaleFactor)
	assert.True(t, con.Translates())
	assert.Equal(t, "out.gltf", con.Output)
}

func TestReadSolidsConfigRejectsBadInput(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.gcfg")
	assert.NoError(t, os.WriteFile(empty, []byte("[Solids]\n"), 0644))
	_, err := ReadSolidsConfig(empty)
	assert.Error(t, err)

	unknown := filepath.Join(dir, "unknown.gcfg")
	assert.NoError(t, os.WriteFile(unknown,
		[]byte("[Solids]\nSolids = Dodecahedron\n"), 0644))
	_, err = ReadSolidsConfig(unknown)
	assert.Error(t, err)

	badScale := filepath.Join(dir, "scale.gcfg")
	assert.NoError(t, os.WriteFile(badScale,
		[]byte("[Solids]\nSolids = Cube\nScaleFactor = -1\n"), 0644))
	_, err = ReadSolidsConfig(badScale)
	assert.Error(t, err)
}

func TestReadPoints(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "points.txt")
	text := "0.5 0 0\n0 0.5 0\n0 0 0.5\n"
	assert.NoError(t, os.WriteFile(fname, []byte(text), 0644))

	points, err := ReadPoints(fname)
	assert.NoError(t, err)
	assert.Len(t, points, 3)
	assert.Equal(t, 0.5, points[0].X)
	assert.Equal(t, 0.5, points[1].Y)
	assert.Equal(t, 0.5, points[2].Z)
}
