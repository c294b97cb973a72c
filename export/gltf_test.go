package export

import (
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"

	"github.com/synmath/tetravol/poly"
)

func TestDocument(t *testing.T) {
	doc, err := Document(poly.Tetrahedron(), poly.Cube())
	assert.NoError(t, err)

	assert.Len(t, doc.Meshes, 2)
	assert.Len(t, doc.Nodes, 2)
	assert.Len(t, doc.Scenes[0].Nodes, 2)

	assert.Equal(t, "Tetrahedron", doc.Meshes[0].Name)
	assert.Equal(t, "Cube", doc.Meshes[1].Name)

	for _, mesh := range doc.Meshes {
		assert.Len(t, mesh.Primitives, 2)
		assert.Equal(t, gltf.PrimitiveLines, mesh.Primitives[1].Mode)
	}

	// The tetrahedron position accessor holds its four vertices.
	posIdx := doc.Meshes[0].Primitives[0].Attributes[gltf.POSITION]
	assert.Equal(t, 4, doc.Accessors[posIdx].Count)

	// Four triangular faces and six wireframe edges.
	triIdx := *doc.Meshes[0].Primitives[0].Indices
	assert.Equal(t, 4*3, doc.Accessors[triIdx].Count)
	lineIdx := *doc.Meshes[0].Primitives[1].Indices
	assert.Equal(t, 6*2, doc.Accessors[lineIdx].Count)

	// Square cube faces are fanned into two triangles each.
	cubeTriIdx := *doc.Meshes[1].Primitives[0].Indices
	assert.Equal(t, 6*2*3, doc.Accessors[cubeTriIdx].Count)
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solids.gltf")
	err := Save(path, poly.Octahedron())
	assert.NoError(t, err)

	doc, err := gltf.Open(path)
	assert.NoError(t, err)
	assert.Len(t, doc.Meshes, 1)
	assert.Equal(t, "Octahedron", doc.Meshes[0].Name)
}
