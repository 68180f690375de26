package image3d

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func BenchmarkNewGLTFDocument(b *testing.B) {
	mesh := GenerateMesh(100, 30, 30)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := NewGLTFDocument(mesh, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func TestNewGLTFDocument(t *testing.T) {

	mesh := GenerateMesh(10, 3, 3)

	doc, err := NewGLTFDocument(mesh, &GLTFExportOptions{Name: "ball"})
	require.NoError(t, err)

	require.Len(t, doc.Meshes, 1)
	require.Len(t, doc.Nodes, 1)
	assert.Equal(t, "ball", doc.Meshes[0].Name)
	assert.Equal(t, []int{0}, doc.Scenes[0].Nodes)

	primitive := doc.Meshes[0].Primitives[0]
	assert.Equal(t, gltf.PrimitiveTriangles, primitive.Mode)

	positions := doc.Accessors[primitive.Attributes[gltf.POSITION]]
	indices := doc.Accessors[*primitive.Indices]

	// Each quad is one vertex set of 4 and a fan of 2 triangles.
	assert.Equal(t, mesh.VertexCount(), positions.Count)
	assert.Equal(t, len(mesh.Polygons)*2*3, indices.Count)

	// Bounds are written out for the position accessor.
	require.Len(t, positions.Max, 3)
	assert.InDelta(t, 15.0, positions.Max[2], 1e-4)

}

func TestNewGLTFDocumentTransform(t *testing.T) {

	mesh := GenerateMesh(10, 3, 3)

	doc, err := NewGLTFDocument(mesh, &GLTFExportOptions{Transform: Orientation})
	require.NoError(t, err)
	assert.Equal(t, "image3d", doc.Meshes[0].Name)

	positions := doc.Accessors[doc.Meshes[0].Primitives[0].Attributes[gltf.POSITION]]
	require.Len(t, positions.Min, 3)
	// The poles now sit along Y.
	assert.InDelta(t, -15.0, positions.Min[1], 1e-4)

}

func TestNewGLTFDocumentEmpty(t *testing.T) {
	_, err := NewGLTFDocument(Mesh{}, nil)
	assert.ErrorIs(t, err, ErrEmptyMesh)
}

func TestExportGLTFAndGLB(t *testing.T) {

	dir := t.TempDir()
	mesh := GenerateMesh(10, 4, 4)

	path := filepath.Join(dir, "sphere.gltf")
	require.NoError(t, ExportGLTF(mesh, path, nil))

	doc, err := gltf.Open(path)
	require.NoError(t, err)
	assert.Len(t, doc.Meshes, 1)

	glb := filepath.Join(dir, "sphere.glb")
	require.NoError(t, ExportGLB(mesh, glb, nil))

	doc, err = gltf.Open(glb)
	require.NoError(t, err)
	require.Len(t, doc.Meshes, 1)

	buf := &bytes.Buffer{}
	require.NoError(t, gltf.NewEncoder(buf).Encode(doc))
	assert.NotZero(t, buf.Len())

}
