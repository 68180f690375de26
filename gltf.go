package image3d

import (
	"errors"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

var ErrEmptyMesh = errors.New("mesh has no polygons")

// GLTFExportOptions alters how a Mesh is written out as glTF.
type GLTFExportOptions struct {
	// Name of the mesh and its node in the document. Defaults to "image3d".
	Name string
	// Transform is applied to every vertex before writing; the zero value means the identity. Passing Orientation
	// exports the mesh the way it first appears on screen.
	Transform AffineTransform
}

// NewGLTFDocument builds a glTF document holding the Mesh as a single triangle-list primitive. Each polygon is split into
// a fan of triangles around its first vertex; degenerate triangles from the poles are kept as-is, since they are part of
// the geometry.
func NewGLTFDocument(mesh Mesh, options *GLTFExportOptions) (*gltf.Document, error) {

	if len(mesh.Polygons) == 0 {
		return nil, ErrEmptyMesh
	}

	name := "image3d"
	transform := Identity()

	if options != nil {
		if options.Name != "" {
			name = options.Name
		}
		if !options.Transform.IsZero() {
			transform = options.Transform
		}
	}

	positions := make([][3]float32, 0, mesh.VertexCount())
	indices := make([]uint32, 0, mesh.VertexCount()*3)

	for _, polygon := range mesh.Polygons {
		base := uint32(len(positions))
		for _, v := range polygon.Vertices {
			v = transform.Apply(v)
			positions = append(positions, [3]float32{float32(v.X), float32(v.Y), float32(v.Z)})
		}
		for i := 1; i < polygon.Len()-1; i++ {
			indices = append(indices, base, base+uint32(i), base+uint32(i+1))
		}
	}

	doc := gltf.NewDocument()

	positionAccessor := modeler.WritePosition(doc, positions)
	indexAccessor := modeler.WriteIndices(doc, indices)

	primitive := &gltf.Primitive{
		Indices:    gltf.Index(indexAccessor),
		Attributes: map[string]int{gltf.POSITION: positionAccessor},
		Mode:       gltf.PrimitiveTriangles,
	}

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name:       name,
		Primitives: []*gltf.Primitive{primitive},
	})

	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: name,
		Mesh: gltf.Index(len(doc.Meshes) - 1),
	})

	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)

	return doc, nil

}

// ExportGLTF writes the Mesh to path as a .gltf file (JSON with an embedded buffer).
func ExportGLTF(mesh Mesh, path string, options *GLTFExportOptions) error {
	doc, err := NewGLTFDocument(mesh, options)
	if err != nil {
		return err
	}
	return gltf.Save(doc, path)
}

// ExportGLB writes the Mesh to path as a binary .glb file.
func ExportGLB(mesh Mesh, path string, options *GLTFExportOptions) error {
	doc, err := NewGLTFDocument(mesh, options)
	if err != nil {
		return err
	}
	return gltf.SaveBinary(doc, path)
}
