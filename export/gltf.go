// Package export serializes polyhedra to glTF documents for consumption by
// external renderers. Only finished vertex, face, and edge data crosses this
// boundary; no image output happens here.
package export

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/synmath/tetravol/poly"
)

// Document builds a glTF document with one mesh per polyhedron. Each mesh
// carries two primitives over a shared position accessor: the triangulated
// faces and a line-mode wireframe built from the distilled edge set.
// Vertex positions are the Cartesian conversions of the quadray vertices,
// ordered by sorted label.
func Document(polys ...*poly.Polyhedron) (*gltf.Document, error) {
	doc := gltf.NewDocument()

	for _, p := range polys {
		if err := addMesh(doc, p); err != nil {
			return nil, fmt.Errorf("polyhedron %q: %w", p.Name, err)
		}
	}
	return doc, nil
}

// Save builds a document from the given polyhedra and writes it to path.
func Save(path string, polys ...*poly.Polyhedron) error {
	doc, err := Document(polys...)
	if err != nil {
		return err
	}
	if err := gltf.Save(doc, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func addMesh(doc *gltf.Document, p *poly.Polyhedron) error {
	labels := p.Labels()
	index := make(map[string]uint16, len(labels))
	positions := make([][3]float32, len(labels))
	for i, label := range labels {
		q, _ := p.Vertex(label)
		v := q.XYZ()
		index[label] = uint16(i)
		positions[i] = [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
	}

	tris, err := triangulate(p, index)
	if err != nil {
		return err
	}
	lines, err := wireframe(p, index)
	if err != nil {
		return err
	}

	pos := modeler.WritePosition(doc, positions)
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: p.Name,
		Primitives: []*gltf.Primitive{
			{
				Indices:    gltf.Index(modeler.WriteIndices(doc, tris)),
				Attributes: map[string]int{gltf.POSITION: pos},
			},
			{
				Indices:    gltf.Index(modeler.WriteIndices(doc, lines)),
				Attributes: map[string]int{gltf.POSITION: pos},
				Mode:       gltf.PrimitiveLines,
			},
		},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: p.Name,
		Mesh: gltf.Index(len(doc.Meshes) - 1),
	})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	return nil
}

// triangulate fans every face around its first vertex. The canonical solids
// only have triangular and square faces, but the fan handles any convex
// cycle.
func triangulate(p *poly.Polyhedron, index map[string]uint16) ([]uint16, error) {
	var tris []uint16
	for _, f := range p.Faces() {
		if len(f) < 3 {
			return nil, fmt.Errorf("face %v has fewer than 3 vertices", f)
		}
		first, err := lookup(index, f[0])
		if err != nil {
			return nil, err
		}
		for i := 1; i+1 < len(f); i++ {
			second, err := lookup(index, f[i])
			if err != nil {
				return nil, err
			}
			third, err := lookup(index, f[i+1])
			if err != nil {
				return nil, err
			}
			tris = append(tris, first, second, third)
		}
	}
	return tris, nil
}

// wireframe emits one line segment per unique undirected edge, derived from
// the faces the same way the polyhedron's own edge set is.
func wireframe(p *poly.Polyhedron, index map[string]uint16) ([]uint16, error) {
	seen := make(map[[2]string]bool)
	var lines []uint16
	for _, f := range p.Faces() {
		for i := range f {
			u, v := f[i], f[(i+1)%len(f)]
			if u > v {
				u, v = v, u
			}
			if seen[[2]string{u, v}] {
				continue
			}
			seen[[2]string{u, v}] = true

			ui, err := lookup(index, u)
			if err != nil {
				return nil, err
			}
			vi, err := lookup(index, v)
			if err != nil {
				return nil, err
			}
			lines = append(lines, ui, vi)
		}
	}
	return lines, nil
}

func lookup(index map[string]uint16, label string) (uint16, error) {
	i, ok := index[label]
	if !ok {
		return 0, fmt.Errorf("face references unknown vertex %q", label)
	}
	return i, nil
}
