// Package poly defines polyhedra over quadray vertex coordinates, with
// scale and translate transforms and derivation of unique edge sets from
// face definitions.
package poly

import (
	"sort"

	"github.com/synmath/tetravol/geom"
)

// Edge is an undirected edge between two vertex positions. It is a derived
// view over a polyhedron's vertex map and has no identity of its own.
type Edge struct {
	V0, V1 geom.Quadray
}

// Polyhedron is a named solid: a mapping from vertex labels to quadray
// positions, a fixed tuple of faces given as ordered label cycles, the
// unique undirected edge set distilled from those faces, a nominal volume in
// IVM units, and a center.
//
// A Polyhedron is never mutated. Scale and Translate return new instances
// with the same topology and rederived edges.
type Polyhedron struct {
	Name   string
	Volume float64
	Center geom.Quadray

	verts map[string]geom.Quadray
	faces [][]string
	edges []Edge
}

// New creates a polyhedron from a vertex map and face list. The caller
// supplies the nominal IVM volume of the canonical embedding; edges are
// distilled from the faces.
func New(name string, volume float64, center geom.Quadray,
	verts map[string]geom.Quadray, faces [][]string) *Polyhedron {

	p := &Polyhedron{
		Name:   name,
		Volume: volume,
		Center: center,
		verts:  verts,
		faces:  faces,
	}
	p.edges = distill(verts, faces)
	return p
}

// Vertex returns the position of a labeled vertex.
func (p *Polyhedron) Vertex(label string) (geom.Quadray, bool) {
	q, ok := p.verts[label]
	return q, ok
}

// Vertices returns a copy of the vertex map.
func (p *Polyhedron) Vertices() map[string]geom.Quadray {
	verts := make(map[string]geom.Quadray, len(p.verts))
	for label, q := range p.verts {
		verts[label] = q
	}
	return verts
}

// Labels returns the vertex labels in sorted order.
func (p *Polyhedron) Labels() []string {
	labels := make([]string, 0, len(p.verts))
	for label := range p.verts {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Faces returns a copy of the face list. Each face is an ordered cycle of
// vertex labels.
func (p *Polyhedron) Faces() [][]string {
	faces := make([][]string, len(p.faces))
	for i, f := range p.faces {
		faces[i] = append([]string(nil), f...)
	}
	return faces
}

// Edges returns a copy of the unique undirected edge set.
func (p *Polyhedron) Edges() []Edge {
	return append([]Edge(nil), p.edges...)
}

// Scale returns a new polyhedron with every vertex multiplied by the given
// factor. The volume scales with the cube of the factor and the center is
// unchanged.
func (p *Polyhedron) Scale(factor float64) *Polyhedron {
	verts := make(map[string]geom.Quadray, len(p.verts))
	for label, q := range p.verts {
		verts[label] = q.Scale(factor)
	}
	return &Polyhedron{
		Name:   p.Name,
		Volume: p.Volume * factor * factor * factor,
		Center: p.Center,
		verts:  verts,
		faces:  p.faces,
		edges:  distill(verts, p.faces),
	}
}

// Translate returns a new polyhedron with every vertex shifted by delta.
// The volume is unchanged and the center shifts by exactly delta.
func (p *Polyhedron) Translate(delta geom.Quadray) *Polyhedron {
	verts := make(map[string]geom.Quadray, len(p.verts))
	for label, q := range p.verts {
		verts[label] = q.Add(delta)
	}
	return &Polyhedron{
		Name:   p.Name,
		Volume: p.Volume,
		Center: p.Center.Add(delta),
		verts:  verts,
		faces:  p.faces,
		edges:  distill(verts, p.faces),
	}
}

// TranslateXYZ translates by a Cartesian delta, converting it to the quadray
// representation first.
func (p *Polyhedron) TranslateXYZ(delta geom.Vec) *Polyhedron {
	return p.Translate(delta.Quadray())
}

// distill derives the unique undirected edge set from a face list. Every
// cyclic-adjacent label pair of every face, including the wrap-around pair,
// is canonicalized by sorting its two labels, so an edge shared by several
// faces appears exactly once. Edges are returned in sorted label order.
func distill(verts map[string]geom.Quadray, faces [][]string) []Edge {
	type pair [2]string
	seen := make(map[pair]bool)
	pairs := []pair{}

	for _, f := range faces {
		for i := range f {
			u, v := f[i], f[(i+1)%len(f)]
			if u > v {
				u, v = v, u
			}
			p := pair{u, v}
			if !seen[p] {
				seen[p] = true
				pairs = append(pairs, p)
			}
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})

	edges := make([]Edge, len(pairs))
	for i, p := range pairs {
		edges[i] = Edge{verts[p[0]], verts[p[1]]}
	}
	return edges
}
