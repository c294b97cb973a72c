package geom

import "math"

// Tetra is a tetrahedron described purely by its six edge lengths. A, B,
// and C are the three edges sharing one vertex; D, E, and F are their
// respective opposite edges. The four faces are (A,B,D), (B,C,E), (C,A,F)
// and (D,E,F). No vertex positions are stored: volumes are derived from
// lengths alone via the Euler edge-length formula as modified by Gerald
// de Jong.
//
// Construction does not validate that the lengths can form a real
// tetrahedron. An unrealizable length set produces a negative radicand and
// the volume methods fail with *ErrInvalidGeometry instead of returning NaN.
type Tetra struct {
	A, B, C, D, E, F float64
}

// NewTetra creates a tetrahedron from six edge lengths: a, b, c from one
// vertex and d, e, f their opposite edges.
func NewTetra(a, b, c, d, e, f float64) Tetra {
	return Tetra{a, b, c, d, e, f}
}

// IVMVolume computes the volume of t in tetravolume (IVM) units, where the
// regular tetrahedron with unit edges has volume 1.
func (t Tetra) IVMVolume() (float64, error) {
	rad := (t.addOpen() - t.addClosed() - t.addOpposite()) / 2
	if rad < 0 {
		return 0, &ErrInvalidGeometry{Radicand: rad}
	}
	return math.Sqrt(rad), nil
}

// XYZVolume computes the volume of t in XYZ units, where a Cartesian unit
// cube has volume 1.
func (t Tetra) XYZVolume() (float64, error) {
	ivm, err := t.IVMVolume()
	if err != nil {
		return 0, err
	}
	return ivm / S3, nil
}

// addOpen sums the twelve products of three squared edges that do not all
// lie on one face.
func (t Tetra) addOpen() float64 {
	a2, b2, c2 := t.A*t.A, t.B*t.B, t.C*t.C
	d2, e2, f2 := t.D*t.D, t.E*t.E, t.F*t.F

	sum := f2 * a2 * b2
	sum += d2 * a2 * c2
	sum += a2 * b2 * e2
	sum += c2 * b2 * d2
	sum += e2 * c2 * a2
	sum += f2 * c2 * b2
	sum += e2 * d2 * a2
	sum += b2 * d2 * f2
	sum += b2 * e2 * f2
	sum += d2 * e2 * c2
	sum += a2 * f2 * e2
	sum += d2 * f2 * c2
	return sum
}

// addClosed sums the four face products, one per face.
func (t Tetra) addClosed() float64 {
	a2, b2, c2 := t.A*t.A, t.B*t.B, t.C*t.C
	d2, e2, f2 := t.D*t.D, t.E*t.E, t.F*t.F

	sum := a2 * b2 * d2
	sum += d2 * e2 * f2
	sum += b2 * c2 * e2
	sum += a2 * c2 * f2
	return sum
}

// addOpposite sums e1²e2²(e1²+e2²) over the three opposite-edge pairs.
func (t Tetra) addOpposite() float64 {
	a2, b2, c2 := t.A*t.A, t.B*t.B, t.C*t.C
	d2, e2, f2 := t.D*t.D, t.E*t.E, t.F*t.F

	sum := a2 * e2 * (a2 + e2)
	sum += b2 * f2 * (b2 + f2)
	sum += c2 * d2 * (c2 + d2)
	return sum
}

// Point is the capability either vector representation offers the
// length-based constructors: a distance from the origin and a difference
// with another point of the same representation.
type Point[P any] interface {
	Length() float64
	Sub(P) P
}

// MakeTetra derives the six edge lengths of the tetrahedron spanned by the
// origin and three points, in either coordinate representation, and returns
// its volume in both unit systems.
func MakeTetra[P Point[P]](p0, p1, p2 P) (ivm, xyz float64, err error) {
	t := NewTetra(
		p0.Length(), p1.Length(), p2.Length(),
		p0.Sub(p1).Length(), p1.Sub(p2).Length(), p2.Sub(p0).Length(),
	)
	ivm, err = t.IVMVolume()
	if err != nil {
		return 0, 0, err
	}
	return ivm, ivm / S3, nil
}
