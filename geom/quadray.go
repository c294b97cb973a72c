package geom

import "math"

// Quadray is a point or direction in the 4-axis isotropic tetrahedral
// coordinate system. The four basis rays point from the center of a regular
// tetrahedron to its corners.
//
// A Quadray is always stored in its canonical non-negative form: the minimum
// component is subtracted from all four on construction. The canonical form
// discards the uniform-offset degree of freedom, so (1, 1, 1, 1) and
// (2, 2, 2, 2) both normalize to (0, 0, 0, 0) and compare equal. Downstream
// vertex identity relies on this, so it is part of the contract rather than
// an artifact.
type Quadray struct {
	A, B, C, D float64
}

// Q4 creates a Quadray from four components, normalizing them to the
// canonical non-negative form.
func Q4(a, b, c, d float64) Quadray {
	m := math.Min(math.Min(a, b), math.Min(c, d))
	return Quadray{a - m, b - m, c - m, d - m}
}

// QuadrayFromSlice creates a Quadray from an ordered component slice. It
// returns an *ErrInvalidArity if the slice does not contain exactly four
// components.
func QuadrayFromSlice(comps []float64) (Quadray, error) {
	if len(comps) != 4 {
		return Quadray{}, &ErrInvalidArity{Want: 4, Got: len(comps)}
	}
	return Q4(comps[0], comps[1], comps[2], comps[3]), nil
}

// Less orders quadrays lexicographically on their normalized component
// tuples, matching the equality contract.
func (q Quadray) Less(p Quadray) bool {
	switch {
	case q.A != p.A:
		return q.A < p.A
	case q.B != p.B:
		return q.B < p.B
	case q.C != p.C:
		return q.C < p.C
	default:
		return q.D < p.D
	}
}

// zeroSum returns the zero-sum form of q: the mean of the four components
// subtracted from each. It is used only for dot products and lengths and is
// never stored.
func (q Quadray) zeroSum() [4]float64 {
	mean := (q.A + q.B + q.C + q.D) / 4
	return [4]float64{q.A - mean, q.B - mean, q.C - mean, q.D - mean}
}

// Add returns the normalized component-wise sum of q and p.
func (q Quadray) Add(p Quadray) Quadray {
	return Q4(q.A+p.A, q.B+p.B, q.C+p.C, q.D+p.D)
}

// Sub returns the normalized component-wise difference of q and p.
func (q Quadray) Sub(p Quadray) Quadray {
	return q.Add(p.Neg())
}

// Neg returns the negation of q, renormalized.
func (q Quadray) Neg() Quadray {
	return Q4(-q.A, -q.B, -q.C, -q.D)
}

// Scale returns q multiplied by a scalar, renormalized.
func (q Quadray) Scale(s float64) Quadray {
	return Q4(s*q.A, s*q.B, s*q.C, s*q.D)
}

// Div returns q divided by a scalar, renormalized. It returns
// ErrDivideByZero if the scalar is zero.
func (q Quadray) Div(s float64) (Quadray, error) {
	if s == 0 {
		return Quadray{}, ErrDivideByZero
	}
	return Q4(q.A/s, q.B/s, q.C/s, q.D/s), nil
}

// Dot returns the dot product of q and p. It is computed on the zero-sum
// forms with a factor of 1/2, which makes it agree with the Cartesian dot
// product of the converted vectors.
func (q Quadray) Dot(p Quadray) float64 {
	zq, zp := q.zeroSum(), p.zeroSum()
	sum := 0.0
	for i := range zq {
		sum += zq[i] * zp[i]
	}
	return 0.5 * sum
}

// Length returns the length of q, which equals the Euclidean length of its
// Cartesian conversion.
func (q Quadray) Length() float64 {
	return math.Sqrt(q.Dot(q))
}

// Cross returns the cross product of q and p. It expands both operands over
// the four basis rays with a fixed scale of Root2/4, which reproduces the
// Cartesian cross product under conversion.
func (q Quadray) Cross(p Quadray) Quadray {
	a1, b1, c1, d1 := p.A, p.B, p.C, p.D
	a2, b2, c2, d2 := q.A, q.B, q.C, q.D

	ca := c1*d2 - d1*c2 - b1*d2 + b1*c2 + b2*d1 - b2*c1
	cb := -c1*d2 + d1*c2 + a1*d2 - a1*c2 - a2*d1 + a2*c1
	cc := b1*d2 - b2*d1 - a1*d2 + a1*b2 + a2*d1 - a2*b1
	cd := -b1*c2 + b2*c1 + a1*c2 - a1*b2 - a2*c1 + a2*b1

	k := Root2 / 4
	return Q4(k*ca, k*cb, k*cc, k*cd)
}

// Angle returns the angle between q and p in degrees. Both operands are
// converted to Cartesian coordinates and the angle is measured there, so the
// two representations can never disagree about angles.
func (q Quadray) Angle(p Quadray) (float64, error) {
	return q.XYZ().Angle(p.XYZ())
}

// XYZ returns the Cartesian representation of q.
func (q Quadray) XYZ() Vec {
	x, y, z := IVMToXYZ(q.A, q.B, q.C, q.D)
	return Vec{x, y, z}
}
