package geom

import "math"

// XYZToIVM converts Cartesian coordinates to quadray coordinates. Each
// output component collects the positive parts of a signed subset of the
// inputs: the first collects all-positive contributions and the other three
// each flip exactly two signs. The result is returned in the canonical
// non-negative form.
//
// XYZToIVM and IVMToXYZ are mutually inverse up to normalization: a round
// trip starting from Cartesian coordinates reproduces them to floating
// precision, while a round trip starting from an arbitrary quadray tuple
// reproduces only its normalized form.
func XYZToIVM(x, y, z float64) (a, b, c, d float64) {
	k := 2 / math.Sqrt(2)
	a = k * (math.Max(x, 0) + math.Max(y, 0) + math.Max(z, 0))
	b = k * (math.Max(-x, 0) + math.Max(-y, 0) + math.Max(z, 0))
	c = k * (math.Max(-x, 0) + math.Max(y, 0) + math.Max(-z, 0))
	d = k * (math.Max(x, 0) + math.Max(-y, 0) + math.Max(-z, 0))

	q := Q4(a, b, c, d)
	return q.A, q.B, q.C, q.D
}

// IVMToXYZ converts quadray coordinates to Cartesian coordinates.
func IVMToXYZ(a, b, c, d float64) (x, y, z float64) {
	k := 0.5 / math.Sqrt(2)
	x = k * (a - b - c + d)
	y = k * (a - b + c - d)
	z = k * (a + b - c - d)
	return x, y, z
}

// VecToQuadray converts a Cartesian vector to its quadray representation.
func VecToQuadray(v Vec) Quadray {
	return v.Quadray()
}

// QuadrayToVec converts a quadray vector to its Cartesian representation.
func QuadrayToVec(q Quadray) Vec {
	return q.XYZ()
}
