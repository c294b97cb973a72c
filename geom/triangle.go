package geom

import "math"

// Tri is a triangle described by its three edge lengths. Like Tetra,
// construction does not validate the triangle inequality: an unrealizable
// length set makes the Heron radicand negative and the area methods fail
// with *ErrInvalidGeometry.
type Tri struct {
	A, B, C float64
}

// NewTri creates a triangle from three edge lengths.
func NewTri(a, b, c float64) Tri {
	return Tri{a, b, c}
}

// IVMArea computes the area of t in IVM units using Heron's formula.
func (t Tri) IVMArea() (float64, error) {
	s := (t.A + t.B + t.C) / 2
	rad := s * (s - t.A) * (s - t.B) * (s - t.C)
	if rad < 0 {
		return 0, &ErrInvalidGeometry{Radicand: rad}
	}
	return math.Sqrt(rad), nil
}

// XYZArea computes the area of t in XYZ units.
func (t Tri) XYZArea() (float64, error) {
	ivm, err := t.IVMArea()
	if err != nil {
		return 0, err
	}
	return ivm / S3, nil
}

// MakeTri derives the three edge lengths of the triangle spanned by the
// origin and two points and returns its area in both unit systems.
func MakeTri[P Point[P]](p0, p1 P) (ivm, xyz float64, err error) {
	t := NewTri(p0.Length(), p1.Length(), p1.Sub(p0).Length())
	ivm, err = t.IVMArea()
	if err != nil {
		return 0, 0, err
	}
	return ivm, ivm / S3, nil
}
