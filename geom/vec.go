package geom

import "math"

const (
	// rotPrec is the decimal precision rotation results are rounded to.
	// Chained rotations accumulate floating noise fast enough that exact
	// comparisons fail without it.
	rotPrec = 8

	// sphPrec is the decimal precision used when reconstructing Cartesian
	// components from spherical coordinates.
	sphPrec = 15
)

// Vec is a point or direction in conventional 3-axis Cartesian coordinates.
// Vec is an immutable value type: every operation returns a new Vec and two
// Vecs are equal exactly when their components are equal.
type Vec struct {
	X, Y, Z float64
}

// V3 creates a Vec from its three components.
func V3(x, y, z float64) Vec {
	return Vec{x, y, z}
}

// VecFromSlice creates a Vec from an ordered component slice. It returns an
// *ErrInvalidArity if the slice does not contain exactly three components.
func VecFromSlice(comps []float64) (Vec, error) {
	if len(comps) != 3 {
		return Vec{}, &ErrInvalidArity{Want: 3, Got: len(comps)}
	}
	return Vec{comps[0], comps[1], comps[2]}, nil
}

// VecFromSpherical creates a Vec from a radius and the polar and azimuthal
// angles in degrees, the inverse of Spherical. Components are rounded to 15
// decimals so that points constructed on coordinate planes land exactly on
// them.
func VecFromSpherical(r, phi, theta float64) Vec {
	phiRad, thetaRad := radians(phi), radians(theta)
	return Vec{
		roundTo(r*math.Cos(thetaRad)*math.Sin(phiRad), sphPrec),
		roundTo(r*math.Sin(thetaRad)*math.Sin(phiRad), sphPrec),
		roundTo(r*math.Cos(phiRad), sphPrec),
	}
}

// Add returns the component-wise sum of v and u.
func (v Vec) Add(u Vec) Vec {
	return Vec{v.X + u.X, v.Y + u.Y, v.Z + u.Z}
}

// Sub returns the component-wise difference of v and u.
func (v Vec) Sub(u Vec) Vec {
	return v.Add(u.Neg())
}

// Neg returns the negation of v.
func (v Vec) Neg() Vec {
	return Vec{-v.X, -v.Y, -v.Z}
}

// Scale returns v multiplied by a scalar.
func (v Vec) Scale(s float64) Vec {
	return Vec{s * v.X, s * v.Y, s * v.Z}
}

// Div returns v divided by a scalar. It returns ErrDivideByZero if the
// scalar is zero.
func (v Vec) Div(s float64) (Vec, error) {
	if s == 0 {
		return Vec{}, ErrDivideByZero
	}
	return Vec{v.X / s, v.Y / s, v.Z / s}, nil
}

// Dot returns the dot product of v and u.
func (v Vec) Dot(u Vec) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Cross returns the cross product of v and u.
func (v Vec) Cross(u Vec) Vec {
	return Vec{
		v.Y*u.Z - v.Z*u.Y,
		v.Z*u.X - v.X*u.Z,
		v.X*u.Y - v.Y*u.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vec) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Unit returns the unit vector pointing in the same direction as v. It
// returns ErrDivideByZero if v has zero length, since a zero vector has no
// direction.
func (v Vec) Unit() (Vec, error) {
	length := v.Length()
	if length == 0 {
		return Vec{}, ErrDivideByZero
	}
	return v.Div(length)
}

// Angle returns the angle between v and u in degrees. The cosine is rounded
// and clamped before the inverse cosine so that floating noise cannot push
// it outside [-1, 1]. It returns ErrDivideByZero if either vector has zero
// length.
func (v Vec) Angle(u Vec) (float64, error) {
	lv, lu := v.Length(), u.Length()
	if lv == 0 || lu == 0 {
		return 0, ErrDivideByZero
	}
	cos := roundTo(v.Dot(u)/(lv*lu), 10)
	cos = math.Max(-1, math.Min(1, cos))
	return roundTo(degrees(math.Acos(cos)), 10), nil
}

// RotX returns v rotated around the X-axis by an angle in degrees.
func (v Vec) RotX(deg float64) Vec {
	rad := radians(deg)
	sin, cos := math.Sin(rad), math.Cos(rad)
	return Vec{
		roundTo(v.X, rotPrec),
		roundTo(cos*v.Y-sin*v.Z, rotPrec),
		roundTo(sin*v.Y+cos*v.Z, rotPrec),
	}
}

// RotY returns v rotated around the Y-axis by an angle in degrees.
func (v Vec) RotY(deg float64) Vec {
	rad := radians(deg)
	sin, cos := math.Sin(rad), math.Cos(rad)
	return Vec{
		roundTo(cos*v.X-sin*v.Z, rotPrec),
		roundTo(v.Y, rotPrec),
		roundTo(sin*v.X+cos*v.Z, rotPrec),
	}
}

// RotZ returns v rotated around the Z-axis by an angle in degrees.
func (v Vec) RotZ(deg float64) Vec {
	rad := radians(deg)
	sin, cos := math.Sin(rad), math.Cos(rad)
	return Vec{
		roundTo(cos*v.X-sin*v.Y, rotPrec),
		roundTo(sin*v.X+cos*v.Y, rotPrec),
		roundTo(v.Z, rotPrec),
	}
}

// RotAxis returns v rotated around an arbitrary axis by an angle in degrees.
// The axis is realigned with the Z-axis by two principal rotations, the
// in-plane rotation is applied, and the realignment is undone. Only the
// direction of the axis matters, not its length.
func (v Vec) RotAxis(axis Vec, deg float64) Vec {
	_, phi, theta := axis.Spherical()
	u := v.RotZ(-theta).RotY(phi)
	u = u.RotZ(-deg)
	return u.RotY(-phi).RotZ(theta)
}

// Spherical returns the spherical coordinates of v: the radius, the polar
// angle from the Z-axis in degrees in [0, 180], and the azimuth in the XY
// plane in degrees in (-180, 180]. The azimuth uses atan2, so all four
// quadrants are distinguished.
func (v Vec) Spherical() (r, phi, theta float64) {
	r = v.Length()

	theta = degrees(math.Atan2(v.Y, v.X))

	if r == 0 {
		phi = 0
	} else {
		phi = degrees(math.Acos(v.Z / r))
	}
	return r, phi, theta
}

// Quadray returns the quadray representation of v.
func (v Vec) Quadray() Quadray {
	a, b, c, d := XYZToIVM(v.X, v.Y, v.Z)
	return Quadray{a, b, c, d}
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
func degrees(rad float64) float64 { return rad * 180 / math.Pi }

func roundTo(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
