package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuadrayNormalization(t *testing.T) {
	assert.Equal(t, Quadray{1, 0, 0, 0}, Q4(1, 0, 0, 0))
	assert.Equal(t, Quadray{0, 0, 0, 0}, Q4(1, 1, 1, 1))
	assert.Equal(t, Quadray{3, 0, 1, 2}, Q4(2, -1, 0, 1))
}

func TestQuadrayOffsetInvariance(t *testing.T) {
	q := Q4(2, 1, 0, 1)
	for _, k := range []float64{-3, -0.5, 0.25, 7} {
		assert.Equal(t, q, Q4(2+k, 1+k, 0+k, 1+k), "offset %g", k)
	}

	// The intended degeneracy: distinct raw tuples with the same normalized
	// form compare equal.
	assert.Equal(t, Q4(0, 0, 0, 0), Q4(2, 2, 2, 2))
}

func TestQuadrayOrdering(t *testing.T) {
	assert.True(t, Q4(0, 1, 0, 0).Less(Q4(1, 0, 0, 0)))
	assert.False(t, Q4(1, 0, 0, 0).Less(Q4(0, 1, 0, 0)))

	// Tuples with the same normalized form are not ordered either way.
	assert.False(t, Q4(1, 1, 1, 1).Less(Q4(2, 2, 2, 2)))
	assert.False(t, Q4(2, 2, 2, 2).Less(Q4(1, 1, 1, 1)))
}

func TestQuadrayFromSlice(t *testing.T) {
	q, err := QuadrayFromSlice([]float64{1, 0, 0, 0})
	assert.NoError(t, err)
	assert.Equal(t, Q4(1, 0, 0, 0), q)

	_, err = QuadrayFromSlice([]float64{1, 0, 0})
	var arity *ErrInvalidArity
	assert.ErrorAs(t, err, &arity)
	assert.Equal(t, 4, arity.Want)
	assert.Equal(t, 3, arity.Got)
}

func TestQuadrayArithmetic(t *testing.T) {
	a, b := Q4(1, 0, 0, 0), Q4(0, 1, 0, 0)

	assert.Equal(t, Q4(1, 1, 0, 0), a.Add(b))
	assert.Equal(t, Q4(1, 0, 0, 0).Scale(2), Q4(2, 0, 0, 0))

	// Subtraction renormalizes through the negation.
	diff := a.Sub(b)
	assert.Equal(t, Q4(1, -1, 0, 0), diff)

	_, err := a.Div(0)
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestQuadrayDotMatchesCartesian(t *testing.T) {
	pairs := [][2]Quadray{
		{Q4(1, 0, 0, 0), Q4(0, 1, 0, 0)},
		{Q4(2, 1, 0, 1), Q4(2, 1, 1, 0)},
		{Q4(1, 2, 3, 4), Q4(4, 3, 2, 1)},
	}
	for _, pair := range pairs {
		q, p := pair[0], pair[1]
		assert.InDelta(t, q.XYZ().Dot(p.XYZ()), q.Dot(p), testEps)
	}
}

func TestQuadrayLengthMatchesCartesian(t *testing.T) {
	qs := []Quadray{Q4(1, 0, 0, 0), Q4(2, 1, 0, 1), Q4(1, 2, 3, 4)}
	for _, q := range qs {
		assert.InDelta(t, q.XYZ().Length(), q.Length(), testEps)
	}
}

func TestQuadrayCrossMatchesCartesian(t *testing.T) {
	pairs := [][2]Quadray{
		{Q4(1, 0, 0, 0), Q4(0, 1, 0, 0)},
		{Q4(2, 1, 0, 1), Q4(2, 0, 1, 1)},
	}
	for _, pair := range pairs {
		q, p := pair[0], pair[1]
		got := q.Cross(p).XYZ()
		want := q.XYZ().Cross(p.XYZ())
		assert.InDelta(t, want.X, got.X, testEps)
		assert.InDelta(t, want.Y, got.Y, testEps)
		assert.InDelta(t, want.Z, got.Z, testEps)
	}
}

func TestQuadrayCrossAntiCommutes(t *testing.T) {
	q, p := Q4(2, 1, 0, 1), Q4(2, 1, 1, 0)
	assert.Equal(t, q.Cross(p), p.Cross(q).Neg())
}

func TestQuadrayAngle(t *testing.T) {
	// The angle between any two quadray basis rays is the tetrahedral
	// central angle, about 109.47 degrees.
	deg, err := Q4(1, 0, 0, 0).Angle(Q4(0, 1, 0, 0))
	assert.NoError(t, err)
	assert.InDelta(t, 109.4712206, deg, 1e-6)
}

func TestXYZRoundTrip(t *testing.T) {
	points := [][3]float64{
		{0, 0, 0}, {1, 0, 0}, {0, -1, 0}, {0, 0, 0.5},
		{1, 2, 3}, {-1, 2, -3}, {0.1, -0.2, 0.3}, {-5, -5, -5},
	}
	for _, p := range points {
		a, b, c, d := XYZToIVM(p[0], p[1], p[2])
		x, y, z := IVMToXYZ(a, b, c, d)
		assert.InDelta(t, p[0], x, 1e-10)
		assert.InDelta(t, p[1], y, 1e-10)
		assert.InDelta(t, p[2], z, 1e-10)
	}
}

func TestQuadrayRoundTrip(t *testing.T) {
	// A quadray round trip through Cartesian space recovers the normalized
	// form of the input, never the raw tuple.
	qs := []Quadray{Q4(1, 0, 0, 0), Q4(2, 1, 0, 1), Q4(5, 5, 5, 5)}
	for _, q := range qs {
		back := q.XYZ().Quadray()
		assert.InDelta(t, q.A, back.A, 1e-10)
		assert.InDelta(t, q.B, back.B, 1e-10)
		assert.InDelta(t, q.C, back.C, 1e-10)
		assert.InDelta(t, q.D, back.D, 1e-10)
	}
}

func TestConversionWrappers(t *testing.T) {
	v := V3(1, 2, 3)
	assert.Equal(t, v.Quadray(), VecToQuadray(v))

	q := Q4(2, 1, 0, 1)
	assert.Equal(t, q.XYZ(), QuadrayToVec(q))
}
