package geom

import (
	"errors"
	"fmt"
)

var (
	// ErrDivideByZero is returned when dividing a vector by a zero scalar
	// or taking the unit vector of a zero-length vector.
	ErrDivideByZero = errors.New("division by zero")
)

// ErrInvalidGeometry indicates that a set of edge lengths cannot form a real
// tetrahedron or triangle. The failing radicand is retained for diagnostics.
type ErrInvalidGeometry struct {
	Radicand float64
}

func (e *ErrInvalidGeometry) Error() string {
	return fmt.Sprintf("edge lengths do not describe a real shape (radicand = %g)", e.Radicand)
}

// ErrInvalidArity indicates a component slice of the wrong length was passed
// to a vector constructor.
type ErrInvalidArity struct {
	Want, Got int
}

func (e *ErrInvalidArity) Error() string {
	return fmt.Sprintf("expected %d components, got %d", e.Want, e.Got)
}
