package geom

import "math"

// Constants shared by the volume formulas and the canonical polyhedron
// constructions.
//
// S3 converts between the two volume unit systems: dividing an IVM
// tetravolume by S3 gives the volume in XYZ units, where a Cartesian unit
// cube has volume 1.
var (
	S3    = math.Sqrt(9.0 / 8.0)
	Root2 = math.Sqrt(2)
	Root3 = math.Sqrt(3)
	Root5 = math.Sqrt(5)
	Phi   = (1 + math.Sqrt(5)) / 2

	// R and D are the canonical sphere radius and diameter. Edge lengths
	// throughout are usually given in D units.
	R = 0.5
	D = 1.0
)
