package poly

import "github.com/synmath/tetravol/geom"

// The canonical solids are built on the quadray lattice: the four basis
// rays, the eight cube corners reached by summing three of them, and the
// twelve cuboctahedron vertices reached by summing pairs of the six
// octahedron vertices. Volumes follow the concentric hierarchy, in which
// the regular tetrahedron inscribed in the unit-radius sphere packing has
// volume 1.
var (
	origin = geom.Q4(0, 0, 0, 0)

	qA = geom.Q4(1, 0, 0, 0)
	qB = geom.Q4(0, 1, 0, 0)
	qC = geom.Q4(0, 0, 1, 0)
	qD = geom.Q4(0, 0, 0, 1)

	// Cube corners opposite the four tetrahedron vertices.
	qE = qB.Add(qC).Add(qD)
	qF = qA.Add(qC).Add(qD)
	qG = qA.Add(qB).Add(qD)
	qH = qA.Add(qB).Add(qC)

	// Octahedron vertices.
	qI = qA.Add(qB)
	qJ = qA.Add(qC)
	qK = qA.Add(qD)
	qL = qB.Add(qC)
	qM = qB.Add(qD)
	qN = qC.Add(qD)

	// Cuboctahedron vertices.
	qO = qI.Add(qJ)
	qP = qI.Add(qK)
	qQ = qI.Add(qL)
	qR = qI.Add(qM)
	qS = qN.Add(qJ)
	qT = qN.Add(qK)
	qU = qN.Add(qL)
	qV = qN.Add(qM)
	qW = qJ.Add(qL)
	qX = qL.Add(qM)
	qY = qM.Add(qK)
	qZ = qK.Add(qJ)
)

// Tetrahedron returns the canonical regular tetrahedron, volume 1, with
// vertices on the four quadray basis rays.
func Tetrahedron() *Polyhedron {
	return New("Tetrahedron", 1, origin,
		map[string]geom.Quadray{"a": qA, "b": qB, "c": qC, "d": qD},
		[][]string{
			{"a", "b", "c"},
			{"a", "c", "d"},
			{"a", "d", "b"},
			{"b", "d", "c"},
		},
	)
}

// Cube returns the canonical cube, volume 3: the tetrahedron's four
// vertices plus their four antipodes.
func Cube() *Polyhedron {
	return New("Cube", 3, origin,
		map[string]geom.Quadray{
			"a": qA, "b": qB, "c": qC, "d": qD,
			"e": qE, "f": qF, "g": qG, "h": qH,
		},
		[][]string{
			{"a", "f", "c", "h"},
			{"h", "c", "e", "b"},
			{"b", "e", "d", "g"},
			{"g", "d", "f", "a"},
			{"c", "f", "d", "e"},
			{"a", "h", "b", "g"},
		},
	)
}

// Octahedron returns the canonical regular octahedron, volume 4, with
// vertices at the pairwise basis sums.
func Octahedron() *Polyhedron {
	return New("Octahedron", 4, origin,
		map[string]geom.Quadray{
			"i": qI, "j": qJ, "k": qK,
			"l": qL, "m": qM, "n": qN,
		},
		[][]string{
			{"j", "k", "i"},
			{"j", "i", "l"},
			{"j", "l", "n"},
			{"j", "n", "k"},
			{"m", "k", "i"},
			{"m", "i", "l"},
			{"m", "l", "n"},
			{"m", "n", "k"},
		},
	)
}

// Icosahedron returns the canonical regular icosahedron, volume ~18.51.
// Its vertices sit on the cuboctahedron's square-face diagonals at
// golden-ratio positions.
func Icosahedron() *Polyhedron {
	return New("Icosahedron", 18.51, origin, icosaVerts(),
		[][]string{
			{"o", "w", "s"}, {"o", "z", "s"},
			{"z", "p", "y"}, {"z", "t", "y"},
			{"t", "v", "u"}, {"t", "s", "u"},
			{"w", "q", "x"}, {"w", "u", "x"},
			{"p", "o", "q"}, {"p", "r", "q"},
			{"r", "y", "v"}, {"r", "x", "v"},
			{"z", "s", "t"}, {"t", "y", "v"},
			{"y", "p", "r"}, {"r", "q", "x"},
			{"x", "u", "v"}, {"u", "s", "w"},
			{"w", "q", "o"}, {"o", "z", "p"},
		},
	)
}

// Cuboctahedron returns the canonical cuboctahedron, volume 20, with
// vertices at the pairwise sums of the octahedron vertices.
func Cuboctahedron() *Polyhedron {
	return New("Cuboctahedron", 20, origin,
		map[string]geom.Quadray{
			"o": qO, "p": qP, "q": qQ, "r": qR,
			"s": qS, "t": qT, "u": qU, "v": qV,
			"w": qW, "x": qX, "y": qY, "z": qZ,
		},
		[][]string{
			{"o", "w", "s", "z"},
			{"z", "p", "y", "t"},
			{"t", "v", "u", "s"},
			{"w", "q", "x", "u"},
			{"o", "p", "r", "q"},
			{"r", "y", "v", "x"},
			{"z", "s", "t"},
			{"t", "y", "v"},
			{"y", "p", "r"},
			{"r", "q", "x"},
			{"x", "u", "v"},
			{"u", "s", "w"},
			{"w", "q", "o"},
			{"o", "z", "p"},
		},
	)
}

// icosaVerts places the twelve icosahedron vertices. Each cuboctahedron
// square face contributes a pair: start from the golden-ratio point along
// the face's midpoint direction, then step half the control length along
// each of the face's two octahedron axes.
func icosaVerts() map[string]geom.Quadray {
	control := qZ.Sub(qT).Length()

	gZY := goldMid(qZ, qY)
	gWX := goldMid(qW, qX)
	gRV := goldMid(qR, qV)
	gOS := goldMid(qO, qS)
	gTU := goldMid(qT, qU)
	gPQ := goldMid(qP, qQ)

	return map[string]geom.Quadray{
		"z": icoVert(gZY, qJ, control),
		"y": icoVert(gZY, qM, control),
		"w": icoVert(gWX, qJ, control),
		"x": icoVert(gWX, qM, control),
		"r": icoVert(gRV, qI, control),
		"v": icoVert(gRV, qN, control),
		"o": icoVert(gOS, qI, control),
		"s": icoVert(gOS, qN, control),
		"t": icoVert(gTU, qK, control),
		"u": icoVert(gTU, qL, control),
		"p": icoVert(gPQ, qK, control),
		"q": icoVert(gPQ, qL, control),
	}
}

func goldMid(p, q geom.Quadray) geom.Quadray {
	mid := p.Add(q)
	return mid.Scale(0.5 * geom.Phi / mid.Length())
}

func icoVert(gold, axis geom.Quadray, control float64) geom.Quadray {
	return gold.Add(axis.Scale(control / (2 * axis.Length())))
}
