package io

import (
	"fmt"
	"strings"

	"gopkg.in/gcfg.v1"
)

const ExampleSolidsFile = `[Solids]

#######################
# Required Parameters #
#######################

# Solids lists the canonical polyhedra to build. Give the parameter once per
# solid. Accepted values are Tetrahedron, Cube, Octahedron, Icosahedron, and
# Cuboctahedron.
Solids = Tetrahedron
Solids = Cube

#######################
# Optional Parameters #
#######################

# ScaleFactor scales every solid linearly. Volumes scale with its cube.
# Default is 1.
# ScaleFactor = 2.0

# TranslateX, TranslateY, and TranslateZ shift every solid by a Cartesian
# delta, applied after scaling. Default is no translation.
# TranslateX = 0.5
# TranslateY = 0.0
# TranslateZ = 0.0

# Output is the path of a glTF file the transformed solids are written to.
# If unset, no file is written and the solids are only reported on stdout.
# Output = solids.gltf`

// SolidsConfig describes a [Solids] job: which canonical polyhedra to build
// and the transform applied to each.
type SolidsConfig struct {
	// Required
	Solids []string

	// Optional
	ScaleFactor                        float64
	TranslateX, TranslateY, TranslateZ float64
	Output                             string
}

type SolidsWrapper struct {
	Solids SolidsConfig
}

func DefaultSolidsWrapper() *SolidsWrapper {
	con := SolidsConfig{}
	con.ScaleFactor = 1.0
	return &SolidsWrapper{con}
}

func (con *SolidsConfig) ValidSolids() bool {
	return len(con.Solids) > 0
}
func (con *SolidsConfig) ValidScaleFactor() bool {
	return con.ScaleFactor > 0
}
func (con *SolidsConfig) ValidOutput() bool {
	return con.Output != ""
}

// Translates reports whether the config requests a nonzero translation.
func (con *SolidsConfig) Translates() bool {
	return con.TranslateX != 0 || con.TranslateY != 0 || con.TranslateZ != 0
}

// ReadSolidsConfig reads and validates a [Solids] config file.
func ReadSolidsConfig(fname string) (*SolidsConfig, error) {
	wrap := DefaultSolidsWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	con := &wrap.Solids

	if !con.ValidSolids() {
		return nil, fmt.Errorf("config %s does not name any solids", fname)
	}
	if !con.ValidScaleFactor() {
		return nil, fmt.Errorf(
			"config %s gives non-positive ScaleFactor %g", fname, con.ScaleFactor,
		)
	}
	for _, name := range con.Solids {
		if !knownSolid(name) {
			return nil, fmt.Errorf("config %s names unknown solid %q", fname, name)
		}
	}
	return con, nil
}

var solidNames = []string{
	"Tetrahedron", "Cube", "Octahedron", "Icosahedron", "Cuboctahedron",
}

func knownSolid(name string) bool {
	for _, known := range solidNames {
		if strings.EqualFold(name, known) {
			return true
		}
	}
	return false
}
