package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/synmath/tetravol/export"
	"github.com/synmath/tetravol/geom"
	"github.com/synmath/tetravol/io"
	"github.com/synmath/tetravol/poly"
)

func main() {
	// The main function manages input sanitization and calls the secondary
	// main functions for each mode.

	var (
		solidsStr, pointsStr, exampleConfig string
	)
	vars := map[string]*string{
		"Solids":        &solidsStr,
		"Points":        &pointsStr,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&solidsStr, "Solids", "",
		"Configuration file for [Solids] mode: build the named canonical "+
			"polyhedra, apply the configured transform, and report or export them.",
	)
	flag.StringVar(
		&pointsStr, "Points", "",
		"Point table file for [Points] mode: rows of x y z coordinates, "+
			"reporting tetrahedron volumes for consecutive point triples.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. The only accepted argument is 'Solids'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Solids":
		con, err := io.ReadSolidsConfig(solidsStr)
		if err != nil {
			log.Fatal(err.Error())
		}
		solidsMain(con)
	case "Points":
		pointsMain(pointsStr)
	case "ExampleConfig":
		if exampleConfig != "Solids" {
			log.Fatalf(
				"Unrecognized config type %s. The only accepted type is 'Solids'.",
				exampleConfig,
			)
		}
		fmt.Println(io.ExampleSolidsFile)
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but tetravol "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

var factories = map[string]func() *poly.Polyhedron{
	"tetrahedron":   poly.Tetrahedron,
	"cube":          poly.Cube,
	"octahedron":    poly.Octahedron,
	"icosahedron":   poly.Icosahedron,
	"cuboctahedron": poly.Cuboctahedron,
}

// solidsMain builds, transforms, and reports the configured solids, writing
// a glTF file if the config asks for one.
func solidsMain(con *io.SolidsConfig) {
	solids := make([]*poly.Polyhedron, 0, len(con.Solids))
	for _, name := range con.Solids {
		factory, ok := factories[strings.ToLower(name)]
		if !ok {
			log.Fatalf("Unknown solid %s.", name)
		}

		p := factory()
		if con.ScaleFactor != 1 {
			p = p.Scale(con.ScaleFactor)
		}
		if con.Translates() {
			p = p.TranslateXYZ(geom.V3(
				con.TranslateX, con.TranslateY, con.TranslateZ,
			))
		}
		solids = append(solids, p)
	}

	for _, p := range solids {
		fmt.Printf(
			"%s: %d vertices, %d faces, %d edges, volume %g tetravolumes "+
				"(%g in XYZ units)\n",
			p.Name, len(p.Vertices()), len(p.Faces()), len(p.Edges()),
			p.Volume, p.Volume/geom.S3,
		)
	}

	if con.ValidOutput() {
		if err := export.Save(con.Output, solids...); err != nil {
			log.Fatal(err.Error())
		}
		log.Printf("Wrote %d solids to %s.", len(solids), con.Output)
	}
}

// pointsMain reads a point table and reports the volume of the tetrahedron
// spanned by the origin and each consecutive point triple.
func pointsMain(fname string) {
	points, err := io.ReadPoints(fname)
	if err != nil {
		log.Fatal(err.Error())
	}
	if len(points) < 3 {
		log.Fatalf("Point file %s contains fewer than 3 points.", fname)
	}

	tets := make([]geom.Tetra, 0, len(points)-2)
	for i := 0; i+2 < len(points); i++ {
		p0, p1, p2 := points[i], points[i+1], points[i+2]
		tets = append(tets, geom.NewTetra(
			p0.Length(), p1.Length(), p2.Length(),
			p0.Sub(p1).Length(), p1.Sub(p2).Length(), p2.Sub(p0).Length(),
		))
	}

	vols, err := geom.IVMVolumes(tets)
	if err != nil {
		log.Fatal(err.Error())
	}
	for i, ivm := range vols {
		fmt.Printf(
			"points %d-%d: %g tetravolumes (%g in XYZ units)\n",
			i, i+2, ivm, ivm/geom.S3,
		)
	}
}
