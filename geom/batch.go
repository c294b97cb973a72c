package geom

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// IVMVolumes computes the IVM volumes of many independent tetrahedra in
// parallel, bounded by the number of logical cores. The computations share
// no state, so their relative order does not matter; results are returned
// in input order. The first unrealizable tetrahedron fails the whole batch.
func IVMVolumes(tets []Tetra) ([]float64, error) {
	out := make([]float64, len(tets))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, t := range tets {
		g.Go(func() error {
			vol, err := t.IVMVolume()
			if err != nil {
				return fmt.Errorf("tetrahedron %d: %w", i, err)
			}
			out[i] = vol
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// XYZVolumes computes the XYZ volumes of many independent tetrahedra in
// parallel. See IVMVolumes.
func XYZVolumes(tets []Tetra) ([]float64, error) {
	vols, err := IVMVolumes(tets)
	if err != nil {
		return nil, err
	}
	for i := range vols {
		vols[i] /= S3
	}
	return vols, nil
}
