package io

import (
	"fmt"

	"github.com/phil-mansfield/table"

	"github.com/synmath/tetravol/geom"
)

// ReadPoints reads Cartesian points from a whitespace-separated table file
// with x, y, and z in the first three columns.
func ReadPoints(fname string) ([]geom.Vec, error) {
	cols, err := table.ReadTable(fname, []int{0, 1, 2}, nil)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", fname, err)
	}

	xs, ys, zs := cols[0], cols[1], cols[2]
	points := make([]geom.Vec, len(xs))
	for i := range xs {
		points[i] = geom.V3(xs[i], ys[i], zs[i])
	}
	return points, nil
}
