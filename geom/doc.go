// Package geom implements points and directions in two coordinate systems,
// 3-axis Cartesian and 4-axis quadray, conversion between them, and
// edge-length based volume and area formulas reported in both the IVM and
// XYZ unit systems.
package geom
