// Package geom provides the integer grid geometry used to trace wires: a
// small 2D point type and axis-aligned segments that can be tested for
// crossings.
package geom
