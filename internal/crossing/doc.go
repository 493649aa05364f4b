// Package crossing finds where wires cross and picks the crossings closest
// to the origin, both as the crow walks the grid (Manhattan distance) and as
// the wires themselves walk (cumulative wire distance).
//
// Every segment of one wire is tested against every segment of the other,
// for every pair of wires. The origin, shared by all wires, is never a
// crossing.
package crossing
