// Package wire parses direction codes such as "R8" and traces them from the
// origin into a Path: the ordered corners of the wire together with the
// cumulative number of steps walked to reach each corner.
package wire
