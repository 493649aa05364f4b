// Package app wires the pieces together: it owns the configuration and the
// logger, loads the wires, evaluates their crossings and writes the report.
// It is decoupled from the command line so it can be driven from tests.
package app
