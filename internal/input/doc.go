// Package input reads wires from disk. Two formats are understood: plain
// text with one comma-separated wire per line, and HCL circuit files with one
// `wire` block per wire. A directory is searched recursively for HCL files.
package input
