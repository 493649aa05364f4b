// Package cli is responsible for parsing command-line arguments, validating
// user input, and mapping failures onto process exit codes. It translates
// flags into the application's configuration.
package cli
